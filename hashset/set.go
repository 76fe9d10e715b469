// Package hashset implements a generic unordered set on top of a hash table
// with separate chaining that grows to keep its load factor bounded.
package hashset

import (
	"fmt"
	"iter"
)

// Set is an unordered collection of unique keys stored in a separately
// chained hash table. Key equivalence and hashing come from the Hasher given
// at construction.
//
// The zero value is not usable: create sets with New, Of or FromSeq. A Set is
// not safe for concurrent use.
type Set[K any] struct {
	d *dict[K]
}

// New creates an empty set. It panics with an error wrapping ErrInvalidOption
// if h is nil or an option is out of range.
func New[K any](h Hasher[K], opts ...Option) *Set[K] {
	if h == nil {
		panic(fmt.Errorf("%w: nil hasher", ErrInvalidOption))
	}
	return &Set[K]{d: newDict(h, buildOptions(opts))}
}

// Of creates a set holding keys. Duplicates collapse.
func Of[K any](h Hasher[K], keys ...K) *Set[K] {
	s := New(h)
	s.InsertAll(keys...)
	return s
}

// FromSeq creates a set holding every key yielded by seq.
func FromSeq[K any](h Hasher[K], seq iter.Seq[K], opts ...Option) *Set[K] {
	s := New(h, opts...)
	s.InsertSeq(seq)
	return s
}

// Size returns the number of keys in the set.
func (s *Set[K]) Size() int {
	return s.d.size
}

// Empty reports whether the set holds no keys.
func (s *Set[K]) Empty() bool {
	return s.d.size == 0
}

// Insert adds key. If an equal key is already present the set is unchanged,
// and the returned iterator points at the stored key with false.
func (s *Set[K]) Insert(key K) (Iterator[K], bool) {
	l, i, inserted := s.d.insert(key)
	return newIterator(s.d, l, i), inserted
}

// InsertAll inserts keys in order. Repeated keys after the first are no-ops.
func (s *Set[K]) InsertAll(keys ...K) {
	for _, key := range keys {
		s.d.insert(key)
	}
}

// InsertSeq inserts every key yielded by seq, in order.
func (s *Set[K]) InsertSeq(seq iter.Seq[K]) {
	for key := range seq {
		s.d.insert(key)
	}
}

// Erase removes key and returns the number of keys removed, 0 or 1.
func (s *Set[K]) Erase(key K) int {
	if s.d.remove(key) {
		return 1
	}
	return 0
}

// Find returns an iterator at key, or End if key is absent.
func (s *Set[K]) Find(key K) Iterator[K] {
	l, i := s.d.locate(key)
	return newIterator(s.d, l, i)
}

// Count returns 1 if key is present and 0 otherwise.
func (s *Set[K]) Count(key K) int {
	if s.Contains(key) {
		return 1
	}
	return 0
}

// Contains checks if a key is in the set
func (s *Set[K]) Contains(key K) bool {
	l, _ := s.d.locate(key)
	return l != nil
}

// Clear drops every key and restores the initial bucket count.
func (s *Set[K]) Clear() {
	s.d = newDict(s.d.hasher, s.d.opts)
}

// Clone returns an independent copy with the same bucket count.
func (s *Set[K]) Clone() *Set[K] {
	return &Set[K]{d: s.d.clone()}
}

// Assign replaces the contents of s with a copy of other.
func (s *Set[K]) Assign(other *Set[K]) {
	if s == other {
		return
	}
	s.d = other.d.clone()
}

// Replace replaces the contents of s with keys.
func (s *Set[K]) Replace(keys ...K) {
	fresh := &Set[K]{d: newDict(s.d.hasher, s.d.opts)}
	fresh.InsertAll(keys...)
	s.Swap(fresh)
}

// Swap exchanges the contents and configuration of s and other.
// Iterators keep pointing at the keys they were created from.
func (s *Set[K]) Swap(other *Set[K]) {
	s.d, other.d = other.d, s.d
}

// Swap exchanges the contents of a and b.
func Swap[K any](a, b *Set[K]) {
	a.Swap(b)
}

// Equal reports whether both sets hold the same keys, using the
// equivalence of other's Hasher.
func (s *Set[K]) Equal(other *Set[K]) bool {
	if s.d.size != other.d.size {
		return false
	}
	for it := s.Begin(); it.Valid(); it.Next() {
		if !other.Contains(it.Key()) {
			return false
		}
	}
	return true
}

// BucketCount returns the current number of buckets.
func (s *Set[K]) BucketCount() int {
	return len(s.d.buckets)
}

// BucketIndex returns the bucket key hashes to under the current bucket count.
func (s *Set[K]) BucketIndex(key K) int {
	return s.d.index(key)
}

// LoadFactor returns keys per bucket.
func (s *Set[K]) LoadFactor() float64 {
	return float64(s.d.size) / float64(len(s.d.buckets))
}

// MaxLoadFactor returns the load factor the set grows to stay under.
func (s *Set[K]) MaxLoadFactor() float64 {
	return s.d.opts.maxLoad
}
