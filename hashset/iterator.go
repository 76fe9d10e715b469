package hashset

import "iter"

// Iterator is a forward cursor over the keys of a Set. It walks non-empty
// buckets in index order and each chain from its head.
//
// An Iterator does not own anything it points at. It is invalidated by a
// rehash of its table or by erasing the key it is positioned on; using an
// invalidated Iterator is not detected.
//
// The zero Iterator is the end position, shared by every Set.
type Iterator[K any] struct {
	d     *dict[K]
	node  *link[K]
	index int
}

func newIterator[K any](d *dict[K], node *link[K], index int) Iterator[K] {
	if node == nil {
		return Iterator[K]{}
	}
	return Iterator[K]{d: d, node: node, index: index}
}

// Valid reports whether the iterator is positioned on a key.
func (it Iterator[K]) Valid() bool {
	return it.node != nil
}

// Key returns the key at the current position. It panics with
// ErrInvalidDereference at the end position.
func (it Iterator[K]) Key() K {
	if it.node == nil {
		panic(ErrInvalidDereference)
	}
	return it.node.key
}

// Bucket returns the bucket index of the current position, or -1 at end.
func (it Iterator[K]) Bucket() int {
	if it.node == nil {
		return -1
	}
	return it.index
}

// Next advances to the following key, or to end. Next at end is a no-op.
func (it *Iterator[K]) Next() {
	if it.node == nil {
		return
	}
	if it.node.next != nil {
		it.node = it.node.next
		return
	}
	node, index := it.d.next(it.index + 1)
	*it = newIterator(it.d, node, index)
}

// Equal reports whether both iterators are positioned on the same entry.
// Any two end iterators are equal.
func (it Iterator[K]) Equal(other Iterator[K]) bool {
	return it.node == other.node
}

// Begin returns an iterator at the first key, or End for an empty set.
func (s *Set[K]) Begin() Iterator[K] {
	if s.d.size == 0 {
		return s.End()
	}
	node, index := s.d.next(0)
	return newIterator(s.d, node, index)
}

// End returns the end position.
func (s *Set[K]) End() Iterator[K] {
	return Iterator[K]{}
}

// All yields every key once. The set must not be modified during the loop.
func (s *Set[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for it := s.Begin(); it.Valid(); it.Next() {
			if !yield(it.Key()) {
				return
			}
		}
	}
}

// Keys returns the keys in iteration order.
func (s *Set[K]) Keys() []K {
	return s.d.keys()
}
