package hashset

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

// Hasher maps a key to a hash and decides key equivalence.
// Keys that are Equal must produce the same Hash.
type Hasher[K any] interface {
	Hash(key K) uint64
	Equal(a, b K) bool
}

type funcHasher[K any] struct {
	hash  func(K) uint64
	equal func(a, b K) bool
}

func (f funcHasher[K]) Hash(key K) uint64 { return f.hash(key) }
func (f funcHasher[K]) Equal(a, b K) bool { return f.equal(a, b) }

// Funcs builds a Hasher from a hash function and an equality function.
func Funcs[K any](hash func(K) uint64, equal func(a, b K) bool) Hasher[K] {
	return funcHasher[K]{hash: hash, equal: equal}
}

// StringHasher hashes strings with xxhash.
type StringHasher struct{}

func (StringHasher) Hash(key string) uint64 { return xxhash.Sum64String(key) }
func (StringHasher) Equal(a, b string) bool { return a == b }

// BytesHasher hashes byte slices by content.
type BytesHasher struct{}

func (BytesHasher) Hash(key []byte) uint64 { return xxhash.Sum64(key) }
func (BytesHasher) Equal(a, b []byte) bool { return string(a) == string(b) }

// IntHasher uses the integer value itself as the hash, so small integers
// land in predictable buckets.
type IntHasher[K constraints.Integer] struct{}

func (IntHasher[K]) Hash(key K) uint64 { return uint64(key) }
func (IntHasher[K]) Equal(a, b K) bool { return a == b }

// ComparableHasher works for any comparable type. Hashes are seeded per
// hasher, so two ComparableHashers place the same key differently.
type ComparableHasher[K comparable] struct {
	seed maphash.Seed
}

// NewComparableHasher returns a ComparableHasher with a fresh random seed.
func NewComparableHasher[K comparable]() ComparableHasher[K] {
	return ComparableHasher[K]{seed: maphash.MakeSeed()}
}

func (h ComparableHasher[K]) Hash(key K) uint64 { return maphash.Comparable(h.seed, key) }
func (ComparableHasher[K]) Equal(a, b K) bool { return a == b }
