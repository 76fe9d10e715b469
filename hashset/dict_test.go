package hashset

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// collide sends every key to bucket 0.
func collide() Hasher[string] {
	return Funcs(func(string) uint64 { return 0 }, func(a, b string) bool { return a == b })
}

func newTestDict[K any](h Hasher[K], opts ...Option) *dict[K] {
	return newDict(h, buildOptions(opts))
}

func chain(d *dict[string], i int) []string {
	var keys []string
	for curr := d.buckets[i].head; curr != nil; curr = curr.next {
		keys = append(keys, curr.key)
	}
	return keys
}

func TestDictInsertAndLocate(t *testing.T) {
	d := newTestDict[string](StringHasher{})
	_, _, inserted := d.insert("one")
	assert.True(t, inserted)
	_, _, inserted = d.insert("two")
	assert.True(t, inserted)

	l, i := d.locate("one")
	assert.NotNil(t, l, "Key 'one' should exist")
	assert.Equal(t, "one", l.key)
	assert.Equal(t, d.index("one"), i)

	l, _ = d.locate("three")
	assert.Nil(t, l, "Key 'three' should not exist")
	assert.Equal(t, 2, d.size)
}

func TestDictInsertDuplicate(t *testing.T) {
	d := newTestDict[string](StringHasher{})
	first, _, _ := d.insert("one")
	again, _, inserted := d.insert("one")
	assert.False(t, inserted)
	assert.Same(t, first, again)
	assert.Equal(t, 1, d.size)
}

func TestDictChainOrder(t *testing.T) {
	d := newTestDict(collide())
	d.insert("a")
	d.insert("b")
	d.insert("c")
	assert.Equal(t, []string{"c", "b", "a"}, chain(d, 0), "newest key should be at the head")
}

func TestDictRemove(t *testing.T) {
	tests := []struct {
		name   string
		remove string
		want   []string
	}{
		{"head", "c", []string{"b", "a"}},
		{"middle", "b", []string{"c", "a"}},
		{"tail", "a", []string{"c", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDict(collide())
			d.insert("a")
			d.insert("b")
			d.insert("c")

			assert.True(t, d.remove(tt.remove))
			assert.Equal(t, tt.want, chain(d, 0))
			assert.Equal(t, 2, d.size)

			l, _ := d.locate(tt.remove)
			assert.Nil(t, l)
		})
	}
}

func TestDictRemoveMissing(t *testing.T) {
	d := newTestDict(collide())
	assert.False(t, d.remove("a"), "remove from an empty bucket")

	d.insert("a")
	assert.False(t, d.remove("b"), "remove a key absent from a non-empty chain")
	assert.Equal(t, 1, d.size)
}

func TestDictRehash(t *testing.T) {
	d := newTestDict[string](StringHasher{}, WithInitialBuckets(10))

	for i := 0; i < 100; i++ {
		d.insert(fmt.Sprintf("key%d", i))
	}

	assert.Greater(t, len(d.buckets), 10)
	assert.Equal(t, 100, d.size)
	assert.Len(t, d.keys(), 100)
	for i := 0; i < 100; i++ {
		l, _ := d.locate(fmt.Sprintf("key%d", i))
		assert.NotNil(t, l, "key%d should survive rehash", i)
	}
}

func TestDictReserveWithinLoad(t *testing.T) {
	d := newTestDict[int](IntHasher[int]{}, WithInitialBuckets(10), WithMaxLoadFactor(0.5))
	d.reserve(5)
	assert.Equal(t, 10, len(d.buckets), "5 keys fit 10 buckets at 0.5")
	d.reserve(6)
	assert.Equal(t, 41, len(d.buckets))
}

func TestDictNext(t *testing.T) {
	d := newTestDict[int](IntHasher[int]{})
	d.insert(3)
	d.insert(5)

	l, i := d.next(0)
	assert.Equal(t, 3, i)
	assert.Equal(t, 3, l.key)

	l, i = d.next(4)
	assert.Equal(t, 5, i)
	assert.Equal(t, 5, l.key)

	l, i = d.next(6)
	assert.Nil(t, l)
	assert.Equal(t, len(d.buckets), i)
}

func TestDictCloneSharesNoLinks(t *testing.T) {
	d := newTestDict(collide())
	d.insert("a")
	d.insert("b")

	c := d.clone()
	assert.Equal(t, len(d.buckets), len(c.buckets))
	assert.ElementsMatch(t, d.keys(), c.keys())
	assert.NotSame(t, d.buckets[0].head, c.buckets[0].head)
	assert.NotSame(t, d.buckets[0].head.next, c.buckets[0].head.next)
}
