package hashset

import "go.uber.org/zap"

// link is one chained entry. It owns its key and the rest of the chain.
type link[K any] struct {
	key  K
	next *link[K]
}

// bucket is a slot of the bucket array. A nil head means the bucket is empty.
type bucket[K any] struct {
	head *link[K]
}

// dict is the separately chained table behind a Set.
type dict[K any] struct {
	buckets []bucket[K]
	size    int
	hasher  Hasher[K]
	opts    options
}

func newDict[K any](h Hasher[K], o options) *dict[K] {
	return newDictSize(h, o, o.initial)
}

func newDictSize[K any](h Hasher[K], o options, n int) *dict[K] {
	if n < o.floor {
		n = o.floor
	}
	return &dict[K]{
		buckets: make([]bucket[K], n),
		hasher:  h,
		opts:    o,
	}
}

func (d *dict[K]) index(key K) int {
	return int(d.hasher.Hash(key) % uint64(len(d.buckets)))
}

// locate returns the link holding a key equal to key, or nil, together with
// the bucket index of key.
func (d *dict[K]) locate(key K) (*link[K], int) {
	i := d.index(key)
	for curr := d.buckets[i].head; curr != nil; curr = curr.next {
		if d.hasher.Equal(curr.key, key) {
			return curr, i
		}
	}
	return nil, i
}

// insert adds key unless an equal key is already stored. It returns the link
// holding the key, its bucket, and whether a new link was created.
func (d *dict[K]) insert(key K) (*link[K], int, bool) {
	if l, i := d.locate(key); l != nil {
		return l, i, false
	}
	d.reserve(d.size + 1)
	l, i := d.add(key)
	return l, i, true
}

// add links key as the new head of its chain. The caller guarantees key is
// not already stored and that the table has room for it.
func (d *dict[K]) add(key K) (*link[K], int) {
	i := d.index(key)
	l := &link[K]{key: key, next: d.buckets[i].head}
	d.buckets[i].head = l
	d.size++
	return l, i
}

func (d *dict[K]) remove(key K) bool {
	i := d.index(key)
	head := d.buckets[i].head
	if head == nil {
		return false
	}

	if d.hasher.Equal(head.key, key) {
		d.buckets[i].head = head.next
		head.next = nil
		d.size--
		return true
	}

	prev := head
	curr := head.next
	for curr != nil {
		if d.hasher.Equal(curr.key, key) {
			prev.next = curr.next
			curr.next = nil
			d.size--
			return true
		}
		prev = curr
		curr = curr.next
	}
	return false
}

// reserve grows the table when n keys would not fit within the load factor.
func (d *dict[K]) reserve(n int) {
	if !needsGrowth(len(d.buckets), n, d.opts.maxLoad) {
		return
	}
	d.rehash(growTarget(d.opts.growth, len(d.buckets), n, d.opts.floor, d.opts.maxLoad))
}

// rehash rebuilds the bucket array with n buckets and relinks every key.
// Keys, not links, are carried over so no link of the old array survives.
func (d *dict[K]) rehash(n int) {
	if n < d.opts.floor {
		n = d.opts.floor
	}
	keys := d.keys()
	old := len(d.buckets)

	d.buckets = make([]bucket[K], n)
	d.size = 0
	for _, key := range keys {
		d.add(key)
	}

	d.opts.logger.Debug("rehash",
		zap.Int("from", old),
		zap.Int("to", n),
		zap.Int("keys", d.size))
}

// keys returns every stored key in bucket order, then chain order.
func (d *dict[K]) keys() []K {
	keys := make([]K, 0, d.size)
	for i := range d.buckets {
		for curr := d.buckets[i].head; curr != nil; curr = curr.next {
			keys = append(keys, curr.key)
		}
	}
	return keys
}

// next returns the first non-empty bucket at or after index i, or
// (nil, len(buckets)) when there is none.
func (d *dict[K]) next(i int) (*link[K], int) {
	for ; i < len(d.buckets); i++ {
		if d.buckets[i].head != nil {
			return d.buckets[i].head, i
		}
	}
	return nil, len(d.buckets)
}

func (d *dict[K]) clone() *dict[K] {
	c := newDictSize(d.hasher, d.opts, len(d.buckets))
	for _, key := range d.keys() {
		c.add(key)
	}
	return c
}
