package hashset

// GrowthPolicy picks the next bucket count once the table has run out of
// headroom for n keys. The table never shrinks, and the engine raises the
// result to whatever the load factor requires, so a policy only controls how
// aggressively the table overshoots.
type GrowthPolicy interface {
	Grow(buckets, n int) int
}

// GrowthFunc adapts a plain function to GrowthPolicy.
type GrowthFunc func(buckets, n int) int

func (f GrowthFunc) Grow(buckets, n int) int { return f(buckets, n) }

// QuadGrowth multiplies the bucket count by four (plus one, keeping sizes odd)
// until four times the new size covers n.
type QuadGrowth struct{}

func (QuadGrowth) Grow(buckets, n int) int {
	size := buckets
	for {
		size = size*4 + 1
		if n <= size*4 {
			return size
		}
	}
}

// DoublingGrowth doubles the bucket count plus one, keeping sizes odd, once
// per growth step.
type DoublingGrowth struct{}

func (DoublingGrowth) Grow(buckets, n int) int {
	return buckets*2 + 1
}

// needsGrowth reports whether n keys would exceed the load factor.
func needsGrowth(buckets, n int, maxLoad float64) bool {
	return float64(n) > float64(buckets)*maxLoad
}

// growTarget returns the bucket count for n keys: the policy's choice, raised
// to the floor and to the smallest size that keeps n within maxLoad.
func growTarget(p GrowthPolicy, buckets, n, floor int, maxLoad float64) int {
	size := p.Grow(buckets, n)
	if size < floor {
		size = floor
	}
	if need := minBucketsFor(n, maxLoad); size < need {
		size = need
	}
	return size
}

func minBucketsFor(n int, maxLoad float64) int {
	need := int(float64(n) / maxLoad)
	for needsGrowth(need, n, maxLoad) {
		need++
	}
	return need
}
