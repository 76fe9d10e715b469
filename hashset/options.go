package hashset

import (
	"fmt"

	"go.uber.org/zap"
)

const (
	// DefaultMinBuckets is the bucket floor a table never goes below.
	DefaultMinBuckets = 7
	// DefaultMaxLoadFactor bounds keys per bucket after every insertion.
	DefaultMaxLoadFactor = 0.7
	// MinMaxLoadFactor is the smallest accepted maximum load factor. Lower
	// values would size tables past what fits in an int.
	MinMaxLoadFactor = 0.01
)

type options struct {
	initial int
	floor   int
	maxLoad float64
	growth  GrowthPolicy
	logger  *zap.Logger
}

// Option configures a Set at construction.
type Option func(*options)

// WithInitialBuckets sets the bucket count of a new (or cleared) table.
// Values below the minimum bucket count are raised to it.
func WithInitialBuckets(n int) Option {
	return func(o *options) { o.initial = n }
}

// WithMinBuckets sets the floor below which the table is never sized.
func WithMinBuckets(n int) Option {
	return func(o *options) { o.floor = n }
}

// WithMaxLoadFactor sets the maximum ratio of keys to buckets, in
// [MinMaxLoadFactor, 1].
func WithMaxLoadFactor(f float64) Option {
	return func(o *options) { o.maxLoad = f }
}

// WithGrowthPolicy replaces QuadGrowth.
func WithGrowthPolicy(p GrowthPolicy) Option {
	return func(o *options) { o.growth = p }
}

// WithLogger receives rehash events at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

func buildOptions(opts []Option) options {
	o := options{
		floor:   DefaultMinBuckets,
		maxLoad: DefaultMaxLoadFactor,
		growth:  QuadGrowth{},
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.floor < 1 {
		panic(fmt.Errorf("%w: min buckets %d < 1", ErrInvalidOption, o.floor))
	}
	if !(o.maxLoad >= MinMaxLoadFactor && o.maxLoad <= 1) {
		panic(fmt.Errorf("%w: max load factor %v outside [%v, 1]", ErrInvalidOption, o.maxLoad, MinMaxLoadFactor))
	}
	if o.growth == nil {
		panic(fmt.Errorf("%w: nil growth policy", ErrInvalidOption))
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	if o.initial < o.floor {
		o.initial = o.floor
	}
	return o
}
