package flame

// DefaultSeed seeds the random source of a run unless WithSeed overrides it.
const DefaultSeed uint64 = 2013

// DefaultWarmup is the number of leading iterations whose points are not
// recorded, giving the orbit time to reach the attractor.
const DefaultWarmup = 20

// ComputeOption configures a chaos-game run.
//
// Example:
//
//	acc, err := f.Compute(frame, 500, 400, 50, flame.WithSeed(7))
type ComputeOption func(*computeOptions)

// computeOptions holds optional configuration for Compute.
type computeOptions struct {
	seed   uint64
	warmup int
}

// defaultComputeOptions returns the default run options.
func defaultComputeOptions() computeOptions {
	return computeOptions{
		seed:   DefaultSeed,
		warmup: DefaultWarmup,
	}
}

func newComputeOptions(opts []ComputeOption) computeOptions {
	o := defaultComputeOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithSeed sets the seed of the random source. Two runs with the same seed
// and the same inputs produce identical accumulators.
func WithSeed(seed uint64) ComputeOption {
	return func(o *computeOptions) {
		o.seed = seed
	}
}

// WithWarmup sets the number of unrecorded leading iterations.
// Negative values are treated as zero.
func WithWarmup(n int) ComputeOption {
	return func(o *computeOptions) {
		o.warmup = max(n, 0)
	}
}
