package builder

import "math/rand"

// DefaultNoise is the bit-flip bound used by Clustered.
const DefaultNoise = 6

// BuilderOption customizes a constructor before generation begins.
type BuilderOption func(*builderConfig)

type builderConfig struct {
	rng   *rand.Rand
	noise int
}

func newConfig(opts []BuilderOption) builderConfig {
	cfg := builderConfig{noise: DefaultNoise}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed creates a seeded *rand.Rand.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithNoise bounds the bits Clustered flips per item. Panics outside [0,64].
func WithNoise(bits int) BuilderOption {
	if bits < 0 || bits > 64 {
		panic("builder: WithNoise out of [0,64]")
	}
	return func(c *builderConfig) {
		c.noise = bits
	}
}
