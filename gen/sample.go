package gen

import (
	crand "crypto/rand"
	"fmt"
	"math/big"
)

const methodSample = "Sample"

// Sampler draws uniformly distributed productions from generators.
// A Sampler backed by WithSeed or WithRand shares one *rand.Rand and is not
// safe for concurrent use; the default crypto/rand source is.
type Sampler struct {
	cfg sampleConfig
}

// NewSampler returns a Sampler configured by opts.
func NewSampler(opts ...SampleOption) *Sampler {
	return &Sampler{cfg: newSampleConfig(opts...)}
}

// SampleIndex returns an index drawn uniformly from [0, g.Size()).
func (s *Sampler) SampleIndex(g *Generator) (*big.Int, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", methodSample, ErrNilGenerator)
	}
	size := g.measured().size
	if size.Sign() == 0 {
		return nil, fmt.Errorf("%s: %w", methodSample, ErrEmptySpace)
	}
	if s.cfg.rng != nil {
		return new(big.Int).Rand(s.cfg.rng, size), nil
	}
	idx, err := crand.Int(s.cfg.entropy, size)
	if err != nil {
		return nil, fmt.Errorf("%s: reading entropy: %w", methodSample, err)
	}
	return idx, nil
}

// Sample returns a production of g drawn uniformly by index.
func (s *Sampler) Sample(g *Generator) (string, error) {
	idx, err := s.SampleIndex(g)
	if err != nil {
		return "", err
	}
	return g.Get(idx)
}

// Random draws one production uniformly at random. Without options the
// draw uses crypto/rand; pass WithSeed for reproducible output. Repeated
// draws should share a Sampler instead of re-seeding on every call.
func (g *Generator) Random(opts ...SampleOption) (string, error) {
	return NewSampler(opts...).Sample(g)
}
