// Package gen procedurally assembles slices and maps from the tile pool,
// validating candidates with the valuation engine. All randomness flows
// through a caller-supplied seeded *rand.Rand so identical seeds reproduce
// identical content.
package gen

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/DoyleJ11/galaxy-draft-backend/internal/hexmap"
	"github.com/DoyleJ11/galaxy-draft-backend/internal/systems"
	"github.com/DoyleJ11/galaxy-draft-backend/internal/valuation"
)

// ErrExhausted reports that no candidate met the constraints within the
// attempt budget. Generation fails hard rather than silently returning a
// constraint-violating best effort; the caller may relax and retry.
var ErrExhausted = errors.New("slice generation exhausted attempt budget")

// MaxAttempts bounds the candidate search so generation always terminates.
const MaxAttempts = 10000

// DefaultSliceSize is the standard five-tile neighborhood around a home.
const DefaultSliceSize = 5

// Constraints are the knobs a draft creator turns. Zero values disable the
// corresponding check.
type Constraints struct {
	// Variance caps the spread between the best and worst slice total.
	Variance float64 `json:"variance,omitempty"`
	// Opulence sets a floor on the mean slice total.
	Opulence float64 `json:"opulence,omitempty"`

	MinAlphaWormholes int `json:"minAlphaWormholes,omitempty"`
	MinBetaWormholes  int `json:"minBetaWormholes,omitempty"`
	MinLegendaries    int `json:"minLegendaries,omitempty"`

	// per-slice floors
	MinOptimalTotal     float64 `json:"minOptimalTotal,omitempty"`
	MinOptimalInfluence int     `json:"minOptimalInfluence,omitempty"`

	// AllowReuse lets slices share systems; by default every system is used
	// at most once across the generated set.
	AllowReuse bool `json:"allowReuse,omitempty"`
}

// GenerateSlices samples candidate slice sets from the pool until one meets
// every constraint.
func GenerateSlices(reg *systems.Registry, pool []string, count, size int, c Constraints, rng *rand.Rand) ([]hexmap.Slice, error) {
	if count <= 0 || size <= 0 {
		return nil, fmt.Errorf("gen: need positive slice count and size, got %d x %d", count, size)
	}
	if !c.AllowReuse && len(pool) < count*size {
		return nil, fmt.Errorf("gen: pool of %d cannot fill %d slices of %d tiles", len(pool), count, size)
	}

	for attempt := 0; attempt < MaxAttempts; attempt++ {
		candidate := sample(pool, count, size, c.AllowReuse, rng)
		if satisfies(reg, candidate, c) {
			for i := range candidate {
				candidate[i].Name = fmt.Sprintf("Slice %c", 'A'+i)
			}
			return candidate, nil
		}
	}
	return nil, fmt.Errorf("%w after %d attempts", ErrExhausted, MaxAttempts)
}

func sample(pool []string, count, size int, reuse bool, rng *rand.Rand) []hexmap.Slice {
	out := make([]hexmap.Slice, count)
	if reuse {
		for i := range out {
			deck := shuffled(pool, rng)
			out[i].Systems = deck[:size]
		}
		return out
	}
	deck := shuffled(pool, rng)
	for i := range out {
		out[i].Systems = deck[i*size : (i+1)*size]
	}
	return out
}

func shuffled(pool []string, rng *rand.Rand) []string {
	deck := make([]string, len(pool))
	copy(deck, pool)
	rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
	return deck
}

func satisfies(reg *systems.Registry, slices []hexmap.Slice, c Constraints) bool {
	var alphas, betas, legendaries int
	var minTotal, maxTotal, sumTotal float64
	for i, sl := range slices {
		b := valuation.SliceValue(reg, sl, 0)
		if c.MinOptimalTotal > 0 && float64(b.Optimal.Sum()) < c.MinOptimalTotal {
			return false
		}
		if b.Optimal.Influence+b.Optimal.Flex < c.MinOptimalInfluence {
			return false
		}
		if i == 0 || b.Total < minTotal {
			minTotal = b.Total
		}
		if i == 0 || b.Total > maxTotal {
			maxTotal = b.Total
		}
		sumTotal += b.Total

		for _, id := range sl.Systems {
			sys, ok := reg.Lookup(id)
			if !ok {
				continue
			}
			if sys.HasWormhole(systems.WormholeAlpha) {
				alphas++
			}
			if sys.HasWormhole(systems.WormholeBeta) {
				betas++
			}
			legendaries += sys.Legendaries()
		}
	}
	if alphas < c.MinAlphaWormholes || betas < c.MinBetaWormholes || legendaries < c.MinLegendaries {
		return false
	}
	if c.Variance > 0 && maxTotal-minTotal > c.Variance {
		return false
	}
	if c.Opulence > 0 && sumTotal/float64(len(slices)) < c.Opulence {
		return false
	}
	return true
}
