// Package valuation scores slices and maps: optimal resource/influence
// totals under the usable-planet cap, named bonus/penalty modifiers, and
// equidistant-tile attribution between competing home systems.
package valuation

import (
	"sort"

	"github.com/DoyleJ11/galaxy-draft-backend/internal/systems"
)

// OptimalPlanetCap mirrors the game rule that only so many planets are
// realistically usable at once.
const OptimalPlanetCap = 3

type OptimalStats struct {
	Resources int `json:"resources"`
	Influence int `json:"influence"`
	Flex      int `json:"flex"`
}

func (o OptimalStats) Sum() int { return o.Resources + o.Influence + o.Flex }

// Optimal selects the best planets (at most OptimalPlanetCap) across the
// given systems and splits each onto exactly one of the resource, influence,
// or flex tracks. A planet lands on the track it is worth more on; equal
// values are flex. Among equally valued planets the split prefers resources
// first, then influence.
func Optimal(reg *systems.Registry, systemIDs []string) OptimalStats {
	var planets []systems.Planet
	for _, id := range systemIDs {
		if sys, ok := reg.Lookup(id); ok {
			planets = append(planets, sys.Planets...)
		}
	}
	sort.Slice(planets, func(i, j int) bool {
		a, b := planets[i], planets[j]
		av, bv := max(a.Resources, a.Influence), max(b.Resources, b.Influence)
		if av != bv {
			return av > bv
		}
		if a.Resources != b.Resources {
			return a.Resources > b.Resources
		}
		if a.Influence != b.Influence {
			return a.Influence > b.Influence
		}
		return a.Name < b.Name
	})
	if len(planets) > OptimalPlanetCap {
		planets = planets[:OptimalPlanetCap]
	}

	var out OptimalStats
	for _, p := range planets {
		switch {
		case p.Resources > p.Influence:
			out.Resources += p.Resources
		case p.Influence > p.Resources:
			out.Influence += p.Influence
		default:
			out.Flex += p.Resources
		}
	}
	return out
}
