package valuation

import (
	"fmt"

	"github.com/DoyleJ11/galaxy-draft-backend/internal/hexmap"
	"github.com/DoyleJ11/galaxy-draft-backend/internal/systems"
)

// Modifier weights. Sums of resources and influence stay integral; totals go
// fractional only through these and through shared-tile attribution.
const (
	legendaryBonus       = 1.5
	techSkipBonus        = 0.75
	wormholeBonus        = 0.5
	adjacentQualityBonus = 0.5

	// optimal sum at or above this marks a tile as high quality
	highQualityMin = 4

	// slice entries at these positions border the home system
	homeAdjacentSlots = 3
)

type Modifier struct {
	Name  string  `json:"name"`
	Delta float64 `json:"delta"`
}

// Breakdown is a slice's score with every contribution surfaced separately:
// Total = Optimal.Sum() + sum of modifiers - EquidistantPenalty.
type Breakdown struct {
	Optimal            OptimalStats `json:"optimal"`
	Modifiers          []Modifier   `json:"modifiers"`
	EquidistantPenalty float64      `json:"equidistantPenalty"`
	Total              float64      `json:"total"`
}

// FormatTotal rounds for display only; callers doing math use Total as is.
func (b Breakdown) FormatTotal() string { return fmt.Sprintf("%.1f", b.Total) }

// SliceValue scores one slice. The equidistant penalty is computed from map
// context by the caller (EquidistantPenalty) and passed in; use 0 for a
// slice not yet bound to a map.
func SliceValue(reg *systems.Registry, sl hexmap.Slice, equidistantPenalty float64) Breakdown {
	b := Breakdown{
		Optimal:            Optimal(reg, sl.Systems),
		EquidistantPenalty: equidistantPenalty,
	}

	seenWormholes := map[systems.Wormhole]bool{}
	for slot, id := range sl.Systems {
		sys, ok := reg.Lookup(id)
		if !ok {
			continue
		}
		for _, w := range sys.Wormholes {
			if !seenWormholes[w] {
				seenWormholes[w] = true
				b.Modifiers = append(b.Modifiers, Modifier{Name: "wormhole " + string(w), Delta: wormholeBonus})
			}
		}
		for _, p := range sys.Planets {
			if p.Legendary {
				b.Modifiers = append(b.Modifiers, Modifier{Name: "legendary " + p.Name, Delta: legendaryBonus})
			}
			if p.Skip != "" {
				b.Modifiers = append(b.Modifiers, Modifier{Name: "tech skip " + p.Name, Delta: techSkipBonus})
			}
		}
		if slot < homeAdjacentSlots && Optimal(reg, []string{id}).Sum() >= highQualityMin {
			b.Modifiers = append(b.Modifiers, Modifier{Name: "strong adjacent " + id, Delta: adjacentQualityBonus})
		}
	}

	b.Total = float64(b.Optimal.Sum()) - b.EquidistantPenalty
	for _, m := range b.Modifiers {
		b.Total += m.Delta
	}
	return b
}
