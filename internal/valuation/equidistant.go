package valuation

import (
	"github.com/DoyleJ11/galaxy-draft-backend/internal/hexmap"
	"github.com/DoyleJ11/galaxy-draft-backend/internal/systems"
)

// Share is one home's claim on a tile: the shortest-path distance and the
// fraction of the tile's value attributed to that home. 1 means fully
// owned; 1/k means shared among k equidistant homes.
type Share struct {
	Distance   int     `json:"distance"`
	Percentage float64 `json:"percentage"`
}

// Attribution maps home tile index -> tile index -> share.
type Attribution map[int]map[int]Share

// EquidistantAttribution computes each home's claim on every non-home tile.
// Distances for a given home are measured on a graph that excludes the other
// homes, so each home sees the board as if it were the only player placed.
func EquidistantAttribution(m *hexmap.Map, reg *systems.Registry, homes []int) Attribution {
	dists := make(map[int]map[int]int, len(homes))
	for _, h := range homes {
		exclude := make(map[int]bool, len(homes)-1)
		for _, other := range homes {
			if other != h {
				exclude[other] = true
			}
		}
		g := hexmap.BuildGraph(m, reg, hexmap.GraphOptions{Exclude: exclude})
		dists[h] = g.ReachableWithin(h, len(m.Tiles))
	}

	out := make(Attribution, len(homes))
	for _, h := range homes {
		out[h] = make(map[int]Share)
	}
	homeSet := make(map[int]bool, len(homes))
	for _, h := range homes {
		homeSet[h] = true
	}

	for i := range m.Tiles {
		if homeSet[i] || m.Tiles[i].Kind != hexmap.TileSystem {
			continue
		}
		best, tied := -1, []int(nil)
		for _, h := range homes {
			d, ok := dists[h][i]
			if !ok {
				continue
			}
			switch {
			case best == -1 || d < best:
				best, tied = d, []int{h}
			case d == best:
				tied = append(tied, h)
			}
		}
		for _, h := range tied {
			out[h][i] = Share{Distance: best, Percentage: 1 / float64(len(tied))}
		}
	}
	return out
}

// EquidistantPenalty sums, for one home, the value lost to contested tiles:
// each tile shared with k-1 other homes forfeits (1 - 1/k) of its optimal
// sum. Percentages are used unrounded.
func EquidistantPenalty(m *hexmap.Map, reg *systems.Registry, attr Attribution, home int) float64 {
	penalty := 0.0
	for tile, share := range attr[home] {
		if share.Percentage < 1 {
			penalty += (1 - share.Percentage) * float64(Optimal(reg, []string{m.Tiles[tile].System}).Sum())
		}
	}
	return penalty
}
