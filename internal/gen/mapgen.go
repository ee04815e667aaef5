package gen

import (
	"fmt"
	"sort"

	"github.com/DoyleJ11/galaxy-draft-backend/internal/hexmap"
	"github.com/DoyleJ11/galaxy-draft-backend/internal/systems"
)

// GenerateMap builds a map with the central system placed, home tiles marked
// at the given positions (seat n at homePositions[n]), and everything else
// open for later slice fill-in.
func GenerateMap(rings int, homePositions []int) (*hexmap.Map, error) {
	m := hexmap.NewMap(rings)
	for seat, idx := range homePositions {
		if idx <= 0 || idx >= len(m.Tiles) {
			return nil, fmt.Errorf("gen: home position %d out of range for %d rings", idx, rings)
		}
		if m.Tiles[idx].Kind == hexmap.TileHome {
			return nil, fmt.Errorf("gen: duplicate home position %d", idx)
		}
		m.Tiles[idx] = hexmap.Tile{Kind: hexmap.TileHome, Seat: seat}
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// DefaultHomePositions spreads the given number of seats evenly around the
// outer ring, starting north.
func DefaultHomePositions(rings, players int) ([]int, error) {
	if players < 2 || players > 6*rings {
		return nil, fmt.Errorf("gen: cannot seat %d players on %d rings", players, rings)
	}
	start := hexmap.TileCount(rings - 1)
	length := 6 * rings
	out := make([]int, players)
	for i := range out {
		out[i] = start + i*length/players
	}
	return out, nil
}

// FillSlices writes each seat's slice into the nearest open tiles around its
// home, closest first, ties by tile index. Seats are processed in ascending
// order, so a contested open tile goes to the lower seat.
func FillSlices(m *hexmap.Map, reg *systems.Registry, bySeat map[int]hexmap.Slice) error {
	homeBySeat := make(map[int]int)
	for _, idx := range m.HomeIndices() {
		homeBySeat[m.Tiles[idx].Seat] = idx
	}
	seats := make([]int, 0, len(bySeat))
	for seat := range bySeat {
		if _, ok := homeBySeat[seat]; !ok {
			return fmt.Errorf("gen: no home tile for seat %d", seat)
		}
		seats = append(seats, seat)
	}
	sort.Ints(seats)

	for _, seat := range seats {
		sl := bySeat[seat]
		g := hexmap.BuildGraph(m, reg, hexmap.GraphOptions{IncludeOpen: true})
		near := g.ReachableWithin(homeBySeat[seat], 2)
		targets := make([]int, 0, len(near))
		for idx := range near {
			if m.Tiles[idx].Kind == hexmap.TileOpen {
				targets = append(targets, idx)
			}
		}
		sort.Slice(targets, func(i, j int) bool {
			if near[targets[i]] != near[targets[j]] {
				return near[targets[i]] < near[targets[j]]
			}
			return targets[i] < targets[j]
		})
		if len(targets) < len(sl.Systems) {
			return fmt.Errorf("gen: seat %d has %d open tiles for %d slice systems", seat, len(targets), len(sl.Systems))
		}
		for i, id := range sl.Systems {
			m.Tiles[targets[i]] = hexmap.Tile{Kind: hexmap.TileSystem, System: id}
		}
	}
	return nil
}
