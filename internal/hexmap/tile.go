package hexmap

import (
	"fmt"

	"github.com/DoyleJ11/galaxy-draft-backend/internal/systems"
)

type TileKind string

const (
	TileOpen   TileKind = "open"   // empty, fillable
	TileClosed TileKind = "closed" // removed from play
	TileHome   TileKind = "home"   // a player start, bound to a seat
	TileSystem TileKind = "system" // a concrete system, optionally rotated
)

type Tile struct {
	Kind     TileKind `json:"kind"`
	System   string   `json:"system,omitempty"`
	Rotation int      `json:"rotation,omitempty"` // degrees clockwise, multiples of 60
	Seat     int      `json:"seat,omitempty"`
}

// Map is a flat, ring-ordered tile sequence. Index 0 is always the central
// system.
type Map struct {
	Tiles []Tile `json:"tiles"`
}

// NewMap builds an all-open map with the central system placed.
func NewMap(rings int) *Map {
	tiles := make([]Tile, TileCount(rings))
	tiles[0] = Tile{Kind: TileSystem, System: systems.MecatolRex}
	for i := 1; i < len(tiles); i++ {
		tiles[i] = Tile{Kind: TileOpen}
	}
	return &Map{Tiles: tiles}
}

// Rings derives the ring count from the tile count.
func (m *Map) Rings() int { return RingOf(len(m.Tiles) - 1) }

// HomeIndices returns the indices of home tiles in ascending order.
func (m *Map) HomeIndices() []int {
	var out []int
	for i, t := range m.Tiles {
		if t.Kind == TileHome {
			out = append(out, i)
		}
	}
	return out
}

// Validate checks the structural invariants: the central system at index 0,
// no other central system, and home seats unique.
func (m *Map) Validate() error {
	if len(m.Tiles) == 0 || m.Tiles[0].Kind != TileSystem || m.Tiles[0].System != systems.MecatolRex {
		return fmt.Errorf("map: tile 0 must be the central system")
	}
	seats := make(map[int]int)
	for i, t := range m.Tiles {
		if i > 0 && t.Kind == TileSystem && t.System == systems.MecatolRex {
			return fmt.Errorf("map: duplicate central system at tile %d", i)
		}
		if t.Kind == TileHome {
			if prev, ok := seats[t.Seat]; ok {
				return fmt.Errorf("map: seat %d on tiles %d and %d", t.Seat, prev, i)
			}
			seats[t.Seat] = i
		}
	}
	return nil
}

// Clone deep-copies the map so callers can mutate a candidate freely.
func (m *Map) Clone() *Map {
	tiles := make([]Tile, len(m.Tiles))
	copy(tiles, m.Tiles)
	return &Map{Tiles: tiles}
}

// Slice is a named, ordered run of systems assigned to one seat. It is both
// the unit players draft and the neighborhood valuation scores around a home.
type Slice struct {
	Name    string   `json:"name"`
	Systems []string `json:"systems"`
}
