// Package hexmap models the shared board: axial hex coordinates in a spiral
// ring layout, tiles and maps, slices, the adjacency graph used for pathing
// and equidistance, and the compact map-string codec.
package hexmap

// Axial is a hex position in axial coordinates. The third cube coordinate is
// implied: s = -q - r.
type Axial struct {
	Q int `json:"q"`
	R int `json:"r"`
}

// Directions lists the six neighbor offsets, edge 0 pointing north and the
// rest clockwise. Hyperlane edge numbers index into this table.
var Directions = [6]Axial{
	{0, -1}, // N
	{1, -1}, // NE
	{1, 0},  // SE
	{0, 1},  // S
	{-1, 1}, // SW
	{-1, 0}, // NW
}

func (a Axial) Add(b Axial) Axial { return Axial{a.Q + b.Q, a.R + b.R} }

func (a Axial) Ring() int {
	q, r, s := abs(a.Q), abs(a.R), abs(-a.Q-a.R)
	return (q + r + s) / 2
}

// TileCount is the number of tiles in a map with the given ring count:
// 1 + 3n(n+1).
func TileCount(rings int) int { return 1 + 3*rings*(rings+1) }

// ringStart is the flat index of the first tile of ring r (the northmost).
func ringStart(r int) int {
	if r == 0 {
		return 0
	}
	return 1 + 3*(r-1)*r
}

// RingOf maps a flat ring-ordered index to its ring number.
func RingOf(index int) int {
	r := 0
	for ringStart(r+1) <= index {
		r++
	}
	return r
}

// AxialOf maps a flat index to its axial coordinate. Tiles spiral outward:
// each ring starts at its north tile and proceeds clockwise.
func AxialOf(index int) Axial {
	if index == 0 {
		return Axial{0, 0}
	}
	r := RingOf(index)
	pos := index - ringStart(r)
	cur := Axial{0, -r}
	seg, step := pos/r, pos%r
	for i := 0; i < seg; i++ {
		d := Directions[(i+2)%6]
		cur = Axial{cur.Q + d.Q*r, cur.R + d.R*r}
	}
	d := Directions[(seg+2)%6]
	return Axial{cur.Q + d.Q*step, cur.R + d.R*step}
}

// IndexOf maps an axial coordinate back to its flat index. ok is false when
// the coordinate lies outside the given ring count.
func IndexOf(a Axial, rings int) (int, bool) {
	r := a.Ring()
	if r > rings {
		return 0, false
	}
	if r == 0 {
		return 0, true
	}
	start := ringStart(r)
	for i := 0; i < 6*r; i++ {
		if AxialOf(start+i) == a {
			return start + i, true
		}
	}
	return 0, false
}

// NeighborIndex returns the flat index of the tile across the given edge
// (0 = north, clockwise), or ok=false when it falls off the map.
func NeighborIndex(index, edge, rings int) (int, bool) {
	return IndexOf(AxialOf(index).Add(Directions[edge%6]), rings)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
