package hexmap

import (
	"sort"

	"github.com/DoyleJ11/galaxy-draft-backend/internal/systems"
)

// GraphOptions tune which tiles become graph nodes. Excluded indices are
// omitted entirely, edges included, which is how equidistance simulates a
// board without a competing home. Open tiles are only nodes when
// IncludeOpen is set; closed tiles never are.
type GraphOptions struct {
	Exclude     map[int]bool
	IncludeOpen bool
}

// Graph is an adjacency structure over tile indices. Neighbor lists are kept
// sorted so traversal order is deterministic for identical input.
type Graph struct {
	adj map[int][]int
}

// BuildGraph connects tiles that are axially adjacent or joined by a
// hyperlane link declared on a tile between them.
func BuildGraph(m *Map, reg *systems.Registry, opts GraphOptions) *Graph {
	rings := m.Rings()
	node := func(i int) bool {
		if i < 0 || i >= len(m.Tiles) || opts.Exclude[i] {
			return false
		}
		switch m.Tiles[i].Kind {
		case TileClosed:
			return false
		case TileOpen:
			return opts.IncludeOpen
		default:
			return true
		}
	}

	g := &Graph{adj: make(map[int][]int)}
	for i := range m.Tiles {
		if node(i) {
			g.adj[i] = nil
		}
	}

	addEdge := func(a, b int) {
		if a == b {
			return
		}
		if !g.has(a) || !g.has(b) {
			return
		}
		if !contains(g.adj[a], b) {
			g.adj[a] = append(g.adj[a], b)
			g.adj[b] = append(g.adj[b], a)
		}
	}

	for i := range m.Tiles {
		if !g.has(i) {
			continue
		}
		for e := 0; e < 6; e++ {
			if j, ok := NeighborIndex(i, e, rings); ok {
				addEdge(i, j)
			}
		}
	}

	// hyperlane links join the tiles across the declared edge pair
	for i, t := range m.Tiles {
		if t.Kind != TileSystem || opts.Exclude[i] {
			continue
		}
		sys, ok := reg.Lookup(t.System)
		if !ok || len(sys.Hyperlanes) == 0 {
			continue
		}
		rot := (t.Rotation / 60) % 6
		for _, link := range sys.Hyperlanes {
			a, aok := NeighborIndex(i, (link[0]+rot)%6, rings)
			b, bok := NeighborIndex(i, (link[1]+rot)%6, rings)
			if aok && bok {
				addEdge(a, b)
			}
		}
	}

	for i := range g.adj {
		sort.Ints(g.adj[i])
	}
	return g
}

func (g *Graph) has(i int) bool {
	_, ok := g.adj[i]
	return ok
}

// Has reports whether the tile index is a node in the graph.
func (g *Graph) Has(i int) bool { return g.has(i) }

// Neighbors returns the sorted adjacency list for a node.
func (g *Graph) Neighbors(i int) []int { return g.adj[i] }

// ShortestPath runs a breadth-first search and returns the tile indices from
// one node to another, endpoints included. Ties break toward the
// first-discovered node, which is stable because neighbor lists are sorted.
// A nil result means no path (including absent or excluded endpoints).
func (g *Graph) ShortestPath(from, to int) []int {
	if !g.has(from) || !g.has(to) {
		return nil
	}
	if from == to {
		return []int{from}
	}
	prev := map[int]int{from: from}
	queue := []int{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range g.adj[cur] {
			if _, seen := prev[n]; seen {
				continue
			}
			prev[n] = cur
			if n == to {
				var path []int
				for at := to; at != from; at = prev[at] {
					path = append(path, at)
				}
				path = append(path, from)
				reverse(path)
				return path
			}
			queue = append(queue, n)
		}
	}
	return nil
}

// ReachableWithin returns every node within the given distance of from,
// mapped to its distance. from itself is included at distance 0.
func (g *Graph) ReachableWithin(from, distance int) map[int]int {
	out := make(map[int]int)
	if !g.has(from) || distance < 0 {
		return out
	}
	out[from] = 0
	queue := []int{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if out[cur] == distance {
			continue
		}
		for _, n := range g.adj[cur] {
			if _, seen := out[n]; seen {
				continue
			}
			out[n] = out[cur] + 1
			queue = append(queue, n)
		}
	}
	return out
}

func contains(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

func reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
