package hexmap

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DoyleJ11/galaxy-draft-backend/internal/systems"
)

// ringOneMap is a two-ring map with systems on the whole inner ring and
// everything on the outer ring open.
func ringOneMap() *Map {
	m := NewMap(2)
	for i, id := range []string{"19", "20", "21", "22", "23", "24"} {
		m.Tiles[1+i] = Tile{Kind: TileSystem, System: id}
	}
	return m
}

func TestShortestPath_ThroughCenter(t *testing.T) {
	reg := systems.Default()
	g := BuildGraph(ringOneMap(), reg, GraphOptions{})

	require.Equal(t, []int{1, 0, 4}, g.ShortestPath(1, 4))
	require.Equal(t, []int{2}, g.ShortestPath(2, 2))
}

func TestShortestPath_ExcludedCenterRoutesAround(t *testing.T) {
	reg := systems.Default()
	g := BuildGraph(ringOneMap(), reg, GraphOptions{Exclude: map[int]bool{0: true}})

	require.Equal(t, []int{1, 2, 3, 4}, g.ShortestPath(1, 4))
	require.False(t, g.Has(0))
	require.Nil(t, g.ShortestPath(0, 4))
}

func TestShortestPath_OpenTilesAreNotNodes(t *testing.T) {
	reg := systems.Default()
	m := NewMap(2)
	m.Tiles[7] = Tile{Kind: TileSystem, System: "46"}

	g := BuildGraph(m, reg, GraphOptions{})
	require.Nil(t, g.ShortestPath(0, 7), "only an open tile lies between")

	g = BuildGraph(m, reg, GraphOptions{IncludeOpen: true})
	require.Equal(t, []int{0, 1, 7}, g.ShortestPath(0, 7))
}

func TestBuildGraph_HyperlaneJoinsOppositeNeighbors(t *testing.T) {
	reg := systems.Default()
	m := NewMap(2)
	m.Tiles[1] = Tile{Kind: TileSystem, System: "83A"} // straight lane, edges 0-3
	m.Tiles[7] = Tile{Kind: TileSystem, System: "46"}

	g := BuildGraph(m, reg, GraphOptions{})
	require.Equal(t, []int{0, 7}, g.ShortestPath(0, 7))
}

func TestBuildGraph_HyperlaneRotation(t *testing.T) {
	reg := systems.Default()
	m := NewMap(2)
	// rotated 60 degrees the 0-3 lane joins edges 1 and 4
	m.Tiles[1] = Tile{Kind: TileSystem, System: "83A", Rotation: 60}
	m.Tiles[8] = Tile{Kind: TileSystem, System: "46"} // across edge 1
	m.Tiles[6] = Tile{Kind: TileSystem, System: "47"} // across edge 4

	g := BuildGraph(m, reg, GraphOptions{})
	require.Contains(t, g.Neighbors(8), 6)
}

func TestReachableWithin(t *testing.T) {
	reg := systems.Default()
	g := BuildGraph(NewMap(2), reg, GraphOptions{IncludeOpen: true})

	near := g.ReachableWithin(0, 1)
	require.Len(t, near, 7)
	require.Equal(t, 0, near[0])
	for i := 1; i <= 6; i++ {
		require.Equal(t, 1, near[i], "tile %d", i)
	}

	require.Empty(t, g.ReachableWithin(99, 2))
}
