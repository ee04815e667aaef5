package gen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DoyleJ11/galaxy-draft-backend/internal/hexmap"
	"github.com/DoyleJ11/galaxy-draft-backend/internal/systems"
)

func TestDefaultHomePositions(t *testing.T) {
	cases := []struct {
		rings, players int
		want           []int
	}{
		{3, 6, []int{19, 22, 25, 28, 31, 34}},
		{3, 2, []int{19, 28}},
		{3, 3, []int{19, 25, 31}},
		{2, 4, []int{7, 10, 13, 16}},
	}
	for _, c := range cases {
		got, err := DefaultHomePositions(c.rings, c.players)
		require.NoError(t, err, "%d players on %d rings", c.players, c.rings)
		require.Equal(t, c.want, got)
	}

	_, err := DefaultHomePositions(3, 1)
	require.Error(t, err)
	_, err = DefaultHomePositions(2, 13)
	require.Error(t, err)
}

func TestGenerateMap(t *testing.T) {
	m, err := GenerateMap(3, []int{19, 25, 31})
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	require.Equal(t, []int{19, 25, 31}, m.HomeIndices())
	for seat, idx := range []int{19, 25, 31} {
		require.Equal(t, seat, m.Tiles[idx].Seat)
	}

	_, err = GenerateMap(3, []int{19, 19})
	require.Error(t, err)
	_, err = GenerateMap(3, []int{0})
	require.Error(t, err)
	_, err = GenerateMap(3, []int{37})
	require.Error(t, err)
}

func TestFillSlices(t *testing.T) {
	reg := systems.Default()
	m, err := GenerateMap(2, []int{7})
	require.NoError(t, err)

	err = FillSlices(m, reg, map[int]hexmap.Slice{
		0: {Name: "Slice A", Systems: []string{"19", "20", "21"}},
	})
	require.NoError(t, err)

	// nearest open tiles around the home, closest first, ties by index
	require.Equal(t, "19", m.Tiles[1].System)
	require.Equal(t, "20", m.Tiles[8].System)
	require.Equal(t, "21", m.Tiles[18].System)
}

func TestFillSlices_Errors(t *testing.T) {
	reg := systems.Default()
	m, err := GenerateMap(2, []int{7})
	require.NoError(t, err)

	err = FillSlices(m, reg, map[int]hexmap.Slice{1: {Systems: []string{"19"}}})
	require.Error(t, err, "no home for seat 1")

	big := make([]string, 12)
	for i := range big {
		big[i] = "19"
	}
	err = FillSlices(m, reg, map[int]hexmap.Slice{0: {Systems: big}})
	require.Error(t, err, "more systems than open tiles in range")
}
