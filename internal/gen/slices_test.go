package gen

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DoyleJ11/galaxy-draft-backend/internal/systems"
)

func TestGenerateSlices_Deterministic(t *testing.T) {
	reg := systems.Default()
	pool := reg.PlanetIDs()

	a, err := GenerateSlices(reg, pool, 4, DefaultSliceSize, Constraints{}, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	b, err := GenerateSlices(reg, pool, 4, DefaultSliceSize, Constraints{}, rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	require.Equal(t, a, b)
	require.Equal(t, "Slice A", a[0].Name)
	require.Equal(t, "Slice D", a[3].Name)
}

func TestGenerateSlices_NoReuseByDefault(t *testing.T) {
	reg := systems.Default()

	slices, err := GenerateSlices(reg, reg.PlanetIDs(), 6, DefaultSliceSize, Constraints{}, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, sl := range slices {
		require.Len(t, sl.Systems, DefaultSliceSize)
		for _, id := range sl.Systems {
			require.False(t, seen[id], "system %s appears twice", id)
			seen[id] = true
		}
	}
}

func TestGenerateSlices_ConstraintsHold(t *testing.T) {
	reg := systems.Default()
	c := Constraints{MinLegendaries: 1, MinAlphaWormholes: 1, MinOptimalTotal: 4}

	slices, err := GenerateSlices(reg, reg.PlanetIDs(), 4, DefaultSliceSize, c, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	var legendaries, alphas int
	for _, sl := range slices {
		for _, id := range sl.Systems {
			sys, ok := reg.Lookup(id)
			require.True(t, ok)
			legendaries += sys.Legendaries()
			if sys.HasWormhole(systems.WormholeAlpha) {
				alphas++
			}
		}
	}
	require.GreaterOrEqual(t, legendaries, 1)
	require.GreaterOrEqual(t, alphas, 1)
}

func TestGenerateSlices_Exhausted(t *testing.T) {
	reg := systems.Default()
	pool := []string{"19", "20", "21", "22", "23"}

	_, err := GenerateSlices(reg, pool, 1, DefaultSliceSize, Constraints{MinLegendaries: 1}, rand.New(rand.NewSource(3)))
	require.ErrorIs(t, err, ErrExhausted)
}

func TestGenerateSlices_PoolTooSmall(t *testing.T) {
	reg := systems.Default()

	_, err := GenerateSlices(reg, []string{"19", "20"}, 2, 5, Constraints{}, rand.New(rand.NewSource(3)))
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrExhausted)

	_, err = GenerateSlices(reg, []string{"19", "20"}, 0, 5, Constraints{}, rand.New(rand.NewSource(3)))
	require.Error(t, err)
}
