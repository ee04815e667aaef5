package valuation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DoyleJ11/galaxy-draft-backend/internal/hexmap"
	"github.com/DoyleJ11/galaxy-draft-backend/internal/systems"
)

func TestSliceValue_Modifiers(t *testing.T) {
	reg := systems.Default()

	// Primor (legendary), Lodor (alpha wormhole), Abyz/Fria (optimal 5,
	// high quality in a home-adjacent slot)
	sl := hexmap.Slice{Name: "Slice A", Systems: []string{"65", "26", "38"}}
	b := SliceValue(reg, sl, 0)

	require.Equal(t, OptimalStats{Resources: 8}, b.Optimal)
	require.Len(t, b.Modifiers, 3)
	deltas := map[string]float64{}
	for _, m := range b.Modifiers {
		deltas[m.Name] = m.Delta
	}
	require.Equal(t, 1.5, deltas["legendary Primor"])
	require.Equal(t, 0.5, deltas["wormhole alpha"])
	require.Equal(t, 0.5, deltas["strong adjacent 38"])

	require.InDelta(t, 10.5, b.Total, 1e-9)
	require.Equal(t, "10.5", b.FormatTotal())
}

func TestSliceValue_TechSkipAndPenalty(t *testing.T) {
	reg := systems.Default()

	// Wellon carrying a cybernetic skip, with one point contested
	sl := hexmap.Slice{Systems: []string{"19"}}
	b := SliceValue(reg, sl, 1)

	require.Equal(t, OptimalStats{Influence: 2}, b.Optimal)
	require.Len(t, b.Modifiers, 1)
	require.Equal(t, "tech skip Wellon", b.Modifiers[0].Name)
	require.InDelta(t, 1.75, b.Total, 1e-9)
}

func TestSliceValue_RepeatedWormholesCountOnce(t *testing.T) {
	reg := systems.Default()

	// Lodor and the empty alpha wormhole tile share one alpha bonus
	sl := hexmap.Slice{Systems: []string{"26", "39", "40"}}
	b := SliceValue(reg, sl, 0)

	var wormholes int
	for _, m := range b.Modifiers {
		if m.Name == "wormhole alpha" || m.Name == "wormhole beta" {
			wormholes++
		}
	}
	require.Equal(t, 2, wormholes)
}
