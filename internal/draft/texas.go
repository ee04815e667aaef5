package draft

import (
	"github.com/DoyleJ11/galaxy-draft-backend/internal/hexmap"
)

// Texas-style hand dealing. Hands are never stored mid-draft: the current
// state of each color pool is derived by replaying every committed round
// over the initial deal, which makes whole-phase undo a plain pop of the
// commit. Round application is a pure function from prior hands to new
// hands so replays never alias shared slices.

// passRound applies one completed keep-and-pass round. Every player keeps
// exactly one tile from their current hand and the rest passes to the next
// seat; a player whose pick is not in their current hand is skipped and
// their hand is dropped, not passed.
func passRound(seatOrder []string, hands, keeps map[string][]string, picks map[string]string) (map[string][]string, map[string][]string) {
	nextHands := make(map[string][]string, len(seatOrder))
	nextKeeps := make(map[string][]string, len(seatOrder))
	for _, p := range seatOrder {
		nextKeeps[p] = append([]string(nil), keeps[p]...)
	}
	for i, p := range seatOrder {
		next := seatOrder[(i+1)%len(seatOrder)]
		pick := picks[p]
		if containsString(hands[p], pick) {
			nextKeeps[p] = append(nextKeeps[p], pick)
			nextHands[next] = removeOne(hands[p], pick)
		} else {
			nextHands[next] = nil
		}
	}
	return nextHands, nextKeeps
}

// tileHands replays the committed rounds of one color pool and returns the
// current hands and per-player keeps.
func (e *Engine) tileHands(d *Document, blue bool) (hands, keeps map[string][]string) {
	initial := d.RedHands
	match := isRedPhase
	if blue {
		initial = d.BlueHands
		match = isBluePhase
	}
	hands = make(map[string][]string, len(initial))
	for p, h := range initial {
		hands[p] = append([]string(nil), h...)
	}
	keeps = make(map[string][]string, len(initial))
	for _, sel := range d.Selections {
		if sel.Type == CommitSimultaneous && match(sel.Phase) {
			hands, keeps = passRound(d.SeatOrder, hands, keeps, sel.Values)
		}
	}
	return hands, keeps
}

// UsableTiles is a player's drafted tile set for one color: keeps plus
// whatever is left in their hand after the final pass.
func (e *Engine) UsableTiles(d *Document, playerID string, blue bool) []string {
	hands, keeps := e.tileHands(d, blue)
	out := append([]string(nil), keeps[playerID]...)
	return append(out, hands[playerID]...)
}

// resolveFactionRedraws turns a complete faction staging map into final
// assignments. Redraw tokens pop from the draw pile in seat order; a player
// whose pick is invalid, or who redraws when the pile is empty or redraw is
// disabled, falls back to the first faction they were offered.
func (e *Engine) resolveFactionRedraws(d *Document, values map[string]string) map[string]string {
	pile := append([]string(nil), d.FactionDrawPile...)
	out := make(map[string]string, len(values))
	for _, p := range d.SeatOrder {
		hand := d.FactionHands[p]
		v := values[p]
		switch {
		case v == RedrawToken && d.Settings.AllowRedraw && len(pile) > 0:
			v = pile[0]
			pile = pile[1:]
		case containsString(hand, v) && v != RedrawToken:
		default:
			v = hand[0]
		}
		out[p] = v
	}
	return out
}

func (e *Engine) validatePlacement(d *Document, playerID string, sel Selection) error {
	if d.Map == nil {
		return invalidf("draft has no map to place tiles on")
	}
	usable := append(e.UsableTiles(d, playerID, true), e.UsableTiles(d, playerID, false)...)
	bluePlaced, redPlaced := 0, 0
	for _, s := range d.Selections {
		if s.Type == PlaceTile && s.Player == playerID {
			usable = removeOne(usable, s.System)
			if containsString(d.Settings.BluePool, s.System) {
				bluePlaced++
			} else {
				redPlaced++
			}
		}
	}
	if !containsString(usable, sel.System) {
		return invalidf("system %q is not in the player's drafted tiles", sel.System)
	}
	switch {
	case containsString(d.Settings.BluePool, sel.System):
		if bluePlaced >= d.Settings.BlueKeeps {
			return invalidf("already placed %d blue tiles", bluePlaced)
		}
	case containsString(d.Settings.RedPool, sel.System):
		if redPlaced >= d.Settings.RedKeeps {
			return invalidf("already placed %d red tiles", redPlaced)
		}
	default:
		return invalidf("system %q is in neither tile pool", sel.System)
	}

	if sel.TileIndex <= 0 || sel.TileIndex >= len(d.Map.Tiles) {
		return invalidf("tile index %d out of range", sel.TileIndex)
	}
	if d.Map.Tiles[sel.TileIndex].Kind != hexmap.TileOpen {
		return invalidf("tile %d is not open", sel.TileIndex)
	}

	home := -1
	seat := d.seatOf(playerID)
	for i, t := range d.Map.Tiles {
		if t.Kind == hexmap.TileHome && t.Seat == seat {
			home = i
			break
		}
	}
	if home < 0 {
		return invalidf("no home tile for player %q", playerID)
	}
	g := hexmap.BuildGraph(d.Map, e.reg, hexmap.GraphOptions{IncludeOpen: true})
	if _, ok := g.ReachableWithin(home, 2)[sel.TileIndex]; !ok {
		return invalidf("tile %d is not within 2 of the player's home", sel.TileIndex)
	}
	return nil
}

func (e *Engine) applyPlacement(d *Document, sel Selection) {
	d.Map.Tiles[sel.TileIndex] = hexmap.Tile{Kind: hexmap.TileSystem, System: sel.System}
}

func (e *Engine) revertPlacement(d *Document, sel Selection) {
	d.Map.Tiles[sel.TileIndex] = hexmap.Tile{Kind: hexmap.TileOpen}
}

func removeOne(s []string, v string) []string {
	out := make([]string, 0, len(s))
	removed := false
	for _, x := range s {
		if !removed && x == v {
			removed = true
			continue
		}
		out = append(out, x)
	}
	return out
}
