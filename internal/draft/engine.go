package draft

import (
	"sort"
	"strconv"
	"strings"

	"github.com/DoyleJ11/galaxy-draft-backend/internal/hexmap"
	"github.com/DoyleJ11/galaxy-draft-backend/internal/systems"
	"github.com/DoyleJ11/galaxy-draft-backend/internal/valuation"
)

// Engine applies selections to draft documents. It is stateless apart from
// the system registry; every call takes the Document it operates on.
type Engine struct {
	reg *systems.Registry
}

func NewEngine(reg *systems.Registry) *Engine { return &Engine{reg: reg} }

// ValueSlice scores a slice with the engine's registry. Read-only, safe to
// call on any snapshot.
func (e *Engine) ValueSlice(sl hexmap.Slice) valuation.Breakdown {
	return valuation.SliceValue(e.reg, sl, 0)
}

// CurrentSlot returns the active pick-order slot, or ok=false when the draft
// is complete.
func (e *Engine) CurrentSlot(d *Document) (Slot, bool) {
	if d.Complete() {
		return Slot{}, false
	}
	return d.PickOrder[len(d.Selections)], true
}

// SubmitPick validates and appends one sequential selection. A rejected
// submission leaves the log unchanged.
func (e *Engine) SubmitPick(d *Document, playerID string, sel Selection) error {
	slot, ok := e.CurrentSlot(d)
	if !ok {
		return ErrComplete
	}
	if slot.Simultaneous() {
		return ErrWrongTurn
	}
	if slot.Player != playerID {
		return ErrWrongTurn
	}
	if _, ok := d.player(playerID); !ok {
		return ErrNotFound
	}
	if err := e.validatePick(d, slot, playerID, &sel); err != nil {
		return err
	}
	sel.Player = playerID
	d.Selections = append(d.Selections, sel)
	if sel.Type == PlaceTile {
		e.applyPlacement(d, sel)
	}
	return nil
}

func (e *Engine) validatePick(d *Document, slot Slot, playerID string, sel *Selection) error {
	switch slot.Action {
	case ActionDraft:
		switch sel.Type {
		case SelectSlice, SelectSeat, SelectFaction:
			sel.Minor = false
		default:
			return invalidf("slot expects a slice, seat, or faction pick, got %q", sel.Type)
		}
		if pickedCategory(d, playerID, sel.Type) {
			return invalidf("player already picked a %s", sel.Type)
		}
	case ActionBan:
		if sel.Type != BanFaction {
			return invalidf("slot expects a faction ban, got %q", sel.Type)
		}
	case ActionSpeaker:
		if sel.Type != SelectSpeakerOrder {
			return invalidf("slot expects a speaker-order pick, got %q", sel.Type)
		}
	case ActionMinorFaction:
		if sel.Type != SelectFaction {
			return invalidf("slot expects a minor-faction pick, got %q", sel.Type)
		}
		sel.Minor = true
	case ActionColor:
		if sel.Type != SelectColor {
			return invalidf("slot expects a color pick, got %q", sel.Type)
		}
	case ActionPlaceTile:
		if sel.Type != PlaceTile {
			return invalidf("slot expects a tile placement, got %q", sel.Type)
		}
		return e.validatePlacement(d, playerID, *sel)
	}

	switch sel.Type {
	case SelectSlice:
		if sel.Slice < 0 || sel.Slice >= len(d.Slices) {
			return invalidf("slice %d out of range", sel.Slice)
		}
		if taken(d, func(s Selection) bool { return s.Type == SelectSlice && s.Slice == sel.Slice }) {
			return invalidf("slice %d already taken", sel.Slice)
		}
	case SelectSeat:
		if sel.Seat < 0 || sel.Seat >= len(d.Players) {
			return invalidf("seat %d out of range", sel.Seat)
		}
		if taken(d, func(s Selection) bool { return s.Type == SelectSeat && s.Seat == sel.Seat }) {
			return invalidf("seat %d already taken", sel.Seat)
		}
	case SelectFaction:
		pool := d.Settings.FactionPool
		if sel.Minor {
			pool = d.Settings.MinorFactionPool
		}
		if !containsString(pool, sel.Faction) {
			return invalidf("faction %q not in the pool", sel.Faction)
		}
		if e.factionBanned(d, sel.Faction) {
			return invalidf("faction %q is banned", sel.Faction)
		}
		if taken(d, func(s Selection) bool {
			return s.Type == SelectFaction && s.Minor == sel.Minor && s.Faction == sel.Faction
		}) {
			return invalidf("faction %q already taken", sel.Faction)
		}
	case BanFaction:
		if !containsString(d.Settings.FactionPool, sel.Faction) {
			return invalidf("faction %q not in the pool", sel.Faction)
		}
		if e.factionBanned(d, sel.Faction) {
			return invalidf("faction %q already banned", sel.Faction)
		}
	case SelectSpeakerOrder:
		if sel.Order < 1 || sel.Order > len(d.Players) {
			return invalidf("speaker order %d out of range", sel.Order)
		}
		if taken(d, func(s Selection) bool { return s.Type == SelectSpeakerOrder && s.Order == sel.Order }) {
			return invalidf("speaker order %d already taken", sel.Order)
		}
	case SelectColor:
		if !containsString(d.Settings.ColorPool, sel.Color) {
			return invalidf("color %q not in the pool", sel.Color)
		}
		if taken(d, func(s Selection) bool { return s.Type == SelectColor && s.Color == sel.Color }) {
			return invalidf("color %q already taken", sel.Color)
		}
	}
	return nil
}

// Stage records one player's proposed value for the active simultaneous
// phase, overwriting any prior value. When the last configured player
// stages, the phase resolves into a single committed selection and the
// staging map for the phase is cleared; committed reports whether that
// happened. Waiting for more players is not an error.
func (e *Engine) Stage(d *Document, phase, playerID, value string) (committed bool, err error) {
	slot, ok := e.CurrentSlot(d)
	if !ok {
		return false, ErrComplete
	}
	if !slot.Simultaneous() || slot.Phase != phase {
		return false, ErrWrongTurn
	}
	if _, ok := d.player(playerID); !ok {
		return false, ErrNotFound
	}
	if err := e.validateStagedValue(d, phase, playerID, value); err != nil {
		return false, err
	}

	if d.Staged == nil {
		d.Staged = make(map[string]map[string]string)
	}
	if d.Staged[phase] == nil {
		d.Staged[phase] = make(map[string]string)
	}
	d.Staged[phase][playerID] = value

	if len(d.Staged[phase]) < len(d.Players) {
		return false, nil
	}
	d.Selections = append(d.Selections, e.resolvePhase(d, phase, d.Staged[phase]))
	delete(d.Staged, phase)
	return true, nil
}

func (e *Engine) validateStagedValue(d *Document, phase, playerID, value string) error {
	switch {
	case phase == PhasePriority:
		if _, err := strconv.Atoi(value); err != nil {
			return invalidf("priority value %q is not an integer", value)
		}
	case value == "":
		return invalidf("empty value for phase %q", phase)
	}
	return nil
}

// resolvePhase folds a complete staging map into one committed selection.
// Most phases pass values through; the texas faction phase resolves redraw
// tokens against the draw pile.
func (e *Engine) resolvePhase(d *Document, phase string, staged map[string]string) Selection {
	values := make(map[string]string, len(staged))
	for k, v := range staged {
		values[k] = v
	}
	sel := Selection{Phase: phase, Values: values}
	switch {
	case phase == PhasePriority:
		sel.Type = CommitPriorityValues
	case phase == PhaseHomeSystems:
		sel.Type = CommitHomeSystems
	case phase == PhaseFaction && len(d.FactionHands) > 0:
		sel.Type = CommitSimultaneous
		sel.Values = e.resolveFactionRedraws(d, values)
	default:
		sel.Type = CommitSimultaneous
	}
	return sel
}

// Unstage removes one player's staged value; the phase stays open.
func (e *Engine) Unstage(d *Document, phase, playerID string) error {
	slot, ok := e.CurrentSlot(d)
	if !ok {
		return ErrComplete
	}
	if !slot.Simultaneous() || slot.Phase != phase {
		return ErrWrongTurn
	}
	if _, ok := d.player(playerID); !ok {
		return ErrNotFound
	}
	if d.Staged[phase] != nil {
		delete(d.Staged[phase], playerID)
		if len(d.Staged[phase]) == 0 {
			delete(d.Staged, phase)
		}
	}
	return nil
}

// UndoPhase clears any open staging for the phase and pops its committed
// selection if that commit is the most recent one. The caller's expected
// selection count guards against concurrent undos.
func (e *Engine) UndoPhase(d *Document, phase string, expected int) error {
	if expected != len(d.Selections) {
		return ErrOutOfSync
	}
	did := false
	if len(d.Staged[phase]) > 0 {
		delete(d.Staged, phase)
		did = true
	}
	if n := len(d.Selections); n > 0 {
		last := d.Selections[n-1]
		if isPhaseCommit(last.Type) && last.Phase == phase {
			d.Selections = d.Selections[:n-1]
			did = true
		}
	}
	if !did {
		return invalidf("nothing to undo for phase %q", phase)
	}
	return nil
}

// UndoLastPick pops the most recent sequential selection. Phase commits are
// undone through UndoPhase.
func (e *Engine) UndoLastPick(d *Document, expected int) error {
	if expected != len(d.Selections) {
		return ErrOutOfSync
	}
	n := len(d.Selections)
	if n == 0 {
		return invalidf("nothing to undo")
	}
	last := d.Selections[n-1]
	if isPhaseCommit(last.Type) {
		return invalidf("last selection committed phase %q, undo the phase instead", last.Phase)
	}
	if last.Type == PlaceTile {
		e.revertPlacement(d, last)
	}
	d.Selections = d.Selections[:n-1]
	return nil
}

func isPhaseCommit(t SelectionType) bool {
	return t == CommitSimultaneous || t == CommitHomeSystems || t == CommitPriorityValues
}

// PlayersView derives the players' assigned attributes by folding the
// selection log over their identities.
func (e *Engine) PlayersView(d *Document) []Player {
	out := make([]Player, len(d.Players))
	copy(out, d.Players)
	at := func(id string) *Player {
		for i := range out {
			if out[i].ID == id {
				return &out[i]
			}
		}
		return nil
	}
	for i, id := range d.SeatOrder {
		if p := at(id); p != nil {
			p.Seat = i
		}
	}
	for _, sel := range d.Selections {
		p := at(sel.Player)
		switch sel.Type {
		case SelectSlice:
			p.SliceIndex = sel.Slice
		case SelectSeat:
			p.Seat = sel.Seat
		case SelectFaction:
			if sel.Minor {
				p.MinorFaction = sel.Faction
			} else {
				p.Faction = sel.Faction
			}
		case SelectSpeakerOrder:
			p.SpeakerOrder = sel.Order
		case SelectColor:
			p.Color = sel.Color
		case CommitSimultaneous:
			if sel.Phase == PhaseFaction {
				for id, faction := range sel.Values {
					if p := at(id); p != nil {
						p.Faction = faction
					}
				}
			}
		case CommitHomeSystems:
			for id, sys := range sel.Values {
				if p := at(id); p != nil {
					p.HomeSystem = sys
				}
			}
		case CommitPriorityValues:
			e.assignSpeakerOrder(d, out, sel.Values)
		}
	}
	return out
}

// assignSpeakerOrder ranks players by staged priority value ascending, ties
// broken by seat order in texas mode and by the base shuffle otherwise.
func (e *Engine) assignSpeakerOrder(d *Document, players []Player, values map[string]string) {
	tiebreak := d.BaseOrder
	if len(d.SeatOrder) > 0 {
		tiebreak = d.SeatOrder
	}
	pos := make(map[string]int, len(tiebreak))
	for i, id := range tiebreak {
		pos[id] = i
	}
	ids := make([]string, 0, len(values))
	for id := range values {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, _ := strconv.Atoi(values[ids[i]])
		b, _ := strconv.Atoi(values[ids[j]])
		if a != b {
			return a < b
		}
		return pos[ids[i]] < pos[ids[j]]
	})
	for rank, id := range ids {
		for i := range players {
			if players[i].ID == id {
				players[i].SpeakerOrder = rank + 1
			}
		}
	}
}

func (e *Engine) factionBanned(d *Document, faction string) bool {
	return taken(d, func(s Selection) bool { return s.Type == BanFaction && s.Faction == faction })
}

func pickedCategory(d *Document, playerID string, t SelectionType) bool {
	return taken(d, func(s Selection) bool { return s.Player == playerID && s.Type == t && !s.Minor })
}

func taken(d *Document, match func(Selection) bool) bool {
	for _, s := range d.Selections {
		if match(s) {
			return true
		}
	}
	return false
}

func containsString(pool []string, v string) bool {
	for _, x := range pool {
		if x == v {
			return true
		}
	}
	return false
}

func isBluePhase(phase string) bool { return strings.HasPrefix(phase, bluePhasePrefix) }
func isRedPhase(phase string) bool  { return strings.HasPrefix(phase, redPhasePrefix) }
