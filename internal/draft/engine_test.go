package draft

import (
	"errors"
	"testing"

	"github.com/DoyleJ11/galaxy-draft-backend/internal/hexmap"
	"github.com/DoyleJ11/galaxy-draft-backend/internal/systems"
)

func testEngine() *Engine { return NewEngine(systems.Default()) }

func testPlayers(ids ...string) []Player {
	out := make([]Player, len(ids))
	for i, id := range ids {
		out[i] = Player{ID: id, Name: "Player " + id}
	}
	return out
}

func testSlices(n int) []hexmap.Slice {
	ids := []string{"19", "20", "21", "22", "23", "24"}
	out := make([]hexmap.Slice, n)
	for i := range out {
		out[i] = hexmap.Slice{Name: "Slice", Systems: []string{ids[i]}}
	}
	return out
}

func standardDoc(t *testing.T, settings Settings, ids ...string) *Document {
	t.Helper()
	settings.Mode = ModeStandard
	d, err := New("d1", settings, testPlayers(ids...), testSlices(len(ids)), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return d
}

func TestNew_SeedDeterminesBaseOrder(t *testing.T) {
	a := standardDoc(t, Settings{Seed: 11}, "p1", "p2", "p3", "p4")
	b := standardDoc(t, Settings{Seed: 11}, "p1", "p2", "p3", "p4")
	for i := range a.BaseOrder {
		if a.BaseOrder[i] != b.BaseOrder[i] {
			t.Fatalf("same seed, different base orders: %v vs %v", a.BaseOrder, b.BaseOrder)
		}
	}
	seen := map[string]bool{}
	for _, id := range a.BaseOrder {
		seen[id] = true
	}
	if len(seen) != 4 {
		t.Fatalf("base order is not a permutation: %v", a.BaseOrder)
	}
}

func TestNew_Rejects(t *testing.T) {
	if _, err := New("d1", Settings{}, testPlayers("p1"), testSlices(1), nil); err == nil {
		t.Fatalf("expected error for a single player")
	}
	if _, err := New("d1", Settings{}, testPlayers("p1", "p1"), testSlices(2), nil); err == nil {
		t.Fatalf("expected error for duplicate player IDs")
	}
	if _, err := New("d1", Settings{}, testPlayers("p1", "p2", "p3"), testSlices(2), nil); err == nil {
		t.Fatalf("expected error for fewer slices than players")
	}
}

func TestSubmitPick_WrongTurn(t *testing.T) {
	e := testEngine()
	d := standardDoc(t, Settings{Seed: 1}, "p1", "p2")
	notUp := d.BaseOrder[1]

	err := e.SubmitPick(d, notUp, Selection{Type: SelectSlice, Slice: 0})
	if !errors.Is(err, ErrWrongTurn) {
		t.Fatalf("want ErrWrongTurn, got %v", err)
	}
	if len(d.Selections) != 0 {
		t.Fatalf("rejected pick must not change the log")
	}
}

func TestSubmitPick_SliceTakenAndCategoryOnce(t *testing.T) {
	e := testEngine()
	d := standardDoc(t, Settings{Seed: 1}, "p1", "p2")
	first, second := d.BaseOrder[0], d.BaseOrder[1]

	if err := e.SubmitPick(d, first, Selection{Type: SelectSlice, Slice: 0}); err != nil {
		t.Fatalf("first pick: %v", err)
	}

	var verr *ValidationError
	err := e.SubmitPick(d, second, Selection{Type: SelectSlice, Slice: 0})
	if !errors.As(err, &verr) {
		t.Fatalf("taken slice: want ValidationError, got %v", err)
	}
	if err := e.SubmitPick(d, second, Selection{Type: SelectSlice, Slice: 1}); err != nil {
		t.Fatalf("second pick: %v", err)
	}

	// snake order for two players: second picks again, but a second slice
	// pick is out for them
	err = e.SubmitPick(d, second, Selection{Type: SelectSlice, Slice: 1})
	if !errors.As(err, &verr) {
		t.Fatalf("repeat category: want ValidationError, got %v", err)
	}
	if err := e.SubmitPick(d, second, Selection{Type: SelectSeat, Seat: 0}); err != nil {
		t.Fatalf("seat pick: %v", err)
	}
}

func TestSubmitPick_DuringPhase(t *testing.T) {
	e := testEngine()
	d := standardDoc(t, Settings{Seed: 1, PriorityPhase: true}, "p1", "p2")

	err := e.SubmitPick(d, d.BaseOrder[0], Selection{Type: SelectSlice, Slice: 0})
	if !errors.Is(err, ErrWrongTurn) {
		t.Fatalf("want ErrWrongTurn during a simultaneous phase, got %v", err)
	}
}

func TestStage_CommitOnLastPlayer(t *testing.T) {
	e := testEngine()
	d := standardDoc(t, Settings{Seed: 2, PriorityPhase: true}, "p1", "p2", "p3", "p4")
	d.Staged["other"] = map[string]string{"p9": "x"}

	for i, id := range []string{"p1", "p2", "p3"} {
		committed, err := e.Stage(d, PhasePriority, id, "3")
		if err != nil {
			t.Fatalf("stage %s: %v", id, err)
		}
		if committed {
			t.Fatalf("committed after %d of 4 players", i+1)
		}
	}
	if len(d.Selections) != 0 {
		t.Fatalf("no selection may commit before the last player stages")
	}

	committed, err := e.Stage(d, PhasePriority, "p4", "1")
	if err != nil || !committed {
		t.Fatalf("final stage: committed=%v err=%v", committed, err)
	}
	if len(d.Selections) != 1 || d.Selections[0].Type != CommitPriorityValues {
		t.Fatalf("want one priority commit, got %+v", d.Selections)
	}
	if len(d.Selections[0].Values) != 4 {
		t.Fatalf("commit must carry all staged values, got %v", d.Selections[0].Values)
	}
	if _, open := d.Staged[PhasePriority]; open {
		t.Fatalf("staging must clear on commit")
	}
	if _, kept := d.Staged["other"]; !kept {
		t.Fatalf("commit cleared staging for an unrelated phase")
	}
}

func TestStage_OverwriteAndValidate(t *testing.T) {
	e := testEngine()
	d := standardDoc(t, Settings{Seed: 2, PriorityPhase: true}, "p1", "p2")

	if _, err := e.Stage(d, PhasePriority, "p1", "3"); err != nil {
		t.Fatalf("stage: %v", err)
	}
	if _, err := e.Stage(d, PhasePriority, "p1", "5"); err != nil {
		t.Fatalf("restage: %v", err)
	}
	if got := d.Staged[PhasePriority]["p1"]; got != "5" {
		t.Fatalf("restage must overwrite, got %q", got)
	}
	if len(d.Staged[PhasePriority]) != 1 {
		t.Fatalf("restage must not add entries")
	}

	var verr *ValidationError
	if _, err := e.Stage(d, PhasePriority, "p2", "high"); !errors.As(err, &verr) {
		t.Fatalf("non-integer priority: want ValidationError, got %v", err)
	}
	if _, err := e.Stage(d, PhaseFaction, "p2", "Winnu"); !errors.Is(err, ErrWrongTurn) {
		t.Fatalf("inactive phase: want ErrWrongTurn, got %v", err)
	}
	if _, err := e.Stage(d, PhasePriority, "ghost", "1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown player: want ErrNotFound, got %v", err)
	}
}

func TestUnstage(t *testing.T) {
	e := testEngine()
	d := standardDoc(t, Settings{Seed: 2, PriorityPhase: true}, "p1", "p2")

	if _, err := e.Stage(d, PhasePriority, "p1", "3"); err != nil {
		t.Fatalf("stage: %v", err)
	}
	if err := e.Unstage(d, PhasePriority, "p1"); err != nil {
		t.Fatalf("unstage: %v", err)
	}
	if _, open := d.Staged[PhasePriority]; open {
		t.Fatalf("empty staging map must be removed")
	}
}

func TestUndoPhase(t *testing.T) {
	e := testEngine()
	d := standardDoc(t, Settings{Seed: 2, PriorityPhase: true}, "p1", "p2")

	if _, err := e.Stage(d, PhasePriority, "p1", "2"); err != nil {
		t.Fatalf("stage: %v", err)
	}
	if _, err := e.Stage(d, PhasePriority, "p2", "1"); err != nil {
		t.Fatalf("stage: %v", err)
	}

	if err := e.UndoPhase(d, PhasePriority, 0); !errors.Is(err, ErrOutOfSync) {
		t.Fatalf("stale expected count: want ErrOutOfSync, got %v", err)
	}
	if err := e.UndoPhase(d, PhasePriority, 1); err != nil {
		t.Fatalf("undo: %v", err)
	}
	if len(d.Selections) != 0 {
		t.Fatalf("undo must pop the phase commit")
	}

	var verr *ValidationError
	if err := e.UndoPhase(d, PhasePriority, 0); !errors.As(err, &verr) {
		t.Fatalf("nothing left to undo: want ValidationError, got %v", err)
	}
}

func TestUndoLastPick(t *testing.T) {
	e := testEngine()
	d := standardDoc(t, Settings{Seed: 1}, "p1", "p2")
	first := d.BaseOrder[0]

	if err := e.SubmitPick(d, first, Selection{Type: SelectSlice, Slice: 0}); err != nil {
		t.Fatalf("pick: %v", err)
	}
	if err := e.UndoLastPick(d, 0); !errors.Is(err, ErrOutOfSync) {
		t.Fatalf("stale expected count: want ErrOutOfSync, got %v", err)
	}
	if err := e.UndoLastPick(d, 1); err != nil {
		t.Fatalf("undo: %v", err)
	}
	if len(d.Selections) != 0 {
		t.Fatalf("undo must pop the pick")
	}

	var verr *ValidationError
	if err := e.UndoLastPick(d, 0); !errors.As(err, &verr) {
		t.Fatalf("empty log: want ValidationError, got %v", err)
	}
}

func TestUndoLastPick_RefusesPhaseCommit(t *testing.T) {
	e := testEngine()
	d := standardDoc(t, Settings{Seed: 2, PriorityPhase: true}, "p1", "p2")
	_, _ = e.Stage(d, PhasePriority, "p1", "2")
	if _, err := e.Stage(d, PhasePriority, "p2", "1"); err != nil {
		t.Fatalf("stage: %v", err)
	}

	var verr *ValidationError
	if err := e.UndoLastPick(d, 1); !errors.As(err, &verr) {
		t.Fatalf("want ValidationError for a phase commit, got %v", err)
	}
}

func TestBans_BlockFactionPicks(t *testing.T) {
	e := testEngine()
	s := Settings{Seed: 5, BanRounds: 1, FactionPool: []string{"Winnu", "Saar", "Yin", "Nomad"}}
	d := standardDoc(t, s, "p1", "p2")
	banner, other := d.BaseOrder[1], d.BaseOrder[0]

	if err := e.SubmitPick(d, banner, Selection{Type: BanFaction, Faction: "Winnu"}); err != nil {
		t.Fatalf("ban: %v", err)
	}
	var verr *ValidationError
	if err := e.SubmitPick(d, other, Selection{Type: BanFaction, Faction: "Winnu"}); !errors.As(err, &verr) {
		t.Fatalf("double ban: want ValidationError, got %v", err)
	}
	if err := e.SubmitPick(d, other, Selection{Type: BanFaction, Faction: "Saar"}); err != nil {
		t.Fatalf("second ban: %v", err)
	}

	// draft rounds begin; the banned faction is off the table
	if err := e.SubmitPick(d, other, Selection{Type: SelectFaction, Faction: "Winnu"}); !errors.As(err, &verr) {
		t.Fatalf("banned faction: want ValidationError, got %v", err)
	}
	if err := e.SubmitPick(d, other, Selection{Type: SelectFaction, Faction: "Yin"}); err != nil {
		t.Fatalf("faction pick: %v", err)
	}
}

func TestMinorFactionSlotMarksSelection(t *testing.T) {
	e := testEngine()
	d := &Document{
		SchemaVersion: SchemaVersion,
		ID:            "d1",
		Settings:      Settings{MinorFactionPool: []string{"M1"}},
		Players:       testPlayers("p1"),
		PickOrder:     []Slot{{Action: ActionMinorFaction, Player: "p1"}},
	}
	if err := e.SubmitPick(d, "p1", Selection{Type: SelectFaction, Faction: "M1"}); err != nil {
		t.Fatalf("minor pick: %v", err)
	}
	if !d.Selections[0].Minor {
		t.Fatalf("minor-round selection must be marked minor")
	}
}

func TestComplete(t *testing.T) {
	e := testEngine()
	d := standardDoc(t, Settings{Seed: 1}, "p1", "p2")
	d.PickOrder = d.PickOrder[:1]

	if err := e.SubmitPick(d, d.BaseOrder[0], Selection{Type: SelectSlice, Slice: 0}); err != nil {
		t.Fatalf("pick: %v", err)
	}
	if !d.Complete() {
		t.Fatalf("draft should be complete")
	}
	if err := e.SubmitPick(d, d.BaseOrder[0], Selection{Type: SelectSeat, Seat: 0}); !errors.Is(err, ErrComplete) {
		t.Fatalf("want ErrComplete, got %v", err)
	}
	if _, ok := e.CurrentSlot(d); ok {
		t.Fatalf("complete draft has no current slot")
	}
}

func TestPlayersView(t *testing.T) {
	e := testEngine()
	d := standardDoc(t, Settings{Seed: 1}, "p1", "p2")
	first, second := d.BaseOrder[0], d.BaseOrder[1]

	if err := e.SubmitPick(d, first, Selection{Type: SelectSlice, Slice: 1}); err != nil {
		t.Fatalf("pick: %v", err)
	}
	d.Selections = append(d.Selections, Selection{
		Type:   CommitPriorityValues,
		Phase:  PhasePriority,
		Values: map[string]string{first: "2", second: "1"},
	})

	var p1, p2 Player
	for _, p := range e.PlayersView(d) {
		switch p.ID {
		case first:
			p1 = p
		case second:
			p2 = p
		}
	}
	if p1.SliceIndex != 1 {
		t.Fatalf("want slice 1 for %s, got %d", first, p1.SliceIndex)
	}
	if p2.SpeakerOrder != 1 || p1.SpeakerOrder != 2 {
		t.Fatalf("priority values must rank speaker order: got %d and %d", p2.SpeakerOrder, p1.SpeakerOrder)
	}
	if len(d.Players) != 2 || d.Players[0].SliceIndex != -1 {
		t.Fatalf("view must not mutate the document")
	}
}

func TestPlayersView_PriorityTieBreaksOnBaseOrder(t *testing.T) {
	e := testEngine()
	d := standardDoc(t, Settings{Seed: 1}, "p1", "p2")
	first, second := d.BaseOrder[0], d.BaseOrder[1]
	d.Selections = append(d.Selections, Selection{
		Type:   CommitPriorityValues,
		Phase:  PhasePriority,
		Values: map[string]string{first: "1", second: "1"},
	})

	for _, p := range e.PlayersView(d) {
		if p.ID == first && p.SpeakerOrder != 1 {
			t.Fatalf("tie must go to the earlier base-order player")
		}
	}
}
