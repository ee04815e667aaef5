package draft

import (
	"reflect"
	"testing"

	"github.com/DoyleJ11/galaxy-draft-backend/internal/hexmap"
	"github.com/DoyleJ11/galaxy-draft-backend/internal/systems"
)

func TestDocumentClone_FullDocument(t *testing.T) {
	d := &Document{
		SchemaVersion:   SchemaVersion,
		ID:              "d1",
		Settings:        Settings{Seed: 9, Mode: ModeTexas, AllowRedraw: true},
		Players:         []Player{{ID: "p1", Name: "One", SliceIndex: -1, Seat: -1, SpeakerOrder: -1}},
		BaseOrder:       []string{"p1"},
		PickOrder:       []Slot{{Action: ActionPhase, Phase: PhasePriority}},
		Selections:      []Selection{{Type: SelectSlice, Player: "p1", Slice: 1}},
		Slices:          []hexmap.Slice{{Name: "A", Systems: []string{"19"}}},
		Map:             hexmap.NewMap(1),
		Staged:          map[string]map[string]string{PhasePriority: {"p1": "3"}},
		SeatOrder:       []string{"p1"},
		BlueHands:       map[string][]string{"p1": {"20", "21"}},
		RedHands:        map[string][]string{"p1": {"41"}},
		FactionHands:    map[string][]string{"p1": {"Winnu"}},
		FactionDrawPile: []string{"Nomad"},
	}

	c := d.Clone()
	if c == nil || c == d {
		t.Fatalf("clone must be a fresh document, got %v", c)
	}
	if !reflect.DeepEqual(d, c) {
		t.Fatalf("clone differs:\n got %+v\nwant %+v", c, d)
	}

	c.Staged[PhasePriority]["p1"] = "7"
	c.Map.Tiles[0].System = "19"
	c.BlueHands["p1"][0] = "mutated"
	if d.Staged[PhasePriority]["p1"] != "3" {
		t.Fatalf("clone shares staging with the original")
	}
	if d.Map.Tiles[0].System != systems.MecatolRex {
		t.Fatalf("clone shares map tiles with the original")
	}
	if d.BlueHands["p1"][0] != "20" {
		t.Fatalf("clone shares dealt hands with the original")
	}
}
