// Package draft is the sequencing engine: it builds the ordered sequence of
// picks and phases for a draft, validates and applies selections as they
// arrive, stages simultaneous-phase submissions until everyone is in, and
// undoes picks and phases under optimistic concurrency.
//
// The engine owns no I/O and no locks. A Document is handed in, mutated in
// memory, and handed back; the lobby serializes all mutations per draft.
package draft

import (
	"encoding/json"

	"github.com/DoyleJ11/galaxy-draft-backend/internal/hexmap"
)

type Mode string

const (
	ModeStandard Mode = "standard"
	ModeTexas    Mode = "texas"
)

// Player is identity plus the attributes a draft assigns. Assigned fields
// are derived from the selection log by PlayersView; -1 or "" means not yet
// assigned.
type Player struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Faction      string `json:"faction,omitempty"`
	MinorFaction string `json:"minorFaction,omitempty"`
	SliceIndex   int    `json:"sliceIndex"`
	Seat         int    `json:"seat"`
	SpeakerOrder int    `json:"speakerOrder"`
	Color        string `json:"color,omitempty"`
	HomeSystem   string `json:"homeSystem,omitempty"`
}

type SelectionType string

const (
	SelectSlice          SelectionType = "select_slice"
	SelectSeat           SelectionType = "select_seat"
	SelectFaction        SelectionType = "select_faction"
	SelectSpeakerOrder   SelectionType = "select_speaker_order"
	SelectColor          SelectionType = "select_color"
	BanFaction           SelectionType = "ban_faction"
	CommitSimultaneous   SelectionType = "commit_simultaneous"
	CommitHomeSystems    SelectionType = "commit_home_systems"
	CommitPriorityValues SelectionType = "commit_priority_values"
	PlaceTile            SelectionType = "place_tile"
)

// Selection is one committed pick. The log of selections is append-only and
// its length is the authoritative pick count.
type Selection struct {
	Type   SelectionType `json:"type"`
	Player string        `json:"player,omitempty"`

	Slice   int    `json:"slice"`
	Seat    int    `json:"seat"`
	Faction string `json:"faction,omitempty"`
	// Minor marks a faction selection made in the minor-faction round.
	Minor bool   `json:"minor,omitempty"`
	Order int    `json:"order"`
	Color string `json:"color,omitempty"`

	// simultaneous commits carry the phase and all resolved values
	Phase  string            `json:"phase,omitempty"`
	Values map[string]string `json:"values,omitempty"`

	// tile placement
	TileIndex int    `json:"tileIndex"`
	System    string `json:"system,omitempty"`
}

type Action string

const (
	ActionDraft        Action = "draft" // one of slice, seat, faction per turn
	ActionBan          Action = "ban"
	ActionSpeaker      Action = "speaker"
	ActionMinorFaction Action = "minor_faction"
	ActionColor        Action = "color"
	ActionPlaceTile    Action = "place_tile"
	ActionPhase        Action = "phase" // simultaneous, all players act
)

// Slot is one entry of the pick order: either a sequential turn for one
// player or a simultaneous phase marker.
type Slot struct {
	Action Action `json:"action"`
	Player string `json:"player,omitempty"`
	Phase  string `json:"phase,omitempty"`
}

func (s Slot) Simultaneous() bool { return s.Action == ActionPhase }

// Phase names. Tile rounds are numbered: "blue-1", "red-2", ...
const (
	PhasePriority    = "priorityValue"
	PhaseFaction     = "faction"
	PhaseHomeSystems = "homeSystems"

	bluePhasePrefix = "blue-"
	redPhasePrefix  = "red-"
)

// RedrawToken defers a faction choice to the shared draw pile.
const RedrawToken = "redraw"

type Settings struct {
	Seed int64 `json:"seed"`
	Mode Mode  `json:"mode"`

	// standard mode
	BanRounds         int  `json:"banRounds,omitempty"`
	PriorityPhase     bool `json:"priorityPhase,omitempty"`
	SpeakerOrderRound bool `json:"speakerOrderRound,omitempty"`
	MinorFactionRound bool `json:"minorFactionRound,omitempty"`
	ColorRound        bool `json:"colorRound,omitempty"`

	FactionPool      []string `json:"factionPool,omitempty"`
	MinorFactionPool []string `json:"minorFactionPool,omitempty"`
	ColorPool        []string `json:"colorPool,omitempty"`

	// texas mode
	AllowRedraw  bool     `json:"allowRedraw,omitempty"`
	BluePool     []string `json:"bluePool,omitempty"`
	RedPool      []string `json:"redPool,omitempty"`
	BlueHandSize int      `json:"blueHandSize,omitempty"`
	RedHandSize  int      `json:"redHandSize,omitempty"`
	BlueKeeps    int      `json:"blueKeeps,omitempty"`
	RedKeeps     int      `json:"redKeeps,omitempty"`
	FactionHand  int      `json:"factionHand,omitempty"`
}

func (s Settings) withDefaults() Settings {
	if s.Mode == "" {
		s.Mode = ModeStandard
	}
	if s.BlueHandSize == 0 {
		s.BlueHandSize = 4
	}
	if s.RedHandSize == 0 {
		s.RedHandSize = 3
	}
	if s.BlueKeeps == 0 {
		s.BlueKeeps = 3
	}
	if s.RedKeeps == 0 {
		s.RedKeeps = 2
	}
	if s.FactionHand == 0 {
		s.FactionHand = 3
	}
	return s
}

// SchemaVersion is the current Document shape. Older persisted drafts are
// normalized by Migrate at load time.
const SchemaVersion = 2

// Document is the full state of one draft: the unit the persistence
// collaborator loads and saves and the broadcast collaborator publishes.
// PickOrder is built once at creation and never mutated; the current slot is
// always PickOrder[len(Selections)]. Staged is ephemeral and safe to lose.
type Document struct {
	SchemaVersion int      `json:"schemaVersion"`
	ID            string   `json:"id"`
	Settings      Settings `json:"settings"`
	Players       []Player `json:"players"`

	// BaseOrder is the seeded pick-order shuffle, kept for tie-breaking.
	BaseOrder  []string       `json:"baseOrder,omitempty"`
	PickOrder  []Slot         `json:"pickOrder"`
	Selections []Selection    `json:"selections"`
	Slices     []hexmap.Slice `json:"slices"`
	Map        *hexmap.Map    `json:"map,omitempty"`

	// phase -> player -> proposed value, held until the phase commits
	Staged map[string]map[string]string `json:"staged,omitempty"`

	// texas deal snapshot, written once at creation; hands during play are
	// derived by replaying committed phase selections over these
	SeatOrder       []string            `json:"seatOrder,omitempty"`
	BlueHands       map[string][]string `json:"blueHands,omitempty"`
	RedHands        map[string][]string `json:"redHands,omitempty"`
	FactionHands    map[string][]string `json:"factionHands,omitempty"`
	FactionDrawPile []string            `json:"factionDrawPile,omitempty"`

	// legacy staging shapes from schema version 1, consumed by Migrate
	LegacyStagedPriorities map[string]string `json:"stagedPriorities,omitempty"`
	LegacyStagedFactions   map[string]string `json:"stagedFactions,omitempty"`
}

// Clone deep-copies the document through its JSON form, so snapshots handed
// to readers never alias the actor's live state. Every Document field
// marshals cleanly, so a codec failure here is a corrupted document and
// panics rather than handing callers a nil snapshot.
func (d *Document) Clone() *Document {
	raw, err := json.Marshal(d)
	if err != nil {
		panic("draft: clone marshal: " + err.Error())
	}
	var out Document
	if err := json.Unmarshal(raw, &out); err != nil {
		panic("draft: clone unmarshal: " + err.Error())
	}
	return &out
}

// Complete reports whether every slot of the pick order has been consumed.
func (d *Document) Complete() bool { return len(d.Selections) >= len(d.PickOrder) }

func (d *Document) player(id string) (Player, bool) {
	for _, p := range d.Players {
		if p.ID == id {
			return p, true
		}
	}
	return Player{}, false
}

func (d *Document) seatOf(playerID string) int {
	for i, id := range d.SeatOrder {
		if id == playerID {
			return i
		}
	}
	return -1
}
