package draft

import (
	"fmt"
	"math/rand"

	"github.com/DoyleJ11/galaxy-draft-backend/internal/hexmap"
)

// New builds a fresh Document: shuffles the base order from the seed, builds
// the pick order once, and in texas mode runs the independent seat shuffle
// and deals the tile and faction hands. Slices and map are the generation
// engine's output, treated as read-only from here on (texas tile placement
// excepted).
func New(id string, settings Settings, players []Player, slices []hexmap.Slice, m *hexmap.Map) (*Document, error) {
	settings = settings.withDefaults()
	if len(players) < 2 {
		return nil, fmt.Errorf("draft: need at least 2 players, got %d", len(players))
	}
	seen := make(map[string]bool, len(players))
	for _, p := range players {
		if p.ID == "" || seen[p.ID] {
			return nil, fmt.Errorf("draft: player IDs must be unique and non-empty")
		}
		seen[p.ID] = true
	}
	if m != nil {
		if err := m.Validate(); err != nil {
			return nil, err
		}
	}

	rng := rand.New(rand.NewSource(settings.Seed))
	base := make([]string, len(players))
	for i, p := range players {
		base[i] = p.ID
	}
	rng.Shuffle(len(base), func(i, j int) { base[i], base[j] = base[j], base[i] })

	normalized := make([]Player, len(players))
	for i, p := range players {
		p.SliceIndex, p.Seat, p.SpeakerOrder = -1, -1, -1
		normalized[i] = p
	}

	d := &Document{
		SchemaVersion: SchemaVersion,
		ID:            id,
		Settings:      settings,
		Players:       normalized,
		BaseOrder:     base,
		Slices:        slices,
		Map:           m,
		Staged:        make(map[string]map[string]string),
	}

	switch settings.Mode {
	case ModeTexas:
		// seats come from their own shuffle, not the pick-order one
		seatOrder := make([]string, len(base))
		copy(seatOrder, base)
		rng.Shuffle(len(seatOrder), func(i, j int) { seatOrder[i], seatOrder[j] = seatOrder[j], seatOrder[i] })
		d.SeatOrder = seatOrder

		var err error
		if d.BlueHands, err = deal(settings.BluePool, seatOrder, settings.BlueHandSize, rng); err != nil {
			return nil, fmt.Errorf("draft: blue pool: %w", err)
		}
		if d.RedHands, err = deal(settings.RedPool, seatOrder, settings.RedHandSize, rng); err != nil {
			return nil, fmt.Errorf("draft: red pool: %w", err)
		}
		factionDeck := shuffledCopy(settings.FactionPool, rng)
		need := len(seatOrder) * settings.FactionHand
		if len(factionDeck) < need {
			return nil, fmt.Errorf("draft: faction pool of %d cannot deal %d hands of %d", len(factionDeck), len(seatOrder), settings.FactionHand)
		}
		d.FactionHands = make(map[string][]string, len(seatOrder))
		for i, p := range seatOrder {
			d.FactionHands[p] = factionDeck[i*settings.FactionHand : (i+1)*settings.FactionHand]
		}
		d.FactionDrawPile = factionDeck[need:]
		d.PickOrder = buildTexasOrder(settings, seatOrder)
	default:
		if len(slices) < len(players) {
			return nil, fmt.Errorf("draft: %d slices for %d players", len(slices), len(players))
		}
		d.PickOrder = buildStandardOrder(settings, base)
	}
	return d, nil
}

func deal(pool, seatOrder []string, handSize int, rng *rand.Rand) (map[string][]string, error) {
	if len(pool) < len(seatOrder)*handSize {
		return nil, fmt.Errorf("pool of %d cannot deal %d hands of %d", len(pool), len(seatOrder), handSize)
	}
	deck := shuffledCopy(pool, rng)
	hands := make(map[string][]string, len(seatOrder))
	for i, p := range seatOrder {
		hands[p] = deck[i*handSize : (i+1)*handSize]
	}
	return hands, nil
}

func shuffledCopy(pool []string, rng *rand.Rand) []string {
	deck := make([]string, len(pool))
	copy(deck, pool)
	rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
	return deck
}
