package hexmap

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/DoyleJ11/galaxy-draft-backend/internal/systems"
)

// ErrBadMapString marks a map string that cannot be decoded at all. Unknown
// system IDs are not this error; they decode to open tiles with a warning.
var ErrBadMapString = errors.New("malformed map string")

const (
	minRings = 2
	maxRings = 5
)

// EncodeMapString renders a map as one comma-separated token per non-central
// tile. The center is implicit.
func EncodeMapString(m *Map) string {
	tokens := make([]string, 0, len(m.Tiles)-1)
	for _, t := range m.Tiles[1:] {
		switch t.Kind {
		case TileOpen:
			tokens = append(tokens, "_")
		case TileClosed:
			tokens = append(tokens, "X")
		case TileHome:
			tokens = append(tokens, "H"+strconv.Itoa(t.Seat))
		case TileSystem:
			if t.Rotation != 0 {
				tokens = append(tokens, t.System+":"+strconv.Itoa(t.Rotation))
			} else {
				tokens = append(tokens, t.System)
			}
		}
	}
	return strings.Join(tokens, ",")
}

// DecodeMapString parses a map string back into a Map. The ring count is
// derived from the token count; a count whose derived ring falls outside
// [2,5] or does not land exactly on a ring boundary is rejected. Tokens
// naming a system the registry does not know decode to open tiles and are
// logged rather than failing the whole decode.
func DecodeMapString(s string, reg *systems.Registry, log *zap.Logger) (*Map, error) {
	if log == nil {
		log = zap.NewNop()
	}
	tokens := strings.Split(strings.TrimSpace(s), ",")
	rings, err := ringsForTokenCount(len(tokens))
	if err != nil {
		return nil, err
	}
	m := NewMap(rings)
	for i, raw := range tokens {
		tile, err := decodeToken(strings.TrimSpace(raw), reg, log, i+1)
		if err != nil {
			return nil, err
		}
		m.Tiles[i+1] = tile
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadMapString, err)
	}
	return m, nil
}

// ringsForTokenCount inverts totalTiles = 1 + 3n(n+1) for n, where
// totalTiles = tokens + 1.
func ringsForTokenCount(tokens int) (int, error) {
	n := int(math.Round((-3 + math.Sqrt(float64(9+12*tokens))) / 6))
	if n < minRings || n > maxRings || TileCount(n) != tokens+1 {
		return 0, fmt.Errorf("%w: %d tokens does not form a %d-%d ring map", ErrBadMapString, tokens, minRings, maxRings)
	}
	return n, nil
}

func decodeToken(tok string, reg *systems.Registry, log *zap.Logger, tileIndex int) (Tile, error) {
	switch {
	case tok == "_":
		return Tile{Kind: TileOpen}, nil
	case tok == "X":
		return Tile{Kind: TileClosed}, nil
	case strings.HasPrefix(tok, "H"):
		seat, err := strconv.Atoi(tok[1:])
		if err != nil || seat < 0 {
			return Tile{}, fmt.Errorf("%w: bad home token %q", ErrBadMapString, tok)
		}
		return Tile{Kind: TileHome, Seat: seat}, nil
	case tok == "":
		return Tile{}, fmt.Errorf("%w: empty token at tile %d", ErrBadMapString, tileIndex)
	}

	id, rot := tok, 0
	if at := strings.IndexByte(tok, ':'); at >= 0 {
		id = tok[:at]
		r, err := strconv.Atoi(tok[at+1:])
		if err != nil || r%60 != 0 || r < 60 || r > 300 {
			return Tile{}, fmt.Errorf("%w: bad rotation in token %q", ErrBadMapString, tok)
		}
		rot = r
	}
	if _, ok := reg.Lookup(id); !ok {
		log.Warn("unknown system in map string, decoding as open",
			zap.String("system", id), zap.Int("tile", tileIndex))
		return Tile{Kind: TileOpen}, nil
	}
	return Tile{Kind: TileSystem, System: id, Rotation: rot}, nil
}
