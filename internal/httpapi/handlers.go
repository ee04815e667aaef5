package httpapi

import (
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/DoyleJ11/galaxy-draft-backend/internal/draft"
	"github.com/DoyleJ11/galaxy-draft-backend/internal/gen"
	"github.com/DoyleJ11/galaxy-draft-backend/internal/hexmap"
	"github.com/DoyleJ11/galaxy-draft-backend/internal/hub"
	"github.com/DoyleJ11/galaxy-draft-backend/internal/lobby"
	"github.com/DoyleJ11/galaxy-draft-backend/internal/systems"
	"github.com/DoyleJ11/galaxy-draft-backend/internal/types"
	"github.com/DoyleJ11/galaxy-draft-backend/internal/valuation"
)

type PlayerSpec struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

type CreateDraftRequest struct {
	Players    []PlayerSpec   `json:"players"`
	Settings   draft.Settings `json:"settings"`
	Rings      int            `json:"rings,omitempty"`
	SliceCount int            `json:"sliceCount,omitempty"`
	// MapString, when set, is decoded and used instead of a generated map.
	MapString   string          `json:"mapString,omitempty"`
	Constraints gen.Constraints `json:"constraints"`
}

type CreateDraftResponse struct {
	ID       string         `json:"id"`
	Snapshot lobby.Snapshot `json:"snapshot"`
}

// CreateDraft generates the draft's content (slices and map) under the
// requested constraints, builds the pick order, and spins up its lobby.
// Constraint exhaustion comes back as a 422 so the caller can relax and
// retry.
func CreateDraft(h *hub.Hub, reg *systems.Registry, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateDraftRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, types.CodeInvalidPayload, "bad json")
			return
		}
		if len(req.Players) < 2 {
			writeError(w, http.StatusBadRequest, types.CodeInvalidPayload, "need at least 2 players")
			return
		}

		players := make([]draft.Player, len(req.Players))
		for i, p := range req.Players {
			if p.ID == "" {
				p.ID = uuid.NewString()
			}
			players[i] = draft.Player{ID: p.ID, Name: p.Name}
		}

		settings := req.Settings
		if settings.Seed == 0 {
			settings.Seed = time.Now().UnixNano()
		}
		if len(settings.FactionPool) == 0 {
			settings.FactionPool = draft.DefaultFactionPool
		}
		if len(settings.ColorPool) == 0 {
			settings.ColorPool = draft.DefaultColorPool
		}
		if settings.Mode == draft.ModeTexas {
			if len(settings.BluePool) == 0 {
				settings.BluePool = reg.PlanetIDs()
			}
			if len(settings.RedPool) == 0 {
				settings.RedPool = reg.EmptyIDs()
			}
		}

		var m *hexmap.Map
		if req.MapString != "" {
			var err error
			m, err = hexmap.DecodeMapString(req.MapString, reg, log)
			if err != nil {
				writeError(w, http.StatusBadRequest, types.CodeInvalidPayload, err.Error())
				return
			}
		} else {
			rings := req.Rings
			if rings == 0 {
				rings = 3
			}
			homes, err := gen.DefaultHomePositions(rings, len(players))
			if err != nil {
				writeError(w, http.StatusBadRequest, types.CodeInvalidPayload, err.Error())
				return
			}
			m, err = gen.GenerateMap(rings, homes)
			if err != nil {
				writeError(w, http.StatusBadRequest, types.CodeInvalidPayload, err.Error())
				return
			}
		}

		var slices []hexmap.Slice
		if settings.Mode != draft.ModeTexas {
			count := req.SliceCount
			if count == 0 {
				count = len(players)
			}
			rng := rand.New(rand.NewSource(settings.Seed))
			var err error
			slices, err = gen.GenerateSlices(reg, reg.PlanetIDs(), count, gen.DefaultSliceSize, req.Constraints, rng)
			if errors.Is(err, gen.ErrExhausted) {
				writeError(w, http.StatusUnprocessableEntity, types.CodeGenerationExhausted, err.Error())
				return
			}
			if err != nil {
				writeError(w, http.StatusBadRequest, types.CodeInvalidPayload, err.Error())
				return
			}
		}

		doc, err := draft.New(uuid.NewString(), settings, players, slices, m)
		if err != nil {
			writeError(w, http.StatusBadRequest, types.CodeInvalidPayload, err.Error())
			return
		}

		reply := make(chan *lobby.Lobby, 1)
		h.Inbox() <- hub.CreateLobby{Doc: doc, Reply: reply}
		lb := <-reply
		if lb == nil {
			writeError(w, http.StatusInternalServerError, types.CodeInternal, "failed to create lobby")
			return
		}

		state := make(chan lobby.Snapshot, 1)
		lb.Inbox() <- lobby.GetState{Reply: state}
		snap := <-state

		log.Info("draft created",
			zap.String("draft", doc.ID),
			zap.Int("players", len(players)),
			zap.String("mode", string(settings.Mode)))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(CreateDraftResponse{ID: doc.ID, Snapshot: snap})
	}
}

func GetDraft(h *hub.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		reply := make(chan *lobby.Lobby, 1)
		h.Inbox() <- hub.EnsureLobby{ID: id, Reply: reply}
		lb := <-reply
		if lb == nil {
			writeError(w, http.StatusNotFound, types.CodeNotFound, "draft not found")
			return
		}
		state := make(chan lobby.Snapshot, 1)
		lb.Inbox() <- lobby.GetState{Reply: state}
		snap := <-state
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(snap)
	}
}

// SeatValuation is one seat's final slice score on the assembled board,
// with the equidistant penalty taken against the home tile.
type SeatValuation struct {
	Seat      int                 `json:"seat"`
	Home      int                 `json:"home"`
	Breakdown valuation.Breakdown `json:"breakdown"`
}

type FinalMapResponse struct {
	Map         *hexmap.Map           `json:"map"`
	MapString   string                `json:"mapString"`
	Attribution valuation.Attribution `json:"attribution,omitempty"`
	Valuations  []SeatValuation       `json:"valuations,omitempty"`
}

// FinalMap assembles the finished board for a completed standard draft:
// every seat's drafted slice is written into the open tiles around its home,
// then each slice is rescored with the contested-tile penalty the placed map
// implies. Texas drafts place tiles during the draft, so their map comes
// back as is, attribution included but without per-seat slice scores.
func FinalMap(h *hub.Hub, reg *systems.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		reply := make(chan *lobby.Lobby, 1)
		h.Inbox() <- hub.EnsureLobby{ID: id, Reply: reply}
		lb := <-reply
		if lb == nil {
			writeError(w, http.StatusNotFound, types.CodeNotFound, "draft not found")
			return
		}
		state := make(chan lobby.Snapshot, 1)
		lb.Inbox() <- lobby.GetState{Reply: state}
		snap := <-state
		if !snap.Complete {
			writeError(w, http.StatusConflict, types.CodeInvalidPayload, "draft is not complete")
			return
		}
		if snap.Doc.Map == nil {
			writeError(w, http.StatusNotFound, types.CodeNotFound, "draft has no map")
			return
		}

		m := snap.Doc.Map.Clone()
		bySeat := make(map[int]hexmap.Slice)
		if snap.Doc.Settings.Mode != draft.ModeTexas {
			for _, p := range snap.Players {
				if p.Seat >= 0 && p.SliceIndex >= 0 && p.SliceIndex < len(snap.Doc.Slices) {
					bySeat[p.Seat] = snap.Doc.Slices[p.SliceIndex]
				}
			}
			if err := gen.FillSlices(m, reg, bySeat); err != nil {
				writeError(w, http.StatusConflict, types.CodeInvalidPayload, err.Error())
				return
			}
		}

		out := FinalMapResponse{Map: m, MapString: hexmap.EncodeMapString(m)}
		if homes := m.HomeIndices(); len(homes) > 0 {
			out.Attribution = valuation.EquidistantAttribution(m, reg, homes)
			for _, home := range homes {
				sl, ok := bySeat[m.Tiles[home].Seat]
				if !ok {
					continue
				}
				penalty := valuation.EquidistantPenalty(m, reg, out.Attribution, home)
				out.Valuations = append(out.Valuations, SeatValuation{
					Seat:      m.Tiles[home].Seat,
					Home:      home,
					Breakdown: valuation.SliceValue(reg, sl, penalty),
				})
			}
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(out)
	}
}

func Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(types.ServerMessage{Type: "Error", Code: code, Error: msg})
}
