package ws

import (
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"go.uber.org/zap"

	"github.com/DoyleJ11/galaxy-draft-backend/internal/hub"
	"github.com/DoyleJ11/galaxy-draft-backend/internal/lobby"
	"github.com/DoyleJ11/galaxy-draft-backend/internal/types"
)

// Handler upgrades the connection, joins the draft's lobby, and shuttles
// messages: one writer goroutine streams snapshots, the reader loop decodes
// client requests and forwards them to the lobby actor. Rejections go back
// to the requesting client only; snapshots go to everyone via broadcast.
func Handler(h *hub.Hub, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		draftID := r.URL.Query().Get("draft")
		if draftID == "" {
			http.Error(w, "missing draft", http.StatusBadRequest)
			return
		}
		playerID := r.URL.Query().Get("player")

		reply := make(chan *lobby.Lobby, 1)
		h.Inbox() <- hub.EnsureLobby{ID: draftID, Reply: reply}
		lb := <-reply
		if lb == nil {
			http.Error(w, "draft not found", http.StatusNotFound)
			return
		}

		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close(websocket.StatusNormalClosure, "bye")

		out := make(chan lobby.Snapshot, 8)
		clientID := randID(6)

		lb.Inbox() <- lobby.Join{ClientID: clientID, Outbox: out}
		defer func() { lb.Inbox() <- lobby.Leave{ClientID: clientID} }()

		writeCtx, writeCancel := context.WithCancel(r.Context())
		defer writeCancel()
		go func() {
			for snap := range out {
				writeJSON(writeCtx, conn, types.ServerMessage{
					Type: "StateSnapshot", Version: snap.Version, Snapshot: &snap,
				})
			}
		}()

		for {
			var cm types.ClientMessage
			_, data, err := conn.Read(r.Context())
			if err != nil {
				switch websocket.CloseStatus(err) {
				case websocket.StatusNormalClosure, websocket.StatusGoingAway:
					return
				}
				return
			}
			if err := json.Unmarshal(data, &cm); err != nil {
				writeJSON(r.Context(), conn, types.ServerMessage{
					Type: "Error", Code: types.CodeInvalidPayload, Error: "bad json",
				})
				continue
			}

			req, ok := toRequest(cm, playerID)
			if !ok {
				writeJSON(r.Context(), conn, types.ServerMessage{
					Type: "Error", Code: types.CodeInvalidPayload, Error: "unknown type",
				})
				continue
			}

			lb.Inbox() <- req
			res := <-req.Reply
			if res.Err != nil {
				log.Debug("request rejected",
					zap.String("draft", draftID),
					zap.String("op", string(req.Op)),
					zap.Error(res.Err))
				writeJSON(r.Context(), conn, types.ServerMessage{
					Type: "Error", Code: types.ErrorCode(res.Err), Error: res.Err.Error(),
				})
			}
		}
	}
}

func toRequest(m types.ClientMessage, connPlayer string) (lobby.Request, bool) {
	player := m.PlayerID
	if player == "" {
		player = connPlayer
	}
	req := lobby.Request{
		PlayerID: player,
		Phase:    m.Phase,
		Value:    m.Value,
		Expected: m.Expected,
		Reply:    make(chan lobby.Result, 1),
	}
	switch m.Type {
	case "SubmitPick":
		if m.Selection == nil {
			return lobby.Request{}, false
		}
		req.Op = lobby.OpSubmitPick
		req.Selection = *m.Selection
	case "Stage":
		req.Op = lobby.OpStage
	case "Unstage":
		req.Op = lobby.OpUnstage
	case "UndoPhase":
		req.Op = lobby.OpUndoPhase
	case "UndoLastPick":
		req.Op = lobby.OpUndoLast
	default:
		return lobby.Request{}, false
	}
	return req, true
}

func writeJSON(ctx context.Context, conn *websocket.Conn, msg types.ServerMessage) {
	payload, _ := json.Marshal(msg)
	wctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	_ = conn.Write(wctx, websocket.MessageText, payload)
}

func randID(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[rand.Intn(len(charset))]
	}
	return string(b)
}
