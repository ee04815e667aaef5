// Package hub is the registry of live lobbies, one actor owning the map of
// draft ID to lobby. EnsureLobby revives idle drafts from the store.
package hub

import (
	"context"

	"go.uber.org/zap"

	"github.com/DoyleJ11/galaxy-draft-backend/internal/draft"
	"github.com/DoyleJ11/galaxy-draft-backend/internal/lobby"
	"github.com/DoyleJ11/galaxy-draft-backend/internal/store"
)

type HubMsg interface{ isHubMsg() }

type CreateLobby struct {
	Doc   *draft.Document
	Reply chan *lobby.Lobby
}

type GetLobby struct {
	ID    string
	Reply chan *lobby.Lobby
}

// EnsureLobby returns the live lobby for a draft, loading it from the store
// if it is not in memory. Reply receives nil when the draft does not exist.
type EnsureLobby struct {
	ID    string
	Reply chan *lobby.Lobby
}

type RemoveLobby struct{ ID string }

type ShutdownHub struct{}

func (CreateLobby) isHubMsg() {}
func (GetLobby) isHubMsg()    {}
func (EnsureLobby) isHubMsg() {}
func (RemoveLobby) isHubMsg() {}
func (ShutdownHub) isHubMsg() {}

type Hub struct {
	inbox   chan HubMsg
	lobbies map[string]*lobby.Lobby
	engine  *draft.Engine
	store   store.Store
	log     *zap.Logger
	ctx     context.Context
	cancel  context.CancelFunc
}

func NewHub(parent context.Context, engine *draft.Engine, st store.Store, log *zap.Logger) *Hub {
	ctx, cancel := context.WithCancel(parent)
	h := &Hub{
		inbox:   make(chan HubMsg, 64),
		lobbies: make(map[string]*lobby.Lobby),
		engine:  engine,
		store:   st,
		log:     log,
		ctx:     ctx,
		cancel:  cancel,
	}
	go h.loop()
	return h
}

func (h *Hub) Inbox() chan<- HubMsg { return h.inbox }

func (h *Hub) loop() {
	for {
		select {
		case <-h.ctx.Done():
			return

		case m := <-h.inbox:
			switch msg := m.(type) {
			case CreateLobby:
				if lb := h.lobbies[msg.Doc.ID]; lb != nil {
					msg.Reply <- lb
					break
				}
				lb := lobby.NewLobby(h.ctx, h.engine, msg.Doc, h.store, h.log)
				h.lobbies[msg.Doc.ID] = lb
				msg.Reply <- lb

			case GetLobby:
				msg.Reply <- h.lobbies[msg.ID] // may be nil

			case EnsureLobby:
				if lb := h.lobbies[msg.ID]; lb != nil {
					msg.Reply <- lb
					break
				}
				doc, err := h.store.Load(h.ctx, msg.ID)
				if err != nil {
					if err != store.ErrNotFound {
						h.log.Error("load draft failed", zap.String("draft", msg.ID), zap.Error(err))
					}
					msg.Reply <- nil
					break
				}
				lb := lobby.NewLobby(h.ctx, h.engine, doc, h.store, h.log)
				h.lobbies[msg.ID] = lb
				msg.Reply <- lb

			case RemoveLobby:
				delete(h.lobbies, msg.ID)

			case ShutdownHub:
				for _, lb := range h.lobbies {
					lb.Inbox() <- lobby.Shutdown{}
				}
				clear(h.lobbies)
				h.cancel()
			}
		}
	}
}
