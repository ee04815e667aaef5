// Package lobby runs one goroutine per draft that owns the document
// exclusively. Every mutation (pick, stage, unstage, undo) funnels through
// its inbox, which serializes the read-then-write the staging protocol
// needs. After each successful commit the lobby persists the document and
// broadcasts a snapshot to every subscriber; rejected submissions reply with
// a typed error and trigger neither.
package lobby

import (
	"context"

	"go.uber.org/zap"

	"github.com/DoyleJ11/galaxy-draft-backend/internal/draft"
	"github.com/DoyleJ11/galaxy-draft-backend/internal/store"
	"github.com/DoyleJ11/galaxy-draft-backend/internal/valuation"
)

type Msg interface{ isLobbyMsg() }

type Op string

const (
	OpSubmitPick Op = "submit_pick"
	OpStage      Op = "stage"
	OpUnstage    Op = "unstage"
	OpUndoPhase  Op = "undo_phase"
	OpUndoLast   Op = "undo_last_pick"
)

// Request is one client operation. Reply always receives exactly one Result.
type Request struct {
	Op        Op
	PlayerID  string
	Phase     string
	Value     string
	Expected  int
	Selection draft.Selection
	Reply     chan Result
}

func (Request) isLobbyMsg() {}

type Result struct {
	Snapshot Snapshot
	Err      error
}

type Join struct {
	ClientID string
	Outbox   chan Snapshot
}

func (Join) isLobbyMsg() {}

type Leave struct{ ClientID string }

func (Leave) isLobbyMsg() {}

type GetState struct {
	Reply chan Snapshot
}

func (GetState) isLobbyMsg() {}

type Shutdown struct{}

func (Shutdown) isLobbyMsg() {}

// Snapshot is the read-only view broadcast to subscribers: a deep copy of
// the document plus what a renderer needs without recomputing (derived
// player attributes, the active slot, slice valuations).
type Snapshot struct {
	Version     int                   `json:"version"`
	Doc         *draft.Document       `json:"draft"`
	Players     []draft.Player        `json:"players"`
	CurrentSlot *draft.Slot           `json:"currentSlot,omitempty"`
	Complete    bool                  `json:"complete"`
	SliceValues []valuation.Breakdown `json:"sliceValues,omitempty"`
}

type Lobby struct {
	inbox   chan Msg
	id      string
	engine  *draft.Engine
	doc     *draft.Document
	version int
	clients map[string]chan Snapshot
	store   store.Store
	log     *zap.Logger
	ctx     context.Context
	cancel  context.CancelFunc
}

func NewLobby(parent context.Context, engine *draft.Engine, doc *draft.Document, st store.Store, log *zap.Logger) *Lobby {
	ctx, cancel := context.WithCancel(parent)
	l := &Lobby{
		inbox:   make(chan Msg, 64),
		id:      doc.ID,
		engine:  engine,
		doc:     doc,
		clients: make(map[string]chan Snapshot),
		store:   st,
		log:     log.With(zap.String("draft", doc.ID)),
		ctx:     ctx,
		cancel:  cancel,
	}
	go l.loop()
	return l
}

func (l *Lobby) Inbox() chan<- Msg { return l.inbox }

func (l *Lobby) loop() {
	for {
		select {
		case <-l.ctx.Done():
			l.shutdown()
			return

		case m := <-l.inbox:
			switch msg := m.(type) {
			case Join:
				l.clients[msg.ClientID] = msg.Outbox
				msg.Outbox <- l.snapshot()

			case Leave:
				if ch, ok := l.clients[msg.ClientID]; ok {
					close(ch)
					delete(l.clients, msg.ClientID)
				}

			case Request:
				if err := l.apply(msg); err != nil {
					msg.Reply <- Result{Snapshot: l.snapshot(), Err: err}
					break
				}
				l.version++
				snap := l.snapshot()
				l.persist()
				l.broadcast(snap)
				msg.Reply <- Result{Snapshot: snap}

			case GetState:
				msg.Reply <- l.snapshot()

			case Shutdown:
				l.shutdown()
				return
			}
		}
	}
}

func (l *Lobby) apply(msg Request) error {
	switch msg.Op {
	case OpSubmitPick:
		return l.engine.SubmitPick(l.doc, msg.PlayerID, msg.Selection)
	case OpStage:
		_, err := l.engine.Stage(l.doc, msg.Phase, msg.PlayerID, msg.Value)
		return err
	case OpUnstage:
		return l.engine.Unstage(l.doc, msg.Phase, msg.PlayerID)
	case OpUndoPhase:
		return l.engine.UndoPhase(l.doc, msg.Phase, msg.Expected)
	case OpUndoLast:
		return l.engine.UndoLastPick(l.doc, msg.Expected)
	default:
		return draft.ErrNotFound
	}
}

func (l *Lobby) snapshot() Snapshot {
	snap := Snapshot{
		Version:  l.version,
		Doc:      l.doc.Clone(),
		Players:  l.engine.PlayersView(l.doc),
		Complete: l.doc.Complete(),
	}
	if slot, ok := l.engine.CurrentSlot(l.doc); ok {
		snap.CurrentSlot = &slot
	}
	for _, sl := range l.doc.Slices {
		snap.SliceValues = append(snap.SliceValues, l.engine.ValueSlice(sl))
	}
	return snap
}

// persist fires after the in-memory transition; a failure is logged, never
// surfaced, since the committed state is already authoritative.
func (l *Lobby) persist() {
	doc := l.doc.Clone()
	go func() {
		if err := l.store.Save(l.ctx, l.id, doc); err != nil {
			l.log.Error("persist failed", zap.Error(err))
		}
	}()
}

func (l *Lobby) broadcast(snap Snapshot) {
	for id, ch := range l.clients {
		select {
		case ch <- snap:
		default:
			// slow client, drop it
			close(ch)
			delete(l.clients, id)
		}
	}
}

func (l *Lobby) shutdown() {
	for id, ch := range l.clients {
		close(ch)
		delete(l.clients, id)
	}
	l.cancel()
}
