// Package types defines the wire messages exchanged over the websocket and
// the mapping from engine errors to protocol rejection codes.
package types

import (
	"errors"

	"github.com/DoyleJ11/galaxy-draft-backend/internal/draft"
	"github.com/DoyleJ11/galaxy-draft-backend/internal/gen"
	"github.com/DoyleJ11/galaxy-draft-backend/internal/lobby"
	"github.com/DoyleJ11/galaxy-draft-backend/internal/store"
)

type ClientMessage struct {
	Type      string           `json:"type"` // SubmitPick | Stage | Unstage | UndoPhase | UndoLastPick
	PlayerID  string           `json:"player_id,omitempty"`
	Phase     string           `json:"phase,omitempty"`
	Value     string           `json:"value,omitempty"`
	Expected  int              `json:"expected,omitempty"`
	Selection *draft.Selection `json:"selection,omitempty"`
}

type ServerMessage struct {
	Type     string          `json:"type"` // StateSnapshot | Error
	Version  int             `json:"version,omitempty"`
	Snapshot *lobby.Snapshot `json:"snapshot,omitempty"`
	Code     string          `json:"code,omitempty"`
	Error    string          `json:"error,omitempty"`
}

// Rejection codes. Every failed request carries exactly one of these.
const (
	CodeWrongTurn           = "WrongTurn"
	CodeOutOfSync           = "OutOfSync"
	CodeInvalidPayload      = "InvalidPayload"
	CodeNotFound            = "NotFound"
	CodeComplete            = "Complete"
	CodeGenerationExhausted = "GenerationExhausted"
	CodeInternal            = "Internal"
)

func ErrorCode(err error) string {
	var vErr *draft.ValidationError
	switch {
	case errors.Is(err, draft.ErrWrongTurn):
		return CodeWrongTurn
	case errors.Is(err, draft.ErrOutOfSync):
		return CodeOutOfSync
	case errors.Is(err, draft.ErrComplete):
		return CodeComplete
	case errors.Is(err, draft.ErrNotFound), errors.Is(err, store.ErrNotFound):
		return CodeNotFound
	case errors.Is(err, gen.ErrExhausted):
		return CodeGenerationExhausted
	case errors.As(err, &vErr):
		return CodeInvalidPayload
	default:
		return CodeInternal
	}
}
