// Package store is the persistence collaborator: it loads and saves draft
// documents by ID. The engine never touches it directly; the lobby persists
// after each successful commit.
package store

import (
	"context"
	"errors"

	"github.com/DoyleJ11/galaxy-draft-backend/internal/draft"
)

var ErrNotFound = errors.New("draft not found")

type Store interface {
	Load(ctx context.Context, id string) (*draft.Document, error)
	Save(ctx context.Context, id string, doc *draft.Document) error
}
