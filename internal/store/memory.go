package store

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/DoyleJ11/galaxy-draft-backend/internal/draft"
)

// Memory keeps drafts in-process, serialized the same way the database
// would, so load still exercises schema migration. Used in tests and when
// no database is configured.
type Memory struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{docs: make(map[string][]byte)}
}

func (m *Memory) Load(_ context.Context, id string) (*draft.Document, error) {
	m.mu.RLock()
	raw, ok := m.docs[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return decode(raw)
}

func (m *Memory) Save(_ context.Context, id string, doc *draft.Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.docs[id] = raw
	m.mu.Unlock()
	return nil
}
