package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/DoyleJ11/galaxy-draft-backend/internal/draft"
)

type draftRecord struct {
	ID        string `gorm:"primaryKey"`
	Document  []byte `gorm:"type:jsonb"`
	UpdatedAt time.Time
}

func (draftRecord) TableName() string { return "drafts" }

// Postgres stores each draft as one JSON document row.
type Postgres struct {
	db  *gorm.DB
	log *zap.Logger
}

func OpenPostgres(dsn string, log *zap.Logger) (*Postgres, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&draftRecord{}); err != nil {
		return nil, err
	}
	return &Postgres{db: db, log: log}, nil
}

func (p *Postgres) Load(ctx context.Context, id string) (*draft.Document, error) {
	var rec draftRecord
	err := p.db.WithContext(ctx).First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return decode(rec.Document)
}

func (p *Postgres) Save(ctx context.Context, id string, doc *draft.Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return p.db.WithContext(ctx).Save(&draftRecord{ID: id, Document: raw, UpdatedAt: time.Now()}).Error
}

// decode unmarshals and migrates, so callers always see the current schema.
func decode(raw []byte) (*draft.Document, error) {
	var doc draft.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	draft.Migrate(&doc)
	return &doc, nil
}
