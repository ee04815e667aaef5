package main

import (
	"context"
	"net/http"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/DoyleJ11/galaxy-draft-backend/internal/config"
	"github.com/DoyleJ11/galaxy-draft-backend/internal/draft"
	"github.com/DoyleJ11/galaxy-draft-backend/internal/httpapi"
	"github.com/DoyleJ11/galaxy-draft-backend/internal/hub"
	"github.com/DoyleJ11/galaxy-draft-backend/internal/store"
	"github.com/DoyleJ11/galaxy-draft-backend/internal/systems"
)

func main() {
	cfg := config.Load()
	log := newLogger(cfg)
	defer func() { _ = log.Sync() }()

	var st store.Store
	if cfg.DatabaseURL != "" {
		pg, err := store.OpenPostgres(cfg.DatabaseURL, log)
		if err != nil {
			log.Fatal("open database", zap.Error(err))
		}
		st = pg
	} else {
		log.Warn("no DATABASE_URL set, drafts live in memory only")
		st = store.NewMemory()
	}

	ctx := context.Background()
	reg := systems.Default()
	engine := draft.NewEngine(reg)
	h := hub.NewHub(ctx, engine, st, log)

	handler := httpapi.SetupRoutes(h, reg, log)

	log.Info("listening", zap.String("addr", cfg.Addr()))
	if err := http.ListenAndServe(cfg.Addr(), handler); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) *zap.Logger {
	var zcfg zap.Config
	if cfg.IsProduction() {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}
	if lvl, err := zapcore.ParseLevel(cfg.LogLevel); err == nil {
		zcfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	log, err := zcfg.Build()
	if err != nil {
		panic(err)
	}
	return log
}
