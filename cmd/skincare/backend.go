package main

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/jask/skincare/internal/config"
	"github.com/jask/skincare/internal/database"
	"github.com/jask/skincare/internal/database/repository"
	"github.com/jask/skincare/internal/prefs"
	"github.com/jask/skincare/internal/service"
	"github.com/jask/skincare/internal/store"
)

var ErrUnknownBackend = errors.New("unknown storage backend")

// openKV returns the slot storage named by cfg and a func releasing it.
func openKV(cfg config.StorageConfig) (store.KV, func() error, error) {
	noop := func() error { return nil }
	switch cfg.Backend {
	case config.BackendSQLite, "":
		db, err := database.OpenAndMigrate(cfg.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("open db: %w", err)
		}
		return repository.NewSettingsRepo(db), db.Close, nil
	case config.BackendFile:
		return prefs.NewFileKV(cfg.FilePath), noop, nil
	case config.BackendMemory:
		return store.NewMemoryKV(), noop, nil
	}
	return nil, nil, fmt.Errorf("%w %q (want sqlite, file or memory)", ErrUnknownBackend, cfg.Backend)
}

func (e *env) openPlanner() (*service.Planner, func(), error) {
	kv, closeKV, err := openKV(e.cfg.Storage)
	if err != nil {
		return nil, nil, err
	}
	planner := &service.Planner{
		Store: store.New(kv, e.cfg.Storage.Key, e.log.Named("store")),
		Log:   e.log.Named("planner"),
	}
	return planner, func() {
		if err := closeKV(); err != nil {
			e.log.Warn("close storage", zap.Error(err))
		}
	}, nil
}
