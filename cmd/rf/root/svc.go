package root

import (
	"context"
	"fmt"

	"github.com/ryoumen0412/RollForge/internal/config"
	"github.com/ryoumen0412/RollForge/internal/logger"
	"github.com/ryoumen0412/RollForge/internal/roster"
	"github.com/ryoumen0412/RollForge/internal/storage"
)

func openService(ctx context.Context) (*roster.Service, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	log := logger.New(cfg.LogLevel)

	if err := storage.EnsureDir(cfg.DataDir); err != nil {
		return nil, nil, err
	}

	var store storage.Store
	switch cfg.Backend {
	case config.BackendSQLite:
		db, err := storage.OpenSQLite(ctx, cfg.DatabasePath())
		if err != nil {
			return nil, nil, err
		}
		store = storage.NewSQLiteStore(db, log)
	case config.BackendJSON:
		store, err = storage.NewJSONStore(cfg.CharactersPath(), log)
		if err != nil {
			return nil, nil, err
		}
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}

	portraits, err := storage.NewPortraitDir(cfg.PortraitsDir())
	if err != nil {
		_ = store.Close()
		return nil, nil, err
	}

	cleanup := func() {
		_ = store.Close()
	}
	return roster.NewService(store, portraits, log), cleanup, nil
}
