package main

import (
	"context"
	"fmt"

	"github.com/harborops/consign/internal/config"
	"github.com/harborops/consign/internal/registry"
	"github.com/harborops/consign/internal/store"
	"github.com/spf13/viper"
)

// initStore initializes the session store with proper path expansion.
func initStore(ctx context.Context) (*store.SQLiteStore, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/consign/consign.db"
	}
	dbPath = config.ExpandPath(dbPath)

	st, err := store.NewSQLiteStore(dbPath)
	if err != nil {
		return nil, err
	}

	if err := st.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return st, nil
}

// loadRegistry rehydrates the in-memory source registry from the session
// store. The registry re-applies its own duplicate policy on the way in.
func loadRegistry(ctx context.Context, st *store.SQLiteStore) (*registry.Registry, error) {
	sources, err := st.ListSources(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load session sources: %w", err)
	}

	reg := registry.New()
	if _, rejected := reg.RegisterAll(sources); len(rejected) > 0 {
		// The store's unique index should make this unreachable.
		return nil, fmt.Errorf("session store holds duplicate documents: %v", rejected)
	}
	return reg, nil
}
