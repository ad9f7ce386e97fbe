package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/leadline-crm/leadline/internal/api"
	"github.com/leadline-crm/leadline/internal/cache"
	"github.com/leadline-crm/leadline/internal/common"
	"github.com/leadline-crm/leadline/internal/config"
	"github.com/leadline-crm/leadline/internal/session"
)

// newClient builds a backend client with the saved session attached.
// When requireAuth is set, a missing session is an error with a login
// hint instead of a silent unauthenticated client.
func newClient(requireAuth bool) (*api.Client, *session.Session, error) {
	cfg, err := config.LoadAPI()
	if err != nil {
		return nil, nil, err
	}

	store, err := session.NewStore()
	if err != nil {
		return nil, nil, err
	}

	sess, err := store.Load()
	if err != nil {
		if !errors.Is(err, common.ErrNoSession) {
			return nil, nil, err
		}
		if requireAuth {
			return nil, nil, common.NewUserError("not logged in - run 'leadline auth login' first", err)
		}
		sess = nil
	}

	return api.NewClient(cfg, sess), sess, nil
}

// openCache opens the local snapshot cache. The cache is best-effort:
// callers treat a nil store as "no cache".
func openCache(ctx context.Context) (*cache.Store, error) {
	dbPath := viper.GetString("cache.path")
	if dbPath == "" {
		dir, err := config.DataDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve data directory: %w", err)
		}
		dbPath = filepath.Join(dir, "cache.db")
	} else {
		dbPath = config.ExpandPath(dbPath)
	}

	return cache.Open(ctx, dbPath)
}
