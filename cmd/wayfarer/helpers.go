package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/wanderfolk/wayfarer/internal/backend"
	"github.com/wanderfolk/wayfarer/internal/catalog"
	"github.com/wanderfolk/wayfarer/internal/common"
	"github.com/wanderfolk/wayfarer/internal/location"
	"github.com/wanderfolk/wayfarer/internal/state"
)

const defaultLocationEndpoint = "http://ip-api.com/json"

// initCatalogs loads and validates the embedded directories.
func initCatalogs() (*catalog.Catalogs, error) {
	cats, err := catalog.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalogs: %w", err)
	}
	return cats, nil
}

// initState opens the local database with proper path expansion.
func initState(ctx context.Context) (*state.Store, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/wayfarer/wayfarer.db"
	}
	dbPath = expandPath(dbPath)

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	store, err := state.Open(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// initBackend builds the backend function client from config.
func initBackend() (*backend.Client, error) {
	baseURL := viper.GetString("backend.url")
	if baseURL == "" {
		return nil, common.NewUserError(
			"backend.url is not configured (set it in config.yaml or WAYFARER_BACKEND_URL)",
			common.ErrMissingConfig)
	}

	timeout := viper.GetDuration("backend.timeout")
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return backend.NewClient(baseURL, backend.WithTimeout(timeout)), nil
}

// initLocation builds the cached geolocation provider.
func initLocation() location.Provider {
	endpoint := viper.GetString("location.endpoint")
	if endpoint == "" {
		endpoint = defaultLocationEndpoint
	}
	return location.NewCachedProvider(location.NewHTTPProvider(endpoint))
}

// expandPath expands $HOME, environment variables and a leading tilde.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	return os.ExpandEnv(path)
}

// floatFlag converts a flag value to the optional-constraint form where
// zero means unset.
func floatFlag(v float64) *float64 {
	if v == 0 {
		return nil
	}
	return &v
}
