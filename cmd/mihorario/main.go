package main

import (
	"fmt"
	"os"
	"path/filepath"

	"mihorario/internal/api"
	"mihorario/internal/config"
	"mihorario/internal/store"
	"mihorario/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Storage.DBPath), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	persister, err := store.OpenSQLite(cfg.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("opening storage: %w", err)
	}
	defer func() { _ = persister.Close() }()

	st := store.New(persister)
	client := api.New(cfg.Catalog.BaseURL)

	app := ui.NewApp(st, client, cfg)
	return app.Execute()
}
