package main

import (
	"context"
	"fmt"

	"github.com/charadas/charadas-api/internal/app"
	"github.com/charadas/charadas-api/internal/charada/service"
	"github.com/charadas/charadas-api/internal/config"
	"github.com/charadas/charadas-api/internal/storage"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "charadas-seed",
	Short: "Prepare and back up the charadas store",
	Long: `charadas-seed seeds the ID counter document and imports or exports riddle
collections, from local JSON files or objects in a MinIO/S3 bucket.
Connection settings come from the same environment as the API server.`,
	SilenceUsage: true,
}

// openService loads the configuration and connects to the configured store.
func openService(ctx context.Context) (*config.Config, service.Service, func(), error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	svc, closeFn, err := app.OpenService(ctx, cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, svc, closeFn, nil
}

// newObjectStore is swapped in tests.
var newObjectStore = func(ctx context.Context, cfg *config.Config) (storage.ObjectStore, error) {
	s, err := storage.NewMinIOStorage(ctx, cfg.MinIO)
	if err != nil {
		return nil, fmt.Errorf("object storage: %w", err)
	}
	return s, nil
}
