package app

import (
	"context"
	"time"

	"github.com/charadas/charadas-api/internal/charada/repository"
	"github.com/charadas/charadas-api/internal/charada/service"
	"github.com/charadas/charadas-api/internal/config"
	"github.com/charadas/charadas-api/internal/database"
	"github.com/charadas/charadas-api/pkg/logger"
)

const (
	mongoConnectAttempts = 5
	mongoConnectBackoff  = time.Second
)

// OpenService builds the riddle service for the configured store driver.
// The returned close function releases the store connection.
func OpenService(ctx context.Context, cfg *config.Config) (service.Service, func(), error) {
	if cfg.Store.Driver == config.DriverMemory {
		logger.Warnf("using in-memory store: data is lost on restart")
		return service.NewMemoryService(), func() {}, nil
	}

	client, err := database.ConnectMongoWithRetry(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout, mongoConnectAttempts, mongoConnectBackoff)
	if err != nil {
		return nil, nil, err
	}
	db := client.Database(cfg.MongoDB.Database)
	repo := repository.NewMongoRepo(db.Collection(cfg.Store.CharadaCollection), db.Collection(cfg.Store.CounterCollection))
	logger.Infof("connected to MongoDB database=%s collections=%s,%s", cfg.MongoDB.Database, cfg.Store.CharadaCollection, cfg.Store.CounterCollection)

	closeFn := func() {
		dctx, cancel := context.WithTimeout(context.Background(), cfg.MongoDB.Timeout)
		defer cancel()
		if err := client.Disconnect(dctx); err != nil {
			logger.Warnf("mongo disconnect: %v", err)
		}
	}
	return service.New(repo), closeFn, nil
}
