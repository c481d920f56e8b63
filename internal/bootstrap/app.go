package bootstrap

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"userboard/internal/config"
	mongoClient "userboard/internal/platform/mongo"
)

// App holds the process-wide dependencies. The Mongo handle is passed
// explicitly into repositories rather than living in a package-level
// variable, so its lifecycle follows New/Close.
type App struct {
	Config *config.Config
	Mongo  *mongo.Client
	DB     *mongo.Database

	StartedAt time.Time
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config failed: %w", err)
	}

	client, err := mongoClient.New(ctx, cfg.Mongo.URI)
	if err != nil {
		return nil, err
	}

	db := client.Database(cfg.Mongo.DB)
	if err := mongoClient.EnsureIndexes(ctx, db); err != nil {
		return nil, err
	}

	return &App{
		Config:    cfg,
		Mongo:     client,
		DB:        db,
		StartedAt: time.Now(),
	}, nil
}

func (a *App) Close() error {
	if a.Mongo == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.Mongo.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnect mongo failed: %w", err)
	}
	return nil
}
