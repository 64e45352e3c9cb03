package store

import (
	"context"
	"log"

	"gamereviews/backend/internal/config"
	"gamereviews/backend/internal/database"
	"gamereviews/backend/internal/seed"
)

// Open builds the store selected by cfg.StoreDriver. The returned func
// releases any underlying connection.
func Open(cfg *config.Config) (Store, func() error, error) {
	if cfg.StoreDriver == "memory" {
		log.Println("Using in-memory store.")
		return NewMemory(), func() error { return nil }, nil
	}

	db, err := database.Open(cfg.StoreDriver, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, err
	}
	return NewGorm(db), sqlDB.Close, nil
}

// SeedIfEmpty imports the dataset at path when the store holds no games.
func SeedIfEmpty(ctx context.Context, s Store, path string) error {
	if e, ok := s.(interface {
		Empty(context.Context) (bool, error)
	}); ok {
		empty, err := e.Empty(ctx)
		if err != nil {
			return err
		}
		if !empty {
			log.Println("Store already holds data, skipping seed.")
			return nil
		}
	}

	data, err := seed.Apply(ctx, s, path)
	if err != nil {
		return err
	}
	log.Printf("Seeded %d games, %d reviews, %d authors.", len(data.Games), len(data.Reviews), len(data.Authors))
	return nil
}
