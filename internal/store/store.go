// Package store holds the three collections the GraphQL layer reads and mutates.
package store

import (
	"context"

	"gamereviews/backend/internal/models"

	"github.com/google/uuid"
)

// Store is the data provider behind the resolvers.
// Lookups by id return a nil record and a nil error when nothing matches.
type Store interface {
	ListGames(ctx context.Context) ([]models.Game, error)
	GetGame(ctx context.Context, id string) (*models.Game, error)
	AddGame(ctx context.Context, input models.NewGame) (*models.Game, error)
	UpdateGame(ctx context.Context, id string, edits models.GameEdits) (*models.Game, error)
	DeleteGame(ctx context.Context, id string) ([]models.Game, error)

	ListReviews(ctx context.Context) ([]models.Review, error)
	GetReview(ctx context.Context, id string) (*models.Review, error)
	ReviewsByGame(ctx context.Context, gameID string) ([]models.Review, error)
	ReviewsByAuthor(ctx context.Context, authorID string) ([]models.Review, error)

	ListAuthors(ctx context.Context) ([]models.Author, error)
	GetAuthor(ctx context.Context, id string) (*models.Author, error)

	// Import appends a dataset to the collections.
	Import(ctx context.Context, data *models.Dataset) error
}

// NewID returns a fresh identifier for a created record.
func NewID() string {
	return uuid.NewString()
}
