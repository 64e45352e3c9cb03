package store

import (
	"context"
	"sync"

	"gamereviews/backend/internal/models"
)

// Memory keeps the collections in ordered slices guarded by a RWMutex.
// Every value handed out is a copy.
type Memory struct {
	mu      sync.RWMutex
	games   []models.Game
	reviews []models.Review
	authors []models.Author
}

var _ Store = (*Memory)(nil)

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) ListGames(ctx context.Context) ([]models.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return cloneGames(m.games), nil
}

func (m *Memory) GetGame(ctx context.Context, id string) (*models.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.findGame(id), nil
}

func (m *Memory) AddGame(ctx context.Context, input models.NewGame) (*models.Game, error) {
	title := input.Title
	game := models.Game{
		ID:       NewID(),
		Title:    &title,
		Platform: append(models.Platforms(nil), input.Platform...),
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for m.findGame(game.ID) != nil {
		game.ID = NewID()
	}
	m.games = append(m.games, game)

	out := game.Clone()
	return &out, nil
}

func (m *Memory) UpdateGame(ctx context.Context, id string, edits models.GameEdits) (*models.Game, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, g := range m.games {
		if g.ID == id {
			m.games[i] = edits.Apply(g)
		}
	}
	return m.findGame(id), nil
}

func (m *Memory) DeleteGame(ctx context.Context, id string) ([]models.Game, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.games[:0:0]
	for _, g := range m.games {
		if g.ID != id {
			kept = append(kept, g)
		}
	}
	m.games = kept
	return cloneGames(m.games), nil
}

func (m *Memory) ListReviews(ctx context.Context) ([]models.Review, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.Review(nil), m.reviews...), nil
}

func (m *Memory) GetReview(ctx context.Context, id string) (*models.Review, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, r := range m.reviews {
		if r.ID == id {
			out := r
			return &out, nil
		}
	}
	return nil, nil
}

func (m *Memory) ReviewsByGame(ctx context.Context, gameID string) ([]models.Review, error) {
	return m.filterReviews(func(r models.Review) bool { return r.GameID == gameID }), nil
}

func (m *Memory) ReviewsByAuthor(ctx context.Context, authorID string) ([]models.Review, error) {
	return m.filterReviews(func(r models.Review) bool { return r.AuthorID == authorID }), nil
}

func (m *Memory) ListAuthors(ctx context.Context) ([]models.Author, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.Author(nil), m.authors...), nil
}

func (m *Memory) GetAuthor(ctx context.Context, id string) (*models.Author, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, a := range m.authors {
		if a.ID == id {
			out := a
			return &out, nil
		}
	}
	return nil, nil
}

// Import appends the dataset. Records whose id is already taken are skipped.
func (m *Memory) Import(ctx context.Context, data *models.Dataset) error {
	if data == nil {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, g := range data.Games {
		if m.findGame(g.ID) == nil {
			m.games = append(m.games, g.Clone())
		}
	}

	seen := make(map[string]bool, len(m.reviews))
	for _, r := range m.reviews {
		seen[r.ID] = true
	}
	for _, r := range data.Reviews {
		if !seen[r.ID] {
			seen[r.ID] = true
			m.reviews = append(m.reviews, r)
		}
	}

	seen = make(map[string]bool, len(m.authors))
	for _, a := range m.authors {
		seen[a.ID] = true
	}
	for _, a := range data.Authors {
		if !seen[a.ID] {
			seen[a.ID] = true
			m.authors = append(m.authors, a)
		}
	}
	return nil
}

// findGame must be called with mu held.
func (m *Memory) findGame(id string) *models.Game {
	for _, g := range m.games {
		if g.ID == id {
			out := g.Clone()
			return &out
		}
	}
	return nil
}

func (m *Memory) filterReviews(match func(models.Review) bool) []models.Review {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []models.Review
	for _, r := range m.reviews {
		if match(r) {
			out = append(out, r)
		}
	}
	return out
}

func cloneGames(games []models.Game) []models.Game {
	out := make([]models.Game, len(games))
	for i, g := range games {
		out[i] = g.Clone()
	}
	return out
}

// Empty reports whether the games collection has no records.
func (m *Memory) Empty(ctx context.Context) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games) == 0, nil
}
