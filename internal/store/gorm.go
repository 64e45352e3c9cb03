package store

import (
	"context"

	"gamereviews/backend/internal/models"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Gorm is a Store backed by a SQL database. Rows are returned in insertion order.
type Gorm struct {
	db *gorm.DB
}

var _ Store = (*Gorm)(nil)

// NewGorm wraps an open, migrated connection.
func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

func (s *Gorm) ListGames(ctx context.Context) ([]models.Game, error) {
	var games []models.Game
	if err := s.db.WithContext(ctx).Order("seq").Find(&games).Error; err != nil {
		return nil, errors.Wrap(err, "list games")
	}
	return games, nil
}

func (s *Gorm) GetGame(ctx context.Context, id string) (*models.Game, error) {
	var game models.Game
	if err := first(s.db.WithContext(ctx), &game, id); err != nil {
		return nil, errors.Wrapf(err, "get game %s", id)
	}
	if game.ID == "" {
		return nil, nil
	}
	return &game, nil
}

func (s *Gorm) AddGame(ctx context.Context, input models.NewGame) (*models.Game, error) {
	title := input.Title
	game := models.Game{
		ID:       NewID(),
		Title:    &title,
		Platform: append(models.Platforms(nil), input.Platform...),
	}
	if err := s.db.WithContext(ctx).Create(&game).Error; err != nil {
		return nil, errors.Wrap(err, "add game")
	}
	return &game, nil
}

func (s *Gorm) UpdateGame(ctx context.Context, id string, edits models.GameEdits) (*models.Game, error) {
	var game *models.Game
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current models.Game
		if err := first(tx, &current, id); err != nil {
			return err
		}
		if current.ID == "" {
			return nil
		}

		updated := edits.Apply(current)
		if err := tx.Model(&current).Select("Title", "Platform").Updates(&updated).Error; err != nil {
			return err
		}
		game = &updated
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "update game %s", id)
	}
	return game, nil
}

func (s *Gorm) DeleteGame(ctx context.Context, id string) ([]models.Game, error) {
	if err := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Game{}).Error; err != nil {
		return nil, errors.Wrapf(err, "delete game %s", id)
	}
	return s.ListGames(ctx)
}

func (s *Gorm) ListReviews(ctx context.Context) ([]models.Review, error) {
	var reviews []models.Review
	if err := s.db.WithContext(ctx).Order("seq").Find(&reviews).Error; err != nil {
		return nil, errors.Wrap(err, "list reviews")
	}
	return reviews, nil
}

func (s *Gorm) GetReview(ctx context.Context, id string) (*models.Review, error) {
	var review models.Review
	if err := first(s.db.WithContext(ctx), &review, id); err != nil {
		return nil, errors.Wrapf(err, "get review %s", id)
	}
	if review.ID == "" {
		return nil, nil
	}
	return &review, nil
}

func (s *Gorm) ReviewsByGame(ctx context.Context, gameID string) ([]models.Review, error) {
	var reviews []models.Review
	if err := s.db.WithContext(ctx).Where("game_id = ?", gameID).Order("seq").Find(&reviews).Error; err != nil {
		return nil, errors.Wrapf(err, "reviews for game %s", gameID)
	}
	return reviews, nil
}

func (s *Gorm) ReviewsByAuthor(ctx context.Context, authorID string) ([]models.Review, error) {
	var reviews []models.Review
	if err := s.db.WithContext(ctx).Where("author_id = ?", authorID).Order("seq").Find(&reviews).Error; err != nil {
		return nil, errors.Wrapf(err, "reviews for author %s", authorID)
	}
	return reviews, nil
}

func (s *Gorm) ListAuthors(ctx context.Context) ([]models.Author, error) {
	var authors []models.Author
	if err := s.db.WithContext(ctx).Order("seq").Find(&authors).Error; err != nil {
		return nil, errors.Wrap(err, "list authors")
	}
	return authors, nil
}

func (s *Gorm) GetAuthor(ctx context.Context, id string) (*models.Author, error) {
	var author models.Author
	if err := first(s.db.WithContext(ctx), &author, id); err != nil {
		return nil, errors.Wrapf(err, "get author %s", id)
	}
	if author.ID == "" {
		return nil, nil
	}
	return &author, nil
}

// Import inserts the dataset in one transaction, skipping ids that already exist.
func (s *Gorm) Import(ctx context.Context, data *models.Dataset) error {
	if data == nil {
		return nil
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, g := range data.Games {
			g.Seq = 0
			if err := createIfMissing(tx, &models.Game{}, g.ID, &g); err != nil {
				return err
			}
		}
		for _, r := range data.Reviews {
			r.Seq = 0
			if err := createIfMissing(tx, &models.Review{}, r.ID, &r); err != nil {
				return err
			}
		}
		for _, a := range data.Authors {
			a.Seq = 0
			if err := createIfMissing(tx, &models.Author{}, a.ID, &a); err != nil {
				return err
			}
		}
		return nil
	})
	return errors.Wrap(err, "import dataset")
}

// Empty reports whether the games table has no rows.
func (s *Gorm) Empty(ctx context.Context) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Game{}).Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "count games")
	}
	return count == 0, nil
}

// first loads the lowest-seq row with the given public id into dest.
// A missing row leaves dest untouched and is not an error.
func first(db *gorm.DB, dest any, id string) error {
	err := db.Where("id = ?", id).Order("seq").First(dest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

func createIfMissing(tx *gorm.DB, model any, id string, record any) error {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return tx.Create(record).Error
}
