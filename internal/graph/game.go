package graph

import (
	"context"

	"gamereviews/backend/internal/models"

	graphql "github.com/graph-gophers/graphql-go"
)

type gameResolver struct {
	root *Resolver
	game models.Game
}

func (r *gameResolver) ID() graphql.ID {
	return graphql.ID(r.game.ID)
}

func (r *gameResolver) Title() *string {
	return r.game.Title
}

func (r *gameResolver) Platform() []string {
	if r.game.Platform == nil {
		return []string{}
	}
	return r.game.Platform
}

func (r *gameResolver) Reviews(ctx context.Context) (*[]*reviewResolver, error) {
	reviews, err := r.root.store.ReviewsByGame(ctx, r.game.ID)
	if err != nil {
		return nil, err
	}
	return r.root.reviewList(reviews), nil
}

func (r *Resolver) gameList(games []models.Game) *[]*gameResolver {
	out := make([]*gameResolver, len(games))
	for i := range games {
		out[i] = &gameResolver{root: r, game: games[i]}
	}
	return &out
}

func (r *Resolver) optionalGame(game *models.Game) *gameResolver {
	if game == nil {
		return nil
	}
	return &gameResolver{root: r, game: *game}
}
