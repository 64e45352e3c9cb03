package graph

import (
	"context"

	"gamereviews/backend/internal/models"

	graphql "github.com/graph-gophers/graphql-go"
)

type reviewResolver struct {
	root   *Resolver
	review models.Review
}

func (r *reviewResolver) ID() graphql.ID {
	return graphql.ID(r.review.ID)
}

func (r *reviewResolver) Rating() int32 {
	return r.review.Rating
}

func (r *reviewResolver) Content() string {
	return r.review.Content
}

// Game resolves the review's game_id; a dangling key yields null.
func (r *reviewResolver) Game(ctx context.Context) (*gameResolver, error) {
	game, err := r.root.store.GetGame(ctx, r.review.GameID)
	if err != nil {
		return nil, err
	}
	return r.root.optionalGame(game), nil
}

// Author resolves the review's author_id; a dangling key yields null.
func (r *reviewResolver) Author(ctx context.Context) (*authorResolver, error) {
	author, err := r.root.store.GetAuthor(ctx, r.review.AuthorID)
	if err != nil {
		return nil, err
	}
	return r.root.optionalAuthor(author), nil
}

func (r *Resolver) reviewList(reviews []models.Review) *[]*reviewResolver {
	out := make([]*reviewResolver, len(reviews))
	for i := range reviews {
		out[i] = &reviewResolver{root: r, review: reviews[i]}
	}
	return &out
}

func (r *Resolver) optionalReview(review *models.Review) *reviewResolver {
	if review == nil {
		return nil
	}
	return &reviewResolver{root: r, review: *review}
}
