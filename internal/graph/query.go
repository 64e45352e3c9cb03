package graph

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"
)

type idArgs struct {
	ID graphql.ID
}

func (r *Resolver) Games(ctx context.Context) (*[]*gameResolver, error) {
	games, err := r.store.ListGames(ctx)
	if err != nil {
		return nil, err
	}
	return r.gameList(games), nil
}

func (r *Resolver) Game(ctx context.Context, args idArgs) (*gameResolver, error) {
	game, err := r.store.GetGame(ctx, string(args.ID))
	if err != nil {
		return nil, err
	}
	return r.optionalGame(game), nil
}

func (r *Resolver) Reviews(ctx context.Context) (*[]*reviewResolver, error) {
	reviews, err := r.store.ListReviews(ctx)
	if err != nil {
		return nil, err
	}
	return r.reviewList(reviews), nil
}

func (r *Resolver) Review(ctx context.Context, args idArgs) (*reviewResolver, error) {
	review, err := r.store.GetReview(ctx, string(args.ID))
	if err != nil {
		return nil, err
	}
	return r.optionalReview(review), nil
}

func (r *Resolver) Authors(ctx context.Context) (*[]*authorResolver, error) {
	authors, err := r.store.ListAuthors(ctx)
	if err != nil {
		return nil, err
	}
	return r.authorList(authors), nil
}

func (r *Resolver) Author(ctx context.Context, args idArgs) (*authorResolver, error) {
	author, err := r.store.GetAuthor(ctx, string(args.ID))
	if err != nil {
		return nil, err
	}
	return r.optionalAuthor(author), nil
}
