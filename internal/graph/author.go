package graph

import (
	"context"

	"gamereviews/backend/internal/models"

	graphql "github.com/graph-gophers/graphql-go"
)

type authorResolver struct {
	root   *Resolver
	author models.Author
}

func (r *authorResolver) ID() graphql.ID {
	return graphql.ID(r.author.ID)
}

func (r *authorResolver) Name() string {
	return r.author.Name
}

func (r *authorResolver) Verified() bool {
	return r.author.Verified
}

func (r *authorResolver) Reviews(ctx context.Context) (*[]*reviewResolver, error) {
	reviews, err := r.root.store.ReviewsByAuthor(ctx, r.author.ID)
	if err != nil {
		return nil, err
	}
	return r.root.reviewList(reviews), nil
}

func (r *Resolver) authorList(authors []models.Author) *[]*authorResolver {
	out := make([]*authorResolver, len(authors))
	for i := range authors {
		out[i] = &authorResolver{root: r, author: authors[i]}
	}
	return &out
}

func (r *Resolver) optionalAuthor(author *models.Author) *authorResolver {
	if author == nil {
		return nil
	}
	return &authorResolver{root: r, author: *author}
}
