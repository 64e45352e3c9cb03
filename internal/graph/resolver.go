// Package graph binds the game reviews schema to the store.
//
// Relationship fields (Game.reviews, Author.reviews, Review.game, Review.author)
// are never stored on the resolvers; each one is a fresh store lookup by key,
// so they always reflect the collections at the time the field is resolved.
package graph

import (
	"context"
	_ "embed"
	"errors"

	"gamereviews/backend/internal/auth"
	"gamereviews/backend/internal/hub"
	"gamereviews/backend/internal/store"

	graphql "github.com/graph-gophers/graphql-go"
)

//go:embed schema.graphql
var sdl string

// ErrUnauthenticated is returned by mutations when auth is required and the
// request carries no valid token.
var ErrUnauthenticated = errors.New("authentication required")

// Resolver is the root resolver for queries and mutations.
type Resolver struct {
	store       store.Store
	events      hub.Publisher
	requireAuth bool
}

// NewResolver creates a root resolver over s. events may be nil.
func NewResolver(s store.Store, events hub.Publisher, requireAuth bool) *Resolver {
	return &Resolver{
		store:       s,
		events:      events,
		requireAuth: requireAuth,
	}
}

// Options tunes query execution limits.
type Options struct {
	MaxDepth       int
	MaxParallelism int
}

// NewSchema parses the embedded SDL and binds it to r.
func NewSchema(r *Resolver, opts Options) (*graphql.Schema, error) {
	schemaOpts := []graphql.SchemaOpt{}
	if opts.MaxDepth > 0 {
		schemaOpts = append(schemaOpts, graphql.MaxDepth(opts.MaxDepth))
	}
	if opts.MaxParallelism > 0 {
		schemaOpts = append(schemaOpts, graphql.MaxParallelism(opts.MaxParallelism))
	}
	return graphql.ParseSchema(sdl, r, schemaOpts...)
}

// SDL returns the schema definition served by NewSchema.
func SDL() string {
	return sdl
}

func (r *Resolver) authorize(ctx context.Context) error {
	if r.requireAuth && auth.SubjectFromContext(ctx) == "" {
		return ErrUnauthenticated
	}
	return nil
}

func (r *Resolver) publish(eventType string, payload interface{}) {
	if r.events != nil {
		r.events.Publish(hub.Event{Type: eventType, Payload: payload})
	}
}
