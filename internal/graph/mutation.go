package graph

import (
	"context"
	"errors"

	"gamereviews/backend/internal/hub"
	"gamereviews/backend/internal/models"

	graphql "github.com/graph-gophers/graphql-go"
)

// ErrEmptyPlatform is returned when a game would be left without platforms.
var ErrEmptyPlatform = errors.New("platform must list at least one entry")

type addGameInput struct {
	Title    string
	Platform []string
}

// Title is a NullString so an explicit null clears the title.
type editGameInput struct {
	Title    graphql.NullString
	Platform *[]string
}

func (r *Resolver) AddGame(ctx context.Context, args struct{ Game addGameInput }) (*gameResolver, error) {
	if err := r.authorize(ctx); err != nil {
		return nil, err
	}
	if len(args.Game.Platform) == 0 {
		return nil, ErrEmptyPlatform
	}

	game, err := r.store.AddGame(ctx, models.NewGame{
		Title:    args.Game.Title,
		Platform: args.Game.Platform,
	})
	if err != nil {
		return nil, err
	}

	r.publish(hub.EventGameAdded, game)
	return r.optionalGame(game), nil
}

func (r *Resolver) UpdateGame(ctx context.Context, args struct {
	ID    graphql.ID
	Edits editGameInput
}) (*gameResolver, error) {
	if err := r.authorize(ctx); err != nil {
		return nil, err
	}

	edits := models.GameEdits{
		Title:      args.Edits.Title.Value,
		ClearTitle: args.Edits.Title.Set && args.Edits.Title.Value == nil,
	}
	if args.Edits.Platform != nil {
		if len(*args.Edits.Platform) == 0 {
			return nil, ErrEmptyPlatform
		}
		edits.Platform = *args.Edits.Platform
	}

	game, err := r.store.UpdateGame(ctx, string(args.ID), edits)
	if err != nil {
		return nil, err
	}

	if game != nil {
		r.publish(hub.EventGameUpdated, game)
	}
	return r.optionalGame(game), nil
}

func (r *Resolver) DeleteGame(ctx context.Context, args idArgs) (*[]*gameResolver, error) {
	if err := r.authorize(ctx); err != nil {
		return nil, err
	}

	existing, err := r.store.GetGame(ctx, string(args.ID))
	if err != nil {
		return nil, err
	}

	games, err := r.store.DeleteGame(ctx, string(args.ID))
	if err != nil {
		return nil, err
	}

	if existing != nil {
		r.publish(hub.EventGameDeleted, map[string]string{"id": string(args.ID)})
	}
	return r.gameList(games), nil
}
