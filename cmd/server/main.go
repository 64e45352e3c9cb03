package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"gamereviews/backend/internal/config"
	"gamereviews/backend/internal/graph"
	"gamereviews/backend/internal/handler"
	"gamereviews/backend/internal/hub"
	"gamereviews/backend/internal/store"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

func init() {
	config.LoadConfig()
}

// @title           Game Reviews API
// @version         1.0
// @description     GraphQL API for games, reviews and authors.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.AppConfig
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	s, closeStore, err := store.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer closeStore()

	if cfg.SeedOnStart {
		if err := store.SeedIfEmpty(ctx, s, cfg.SeedFile); err != nil {
			log.Fatalf("Failed to seed store: %v", err)
		}
	}

	events := hub.NewHub()
	schema, err := graph.NewSchema(
		graph.NewResolver(s, events, cfg.MutationsRequireAuth),
		graph.Options{MaxDepth: cfg.GraphQLMaxDepth, MaxParallelism: cfg.GraphQLMaxParallelism},
	)
	if err != nil {
		log.Fatalf("Failed to build schema: %v", err)
	}

	router := handler.NewRouter(handler.Deps{
		Schema:            schema,
		Hub:               events,
		JWTSecret:         cfg.JWTSecret,
		AdminPasswordHash: cfg.AdminPasswordHash,
		TokenTTL:          cfg.TokenTTL,
		Playground:        cfg.Playground,
	})

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("Server is running on :%s", cfg.Port)
		if cfg.Playground {
			log.Printf("GraphQL playground is available at http://localhost:%s/", cfg.Port)
		}
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Println("Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
