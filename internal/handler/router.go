package handler

import (
	"net/http"
	"time"

	"gamereviews/backend/internal/auth"
	"gamereviews/backend/internal/hub"

	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/gin-gonic/gin"
	graphql "github.com/graph-gophers/graphql-go"

	// Swagger imports
	_ "gamereviews/backend/docs" // registers the swagger spec

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Deps are the collaborators the HTTP routes need.
type Deps struct {
	Schema            *graphql.Schema
	Hub               *hub.Hub
	JWTSecret         string
	AdminPasswordHash string
	TokenTTL          time.Duration
	Playground        bool
}

// NewRouter wires every HTTP route.
func NewRouter(d Deps) *gin.Engine {
	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	if d.Playground {
		router.GET("/", gin.WrapH(playground.Handler("Game Reviews", "/graphql")))
	}

	router.POST("/graphql", auth.OptionalAuthMiddleware(d.JWTSecret), GraphQL(d.Schema))
	router.GET("/events", Events(d.Hub))

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		authRoutes := apiV1.Group("/auth")
		{
			authRoutes.POST("/login", Login(d.AdminPasswordHash, d.JWTSecret, d.TokenTTL))
		}
	}

	return router
}
