package handler

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gamereviews/backend/internal/graph"
	"gamereviews/backend/internal/hub"
	"gamereviews/backend/internal/models"
	"gamereviews/backend/internal/store"
	"gamereviews/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

func ptr(s string) *string { return &s }

func newTestRouter(t *testing.T, requireAuth bool) (*gin.Engine, *hub.Hub) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := store.NewMemory()
	require.NoError(t, s.Import(context.Background(), &models.Dataset{
		Games:   []models.Game{{ID: "1", Title: ptr("Chrono Trigger"), Platform: models.Platforms{"SNES"}}},
		Reviews: []models.Review{{ID: "10", Rating: 5, Content: "great", GameID: "1", AuthorID: "100"}},
		Authors: []models.Author{{ID: "100", Name: "Ana", Verified: true}},
	}))

	h := hub.NewHub()
	schema, err := graph.NewSchema(graph.NewResolver(s, h, requireAuth), graph.Options{MaxDepth: 10})
	require.NoError(t, err)

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	return NewRouter(Deps{
		Schema:            schema,
		Hub:               h,
		JWTSecret:         testSecret,
		AdminPasswordHash: string(hash),
		TokenTTL:          time.Hour,
		Playground:        true,
	}), h
}

func do(router http.Handler, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPing(t *testing.T) {
	router, _ := newTestRouter(t, false)

	w := do(router, http.MethodGet, "/ping", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
}

func TestGraphQLEndpoint(t *testing.T) {
	router, _ := newTestRouter(t, false)

	t.Run("nested query", func(t *testing.T) {
		body := `{"query":"query Game($id: ID!) { game(id: $id) { title reviews { content author { name } } } }","operationName":"Game","variables":{"id":"1"}}`
		w := do(router, http.MethodPost, "/graphql", body)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"data":{"game":{"title":"Chrono Trigger","reviews":[{"content":"great","author":{"name":"Ana"}}]}}}`, w.Body.String())
	})

	t.Run("missing query", func(t *testing.T) {
		w := do(router, http.MethodPost, "/graphql", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid json", func(t *testing.T) {
		w := do(router, http.MethodPost, "/graphql", `{`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("schema errors are reported in the body", func(t *testing.T) {
		w := do(router, http.MethodPost, "/graphql", `{"query":"{ nope }"}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"errors"`)
	})
}

func TestLoginAndAuthorizedMutation(t *testing.T) {
	router, _ := newTestRouter(t, true)
	mutation := `{"query":"mutation { deleteGame(id: \"1\") { id } }"}`

	w := do(router, http.MethodPost, "/graphql", mutation)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), graph.ErrUnauthenticated.Error())

	w = do(router, http.MethodPost, "/api/v1/auth/login", `{"password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(router, http.MethodPost, "/api/v1/auth/login", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(router, http.MethodPost, "/api/v1/auth/login", `{"password":"password123"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var login TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	subject, err := jwt.ParseToken(login.Token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "admin", subject)

	w = do(router, http.MethodPost, "/graphql", mutation, "Authorization", "Bearer "+login.Token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":{"deleteGame":[]}}`, w.Body.String())
}

func TestLoginNotConfigured(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/login", Login("", testSecret, time.Hour))

	w := do(router, http.MethodPost, "/login", `{"password":"x"}`)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestPlaygroundAndSwagger(t *testing.T) {
	router, _ := newTestRouter(t, false)

	w := do(router, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/graphql")

	w = do(router, http.MethodGet, "/swagger/doc.json", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Game Reviews API")
}

func TestEventsStream(t *testing.T) {
	router, h := newTestRouter(t, false)
	server := httptest.NewServer(router)
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL+"/events", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	require.Eventually(t, func() bool { return h.Len() == 1 }, time.Second, 10*time.Millisecond)

	w := do(router, http.MethodPost, "/graphql", `{"query":"mutation { updateGame(id: \"1\", edits: {title: \"Y\"}) { id } }"}`)
	require.Equal(t, http.StatusOK, w.Code)

	reader := bufio.NewReader(resp.Body)
	var lines []string
	for len(lines) < 2 {
		line, err := reader.ReadString('\n')
		require.NoError(t, err)
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}

	assert.Equal(t, "event:game", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "data:"))
	assert.JSONEq(t, `{"type":"game.updated","payload":{"id":"1","title":"Y","platform":["SNES"]}}`, strings.TrimPrefix(lines[1], "data:"))
}
