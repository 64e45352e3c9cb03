package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"gamereviews/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	data, err := Default()
	require.NoError(t, err)

	assert.Len(t, data.Games, 5)
	assert.Len(t, data.Reviews, 7)
	assert.Len(t, data.Authors, 3)
	assert.Equal(t, "Elden Ring", *data.Games[2].Title)
	assert.Equal(t, models.Platforms{"PS5", "Xbox", "PC"}, data.Games[2].Platform)
	assert.Equal(t, "2", data.Reviews[0].GameID)
	assert.True(t, data.Authors[0].Verified)
	assert.NoError(t, Validate(data))
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.yaml")
	raw := `
games:
  - id: "1"
    title: Chrono Trigger
    platform: [SNES]
reviews:
  - id: "10"
    rating: 5
    content: great
    game_id: "1"
    author_id: "100"
authors:
  - id: "100"
    name: Ana
    verified: true
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	data, err := Load(path)
	require.NoError(t, err)

	require.Len(t, data.Games, 1)
	assert.Equal(t, "Chrono Trigger", *data.Games[0].Title)
	assert.Equal(t, "100", data.Reviews[0].AuthorID)
	assert.Equal(t, "Ana", data.Authors[0].Name)
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o600))

	_, err := Load(path)
	assert.ErrorContains(t, err, "unsupported seed file extension")
}

func TestValidate(t *testing.T) {
	dup := &models.Dataset{Authors: []models.Author{{ID: "1"}, {ID: "1"}}}
	assert.ErrorContains(t, Validate(dup), "duplicate author id 1")

	noPlatform := &models.Dataset{Games: []models.Game{{ID: "1"}}}
	assert.ErrorContains(t, Validate(noPlatform), "game 1 has no platform")

	noID := &models.Dataset{Reviews: []models.Review{{Content: "x"}}}
	assert.ErrorContains(t, Validate(noID), "review without id")
}

type recorder struct{ got *models.Dataset }

func (r *recorder) Import(ctx context.Context, data *models.Dataset) error {
	r.got = data
	return nil
}

func TestApply(t *testing.T) {
	var rec recorder
	data, err := Apply(context.Background(), &rec, "")
	require.NoError(t, err)
	assert.Same(t, data, rec.got)
}

func TestLoadRejectsOutOfRangeRating(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.toml")
	raw := "[[reviews]]\nid = \"1\"\nrating = 3000000000\ncontent = \"x\"\ngame_id = \"1\"\nauthor_id = \"1\"\n"
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}
