// Package seed loads the initial games, reviews and authors.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"gamereviews/backend/internal/models"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed default.toml
var defaultData []byte

// Default returns the built-in dataset.
func Default() (*models.Dataset, error) {
	return decodeTOML(defaultData)
}

// Load reads a dataset from path. The format follows the extension:
// .toml, .yaml or .yml. An empty path yields the built-in dataset.
func Load(path string) (*models.Dataset, error) {
	if path == "" {
		return Default()
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read seed file")
	}

	var data *models.Dataset
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		data, err = decodeTOML(raw)
	case ".yaml", ".yml":
		data, err = decodeYAML(raw)
	default:
		return nil, errors.Errorf("unsupported seed file extension %q", ext)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	return data, nil
}

// Importer is the part of a store that accepts a dataset.
type Importer interface {
	Import(ctx context.Context, data *models.Dataset) error
}

// Apply loads the dataset at path and imports it into dst.
func Apply(ctx context.Context, dst Importer, path string) (*models.Dataset, error) {
	data, err := Load(path)
	if err != nil {
		return nil, err
	}
	if err := Validate(data); err != nil {
		return nil, err
	}
	if err := dst.Import(ctx, data); err != nil {
		return nil, err
	}
	return data, nil
}

// Validate checks that ids are present and unique within each collection
// and that every game lists at least one platform.
func Validate(data *models.Dataset) error {
	games := make(map[string]bool, len(data.Games))
	for _, g := range data.Games {
		if err := checkID("game", g.ID, games); err != nil {
			return err
		}
		if len(g.Platform) == 0 {
			return errors.Errorf("game %s has no platform", g.ID)
		}
	}

	reviews := make(map[string]bool, len(data.Reviews))
	for _, r := range data.Reviews {
		if err := checkID("review", r.ID, reviews); err != nil {
			return err
		}
	}

	authors := make(map[string]bool, len(data.Authors))
	for _, a := range data.Authors {
		if err := checkID("author", a.ID, authors); err != nil {
			return err
		}
	}
	return nil
}

func checkID(kind, id string, seen map[string]bool) error {
	if id == "" {
		return errors.Errorf("%s without id", kind)
	}
	if seen[id] {
		return errors.Errorf("duplicate %s id %s", kind, id)
	}
	seen[id] = true
	return nil
}

func decodeTOML(raw []byte) (*models.Dataset, error) {
	var data models.Dataset
	if _, err := toml.NewDecoder(bytes.NewReader(raw)).Decode(&data); err != nil {
		return nil, err
	}
	return &data, nil
}

func decodeYAML(raw []byte) (*models.Dataset, error) {
	var data models.Dataset
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	return &data, nil
}
