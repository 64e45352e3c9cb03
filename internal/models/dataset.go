package models

// Dataset is a full snapshot of the three collections, used for seeding.
type Dataset struct {
	Games   []Game   `toml:"games" yaml:"games"`
	Reviews []Review `toml:"reviews" yaml:"reviews"`
	Authors []Author `toml:"authors" yaml:"authors"`
}
