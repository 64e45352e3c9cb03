package models

// Review is a rating left by an author for a game.
// GameID and AuthorID are plain keys; nothing enforces that they resolve.
type Review struct {
	Seq      uint   `gorm:"primaryKey;autoIncrement" json:"-" toml:"-" yaml:"-"`
	ID       string `gorm:"size:64;uniqueIndex;not null" json:"id" toml:"id" yaml:"id"`
	Rating   int32  `gorm:"not null" json:"rating" toml:"rating" yaml:"rating"`
	Content  string `gorm:"not null" json:"content" toml:"content" yaml:"content"`
	GameID   string `gorm:"size:64;not null;index" json:"game_id" toml:"game_id" yaml:"game_id"`
	AuthorID string `gorm:"size:64;not null;index" json:"author_id" toml:"author_id" yaml:"author_id"`
}
