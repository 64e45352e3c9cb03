package models

// Game represents a game that can be reviewed.
// Seq keeps insertion order in SQL stores; ID is the public identifier.
type Game struct {
	Seq      uint      `gorm:"primaryKey;autoIncrement" json:"-" toml:"-" yaml:"-"`
	ID       string    `gorm:"size:64;uniqueIndex;not null" json:"id" toml:"id" yaml:"id"`
	Title    *string   `gorm:"size:255" json:"title" toml:"title" yaml:"title"`
	Platform Platforms `gorm:"not null" json:"platform" toml:"platform" yaml:"platform"`
}

// Clone returns a copy of the game that shares no memory with the receiver.
func (g Game) Clone() Game {
	out := g
	if g.Title != nil {
		title := *g.Title
		out.Title = &title
	}
	if g.Platform != nil {
		out.Platform = append(Platforms(nil), g.Platform...)
	}
	return out
}

// NewGame holds the fields accepted when creating a game.
type NewGame struct {
	Title    string
	Platform []string
}

// GameEdits is a partial game. Nil fields are left untouched;
// ClearTitle sets the title to null when Title is nil.
type GameEdits struct {
	Title      *string
	ClearTitle bool
	Platform   []string
}

// Apply merges the edits over g and returns the result.
func (e GameEdits) Apply(g Game) Game {
	out := g.Clone()
	if e.Title != nil {
		title := *e.Title
		out.Title = &title
	} else if e.ClearTitle {
		out.Title = nil
	}
	if e.Platform != nil {
		out.Platform = append(Platforms(nil), e.Platform...)
	}
	return out
}
