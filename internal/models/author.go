package models

// Author represents someone who writes reviews.
type Author struct {
	Seq      uint   `gorm:"primaryKey;autoIncrement" json:"-" toml:"-" yaml:"-"`
	ID       string `gorm:"size:64;uniqueIndex;not null" json:"id" toml:"id" yaml:"id"`
	Name     string `gorm:"size:255;not null" json:"name" toml:"name" yaml:"name"`
	Verified bool   `gorm:"not null;default:false" json:"verified" toml:"verified" yaml:"verified"`
}
