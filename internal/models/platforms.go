package models

import (
	"database/sql/driver"

	"github.com/lib/pq"
)

// Platforms is the ordered platform list of a game. It is stored as a
// Postgres array literal in a text column so every SQL driver can hold it.
type Platforms []string

func (p Platforms) Value() (driver.Value, error) {
	if p == nil {
		return "{}", nil
	}
	return pq.StringArray(p).Value()
}

func (p *Platforms) Scan(src any) error {
	return (*pq.StringArray)(p).Scan(src)
}

// GormDataType implements gorm's schema.GormDataTypeInterface.
func (Platforms) GormDataType() string {
	return "text"
}
