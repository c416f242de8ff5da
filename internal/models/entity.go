package models

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
)

// Meta carries the identity and timestamps every stored entity shares.
// ID and CreatedAt are assigned once at creation; UpdatedAt moves on every
// mutation.
type Meta struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Entity is implemented by value types held in a persistent collection.
type Entity[T any] interface {
	Metadata() Meta
	WithMeta(Meta) T
	Matches(term string) bool
}

// Patch rewrites the user-editable fields of an entity. Full field sets
// replace every field; partial patches only touch what they carry.
type Patch[T any] interface {
	ApplyTo(T) T
}

// containsFold reports whether any of the fields contains term, ignoring
// case. An empty term matches everything.
func containsFold(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	fold := cases.Fold()
	needle := fold.String(term)
	for _, f := range fields {
		if strings.Contains(fold.String(f), needle) {
			return true
		}
	}
	return false
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
