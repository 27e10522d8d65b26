package models

import (
	"strings"

	"github.com/oklog/ulid/v2"
)

// NewID returns a record identifier made of a millisecond timestamp followed by a
// random suffix. Identifiers generated by one process sort in creation order.
func NewID() string {
	return strings.ToLower(ulid.Make().String())
}

func assignID(id *string) {
	if strings.TrimSpace(*id) == "" {
		*id = NewID()
	}
}
