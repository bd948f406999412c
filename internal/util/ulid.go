package util

import (
	"github.com/oklog/ulid/v2"
)

// NewULID generates a new ULID string. ulid.Make draws entropy from
// crypto/rand, which is enough for identifier generation here.
func NewULID() string {
	return ulid.Make().String()
}
