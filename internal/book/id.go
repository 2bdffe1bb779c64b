package book

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const idLength = 16

// NewID returns a 16-character URL-safe random identifier.
func NewID() (string, error) {
	return gonanoid.New(idLength)
}
