package editor

import (
	"errors"
	"fmt"
)

var (
	ErrNoSections = errors.New("document must have at least one section")
	ErrEmptyID    = errors.New("section id must not be empty")
)

type DuplicateIDError struct {
	ID string
}

func (e DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate section id: %s", e.ID)
}
