package repository

import (
	"errors"
	"fmt"
)

// Common repository errors
var (
	// ErrReferenceNotFound is returned when an operation names an entity that does not exist.
	ErrReferenceNotFound = errors.New("referenced entity not found")

	ErrSourceCardNotFound = fmt.Errorf("source card: %w", ErrReferenceNotFound)
	ErrTargetCardNotFound = fmt.Errorf("target card: %w", ErrReferenceNotFound)

	// ErrLinkExists is returned when the source card already links to the target card.
	ErrLinkExists = errors.New("link already exists")

	// ErrEmailTaken is returned when registering an email that already has an account.
	ErrEmailTaken = errors.New("email already registered")
)
