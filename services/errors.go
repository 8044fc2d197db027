package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrNotFound indicates the identifier is well formed but nothing is stored under it
	ErrNotFound = errors.New("not found")
	// ErrInvalidID indicates a malformed identifier
	ErrInvalidID = errors.New("invalid identifier")
	// ErrInvalidInput indicates a request body that passed binding but is still unusable
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidLogo indicates logo data that is not a PNG or JPEG image
	ErrInvalidLogo = errors.New("invalid logo image")
)

// ValidateID checks that id is a UUID
func ValidateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return nil
}
