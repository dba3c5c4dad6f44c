package application

import (
	"errors"
	"fmt"

	"github.com/cornerstore/cornerstore-api/internal/domains/staff/domain"
)

// ErrInvalidInput signals the request violated a domain invariant.
var ErrInvalidInput = errors.New("invalid cashier input")

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrEmptyFirstName) ||
		errors.Is(err, domain.ErrEmptyLastName) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
