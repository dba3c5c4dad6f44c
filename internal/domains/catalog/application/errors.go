package application

import (
	"errors"
	"fmt"

	"github.com/cornerstore/cornerstore-api/internal/domains/catalog/domain"
)

var (
	// ErrInvalidInput signals the request violated a domain invariant.
	ErrInvalidInput = errors.New("invalid product input")
	// ErrBlankSearch rejects empty search text on the product query.
	ErrBlankSearch = errors.New("search text is required")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrEmptyName) ||
		errors.Is(err, domain.ErrNegativePrice) ||
		errors.Is(err, domain.ErrInvalidCategoryID) ||
		errors.Is(err, ErrBlankSearch) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
