package application

import (
	"errors"
	"fmt"

	"github.com/cornerstore/cornerstore-api/internal/domains/sales/domain"
	"github.com/cornerstore/cornerstore-api/internal/domains/sales/ports"
)

// ErrInvalidInput signals the request violated a domain invariant or
// referenced an unknown cashier.
var ErrInvalidInput = errors.New("invalid order input")

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrInvalidCashierID) ||
		errors.Is(err, domain.ErrInvalidProductID) ||
		errors.Is(err, domain.ErrInvalidQuantity) ||
		errors.Is(err, ports.ErrCashierNotFound) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
