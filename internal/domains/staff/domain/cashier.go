package domain

import (
	"errors"
	"strings"
)

var (
	ErrEmptyFirstName = errors.New("first name is required")
	ErrEmptyLastName  = errors.New("last name is required")
)

// Cashier represents a staff member who records orders at the register.
type Cashier struct {
	ID        int64
	FirstName string
	LastName  string
}

// NewCashier builds a cashier ensuring both name fields are present.
func NewCashier(id int64, firstName, lastName string) (*Cashier, error) {
	c := &Cashier{ID: id}
	if err := c.Rename(firstName, lastName); err != nil {
		return nil, err
	}
	return c, nil
}

// Rename trims and validates both name fields.
func (c *Cashier) Rename(firstName, lastName string) error {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName == "" {
		return ErrEmptyFirstName
	}
	if lastName == "" {
		return ErrEmptyLastName
	}
	c.FirstName = firstName
	c.LastName = lastName
	return nil
}

// FullName derives the display name; it is never persisted.
func (c *Cashier) FullName() string {
	return c.FirstName + " " + c.LastName
}

// Validate re-applies the name invariants for persistence.
func (c *Cashier) Validate() error {
	return c.Rename(c.FirstName, c.LastName)
}
