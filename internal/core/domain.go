package core

import (
	"errors"
	"fmt"
	"strings"
)

type (
	// Guest is one cash-gift entry in the wedding ledger. Contributions are
	// tracked in two independent currencies with no conversion between them:
	// whole riel (KHR carries no sub-unit) and decimal dollars.
	Guest struct {
		ID      int64
		Name    string
		KHR     int64
		USD     float64
		Address string
		Note    string // present in the schema, not written by current flows
	}

	// Summary aggregates the whole guest table: record count plus the sum of
	// each currency column. Always computed fresh, never cached.
	Summary struct {
		Guests   int64
		TotalKHR int64
		TotalUSD float64
	}
)

var (
	// ErrInvalidInput is the base error for anything the presentation layer
	// should re-prompt for. ErrEmptyName and ErrInvalidAmount wrap it so
	// callers can match the whole family with errors.Is.
	ErrInvalidInput  = errors.New("invalid input")
	ErrEmptyName     = fmt.Errorf("%w: guest name is required", ErrInvalidInput)
	ErrInvalidAmount = fmt.Errorf("%w: amount is not a number", ErrInvalidInput)

	ErrNotFound = errors.New("guest not found")
)

// Validate checks the invariants a guest must satisfy before it may be
// persisted. Negative amounts are deliberately allowed so corrections can be
// entered as negative contributions.
func (g Guest) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return ErrEmptyName
	}
	return nil
}
