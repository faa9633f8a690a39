package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the inventory domain. Use errors.Is() to check these.
var (
	// ErrValidation indicates a creation descriptor or request field violates
	// domain constraints.
	ErrValidation = errors.New("validation failed")

	// ErrProductNotFound indicates the referenced product does not exist.
	ErrProductNotFound = errors.New("product not found")

	// ErrProductExists indicates a product identity collision on insert.
	// Creation retries with a fresh identity before surfacing this.
	ErrProductExists = errors.New("product already exists")

	// ErrDecode indicates a scan payload is not well-formed or lacks a
	// product identity.
	ErrDecode = errors.New("invalid scan payload")

	// ErrInvalidAction indicates an unrecognized stock action.
	ErrInvalidAction = errors.New("invalid stock action")

	// ErrInsufficientStock indicates a stock-out would exceed the available
	// quantity. Matched via errors.Is; carry detail with InsufficientStockError.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrInvariantViolation indicates an operation would break a data-model
	// invariant, e.g. a negative quantity.
	ErrInvariantViolation = errors.New("invariant violation")
)

// InsufficientStockError reports how far a stock-out overshot the available
// quantity so callers can display both numbers.
type InsufficientStockError struct {
	Current   int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: %d available, %d requested", e.Current, e.Requested)
}

// Unwrap makes errors.Is(err, ErrInsufficientStock) match.
func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}
