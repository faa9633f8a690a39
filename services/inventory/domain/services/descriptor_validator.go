// Package services contains stateless domain services for the inventory
// bounded context. They enforce business rules that operate purely on domain
// types and have zero external dependencies beyond stdlib and the domain layer.
package services

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/ghuser/stitchstock/services/inventory/domain/models"
)

// ValidateDescriptor enforces business rules on a creation descriptor before
// an aggregate is built from it.
//
// Business rules:
//   - Name, Type and Size are required and must not be only whitespace
//   - No control characters in any text field
//   - Quantity must not be negative (absent quantity is zero, which is valid)
//   - MinStockLevel must not be negative (zero means "use the default")
func ValidateDescriptor(d models.Descriptor) error {
	for _, f := range []struct {
		name, value string
		required    bool
	}{
		{"name", d.Name, true},
		{"type", d.Type, true},
		{"size", d.Size, true},
		{"color", d.Color, false},
	} {
		if f.required && strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%s is required", f.name)
		}
		for _, r := range f.value {
			if unicode.IsControl(r) {
				return fmt.Errorf("%s must not contain control characters", f.name)
			}
		}
	}

	if d.Quantity < 0 {
		return fmt.Errorf("quantity must not be negative")
	}

	if d.MinStockLevel < 0 {
		return fmt.Errorf("min_stock_level must not be negative")
	}

	return nil
}
