package models

import (
	"errors"
	"testing"

	"github.com/ghuser/stitchstock/services/inventory/domain"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		raw     string
		want    Action
		wantErr bool
	}{
		{"IN", ActionStockIn, false},
		{"STOCK_IN", ActionStockIn, false},
		{"OUT", ActionStockOut, false},
		{"STOCK_OUT", ActionStockOut, false},
		{"SALE", ActionStockOut, false},
		{"in", ActionStockIn, false},
		{"  out  ", ActionStockOut, false},
		{"sale", ActionStockOut, false},
		{"RESTOCK", "", true},
		{"", "", true},
		{"INITIAL_STOCK", "", true}, // system-only, never scannable
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseAction(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrInvalidAction) {
					t.Fatalf("expected ErrInvalidAction for %q, got %v", tt.raw, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestAction_Direction(t *testing.T) {
	if d := ActionStockIn.Direction(); d != 1 {
		t.Errorf("STOCK_IN: expected +1, got %d", d)
	}
	if d := ActionStockOut.Direction(); d != -1 {
		t.Errorf("STOCK_OUT: expected -1, got %d", d)
	}
	if d := ActionInitialStock.Direction(); d != 1 {
		t.Errorf("INITIAL_STOCK: expected +1, got %d", d)
	}
}
