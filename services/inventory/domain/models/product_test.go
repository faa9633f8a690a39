package models

import (
	"testing"
	"time"
)

func TestNewProduct(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	d := Descriptor{
		Name: "Linen Shirt", Type: "Shirt", Size: "M", Color: "White",
		Quantity: 10, MinStockLevel: 5,
	}

	p := NewProduct(d, now)

	if p.ID == "" {
		t.Fatal("expected a derived identity")
	}
	if p.Quantity != 10 {
		t.Errorf("expected quantity 10, got %d", p.Quantity)
	}
	if p.MinStockLevel != 5 {
		t.Errorf("expected min stock 5, got %d", p.MinStockLevel)
	}
	if !p.CreatedAt.Equal(p.UpdatedAt) {
		t.Errorf("expected CreatedAt == UpdatedAt, got %v / %v", p.CreatedAt, p.UpdatedAt)
	}
}

func TestNewProduct_DefaultMinStockLevel(t *testing.T) {
	p := NewProduct(Descriptor{Name: "Kurta", Type: "Kurta", Size: "L"}, time.Now())
	if p.MinStockLevel != DefaultMinStockLevel {
		t.Fatalf("expected default min stock %d, got %d", DefaultMinStockLevel, p.MinStockLevel)
	}
	if p.Quantity != 0 {
		t.Fatalf("expected zero quantity when descriptor omits it, got %d", p.Quantity)
	}
}

func TestProduct_LowOnStock(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		min      int
		want     bool
	}{
		{"above threshold", 11, 10, false},
		{"at threshold", 10, 10, true},
		{"below threshold", 3, 10, true},
		{"zero stock", 0, 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Product{Quantity: tt.quantity, MinStockLevel: tt.min}
			if got := p.LowOnStock(); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
