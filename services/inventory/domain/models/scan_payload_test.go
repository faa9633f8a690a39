package models

import (
	"errors"
	"testing"
	"time"

	"github.com/ghuser/stitchstock/services/inventory/domain"
)

func TestEncodePayload_DecodePayload(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	product := NewProduct(Descriptor{
		Name: "Linen Shirt", Type: "Shirt", Size: "M", Color: "White", Quantity: 10,
	}, now)

	payload := EncodePayload(product, now)
	decoded, err := DecodePayload(payload.Encode())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if decoded.ProductID != product.ID.String() {
		t.Errorf("expected product_id %q, got %q", product.ID, decoded.ProductID)
	}
	if decoded.Name != "Linen Shirt" || decoded.Type != "Shirt" || decoded.Size != "M" || decoded.Color != "White" {
		t.Errorf("snapshot fields lost: %+v", decoded)
	}
	if !decoded.EncodedAt.Equal(now) {
		t.Errorf("expected encoded-at %v, got %v", now, decoded.EncodedAt)
	}
}

func TestDecodePayload_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"malformed json", "not-json-at-all"},
		{"empty string", ""},
		{"missing product_id", `{"name":"Linen Shirt","type":"Shirt"}`},
		{"blank product_id", `{"product_id":"   "}`},
		{"json array", `["SHI-M-LX2T4K9-A3F7Q"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodePayload(tt.raw)
			if !errors.Is(err, domain.ErrDecode) {
				t.Fatalf("expected ErrDecode, got %v", err)
			}
		})
	}
}

func TestDecodePayload_IDOnlyPayload(t *testing.T) {
	// Minimal payloads from older labels carry only the identity.
	decoded, err := DecodePayload(`{"product_id":"SHI-M-LX2T4K9-A3F7Q"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded.ProductID != "SHI-M-LX2T4K9-A3F7Q" {
		t.Fatalf("expected identity preserved, got %q", decoded.ProductID)
	}
}

func TestDecodePayload_UnknownFieldsIgnored(t *testing.T) {
	decoded, err := DecodePayload(`{"product_id":"SHI-M-LX2T4K9-A3F7Q","batch":"B-77","v":2}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded.ProductID != "SHI-M-LX2T4K9-A3F7Q" {
		t.Fatalf("expected identity preserved, got %q", decoded.ProductID)
	}
}
