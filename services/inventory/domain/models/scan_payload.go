package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/ghuser/stitchstock/services/inventory/domain"
)

// ScanPayload is the structured document embedded in a product's QR code.
//
// Only ProductID is authoritative: the descriptive fields are a snapshot taken
// at encode time and must never be trusted for current state. Decode requires
// only product_id; everything else is advisory.
type ScanPayload struct {
	ProductID string    `json:"product_id"`
	Name      string    `json:"name,omitempty"`
	Type      string    `json:"type,omitempty"`
	Size      string    `json:"size,omitempty"`
	Color     string    `json:"color,omitempty"`
	EncodedAt time.Time `json:"ts,omitempty"`
}

// EncodePayload builds the scannable payload for a product. Pure function of
// the product's identity and snapshot attributes plus the embedded timestamp.
func EncodePayload(p *Product, now time.Time) ScanPayload {
	return ScanPayload{
		ProductID: p.ID.String(),
		Name:      p.Name,
		Type:      p.Type,
		Size:      p.Size,
		Color:     p.Color,
		EncodedAt: now.UTC(),
	}
}

// Encode serializes the payload to its wire form (the QR code content).
func (p ScanPayload) Encode() string {
	b, _ := json.Marshal(p)
	return string(b)
}

// DecodePayload parses a raw scanned payload. It is a pure parse: no store
// lookup happens here. Returns ErrDecode if the payload is not well-formed
// JSON or lacks a product identity.
func DecodePayload(raw string) (ScanPayload, error) {
	var p ScanPayload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return ScanPayload{}, fmt.Errorf("%w: malformed document", domain.ErrDecode)
	}
	if strings.TrimSpace(p.ProductID) == "" {
		return ScanPayload{}, fmt.Errorf("%w: missing product_id", domain.ErrDecode)
	}
	return p, nil
}
