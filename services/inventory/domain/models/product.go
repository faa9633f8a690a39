package models

import (
	"time"
)

// DefaultMinStockLevel is applied when a descriptor omits the threshold.
const DefaultMinStockLevel = 10

// Product is the core aggregate for this bounded context: a tracked garment
// with a unique identity and a current quantity.
//
// Invariants: Quantity >= 0 at all times; ID is globally unique and never
// reused. Quantity is mutated only through the stock-mutation protocol.
type Product struct {
	ID            ProductID
	Name          string
	Type          string
	Size          string
	Color         string // optional
	Quantity      int
	MinStockLevel int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Descriptor carries caller-supplied attributes for product creation.
// Name, Type and Size are required; Quantity defaults to 0.
type Descriptor struct {
	Name          string
	Type          string
	Size          string
	Color         string
	Quantity      int
	MinStockLevel int // 0 means DefaultMinStockLevel
}

// NewProduct constructs a Product aggregate from a validated descriptor with
// a freshly derived identity. CreatedAt and UpdatedAt start equal.
func NewProduct(d Descriptor, now time.Time) *Product {
	minStock := d.MinStockLevel
	if minStock <= 0 {
		minStock = DefaultMinStockLevel
	}
	now = now.UTC()
	return &Product{
		ID:            NewProductID(d.Type, d.Size, now),
		Name:          d.Name,
		Type:          d.Type,
		Size:          d.Size,
		Color:         d.Color,
		Quantity:      d.Quantity,
		MinStockLevel: minStock,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// LowOnStock reports whether the product is at or below its threshold.
func (p *Product) LowOnStock() bool {
	return p.Quantity <= p.MinStockLevel
}
