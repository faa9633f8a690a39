package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics published by the inventory context.
const (
	TopicProductCreated = "inventory.product.created"
	TopicStockAdjusted  = "inventory.stock.adjusted"
)

// ProductCreatedEvent is published after a new product is persisted.
type ProductCreatedEvent struct {
	EventID       uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version       int       `json:"version"`  // Schema version; increment on breaking changes
	ProductID     string    `json:"product_id"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	Size          string    `json:"size"`
	Quantity      int       `json:"quantity"`
	MinStockLevel int       `json:"min_stock_level"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// StockAdjustedEvent is published after a successful stock mutation, within
// the same transaction as the quantity update and ledger append.
type StockAdjustedEvent struct {
	EventID          uuid.UUID `json:"event_id"`
	Version          int       `json:"version"`
	ProductID        string    `json:"product_id"`
	Action           string    `json:"action"`
	Quantity         int       `json:"quantity"`
	PreviousQuantity int       `json:"previous_quantity"`
	NewQuantity      int       `json:"new_quantity"`
	MinStockLevel    int       `json:"min_stock_level"`
	PerformedBy      string    `json:"performed_by"`
	OccurredAt       time.Time `json:"occurred_at"`
}
