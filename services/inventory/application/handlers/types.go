package handlers

import (
	"time"

	"github.com/ghuser/stitchstock/services/inventory/domain/models"
)

// ProductResponse is the JSON shape of a product on all read and write paths.
type ProductResponse struct {
	ProductID     string    `json:"product_id"     example:"SHI-M-LX2T4K9-A3F7Q"`
	Name          string    `json:"name"           example:"Linen Shirt"`
	Type          string    `json:"type"           example:"Shirt"`
	Size          string    `json:"size"           example:"M"`
	Color         string    `json:"color,omitempty" example:"White"`
	Quantity      int       `json:"quantity"       example:"10"`
	MinStockLevel int       `json:"min_stock_level" example:"10"`
	LowStock      bool      `json:"low_stock"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
} // @name ProductResponse

// TransactionResponse is the JSON shape of a ledger record.
type TransactionResponse struct {
	ID          int64     `json:"id"`
	ProductID   string    `json:"product_id"`
	Action      string    `json:"action"       example:"STOCK_OUT"`
	Quantity    int       `json:"quantity"     example:"3"`
	PerformedBy string    `json:"performed_by" example:"admin"`
	Location    string    `json:"location,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
	ProductName string    `json:"name,omitempty"`
	ProductType string    `json:"type,omitempty"`
	ProductSize string    `json:"size,omitempty"`
} // @name TransactionResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"product not found"`
} // @name ErrorResponse

func toProductResponse(p *models.Product) ProductResponse {
	return ProductResponse{
		ProductID:     p.ID.String(),
		Name:          p.Name,
		Type:          p.Type,
		Size:          p.Size,
		Color:         p.Color,
		Quantity:      p.Quantity,
		MinStockLevel: p.MinStockLevel,
		LowStock:      p.LowOnStock(),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func toProductResponses(products []*models.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i, p := range products {
		out[i] = toProductResponse(p)
	}
	return out
}

func toTransactionResponse(rec models.LedgerRecord) TransactionResponse {
	return TransactionResponse{
		ID:          rec.ID,
		ProductID:   rec.ProductID.String(),
		Action:      string(rec.Action),
		Quantity:    rec.Quantity,
		PerformedBy: rec.PerformedBy,
		Location:    rec.Location,
		Notes:       rec.Notes,
		Timestamp:   rec.Timestamp,
		ProductName: rec.ProductName,
		ProductType: rec.ProductType,
		ProductSize: rec.ProductSize,
	}
}

func toTransactionResponses(records []models.LedgerRecord) []TransactionResponse {
	out := make([]TransactionResponse, len(records))
	for i, rec := range records {
		out[i] = toTransactionResponse(rec)
	}
	return out
}
