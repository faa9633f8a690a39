package repositories

import (
	"context"

	"github.com/ghuser/stitchstock/services/inventory/domain/models"
)

// DefaultLedgerQueryLimit caps ledger queries when the caller passes no limit.
const DefaultLedgerQueryLimit = 50

// ProductRepository is the persistence interface for the Product aggregate.
// The domain layer owns this interface; infrastructure implements it.
//
// The two mutation methods are transactional: the product write and the
// ledger append either both persist or neither does. No partially applied
// state is ever observable.
type ProductRepository interface {
	// Create persists a new product together with its optional initial-stock
	// ledger entry. Returns ErrProductExists on an identity collision.
	Create(ctx context.Context, product *models.Product, initial *models.LedgerEntry) error

	// GetByID returns ErrProductNotFound if the identity is absent.
	GetByID(ctx context.Context, id models.ProductID) (*models.Product, error)

	// List returns all products, newest-created first.
	List(ctx context.Context) ([]*models.Product, error)

	// LowStock returns products at or below their min stock threshold.
	LowStock(ctx context.Context) ([]*models.Product, error)

	// SetQuantity sets the product's quantity and appends the corresponding
	// ledger entry in one transaction, bumping the updated timestamp.
	// Fails with ErrProductNotFound if the identity is absent and with
	// ErrInvariantViolation if newQuantity is negative.
	SetQuantity(ctx context.Context, id models.ProductID, newQuantity int, entry *models.LedgerEntry) error

	// Summarize aggregates quantities grouped by (type, size).
	Summarize(ctx context.Context) (*models.Summary, error)
}

// LedgerRepository reads the append-only stock ledger. Writes happen only
// through ProductRepository's transactional methods.
type LedgerRepository interface {
	// Query returns the most recent entries, each joined with its product's
	// display attributes. An empty productID returns entries across all
	// products. limit <= 0 means DefaultLedgerQueryLimit.
	Query(ctx context.Context, productID models.ProductID, limit int) ([]models.LedgerRecord, error)
}
