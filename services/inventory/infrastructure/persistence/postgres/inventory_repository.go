package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/stitchstock/pkg/database"
	"github.com/ghuser/stitchstock/pkg/events"
	invdomain "github.com/ghuser/stitchstock/services/inventory/domain"
	domainevents "github.com/ghuser/stitchstock/services/inventory/domain/events"
	"github.com/ghuser/stitchstock/services/inventory/domain/models"
	"github.com/ghuser/stitchstock/services/inventory/domain/repositories"
)

// Postgres error codes matched below.
const (
	pgUniqueViolation = "23505"
	pgCheckViolation  = "23514" // products_quantity_nonnegative
)

// InventoryRepository implements repositories.ProductRepository and
// repositories.LedgerRepository against PostgreSQL. Both mutation methods run
// the product write, the ledger append, and the event publish in a single
// transaction, so no partial state is ever observable.
type InventoryRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewInventoryRepository returns an InventoryRepository backed by the given
// connection pool and event bus. A nil bus disables event publishing.
func NewInventoryRepository(db *database.Database, bus *events.EventBus) *InventoryRepository {
	return &InventoryRepository{db: db, bus: bus}
}

// Create persists a new product and, when initial is non-nil, its
// INITIAL_STOCK ledger entry, publishing ProductCreatedEvent within the same
// transaction. Returns ErrProductExists on an identity collision.
func (r *InventoryRepository) Create(ctx context.Context, product *models.Product, initial *models.LedgerEntry) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO products (product_id, name, type, size, color, quantity, min_stock_level, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			product.ID.String(), product.Name, product.Type, product.Size, product.Color,
			product.Quantity, product.MinStockLevel, product.CreatedAt, product.UpdatedAt,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
				return invdomain.ErrProductExists
			}
			return fmt.Errorf("insert product: %w", err)
		}

		if initial != nil {
			if err := insertLedgerEntry(ctx, tx, initial); err != nil {
				return err
			}
		}

		if r.bus != nil {
			if err := r.publishCreated(tx, product); err != nil {
				return fmt.Errorf("publish product created: %w", err)
			}
		}
		return nil
	})
}

// GetByID returns ErrProductNotFound if the identity is absent.
func (r *InventoryRepository) GetByID(ctx context.Context, id models.ProductID) (*models.Product, error) {
	row := r.db.DB().QueryRowContext(ctx, `
		SELECT product_id, name, type, size, color, quantity, min_stock_level, created_at, updated_at
		FROM products WHERE product_id = $1`, id.String())
	product, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, invdomain.ErrProductNotFound
		}
		return nil, fmt.Errorf("query product: %w", err)
	}
	return product, nil
}

// List returns all products, newest-created first.
func (r *InventoryRepository) List(ctx context.Context) ([]*models.Product, error) {
	return r.queryProducts(ctx, `
		SELECT product_id, name, type, size, color, quantity, min_stock_level, created_at, updated_at
		FROM products ORDER BY created_at DESC`)
}

// LowStock returns products at or below their min stock threshold, most
// depleted first.
func (r *InventoryRepository) LowStock(ctx context.Context) ([]*models.Product, error) {
	return r.queryProducts(ctx, `
		SELECT product_id, name, type, size, color, quantity, min_stock_level, created_at, updated_at
		FROM products WHERE quantity <= min_stock_level ORDER BY quantity ASC, created_at DESC`)
}

// SetQuantity sets the product's quantity and appends the corresponding
// ledger entry in one transaction, publishing StockAdjustedEvent within it.
func (r *InventoryRepository) SetQuantity(ctx context.Context, id models.ProductID, newQuantity int, entry *models.LedgerEntry) error {
	if newQuantity < 0 {
		return fmt.Errorf("%w: quantity must not be negative", invdomain.ErrInvariantViolation)
	}

	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		var minStock int
		err := tx.QueryRowContext(ctx, `
			UPDATE products SET quantity = $2, updated_at = $3
			WHERE product_id = $1
			RETURNING min_stock_level`,
			id.String(), newQuantity, time.Now().UTC(),
		).Scan(&minStock)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return invdomain.ErrProductNotFound
			}
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgCheckViolation {
				return fmt.Errorf("%w: quantity must not be negative", invdomain.ErrInvariantViolation)
			}
			return fmt.Errorf("update quantity: %w", err)
		}

		if err := insertLedgerEntry(ctx, tx, entry); err != nil {
			return err
		}

		if r.bus != nil {
			if err := r.publishAdjusted(tx, newQuantity, minStock, entry); err != nil {
				return fmt.Errorf("publish stock adjusted: %w", err)
			}
		}
		return nil
	})
}

// Summarize aggregates quantities grouped by (type, size) plus the grand total.
func (r *InventoryRepository) Summarize(ctx context.Context) (*models.Summary, error) {
	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT type, size, COALESCE(SUM(quantity), 0), COUNT(*)
		FROM products GROUP BY type, size ORDER BY type, size`)
	if err != nil {
		return nil, fmt.Errorf("query summary: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	summary := &models.Summary{}
	for rows.Next() {
		var g models.SummaryGroup
		if err := rows.Scan(&g.Type, &g.Size, &g.TotalQuantity, &g.ProductCount); err != nil {
			return nil, fmt.Errorf("scan summary row: %w", err)
		}
		summary.Groups = append(summary.Groups, g)
		summary.TotalItems += g.TotalQuantity
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate summary rows: %w", err)
	}
	return summary, nil
}

// Query returns the most recent ledger entries joined with product display
// attributes, newest first, ties broken by insertion order.
func (r *InventoryRepository) Query(ctx context.Context, productID models.ProductID, limit int) ([]models.LedgerRecord, error) {
	if limit <= 0 {
		limit = repositories.DefaultLedgerQueryLimit
	}

	query := `
		SELECT t.id, t.product_id, t.action, t.quantity, t.performed_by, t.location, t.notes, t.timestamp,
		       p.name, p.type, p.size
		FROM transactions t JOIN products p ON t.product_id = p.product_id`
	args := []any{}
	if productID != "" {
		query += ` WHERE t.product_id = $1`
		args = append(args, productID.String())
	}
	query += fmt.Sprintf(` ORDER BY t.timestamp DESC, t.id DESC LIMIT $%d`, len(args)+1)
	args = append(args, limit)

	rows, err := r.db.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var records []models.LedgerRecord
	for rows.Next() {
		var rec models.LedgerRecord
		var action string
		if err := rows.Scan(
			&rec.ID, &rec.ProductID, &action, &rec.Quantity,
			&rec.PerformedBy, &rec.Location, &rec.Notes, &rec.Timestamp,
			&rec.ProductName, &rec.ProductType, &rec.ProductSize,
		); err != nil {
			return nil, fmt.Errorf("scan transaction row: %w", err)
		}
		rec.Action = models.Action(action)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transaction rows: %w", err)
	}
	return records, nil
}

func insertLedgerEntry(ctx context.Context, tx *sql.Tx, entry *models.LedgerEntry) error {
	ts := entry.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
		entry.Timestamp = ts
	}
	err := tx.QueryRowContext(ctx, `
		INSERT INTO transactions (product_id, action, quantity, performed_by, location, notes, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		entry.ProductID.String(), string(entry.Action), entry.Quantity,
		entry.PerformedBy, entry.Location, entry.Notes, ts,
	).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("insert ledger entry: %w", err)
	}
	return nil
}

func (r *InventoryRepository) publishCreated(tx *sql.Tx, product *models.Product) error {
	event := domainevents.ProductCreatedEvent{
		EventID:       uuid.New(),
		Version:       1,
		ProductID:     product.ID.String(),
		Name:          product.Name,
		Type:          product.Type,
		Size:          product.Size,
		Quantity:      product.Quantity,
		MinStockLevel: product.MinStockLevel,
		OccurredAt:    product.CreatedAt,
	}
	return r.publishTx(tx, domainevents.TopicProductCreated, event, event.EventID)
}

func (r *InventoryRepository) publishAdjusted(tx *sql.Tx, newQuantity, minStock int, entry *models.LedgerEntry) error {
	event := domainevents.StockAdjustedEvent{
		EventID:          uuid.New(),
		Version:          1,
		ProductID:        entry.ProductID.String(),
		Action:           string(entry.Action),
		Quantity:         entry.Quantity,
		PreviousQuantity: newQuantity - entry.Quantity*entry.Action.Direction(),
		NewQuantity:      newQuantity,
		MinStockLevel:    minStock,
		PerformedBy:      entry.PerformedBy,
		OccurredAt:       entry.Timestamp,
	}
	return r.publishTx(tx, domainevents.TopicStockAdjusted, event, event.EventID)
}

func (r *InventoryRepository) publishTx(tx *sql.Tx, topic string, event any, eventID uuid.UUID) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", eventID.String())
	msg.Metadata.Set("event_version", "1")
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(topic, msg)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*models.Product, error) {
	var p models.Product
	var id string
	var color sql.NullString
	if err := row.Scan(&id, &p.Name, &p.Type, &p.Size, &color, &p.Quantity, &p.MinStockLevel, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.ID = models.ProductID(id)
	p.Color = color.String
	return &p, nil
}

func (r *InventoryRepository) queryProducts(ctx context.Context, query string) ([]*models.Product, error) {
	rows, err := r.db.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var products []*models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product rows: %w", err)
	}
	return products, nil
}
