package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	pkgcache "github.com/ghuser/stitchstock/pkg/cache"
	invdomain "github.com/ghuser/stitchstock/services/inventory/domain"
	"github.com/ghuser/stitchstock/services/inventory/domain/models"
	"github.com/ghuser/stitchstock/services/inventory/domain/repositories"
	domainsvcs "github.com/ghuser/stitchstock/services/inventory/domain/services"
)

// createRetries bounds identity regeneration on observed collisions.
const createRetries = 3

// ScanInput is a decoded-scan mutation request.
type ScanInput struct {
	RawPayload string
	Action     string
	Quantity   int
	Actor      string
	Location   string
	Notes      string
}

// ScanResult reports the outcome of a successful stock mutation.
type ScanResult struct {
	Product          *models.Product
	PreviousQuantity int
	NewQuantity      int
	Entry            models.LedgerEntry
}

// InventoryService implements the stock-mutation protocol: validate, compute,
// and commit the quantity update together with its ledger entry as a single
// transaction. The repository guarantees the atomicity of the commit; this
// service guarantees that concurrent scans against the same product never
// interleave their read-compute-write sequence.
type InventoryService struct {
	products repositories.ProductRepository
	ledger   repositories.LedgerRepository
	cache    *pkgcache.ProductCache

	locks keyedMutex
}

// NewInventoryService returns an InventoryService wired with the given
// repositories and optional read-through cache.
func NewInventoryService(
	products repositories.ProductRepository,
	ledger repositories.LedgerRepository,
	productCache *pkgcache.ProductCache,
) *InventoryService {
	return &InventoryService{
		products: products,
		ledger:   ledger,
		cache:    productCache,
	}
}

// CreateProduct validates the descriptor, persists the product and — when the
// initial quantity is positive — an INITIAL_STOCK ledger entry in the same
// transaction, and returns the product with its encoded QR payload.
//
// An identity collision is retried with a freshly derived identity; the odds
// of exhausting the retries are negligible.
func (s *InventoryService) CreateProduct(ctx context.Context, d models.Descriptor, actor string) (*models.Product, models.ScanPayload, error) {
	if err := domainsvcs.ValidateDescriptor(d); err != nil {
		return nil, models.ScanPayload{}, fmt.Errorf("%w: %w", invdomain.ErrValidation, err)
	}
	if actor == "" {
		actor = "System"
	}

	var product *models.Product
	var err error
	for attempt := 0; attempt < createRetries; attempt++ {
		product = models.NewProduct(d, time.Now())

		var initial *models.LedgerEntry
		if product.Quantity > 0 {
			initial = &models.LedgerEntry{
				ProductID:   product.ID,
				Action:      models.ActionInitialStock,
				Quantity:    product.Quantity,
				PerformedBy: actor,
				Location:    "Manufacturing",
				Notes:       "Initial stock creation",
				Timestamp:   product.CreatedAt,
			}
		}

		err = s.products.Create(ctx, product, initial)
		if err == nil {
			break
		}
		if !errors.Is(err, invdomain.ErrProductExists) {
			return nil, models.ScanPayload{}, fmt.Errorf("create product: %w", err)
		}
	}
	if err != nil {
		return nil, models.ScanPayload{}, fmt.Errorf("create product: %w", err)
	}

	return product, models.EncodePayload(product, product.CreatedAt), nil
}

// ApplyScan runs the full protocol for one scanned mutation:
//
//  1. Decode the payload (pure parse; a DecodeError aborts with no side effects).
//  2. Resolve the product; an unknown identity never silently succeeds.
//  3. Validate the action (IN/OUT/SALE aliases accepted).
//  4. Compute the candidate quantity; a stock-out past zero fails with
//     InsufficientStockError carrying current and requested quantities.
//  5. Commit the quantity update and ledger append atomically.
//
// Steps 2–5 run under a per-product critical section so two concurrent
// stock-outs can never both be granted against the same stale quantity.
func (s *InventoryService) ApplyScan(ctx context.Context, in ScanInput) (*ScanResult, error) {
	payload, err := models.DecodePayload(in.RawPayload)
	if err != nil {
		return nil, err
	}

	action, err := models.ParseAction(in.Action)
	if err != nil {
		return nil, err
	}

	if in.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be a positive integer", invdomain.ErrValidation)
	}
	actor := in.Actor
	if actor == "" {
		actor = "Unknown"
	}

	id := models.ProductID(payload.ProductID)
	unlock := s.locks.lock(id)
	defer unlock()

	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	previous := product.Quantity
	next := previous + in.Quantity*action.Direction()
	if next < 0 {
		return nil, &invdomain.InsufficientStockError{Current: previous, Requested: in.Quantity}
	}

	entry := models.LedgerEntry{
		ProductID:   id,
		Action:      action,
		Quantity:    in.Quantity,
		PerformedBy: actor,
		Location:    in.Location,
		Notes:       in.Notes,
		Timestamp:   time.Now().UTC(),
	}

	if err := s.products.SetQuantity(ctx, id, next, &entry); err != nil {
		return nil, err
	}

	if s.cache != nil {
		// Stale read models are worse than a cache miss.
		_ = s.cache.Delete(context.Background(), id.String())
	}

	product.Quantity = next
	product.UpdatedAt = entry.Timestamp
	return &ScanResult{
		Product:          product,
		PreviousQuantity: previous,
		NewQuantity:      next,
		Entry:            entry,
	}, nil
}

// GetProduct retrieves a product using a read-through cache pattern:
// check Redis first, fall back to Postgres on miss or cache error, then
// asynchronously warm the cache with the Postgres result.
func (s *InventoryService) GetProduct(ctx context.Context, id models.ProductID) (*models.Product, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, id.String()); err == nil {
			return cachedToProduct(cached), nil
		} else if !errors.Is(err, redis.Nil) {
			_ = err // cache error; fall through to Postgres
		}
	}

	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		go func() {
			_ = s.cache.Set(context.Background(), productToCached(product))
		}()
	}

	return product, nil
}

// ListProducts returns all products, newest-created first.
func (s *InventoryService) ListProducts(ctx context.Context) ([]*models.Product, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// LowStock returns products at or below their min stock threshold.
func (s *InventoryService) LowStock(ctx context.Context) ([]*models.Product, error) {
	products, err := s.products.LowStock(ctx)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	return products, nil
}

// Transactions returns recent ledger records, optionally filtered by product.
func (s *InventoryService) Transactions(ctx context.Context, productID models.ProductID, limit int) ([]models.LedgerRecord, error) {
	records, err := s.ledger.Query(ctx, productID, limit)
	if err != nil {
		return nil, fmt.Errorf("query ledger: %w", err)
	}
	return records, nil
}

func cachedToProduct(c *pkgcache.CachedProduct) *models.Product {
	return &models.Product{
		ID:            models.ProductID(c.ProductID),
		Name:          c.Name,
		Type:          c.Type,
		Size:          c.Size,
		Color:         c.Color,
		Quantity:      c.Quantity,
		MinStockLevel: c.MinStockLevel,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func productToCached(p *models.Product) *pkgcache.CachedProduct {
	return &pkgcache.CachedProduct{
		ProductID:     p.ID.String(),
		Name:          p.Name,
		Type:          p.Type,
		Size:          p.Size,
		Color:         p.Color,
		Quantity:      p.Quantity,
		MinStockLevel: p.MinStockLevel,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// keyedMutex serializes the read-compute-write sequence per product identity.
// Operations on different identities proceed fully in parallel. The lock table
// never shrinks; the catalog of a single shop stays small enough that this
// does not matter.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[models.ProductID]*sync.Mutex
}

func (k *keyedMutex) lock(id models.ProductID) (unlock func()) {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[models.ProductID]*sync.Mutex)
	}
	l, ok := k.locks[id]
	if !ok {
		l = &sync.Mutex{}
		k.locks[id] = l
	}
	k.mu.Unlock()

	l.Lock()
	return l.Unlock
}
