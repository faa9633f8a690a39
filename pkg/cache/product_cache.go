package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// ProductCacheTTL is the time-to-live for cached products.
	ProductCacheTTL = 24 * time.Hour

	productCacheKeyPrefix = "product"
)

// CachedProduct is the denormalized read model stored in Redis.
// Fields are stored as a Redis hash. Quantity here is a snapshot for display;
// the stock-mutation protocol always reads the authoritative row in Postgres.
type CachedProduct struct {
	ProductID     string    `json:"product_id"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	Size          string    `json:"size"`
	Color         string    `json:"color"`
	Quantity      int       `json:"quantity"`
	MinStockLevel int       `json:"min_stock_level"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ProductCache provides structured read/write operations for product cache
// entries. Key format: "product:{productID}".
type ProductCache struct {
	client *RedisClient
}

// NewProductCache creates a ProductCache backed by the given RedisClient.
func NewProductCache(r *RedisClient) *ProductCache {
	return &ProductCache{client: r}
}

// Get retrieves a cached product by identity.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *ProductCache) Get(ctx context.Context, productID string) (*CachedProduct, error) {
	vals, err := c.client.Client().HGetAll(ctx, c.key(productID)).Result()
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	if len(vals) == 0 {
		return nil, redis.Nil // key not found
	}

	quantity, err := strconv.Atoi(vals["quantity"])
	if err != nil {
		return nil, fmt.Errorf("cache parse quantity: %w", err)
	}
	minStock, err := strconv.Atoi(vals["min_stock_level"])
	if err != nil {
		return nil, fmt.Errorf("cache parse min_stock_level: %w", err)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, vals["created_at"])
	if err != nil {
		return nil, fmt.Errorf("cache parse created_at: %w", err)
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, vals["updated_at"])
	if err != nil {
		return nil, fmt.Errorf("cache parse updated_at: %w", err)
	}

	return &CachedProduct{
		ProductID:     vals["product_id"],
		Name:          vals["name"],
		Type:          vals["type"],
		Size:          vals["size"],
		Color:         vals["color"],
		Quantity:      quantity,
		MinStockLevel: minStock,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}, nil
}

// Set writes a cached product as a Redis hash with a 24-hour TTL.
// Uses a pipeline to set all fields and the TTL atomically.
func (c *ProductCache) Set(ctx context.Context, p *CachedProduct) error {
	key := c.key(p.ProductID)
	pipe := c.client.Client().Pipeline()
	pipe.HSet(ctx, key,
		"product_id", p.ProductID,
		"name", p.Name,
		"type", p.Type,
		"size", p.Size,
		"color", p.Color,
		"quantity", strconv.Itoa(p.Quantity),
		"min_stock_level", strconv.Itoa(p.MinStockLevel),
		"created_at", p.CreatedAt.UTC().Format(time.RFC3339Nano),
		"updated_at", p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	)
	pipe.Expire(ctx, key, ProductCacheTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached product. Called after every stock mutation so the
// next read repopulates from the authoritative store.
func (c *ProductCache) Delete(ctx context.Context, productID string) error {
	if err := c.client.Client().Del(ctx, c.key(productID)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

func (c *ProductCache) key(productID string) string {
	return fmt.Sprintf("%s:%s", productCacheKeyPrefix, productID)
}
