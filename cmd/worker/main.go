package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/redis/go-redis/v9"

	"github.com/ghuser/stitchstock/pkg/app"
	"github.com/ghuser/stitchstock/pkg/cache"
	"github.com/ghuser/stitchstock/pkg/config"
	"github.com/ghuser/stitchstock/pkg/database"
	"github.com/ghuser/stitchstock/pkg/events"
	"github.com/ghuser/stitchstock/pkg/logger"
	"github.com/ghuser/stitchstock/pkg/telemetry"
	inventoryEvents "github.com/ghuser/stitchstock/services/inventory/domain/events"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	appConfig := &app.Application{
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
	}

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")

	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	topics := map[string]func(context.Context, *message.Message) error{
		inventoryEvents.TopicProductCreated: handleProductCreated(a),
		inventoryEvents.TopicStockAdjusted:  handleStockAdjusted(a),
	}

	names := make([]string, 0, len(topics))
	for topic, handler := range topics {
		errCh, err := a.EventBus.Subscribe(ctx, topic, handler)
		if err != nil {
			return err
		}
		names = append(names, topic)

		// Drain subscriber errors in background so the channel never blocks.
		go func(topic string) {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error",
					"topic", topic,
					"error", err,
				)
			}
		}(topic)
	}

	a.Logger.Info("event subscribers registered", "topics", names)
	return nil
}

// handleProductCreated returns a handler for inventory.product.created events.
// Handlers must be idempotent — EventBus retries up to 3× on failure.
// Warms the Redis read-model cache so the first lookup after registration is
// served from cache.
func handleProductCreated(a *app.Application) func(context.Context, *message.Message) error {
	productCache := cache.NewProductCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var evt inventoryEvents.ProductCreatedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		if err := productCache.Set(ctx, &cache.CachedProduct{
			ProductID:     evt.ProductID,
			Name:          evt.Name,
			Type:          evt.Type,
			Size:          evt.Size,
			Quantity:      evt.Quantity,
			MinStockLevel: evt.MinStockLevel,
			CreatedAt:     evt.OccurredAt,
			UpdatedAt:     evt.OccurredAt,
		}); err != nil {
			// Cache warming is best-effort; log but do not fail the handler.
			a.Logger.WarnContext(ctx, "cache warm failed for product.created",
				"product_id", evt.ProductID, "error", err)
		} else {
			a.Logger.InfoContext(ctx, "cache warmed",
				"product_id", evt.ProductID, "quantity", evt.Quantity)
		}

		return nil
	}
}

// handleStockAdjusted returns a handler for inventory.stock.adjusted events.
// Refreshes the cached quantity snapshot and emits a low-stock warning when
// the new quantity reaches the product's reorder threshold.
func handleStockAdjusted(a *app.Application) func(context.Context, *message.Message) error {
	productCache := cache.NewProductCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var evt inventoryEvents.StockAdjustedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		cached, err := productCache.Get(ctx, evt.ProductID)
		switch {
		case err == redis.Nil:
			// Not cached; the next read-through will repopulate from Postgres.
		case err != nil:
			a.Logger.WarnContext(ctx, "cache lookup failed for stock.adjusted",
				"product_id", evt.ProductID, "error", err)
		default:
			cached.Quantity = evt.NewQuantity
			cached.UpdatedAt = evt.OccurredAt
			if err := productCache.Set(ctx, cached); err != nil {
				a.Logger.WarnContext(ctx, "cache refresh failed for stock.adjusted",
					"product_id", evt.ProductID, "error", err)
			}
		}

		if evt.NewQuantity <= evt.MinStockLevel {
			a.Logger.WarnContext(ctx, "product low on stock",
				"product_id", evt.ProductID,
				"quantity", evt.NewQuantity,
				"min_stock_level", evt.MinStockLevel,
			)
		}

		a.Logger.InfoContext(ctx, "stock adjusted",
			"product_id", evt.ProductID,
			"action", evt.Action,
			"previous_quantity", evt.PreviousQuantity,
			"new_quantity", evt.NewQuantity,
			"performed_by", evt.PerformedBy,
		)
		return nil
	}
}
