package app

import (
	"github.com/gorilla/sessions"

	"github.com/ghuser/stitchstock/pkg/cache"
	"github.com/ghuser/stitchstock/pkg/database"
	"github.com/ghuser/stitchstock/pkg/events"
	"github.com/ghuser/stitchstock/pkg/logger"
	"github.com/ghuser/stitchstock/pkg/objectstore"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to each service's Routes call during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler — use slog's context
// methods and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "stock adjusted", "product_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Db           *database.Database
	Logger       logger.Logger
	EventBus     *events.EventBus
	Redis        *cache.RedisClient
	SessionStore sessions.Store     // Redis-backed session store; nil in worker process
	QRArchive    *objectstore.Store // optional S3/MinIO archive for QR PNGs; nil disables
}
