package services

import (
	"github.com/ghuser/stitchstock/pkg/app"
	"github.com/ghuser/stitchstock/pkg/cache"
	"github.com/ghuser/stitchstock/services/inventory/infrastructure/persistence/postgres"
	"github.com/ghuser/stitchstock/services/inventory/infrastructure/qr"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Inventory *InventoryService
	Report    *ReportService
	QR        *qr.Renderer
}

// New wires all inventory application services with infrastructure from the
// Application container.
func New(a *app.Application) *Services {
	repo := postgres.NewInventoryRepository(a.Db, a.EventBus)

	var productCache *cache.ProductCache
	if a.Redis != nil {
		productCache = cache.NewProductCache(a.Redis)
	}

	return &Services{
		Inventory: NewInventoryService(repo, repo, productCache),
		Report:    NewReportService(repo),
		QR:        qr.NewRenderer(a.QRArchive, a.Logger),
	}
}
