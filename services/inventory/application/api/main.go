package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/stitchstock/pkg/app"
	"github.com/ghuser/stitchstock/services/inventory/application/handlers"
	appsvcs "github.com/ghuser/stitchstock/services/inventory/application/services"
)

// InventoryRoutes registers inventory endpoints on the provided chi router.
func InventoryRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Post("/", handlers.NewPostProductHandler(svcs).Execute)
			r.Get("/", handlers.NewGetProductsHandler(svcs).Execute)
			r.Get("/{product_id}", handlers.NewGetProductHandler(svcs).Execute)
		})
		r.Route("/inventory", func(r chi.Router) {
			r.Post("/scan", handlers.NewPostScanHandler(svcs).Execute)
			r.Get("/summary", handlers.NewGetSummaryHandler(svcs).Execute)
			r.Get("/low-stock", handlers.NewGetLowStockHandler(svcs).Execute)
		})
		r.Get("/transactions", handlers.NewGetTransactionsHandler(svcs).Execute)
		r.Get("/qr/{product_id}", handlers.NewGetQRHandler(svcs).Execute)
	})
}
