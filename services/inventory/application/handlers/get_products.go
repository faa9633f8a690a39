package handlers

import (
	"net/http"

	"github.com/ghuser/stitchstock/pkg/errhttp"
	"github.com/ghuser/stitchstock/pkg/httpx"
	appsvcs "github.com/ghuser/stitchstock/services/inventory/application/services"
)

// GetProductsHandler handles GET /products requests.
type GetProductsHandler struct {
	svc *appsvcs.Services
}

// NewGetProductsHandler returns a GetProductsHandler backed by the given services.
func NewGetProductsHandler(svc *appsvcs.Services) *GetProductsHandler {
	return &GetProductsHandler{svc: svc}
}

// Execute lists all products, newest-created first.
//
//	@Summary	List products
//	@Tags		products
//	@Produce	json
//	@Success	200	{array}		ProductResponse
//	@Failure	401	{object}	ErrorResponse
//	@Router		/products [get]
func (h *GetProductsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.Inventory.ListProducts(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toProductResponses(products))
}

// GetLowStockHandler handles GET /inventory/low-stock requests.
type GetLowStockHandler struct {
	svc *appsvcs.Services
}

// NewGetLowStockHandler returns a GetLowStockHandler backed by the given services.
func NewGetLowStockHandler(svc *appsvcs.Services) *GetLowStockHandler {
	return &GetLowStockHandler{svc: svc}
}

// Execute lists products at or below their min stock threshold.
//
//	@Summary	List low-stock products
//	@Tags		inventory
//	@Produce	json
//	@Success	200	{array}		ProductResponse
//	@Failure	401	{object}	ErrorResponse
//	@Router		/inventory/low-stock [get]
func (h *GetLowStockHandler) Execute(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.Inventory.LowStock(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toProductResponses(products))
}
