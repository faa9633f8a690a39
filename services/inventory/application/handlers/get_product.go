package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/stitchstock/pkg/errhttp"
	"github.com/ghuser/stitchstock/pkg/httpx"
	appsvcs "github.com/ghuser/stitchstock/services/inventory/application/services"
	"github.com/ghuser/stitchstock/services/inventory/domain/models"
)

// recentTransactionLimit bounds the history shown on the product detail view.
const recentTransactionLimit = 10

// GetProductResponse is the product detail view: current state, the QR
// payload, and recent ledger history.
type GetProductResponse struct {
	Product            ProductResponse       `json:"product"`
	QRPayload          string                `json:"qr_payload"`
	QRImage            string                `json:"qr_image"`
	RecentTransactions []TransactionResponse `json:"recent_transactions"`
} // @name GetProductResponse

// GetProductHandler handles GET /products/{product_id} requests.
type GetProductHandler struct {
	svc *appsvcs.Services
}

// NewGetProductHandler returns a GetProductHandler backed by the given services.
func NewGetProductHandler(svc *appsvcs.Services) *GetProductHandler {
	return &GetProductHandler{svc: svc}
}

// Execute returns one product with its QR payload and recent history.
//
//	@Summary	Get product
//	@Tags		products
//	@Produce	json
//	@Param		product_id	path		string	true	"Product identity"
//	@Success	200			{object}	GetProductResponse
//	@Failure	401			{object}	ErrorResponse
//	@Failure	404			{object}	ErrorResponse
//	@Router		/products/{product_id} [get]
func (h *GetProductHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := models.ParseProductID(chi.URLParam(r, "product_id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	product, err := h.svc.Inventory.GetProduct(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	records, err := h.svc.Inventory.Transactions(r.Context(), id, recentTransactionLimit)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	payload := models.EncodePayload(product, product.CreatedAt)
	httpx.JSON(w, http.StatusOK, GetProductResponse{
		Product:            toProductResponse(product),
		QRPayload:          payload.Encode(),
		QRImage:            "/api/qr/" + product.ID.String(),
		RecentTransactions: toTransactionResponses(records),
	})
}
