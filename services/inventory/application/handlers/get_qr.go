package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/stitchstock/pkg/errhttp"
	"github.com/ghuser/stitchstock/pkg/httpx"
	appsvcs "github.com/ghuser/stitchstock/services/inventory/application/services"
	"github.com/ghuser/stitchstock/services/inventory/domain/models"
)

// GetQRHandler handles GET /qr/{product_id} requests.
type GetQRHandler struct {
	svc *appsvcs.Services
}

// NewGetQRHandler returns a GetQRHandler backed by the given services.
func NewGetQRHandler(svc *appsvcs.Services) *GetQRHandler {
	return &GetQRHandler{svc: svc}
}

// Execute renders the product's QR code as a PNG image.
//
//	@Summary	Get product QR code
//	@Tags		products
//	@Produce	png
//	@Param		product_id	path	string	true	"Product identity"
//	@Success	200			{file}	binary
//	@Failure	401			{object}	ErrorResponse
//	@Failure	404			{object}	ErrorResponse
//	@Router		/qr/{product_id} [get]
func (h *GetQRHandler) Execute(w http.ResponseWriter, r *http.Request) {
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

	png, err := h.svc.QR.PNG(r.Context(), models.EncodePayload(product, product.CreatedAt))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
