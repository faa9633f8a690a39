package handlers

import (
	"net/http"

	"github.com/ghuser/stitchstock/pkg/auth"
	"github.com/ghuser/stitchstock/pkg/errhttp"
	"github.com/ghuser/stitchstock/pkg/httpx"
	pkgvalidator "github.com/ghuser/stitchstock/pkg/validator"
	appsvcs "github.com/ghuser/stitchstock/services/inventory/application/services"
	"github.com/ghuser/stitchstock/services/inventory/domain/models"
)

// ScanRequest is the request body for POST /inventory/scan.
// Quantity defaults to 1 when omitted.
type ScanRequest struct {
	QRData   string `json:"qr_data" validate:"required" example:"{\"product_id\":\"SHI-M-LX2T4K9-A3F7Q\"}"`
	Action   string `json:"action" validate:"required" example:"OUT"`
	Quantity int    `json:"quantity" validate:"gte=0" example:"3"`
	Location string `json:"location" validate:"omitempty,max=255" example:"Shopfloor"`
	Notes    string `json:"notes" validate:"omitempty,max=1000"`
} // @name ScanRequest

// ScanResponse reports the before/after state of a successful stock mutation.
type ScanResponse struct {
	Product          ProductResponse     `json:"product"`
	PreviousQuantity int                 `json:"previous_quantity" example:"10"`
	NewQuantity      int                 `json:"new_quantity"      example:"7"`
	Transaction      TransactionResponse `json:"transaction"`
} // @name ScanResponse

// PostScanHandler handles POST /inventory/scan requests.
type PostScanHandler struct {
	svc *appsvcs.Services
}

// NewPostScanHandler returns a PostScanHandler backed by the given services.
func NewPostScanHandler(svc *appsvcs.Services) *PostScanHandler {
	return &PostScanHandler{svc: svc}
}

// Execute applies a scanned stock mutation.
//
//	@Summary		Scan to adjust stock
//	@Description	Decodes a scanned QR payload and applies a stock-in or stock-out, recording a ledger entry atomically with the quantity change
//	@Tags			inventory
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ScanRequest	true	"Scan request"
//	@Success		200		{object}	ScanResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/inventory/scan [post]
func (h *PostScanHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[ScanRequest](w, r)
	if !ok {
		return
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	actor := ""
	if p, err := auth.PrincipalFromCtx(r.Context()); err == nil {
		actor = p.Username
	}

	result, err := h.svc.Inventory.ApplyScan(r.Context(), appsvcs.ScanInput{
		RawPayload: req.QRData,
		Action:     req.Action,
		Quantity:   quantity,
		Actor:      actor,
		Location:   req.Location,
		Notes:      req.Notes,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, ScanResponse{
		Product:          toProductResponse(result.Product),
		PreviousQuantity: result.PreviousQuantity,
		NewQuantity:      result.NewQuantity,
		Transaction:      toTransactionResponse(models.LedgerRecord{LedgerEntry: result.Entry}),
	})
}
