package handlers

import (
	"net/http"
	"strconv"

	"github.com/ghuser/stitchstock/pkg/errhttp"
	"github.com/ghuser/stitchstock/pkg/httpx"
	appsvcs "github.com/ghuser/stitchstock/services/inventory/application/services"
	"github.com/ghuser/stitchstock/services/inventory/domain/models"
)

// GetTransactionsHandler handles GET /transactions requests.
type GetTransactionsHandler struct {
	svc *appsvcs.Services
}

// NewGetTransactionsHandler returns a GetTransactionsHandler backed by the given services.
func NewGetTransactionsHandler(svc *appsvcs.Services) *GetTransactionsHandler {
	return &GetTransactionsHandler{svc: svc}
}

// Execute lists recent ledger entries, most recent first.
//
//	@Summary	List stock transactions
//	@Tags		inventory
//	@Produce	json
//	@Param		product_id	query		string	false	"Filter by product identity"
//	@Param		limit		query		int		false	"Maximum entries to return (default 50)"
//	@Success	200			{array}		TransactionResponse
//	@Failure	401			{object}	ErrorResponse
//	@Router		/transactions [get]
func (h *GetTransactionsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			httpx.JSONError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	productID := models.ProductID(r.URL.Query().Get("product_id"))

	records, err := h.svc.Inventory.Transactions(r.Context(), productID, limit)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toTransactionResponses(records))
}
