package handlers

import (
	"net/http"

	"github.com/ghuser/stitchstock/pkg/errhttp"
	"github.com/ghuser/stitchstock/pkg/httpx"
	appsvcs "github.com/ghuser/stitchstock/services/inventory/application/services"
	"github.com/ghuser/stitchstock/services/inventory/domain/models"
)

// SummaryGroupResponse is one (type, size) aggregation row.
type SummaryGroupResponse struct {
	Type          string `json:"type"           example:"Shirt"`
	Size          string `json:"size"           example:"M"`
	TotalQuantity int    `json:"total_quantity" example:"42"`
	ProductCount  int    `json:"product_count"  example:"3"`
} // @name SummaryGroupResponse

// SummaryResponse is the full inventory summary.
type SummaryResponse struct {
	SummaryByTypeSize []SummaryGroupResponse `json:"summary_by_type_size"`
	TotalItems        int                    `json:"total_items" example:"120"`
} // @name SummaryResponse

// GetSummaryHandler handles GET /inventory/summary requests.
type GetSummaryHandler struct {
	svc *appsvcs.Services
}

// NewGetSummaryHandler returns a GetSummaryHandler backed by the given services.
func NewGetSummaryHandler(svc *appsvcs.Services) *GetSummaryHandler {
	return &GetSummaryHandler{svc: svc}
}

// Execute returns grouped quantity totals.
//
//	@Summary	Inventory summary
//	@Tags		inventory
//	@Produce	json
//	@Success	200	{object}	SummaryResponse
//	@Failure	401	{object}	ErrorResponse
//	@Router		/inventory/summary [get]
func (h *GetSummaryHandler) Execute(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.Report.Summarize(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toSummaryResponse(summary))
}

func toSummaryResponse(s *models.Summary) SummaryResponse {
	groups := make([]SummaryGroupResponse, len(s.Groups))
	for i, g := range s.Groups {
		groups[i] = SummaryGroupResponse{
			Type:          g.Type,
			Size:          g.Size,
			TotalQuantity: g.TotalQuantity,
			ProductCount:  g.ProductCount,
		}
	}
	return SummaryResponse{
		SummaryByTypeSize: groups,
		TotalItems:        s.TotalItems,
	}
}
