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

// CreateProductRequest is the request body for POST /products.
type CreateProductRequest struct {
	Name            string `json:"name" validate:"required,min=1,max=255" example:"Linen Shirt"`
	Type            string `json:"type" validate:"required,min=1,max=100" example:"Shirt"`
	Size            string `json:"size" validate:"required,min=1,max=20"  example:"M"`
	Color           string `json:"color" validate:"omitempty,max=100"     example:"White"`
	InitialQuantity int    `json:"initial_quantity" validate:"gte=0"      example:"10"`
	MinStockLevel   int    `json:"min_stock_level" validate:"gte=0"       example:"10"`
} // @name CreateProductRequest

// CreateProductResponse is returned on successful product creation.
type CreateProductResponse struct {
	Product   ProductResponse `json:"product"`
	QRPayload string          `json:"qr_payload"` // exact string embedded in the QR image
	QRImage   string          `json:"qr_image"`   // URL of the rendered PNG
} // @name CreateProductResponse

// PostProductHandler handles POST /products requests.
type PostProductHandler struct {
	svc *appsvcs.Services
}

// NewPostProductHandler returns a PostProductHandler backed by the given services.
func NewPostProductHandler(svc *appsvcs.Services) *PostProductHandler {
	return &PostProductHandler{svc: svc}
}

// Execute registers a new product and returns its QR payload.
//
//	@Summary		Create product
//	@Description	Registers a product, generates its QR payload, and records an INITIAL_STOCK ledger entry when the initial quantity is positive
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateProductRequest	true	"Product creation request"
//	@Success		201		{object}	CreateProductResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/products [post]
func (h *PostProductHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateProductRequest](w, r)
	if !ok {
		return
	}

	actor := ""
	if p, err := auth.PrincipalFromCtx(r.Context()); err == nil {
		actor = p.Username
	}

	product, payload, err := h.svc.Inventory.CreateProduct(r.Context(), models.Descriptor{
		Name:          req.Name,
		Type:          req.Type,
		Size:          req.Size,
		Color:         req.Color,
		Quantity:      req.InitialQuantity,
		MinStockLevel: req.MinStockLevel,
	}, actor)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, CreateProductResponse{
		Product:   toProductResponse(product),
		QRPayload: payload.Encode(),
		QRImage:   "/api/qr/" + product.ID.String(),
	})
}
