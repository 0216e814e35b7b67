package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/rasmoura/GestaoPedidosTmb/pkg/errhttp"
	"github.com/rasmoura/GestaoPedidosTmb/pkg/httpx"
	pkgvalidator "github.com/rasmoura/GestaoPedidosTmb/pkg/validator"
	appsvcs "github.com/rasmoura/GestaoPedidosTmb/services/order/application/services"
	"github.com/rasmoura/GestaoPedidosTmb/services/order/domain/models"
)

// CreateOrderRequest is the request body for POST /orders.
type CreateOrderRequest struct {
	Customer string  `json:"customer" validate:"required"`
	Product  string  `json:"product" validate:"required"`
	Amount   float64 `json:"amount" validate:"required,gt=0"`
}

// OrderResponse is the public representation of an order.
type OrderResponse struct {
	ID        uuid.UUID `json:"id"`
	Customer  string    `json:"customer"`
	Product   string    `json:"product"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// PostOrderHandler handles POST /orders requests.
type PostOrderHandler struct {
	svc *appsvcs.Services
}

// NewPostOrderHandler returns a PostOrderHandler backed by the given services.
func NewPostOrderHandler(svc *appsvcs.Services) *PostOrderHandler {
	return &PostOrderHandler{svc: svc}
}

// Execute creates a new order and answers 201 with its representation, or 400
// listing every invalid field.
func (h *PostOrderHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateOrderRequest](w, r)
	if !ok {
		return
	}

	order, err := h.svc.Order.Create(r.Context(), req.Customer, req.Product, req.Amount)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toOrderResponse(order))
}

// toOrderResponse maps a domain order to its public representation.
func toOrderResponse(order *models.Order) OrderResponse {
	return OrderResponse{
		ID:        order.ID,
		Customer:  order.Customer,
		Product:   order.Product,
		Amount:    order.Amount,
		Status:    order.Status.String(),
		CreatedAt: order.CreatedAt,
	}
}
