package handlers

import (
	"net/http"

	"github.com/rasmoura/GestaoPedidosTmb/pkg/errhttp"
	"github.com/rasmoura/GestaoPedidosTmb/pkg/httpx"
	appsvcs "github.com/rasmoura/GestaoPedidosTmb/services/order/application/services"
)

// ListOrdersHandler handles GET /orders requests.
type ListOrdersHandler struct {
	svc *appsvcs.Services
}

// NewListOrdersHandler returns a ListOrdersHandler backed by the given services.
func NewListOrdersHandler(svc *appsvcs.Services) *ListOrdersHandler {
	return &ListOrdersHandler{svc: svc}
}

// Execute answers 200 with all orders; an empty store yields an empty array.
func (h *ListOrdersHandler) Execute(w http.ResponseWriter, r *http.Request) {
	orders, err := h.svc.Order.List(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := make([]OrderResponse, 0, len(orders))
	for _, order := range orders {
		resp = append(resp, toOrderResponse(order))
	}
	httpx.JSON(w, http.StatusOK, resp)
}
