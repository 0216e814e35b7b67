package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/rasmoura/GestaoPedidosTmb/pkg/app"
	"github.com/rasmoura/GestaoPedidosTmb/services/order/application/handlers"
	appsvcs "github.com/rasmoura/GestaoPedidosTmb/services/order/application/services"
)

// OrderRoutes registers order endpoints on the provided chi router.
func OrderRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Route("/orders", func(r chi.Router) {
			r.Post("/", handlers.NewPostOrderHandler(svcs).Execute)
			r.Get("/", handlers.NewListOrdersHandler(svcs).Execute)
			r.Get("/{id}", handlers.NewGetOrderHandler(svcs).Execute)
		})
	})
}
