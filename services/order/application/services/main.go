package services

import (
	"github.com/rasmoura/GestaoPedidosTmb/pkg/app"
	"github.com/rasmoura/GestaoPedidosTmb/services/order/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Order *OrderService
}

// New wires all order application services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	repo := postgres.NewOrderRepository(a.Db)
	return &Services{
		Order: NewOrderService(repo, a.EventBus, a.Logger),
	}
}
