// Package memory provides a mutex-guarded in-memory order repository.
// Used by unit tests and local development without PostgreSQL; the conditional
// status update has the same atomicity guarantee as the SQL implementation.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	orderdomain "github.com/rasmoura/GestaoPedidosTmb/services/order/domain"
	"github.com/rasmoura/GestaoPedidosTmb/services/order/domain/models"
)

// OrderRepository implements repositories.OrderRepository on a map.
type OrderRepository struct {
	mu     sync.RWMutex
	orders map[uuid.UUID]models.Order
}

// NewOrderRepository returns an empty in-memory repository.
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{orders: make(map[uuid.UUID]models.Order)}
}

// Insert persists a new order.
func (r *OrderRepository) Insert(_ context.Context, order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[order.ID] = *order
	return nil
}

// GetByID retrieves an order by id. Returns ErrOrderNotFound if it does not exist.
func (r *OrderRepository) GetByID(_ context.Context, id uuid.UUID) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, orderdomain.ErrOrderNotFound
	}
	return &order, nil
}

// List returns all orders, newest first.
func (r *OrderRepository) List(_ context.Context) ([]*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]*models.Order, 0, len(r.orders))
	for _, order := range r.orders {
		o := order
		orders = append(orders, &o)
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

// UpdateStatus advances the order's status only if the stored status still
// equals expected. The write lock spans the compare and the swap, so two
// concurrent callers cannot both succeed for the same transition.
func (r *OrderRepository) UpdateStatus(_ context.Context, id uuid.UUID, expected, next models.Status) (bool, error) {
	if !expected.CanTransitionTo(next) {
		return false, fmt.Errorf("illegal status transition %s -> %s", expected, next)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok || order.Status != expected {
		return false, nil
	}
	order.Status = next
	r.orders[id] = order
	return true, nil
}
