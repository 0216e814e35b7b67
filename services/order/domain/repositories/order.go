package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/rasmoura/GestaoPedidosTmb/services/order/domain/models"
)

// OrderRepository is the persistence interface for the Order aggregate.
// The domain layer owns this interface; infrastructure implements it.
type OrderRepository interface {
	// Insert persists a new order. The identifier is freshly generated and
	// never contended, so no conflict handling is required.
	Insert(ctx context.Context, order *models.Order) error

	// GetByID retrieves an order by id. Returns domain.ErrOrderNotFound when
	// no such order exists.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error)

	// List returns all orders, newest first.
	List(ctx context.Context) ([]*models.Order, error)

	// UpdateStatus conditionally advances an order's status: the write
	// succeeds only if the stored status still equals expected at write time.
	// Returns false (and no error) when the condition fails — the caller lost
	// a status-transition race to a concurrent writer. Transition pairs that
	// are not a legal forward step return an error without writing.
	UpdateStatus(ctx context.Context, id uuid.UUID, expected, next models.Status) (bool, error)
}
