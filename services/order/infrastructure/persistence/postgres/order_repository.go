// Package postgres implements the order repository against PostgreSQL via pgx.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/rasmoura/GestaoPedidosTmb/pkg/database"
	orderdomain "github.com/rasmoura/GestaoPedidosTmb/services/order/domain"
	"github.com/rasmoura/GestaoPedidosTmb/services/order/domain/models"
)

// OrderRepository implements repositories.OrderRepository against PostgreSQL.
type OrderRepository struct {
	db *database.Database
}

// NewOrderRepository returns an OrderRepository backed by the given connection pool.
func NewOrderRepository(db *database.Database) *OrderRepository {
	return &OrderRepository{db: db}
}

// Insert persists a new order.
func (r *OrderRepository) Insert(ctx context.Context, order *models.Order) error {
	_, err := r.db.Pool().Exec(ctx,
		`INSERT INTO orders (id, customer, product, amount, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		order.ID, order.Customer, order.Product, order.Amount,
		order.Status.String(), order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID retrieves an order by id. Returns ErrOrderNotFound if it does not exist.
func (r *OrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	row := r.db.Pool().QueryRow(ctx,
		`SELECT id, customer, product, amount, status, created_at
		 FROM orders WHERE id = $1`, id)

	order, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, orderdomain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("query order: %w", err)
	}
	return order, nil
}

// List returns all orders, newest first.
func (r *OrderRepository) List(ctx context.Context) ([]*models.Order, error) {
	rows, err := r.db.Pool().Query(ctx,
		`SELECT id, customer, product, amount, status, created_at
		 FROM orders ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	orders := make([]*models.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}
	return orders, nil
}

// UpdateStatus advances the order's status only if the stored status still
// equals expected. The WHERE clause makes the compare-and-swap atomic: two
// workers racing on the same transition cannot both see RowsAffected == 1.
// Transitions outside the Pending → Processing → Completed chain are rejected
// before touching the database.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, expected, next models.Status) (bool, error) {
	if !expected.CanTransitionTo(next) {
		return false, fmt.Errorf("illegal status transition %s -> %s", expected, next)
	}

	tag, err := r.db.Pool().Exec(ctx,
		`UPDATE orders SET status = $1 WHERE id = $2 AND status = $3`,
		next.String(), id, expected.String(),
	)
	if err != nil {
		return false, fmt.Errorf("update order status: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func scanOrder(row pgx.Row) (*models.Order, error) {
	var (
		order  models.Order
		status string
	)
	if err := row.Scan(&order.ID, &order.Customer, &order.Product,
		&order.Amount, &status, &order.CreatedAt); err != nil {
		return nil, err
	}

	parsed, err := models.ParseStatus(status)
	if err != nil {
		return nil, err
	}
	order.Status = parsed
	return &order, nil
}
