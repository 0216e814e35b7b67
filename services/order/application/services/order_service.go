package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/rasmoura/GestaoPedidosTmb/pkg/events"
	"github.com/rasmoura/GestaoPedidosTmb/pkg/logger"
	domainevents "github.com/rasmoura/GestaoPedidosTmb/services/order/domain/events"
	"github.com/rasmoura/GestaoPedidosTmb/services/order/domain/models"
	"github.com/rasmoura/GestaoPedidosTmb/services/order/domain/repositories"
	domainsvcs "github.com/rasmoura/GestaoPedidosTmb/services/order/domain/services"
)

// EventPublisher is the slice of the event channel the service needs: a
// best-effort send. events.EventBus satisfies it.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, msgs ...*message.Message) error
}

// OrderService orchestrates creation and retrieval of Orders.
//
// Creation is store-first: the order is durably written before the
// OrderCreated event is published, and a publish failure is logged but never
// surfaced — there is deliberately no outbox or two-phase commit, so an order
// whose event was lost stays Pending until something external reconciles it.
type OrderService struct {
	repo repositories.OrderRepository
	bus  EventPublisher
	log  logger.Logger
}

// NewOrderService returns an OrderService wired with the given repository and publisher.
func NewOrderService(repo repositories.OrderRepository, bus EventPublisher, log logger.Logger) *OrderService {
	return &OrderService{repo: repo, bus: bus, log: log}
}

// Create validates the inputs, persists a Pending order, then publishes an
// OrderCreated event best-effort. A *domain.ValidationError enumerates every
// violated field; a store failure fails the whole call and publishes nothing.
func (s *OrderService) Create(ctx context.Context, customer, product string, amount float64) (*models.Order, error) {
	if verr := domainsvcs.ValidateForCreation(customer, product, amount); verr != nil {
		return nil, verr
	}

	order := models.NewOrder(customer, product, amount)

	if err := s.repo.Insert(ctx, order); err != nil {
		return nil, fmt.Errorf("save order: %w", err)
	}

	s.publishCreated(ctx, order.ID)

	return order, nil
}

// publishCreated sends the OrderCreated event. Failures are logged and
// swallowed: creation already succeeded and must not be rolled back or failed
// because the channel is down.
func (s *OrderService) publishCreated(ctx context.Context, orderID uuid.UUID) {
	evt := domainevents.NewOrderCreatedEvent(orderID)
	payload, err := json.Marshal(evt)
	if err != nil {
		s.log.ErrorContext(ctx, "marshal order created event", "order_id", orderID, "error", err)
		return
	}

	msg := events.NewMessage(payload)
	msg.Metadata.Set("event_type", domainevents.EventTypeOrderCreated)

	if err := s.bus.Publish(ctx, domainevents.TopicOrderCreated, msg); err != nil {
		s.log.ErrorContext(ctx, "publish order created event failed, order stays pending",
			"order_id", orderID, "error", err)
	}
}

// GetByID retrieves an order straight from the store.
func (s *OrderService) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

// List returns all orders straight from the store.
func (s *OrderService) List(ctx context.Context) ([]*models.Order, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}
