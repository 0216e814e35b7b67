package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/rasmoura/GestaoPedidosTmb/pkg/config"
	"github.com/rasmoura/GestaoPedidosTmb/pkg/logger"
	orderdomain "github.com/rasmoura/GestaoPedidosTmb/services/order/domain"
	domainevents "github.com/rasmoura/GestaoPedidosTmb/services/order/domain/events"
	"github.com/rasmoura/GestaoPedidosTmb/services/order/domain/models"
	"github.com/rasmoura/GestaoPedidosTmb/services/order/infrastructure/persistence/memory"
)

// stubPublisher records published messages and optionally fails every send.
type stubPublisher struct {
	published map[string][]*message.Message
	err       error
}

func newStubPublisher() *stubPublisher {
	return &stubPublisher{published: make(map[string][]*message.Message)}
}

func (p *stubPublisher) Publish(_ context.Context, topic string, msgs ...*message.Message) error {
	if p.err != nil {
		return p.err
	}
	p.published[topic] = append(p.published[topic], msgs...)
	return nil
}

func nopLogger() logger.Logger {
	return logger.New(&config.Config{LogLevel: "error"})
}

func newTestService(pub *stubPublisher) (*OrderService, *memory.OrderRepository) {
	repo := memory.NewOrderRepository()
	return NewOrderService(repo, pub, nopLogger()), repo
}

func TestCreate_persistsPendingOrder(t *testing.T) {
	pub := newStubPublisher()
	svc, _ := newTestService(pub)
	ctx := context.Background()

	order, err := svc.Create(ctx, "Ana", "Widget", 10.50)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if order.Status != models.StatusPending {
		t.Errorf("expected Pending, got %s", order.Status)
	}

	got, err := svc.GetByID(ctx, order.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if *got != *order {
		t.Errorf("stored order differs: got %+v, want %+v", got, order)
	}
}

func TestCreate_publishesOrderCreatedEvent(t *testing.T) {
	pub := newStubPublisher()
	svc, _ := newTestService(pub)

	order, err := svc.Create(context.Background(), "Ana", "Widget", 10.50)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	msgs := pub.published[domainevents.TopicOrderCreated]
	if len(msgs) != 1 {
		t.Fatalf("expected 1 published message, got %d", len(msgs))
	}

	var evt domainevents.OrderCreatedEvent
	if err := json.Unmarshal(msgs[0].Payload, &evt); err != nil {
		t.Fatalf("unmarshal event: %v", err)
	}
	if evt.OrderID != order.ID {
		t.Errorf("event orderId: got %s, want %s", evt.OrderID, order.ID)
	}
	if evt.EventType != domainevents.EventTypeOrderCreated {
		t.Errorf("event type: got %q, want %q", evt.EventType, domainevents.EventTypeOrderCreated)
	}
}

func TestCreate_invalidInputNamesEveryField(t *testing.T) {
	pub := newStubPublisher()
	svc, _ := newTestService(pub)
	ctx := context.Background()

	_, err := svc.Create(ctx, "", "", -1)
	if err == nil {
		t.Fatal("expected validation error")
	}

	var verr *orderdomain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T: %v", err, err)
	}
	for _, field := range []string{"customer", "product", "amount"} {
		if verr.Fields[field] == "" {
			t.Errorf("expected violation for %q, got %v", field, verr.Fields)
		}
	}

	// Nothing persisted and nothing published.
	orders, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(orders) != 0 {
		t.Errorf("expected empty store after rejected creation, got %d", len(orders))
	}
	if len(pub.published) != 0 {
		t.Errorf("expected no events for rejected creation, got %v", pub.published)
	}
}

// TestCreate_publishFailureIsNonFatal: the store write is authoritative; a
// dead event channel must not fail creation or roll anything back.
func TestCreate_publishFailureIsNonFatal(t *testing.T) {
	pub := newStubPublisher()
	pub.err = errors.New("broker unreachable")
	svc, _ := newTestService(pub)
	ctx := context.Background()

	order, err := svc.Create(ctx, "Ana", "Widget", 10.50)
	if err != nil {
		t.Fatalf("create must succeed despite publish failure, got %v", err)
	}

	got, err := svc.GetByID(ctx, order.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != models.StatusPending {
		t.Errorf("order must stay Pending, got %s", got.Status)
	}
}

func TestGetByID_unknownReturnsNotFound(t *testing.T) {
	svc, _ := newTestService(newStubPublisher())

	_, err := svc.GetByID(context.Background(), models.NewOrder("x", "y", 1).ID)
	if !errors.Is(err, orderdomain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestList_emptyStore(t *testing.T) {
	svc, _ := newTestService(newStubPublisher())

	orders, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(orders) != 0 {
		t.Errorf("expected empty sequence, got %d", len(orders))
	}
}
