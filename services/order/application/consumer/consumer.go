// Package consumer drives the order lifecycle state machine from the queue.
//
// Each OrderCreated message is resolved into exactly one terminal decision:
// complete (Ack) or abandon (Nack, the channel redelivers). Duplicates,
// out-of-order deliveries and lost Pending→Processing races are all absorbed
// by the status guards, so re-entering the state machine at any point is safe.
package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/rasmoura/GestaoPedidosTmb/pkg/logger"
	orderdomain "github.com/rasmoura/GestaoPedidosTmb/services/order/domain"
	domainevents "github.com/rasmoura/GestaoPedidosTmb/services/order/domain/events"
	"github.com/rasmoura/GestaoPedidosTmb/services/order/domain/models"
	"github.com/rasmoura/GestaoPedidosTmb/services/order/domain/repositories"
)

// Consumer advances orders Pending → Processing → Completed in response to
// OrderCreated events. Multiple instances may run against the same queue and
// store; the conditional status update arbitrates who owns each order.
type Consumer struct {
	repo  repositories.OrderRepository
	log   logger.Logger
	delay time.Duration
}

// New returns a Consumer. delay is the simulated fulfillment time held
// between the Processing and Completed writes.
func New(repo repositories.OrderRepository, log logger.Logger, delay time.Duration) *Consumer {
	return &Consumer{repo: repo, log: log, delay: delay}
}

// Handle processes a single OrderCreated message to completion.
// Returning nil acknowledges (completes) the message; returning an error
// abandons it so the channel redelivers.
//
// Decision table:
//   - undecodable payload          → abandon (channel poison handling takes over)
//   - order not found              → ack (redelivery cannot help)
//   - order no longer Pending      → ack (duplicate or redelivered event)
//   - lost the Pending→Processing race → ack (another instance owns it)
//   - shutdown during the delay    → abandon (message is redelivered, guards
//     on the next attempt observe Processing and no-op)
//   - storage failure              → abandon
func (c *Consumer) Handle(ctx context.Context, msg *message.Message) error {
	var evt domainevents.OrderCreatedEvent
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		c.log.ErrorContext(ctx, "undecodable payload, abandoning message",
			"message_id", msg.UUID, "error", err)
		return fmt.Errorf("%w: %w", orderdomain.ErrMalformedMessage, err)
	}

	log := c.log.With("order_id", evt.OrderID, "message_id", msg.UUID)

	order, err := c.repo.GetByID(ctx, evt.OrderID)
	if err != nil {
		if errors.Is(err, orderdomain.ErrOrderNotFound) {
			log.WarnContext(ctx, "order not found, message is irrelevant")
			return nil
		}
		return fmt.Errorf("resolve order: %w", err)
	}

	if order.Status != models.StatusPending {
		log.InfoContext(ctx, "order already advanced, skipping", "status", order.Status)
		return nil
	}

	claimed, err := c.repo.UpdateStatus(ctx, order.ID, models.StatusPending, models.StatusProcessing)
	if err != nil {
		return fmt.Errorf("advance to processing: %w", err)
	}
	if !claimed {
		// Another worker won the race; it owns the order from here.
		log.WarnContext(ctx, "lost status race, another instance is processing")
		return nil
	}
	log.InfoContext(ctx, "order advanced to processing")

	log.InfoContext(ctx, "simulating fulfillment", "delay", c.delay)
	select {
	case <-ctx.Done():
		// Shutting down mid-flight: abandon so the message is redelivered.
		return fmt.Errorf("fulfillment interrupted: %w", ctx.Err())
	case <-time.After(c.delay):
	}

	completed, err := c.repo.UpdateStatus(ctx, order.ID, models.StatusProcessing, models.StatusCompleted)
	if err != nil {
		return fmt.Errorf("advance to completed: %w", err)
	}
	if !completed {
		// Cannot happen while this worker owns the in-flight attempt; if it
		// does, ack anyway — status only ever moves forward.
		log.WarnContext(ctx, "completed write found unexpected status, skipping")
		return nil
	}
	log.InfoContext(ctx, "order advanced to completed")

	return nil
}
