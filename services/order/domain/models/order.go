package models

import (
	"time"

	"github.com/google/uuid"
)

// Order is the core aggregate for this bounded context. Customer, Product and
// Amount are immutable after creation; only Status advances, and only forward.
type Order struct {
	ID        uuid.UUID
	Customer  string
	Product   string
	Amount    float64
	Status    Status
	CreatedAt time.Time
}

// NewOrder constructs a Pending order with a generated ID and current UTC timestamp.
// Field validation is the job of services.ValidateForCreation; this constructor
// only establishes identity and initial state.
func NewOrder(customer, product string, amount float64) *Order {
	return &Order{
		ID:        uuid.New(),
		Customer:  customer,
		Product:   product,
		Amount:    amount,
		Status:    StatusPending,
		CreatedAt: time.Now().UTC(),
	}
}
