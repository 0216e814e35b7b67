// Package services contains stateless domain services for the order bounded
// context. They operate purely on domain types with zero external dependencies
// beyond stdlib and the domain layer.
package services

import (
	"strings"

	orderdomain "github.com/rasmoura/GestaoPedidosTmb/services/order/domain"
)

// ValidateForCreation checks every creation input and reports all violations
// together, not just the first one found.
//
// Business rules:
//   - customer must be non-empty (ignoring surrounding whitespace)
//   - product must be non-empty (ignoring surrounding whitespace)
//   - amount must be strictly positive
func ValidateForCreation(customer, product string, amount float64) *orderdomain.ValidationError {
	verr := orderdomain.NewValidationError()

	if strings.TrimSpace(customer) == "" {
		verr.Add("customer", "customer is required")
	}
	if strings.TrimSpace(product) == "" {
		verr.Add("product", "product is required")
	}
	if amount <= 0 {
		verr.Add("amount", "amount must be positive")
	}

	if verr.HasErrors() {
		return verr
	}
	return nil
}
