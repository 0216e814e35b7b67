package domain

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestSentinelErrors_WrappedIdentity(t *testing.T) {
	wrapped := fmt.Errorf("get order: %w", ErrOrderNotFound)
	if !errors.Is(wrapped, ErrOrderNotFound) {
		t.Fatal("errors.Is must match wrapped ErrOrderNotFound")
	}

	wrapped2 := fmt.Errorf("%w: %w", ErrMalformedMessage, errors.New("unexpected end of JSON input"))
	if !errors.Is(wrapped2, ErrMalformedMessage) {
		t.Fatal("errors.Is must match wrapped ErrMalformedMessage")
	}
}

func TestValidationError_collectsAllFields(t *testing.T) {
	verr := NewValidationError()
	if verr.HasErrors() {
		t.Fatal("fresh ValidationError must have no errors")
	}

	verr.Add("customer", "customer is required")
	verr.Add("amount", "amount must be positive")

	if !verr.HasErrors() {
		t.Fatal("expected HasErrors after Add")
	}
	if len(verr.Fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(verr.Fields))
	}

	msg := verr.Error()
	if !strings.Contains(msg, "customer") || !strings.Contains(msg, "amount") {
		t.Errorf("error message must name every field: %q", msg)
	}
}

func TestValidationError_matchesThroughWrapping(t *testing.T) {
	verr := NewValidationError()
	verr.Add("product", "product is required")

	wrapped := fmt.Errorf("create order: %w", verr)

	var target *ValidationError
	if !errors.As(wrapped, &target) {
		t.Fatal("errors.As must match wrapped *ValidationError")
	}
	if target.Fields["product"] == "" {
		t.Error("field map lost through wrapping")
	}
}
