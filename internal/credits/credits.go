// Package credits wraps metered actions with the billing service's
// insufficient-balance protocol. The authoritative balance check lives
// server-side; this package only classifies responses.
package credits

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// InsufficientCreditsError is the structured signal for a metered action the
// billing service rejected. It carries the amounts so the caller can route
// to a purchase flow instead of the generic error path.
type InsufficientCreditsError struct {
	Required       float64 `json:"required"`
	CurrentBalance float64 `json:"current_balance"`
}

func (e *InsufficientCreditsError) Error() string {
	return fmt.Sprintf("insufficient credits: %.0f required, %.0f available", e.Required, e.CurrentBalance)
}

// GatewayError is the generic failure path for a metered action
type GatewayError struct {
	Message string
	Cause   error
}

func (e *GatewayError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *GatewayError) Unwrap() error {
	return e.Cause
}

// Action is a credit-consuming operation
type Action func(ctx context.Context) error

// Gateway mediates credit-consuming actions. The action is invoked
// optimistically with no local balance pre-check; an insufficient-balance
// response passes through as its dedicated signal, anything else becomes a
// generic recoverable error. Actions are never retried, to avoid
// double-charging.
type Gateway struct{}

// NewGateway creates a credit gateway
func NewGateway() *Gateway {
	return &Gateway{}
}

// Do runs a single metered action and classifies its failure
func (g *Gateway) Do(ctx context.Context, action Action) error {
	err := action(ctx)
	if err == nil {
		return nil
	}

	var insufficient *InsufficientCreditsError
	if errors.As(err, &insufficient) {
		return insufficient
	}
	return &GatewayError{Message: "action failed", Cause: err}
}

// DecodeInsufficient extracts the structured insufficient-balance error from
// an HTTP 402 response body of the form {"required": n, "current_balance": n}.
// Returns nil when the response is not the payment-required status.
func DecodeInsufficient(resp *http.Response) error {
	if resp.StatusCode != http.StatusPaymentRequired {
		return nil
	}

	var body InsufficientCreditsError
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		// A 402 with an unreadable body is still an insufficient-balance
		// signal; the amounts are just unknown.
		return &InsufficientCreditsError{}
	}
	return &body
}
