// Package payment resolves the advisory checkout lookups: which payment
// methods are offered and which status a new order starts in. Both are
// non-critical; a failed lookup degrades to a fixed fallback instead of
// blocking checkout.
package payment

import (
	"context"
	"fmt"
	"net/url"

	"github.com/barriohq/ordering-client/internal/api"
	"github.com/barriohq/ordering-client/internal/obs"
)

// Resolver fetches payment methods and order statuses from the backend.
type Resolver struct {
	client *api.Client
}

// NewResolver creates a resolver over the shared REST client.
func NewResolver(client *api.Client) *Resolver {
	return &Resolver{client: client}
}

// FallbackPaymentMethods is the fixed offering used when the remote
// catalog is unreachable: pay in cash or by card on delivery.
func FallbackPaymentMethods() []PaymentMethod {
	return []PaymentMethod{
		{ID: 1, Label: "CASH", Description: "Pay in cash on delivery"},
		{ID: 2, Label: "CARD", Description: "Pay by card on delivery"},
	}
}

// FallbackPendingStatus is the status assumed for a new order when the
// backend cannot confirm one.
func FallbackPendingStatus() OrderStatusDescriptor {
	return OrderStatusDescriptor{
		ID:          1,
		Code:        PendingCode,
		Description: "Order awaiting merchant confirmation",
	}
}

// fetchPaymentMethods is the strict lookup: it surfaces transport,
// protocol, and server errors to its caller.
func (r *Resolver) fetchPaymentMethods(ctx context.Context) ([]PaymentMethod, error) {
	var methods []PaymentMethod
	if err := r.client.GetJSON(ctx, "/payment-methods", &methods); err != nil {
		return nil, fmt.Errorf("list payment methods: %w", err)
	}
	active := methods[:0]
	for _, m := range methods {
		if m.IsActive() {
			active = append(active, m)
		}
	}
	return active, nil
}

// ListPaymentMethods returns the methods to offer at checkout. Any failure
// is logged and converted into the fixed fallback list; this call never
// fails from the caller's point of view.
func (r *Resolver) ListPaymentMethods(ctx context.Context) []PaymentMethod {
	methods, err := r.fetchPaymentMethods(ctx)
	if err != nil {
		obs.Logger.Warn("payment method lookup degraded to fallback", "error", err)
		return FallbackPaymentMethods()
	}
	return methods
}

// fetchStatusByCode resolves an order status descriptor by its code.
func (r *Resolver) fetchStatusByCode(ctx context.Context, code string) (OrderStatusDescriptor, error) {
	var status OrderStatusDescriptor
	path := "/order-statuses/by-code/" + url.PathEscape(code)
	if err := r.client.GetJSON(ctx, path, &status); err != nil {
		return OrderStatusDescriptor{}, fmt.Errorf("resolve status %s: %w", code, err)
	}
	return status, nil
}

// DefaultStatus resolves the PENDING descriptor new orders are created
// with. A 404 or any other failure falls back to the fixed descriptor;
// callers needing strict correctness should treat that path as degraded.
func (r *Resolver) DefaultStatus(ctx context.Context) OrderStatusDescriptor {
	status, err := r.fetchStatusByCode(ctx, PendingCode)
	if err != nil {
		obs.Logger.Warn("order status lookup degraded to fallback", "error", err)
		return FallbackPendingStatus()
	}
	return status
}
