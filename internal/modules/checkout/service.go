// Package checkout validates a cart against the submission preconditions,
// serializes it to the wire format, and posts it to the backend with the
// bounded delivery-flag fallback. On success the caller clears the cart
// store; the service itself never mutates client state.
package checkout

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/barriohq/ordering-client/internal/api"
	"github.com/barriohq/ordering-client/internal/modules/cart"
	"github.com/barriohq/ordering-client/internal/modules/payment"
	"github.com/barriohq/ordering-client/internal/obs"
)

// Service submits orders to the marketplace backend.
type Service struct {
	client *api.Client
	policy FlagPolicy
}

// NewService creates a submission service over the shared REST client.
func NewService(client *api.Client, policy FlagPolicy) *Service {
	if policy.Candidates == nil {
		policy = DefaultFlagPolicy()
	}
	return &Service{client: client, policy: policy}
}

// Submit validates the snapshot and inputs, then posts the order. Every
// failure comes back classified in the Result; nothing is retried except
// the delivery-flag cycle, and no network call happens before all local
// preconditions pass. Concurrent duplicate submission of the same cart is
// the caller's job to prevent (debounce while a call is in flight).
func (s *Service) Submit(ctx context.Context, snap cart.Cart, customerID, paymentMethodID int64, address, notes string) Result {
	address = strings.TrimSpace(address)
	if address == "" {
		return failed(fail(ValidationError, "delivery address is required"))
	}
	if len(snap.Lines) == 0 {
		return failed(fail(EmptyCart, "cart has no items"))
	}
	if snap.Merchant == nil {
		return failed(fail(MissingMerchant, "cart has no merchant"))
	}
	if customerID == 0 {
		return failed(fail(NotAuthenticated, "sign in to place an order"))
	}
	if paymentMethodID == 0 {
		return failed(fail(MissingPaymentMethod, "select a payment method"))
	}

	req := CheckoutRequest{
		CustomerID:      customerID,
		PaymentMethodID: paymentMethodID,
		DeliveryAddress: address,
		Notes:           strings.TrimSpace(notes),
		Items:           itemsFromCart(snap, snap.Merchant.ID),
	}

	// One key for the whole submission, reused across flag candidates, so
	// a backend honoring it cannot persist the same order twice.
	key := uuid.NewString()
	header := http.Header{"X-Idempotency-Key": []string{key}}

	candidates := s.policy.Candidates(snap.Merchant.ID)
	if len(candidates) == 0 {
		candidates = []int64{snap.Merchant.ID}
	}
	var resp *api.Response
	for i, flag := range candidates {
		req.DeliveryFlag = flag

		r, err := s.client.Do(ctx, http.MethodPost, "/orders", header, req)
		if err != nil {
			// Transport failure: no response was received, so the order may
			// or may not exist server-side. Blind retry is unsafe; surface
			// it and let the user decide.
			return failed(failCause(NetworkError, "could not reach the ordering service", err))
		}
		resp = r
		if !resp.ServerError() {
			break
		}
		if i+1 < len(candidates) {
			obs.Logger.Warn("order submission rejected, trying next delivery flag",
				"status", resp.StatusCode, "flag", flag, "idempotency_key", key)
		}
	}

	return s.classify(resp)
}

// classify turns the final HTTP response of a submission into a Result.
func (s *Service) classify(resp *api.Response) Result {
	if resp.Empty() {
		return failed(fail(ProtocolError, "empty response from server"))
	}
	if !resp.OK() {
		return failed(fail(ServerRejected, resp.Message()))
	}

	var body orderResponse
	if err := resp.DecodeJSON(&body); err != nil {
		return failed(failCause(ProtocolError, "malformed response from server", err))
	}
	if body.OrderCode == "" {
		return failed(fail(ProtocolError, "response is missing the order code"))
	}

	status := payment.FallbackPendingStatus()
	if body.Status != nil {
		status = *body.Status
	}
	return submitted(Receipt{OrderCode: body.OrderCode, Status: status})
}
