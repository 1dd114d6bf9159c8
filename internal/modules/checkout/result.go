package checkout

import (
	"fmt"

	"github.com/barriohq/ordering-client/internal/modules/payment"
)

// Kind classifies a failed submission so the UI can render a consistent
// message. Local precondition kinds never reach the network.
type Kind string

const (
	ValidationError      Kind = "VALIDATION_ERROR"
	EmptyCart            Kind = "EMPTY_CART"
	MissingMerchant      Kind = "MISSING_MERCHANT"
	MissingPaymentMethod Kind = "MISSING_PAYMENT_METHOD"
	NotAuthenticated     Kind = "NOT_AUTHENTICATED"
	ProtocolError        Kind = "PROTOCOL_ERROR"
	ServerRejected       Kind = "SERVER_REJECTED"
	NetworkError         Kind = "NETWORK_ERROR"
)

// Error is a classified submission failure. Failures are values; Submit
// never panics and never returns an unclassified error.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the underlying transport error, when there is one.
func (e *Error) Unwrap() error { return e.cause }

func fail(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func failCause(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, cause: cause}
}

// Receipt describes a successfully created order.
type Receipt struct {
	OrderCode string
	Status    payment.OrderStatusDescriptor
}

// Result is the tagged outcome of one submission: exactly one of Receipt
// and Err is set.
type Result struct {
	Receipt *Receipt
	Err     *Error
}

// Submitted reports whether the order was created.
func (r Result) Submitted() bool { return r.Err == nil && r.Receipt != nil }

func submitted(rc Receipt) Result { return Result{Receipt: &rc} }

func failed(err *Error) Result { return Result{Err: err} }
