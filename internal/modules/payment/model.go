package payment

// PaymentMethod is a selectable way to pay, resolved from the remote
// catalog. The core references methods, it never mutates them.
type PaymentMethod struct {
	ID          int64  `json:"id"`
	Label       string `json:"method"`
	Description string `json:"description,omitempty"`
	// Active is a tri-state flag from the backend; absent counts as active.
	Active *bool `json:"active,omitempty"`
}

// IsActive reports whether the method should be offered at checkout.
func (m PaymentMethod) IsActive() bool {
	return m.Active == nil || *m.Active
}

// OrderStatusDescriptor is the initial status a freshly created order is
// assigned. It is resolved once per checkout, never cached across sessions.
type OrderStatusDescriptor struct {
	ID          int64  `json:"id"`
	Code        string `json:"code"`
	Description string `json:"description,omitempty"`
}

// PendingCode is the status code every new order starts in.
const PendingCode = "PENDING"
