package checkout

import (
	"github.com/shopspring/decimal"

	"github.com/barriohq/ordering-client/internal/modules/cart"
	"github.com/barriohq/ordering-client/internal/modules/payment"
)

// CheckoutItem is one cart line on the wire. Unit prices are copied from
// the cart snapshot at submission time; the service does not re-fetch
// them, so a price change mid-checkout goes undetected (known limitation).
type CheckoutItem struct {
	ProductID  int64           `json:"productId"`
	MerchantID int64           `json:"merchantId"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
}

// CheckoutRequest is the POST /orders body. It is built from validated
// inputs and never mutated after construction. DeliveryFlag is the
// delivery-handling field whose accepted values the backend does not
// publish; see FlagPolicy.
type CheckoutRequest struct {
	CustomerID      int64          `json:"customerId"`
	DeliveryFlag    int64          `json:"deliveryFlag"`
	PaymentMethodID int64          `json:"paymentMethodId"`
	DeliveryAddress string         `json:"deliveryAddress"`
	Notes           string         `json:"notes,omitempty"`
	Items           []CheckoutItem `json:"items"`
}

// orderResponse is the success body of POST /orders.
type orderResponse struct {
	OrderCode string                         `json:"orderCode"`
	Status    *payment.OrderStatusDescriptor `json:"status,omitempty"`
}

func itemsFromCart(c cart.Cart, merchantID int64) []CheckoutItem {
	items := make([]CheckoutItem, 0, len(c.Lines))
	for _, l := range c.Lines {
		items = append(items, CheckoutItem{
			ProductID:  l.Product.ID,
			MerchantID: merchantID,
			Quantity:   l.Quantity,
			UnitPrice:  l.Product.UnitPrice,
		})
	}
	return items
}
