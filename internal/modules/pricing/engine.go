// Package pricing derives order totals from cart snapshots and merchant
// metadata. All arithmetic is exact decimal; rendering is left to the
// money package and the UI layer.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/barriohq/ordering-client/internal/modules/cart"
	"github.com/barriohq/ordering-client/internal/modules/catalog"
	"github.com/barriohq/ordering-client/internal/money"
)

// Subtotal is the sum of unit price times quantity over every line.
func Subtotal(c cart.Cart) decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.Lines {
		total = total.Add(money.Times(l.Product.UnitPrice, l.Quantity))
	}
	return total
}

// DeliveryFee is the merchant's flat fee, or zero when no merchant is set.
func DeliveryFee(m *catalog.Merchant) decimal.Decimal {
	if m == nil {
		return decimal.Zero
	}
	return m.DeliveryFee
}

// GrandTotal is Subtotal plus the delivery fee of the cart's merchant.
func GrandTotal(c cart.Cart) decimal.Decimal {
	return Subtotal(c).Add(DeliveryFee(c.Merchant))
}
