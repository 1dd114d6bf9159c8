// Package catalog defines the reference data the ordering core receives from
// the merchant/catalog browsing collaborators. The core never mutates these
// values; it only snapshots them into carts and checkout requests.
package catalog

import "github.com/shopspring/decimal"

// Product is a single sellable item offered by a merchant.
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	MerchantID  int64           `json:"merchantId"`
}

// Merchant is the selling party a cart's items belong to.
// DeliveryFee is a flat per-order charge; zero means free delivery.
type Merchant struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	DeliveryFee decimal.Decimal `json:"deliveryFee"`
}
