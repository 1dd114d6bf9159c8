package pricing

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/barriohq/ordering-client/internal/modules/cart"
	"github.com/barriohq/ordering-client/internal/modules/catalog"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestTwoLineScenario(t *testing.T) {
	merchant := catalog.Merchant{ID: 7, DeliveryFee: dec("200")}
	c := cart.Cart{
		Merchant: &merchant,
		Lines: []cart.CartLine{
			{Product: catalog.Product{ID: 1, UnitPrice: dec("1200"), MerchantID: 7}, Quantity: 2},
			{Product: catalog.Product{ID: 2, UnitPrice: dec("800"), MerchantID: 7}, Quantity: 1},
		},
	}

	if got := Subtotal(c); !got.Equal(dec("3200")) {
		t.Fatalf("subtotal: expected 3200, got %s", got)
	}
	if got := GrandTotal(c); !got.Equal(dec("3400")) {
		t.Fatalf("grand total: expected 3400, got %s", got)
	}
}

func TestGrandTotalIdentity(t *testing.T) {
	merchant := catalog.Merchant{ID: 7, DeliveryFee: dec("150.50")}
	carts := []cart.Cart{
		{},
		{Merchant: &merchant},
		{Merchant: &merchant, Lines: []cart.CartLine{
			{Product: catalog.Product{ID: 1, UnitPrice: dec("99.99"), MerchantID: 7}, Quantity: 3},
		}},
		{Merchant: &merchant, Lines: []cart.CartLine{
			{Product: catalog.Product{ID: 1, UnitPrice: dec("0.10"), MerchantID: 7}, Quantity: 1},
			{Product: catalog.Product{ID: 2, UnitPrice: dec("0.20"), MerchantID: 7}, Quantity: 7},
		}},
	}

	for i, c := range carts {
		want := Subtotal(c).Add(DeliveryFee(c.Merchant))
		if got := GrandTotal(c); !got.Equal(want) {
			t.Fatalf("cart %d: grand total %s != subtotal+fee %s", i, got, want)
		}
	}
}

func TestDeliveryFeeWithoutMerchant(t *testing.T) {
	if got := DeliveryFee(nil); !got.IsZero() {
		t.Fatalf("expected zero fee without merchant, got %s", got)
	}
}

func TestSubtotalHasNoFloatDrift(t *testing.T) {
	// 100 x 0.10 + 100 x 0.20 + 100 x 0.70 must be exactly 100,
	// which float64 accumulation famously gets wrong.
	var lines []cart.CartLine
	for i, price := range []string{"0.10", "0.20", "0.70"} {
		for j := 0; j < 100; j++ {
			lines = append(lines, cart.CartLine{
				Product:  catalog.Product{ID: int64(i*1000 + j), UnitPrice: dec(price), MerchantID: 7},
				Quantity: 1,
			})
		}
	}
	c := cart.Cart{Lines: lines}

	if got := Subtotal(c); !got.Equal(dec("100")) {
		t.Fatalf("expected exactly 100, got %s", got)
	}
}
