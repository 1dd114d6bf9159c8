// checkout-demo walks the full ordering flow against the configured
// backend: build a cart, price it, resolve payment methods, and submit.
// Point API_BASE_URL at a running stubmarket to try it locally.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/barriohq/ordering-client/internal/api"
	"github.com/barriohq/ordering-client/internal/config"
	"github.com/barriohq/ordering-client/internal/modules/cart"
	"github.com/barriohq/ordering-client/internal/modules/catalog"
	"github.com/barriohq/ordering-client/internal/modules/checkout"
	"github.com/barriohq/ordering-client/internal/modules/identity"
	"github.com/barriohq/ordering-client/internal/modules/payment"
	"github.com/barriohq/ordering-client/internal/modules/pricing"
	"github.com/barriohq/ordering-client/internal/money"
	"github.com/barriohq/ordering-client/internal/obs"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	obs.InitLogger(cfg.LogLevel)

	customerID, err := identity.CustomerID(cfg.AccessToken)
	if err != nil {
		// The stub does not issue tokens; a fixed demo customer keeps the
		// flow runnable without the auth collaborator.
		obs.Logger.Warn("no usable access token, using demo customer", "error", err)
		customerID = 42
	}

	client := api.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout)
	resolver := payment.NewResolver(client)
	submitter := checkout.NewService(client, checkout.DefaultFlagPolicy())

	merchant := catalog.Merchant{
		ID:          7,
		Name:        "La Esquina Pizzeria",
		DeliveryFee: decimal.NewFromInt(200),
	}
	muzzarella := catalog.Product{
		ID: 31, Name: "Pizza muzzarella", UnitPrice: decimal.NewFromInt(1200), MerchantID: merchant.ID,
	}
	empanada := catalog.Product{
		ID: 45, Name: "Empanada de carne", UnitPrice: decimal.NewFromInt(800), MerchantID: merchant.ID,
	}

	store := cart.NewStore()
	unsubscribe := store.Subscribe(func(c cart.Cart) {
		obs.Logger.Info("cart changed", "lines", c.TotalLines(), "items", c.TotalItems())
	})
	defer unsubscribe()

	store.SetMerchant(merchant)
	store.AddItem(muzzarella, 2)
	store.AddItem(empanada, 1)

	snap := store.Snapshot()
	fmt.Printf("subtotal:    %s\n", money.Format(pricing.Subtotal(snap)))
	fmt.Printf("delivery:    %s\n", money.Format(pricing.DeliveryFee(snap.Merchant)))
	fmt.Printf("grand total: %s\n", money.Format(pricing.GrandTotal(snap)))

	ctx := context.Background()
	methods := resolver.ListPaymentMethods(ctx)
	for _, m := range methods {
		fmt.Printf("payment method %d: %s\n", m.ID, m.Label)
	}
	status := resolver.DefaultStatus(ctx)
	fmt.Printf("new orders start as %s (%s)\n", status.Code, status.Description)

	paymentMethodID := int64(1)
	if len(methods) > 0 {
		paymentMethodID = methods[0].ID
	}
	result := submitter.Submit(ctx, snap, customerID, paymentMethodID,
		"Calle 12 entre 60 y 61 N 1234", "ring twice")
	if !result.Submitted() {
		fmt.Fprintf(os.Stderr, "order failed (%s): %s\n", result.Err.Kind, result.Err.Message)
		os.Exit(1)
	}

	store.Clear()
	fmt.Printf("order %s created with status %s\n", result.Receipt.OrderCode, result.Receipt.Status.Code)
}
