package cart

import (
	"github.com/barriohq/ordering-client/internal/modules/catalog"
)

// CartLine is one product in the cart with its accumulated quantity.
// A cart holds at most one line per product id.
type CartLine struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Cart is the client-held selection for a single merchant, not yet submitted.
// Invariant: when Lines is non-empty, Merchant is set and every line's product
// belongs to that merchant.
type Cart struct {
	Merchant *catalog.Merchant `json:"merchant,omitempty"`
	Lines    []CartLine        `json:"lines"`
}

// TotalItems is the sum of all line quantities.
func (c Cart) TotalItems() int {
	total := 0
	for _, l := range c.Lines {
		total += l.Quantity
	}
	return total
}

// TotalLines is the number of distinct products in the cart.
func (c Cart) TotalLines() int { return len(c.Lines) }

// Line returns the line for a product id, if present.
func (c Cart) Line(productID int64) (CartLine, bool) {
	for _, l := range c.Lines {
		if l.Product.ID == productID {
			return l, true
		}
	}
	return CartLine{}, false
}

// Action is the closed set of cart transitions. The reducer switches over
// every variant; adding one without handling it is a compile-visible gap.
type Action interface{ isAction() }

// AddItem merges Quantity into the existing line for Product, or appends a
// new line. Products from a different merchant than the cart's are ignored.
type AddItem struct {
	Product  catalog.Product
	Quantity int
}

// RemoveItem drops the line for ProductID. The merchant stays set even when
// the cart empties; callers reset it with Clear or SetMerchant.
type RemoveItem struct{ ProductID int64 }

// SetQuantity replaces (not merges) the quantity of an existing line.
// A quantity of zero or less removes the line.
type SetQuantity struct {
	ProductID int64
	Quantity  int
}

// SetMerchant replaces the cart's merchant. It does not clear existing
// lines; callers switching merchants must Clear first.
type SetMerchant struct{ Merchant catalog.Merchant }

// Clear resets the cart to empty with no merchant.
type Clear struct{}

func (AddItem) isAction()     {}
func (RemoveItem) isAction()  {}
func (SetQuantity) isAction() {}
func (SetMerchant) isAction() {}
func (Clear) isAction()       {}

// reduce is the pure transition function over (Cart, Action). It never
// mutates its input; lines are copied before any edit.
func reduce(c Cart, a Action) Cart {
	switch a := a.(type) {
	case AddItem:
		if a.Quantity <= 0 {
			return c
		}
		if c.Merchant != nil && a.Product.MerchantID != c.Merchant.ID {
			return c
		}
		lines := make([]CartLine, len(c.Lines))
		copy(lines, c.Lines)
		for i, l := range lines {
			if l.Product.ID == a.Product.ID {
				lines[i].Quantity += a.Quantity
				return Cart{Merchant: c.Merchant, Lines: lines}
			}
		}
		lines = append(lines, CartLine{Product: a.Product, Quantity: a.Quantity})
		return Cart{Merchant: c.Merchant, Lines: lines}

	case RemoveItem:
		lines := make([]CartLine, 0, len(c.Lines))
		for _, l := range c.Lines {
			if l.Product.ID != a.ProductID {
				lines = append(lines, l)
			}
		}
		return Cart{Merchant: c.Merchant, Lines: lines}

	case SetQuantity:
		if a.Quantity <= 0 {
			return reduce(c, RemoveItem{ProductID: a.ProductID})
		}
		lines := make([]CartLine, len(c.Lines))
		copy(lines, c.Lines)
		for i, l := range lines {
			if l.Product.ID == a.ProductID {
				lines[i].Quantity = a.Quantity
			}
		}
		return Cart{Merchant: c.Merchant, Lines: lines}

	case SetMerchant:
		m := a.Merchant
		return Cart{Merchant: &m, Lines: c.Lines}

	case Clear:
		return Cart{}

	default:
		return c
	}
}
