// Package cart holds the canonical in-memory cart and its state machine.
// The Store is the single writer; every other component works from
// read-only snapshots.
package cart

import (
	"sync"

	"github.com/barriohq/ordering-client/internal/modules/catalog"
)

// Store owns the one Cart instance for a session. Collaborators receive it
// by constructor injection rather than through a package-level global, and
// observe changes through Subscribe. Transitions are synchronous and pure;
// the store is meant to be driven from a single flow, the mutex covers the
// subscriber map and incidental cross-goroutine reads.
type Store struct {
	mu    sync.Mutex
	cart  Cart
	subs  map[int]func(Cart)
	nextS int
}

// NewStore creates a store holding an empty cart.
func NewStore() *Store {
	return &Store{subs: make(map[int]func(Cart))}
}

// Dispatch applies an action and notifies subscribers with the resulting
// snapshot. It returns that snapshot.
func (s *Store) Dispatch(a Action) Cart {
	s.mu.Lock()
	s.cart = reduce(s.cart, a)
	snap := s.snapshotLocked()
	subs := make([]func(Cart), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
	return snap
}

// Snapshot returns a copy of the current cart. Mutating the returned value
// has no effect on the store.
func (s *Store) Snapshot() Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Cart {
	snap := Cart{Lines: make([]CartLine, len(s.cart.Lines))}
	copy(snap.Lines, s.cart.Lines)
	if s.cart.Merchant != nil {
		m := *s.cart.Merchant
		snap.Merchant = &m
	}
	return snap
}

// Subscribe registers a callback invoked after every dispatched action.
// The returned func removes the subscription.
func (s *Store) Subscribe(fn func(Cart)) func() {
	s.mu.Lock()
	id := s.nextS
	s.nextS++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Convenience wrappers mirroring the actions the UI layer dispatches.

func (s *Store) AddItem(p catalog.Product, quantity int) Cart {
	return s.Dispatch(AddItem{Product: p, Quantity: quantity})
}

func (s *Store) RemoveItem(productID int64) Cart {
	return s.Dispatch(RemoveItem{ProductID: productID})
}

func (s *Store) SetQuantity(productID int64, quantity int) Cart {
	return s.Dispatch(SetQuantity{ProductID: productID, Quantity: quantity})
}

func (s *Store) SetMerchant(m catalog.Merchant) Cart {
	return s.Dispatch(SetMerchant{Merchant: m})
}

func (s *Store) Clear() Cart {
	return s.Dispatch(Clear{})
}
