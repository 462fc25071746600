// Package memory provides the in-process order store. Orders live for the
// lifetime of the process; there is no deletion operation.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/xenking/order-pricing-engine/internal/domain/order"
)

var _ order.Repository = (*OrderStore)(nil)

// OrderStore persists orders in memory and assigns sequential order ids.
//
// One mutex guards the counter, the record map, and the creation-order index.
// Create runs id assignment and persistence in a single critical section, so
// concurrent creates never interleave. Readers only ever see fully assembled
// records: stores and reads copy the record, never alias it.
type OrderStore struct {
	mu   sync.RWMutex
	seq  uint64
	byID map[string]*order.Order
	ids  []string // creation order
}

// NewOrderStore returns an empty store. The id counter starts at 1.
func NewOrderStore() *OrderStore {
	return &OrderStore{
		seq:  1,
		byID: make(map[string]*order.Order),
	}
}

// NextID formats and consumes the next sequential order id. Ids are never
// reused, even when no save follows.
func (s *OrderStore) NextID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nextIDLocked()
}

func (s *OrderStore) nextIDLocked() string {
	id := fmt.Sprintf("ORD-%05d", s.seq)
	s.seq++
	return id
}

// Create assigns the next sequential id to o and persists the record in one
// critical section.
func (s *OrderStore) Create(_ context.Context, o *order.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o.ID = s.nextIDLocked()
	s.saveLocked(o)
}

// Save persists an order under its id. Saving an id that already exists
// silently replaces the prior record.
func (s *OrderStore) Save(_ context.Context, o *order.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveLocked(o)
}

func (s *OrderStore) saveLocked(o *order.Order) {
	if _, exists := s.byID[o.ID]; !exists {
		s.ids = append(s.ids, o.ID)
	}
	s.byID[o.ID] = clone(o)
}

// Get returns the order with the given id, or ok=false when unknown.
func (s *OrderStore) Get(_ context.Context, id string) (*order.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	return clone(o), true
}

// List returns all orders in the order they were created.
func (s *OrderStore) List(_ context.Context) []*order.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*order.Order, 0, len(s.ids))
	for _, id := range s.ids {
		out = append(out, clone(s.byID[id]))
	}
	return out
}

// Len returns the number of stored orders.
func (s *OrderStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ids)
}

// clone copies an order record, including its item slice, so callers can
// never mutate stored state through a returned pointer.
func clone(o *order.Order) *order.Order {
	c := *o
	c.Items = make([]order.LineItem, len(o.Items))
	copy(c.Items, o.Items)
	return &c
}
