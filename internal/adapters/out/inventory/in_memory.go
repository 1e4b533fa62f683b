// Package inventory tracks equipment kit reservations for paid orders.
package inventory

import (
	"context"
	"sync"

	"fulfillment/internal/core/domain/model/kernel"
)

// InMemoryInventoryService implements ports.InventoryService with an
// in-process reservation table. It stands in for the warehouse system
// integration; reservations do not survive a restart.
type InMemoryInventoryService struct {
	mu       sync.Mutex
	reserved map[string]struct{}
}

// NewInMemoryInventoryService creates an empty reservation table.
func NewInMemoryInventoryService() *InMemoryInventoryService {
	return &InMemoryInventoryService{
		reserved: make(map[string]struct{}),
	}
}

// Reserve puts a hold on the order's equipment kit. Reserving an already
// reserved order is a no-op, matching the idempotent payment confirmation.
func (s *InMemoryInventoryService) Reserve(_ context.Context, orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.reserved[orderID.String()] = struct{}{}
	return nil
}

// Release frees a previously reserved kit. Releasing an order without a
// reservation is a no-op.
func (s *InMemoryInventoryService) Release(_ context.Context, orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.reserved, orderID.String())
	return nil
}

// IsReserved reports whether the order currently holds a reservation.
func (s *InMemoryInventoryService) IsReserved(orderID kernel.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.reserved[orderID.String()]
	return ok
}
