// Package memory provides in-memory implementations of domain repositories.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/reglet-dev/pizzeria/internal/domain/entities"
	"github.com/reglet-dev/pizzeria/internal/domain/repositories"
	"github.com/reglet-dev/pizzeria/internal/domain/values"
)

// Ensure interface compliance
var _ repositories.OrderRepository = (*OrderRepository)(nil)

// OrderRepository is an in-memory implementation of OrderRepository.
// Orders live for the lifetime of the process.
type OrderRepository struct {
	orders map[uuid.UUID]*entities.Order
	mu     sync.RWMutex
}

// NewOrderRepository creates a new in-memory repository.
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		orders: make(map[uuid.UUID]*entities.Order),
	}
}

// Save stores an order. Saving the same order again replaces it.
func (r *OrderRepository) Save(_ context.Context, order *entities.Order) error {
	if order == nil {
		return fmt.Errorf("cannot save nil order")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Callers should not modify the order after saving.
	r.orders[order.ID.UUID()] = order
	return nil
}

// FindByID retrieves an order by its ID.
func (r *OrderRepository) FindByID(_ context.Context, id values.OrderID) (*entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id.UUID()]
	if !ok {
		return nil, fmt.Errorf("order not found: %s", id)
	}
	return order, nil
}
