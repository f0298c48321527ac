// Package repositories defines interfaces for domain persistence.
package repositories

import (
	"context"

	"github.com/reglet-dev/pizzeria/internal/domain/entities"
	"github.com/reglet-dev/pizzeria/internal/domain/values"
)

// OrderRepository keeps the orders served during a session.
type OrderRepository interface {
	// Save stores a served order.
	Save(ctx context.Context, order *entities.Order) error

	// FindByID retrieves an order by its ID.
	FindByID(ctx context.Context, id values.OrderID) (*entities.Order, error)
}
