package entities

import (
	"time"

	"github.com/reglet-dev/pizzeria/internal/domain/values"
)

// Order tracks one pizza from the moment it is placed until it is served.
type Order struct {
	PlacedAt time.Time
	ServedAt time.Time
	Pizza    *Pizza
	Recipe   Recipe
	ID       values.OrderID
	Progress values.Progress
}

// NewOrder places a new order for recipe.
func NewOrder(recipe Recipe) *Order {
	return &Order{
		ID:       values.NewOrderID(),
		Recipe:   recipe.Clone(),
		Progress: values.ProgressQueued,
		PlacedAt: time.Now(),
	}
}

// Serve records the finished pizza and the progress its builder reached.
func (o *Order) Serve(pizza *Pizza, progress values.Progress) {
	o.Pizza = pizza
	o.Progress = progress
	o.ServedAt = time.Now()
}

// IsServed returns true once a ready pizza has been handed over.
func (o *Order) IsServed() bool {
	return o.Pizza != nil && o.Progress.IsReady()
}

// Duration returns how long the order took, zero while it is still open.
func (o *Order) Duration() time.Duration {
	if o.ServedAt.IsZero() {
		return 0
	}
	return o.ServedAt.Sub(o.PlacedAt)
}
