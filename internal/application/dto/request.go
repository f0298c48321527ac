// Package dto contains data transfer objects for application layer use cases.
package dto

import "time"

// PlaceOrderRequest encapsulates everything needed to take and serve orders.
type PlaceOrderRequest struct {
	// Tokens are menu tokens to serve in order. When empty, one order is
	// taken interactively through the OrderPrompter.
	Tokens []string

	Kitchen KitchenOptions
}

// KitchenOptions controls how long preparation takes.
type KitchenOptions struct {
	// StepDelay is the duration of one ordinary preparation step.
	// Zero makes ordinary steps take no time.
	StepDelay time.Duration

	// TimeScale multiplies every delay. Zero serves instantly.
	TimeScale float64
}

// ListMenuRequest encapsulates filters for listing the menu.
type ListMenuRequest struct {
	FilterExpression string
	Doughs           []string
	Toppings         []string
}
