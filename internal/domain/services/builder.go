// Package services contains the kitchen's domain services: the builder
// contract every recipe is assembled through, the waiter that directs it,
// and the menu orders are selected from.
package services

import (
	"github.com/reglet-dev/pizzeria/internal/domain/entities"
	"github.com/reglet-dev/pizzeria/internal/domain/values"
)

// Step names, in the order a Waiter runs them.
const (
	StepPrepareDough = "prepare_dough"
	StepAddSauce     = "add_sauce"
	StepAddTopping   = "add_topping"
	StepBake         = "bake"
)

// Builder assembles one pizza. Each builder owns exactly one Pizza and a
// progress that starts at QUEUED and only moves forward.
type Builder interface {
	// PrepareDough moves progress to PREPARATION and prepares the dough.
	PrepareDough() error
	// AddSauce puts the recipe's sauce on the pizza.
	AddSauce() error
	// AddTopping adds every topping of the recipe, in recipe order.
	AddTopping() error
	// Bake moves progress to BAKING, bakes, then moves it to READY.
	Bake() error

	// Pizza returns the pizza this builder owns.
	Pizza() *entities.Pizza
	// Progress returns how far construction has advanced.
	Progress() values.Progress
}

// UnimplementedBuilder can be embedded by a builder variant that only
// provides some of the steps. Every step it supplies fails with
// ErrNotImplemented when invoked.
type UnimplementedBuilder struct{}

// PrepareDough is not implemented.
func (UnimplementedBuilder) PrepareDough() error {
	return &entities.NotImplementedError{Operation: StepPrepareDough}
}

// AddSauce is not implemented.
func (UnimplementedBuilder) AddSauce() error {
	return &entities.NotImplementedError{Operation: StepAddSauce}
}

// AddTopping is not implemented.
func (UnimplementedBuilder) AddTopping() error {
	return &entities.NotImplementedError{Operation: StepAddTopping}
}

// Bake is not implemented.
func (UnimplementedBuilder) Bake() error {
	return &entities.NotImplementedError{Operation: StepBake}
}

// StepError records which construction step failed.
type StepError struct {
	Err  error
	Step string
}

func (e *StepError) Error() string {
	return e.Step + ": " + e.Err.Error()
}

func (e *StepError) Unwrap() error {
	return e.Err
}
