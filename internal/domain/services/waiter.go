package services

import (
	"errors"
	"log/slog"

	"github.com/reglet-dev/pizzeria/internal/domain/entities"
)

// Waiter directs a builder through the construction steps in their fixed
// order and hands out the finished pizza. A waiter serves one order at a
// time and can be reused for the next one.
type Waiter struct {
	builder Builder
	logger  *slog.Logger
}

// NewWaiter creates a waiter with no active order.
func NewWaiter(logger *slog.Logger) *Waiter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Waiter{logger: logger}
}

// Construct makes b the active builder and runs prepare_dough, add_sauce,
// add_topping and bake on it, in that order. The first failing step aborts
// construction; the half-built pizza is dropped and the waiter is left with
// no active order.
func (w *Waiter) Construct(b Builder) error {
	if b == nil {
		return errors.New("construct: builder is nil")
	}
	w.builder = b

	steps := []struct {
		run  func() error
		name string
	}{
		{b.PrepareDough, StepPrepareDough},
		{b.AddSauce, StepAddSauce},
		{b.AddTopping, StepAddTopping},
		{b.Bake, StepBake},
	}

	for _, step := range steps {
		w.logger.Debug("running step", "step", step.name, "progress", b.Progress())
		if err := step.run(); err != nil {
			w.builder = nil
			return &StepError{Step: step.name, Err: err}
		}
	}

	w.logger.Debug("order constructed", "kind", b.Pizza().Kind(), "progress", b.Progress())
	return nil
}

// Pizza returns the active builder's pizza.
func (w *Waiter) Pizza() (*entities.Pizza, error) {
	if w.builder == nil {
		return nil, entities.ErrNoActiveOrder
	}
	return w.builder.Pizza(), nil
}

// Builder returns the active builder, or nil if there is none.
func (w *Waiter) Builder() Builder {
	return w.builder
}
