package services

import (
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/reglet-dev/pizzeria/internal/domain/entities"
	"github.com/reglet-dev/pizzeria/internal/domain/values"
)

var _ Builder = (*RecipeBuilder)(nil)

// RecipeBuilder is the one Builder implementation every recipe shares.
// Variants differ only in the Recipe they are created with.
type RecipeBuilder struct {
	recipe   entities.Recipe
	pizza    *entities.Pizza
	kitchen  entities.Kitchen
	logger   *slog.Logger
	progress values.Progress
}

// BuilderOption configures a RecipeBuilder.
type BuilderOption func(*RecipeBuilder)

// WithOutput sets where step narration is written. Defaults to io.Discard.
func WithOutput(w io.Writer) BuilderOption {
	return func(b *RecipeBuilder) {
		b.kitchen.Out = w
	}
}

// WithDelay sets how simulated preparation time is spent. Defaults to time.Sleep.
func WithDelay(d entities.Delay) BuilderOption {
	return func(b *RecipeBuilder) {
		b.kitchen.Delay = d
	}
}

// WithStepDelay sets the duration of one ordinary preparation step.
// Defaults to entities.DefaultStepDelay.
func WithStepDelay(d time.Duration) BuilderOption {
	return func(b *RecipeBuilder) {
		b.kitchen.StepDelay = d
	}
}

// WithLogger sets the logger used for progress transitions.
func WithLogger(l *slog.Logger) BuilderOption {
	return func(b *RecipeBuilder) {
		if l != nil {
			b.logger = l
		}
	}
}

// NewRecipeBuilder creates a builder for recipe with a fresh, empty pizza.
func NewRecipeBuilder(recipe entities.Recipe, opts ...BuilderOption) *RecipeBuilder {
	b := &RecipeBuilder{
		recipe: recipe.Clone(),
		pizza:  entities.NewPizza(recipe.Kind),
		kitchen: entities.Kitchen{
			Out:       io.Discard,
			Delay:     time.Sleep,
			StepDelay: entities.DefaultStepDelay,
		},
		logger:   slog.Default(),
		progress: values.ProgressQueued,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Recipe returns the configuration this builder follows.
func (b *RecipeBuilder) Recipe() entities.Recipe {
	return b.recipe.Clone()
}

// Pizza returns the pizza this builder owns.
func (b *RecipeBuilder) Pizza() *entities.Pizza {
	return b.pizza
}

// Progress returns how far construction has advanced.
func (b *RecipeBuilder) Progress() values.Progress {
	return b.progress
}

// PrepareDough moves to PREPARATION and hands the dough to the pizza.
func (b *RecipeBuilder) PrepareDough() error {
	if err := b.advance(values.ProgressPreparation); err != nil {
		return err
	}
	b.pizza.PrepareDough(b.recipe.Dough, b.kitchen)
	return nil
}

// AddSauce sets the recipe's sauce. Progress stays where it is.
func (b *RecipeBuilder) AddSauce() error {
	if err := b.ensurePreparing(); err != nil {
		return err
	}
	b.kitchen.Announce("adding %s sauce to the pizza...", b.recipe.Sauce)
	b.pizza.SetSauce(b.recipe.Sauce)
	b.kitchen.Step()
	b.kitchen.Announce("done adding the sauce.")
	return nil
}

// AddTopping appends the recipe's toppings in order. Progress stays where it is.
func (b *RecipeBuilder) AddTopping() error {
	if err := b.ensurePreparing(); err != nil {
		return err
	}
	b.kitchen.Announce("adding %s toppings to the pizza...", values.JoinToppings(b.recipe.Toppings))
	b.pizza.AddToppings(b.recipe.Toppings...)
	b.kitchen.Step()
	b.kitchen.Announce("adding toppings done.")
	return nil
}

// Bake moves to BAKING, waits the recipe's bake time, then moves to READY.
func (b *RecipeBuilder) Bake() error {
	if err := b.advance(values.ProgressBaking); err != nil {
		return err
	}
	b.kitchen.Announce("baking your %s for %s seconds...", b.recipe.Kind, formatSeconds(b.recipe.BakeTime))
	b.kitchen.Wait(b.recipe.BakeTime)
	if err := b.advance(values.ProgressReady); err != nil {
		return err
	}
	b.kitchen.Announce("Your %s is ready.", b.recipe.Kind)
	return nil
}

// advance moves progress forward to next, refusing to go back.
func (b *RecipeBuilder) advance(next values.Progress) error {
	if !b.progress.CanAdvanceTo(next) {
		return &entities.TransitionError{From: b.progress, To: next}
	}
	if next != b.progress {
		b.logger.Debug("progress changed", "kind", b.recipe.Kind, "from", b.progress, "to", next)
	}
	b.progress = next
	return nil
}

// ensurePreparing fails once the pizza has gone into the oven.
func (b *RecipeBuilder) ensurePreparing() error {
	if b.progress.IsAfter(values.ProgressPreparation) {
		return &entities.TransitionError{From: b.progress, To: values.ProgressPreparation}
	}
	return nil
}

func formatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64)
}
