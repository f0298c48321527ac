package services

import (
	"bytes"
	"time"

	"github.com/reglet-dev/pizzeria/internal/domain/entities"
	"github.com/reglet-dev/pizzeria/internal/domain/values"
)

// recordingBuilder wraps a Builder and records each call together with the
// progress observed right after it.
type recordingBuilder struct {
	Builder
	calls    []string
	progress []values.Progress
}

func (r *recordingBuilder) record(name string, err error) error {
	r.calls = append(r.calls, name)
	r.progress = append(r.progress, r.Builder.Progress())
	return err
}

func (r *recordingBuilder) PrepareDough() error {
	return r.record(StepPrepareDough, r.Builder.PrepareDough())
}

func (r *recordingBuilder) AddSauce() error {
	return r.record(StepAddSauce, r.Builder.AddSauce())
}

func (r *recordingBuilder) AddTopping() error {
	return r.record(StepAddTopping, r.Builder.AddTopping())
}

func (r *recordingBuilder) Bake() error {
	return r.record(StepBake, r.Builder.Bake())
}

// noToppingBuilder is a placeholder variant that never got an AddTopping.
type noToppingBuilder struct {
	UnimplementedBuilder
	inner *RecipeBuilder
	calls []string
}

func (b *noToppingBuilder) PrepareDough() error {
	b.calls = append(b.calls, StepPrepareDough)
	return b.inner.PrepareDough()
}

func (b *noToppingBuilder) AddSauce() error {
	b.calls = append(b.calls, StepAddSauce)
	return b.inner.AddSauce()
}

func (b *noToppingBuilder) Bake() error {
	b.calls = append(b.calls, StepBake)
	return b.inner.Bake()
}

func (b *noToppingBuilder) Pizza() *entities.Pizza {
	return b.inner.Pizza()
}

func (b *noToppingBuilder) Progress() values.Progress {
	return b.inner.Progress()
}

// instantBuilder returns a builder for r that never sleeps and narrates into out.
func instantBuilder(r entities.Recipe, out *bytes.Buffer, waited *[]time.Duration) *RecipeBuilder {
	opts := []BuilderOption{WithDelay(entities.NoDelay), WithStepDelay(3 * time.Second)}
	if out != nil {
		opts = append(opts, WithOutput(out))
	}
	if waited != nil {
		opts = append(opts, WithDelay(func(d time.Duration) { *waited = append(*waited, d) }))
	}
	return NewRecipeBuilder(r, opts...)
}
