package entities_test

import (
	"testing"
	"time"

	"github.com/reglet-dev/pizzeria/internal/domain/entities"
	"github.com/reglet-dev/pizzeria/internal/domain/values"
	"github.com/stretchr/testify/assert"
)

func TestOrder_Lifecycle(t *testing.T) {
	t.Parallel()

	o := entities.NewOrder(entities.Margarita())

	assert.False(t, o.ID.IsZero())
	assert.Equal(t, values.ProgressQueued, o.Progress)
	assert.False(t, o.IsServed())
	assert.Zero(t, o.Duration())

	o.Serve(entities.NewPizza("margarita"), values.ProgressReady)

	assert.True(t, o.IsServed())
	assert.False(t, o.ServedAt.Before(o.PlacedAt))
	assert.GreaterOrEqual(t, o.Duration(), time.Duration(0))
}

func TestOrder_NotServedUnlessReady(t *testing.T) {
	t.Parallel()

	o := entities.NewOrder(entities.CreamyBacon())
	o.Serve(entities.NewPizza("creamy bacon"), values.ProgressBaking)

	assert.False(t, o.IsServed())
}
