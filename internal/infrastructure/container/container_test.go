package container

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/reglet-dev/pizzeria/internal/application/dto"
	apperrors "github.com/reglet-dev/pizzeria/internal/application/errors"
	"github.com/reglet-dev/pizzeria/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	c, err := New(Options{})
	require.NoError(t, err)

	assert.NotNil(t, c.OrderService())
	assert.NotNil(t, c.MenuService())
	assert.NotNil(t, c.FormatterFactory())
	assert.NotNil(t, c.Logger())
	assert.Equal(t, config.DefaultSettings().StepDelay, c.Settings().StepDelay)
	assert.Equal(t, []string{"m", "c"}, c.OrderService().Menu().Tokens())
}

func TestNew_WithMenuFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.yaml")
	content := `
recipes:
  - token: h
    kind: ham and cheese
    dough: thin
    sauce: tomato
    toppings: [mozzarella, ham]
    bake_time: 6s
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	var narration bytes.Buffer
	settings := config.DefaultSettings()
	settings.MenuFile = path
	c, err := New(Options{Settings: settings, Narration: &narration})
	require.NoError(t, err)

	receipt, err := c.OrderService().PlaceOrders(context.Background(), dto.PlaceOrderRequest{
		Tokens: []string{"h"},
	})
	require.NoError(t, err)
	require.Len(t, receipt.Orders, 1)
	assert.Equal(t, "ham and cheese", receipt.Orders[0].Kind)
	assert.Contains(t, narration.String(), "Your ham and cheese is ready.")
}

func TestNew_MissingMenuFile(t *testing.T) {
	settings := config.DefaultSettings()
	settings.MenuFile = filepath.Join(t.TempDir(), "missing.yaml")

	_, err := New(Options{Settings: settings})
	var cfgErr *apperrors.ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
}
