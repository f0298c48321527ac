package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/reglet-dev/pizzeria/internal/domain/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRecipesFromReader_Valid(t *testing.T) {
	yaml := `
recipes:
  - token: h
    kind: ham and cheese
    dough: thin
    sauce: tomato
    toppings: [mozzarella, ham]
    bake_time: 6s
  - token: W
    kind: white
    dough: THICK
    sauce: creme fraiche
`
	loader := NewMenuLoader()
	recipes, err := loader.LoadRecipesFromReader(strings.NewReader(yaml))

	require.NoError(t, err)
	require.Len(t, recipes, 2)

	h := recipes[0]
	assert.Equal(t, "h", h.Token)
	assert.Equal(t, "ham and cheese", h.Kind)
	assert.Equal(t, values.DoughThin, h.Dough)
	assert.Equal(t, values.SauceTomato, h.Sauce)
	assert.Equal(t, []values.Topping{values.ToppingMozzarella, values.ToppingHam}, h.Toppings)
	assert.Equal(t, 6*time.Second, h.BakeTime)

	w := recipes[1]
	assert.Equal(t, values.SauceCremeFraiche, w.Sauce)
	assert.Empty(t, w.Toppings)
	assert.Zero(t, w.BakeTime)
}

func TestLoadRecipesFromReader_Empty(t *testing.T) {
	loader := NewMenuLoader()
	recipes, err := loader.LoadRecipesFromReader(strings.NewReader(""))

	require.NoError(t, err)
	assert.Empty(t, recipes)
}

func TestLoadRecipesFromReader_InvalidYAML(t *testing.T) {
	loader := NewMenuLoader()
	_, err := loader.LoadRecipesFromReader(strings.NewReader(`recipes: [[[`))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode")
}

func TestLoadRecipesFromReader_UnknownField(t *testing.T) {
	yaml := `
recipes:
  - token: h
    kind: ham
    dough: thin
    sauce: tomato
    crust: stuffed
`
	loader := NewMenuLoader()
	_, err := loader.LoadRecipesFromReader(strings.NewReader(yaml))

	assert.ErrorContains(t, err, "failed to decode")
}

func TestLoadRecipesFromReader_ValidationFails(t *testing.T) {
	yaml := `
recipes:
  - token: p
    kind: pineapple
    dough: thin
    sauce: tomato
    toppings: [pineapple]
  - token: ""
    kind: nameless
    dough: thin
    sauce: tomato
  - token: s
    kind: slow
    dough: thin
    sauce: tomato
    bake_time: forever
`
	loader := NewMenuLoader()
	_, err := loader.LoadRecipesFromReader(strings.NewReader(yaml))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "menu validation failed")
	assert.Contains(t, err.Error(), "recipes[0]")
	assert.Contains(t, err.Error(), "recipes[1]")
	assert.Contains(t, err.Error(), `invalid bake_time "forever"`)
}

func TestLoadRecipes_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "menu.yaml")
	content := `
recipes:
  - token: h
    kind: ham and cheese
    dough: thick
    sauce: tomato
    toppings: [ham]
    bake_time: 4s
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	recipes, err := NewMenuLoader().LoadRecipes(path)
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, values.DoughThick, recipes[0].Dough)

	_, err = NewMenuLoader().LoadRecipes(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "failed to open menu")
}
