package services

import (
	"errors"
	"testing"
	"time"

	"github.com/reglet-dev/pizzeria/internal/application/dto"
	apperrors "github.com/reglet-dev/pizzeria/internal/application/errors"
	"github.com/reglet-dev/pizzeria/internal/domain/entities"
	"github.com/reglet-dev/pizzeria/internal/domain/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hawaiian() entities.Recipe {
	return entities.Recipe{
		Token:    "h",
		Kind:     "hawaiian",
		Dough:    values.DoughThin,
		Sauce:    values.SauceTomato,
		Toppings: []values.Topping{values.ToppingMozzarella, values.ToppingHam},
		BakeTime: 6 * time.Second,
	}
}

func TestLoadMenu(t *testing.T) {
	t.Parallel()

	t.Run("empty path keeps built-in menu", func(t *testing.T) {
		t.Parallel()
		menu, err := LoadMenu(fakeSource{err: errors.New("unused")}, "")
		require.NoError(t, err)
		assert.Equal(t, []string{"m", "c"}, menu.Tokens())
	})

	t.Run("extra recipes are appended", func(t *testing.T) {
		t.Parallel()
		menu, err := LoadMenu(fakeSource{recipes: []entities.Recipe{hawaiian()}}, "menu.yaml")
		require.NoError(t, err)
		assert.Equal(t, []string{"m", "c", "h"}, menu.Tokens())
		assert.Equal(t, "[m] margarita, [c] creamy bacon or [h] hawaiian", menu.Describe())
	})

	t.Run("load failure is a configuration error", func(t *testing.T) {
		t.Parallel()
		_, err := LoadMenu(fakeSource{err: errors.New("no such file")}, "missing.yaml")
		var cfgErr *apperrors.ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "menu", cfgErr.Aspect)
		assert.ErrorContains(t, err, "no such file")
	})

	t.Run("duplicate token is a validation error", func(t *testing.T) {
		t.Parallel()
		dup := hawaiian()
		dup.Token = "m"
		_, err := LoadMenu(fakeSource{recipes: []entities.Recipe{dup}}, "menu.yaml")
		var valErr *apperrors.ValidationError
		require.ErrorAs(t, err, &valErr)
		require.Len(t, valErr.Details, 1)
		assert.Contains(t, valErr.Details[0], `"m"`)
	})
}

func TestMenuService_List(t *testing.T) {
	t.Parallel()

	menu, err := LoadMenu(fakeSource{recipes: []entities.Recipe{hawaiian()}}, "menu.yaml")
	require.NoError(t, err)
	svc := NewMenuService(menu)

	tests := []struct {
		name   string
		req    dto.ListMenuRequest
		tokens []string
	}{
		{name: "no filters", req: dto.ListMenuRequest{}, tokens: []string{"m", "c", "h"}},
		{name: "by dough", req: dto.ListMenuRequest{Doughs: []string{"thick"}}, tokens: []string{"c"}},
		{name: "by topping", req: dto.ListMenuRequest{Toppings: []string{"ham"}}, tokens: []string{"h"}},
		{name: "by expression", req: dto.ListMenuRequest{FilterExpression: `sauce == "TOMATO" && bake_seconds < 6`}, tokens: []string{"m"}},
		{
			name:   "combined",
			req:    dto.ListMenuRequest{Doughs: []string{"THIN"}, FilterExpression: `"HAM" in toppings`},
			tokens: []string{"h"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			resp, err := svc.List(tt.req)
			require.NoError(t, err)

			tokens := make([]string, 0, len(resp.Recipes))
			for _, r := range resp.Recipes {
				tokens = append(tokens, r.Token)
			}
			assert.Equal(t, tt.tokens, tokens)
		})
	}
}

func TestMenuService_ListRejectsBadFilters(t *testing.T) {
	t.Parallel()

	svc := NewMenuService(nil)
	for _, req := range []dto.ListMenuRequest{
		{Doughs: []string{"stuffed"}},
		{Toppings: []string{"pineapple"}},
		{FilterExpression: "dough +"},
	} {
		_, err := svc.List(req)
		var valErr *apperrors.ValidationError
		assert.ErrorAs(t, err, &valErr, "request %+v", req)
	}
}
