package entities

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/reglet-dev/pizzeria/internal/domain/values"
)

// Recipe is the fixed configuration of one builder variant. Every variant
// runs the same four steps; only these values differ between them.
type Recipe struct {
	Token    string
	Kind     string
	Dough    values.Dough
	Sauce    values.Sauce
	Toppings []values.Topping
	BakeTime time.Duration
}

// Margarita is the thin-dough, tomato-sauce recipe.
func Margarita() Recipe {
	return Recipe{
		Token:    "m",
		Kind:     "margarita",
		Dough:    values.DoughThin,
		Sauce:    values.SauceTomato,
		Toppings: []values.Topping{values.ToppingDoubleMozzarella, values.ToppingOregano},
		BakeTime: 5 * time.Second,
	}
}

// CreamyBacon is the thick-dough, creme-fraiche recipe.
func CreamyBacon() Recipe {
	return Recipe{
		Token:    "c",
		Kind:     "creamy bacon",
		Dough:    values.DoughThick,
		Sauce:    values.SauceCremeFraiche,
		Toppings: []values.Topping{values.ToppingMozzarella, values.ToppingBacon, values.ToppingOregano},
		BakeTime: 7 * time.Second,
	}
}

// BuiltinRecipes returns the recipes every menu starts with.
func BuiltinRecipes() []Recipe {
	return []Recipe{Margarita(), CreamyBacon()}
}

// Validate checks that the recipe can be built.
func (r Recipe) Validate() error {
	var errs []error

	if strings.TrimSpace(r.Token) == "" {
		errs = append(errs, errors.New("token is required"))
	}
	if strings.TrimSpace(r.Kind) == "" {
		errs = append(errs, errors.New("kind is required"))
	}
	if err := r.Dough.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := r.Sauce.Validate(); err != nil {
		errs = append(errs, err)
	}
	for _, t := range r.Toppings {
		if err := t.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if r.BakeTime < 0 {
		errs = append(errs, fmt.Errorf("bake time must not be negative, got %s", r.BakeTime))
	}

	if len(errs) > 0 {
		return fmt.Errorf("recipe %q: %w", r.Token, errors.Join(errs...))
	}
	return nil
}

// Clone returns a copy that shares no slices with r.
func (r Recipe) Clone() Recipe {
	r.Toppings = slices.Clone(r.Toppings)
	return r
}
