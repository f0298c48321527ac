package dto

import (
	"time"

	"github.com/reglet-dev/pizzeria/internal/domain/entities"
)

// Receipt lists the orders served for one request.
type Receipt struct {
	Orders   []ServedOrder `json:"orders" yaml:"orders"`
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// ServedOrder describes a finished pizza.
type ServedOrder struct {
	PlacedAt time.Time     `json:"placed_at" yaml:"placed_at"`
	ServedAt time.Time     `json:"served_at" yaml:"served_at"`
	ID       string        `json:"id" yaml:"id"`
	Token    string        `json:"token" yaml:"token"`
	Kind     string        `json:"kind" yaml:"kind"`
	Dough    string        `json:"dough" yaml:"dough"`
	Sauce    string        `json:"sauce" yaml:"sauce"`
	Progress string        `json:"progress" yaml:"progress"`
	Toppings []string      `json:"toppings" yaml:"toppings"`
	Duration time.Duration `json:"duration" yaml:"duration"`

	// Description is the pizza as shown to the customer.
	Description string `json:"-" yaml:"-"`
}

// NewServedOrder maps a served order into its DTO.
func NewServedOrder(o *entities.Order) ServedOrder {
	served := ServedOrder{
		ID:       o.ID.String(),
		Token:    o.Recipe.Token,
		Kind:     o.Recipe.Kind,
		Progress: o.Progress.String(),
		PlacedAt: o.PlacedAt,
		ServedAt: o.ServedAt,
		Duration: o.Duration(),
		Toppings: []string{},
	}
	if o.Pizza != nil {
		served.Description = o.Pizza.String()
		served.Kind = o.Pizza.Kind()
		served.Dough = o.Pizza.Dough().String()
		served.Sauce = o.Pizza.Sauce().String()
		for _, t := range o.Pizza.Toppings() {
			served.Toppings = append(served.Toppings, t.String())
		}
	}
	return served
}

// MenuResponse lists recipes available to order.
type MenuResponse struct {
	Recipes []RecipeInfo `json:"recipes" yaml:"recipes"`
}

// RecipeInfo describes one recipe on the menu.
type RecipeInfo struct {
	Token    string        `json:"token" yaml:"token"`
	Kind     string        `json:"kind" yaml:"kind"`
	Dough    string        `json:"dough" yaml:"dough"`
	Sauce    string        `json:"sauce" yaml:"sauce"`
	Toppings []string      `json:"toppings" yaml:"toppings"`
	BakeTime time.Duration `json:"bake_time" yaml:"bake_time"`
}

// NewRecipeInfo maps a recipe into its DTO.
func NewRecipeInfo(r entities.Recipe) RecipeInfo {
	toppings := make([]string, len(r.Toppings))
	for i, t := range r.Toppings {
		toppings[i] = t.String()
	}
	return RecipeInfo{
		Token:    r.Token,
		Kind:     r.Kind,
		Dough:    r.Dough.String(),
		Sauce:    r.Sauce.String(),
		Toppings: toppings,
		BakeTime: r.BakeTime,
	}
}
