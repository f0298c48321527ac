// Package entities contains the objects that are assembled and configured
// while an order is prepared.
package entities

import (
	"slices"
	"strings"

	"github.com/reglet-dev/pizzeria/internal/domain/values"
)

// Pizza is the product being assembled. It is owned by exactly one builder,
// which is the only thing allowed to mutate it.
type Pizza struct {
	kind     string
	dough    values.Dough
	sauce    values.Sauce
	toppings []values.Topping
}

// NewPizza creates an empty pizza of the given kind.
func NewPizza(kind string) *Pizza {
	return &Pizza{
		kind:     kind,
		toppings: make([]values.Topping, 0),
	}
}

// Kind returns the pizza's display name.
func (p *Pizza) Kind() string {
	return p.kind
}

// Dough returns the prepared dough, zero until PrepareDough has run.
func (p *Pizza) Dough() values.Dough {
	return p.dough
}

// Sauce returns the sauce, zero until one has been added.
func (p *Pizza) Sauce() values.Sauce {
	return p.sauce
}

// Toppings returns a copy of the toppings in the order they were added.
func (p *Pizza) Toppings() []values.Topping {
	return slices.Clone(p.toppings)
}

// PrepareDough sets the dough and spends one step of kitchen time on it.
// Calling it twice overwrites the dough.
func (p *Pizza) PrepareDough(dough values.Dough, k Kitchen) {
	p.dough = dough
	k.Announce("preparing the %s dough of your %s...", dough, p.kind)
	k.Step()
	k.Announce("done with preparing the dough")
}

// SetSauce sets the sauce.
func (p *Pizza) SetSauce(sauce values.Sauce) {
	p.sauce = sauce
}

// AddToppings appends toppings in order.
func (p *Pizza) AddToppings(toppings ...values.Topping) {
	p.toppings = append(p.toppings, toppings...)
}

// IsComplete returns true once dough, sauce and at least one topping are set.
func (p *Pizza) IsComplete() bool {
	return !p.dough.IsZero() && !p.sauce.IsZero() && len(p.toppings) > 0
}

// String renders the pizza one attribute per line. The format is for people,
// not for parsing.
func (p *Pizza) String() string {
	names := make([]string, len(p.toppings))
	for i, t := range p.toppings {
		names[i] = t.String()
	}

	return strings.Join([]string{
		"kind: " + p.kind,
		"dough: " + orDash(p.dough.String()),
		"sauce: " + orDash(p.sauce.String()),
		"toppings: " + orDash(strings.Join(names, ", ")),
	}, "\n")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
