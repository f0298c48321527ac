package values

import (
	"fmt"
	"strings"
)

// Topping is a single ingredient placed on top of the sauce.
type Topping string

const (
	ToppingMozzarella       Topping = "MOZZARELLA"
	ToppingDoubleMozzarella Topping = "DOUBLE_MOZZARELLA"
	ToppingBacon            Topping = "BACON"
	ToppingHam              Topping = "HAM"
	ToppingOregano          Topping = "OREGANO"
)

// ParseTopping creates a Topping from its name.
func ParseTopping(s string) (Topping, error) {
	t := Topping(normalizeName(s))
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

// ParseToppings parses every name in order, failing on the first invalid one.
func ParseToppings(names []string) ([]Topping, error) {
	toppings := make([]Topping, 0, len(names))
	for _, name := range names {
		t, err := ParseTopping(name)
		if err != nil {
			return nil, err
		}
		toppings = append(toppings, t)
	}
	return toppings, nil
}

// String returns the topping name
func (t Topping) String() string {
	return string(t)
}

// Validate returns an error if the topping value is invalid
func (t Topping) Validate() error {
	switch t {
	case ToppingMozzarella, ToppingDoubleMozzarella, ToppingBacon, ToppingHam, ToppingOregano:
		return nil
	default:
		return fmt.Errorf("invalid topping: %q", string(t))
	}
}

// JoinToppings renders toppings as NAME|NAME|NAME.
func JoinToppings(toppings []Topping) string {
	names := make([]string, len(toppings))
	for i, t := range toppings {
		names[i] = t.String()
	}
	return strings.Join(names, "|")
}
