package services

import (
	"fmt"
	"strings"

	"github.com/reglet-dev/pizzeria/internal/domain/entities"
)

// Menu maps selection tokens to the recipes the kitchen can make.
// Tokens are matched case-insensitively after trimming.
type Menu struct {
	recipes map[string]entities.Recipe
	tokens  []string
}

// NewMenu creates a menu holding recipes, in the given order.
func NewMenu(recipes ...entities.Recipe) (*Menu, error) {
	m := &Menu{recipes: make(map[string]entities.Recipe, len(recipes))}
	for _, r := range recipes {
		if err := m.Add(r); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// DefaultMenu returns a menu with the built-in recipes.
func DefaultMenu() *Menu {
	m, err := NewMenu(entities.BuiltinRecipes()...)
	if err != nil {
		panic(err)
	}
	return m
}

// Add validates r and puts it on the menu. A token can only be used once.
func (m *Menu) Add(r entities.Recipe) error {
	if err := r.Validate(); err != nil {
		return err
	}
	token := normalizeToken(r.Token)
	if _, exists := m.recipes[token]; exists {
		return fmt.Errorf("recipe token %q is already on the menu", token)
	}
	r = r.Clone()
	r.Token = token
	m.recipes[token] = r
	m.tokens = append(m.tokens, token)
	return nil
}

// Select returns the recipe for token, or an UnavailableError.
func (m *Menu) Select(token string) (entities.Recipe, error) {
	r, ok := m.recipes[normalizeToken(token)]
	if !ok {
		return entities.Recipe{}, &entities.UnavailableError{Token: token}
	}
	return r.Clone(), nil
}

// Order selects the recipe for token and returns a fresh builder for it.
func (m *Menu) Order(token string, opts ...BuilderOption) (*RecipeBuilder, error) {
	r, err := m.Select(token)
	if err != nil {
		return nil, err
	}
	return NewRecipeBuilder(r, opts...), nil
}

// Tokens returns the tokens in menu order.
func (m *Menu) Tokens() []string {
	return append([]string(nil), m.tokens...)
}

// Recipes returns the recipes in menu order.
func (m *Menu) Recipes() []entities.Recipe {
	recipes := make([]entities.Recipe, 0, len(m.tokens))
	for _, token := range m.tokens {
		recipes = append(recipes, m.recipes[token].Clone())
	}
	return recipes
}

// Len returns the number of recipes on the menu.
func (m *Menu) Len() int {
	return len(m.tokens)
}

// Describe renders the menu as a one-line question, e.g.
// "[m] margarita or [c] creamy bacon".
func (m *Menu) Describe() string {
	parts := make([]string, 0, len(m.tokens))
	for _, token := range m.tokens {
		parts = append(parts, fmt.Sprintf("[%s] %s", token, m.recipes[token].Kind))
	}
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	default:
		return strings.Join(parts[:len(parts)-1], ", ") + " or " + parts[len(parts)-1]
	}
}

func normalizeToken(token string) string {
	return strings.ToLower(strings.TrimSpace(token))
}
