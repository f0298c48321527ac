// Package config provides infrastructure for loading menus and settings.
// This package handles YAML parsing, file I/O and viper lookups.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/reglet-dev/pizzeria/internal/application/ports"
	"github.com/reglet-dev/pizzeria/internal/domain/entities"
	"github.com/reglet-dev/pizzeria/internal/domain/values"
)

// Ensure interface compliance
var _ ports.RecipeSource = (*MenuLoader)(nil)

// menuFile is the on-disk layout of a menu file.
type menuFile struct {
	Recipes []recipeEntry `yaml:"recipes"`
}

type recipeEntry struct {
	Token    string   `yaml:"token"`
	Kind     string   `yaml:"kind"`
	Dough    string   `yaml:"dough"`
	Sauce    string   `yaml:"sauce"`
	BakeTime string   `yaml:"bake_time"`
	Toppings []string `yaml:"toppings"`
}

// MenuLoader reads extra recipes from YAML menu files.
type MenuLoader struct{}

// NewMenuLoader creates a new menu loader.
func NewMenuLoader() *MenuLoader {
	return &MenuLoader{}
}

// LoadRecipes loads and parses the recipes in a YAML file.
func (l *MenuLoader) LoadRecipes(path string) ([]entities.Recipe, error) {
	// Security: Use os.OpenRoot to keep the read inside the menu's directory
	root, err := os.OpenRoot(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open menu directory: %w", err)
	}
	defer func() {
		_ = root.Close() // Best-effort cleanup
	}()

	file, err := root.Open(filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open menu: %w", err)
	}
	defer func() {
		_ = file.Close() // Best-effort cleanup
	}()

	return l.LoadRecipesFromReader(file)
}

// LoadRecipesFromReader parses recipes from an io.Reader. Every entry is
// validated; all problems are reported together.
func (l *MenuLoader) LoadRecipesFromReader(r io.Reader) ([]entities.Recipe, error) {
	var menu menuFile

	decoder := yaml.NewDecoder(r, yaml.DisallowUnknownField())
	if err := decoder.Decode(&menu); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to decode menu YAML: %w", err)
	}

	recipes := make([]entities.Recipe, 0, len(menu.Recipes))
	var errs []error
	for i, entry := range menu.Recipes {
		recipe, err := entry.toRecipe()
		if err != nil {
			errs = append(errs, fmt.Errorf("recipes[%d]: %w", i, err))
			continue
		}
		recipes = append(recipes, recipe)
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("menu validation failed: %w", errors.Join(errs...))
	}

	return recipes, nil
}

func (e recipeEntry) toRecipe() (entities.Recipe, error) {
	dough, err := values.ParseDough(e.Dough)
	if err != nil {
		return entities.Recipe{}, err
	}
	sauce, err := values.ParseSauce(e.Sauce)
	if err != nil {
		return entities.Recipe{}, err
	}
	toppings, err := values.ParseToppings(e.Toppings)
	if err != nil {
		return entities.Recipe{}, err
	}

	var bake time.Duration
	if e.BakeTime != "" {
		bake, err = time.ParseDuration(e.BakeTime)
		if err != nil {
			return entities.Recipe{}, fmt.Errorf("invalid bake_time %q: %w", e.BakeTime, err)
		}
	}

	recipe := entities.Recipe{
		Token:    e.Token,
		Kind:     e.Kind,
		Dough:    dough,
		Sauce:    sauce,
		Toppings: toppings,
		BakeTime: bake,
	}
	if err := recipe.Validate(); err != nil {
		return entities.Recipe{}, err
	}
	return recipe, nil
}
