package services

import (
	"fmt"

	"github.com/reglet-dev/pizzeria/internal/application/dto"
	apperrors "github.com/reglet-dev/pizzeria/internal/application/errors"
	"github.com/reglet-dev/pizzeria/internal/application/ports"
	"github.com/reglet-dev/pizzeria/internal/domain/services"
	"github.com/reglet-dev/pizzeria/internal/domain/values"
)

// LoadMenu returns the built-in menu extended with the recipes found at
// path. An empty path returns the built-in menu unchanged.
func LoadMenu(source ports.RecipeSource, path string) (*services.Menu, error) {
	menu := services.DefaultMenu()
	if path == "" {
		return menu, nil
	}

	recipes, err := source.LoadRecipes(path)
	if err != nil {
		return nil, apperrors.NewConfigurationError("menu", fmt.Sprintf("failed to load %s", path), err)
	}

	var details []string
	for _, r := range recipes {
		if err := menu.Add(r); err != nil {
			details = append(details, err.Error())
		}
	}
	if len(details) > 0 {
		return nil, apperrors.NewValidationError("recipes", fmt.Sprintf("invalid recipes in %s", path), details...)
	}

	return menu, nil
}

// MenuService lists what can be ordered.
type MenuService struct {
	menu *services.Menu
}

// NewMenuService creates a new menu service.
func NewMenuService(menu *services.Menu) *MenuService {
	return &MenuService{menu: menu}
}

// List returns the recipes matching the request's filters, in menu order.
func (s *MenuService) List(req dto.ListMenuRequest) (*dto.MenuResponse, error) {
	filter := services.NewRecipeFilter()

	if len(req.Doughs) > 0 {
		doughs := make([]values.Dough, 0, len(req.Doughs))
		for _, name := range req.Doughs {
			d, err := values.ParseDough(name)
			if err != nil {
				return nil, apperrors.NewValidationError("dough", err.Error())
			}
			doughs = append(doughs, d)
		}
		filter.WithDoughs(doughs)
	}

	if len(req.Toppings) > 0 {
		toppings, err := values.ParseToppings(req.Toppings)
		if err != nil {
			return nil, apperrors.NewValidationError("topping", err.Error())
		}
		filter.WithToppings(toppings)
	}

	if req.FilterExpression != "" {
		program, err := services.CompileRecipeFilter(req.FilterExpression)
		if err != nil {
			return nil, apperrors.NewValidationError("filter", err.Error())
		}
		filter.WithExpression(program)
	}

	matched := filter.Apply(s.menu.Recipes())
	resp := &dto.MenuResponse{Recipes: make([]dto.RecipeInfo, 0, len(matched))}
	for _, r := range matched {
		resp.Recipes = append(resp.Recipes, dto.NewRecipeInfo(r))
	}
	return resp, nil
}
