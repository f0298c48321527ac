package services

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/reglet-dev/pizzeria/internal/domain/entities"
	"github.com/reglet-dev/pizzeria/internal/domain/values"
)

// maxFilterNodes bounds the size of a filter expression's AST.
const maxFilterNodes = 200

// RecipeEnv defines the variables available during filter expression evaluation.
type RecipeEnv struct {
	Token       string   `expr:"token"`
	Kind        string   `expr:"kind"`
	Dough       string   `expr:"dough"`
	Sauce       string   `expr:"sauce"`
	Toppings    []string `expr:"toppings"`
	BakeSeconds float64  `expr:"bake_seconds"`
}

// NewRecipeEnv builds the evaluation environment for r.
func NewRecipeEnv(r entities.Recipe) RecipeEnv {
	toppings := make([]string, len(r.Toppings))
	for i, t := range r.Toppings {
		toppings[i] = t.String()
	}
	return RecipeEnv{
		Token:       r.Token,
		Kind:        r.Kind,
		Dough:       r.Dough.String(),
		Sauce:       r.Sauce.String(),
		Toppings:    toppings,
		BakeSeconds: r.BakeTime.Seconds(),
	}
}

// CompileRecipeFilter compiles a boolean expression over RecipeEnv,
// e.g. `dough == "THIN" && bake_seconds < 6`.
func CompileRecipeFilter(expression string) (*vm.Program, error) {
	program, err := expr.Compile(expression,
		expr.Env(RecipeEnv{}),
		expr.AsBool(),
		expr.MaxNodes(maxFilterNodes),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}
	return program, nil
}

// RecipeFilter selects recipes by dough, topping and an optional expression.
// All configured criteria must hold.
type RecipeFilter struct {
	doughs   map[values.Dough]bool
	toppings map[values.Topping]bool
	program  *vm.Program
}

// NewRecipeFilter initializes a filter that matches everything.
func NewRecipeFilter() *RecipeFilter {
	return &RecipeFilter{
		doughs:   make(map[values.Dough]bool),
		toppings: make(map[values.Topping]bool),
	}
}

// WithDoughs includes only recipes made on one of these doughs.
func (f *RecipeFilter) WithDoughs(doughs []values.Dough) *RecipeFilter {
	for _, d := range doughs {
		f.doughs[d] = true
	}
	return f
}

// WithToppings includes only recipes with at least one of these toppings.
func (f *RecipeFilter) WithToppings(toppings []values.Topping) *RecipeFilter {
	for _, t := range toppings {
		f.toppings[t] = true
	}
	return f
}

// WithExpression applies a compiled program from CompileRecipeFilter.
func (f *RecipeFilter) WithExpression(program *vm.Program) *RecipeFilter {
	f.program = program
	return f
}

// Matches reports whether r passes the filter, with a reason when it does not.
func (f *RecipeFilter) Matches(r entities.Recipe) (bool, string) {
	var specs []RecipeSpecification

	if len(f.doughs) > 0 {
		specs = append(specs, NewDoughSpecification(f.doughs))
	}
	if len(f.toppings) > 0 {
		specs = append(specs, NewToppingSpecification(f.toppings))
	}
	if f.program != nil {
		specs = append(specs, NewExpressionSpecification(f.program))
	}

	return NewAndSpecification(specs...).IsSatisfiedBy(r)
}

// Apply returns the recipes that match, keeping their order.
func (f *RecipeFilter) Apply(recipes []entities.Recipe) []entities.Recipe {
	matched := make([]entities.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if ok, _ := f.Matches(r); ok {
			matched = append(matched, r)
		}
	}
	return matched
}
