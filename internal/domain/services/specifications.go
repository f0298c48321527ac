package services

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/reglet-dev/pizzeria/internal/domain/entities"
	"github.com/reglet-dev/pizzeria/internal/domain/values"
)

// RecipeSpecification defines a condition that a recipe must meet.
type RecipeSpecification interface {
	// IsSatisfiedBy checks if the recipe meets the specification.
	// Returns true if satisfied, along with a reason if not.
	IsSatisfiedBy(r entities.Recipe) (bool, string)
}

// AndSpecification combines multiple specifications with logical AND.
type AndSpecification struct {
	specs []RecipeSpecification
}

// NewAndSpecification creates a new AndSpecification.
func NewAndSpecification(specs ...RecipeSpecification) *AndSpecification {
	return &AndSpecification{specs: specs}
}

// IsSatisfiedBy checks if all specifications are satisfied.
func (s *AndSpecification) IsSatisfiedBy(r entities.Recipe) (bool, string) {
	for _, spec := range s.specs {
		if satisfied, reason := spec.IsSatisfiedBy(r); !satisfied {
			return false, reason
		}
	}
	return true, ""
}

// DoughSpecification includes only recipes made on one of the doughs.
type DoughSpecification struct {
	doughs map[values.Dough]bool
}

// NewDoughSpecification creates a new DoughSpecification.
func NewDoughSpecification(doughs map[values.Dough]bool) *DoughSpecification {
	return &DoughSpecification{doughs: doughs}
}

// IsSatisfiedBy checks if the recipe's dough is selected.
func (s *DoughSpecification) IsSatisfiedBy(r entities.Recipe) (bool, string) {
	if len(s.doughs) == 0 {
		return true, "" // Not active
	}
	if s.doughs[r.Dough] {
		return true, ""
	}
	return false, fmt.Sprintf("dough %s not selected", r.Dough)
}

// ToppingSpecification includes only recipes with any of the toppings.
type ToppingSpecification struct {
	toppings map[values.Topping]bool
}

// NewToppingSpecification creates a new ToppingSpecification.
func NewToppingSpecification(toppings map[values.Topping]bool) *ToppingSpecification {
	return &ToppingSpecification{toppings: toppings}
}

// IsSatisfiedBy checks if the recipe has ANY of the selected toppings.
func (s *ToppingSpecification) IsSatisfiedBy(r entities.Recipe) (bool, string) {
	if len(s.toppings) == 0 {
		return true, ""
	}
	for _, t := range r.Toppings {
		if s.toppings[t] {
			return true, ""
		}
	}
	return false, "no selected topping"
}

// ExpressionSpecification filters recipes using an expr program.
type ExpressionSpecification struct {
	program *vm.Program
}

// NewExpressionSpecification creates a new ExpressionSpecification.
func NewExpressionSpecification(program *vm.Program) *ExpressionSpecification {
	return &ExpressionSpecification{program: program}
}

// IsSatisfiedBy evaluates the expr program against the recipe.
func (s *ExpressionSpecification) IsSatisfiedBy(r entities.Recipe) (bool, string) {
	if s.program == nil {
		return true, ""
	}

	output, err := expr.Run(s.program, NewRecipeEnv(r))
	if err != nil {
		return false, fmt.Sprintf("filter expression error: %v", err)
	}

	result, ok := output.(bool)
	if !ok {
		return false, fmt.Sprintf("filter expression did not return boolean: %v", output)
	}

	if !result {
		return false, "excluded by filter expression"
	}

	return true, ""
}
