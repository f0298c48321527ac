// Package ports defines interfaces for infrastructure dependencies.
// These are the "ports" in hexagonal architecture - abstractions that
// the application layer depends on but doesn't implement.
package ports

import (
	"context"
	"io"

	"github.com/reglet-dev/pizzeria/internal/application/dto"
	"github.com/reglet-dev/pizzeria/internal/domain/entities"
)

// OrderPrompter asks the customer what they would like.
type OrderPrompter interface {
	// Ask returns the token the customer typed. menu describes the choices.
	Ask(ctx context.Context, menu string) (string, error)

	// Reject tells the customer their choice could not be served.
	Reject(token string, reason error)
}

// RecipeSource loads extra recipes from storage.
type RecipeSource interface {
	LoadRecipes(path string) ([]entities.Recipe, error)
}

// OutputFormatter formats use case results.
type OutputFormatter interface {
	FormatReceipt(receipt *dto.Receipt) error
	FormatMenu(menu *dto.MenuResponse) error
}

// FormatterOptions configures output formatters.
type FormatterOptions struct {
	Indent  bool // Pretty-print JSON
	NoColor bool // Plain table output
}

// OutputFormatterFactory creates formatters by name.
type OutputFormatterFactory interface {
	Create(format string, writer io.Writer, options FormatterOptions) (OutputFormatter, error)
	SupportedFormats() []string
}
