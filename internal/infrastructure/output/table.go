package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/reglet-dev/pizzeria/internal/application/dto"
	"github.com/reglet-dev/pizzeria/internal/domain/values"
)

// TableFormatter formats receipts and menus for a human at a terminal.
type TableFormatter struct {
	writer      io.Writer
	EnableColor bool
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{
		writer:      w,
		EnableColor: true, // Default to true, caller can disable
	}
}

// render applies style when color is enabled.
func (f *TableFormatter) render(style lipgloss.Style, text string) string {
	if !f.EnableColor {
		return text
	}
	return style.Render(text)
}

// FormatReceipt writes every served pizza followed by a summary.
//
//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) FormatReceipt(receipt *dto.Receipt) error {
	if len(receipt.Orders) == 0 {
		fmt.Fprintln(f.writer, "No orders served.")
		return nil
	}

	for _, order := range receipt.Orders {
		fmt.Fprintln(f.writer, "here is your order!:")
		fmt.Fprintln(f.writer, f.render(pizzaStyle, order.Description))
		fmt.Fprintln(f.writer)
	}

	fmt.Fprintln(f.writer, f.render(mutedStyle, separator))
	for _, order := range receipt.Orders {
		f.formatServed(order)
	}
	fmt.Fprintln(f.writer, f.render(mutedStyle, separator))
	fmt.Fprintf(f.writer, "Served %d %s in %s\n",
		len(receipt.Orders), plural(len(receipt.Orders), "pizza", "pizzas"),
		receipt.Duration.Round(time.Millisecond))

	return nil
}

//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) formatServed(order dto.ServedOrder) {
	icon, style := iconWait, warnStyle
	if order.Progress == values.ProgressReady.String() {
		icon, style = iconReady, readyStyle
	}

	id := order.ID
	if len(id) > 8 {
		id = id[:8]
	}

	fmt.Fprintf(f.writer, "%s %s  %-14s %-6s %s\n",
		f.render(style, icon),
		f.render(mutedStyle, id),
		order.Kind,
		f.render(style, order.Progress),
		order.Duration.Round(time.Millisecond))
}

// FormatMenu writes one line per recipe.
//
//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) FormatMenu(menu *dto.MenuResponse) error {
	if len(menu.Recipes) == 0 {
		fmt.Fprintln(f.writer, "Nothing on the menu matches.")
		return nil
	}

	fmt.Fprintln(f.writer, f.render(headingStyle, "MENU"))
	fmt.Fprintln(f.writer, f.render(mutedStyle, separator))
	for _, r := range menu.Recipes {
		fmt.Fprintf(f.writer, "%s %s\n", f.render(tokenStyle, "["+r.Token+"]"), r.Kind)
		fmt.Fprintf(f.writer, "    %s dough, %s sauce\n", strings.ToLower(r.Dough), strings.ToLower(r.Sauce))
		if len(r.Toppings) > 0 {
			fmt.Fprintf(f.writer, "    %s\n", strings.ToLower(strings.Join(r.Toppings, ", ")))
		}
		fmt.Fprintf(f.writer, "    %s\n", f.render(mutedStyle, "bakes "+r.BakeTime.String()))
	}

	return nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
