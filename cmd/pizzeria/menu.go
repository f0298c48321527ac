package main

import (
	"fmt"

	"github.com/reglet-dev/pizzeria/internal/application/dto"
	"github.com/spf13/cobra"
)

var (
	menuFilterExpr string
	menuDoughs     []string
	menuToppings   []string
)

// menuCmd represents the menu command
var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Show what can be ordered",
	Long: `List the recipes on the menu, including those loaded with --menu.

Filtering:
  --dough thin                         Recipes on a thin dough
  --topping bacon,ham                  Recipes with bacon OR ham
  --filter 'bake_seconds < 6'          Advanced filtering expression
  --filter '"OREGANO" in toppings'     Fields: token, kind, dough, sauce, toppings, bake_seconds`,
	Args: cobra.NoArgs,
	RunE: withContainer(runMenu),
}

func init() {
	rootCmd.AddCommand(menuCmd)

	menuCmd.Flags().StringVar(&menuFilterExpr, "filter", "", "Advanced filter expression (e.g. \"dough == 'THIN'\")")
	menuCmd.Flags().StringSliceVar(&menuDoughs, "dough", nil, "Only recipes on these doughs (comma-separated)")
	menuCmd.Flags().StringSliceVar(&menuToppings, "topping", nil, "Only recipes with any of these toppings (comma-separated)")
}

// runMenu lists the filtered menu.
func runMenu(ctx *CommandContext, cmd *cobra.Command, _ []string) error {
	resp, err := ctx.Container.MenuService().List(dto.ListMenuRequest{
		FilterExpression: menuFilterExpr,
		Doughs:           menuDoughs,
		Toppings:         menuToppings,
	})
	if err != nil {
		return err
	}

	formatter, err := ctx.Container.FormatterFactory().Create(
		ctx.Settings.Format, cmd.OutOrStdout(), commonOpts.FormatterOptions())
	if err != nil {
		return err
	}
	if err := formatter.FormatMenu(resp); err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	return nil
}
