package main

import (
	"fmt"

	"github.com/reglet-dev/pizzeria/internal/application/dto"
	"github.com/spf13/cobra"
)

// orderCmd represents the order command
var orderCmd = &cobra.Command{
	Use:   "order [token...]",
	Short: "Order one or more pizzas",
	Long: `Order pizzas by their menu token and watch the kitchen prepare them.

Without tokens you are asked what you would like until you pick something on
the menu. With tokens every one of them is served in turn; if any token is
not on the menu nothing is prepared.

Examples:
  pizzeria order                 Ask for an order
  pizzeria order m c             A margarita, then a creamy bacon
  pizzeria order m --time-scale 0 --format json`,
	RunE: withContainer(runOrder),
}

func init() {
	rootCmd.AddCommand(orderCmd)
}

// runOrder places the orders and prints the receipt.
func runOrder(ctx *CommandContext, cmd *cobra.Command, args []string) error {
	ctx.Logger.Debug("taking orders", "tokens", args, "time_scale", commonOpts.TimeScale)

	receipt, err := ctx.Container.OrderService().PlaceOrders(ctx.Context, dto.PlaceOrderRequest{
		Tokens:  args,
		Kitchen: commonOpts.Kitchen(),
	})
	if err != nil {
		return err
	}

	formatter, err := ctx.Container.FormatterFactory().Create(
		ctx.Settings.Format, cmd.OutOrStdout(), commonOpts.FormatterOptions())
	if err != nil {
		return err
	}
	if err := formatter.FormatReceipt(receipt); err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	return nil
}
