package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/storekit/shopctl/internal/session"
	"github.com/storekit/shopctl/internal/ux"
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Show your order history",
	Long: `List the orders you have placed, newest first as returned by the API.

Examples:
  shopctl orders
  shopctl orders -o json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if err := requireRole(ctx, session.RoleCustomer); err != nil {
			return err
		}

		orders, err := app.Client.ListOrders(ctx)
		if err != nil {
			return err
		}

		if app.Config.Format != "text" && app.Config.Format != "" {
			formatter, err := newFormatter()
			if err != nil {
				return err
			}
			return formatter.Format(orders)
		}

		if len(orders) == 0 {
			fmt.Println("No orders yet.")
			return nil
		}

		table := ux.NewTable("ID", "ITEMS", "TOTAL", "STATUS", "PLACED")
		for _, o := range orders {
			placed := ""
			if !o.CreatedAt.IsZero() {
				placed = o.CreatedAt.Format("2006-01-02 15:04")
			}
			table.AddRow(o.ID, strconv.Itoa(len(o.Products)), ux.Money(o.Total), o.Status, placed)
		}
		fmt.Print(table.Render())

		return nil
	},
}

func init() {
	rootCmd.AddCommand(ordersCmd)
}
