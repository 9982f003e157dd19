package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/storekit/shopctl/internal/session"
	"github.com/storekit/shopctl/internal/ux"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse the product catalog",
	Long: `List the products currently available in the storefront.

Examples:
  shopctl catalog
  shopctl catalog -o json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if err := requireRole(ctx, session.RoleCustomer); err != nil {
			return err
		}

		products, err := app.Client.ListCatalog(ctx)
		if err != nil {
			return err
		}

		if app.Config.Format != "text" && app.Config.Format != "" {
			formatter, err := newFormatter()
			if err != nil {
				return err
			}
			return formatter.Format(products)
		}

		if len(products) == 0 {
			fmt.Println("No products available.")
			return nil
		}

		table := ux.NewTable("ID", "NAME", "PRICE", "STOCK")
		for _, p := range products {
			table.AddRow(p.ID, p.Name, ux.Money(p.Price), fmt.Sprintf("%d", p.Stock))
		}
		fmt.Print(table.Render())

		return nil
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}
