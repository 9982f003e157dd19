package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/storekit/shopctl/internal/session"
	"github.com/storekit/shopctl/internal/ux"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Review registered accounts (superuser)",
	Long: `Read-only listings of the accounts registered with the storefront.

Examples:
  shopctl admin businesses
  shopctl admin customers -o json`,
}

var adminBusinessesCmd = &cobra.Command{
	Use:   "businesses",
	Short: "List registered businesses",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if err := requireRole(ctx, session.RoleSuperuser); err != nil {
			return err
		}

		businesses, err := app.Client.ListBusinesses(ctx)
		if err != nil {
			return err
		}

		if app.Config.Format != "text" && app.Config.Format != "" {
			formatter, err := newFormatter()
			if err != nil {
				return err
			}
			return formatter.Format(businesses)
		}

		if len(businesses) == 0 {
			fmt.Println("No businesses registered.")
			return nil
		}

		table := ux.NewTable("ID", "BUSINESS", "CATEGORY", "EMAIL", "STATUS")
		for _, b := range businesses {
			table.AddRow(b.ID, b.BusinessName, b.BusinessCategory, b.Email, b.Status)
		}
		fmt.Print(table.Render())

		return nil
	},
}

var adminCustomersCmd = &cobra.Command{
	Use:   "customers",
	Short: "List registered customers",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if err := requireRole(ctx, session.RoleSuperuser); err != nil {
			return err
		}

		customers, err := app.Client.ListCustomers(ctx)
		if err != nil {
			return err
		}

		if app.Config.Format != "text" && app.Config.Format != "" {
			formatter, err := newFormatter()
			if err != nil {
				return err
			}
			return formatter.Format(customers)
		}

		if len(customers) == 0 {
			fmt.Println("No customers registered.")
			return nil
		}

		table := ux.NewTable("ID", "NAME", "EMAIL", "STATUS")
		for _, c := range customers {
			table.AddRow(c.ID, c.Name, c.Email, c.Status)
		}
		fmt.Print(table.Render())

		return nil
	},
}

func init() {
	rootCmd.AddCommand(adminCmd)
	adminCmd.AddCommand(adminBusinessesCmd)
	adminCmd.AddCommand(adminCustomersCmd)
}
