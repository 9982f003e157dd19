package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/storekit/shopctl/internal/session"
	"github.com/storekit/shopctl/internal/ux"
)

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Manage your cart",
	Long: `Inspect and edit the cart stored on the storefront API.

Each subcommand pulls the server cart, applies the change locally, and
pushes the result back.

Examples:
  shopctl cart show
  shopctl cart add 64a1f0c2 --qty 2
  shopctl cart update 64a1f0c2 3
  shopctl cart remove 64a1f0c2
  shopctl cart clear`,
}

var cartShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the cart contents and total",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if err := requireRole(ctx, session.RoleCustomer); err != nil {
			return err
		}

		c, err := pullCart(ctx)
		if err != nil {
			return err
		}

		if app.Config.Format != "text" && app.Config.Format != "" {
			formatter, err := newFormatter()
			if err != nil {
				return err
			}
			return formatter.Format(map[string]any{
				"items": c.Items(),
				"total": c.Total(),
			})
		}

		if c.Len() == 0 {
			fmt.Println("Your cart is empty.")
			return nil
		}

		table := ux.NewTable("ID", "NAME", "PRICE", "QTY", "SUBTOTAL")
		for _, item := range c.Items() {
			table.AddRow(
				item.ProductID,
				item.Name,
				ux.Money(item.Price),
				strconv.Itoa(item.Quantity),
				ux.Money(item.Price*float64(item.Quantity)),
			)
		}
		fmt.Print(table.Render())
		fmt.Printf("\nTotal: %s\n", ux.Money(c.Total()))

		return nil
	},
}

var cartAddCmd = &cobra.Command{
	Use:   "add <product-id>",
	Short: "Add a product to the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		qty, _ := cmd.Flags().GetInt("qty")
		if qty < 1 {
			return fmt.Errorf("--qty must be at least 1")
		}

		if err := requireRole(ctx, session.RoleCustomer); err != nil {
			return err
		}

		c, err := pullCart(ctx)
		if err != nil {
			return err
		}

		productID := args[0]
		products, err := app.Client.ListCatalog(ctx)
		if err != nil {
			return err
		}

		found := false
		for _, p := range products {
			if p.ID == productID {
				found = true
				for i := 0; i < qty; i++ {
					c.Add(cartItemFromProduct(p))
				}
				break
			}
		}
		if !found {
			return fmt.Errorf("product %s not found in the catalog", productID)
		}

		if err := pushCart(ctx, c); err != nil {
			return err
		}

		app.Logger.Debug("cart updated", "product_id", productID, "quantity", c.Quantity(productID))
		fmt.Printf("Added. Cart total: %s\n", ux.Money(c.Total()))
		return nil
	},
}

var cartUpdateCmd = &cobra.Command{
	Use:   "update <product-id> <quantity>",
	Short: "Set the quantity of a cart line",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		qty, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("quantity must be a whole number")
		}
		// The container takes any value verbatim; the positivity guard
		// lives here at the calling edge.
		if qty < 1 {
			return fmt.Errorf("quantity must be at least 1 (use 'cart remove' to delete a line)")
		}

		if err := requireRole(ctx, session.RoleCustomer); err != nil {
			return err
		}

		c, err := pullCart(ctx)
		if err != nil {
			return err
		}

		productID := args[0]
		if c.Quantity(productID) == 0 {
			fmt.Printf("Product %s is not in your cart.\n", productID)
			return nil
		}

		c.UpdateQuantity(productID, qty)

		if err := pushCart(ctx, c); err != nil {
			return err
		}

		fmt.Printf("Updated. Cart total: %s\n", ux.Money(c.Total()))
		return nil
	},
}

var cartRemoveCmd = &cobra.Command{
	Use:   "remove <product-id>",
	Short: "Remove a product from the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if err := requireRole(ctx, session.RoleCustomer); err != nil {
			return err
		}

		c, err := pullCart(ctx)
		if err != nil {
			return err
		}

		// Removing an absent line is a silent no-op, mirroring the container.
		c.Remove(args[0])

		if err := pushCart(ctx, c); err != nil {
			return err
		}

		fmt.Printf("Removed. Cart total: %s\n", ux.Money(c.Total()))
		return nil
	},
}

var cartClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the cart",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if err := requireRole(ctx, session.RoleCustomer); err != nil {
			return err
		}

		c, err := pullCart(ctx)
		if err != nil {
			return err
		}

		c.Clear()

		if err := pushCart(ctx, c); err != nil {
			return err
		}

		fmt.Println("Cart cleared.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cartCmd)
	cartCmd.AddCommand(cartShowCmd)
	cartCmd.AddCommand(cartAddCmd)
	cartCmd.AddCommand(cartUpdateCmd)
	cartCmd.AddCommand(cartRemoveCmd)
	cartCmd.AddCommand(cartClearCmd)

	cartAddCmd.Flags().Int("qty", 1, "how many to add")
}
