package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/storekit/shopctl/internal/cart"
	"github.com/storekit/shopctl/internal/session"
	"github.com/storekit/shopctl/internal/tui"
)

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Open the interactive storefront",
	Long: `Browse the catalog and build a cart interactively.

The cart lives in memory for the duration of the session. Checking out
pushes it to the storefront API, collects a shipping address and
payment method, and places the order.

Keys:
  ↑/↓      move
  enter    add the selected product to the cart
  c / tab  switch between catalog and cart
  +/-      adjust quantity (cart view)
  d        remove line (cart view)
  x        check out (cart view)
  q        quit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if err := requireRole(ctx, session.RoleCustomer); err != nil {
			return err
		}

		if !tui.IsInteractive() {
			return fmt.Errorf("the storefront requires an interactive terminal")
		}

		// One shop session, one in-memory cart.
		c := cart.New()

		checkout, err := tui.RunShop(app.Client, c)
		if err != nil {
			return err
		}

		if !checkout {
			if c.Len() > 0 {
				fmt.Printf("Left %d item(s) behind — the session cart is not saved.\n", c.Len())
			}
			return nil
		}

		if err := pushCart(ctx, c); err != nil {
			return err
		}

		return runCheckout(ctx, c)
	},
}

func init() {
	rootCmd.AddCommand(shopCmd)
}
