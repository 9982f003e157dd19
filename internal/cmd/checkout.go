package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/storekit/shopctl/internal/api"
	"github.com/storekit/shopctl/internal/cart"
	"github.com/storekit/shopctl/internal/errors"
	"github.com/storekit/shopctl/internal/session"
	"github.com/storekit/shopctl/internal/tui"
	"github.com/storekit/shopctl/internal/ux"
)

var checkoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Place an order from your cart",
	Long: `Place an order from the cart stored on the storefront API.

The shipping address and payment method are collected interactively,
or from flags when all of them are given.

Examples:
  shopctl checkout
  shopctl checkout --street "1 Main St" --city Springfield --state IL --zip 62704 --payment card`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if err := requireRole(ctx, session.RoleCustomer); err != nil {
			return err
		}

		c, err := pullCart(ctx)
		if err != nil {
			return err
		}

		return runCheckout(ctx, c)
	},
}

// runCheckout collects the checkout fields and places the order for
// the given cart, clearing it on success.
func runCheckout(ctx context.Context, c *cart.Cart) error {
	if c.Len() == 0 {
		return errors.New(errors.ErrCodeCartEmpty, "your cart is empty").
			WithSuggestions("add something with 'shopctl cart add' or 'shopctl shop'")
	}

	fmt.Printf("Checking out %d item(s), total %s.\n", c.Len(), ux.Money(c.Total()))

	req, err := checkoutRequest()
	if err != nil {
		return err
	}

	order, err := app.Client.Checkout(ctx, *req)
	if err != nil {
		// The cart is left as it was; nothing is cleared on failure.
		return errors.Wrap(errors.ErrCodeCartCheckout, "checkout failed", err)
	}

	// Successful checkout empties the cart.
	c.Clear()

	app.Logger.Info("order placed", "order_id", order.ID, "total", order.Total)
	fmt.Printf("Order %s placed. Total: %s\n", order.ID, ux.Money(order.Total))

	return nil
}

func checkoutRequest() (*api.CheckoutRequest, error) {
	if flagStreet != "" && flagCity != "" && flagState != "" && flagZip != "" && flagPayment != "" {
		return &api.CheckoutRequest{
			ShippingAddress: api.ShippingAddress{
				Street:  flagStreet,
				City:    flagCity,
				State:   flagState,
				ZipCode: flagZip,
			},
			PaymentMethod: flagPayment,
		}, nil
	}

	if !tui.ShouldPrompt() {
		return nil, fmt.Errorf("checkout requires --street, --city, --state, --zip and --payment when not running interactively")
	}

	return tui.CheckoutForm()
}

var (
	flagStreet  string
	flagCity    string
	flagState   string
	flagZip     string
	flagPayment string
)

func init() {
	rootCmd.AddCommand(checkoutCmd)

	checkoutCmd.Flags().StringVar(&flagStreet, "street", "", "shipping street")
	checkoutCmd.Flags().StringVar(&flagCity, "city", "", "shipping city")
	checkoutCmd.Flags().StringVar(&flagState, "state", "", "shipping state")
	checkoutCmd.Flags().StringVar(&flagZip, "zip", "", "shipping ZIP code")
	checkoutCmd.Flags().StringVar(&flagPayment, "payment", "", "payment method (card, paypal, cod)")
}
