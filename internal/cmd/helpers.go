package cmd

import (
	"context"
	"fmt"

	"github.com/storekit/shopctl/internal/api"
	"github.com/storekit/shopctl/internal/cart"
	"github.com/storekit/shopctl/internal/guard"
	"github.com/storekit/shopctl/internal/session"
	"github.com/storekit/shopctl/internal/tui"
	"github.com/storekit/shopctl/internal/ux"
)

// requireRole gates a command behind the route guard. The CLI analog
// of "redirect to login" is an inline login form when the terminal is
// interactive; "redirect home" stays an error so the user explicitly
// re-authenticates with the right role.
func requireRole(ctx context.Context, required session.Role) error {
	switch guard.Decide(app.Session, required) {
	case guard.Allow:
		return nil

	case guard.RedirectLogin:
		if !tui.ShouldPrompt() {
			return guard.Check(app.Session, required)
		}
		fmt.Printf("You need to log in as a %s first.\n", required)
		return runLogin(ctx, required)

	default:
		return guard.Check(app.Session, required)
	}
}

// newFormatter builds the output formatter from the configured format
func newFormatter() (ux.Formatter, error) {
	return ux.NewFormatter(app.Config.Format, nil)
}

// pullCart loads the server-side cart into a cart container, resolving
// names and prices from the catalog so totals can be derived locally.
// Hydration goes through the container's own operations to keep its
// invariants intact.
func pullCart(ctx context.Context) (*cart.Cart, error) {
	serverCart, err := app.Client.GetCart(ctx)
	if err != nil {
		return nil, err
	}

	products, err := app.Client.ListCatalog(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]api.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	c := cart.New()
	for _, entry := range serverCart.Products {
		p := byID[entry.ProductID]
		c.Add(cart.Item{
			ProductID: entry.ProductID,
			Name:      p.Name,
			Price:     p.Price,
			Image:     p.Image,
		})
		if entry.Quantity != 1 {
			c.UpdateQuantity(entry.ProductID, entry.Quantity)
		}
	}

	return c, nil
}

// cartItemFromProduct converts a catalog product into a cart line
func cartItemFromProduct(p api.Product) cart.Item {
	return cart.Item{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
	}
}

// pushCart replaces the server-side cart with the container's contents
func pushCart(ctx context.Context, c *cart.Cart) error {
	items := c.Items()
	entries := make([]api.CartEntry, 0, len(items))
	for _, item := range items {
		entries = append(entries, api.CartEntry{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	return app.Client.UpdateCart(ctx, api.CartRequest{Products: entries})
}
