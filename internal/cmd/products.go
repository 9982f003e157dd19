package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/storekit/shopctl/internal/api"
	"github.com/storekit/shopctl/internal/session"
	"github.com/storekit/shopctl/internal/tui"
	"github.com/storekit/shopctl/internal/ux"
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Manage your product listings (business)",
	Long: `Manage the products your business offers in the storefront.

Examples:
  shopctl products list
  shopctl products add --name Mug --price 9.99 --stock 20
  shopctl products update 64a1f0c2
  shopctl products delete 64a1f0c2`,
}

var productsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your products",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if err := requireRole(ctx, session.RoleBusiness); err != nil {
			return err
		}

		products, err := app.Client.ListBusinessProducts(ctx)
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
			fmt.Println("No products yet. Add one with 'shopctl products add'.")
			return nil
		}

		table := ux.NewTable("ID", "NAME", "PRICE", "STOCK")
		for _, p := range products {
			table.AddRow(p.ID, p.Name, ux.Money(p.Price), strconv.Itoa(p.Stock))
		}
		fmt.Print(table.Render())

		return nil
	},
}

var productsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new product",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if err := requireRole(ctx, session.RoleBusiness); err != nil {
			return err
		}

		req, err := productRequestFromFlags(cmd)
		if err != nil {
			return err
		}
		if req == nil {
			if !tui.ShouldPrompt() {
				return fmt.Errorf("--name, --price and --stock are required when not running interactively")
			}
			req, err = tui.ProductForm(nil)
			if err != nil {
				return err
			}
		}

		product, err := app.Client.AddProduct(ctx, *req)
		if err != nil {
			return err
		}

		app.Logger.Info("product added", "product_id", product.ID)
		fmt.Printf("Added %s (%s).\n", product.Name, product.ID)
		return nil
	},
}

var productsUpdateCmd = &cobra.Command{
	Use:   "update <product-id>",
	Short: "Update an existing product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if err := requireRole(ctx, session.RoleBusiness); err != nil {
			return err
		}

		productID := args[0]

		req, err := productRequestFromFlags(cmd)
		if err != nil {
			return err
		}
		if req == nil {
			if !tui.ShouldPrompt() {
				return fmt.Errorf("--name, --price and --stock are required when not running interactively")
			}

			// Pre-fill the form from the current listing.
			existing, err := findBusinessProduct(cmd, productID)
			if err != nil {
				return err
			}
			req, err = tui.ProductForm(existing)
			if err != nil {
				return err
			}
		}

		product, err := app.Client.UpdateProduct(ctx, productID, *req)
		if err != nil {
			return err
		}

		fmt.Printf("Updated %s.\n", product.Name)
		return nil
	},
}

var productsDeleteCmd = &cobra.Command{
	Use:   "delete <product-id>",
	Short: "Delete a product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if err := requireRole(ctx, session.RoleBusiness); err != nil {
			return err
		}

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			if !tui.ShouldPrompt() {
				return fmt.Errorf("pass --yes to delete without confirmation")
			}
			confirmed, err := tui.PromptForConfirmation(
				fmt.Sprintf("Delete product %s?", args[0]), false)
			if err != nil {
				return err
			}
			if !confirmed {
				fmt.Println("Aborted.")
				return nil
			}
		}

		if err := app.Client.DeleteProduct(ctx, args[0]); err != nil {
			return err
		}

		fmt.Println("Deleted.")
		return nil
	},
}

// productRequestFromFlags builds a product request when the name,
// price, and stock flags are all present; nil means "use the form".
func productRequestFromFlags(cmd *cobra.Command) (*api.ProductRequest, error) {
	name, _ := cmd.Flags().GetString("name")
	if name == "" {
		return nil, nil
	}

	price, _ := cmd.Flags().GetFloat64("price")
	if price < 0 {
		return nil, fmt.Errorf("--price cannot be negative")
	}
	stock, _ := cmd.Flags().GetInt("stock")
	if stock < 0 {
		return nil, fmt.Errorf("--stock cannot be negative")
	}
	description, _ := cmd.Flags().GetString("description")
	image, _ := cmd.Flags().GetString("image")

	return &api.ProductRequest{
		Name:        name,
		Price:       price,
		Description: description,
		Stock:       stock,
		Image:       image,
	}, nil
}

func findBusinessProduct(cmd *cobra.Command, productID string) (*api.ProductRequest, error) {
	products, err := app.Client.ListBusinessProducts(cmd.Context())
	if err != nil {
		return nil, err
	}

	for _, p := range products {
		if p.ID == productID {
			return &api.ProductRequest{
				Name:        p.Name,
				Price:       p.Price,
				Description: p.Description,
				Stock:       p.Stock,
				Image:       p.Image,
			}, nil
		}
	}

	return nil, fmt.Errorf("product %s not found in your listings", productID)
}

func addProductFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "product name")
	cmd.Flags().Float64("price", 0, "product price")
	cmd.Flags().Int("stock", 0, "units in stock")
	cmd.Flags().String("description", "", "product description")
	cmd.Flags().String("image", "", "product image URL")
}

func init() {
	rootCmd.AddCommand(productsCmd)
	productsCmd.AddCommand(productsListCmd)
	productsCmd.AddCommand(productsAddCmd)
	productsCmd.AddCommand(productsUpdateCmd)
	productsCmd.AddCommand(productsDeleteCmd)

	addProductFlags(productsAddCmd)
	addProductFlags(productsUpdateCmd)
	productsDeleteCmd.Flags().Bool("yes", false, "skip the confirmation prompt")
}
