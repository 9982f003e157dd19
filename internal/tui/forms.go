package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/storekit/shopctl/internal/api"
)

// LoginAnswers holds the fields collected by the login form
type LoginAnswers struct {
	Email    string
	Password string
}

// LoginForm collects login credentials interactively
func LoginForm() (*LoginAnswers, error) {
	var answers LoginAnswers

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Placeholder("you@example.com").
				Validate(requireValue("email")).
				Value(&answers.Email),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Validate(requireValue("password")).
				Value(&answers.Password),
		),
	)

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("login form failed: %w", err)
	}

	return &answers, nil
}

// CustomerSignupForm collects the customer signup fields interactively
func CustomerSignupForm() (*api.CustomerSignupRequest, error) {
	var req api.CustomerSignupRequest

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Validate(requireValue("name")).
				Value(&req.Name),
			huh.NewInput().
				Title("Email").
				Placeholder("you@example.com").
				Validate(requireValue("email")).
				Value(&req.Email),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Validate(requireValue("password")).
				Value(&req.Password),
		),
	)

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("signup form failed: %w", err)
	}

	return &req, nil
}

// BusinessSignupForm collects the business signup fields interactively
func BusinessSignupForm() (*api.BusinessSignupRequest, error) {
	var req api.BusinessSignupRequest

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Your name").
				Validate(requireValue("name")).
				Value(&req.Name),
			huh.NewInput().
				Title("Email").
				Placeholder("you@example.com").
				Validate(requireValue("email")).
				Value(&req.Email),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Validate(requireValue("password")).
				Value(&req.Password),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Business name").
				Validate(requireValue("business name")).
				Value(&req.BusinessName),
			huh.NewSelect[string]().
				Title("Business category").
				Options(
					huh.NewOption("Food & Drink", "food"),
					huh.NewOption("Clothing", "clothing"),
					huh.NewOption("Electronics", "electronics"),
					huh.NewOption("Home & Garden", "home"),
					huh.NewOption("Other", "other"),
				).
				Value(&req.BusinessCategory),
		),
	)

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("signup form failed: %w", err)
	}

	return &req, nil
}

// CheckoutForm collects the shipping address and payment method
func CheckoutForm() (*api.CheckoutRequest, error) {
	var req api.CheckoutRequest

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Street").
				Validate(requireValue("street")).
				Value(&req.ShippingAddress.Street),
			huh.NewInput().
				Title("City").
				Validate(requireValue("city")).
				Value(&req.ShippingAddress.City),
			huh.NewInput().
				Title("State").
				Validate(requireValue("state")).
				Value(&req.ShippingAddress.State),
			huh.NewInput().
				Title("ZIP code").
				Validate(requireValue("zip code")).
				Value(&req.ShippingAddress.ZipCode),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Payment method").
				Options(
					huh.NewOption("Credit card", "card"),
					huh.NewOption("PayPal", "paypal"),
					huh.NewOption("Cash on delivery", "cod"),
				).
				Value(&req.PaymentMethod),
		),
	)

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("checkout form failed: %w", err)
	}

	return &req, nil
}

// ProductForm collects product fields, pre-filled from existing for updates
func ProductForm(existing *api.ProductRequest) (*api.ProductRequest, error) {
	var req api.ProductRequest
	price := ""
	stock := ""
	if existing != nil {
		req = *existing
		price = strconv.FormatFloat(existing.Price, 'f', -1, 64)
		stock = strconv.Itoa(existing.Stock)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Product name").
				Validate(requireValue("name")).
				Value(&req.Name),
			huh.NewInput().
				Title("Price").
				Placeholder("9.99").
				Validate(func(s string) error {
					v, err := strconv.ParseFloat(s, 64)
					if err != nil {
						return fmt.Errorf("price must be a number")
					}
					if v < 0 {
						return fmt.Errorf("price cannot be negative")
					}
					return nil
				}).
				Value(&price),
			huh.NewInput().
				Title("Stock").
				Placeholder("10").
				Validate(func(s string) error {
					v, err := strconv.Atoi(s)
					if err != nil {
						return fmt.Errorf("stock must be a whole number")
					}
					if v < 0 {
						return fmt.Errorf("stock cannot be negative")
					}
					return nil
				}).
				Value(&stock),
			huh.NewText().
				Title("Description").
				Value(&req.Description),
			huh.NewInput().
				Title("Image URL").
				Value(&req.Image),
		),
	)

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("product form failed: %w", err)
	}

	req.Price, _ = strconv.ParseFloat(price, 64)
	req.Stock, _ = strconv.Atoi(stock)

	return &req, nil
}

func requireValue(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}
