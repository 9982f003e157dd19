package api

import (
	"context"
	"time"
)

// CartEntry is one product reference in the server-side cart
type CartEntry struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CartRequest represents a server cart replacement request
type CartRequest struct {
	Products []CartEntry `json:"products"`
}

// CartResponse represents the server-side cart contents
type CartResponse struct {
	Products []CartEntry `json:"products"`
}

// ShippingAddress is the delivery address collected at checkout
type ShippingAddress struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}

// CheckoutRequest represents an order placement request
type CheckoutRequest struct {
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string          `json:"paymentMethod"`
}

// Order represents a past order
type Order struct {
	ID        string      `json:"_id"`
	Products  []CartEntry `json:"products"`
	Total     float64     `json:"total"`
	Status    string      `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
}

// GetCart retrieves the server-side cart
func (c *Client) GetCart(ctx context.Context) (*CartResponse, error) {
	resp, err := c.doRequest(ctx, "GET", "/customer/cart", nil)
	if err != nil {
		return nil, err
	}

	var cartResp CartResponse
	if err := parseResponse(resp, &cartResp); err != nil {
		return nil, err
	}

	return &cartResp, nil
}

// UpdateCart replaces the server-side cart contents
func (c *Client) UpdateCart(ctx context.Context, req CartRequest) error {
	resp, err := c.doRequest(ctx, "POST", "/customer/cart", req)
	if err != nil {
		return err
	}

	return parseResponse(resp, nil)
}

// Checkout places an order from the current cart
func (c *Client) Checkout(ctx context.Context, req CheckoutRequest) (*Order, error) {
	resp, err := c.doRequest(ctx, "POST", "/customer/checkout", req)
	if err != nil {
		return nil, err
	}

	var order Order
	if err := parseResponse(resp, &order); err != nil {
		return nil, err
	}

	return &order, nil
}

// ListOrders retrieves the authenticated customer's order history
func (c *Client) ListOrders(ctx context.Context) ([]Order, error) {
	resp, err := c.doRequest(ctx, "GET", "/customer/orders", nil)
	if err != nil {
		return nil, err
	}

	var orders []Order
	if err := parseResponse(resp, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}
