package api

import (
	"context"
	"fmt"
)

// Product represents a catalog product
type Product struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Stock       int     `json:"stock"`
	Image       string  `json:"image"`
}

// ProductRequest represents a product create or update request
type ProductRequest struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Stock       int     `json:"stock"`
	Image       string  `json:"image"`
}

// ListBusinessProducts retrieves the authenticated business's products
func (c *Client) ListBusinessProducts(ctx context.Context) ([]Product, error) {
	resp, err := c.doRequest(ctx, "GET", "/business/products", nil)
	if err != nil {
		return nil, err
	}

	var products []Product
	if err := parseResponse(resp, &products); err != nil {
		return nil, err
	}

	return products, nil
}

// AddProduct creates a new product for the authenticated business
func (c *Client) AddProduct(ctx context.Context, req ProductRequest) (*Product, error) {
	resp, err := c.doRequest(ctx, "POST", "/business/products", req)
	if err != nil {
		return nil, err
	}

	var product Product
	if err := parseResponse(resp, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

// UpdateProduct updates an existing product
func (c *Client) UpdateProduct(ctx context.Context, productID string, req ProductRequest) (*Product, error) {
	path := fmt.Sprintf("/business/products/%s", productID)
	resp, err := c.doRequest(ctx, "PUT", path, req)
	if err != nil {
		return nil, err
	}

	var product Product
	if err := parseResponse(resp, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

// DeleteProduct deletes a product
func (c *Client) DeleteProduct(ctx context.Context, productID string) error {
	path := fmt.Sprintf("/business/products/%s", productID)
	resp, err := c.doRequest(ctx, "DELETE", path, nil)
	if err != nil {
		return err
	}

	return parseResponse(resp, nil)
}

// ListCatalog retrieves the storefront catalog visible to customers
func (c *Client) ListCatalog(ctx context.Context) ([]Product, error) {
	resp, err := c.doRequest(ctx, "GET", "/customer/products", nil)
	if err != nil {
		return nil, err
	}

	var products []Product
	if err := parseResponse(resp, &products); err != nil {
		return nil, err
	}

	return products, nil
}
