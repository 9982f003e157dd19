package api

import (
	"context"
)

// Business represents a registered business account as seen by a superuser
type Business struct {
	ID               string `json:"_id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	BusinessName     string `json:"businessName"`
	BusinessCategory string `json:"businessCategory"`
	Status           string `json:"status"`
}

// Customer represents a registered customer account as seen by a superuser
type Customer struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Status string `json:"status"`
}

// ListBusinesses retrieves all registered businesses (superuser only)
func (c *Client) ListBusinesses(ctx context.Context) ([]Business, error) {
	resp, err := c.doRequest(ctx, "GET", "/superUser/businesses", nil)
	if err != nil {
		return nil, err
	}

	var businesses []Business
	if err := parseResponse(resp, &businesses); err != nil {
		return nil, err
	}

	return businesses, nil
}

// ListCustomers retrieves all registered customers (superuser only)
func (c *Client) ListCustomers(ctx context.Context) ([]Customer, error) {
	resp, err := c.doRequest(ctx, "GET", "/superUser/customers", nil)
	if err != nil {
		return nil, err
	}

	var customers []Customer
	if err := parseResponse(resp, &customers); err != nil {
		return nil, err
	}

	return customers, nil
}
