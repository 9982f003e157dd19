package api

import (
	"context"
)

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CustomerSignupRequest represents a customer signup request
type CustomerSignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// BusinessSignupRequest represents a business signup request
type BusinessSignupRequest struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	BusinessName     string `json:"businessName"`
	BusinessCategory string `json:"businessCategory"`
}

// User represents an account identity
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthResponse represents a login or signup response
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// BusinessLogin authenticates a business account
func (c *Client) BusinessLogin(ctx context.Context, email, password string) (*AuthResponse, error) {
	return c.login(ctx, "/business/login", email, password)
}

// CustomerLogin authenticates a customer account
func (c *Client) CustomerLogin(ctx context.Context, email, password string) (*AuthResponse, error) {
	return c.login(ctx, "/customer/login", email, password)
}

// SuperuserLogin authenticates a superuser account
func (c *Client) SuperuserLogin(ctx context.Context, email, password string) (*AuthResponse, error) {
	return c.login(ctx, "/superUser/login", email, password)
}

func (c *Client) login(ctx context.Context, path, email, password string) (*AuthResponse, error) {
	req := LoginRequest{
		Email:    email,
		Password: password,
	}

	resp, err := c.doRequest(ctx, "POST", path, req)
	if err != nil {
		return nil, err
	}

	var authResp AuthResponse
	if err := parseResponse(resp, &authResp); err != nil {
		return nil, err
	}

	// Automatically attach the token to future requests
	c.SetToken(authResp.Token)

	return &authResp, nil
}

// CustomerSignup creates a new customer account
func (c *Client) CustomerSignup(ctx context.Context, req CustomerSignupRequest) (*AuthResponse, error) {
	resp, err := c.doRequest(ctx, "POST", "/customer/signup", req)
	if err != nil {
		return nil, err
	}

	var authResp AuthResponse
	if err := parseResponse(resp, &authResp); err != nil {
		return nil, err
	}

	c.SetToken(authResp.Token)

	return &authResp, nil
}

// BusinessSignup creates a new business account
func (c *Client) BusinessSignup(ctx context.Context, req BusinessSignupRequest) (*AuthResponse, error) {
	resp, err := c.doRequest(ctx, "POST", "/business/signup", req)
	if err != nil {
		return nil, err
	}

	var authResp AuthResponse
	if err := parseResponse(resp, &authResp); err != nil {
		return nil, err
	}

	c.SetToken(authResp.Token)

	return &authResp, nil
}
