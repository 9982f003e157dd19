package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoRequest_AttachesBearerToken(t *testing.T) {
	var gotAuth, gotRequestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.SetToken("tok-123")

	_, err := client.ListCatalog(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestDoRequest_NoTokenNoHeader(t *testing.T) {
	var sawAuthHeader bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawAuthHeader = r.Header["Authorization"]
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.ListCatalog(context.Background())
	require.NoError(t, err)

	assert.False(t, sawAuthHeader)
}

func TestCustomerLogin_SetsToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/customer/login", r.URL.Path)

		var req LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ada@example.com", req.Email)

		_ = json.NewEncoder(w).Encode(AuthResponse{
			User:  User{ID: "u-1", Name: "Ada", Email: req.Email},
			Token: "tok-login",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	resp, err := client.CustomerLogin(context.Background(), "ada@example.com", "secret")
	require.NoError(t, err)

	assert.Equal(t, "tok-login", resp.Token)
	assert.Equal(t, "u-1", resp.User.ID)
	// The token is attached to subsequent requests automatically.
	assert.Equal(t, "tok-login", client.Token)
}

func TestBusinessSignup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/business/signup", r.URL.Path)

		var req BusinessSignupRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Ada's Teas", req.BusinessName)

		_ = json.NewEncoder(w).Encode(AuthResponse{
			User:  User{ID: "b-1", Name: req.Name, Email: req.Email},
			Token: "tok-biz",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	resp, err := client.BusinessSignup(context.Background(), BusinessSignupRequest{
		Name:             "Ada",
		Email:            "ada@example.com",
		Password:         "secret",
		BusinessName:     "Ada's Teas",
		BusinessCategory: "food",
	})
	require.NoError(t, err)
	assert.Equal(t, "tok-biz", resp.Token)
}

func TestParseResponse_ServerErrorMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"invalid credentials"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.CustomerLogin(context.Background(), "ada@example.com", "wrong")
	require.Error(t, err)
	assert.EqualError(t, err, "invalid credentials")
}

func TestParseResponse_ErrorFieldFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"email already registered"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.CustomerSignup(context.Background(), CustomerSignupRequest{Email: "dup@example.com"})
	require.Error(t, err)
	assert.EqualError(t, err, "email already registered")
}

func TestParseResponse_RawBodyFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`boom`))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.ListCatalog(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
	assert.Contains(t, err.Error(), "boom")
}

func TestProductCRUD_Paths(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method + " " + r.URL.Path {
		case "GET /business/products":
			_ = json.NewEncoder(w).Encode([]Product{{ID: "p-1", Name: "Mug", Price: 10}})
		case "POST /business/products":
			var req ProductRequest
			_ = json.NewDecoder(r.Body).Decode(&req)
			_ = json.NewEncoder(w).Encode(Product{ID: "p-2", Name: req.Name, Price: req.Price})
		case "PUT /business/products/p-1":
			var req ProductRequest
			_ = json.NewDecoder(r.Body).Decode(&req)
			_ = json.NewEncoder(w).Encode(Product{ID: "p-1", Name: req.Name, Price: req.Price})
		case "DELETE /business/products/p-1":
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	products, err := client.ListBusinessProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Mug", products[0].Name)

	created, err := client.AddProduct(ctx, ProductRequest{Name: "Teapot", Price: 25})
	require.NoError(t, err)
	assert.Equal(t, "p-2", created.ID)

	updated, err := client.UpdateProduct(ctx, "p-1", ProductRequest{Name: "Big Mug", Price: 12})
	require.NoError(t, err)
	assert.Equal(t, "Big Mug", updated.Name)

	require.NoError(t, client.DeleteProduct(ctx, "p-1"))
}

func TestCheckout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/customer/checkout", r.URL.Path)

		var req CheckoutRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "card", req.PaymentMethod)
		assert.Equal(t, "Springfield", req.ShippingAddress.City)

		_ = json.NewEncoder(w).Encode(Order{ID: "o-1", Total: 42, Status: "placed"})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	order, err := client.Checkout(context.Background(), CheckoutRequest{
		ShippingAddress: ShippingAddress{
			Street:  "1 Main St",
			City:    "Springfield",
			State:   "IL",
			ZipCode: "62704",
		},
		PaymentMethod: "card",
	})
	require.NoError(t, err)
	assert.Equal(t, "o-1", order.ID)
	assert.Equal(t, "placed", order.Status)
}

func TestSuperuserListings(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/superUser/businesses":
			_ = json.NewEncoder(w).Encode([]Business{{ID: "b-1", BusinessName: "Ada's Teas"}})
		case "/superUser/customers":
			_ = json.NewEncoder(w).Encode([]Customer{{ID: "c-1", Name: "Grace"}})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	businesses, err := client.ListBusinesses(ctx)
	require.NoError(t, err)
	require.Len(t, businesses, 1)
	assert.Equal(t, "Ada's Teas", businesses[0].BusinessName)

	customers, err := client.ListCustomers(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "Grace", customers[0].Name)
}

func TestNewClient_DefaultBaseURL(t *testing.T) {
	client := NewClient("")
	assert.Equal(t, DefaultBaseURL, client.BaseURL)
}
