package cmd

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storekit/shopctl/internal/api"
	"github.com/storekit/shopctl/internal/cart"
	"github.com/storekit/shopctl/internal/config"
	"github.com/storekit/shopctl/internal/errors"
	"github.com/storekit/shopctl/internal/log"
	"github.com/storekit/shopctl/internal/session"
)

// testApp wires an App against the given server for command tests.
func testApp(t *testing.T, serverURL string) *App {
	t.Helper()

	home := t.TempDir()
	client := api.NewClient(serverURL)

	a := &App{
		Config:  config.Default(),
		Client:  client,
		Session: session.New(),
		Store:   session.NewFileStore(home),
		Logger:  log.New(log.Config{Level: log.LevelError, Format: log.FormatText, Output: log.OutputStderr()}),
		HomeDir: home,
	}

	prev := app
	app = a
	t.Cleanup(func() { app = prev })

	return a
}

func TestPullCart_HydratesContainerFromServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/customer/cart":
			_ = json.NewEncoder(w).Encode(api.CartResponse{Products: []api.CartEntry{
				{ProductID: "p1", Quantity: 3},
				{ProductID: "p2", Quantity: 1},
			}})
		case "/customer/products":
			_ = json.NewEncoder(w).Encode([]api.Product{
				{ID: "p1", Name: "Mug", Price: 10},
				{ID: "p2", Name: "Teapot", Price: 25},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	testApp(t, server.URL)

	c, err := pullCart(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 3, c.Quantity("p1"))
	assert.Equal(t, 1, c.Quantity("p2"))
	assert.Equal(t, 55.0, c.Total())
}

func TestPushCart_SendsContainerContents(t *testing.T) {
	var got api.CartRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "POST", r.Method)
		require.Equal(t, "/customer/cart", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	testApp(t, server.URL)

	c := cart.New()
	c.Add(cart.Item{ProductID: "p1", Price: 10})
	c.Add(cart.Item{ProductID: "p1", Price: 10})
	c.Add(cart.Item{ProductID: "p2", Price: 25})

	require.NoError(t, pushCart(context.Background(), c))

	require.Len(t, got.Products, 2)
	assert.Equal(t, api.CartEntry{ProductID: "p1", Quantity: 2}, got.Products[0])
	assert.Equal(t, api.CartEntry{ProductID: "p2", Quantity: 1}, got.Products[1])
}

func TestRequireRole_NotLoggedIn(t *testing.T) {
	testApp(t, "http://unused")
	t.Setenv("CI", "true") // force non-interactive so no login form runs

	err := requireRole(context.Background(), session.RoleCustomer)
	require.Error(t, err)

	var shopErr *errors.ShopError
	require.True(t, stderrors.As(err, &shopErr))
	assert.Equal(t, errors.ErrCodeAuthNotLoggedIn, shopErr.Code)
}

func TestRequireRole_WrongRole(t *testing.T) {
	a := testApp(t, "http://unused")
	a.Session.SetCredentials(session.User{ID: "u-1"}, "tok", session.RoleBusiness)

	err := requireRole(context.Background(), session.RoleCustomer)
	require.Error(t, err)

	var shopErr *errors.ShopError
	require.True(t, stderrors.As(err, &shopErr))
	assert.Equal(t, errors.ErrCodeAuthRoleMismatch, shopErr.Code)
}

func TestRequireRole_TokenOnlySessionAfterRestart(t *testing.T) {
	a := testApp(t, "http://unused")
	a.Session = session.Hydrate("restored-token")

	// The persisted token restores authentication but not the role, so
	// role-gated commands refuse until the next login.
	err := requireRole(context.Background(), session.RoleCustomer)
	require.Error(t, err)

	var shopErr *errors.ShopError
	require.True(t, stderrors.As(err, &shopErr))
	assert.Equal(t, errors.ErrCodeAuthRoleMismatch, shopErr.Code)
}

func TestRequireRole_Allow(t *testing.T) {
	a := testApp(t, "http://unused")
	a.Session.SetCredentials(session.User{ID: "u-1"}, "tok", session.RoleCustomer)

	assert.NoError(t, requireRole(context.Background(), session.RoleCustomer))
}

func TestFinishLogin_SetsSessionAndPersistsToken(t *testing.T) {
	a := testApp(t, "http://unused")

	err := finishLogin(&api.AuthResponse{
		User:  api.User{ID: "u-1", Name: "Ada", Email: "ada@example.com"},
		Token: "tok-new",
	}, session.RoleCustomer)
	require.NoError(t, err)

	assert.True(t, a.Session.Authenticated)
	assert.Equal(t, session.RoleCustomer, a.Session.Role)
	assert.Equal(t, "tok-new", a.Session.Token)

	stored, err := a.Store.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-new", stored)
}

func TestLogout_ClearsSessionAndStore(t *testing.T) {
	a := testApp(t, "http://unused")
	require.NoError(t, finishLogin(&api.AuthResponse{
		User:  api.User{ID: "u-1"},
		Token: "tok",
	}, session.RoleCustomer))

	require.NoError(t, authLogoutCmd.RunE(authLogoutCmd, nil))

	assert.False(t, a.Session.Authenticated)
	assert.Empty(t, a.Session.Token)

	stored, err := a.Store.Load()
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestConfigValue_UnknownKey(t *testing.T) {
	cfg := config.Default()
	_, err := configValue(&cfg, "nope")
	assert.Error(t, err)
}

func TestCartItemFromProduct(t *testing.T) {
	item := cartItemFromProduct(api.Product{ID: "p1", Name: "Mug", Price: 10, Image: "mug.png"})

	assert.Equal(t, "p1", item.ProductID)
	assert.Equal(t, "Mug", item.Name)
	assert.Equal(t, 10.0, item.Price)
	assert.Equal(t, "mug.png", item.Image)
	// Quantity is assigned by the container on Add, not here.
	assert.Zero(t, item.Quantity)
}
