package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/storekit/shopctl/internal/api"
	"github.com/storekit/shopctl/internal/errors"
	"github.com/storekit/shopctl/internal/session"
	"github.com/storekit/shopctl/internal/tui"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Log in, sign up, and manage your session",
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the storefront",
	Long: `Log in to the storefront with an existing account.

The bearer token returned by the API is stored under the shopctl home
directory and attached to every subsequent request until you log out.

Examples:
  shopctl auth login --role customer --email you@example.com --password secret
  shopctl auth login --role business`,
	RunE: func(cmd *cobra.Command, args []string) error {
		roleStr, _ := cmd.Flags().GetString("role")
		role := session.ParseRole(roleStr)
		if !role.Valid() {
			return fmt.Errorf("--role must be one of business, customer, superuser")
		}

		return runLogin(cmd.Context(), role)
	},
}

// runLogin drives the login flow for a role, from flags when given and
// the interactive form otherwise, then persists the resulting token.
func runLogin(ctx context.Context, role session.Role) error {
	email := flagAuthEmail
	password := flagAuthPassword

	if email == "" || password == "" {
		if !tui.ShouldPrompt() {
			return fmt.Errorf("--email and --password are required when not running interactively")
		}
		answers, err := tui.LoginForm()
		if err != nil {
			return err
		}
		email = answers.Email
		password = answers.Password
	}

	var (
		resp *api.AuthResponse
		err  error
	)
	switch role {
	case session.RoleBusiness:
		resp, err = app.Client.BusinessLogin(ctx, email, password)
	case session.RoleSuperuser:
		resp, err = app.Client.SuperuserLogin(ctx, email, password)
	default:
		resp, err = app.Client.CustomerLogin(ctx, email, password)
	}
	if err != nil {
		// State stays untouched on failed login.
		return errors.Wrap(errors.ErrCodeAuthLoginFailed, "login failed", err)
	}

	return finishLogin(resp, role)
}

// finishLogin applies the credentials to the session container and
// performs the persistence effect.
func finishLogin(resp *api.AuthResponse, role session.Role) error {
	app.Session.SetCredentials(session.User{
		ID:    resp.User.ID,
		Name:  resp.User.Name,
		Email: resp.User.Email,
	}, resp.Token, role)

	if err := app.Store.Save(resp.Token); err != nil {
		return errors.Wrap(errors.ErrCodeAuthTokenStore, "logged in, but saving the token failed", err)
	}

	app.Logger.Info("logged in", "role", role, "user_id", resp.User.ID)
	fmt.Printf("Logged in as %s (%s).\n", resp.User.Name, role)

	return nil
}

var authSignupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create a new account",
	Long: `Create a new customer or business account.

After signup you are logged in automatically.

Examples:
  shopctl auth signup --role customer
  shopctl auth signup --role business`,
	RunE: func(cmd *cobra.Command, args []string) error {
		roleStr, _ := cmd.Flags().GetString("role")
		role := session.ParseRole(roleStr)

		switch role {
		case session.RoleCustomer:
			return runCustomerSignup(cmd.Context())
		case session.RoleBusiness:
			return runBusinessSignup(cmd.Context())
		case session.RoleSuperuser:
			return fmt.Errorf("superuser accounts cannot be created from the client")
		default:
			return fmt.Errorf("--role must be one of business, customer")
		}
	},
}

func runCustomerSignup(ctx context.Context) error {
	if !tui.ShouldPrompt() {
		return fmt.Errorf("signup requires an interactive terminal")
	}

	req, err := tui.CustomerSignupForm()
	if err != nil {
		return err
	}

	resp, err := app.Client.CustomerSignup(ctx, *req)
	if err != nil {
		return errors.Wrap(errors.ErrCodeAuthSignupFailed, "signup failed", err)
	}

	return finishLogin(resp, session.RoleCustomer)
}

func runBusinessSignup(ctx context.Context) error {
	if !tui.ShouldPrompt() {
		return fmt.Errorf("signup requires an interactive terminal")
	}

	req, err := tui.BusinessSignupForm()
	if err != nil {
		return err
	}

	resp, err := app.Client.BusinessSignup(ctx, *req)
	if err != nil {
		return errors.Wrap(errors.ErrCodeAuthSignupFailed, "signup failed", err)
	}

	return finishLogin(resp, session.RoleBusiness)
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and forget the stored token",
	RunE: func(cmd *cobra.Command, args []string) error {
		app.Session.Logout()

		if err := app.Store.Clear(); err != nil {
			return err
		}

		fmt.Println("Logged out.")
		return nil
	},
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show authentication status",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !app.Session.Authenticated {
			fmt.Println("Not logged in.")
			fmt.Println("Use 'shopctl auth login' to authenticate.")
			return nil
		}

		fmt.Println("Logged in (token present).")
		if app.Session.Role.Valid() {
			fmt.Printf("Role: %s\n", app.Session.Role)
		} else {
			// Only the token survives a restart; identity and role
			// come back on the next login.
			fmt.Println("Role: unknown for this process — log in again to refresh it.")
		}
		if app.Session.User != nil {
			fmt.Printf("User: %s <%s>\n", app.Session.User.Name, app.Session.User.Email)
		}
		return nil
	},
}

var (
	flagAuthEmail    string
	flagAuthPassword string
)

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authSignupCmd)
	authCmd.AddCommand(authLogoutCmd)
	authCmd.AddCommand(authStatusCmd)

	authLoginCmd.Flags().String("role", "customer", "account role (business, customer, superuser)")
	authLoginCmd.Flags().StringVar(&flagAuthEmail, "email", "", "account email")
	authLoginCmd.Flags().StringVar(&flagAuthPassword, "password", "", "account password")

	authSignupCmd.Flags().String("role", "customer", "account role (business, customer)")
}
