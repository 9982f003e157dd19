package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/storekit/shopctl/internal/api"
	"github.com/storekit/shopctl/internal/config"
	"github.com/storekit/shopctl/internal/log"
	"github.com/storekit/shopctl/internal/session"
)

// App holds the wired-up dependencies shared by all commands. It is
// assembled once in the root command's PersistentPreRunE so that
// subcommands receive explicit state containers instead of reaching
// into globals.
type App struct {
	Config  config.Config
	Client  *api.Client
	Session *session.Session
	Store   session.Store
	Logger  *log.Logger
	HomeDir string
}

var app *App

var (
	flagAPIURL    string
	flagFormat    string
	flagHome      string
	flagVerbose   bool
	flagLogFormat string
)

var rootCmd = &cobra.Command{
	Use:   "shopctl",
	Short: "Terminal storefront client",
	Long: `shopctl is a terminal client for a remote storefront API.
Customers browse the catalog, manage a cart, and place orders;
businesses manage their product listings; superusers review the
registered accounts. All persistence lives on the remote API — the
client keeps only your bearer token between runs.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initApp()
	},
}

// initApp wires configuration, logging, the API client, and the
// session hydrated from the persisted token.
func initApp() error {
	home := flagHome
	if home == "" {
		var err error
		home, err = session.DefaultDir()
		if err != nil {
			return err
		}
	}

	cfg, err := config.Load(home)
	if err != nil {
		return err
	}

	if flagAPIURL != "" {
		cfg.APIURL = flagAPIURL
	}
	if flagFormat != "" {
		cfg.Format = flagFormat
	}
	if flagLogFormat != "" {
		cfg.LogFormat = flagLogFormat
	}

	level := log.ParseLevel(cfg.LogLevel)
	if flagVerbose {
		level = log.LevelDebug
	}
	logger := log.New(log.Config{
		Level:  level,
		Format: log.ParseFormat(cfg.LogFormat),
		Output: log.OutputStderr(),
	})
	log.SetDefaultLogger(logger)

	store := session.NewFileStore(home)
	token, err := store.Load()
	if err != nil {
		return err
	}

	client := api.NewClient(cfg.APIURL)
	client.SetToken(token)

	app = &App{
		Config:  cfg,
		Client:  client,
		Session: session.Hydrate(token),
		Store:   store,
		Logger:  logger,
		HomeDir: home,
	}

	logger.Debug("client initialized",
		"api_url", client.BaseURL,
		"authenticated", app.Session.Authenticated,
	)

	return nil
}

// ExecuteContext runs the root command with the given context
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagAPIURL, "api-url", "", "base URL of the storefront API")
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "o", "", "output format (text, json, yaml)")
	rootCmd.PersistentFlags().StringVar(&flagHome, "home", "", "shopctl home directory (default ~/.shopctl)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "", "log output format (text, json)")
}
