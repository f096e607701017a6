// Package cli implements the freeconnect terminal client. Commands map to
// the marketplace's views; role-gated views consult the Guard before any
// network call, the same checks the web client runs before navigation.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	freeconnect "github.com/freeconnect/freeconnect-go"
	"github.com/freeconnect/freeconnect-go/store"
)

var (
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	styleErr   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	styleWarn  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	styleFaint = lipgloss.NewStyle().Faint(true)
)

// App wires the SDK pieces together for the lifetime of one CLI invocation.
type App struct {
	cfg         Config
	store       freeconnect.CredentialStore
	closeStore  func() error
	broadcaster *freeconnect.SessionBroadcaster
	auth        *freeconnect.Authenticator
	api         *freeconnect.Client
	guard       *freeconnect.Guard
	routes      freeconnect.RouteTable
	verbose     bool
}

// ExecuteContext runs the CLI.
func ExecuteContext(ctx context.Context) error {
	app := &App{}

	var configPath string
	var apiBase string

	root := &cobra.Command{
		Use:           "freeconnect",
		Short:         "FreeConnect marketplace client",
		Long:          "Terminal client for the FreeConnect freelance marketplace: manage your session, browse projects, submit proposals, and administer users.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.init(cmd.Context(), configPath, apiBase)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return app.close()
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.freeconnect.yaml)")
	root.PersistentFlags().StringVar(&apiBase, "api-base", "", "backend base URL (overrides config)")
	root.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "log request details")

	root.AddCommand(
		app.loginCommand(),
		app.registerCommand(),
		app.logoutCommand(),
		app.whoamiCommand(),
		app.projectsCommand(),
		app.myProjectsCommand(),
		app.freelancerProjectsCommand(),
		app.proposalsCommand(),
		app.skillsCommand(),
		app.notificationsCommand(),
		app.adminCommand(),
	)

	err := root.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, styleErr.Render("error: ")+err.Error())
	}
	return err
}

func (a *App) init(ctx context.Context, configPath, apiBase string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if apiBase != "" {
		cfg.APIBase = apiBase
	}
	a.cfg = cfg

	a.store, a.closeStore = a.openStore(ctx)
	a.broadcaster = freeconnect.NewSessionBroadcaster(ctx, a.store)

	logger := freeconnect.Logger(freeconnect.NopLogger{})
	if a.verbose {
		logger = verboseLogger{}
	}

	a.auth = freeconnect.NewAuthenticator(cfg.APIBase, a.store, a.broadcaster,
		freeconnect.WithLogger(logger),
		freeconnect.WithServerLogout(cfg.ServerLogout),
	)
	a.api = freeconnect.NewClient(cfg.APIBase, a.store,
		freeconnect.WithClientLogger(logger),
	)
	a.guard = freeconnect.NewGuard(a.broadcaster)
	a.routes = freeconnect.DefaultRoutes()

	if a.verbose {
		a.broadcaster.Subscribe(func(s freeconnect.Session) {
			fmt.Fprintln(os.Stderr, styleFaint.Render("session: "+s.String()))
		})
	}

	return nil
}

// openStore opens the durable credential database and degrades to the
// unavailable store when it cannot, so read-only contexts still work with an
// anonymous session.
func (a *App) openStore(ctx context.Context) (freeconnect.CredentialStore, func() error) {
	path := a.cfg.Database
	if path == "none" {
		return freeconnect.UnavailableStore{}, nil
	}
	if path == "" {
		path = defaultDatabasePath()
	}
	if path == "" {
		return freeconnect.UnavailableStore{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		fmt.Fprintln(os.Stderr, styleWarn.Render("credential storage unavailable: ")+err.Error())
		return freeconnect.UnavailableStore{}, nil
	}

	s, err := store.Open(ctx, path)
	if err != nil {
		fmt.Fprintln(os.Stderr, styleWarn.Render("credential storage unavailable: ")+err.Error())
		return freeconnect.UnavailableStore{}, nil
	}
	return s, s.Close
}

func (a *App) close() error {
	if a.closeStore != nil {
		return a.closeStore()
	}
	return nil
}

// requireView runs the same gate the web client applies before entering a
// role-restricted route. A denial never reaches the network.
func (a *App) requireView(name string) error {
	decision := a.guard.EvaluateRoute(a.routes, name)
	if decision.Allowed {
		return nil
	}
	return fmt.Errorf("access to %s denied: sign in with an authorized account (freeconnect login; web equivalent %s)", name, decision.RedirectTo)
}

type verboseLogger struct{}

func (verboseLogger) Debug(format string, args ...any) {
	fmt.Fprintf(os.Stderr, styleFaint.Render("[dbg] ")+format+"\n", args...)
}

func (verboseLogger) Info(format string, args ...any) {
	fmt.Fprintf(os.Stderr, styleFaint.Render("[inf] ")+format+"\n", args...)
}

func (verboseLogger) Error(format string, args ...any) {
	fmt.Fprintf(os.Stderr, styleErr.Render("[err] ")+format+"\n", args...)
}
