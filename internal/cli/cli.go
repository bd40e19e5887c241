package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/exoplaneteu/exoplaneteu/internal/config"
	"github.com/exoplaneteu/exoplaneteu/pkg/buildinfo"
	"github.com/exoplaneteu/exoplaneteu/pkg/catalog"
	"github.com/exoplaneteu/exoplaneteu/pkg/fetch"
	"github.com/exoplaneteu/exoplaneteu/pkg/store"
	"github.com/exoplaneteu/exoplaneteu/pkg/table"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "exoplaneteu"

	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
	LogWarn  = log.WarnLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	cacheDir   string
	url        string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Exoplaneteu keeps a local copy of the exoplanet.eu catalog",
		Long:         `Exoplaneteu downloads the exoplanet.eu catalog, caches it under ~/.pyexoplaneteu, refreshes it when it is more than a few days old, and queries it as a table of named columns.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/exoplaneteu/config.toml)")
	flags.StringVar(&c.cacheDir, "cache-dir", "", "cache directory (default ~/.pyexoplaneteu)")
	flags.StringVar(&c.url, "url", "", "catalog CSV URL")

	root.AddCommand(c.getCommand())
	root.AddCommand(c.downloadCommand())
	root.AddCommand(c.columnsCommand())
	root.AddCommand(c.columnCommand())
	root.AddCommand(c.rowCommand())
	root.AddCommand(c.describeCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Catalog Factory
// =============================================================================

// loadConfig resolves defaults, the config file and the environment, then
// applies the global flags.
func (c *CLI) loadConfig() (config.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return cfg, err
	}
	if c.cacheDir != "" {
		cfg.CacheDir = c.cacheDir
	}
	if c.url != "" {
		cfg.URL = c.url
	}
	return cfg, cfg.Validate()
}

// newStore opens the configured cache directory.
func (c *CLI) newStore() (*store.Store, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, err
	}
	return store.New(cfg.CacheDir)
}

// newCatalog wires the store, fetcher and policy for CLI use.
func (c *CLI) newCatalog(ctx context.Context) (*catalog.Catalog, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, err
	}
	st, err := store.New(cfg.CacheDir)
	if err != nil {
		return nil, err
	}

	logger := loggerFromContext(ctx)
	f := fetch.New(
		fetch.WithURL(cfg.URL),
		fetch.WithHTTPClient(fetch.NewHTTPClient(cfg.Timeout)),
		fetch.WithUserAgent(cfg.UserAgent),
		fetch.WithLogger(logger),
	)
	logger.Debug("catalog", "dir", st.Dir(), "url", cfg.URL, "max_age_days", cfg.MaxAgeDays)

	return catalog.New(st, f,
		catalog.WithLogger(logger),
		catalog.WithPolicy(cfg.Policy()),
	), nil
}

// loadTable applies the refresh policy and parses the catalog.
func (c *CLI) loadTable(ctx context.Context) (*table.Table, error) {
	cat, err := c.newCatalog(ctx)
	if err != nil {
		return nil, err
	}
	return readCatalog(ctx, cat, false)
}

// readCatalog downloads the artifact when force is set or the policy asks
// for it, showing a spinner meanwhile, and parses it.
func readCatalog(ctx context.Context, cat *catalog.Catalog, force bool) (*table.Table, error) {
	status, err := cat.Status()
	if err != nil {
		return nil, err
	}
	stop := func() {}
	if force || status.Decision.NeedsFetch() {
		stop = startSpinner(ctx, "Downloading exoplanet.eu catalog...")
	}
	_, err = cat.Ensure(ctx, force)
	stop()
	if err != nil {
		return nil, err
	}

	prog := newProgress(loggerFromContext(ctx))
	t, err := cat.Read(ctx)
	if err != nil {
		return nil, err
	}
	prog.debug("Parsed catalog")
	return t, nil
}
