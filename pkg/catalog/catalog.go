package catalog

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/exoplaneteu/exoplaneteu/pkg/errors"
	"github.com/exoplaneteu/exoplaneteu/pkg/observability"
	"github.com/exoplaneteu/exoplaneteu/pkg/store"
	"github.com/exoplaneteu/exoplaneteu/pkg/table"
)

// Downloader fetches the catalog into a file. [fetch.Fetcher] implements it.
type Downloader interface {
	DownloadSize(ctx context.Context, targetPath string) (int64, error)
}

// Catalog is the cached exoplanet.eu catalog.
type Catalog struct {
	store   *store.Store
	fetcher Downloader
	policy  Policy
	parser  Parser
	logger  *log.Logger
	now     func() time.Time
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithLogger sets the logger for progress messages.
func WithLogger(l *log.Logger) Option {
	return func(c *Catalog) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithPolicy replaces the default 5-day freshness policy.
func WithPolicy(p Policy) Option {
	return func(c *Catalog) { c.policy = p }
}

// WithFloatColumns replaces the default numeric column list.
func WithFloatColumns(cols []string) Option {
	return func(c *Catalog) { c.parser.FloatColumns = cols }
}

// WithClock sets the time source used for the freshness check.
func WithClock(now func() time.Time) Option {
	return func(c *Catalog) {
		if now != nil {
			c.now = now
		}
	}
}

// New creates a Catalog over the artifact in st, downloading with f.
func New(st *store.Store, f Downloader, opts ...Option) *Catalog {
	c := &Catalog{
		store:   st,
		fetcher: f,
		policy:  DefaultPolicy(),
		parser:  Parser{FloatColumns: FloatColumns()},
		logger:  log.New(io.Discard),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.parser.Logger = c.logger
	return c
}

// Store returns the local store holding the artifact.
func (c *Catalog) Store() *store.Store { return c.store }

// Policy returns the freshness policy in use.
func (c *Catalog) Policy() Policy { return c.policy }

// Status describes the cached artifact.
type Status struct {
	Path     string
	Exists   bool
	ModTime  time.Time
	AgeDays  float64
	Decision Decision
}

// Status reports the artifact's presence, age and the policy's verdict.
func (c *Catalog) Status() (Status, error) {
	info, ok, err := c.store.Stat()
	if err != nil {
		return Status{}, err
	}
	now := c.now()
	s := Status{
		Path:     c.store.ArtifactPath(),
		Exists:   ok,
		Decision: c.policy.Decide(info, ok, now),
	}
	if ok {
		s.ModTime = info.ModTime()
		s.AgeDays = AgeInDays(s.ModTime, now)
	}
	return s, nil
}

// Age returns the artifact's age in days. A missing artifact is an error.
func (c *Catalog) Age() (float64, error) {
	s, err := c.Status()
	if err != nil {
		return 0, err
	}
	if !s.Exists {
		return 0, errors.New(errors.ErrCodeArtifactNotFound, "no cached catalog at %s", s.Path)
	}
	return s.AgeDays, nil
}

// Ensure makes sure an acceptable artifact is cached: it downloads when the
// policy says so, or always when force is set. It returns the decision
// that was taken before any download.
func (c *Catalog) Ensure(ctx context.Context, force bool) (Decision, error) {
	s, err := c.Status()
	if err != nil {
		return Fresh, err
	}

	hooks := observability.Cache()
	switch {
	case force:
		hooks.OnCacheMiss(ctx, "forced")
		c.logger.Info("Downloading exoplanet.eu data")
	case s.Decision == Missing:
		hooks.OnCacheMiss(ctx, Missing.String())
		c.logger.Info("Downloading exoplanet.eu data")
	case s.Decision == Stale:
		hooks.OnCacheMiss(ctx, Stale.String())
		c.logger.Infof("Data in `%s` is older than %g days, downloading.", store.ArtifactName, c.policy.maxAge())
	default:
		hooks.OnCacheHit(ctx, time.Duration(s.AgeDays*float64(day)))
		c.logger.Infof("Data in `%s` is recent.", store.ArtifactName)
		c.logger.Debug("artifact age", "days", s.AgeDays, "path", s.Path)
		return s.Decision, nil
	}

	if err := c.download(ctx); err != nil {
		return s.Decision, err
	}
	return s.Decision, nil
}

// Refresh downloads the catalog regardless of the artifact's age.
func (c *Catalog) Refresh(ctx context.Context) error {
	_, err := c.Ensure(ctx, true)
	return err
}

func (c *Catalog) download(ctx context.Context) error {
	n, err := c.fetcher.DownloadSize(ctx, c.store.ArtifactPath())
	if err != nil {
		return err
	}
	observability.Cache().OnCacheSet(ctx, n)
	return nil
}

// Read parses the cached artifact without checking its age.
func (c *Catalog) Read(ctx context.Context) (*table.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := c.store.ArtifactPath()
	hooks := observability.Catalog()
	hooks.OnParseStart(ctx, path)

	start := time.Now()
	t, err := c.parser.ParseFile(path)
	if err != nil {
		hooks.OnParseComplete(ctx, path, 0, 0, time.Since(start), err)
		return nil, err
	}
	hooks.OnParseComplete(ctx, path, len(t.Columns()), t.RowCount(), time.Since(start), nil)
	return t, nil
}

// GetData applies the refresh policy, downloading if needed, and parses
// the artifact.
func (c *Catalog) GetData(ctx context.Context) (*table.Table, error) {
	if _, err := c.Ensure(ctx, false); err != nil {
		return nil, err
	}
	return c.Read(ctx)
}
