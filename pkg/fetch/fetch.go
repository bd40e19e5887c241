package fetch

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/exoplaneteu/exoplaneteu/pkg/buildinfo"
	"github.com/exoplaneteu/exoplaneteu/pkg/errors"
	"github.com/exoplaneteu/exoplaneteu/pkg/observability"
	"github.com/exoplaneteu/exoplaneteu/pkg/store"
)

// DefaultURL is the target of the "Download CSV" button on exoplanet.eu.
const DefaultURL = "http://exoplanet.eu/catalog/csv"

var (
	// ErrNotFound is returned when the catalog URL answers 404.
	ErrNotFound = stderrors.New("catalog not found")

	// ErrNetwork is returned for transport failures and non-success responses.
	ErrNetwork = stderrors.New("network error")
)

// Fetcher downloads the catalog CSV.
type Fetcher struct {
	url       string
	http      *http.Client
	userAgent string
	logger    *log.Logger
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithURL overrides the catalog URL.
func WithURL(u string) Option {
	return func(f *Fetcher) {
		if u != "" {
			f.url = u
		}
	}
}

// WithHTTPClient sets the HTTP client used for the download.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) {
		if c != nil {
			f.http = c
		}
	}
}

// WithUserAgent sets the User-Agent request header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) { f.userAgent = ua }
}

// WithLogger sets the logger that receives the "saved" confirmation.
func WithLogger(l *log.Logger) Option {
	return func(f *Fetcher) {
		if l != nil {
			f.logger = l
		}
	}
}

// New creates a Fetcher for [DefaultURL] using a plain http.Client.
func New(opts ...Option) *Fetcher {
	f := &Fetcher{
		url:       DefaultURL,
		http:      &http.Client{},
		userAgent: buildinfo.UserAgent(),
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// NewHTTPClient returns an http.Client with the given overall timeout.
// A zero timeout leaves the transport default in place.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// URL returns the catalog URL this Fetcher downloads.
func (f *Fetcher) URL() string { return f.url }

// Download fetches the catalog and replaces targetPath with the response
// body. The previous file, if any, is left untouched when the request fails.
func (f *Fetcher) Download(ctx context.Context, targetPath string) error {
	_, err := f.download(ctx, targetPath)
	return err
}

// DownloadSize is [Fetcher.Download] that also reports the number of bytes
// written.
func (f *Fetcher) DownloadSize(ctx context.Context, targetPath string) (int64, error) {
	return f.download(ctx, targetPath)
}

func (f *Fetcher) download(ctx context.Context, targetPath string) (int64, error) {
	body, err := f.doRequest(ctx)
	if err != nil {
		return 0, err
	}
	defer body.Close()

	n, err := store.WriteFile(targetPath, bodyReader{body})
	if err != nil {
		return n, err
	}

	f.logger.Infof("Saved exoplanet.eu data to %s", targetPath)
	return n, nil
}

func (f *Fetcher) doRequest(ctx context.Context) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "build request for %s", f.url)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	host, path := req.URL.Host, req.URL.Path
	hooks := observability.HTTP()
	hooks.OnRequest(ctx, req.Method, host, path)
	f.logger.Debug("fetching catalog", "url", f.url)

	start := time.Now()
	resp, err := f.http.Do(req)
	if err != nil {
		hooks.OnError(ctx, req.Method, host, path, err)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, errors.Wrap(errors.ErrCodeNetwork, fmt.Errorf("%w: %w", ErrNetwork, err), "fetch %s", f.url)
	}
	hooks.OnResponse(ctx, req.Method, host, path, resp.StatusCode, time.Since(start))

	if err := checkStatus(resp.StatusCode); err != nil {
		resp.Body.Close()
		return nil, errors.Wrap(codeFor(err), err, "fetch %s", f.url)
	}
	return resp.Body, nil
}

func checkStatus(code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return ErrNotFound
	default:
		return fmt.Errorf("%w: status %d", ErrNetwork, code)
	}
}

func codeFor(err error) errors.Code {
	if stderrors.Is(err, ErrNotFound) {
		return errors.ErrCodeNotFound
	}
	return errors.ErrCodeNetwork
}

// bodyReader tags read failures on the response body as network errors so
// they stay distinguishable from local write failures.
type bodyReader struct{ r io.Reader }

func (b bodyReader) Read(p []byte) (int, error) {
	n, err := b.r.Read(p)
	if err != nil && err != io.EOF {
		err = errors.Wrap(errors.ErrCodeNetwork, fmt.Errorf("%w: %w", ErrNetwork, err), "read response body")
	}
	return n, err
}
