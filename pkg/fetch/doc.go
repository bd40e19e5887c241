// Package fetch downloads the exoplanet.eu catalog.
//
// A [Fetcher] issues a single HTTP GET against the catalog URL
// ([DefaultURL] unless overridden) and writes the whole response body to a
// target path. There is no retry and no backoff: a network failure or a
// non-200 status is returned to the caller immediately, wrapping
// [ErrNetwork] or [ErrNotFound].
//
//	f := fetch.New(fetch.WithLogger(logger))
//	if err := f.Download(ctx, "/home/me/.pyexoplaneteu/exoplanetEU.csv"); err != nil {
//	    return err
//	}
//
// The default HTTP client has no timeout of its own; cancel ctx to abort a
// slow transfer.
package fetch
