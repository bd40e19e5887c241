// Package store manages the local cache directory for the exoplanet.eu
// catalog.
//
// # Overview
//
// The catalog is cached as a single artifact file, exoplanetEU.csv, in a
// per-user directory (~/.pyexoplaneteu/ by default). A [Store] resolves that
// directory once, creates it if needed, and answers questions about the
// artifact: where it lives, whether it exists, and when it was last written.
//
// There is exactly one artifact slot. Downloads overwrite it in place; there
// is no versioning, no checksum and no metadata sidecar. The artifact's
// modification time is the only freshness signal.
//
// Usage:
//
//	st, err := store.New("")          // ~/.pyexoplaneteu
//	info, ok, err := st.Stat()        // artifact metadata
//	if ok {
//	    fmt.Println(info.ModTime())
//	}
//
// # Concurrency
//
// A Store does no locking. Concurrent processes sharing the directory can
// observe a partially written artifact only if the writer does not use
// [Store.WriteFile], which replaces the file via rename.
package store
