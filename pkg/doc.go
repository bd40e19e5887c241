// Package pkg provides the core libraries for exoplaneteu.
//
// # Overview
//
// exoplaneteu keeps a local copy of the exoplanet.eu catalog CSV, refreshes
// it when it gets old, and exposes it as a table of named columns. The pkg
// directory is organized into these areas:
//
//  1. [store] - The cache directory and the artifact file inside it
//  2. [fetch] - HTTP download of the catalog into the store
//  3. [catalog] - Refresh policy, CSV parsing, and the "get data" operation
//  4. [table] - The parsed columnar table and its accessors
//  5. [errors], [observability], [buildinfo] - Supporting infrastructure
//
// # Architecture
//
// The typical data flow through exoplaneteu:
//
//	exoplanet.eu CSV export
//	         ↓
//	    [fetch] package (download when missing or stale)
//	         ↓
//	    [store] package (~/.pyexoplaneteu/exoplanetEU.csv)
//	         ↓
//	    [catalog] package (freshness check + parse)
//	         ↓
//	    [table] package (columns, rows, NaN filtering)
//
// # Quick Start
//
//	st, err := store.New("")
//	if err != nil {
//	    return err
//	}
//	c := catalog.New(st, fetch.New())
//	data, err := c.GetData(ctx)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(data) // exoplanet.eu data: table with 5524 entries
//
//	mass, _ := data.Get("mass_nonan")
//	fmt.Println(mass.Len())
package pkg
