// Package catalog ties the local store, the fetcher and the parser together
// into the "get data" operation for the exoplanet.eu catalog.
//
// # Refresh policy
//
// [Catalog.GetData] checks the cached artifact before parsing it:
//
//  1. no artifact: download it
//  2. artifact older than the threshold (5 days by default): download again
//  3. otherwise: use the artifact as-is
//
// Freshness is judged from the artifact's modification time alone; see
// [Policy] and [AgeInDays].
//
// # Parsing
//
// [Parser] reads the CSV into a [table.Table]: the "# name" header label is
// repaired to "name", the name column is moved first, and the columns in
// [FloatColumns] are converted to float64 with NaN for empty cells. Any
// other malformation is an error; no partial table is returned.
//
// # Usage
//
//	st, _ := store.New("")
//	c := catalog.New(st, fetch.New(), catalog.WithLogger(logger))
//	data, err := c.GetData(ctx)
//	if err != nil {
//	    return err
//	}
//	mass, _ := data.GetColumnWithoutNaN("mass")
package catalog
