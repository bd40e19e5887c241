// Package table provides the column-oriented in-memory view of the
// exoplanet.eu catalog.
//
// # Model
//
// A [Table] is an ordered set of named columns of equal length. Column
// "name" is always present and always first; its length is the row count.
// A [Column] is either text (raw CSV cells) or float (numeric cells, with
// NaN standing in for empty ones).
//
// # Access
//
// Lookups are explicit rather than keyed by magic strings:
//
//   - [Table.GetColumn] returns a whole column
//   - [Table.GetColumnWithoutNaN] drops NaN entries from a float column and
//     returns text columns unchanged, so it can be called on any column
//   - [Table.GetRow] assembles a [Row] from the i-th value of every column
//
// [Table.Get] keeps the "<column>_nonan" key convention for callers that
// receive column keys as strings (the CLI does).
//
// # Numeric backing
//
// [Table.ToNumeric] copies every float column into a gonum [mat.VecDense]
// and marks the table numeric-backed. The stored values do not change;
// only the NaN-filtering strategy and the availability of [Table.Vector]
// do. There is no way back to the plain representation.
//
// A Table has no internal locking. Concurrent readers are fine as long as
// nobody calls ToNumeric(true) at the same time.
package table
