// Package ledger implements the tombstoned character ledger behind the
// typewriter page.
//
// A Ledger is an ordered sequence of records. Deleting text never removes a
// record; it flips the record's Deleted flag so the page keeps its
// strike-through history. Positions come in two flavours:
//
//   - active indices count only non-deleted records (what the input surface
//     sees);
//   - raw indices count every record, tombstones included.
//
// Indices are measured in records, and the reconciler produces one record per
// rune, so an active index equals a rune offset into ActiveString.
package ledger
