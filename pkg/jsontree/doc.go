// Package jsontree models parsed JSON documents as an ordered value tree and
// derives two views from it: a collapsible display tree and a path-indexed
// search result set.
//
// The package is organized around three pure operations:
//
//  1. Parse: decode JSON text (optionally containing // and /* */ comments)
//     into a Value, preserving object key order.
//  2. Build: derive a fresh Node tree with per-location display metadata
//     (kind, default collapse state, highlight flag).
//  3. Search: walk the same Value and report ordered (path, key, value)
//     matches for a case-insensitive substring query.
//
// Values are immutable once parsed; Build and Search are independent
// traversals that share no state, so concurrent calls on the same Value are
// safe.
package jsontree
