// Package stockroom provides a small stock ledger: named item quantities
// held in memory, persisted to a single JSON file, and reported on the
// console.
//
// The core functionalities include:
//   - Ledger Management: Adding and removing item quantities, with
//     depletion semantics (an item whose quantity drops to zero or below
//     is removed entirely; absence means "not stocked").
//   - Low Stock Scanning: Listing the items whose quantity falls strictly
//     below a caller-supplied threshold.
//   - Data Persistence: Loading and saving the whole ledger as a single
//     human-readable JSON object, preserving item order across round trips.
//   - Supplier Feeds: Importing quantities out of arbitrary supplier JSON
//     documents with a jsonpath expression.
//
// No operation returns an error to the caller: failures degrade to a
// leveled diagnostic on the ledger's logger plus a sentinel return value
// (false, 0, or an unchanged ledger). Calling code checks the boolean
// results rather than relying on error values.
//
// This package serves as the foundational logic for the `inv` command-line
// tool.
package stockroom
