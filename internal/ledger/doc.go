// Package ledger persists import history in SQLite.
//
// Each import run writes one run row plus one outcome row per target gloss
// (copied or missing, with the matching tier and file paths). The ledger backs
// `signdex history` and is strictly advisory: write failures are logged by
// callers and never fail the import that already happened on disk.
package ledger
