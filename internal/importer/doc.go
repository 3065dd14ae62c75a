// Package importer orchestrates one import run: build the dataset index,
// resolve the target vocabulary, copy matched clips into the assets
// directory, then write the manifest, the gloss listing, and the ledger row.
//
// Index build failures are fatal. Everything after the copy loop is
// best-effort: a clip that vanished between indexing and copying joins the
// missing list, and report artifacts that fail to write are logged without
// changing the outcome of copies already performed. A file lock serializes
// concurrent signdex invocations against the same assets directory.
package importer
