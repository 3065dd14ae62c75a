// Package textutil provides gloss normalization and filename helpers.
//
// The primary use cases are:
//   - Normalizing free-text dataset glosses into canonical lookup keys
//   - Deriving glosses from directory names and file stems
//   - Producing filesystem-safe asset filenames for imported clips
//
// Normalization lowercases text, collapses whitespace runs, and treats
// underscores as word separators, matching the WLASL naming conventions.
package textutil
