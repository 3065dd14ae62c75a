// Package services defines the shared error taxonomy used by the import
// pipeline.
//
// Failures fall into two classes: fatal configuration or dataset errors that
// abort the run with a non-zero exit, and per-gloss errors that are collected
// into the missing list while the run continues. The Wrap helper tags errors
// with a sentinel marker and stage context so callers can classify them with
// errors.Is without parsing messages.
package services
