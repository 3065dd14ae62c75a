// Package dataset builds the gloss index from a WLASL dataset root.
//
// Three layouts are auto-detected:
//   - A description JSON (WLASL_v0.3.json) beside a videos directory, mapping
//     glosses to instance video IDs.
//   - Directory-per-gloss, where each subdirectory holds that gloss's clips.
//   - Flat files named <gloss>_<instance>.mp4.
//
// Scans are read-only and deterministic: directory listings are consumed in
// sorted order and the first clip seen for a derived gloss wins. The index is
// immutable once built.
package dataset
