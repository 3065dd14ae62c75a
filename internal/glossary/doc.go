// Package glossary resolves target glosses against the dataset index.
//
// Resolution runs three tiers in strict priority order and stops at the first
// hit: exact key match, space-insensitive match, then substring match in
// either direction. The fallback tiers scan index keys shortest-first then
// lexicographically, so the chosen candidate is the same on every run
// regardless of how the filesystem enumerated the dataset.
//
// Resolve is a pure function of its inputs; neither the target list nor the
// index is mutated.
package glossary
