package dataset

import "sort"

// Layout identifies how the dataset root was interpreted.
type Layout string

const (
	// LayoutDescription indexes glosses from the description JSON.
	LayoutDescription Layout = "description"
	// LayoutGlossDirs indexes one subdirectory per gloss.
	LayoutGlossDirs Layout = "gloss-dirs"
	// LayoutFlat indexes flat <gloss>_<instance> files.
	LayoutFlat Layout = "flat"
)

// Video is a read-only reference to one source clip and its derived gloss.
type Video struct {
	Gloss string
	Path  string
}

// Index maps normalized glosses to source clips. It is immutable after Build.
type Index struct {
	entries map[string]Video
	keys    []string
	layout  Layout
}

func newIndex(entries map[string]Video, layout Layout) *Index {
	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	// Shorter keys first, then lexicographic. Resolver fallback tiers scan
	// keys in this order, so ties break the same way on every run instead
	// of following filesystem enumeration order.
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) < len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return &Index{entries: entries, keys: keys, layout: layout}
}

// Lookup returns the clip registered for a normalized gloss.
func (x *Index) Lookup(gloss string) (Video, bool) {
	v, ok := x.entries[gloss]
	return v, ok
}

// Keys returns every index key in deterministic match order (shortest first,
// then lexicographic). Callers must not mutate the returned slice.
func (x *Index) Keys() []string {
	return x.keys
}

// Glosses returns every indexed gloss sorted lexicographically, the order
// used for operator-facing listings.
func (x *Index) Glosses() []string {
	out := make([]string, len(x.keys))
	copy(out, x.keys)
	sort.Strings(out)
	return out
}

// Len reports the number of indexed glosses.
func (x *Index) Len() int {
	return len(x.entries)
}

// Layout reports which dataset layout produced the index.
func (x *Index) Layout() Layout {
	return x.layout
}
