package glossary

import (
	"strings"

	"signdex/internal/dataset"
	"signdex/internal/textutil"
)

// Tier identifies which matching strategy resolved a gloss.
type Tier string

const (
	TierExact     Tier = "exact"
	TierSpaceless Tier = "space-insensitive"
	TierSubstring Tier = "substring"
)

// Resolution is the outcome for one target gloss.
type Resolution struct {
	// Target is the normalized target gloss.
	Target string
	// Video is the matched clip when Resolved is true.
	Video dataset.Video
	// Tier is the strategy that produced the match.
	Tier Tier
	// Resolved reports whether any tier matched.
	Resolved bool
}

// Result holds one Resolution per target, in target order.
type Result struct {
	Resolutions []Resolution
}

// Resolved returns the subset of resolutions that matched, in target order.
func (r Result) Resolved() []Resolution {
	out := make([]Resolution, 0, len(r.Resolutions))
	for _, res := range r.Resolutions {
		if res.Resolved {
			out = append(out, res)
		}
	}
	return out
}

// Missing returns the targets no tier could match, in target order.
func (r Result) Missing() []string {
	out := make([]string, 0)
	for _, res := range r.Resolutions {
		if !res.Resolved {
			out = append(out, res.Target)
		}
	}
	return out
}

// Resolve matches every target against the index. Targets are normalized
// before matching; each yields at most one clip.
func Resolve(targets []string, idx *dataset.Index) Result {
	resolutions := make([]Resolution, 0, len(targets))
	for _, raw := range targets {
		target := textutil.NormalizeGloss(raw)
		if target == "" {
			continue
		}
		resolutions = append(resolutions, resolveOne(target, idx))
	}
	return Result{Resolutions: resolutions}
}

func resolveOne(target string, idx *dataset.Index) Resolution {
	if video, ok := idx.Lookup(target); ok {
		return Resolution{Target: target, Video: video, Tier: TierExact, Resolved: true}
	}

	folded := textutil.FoldSpaces(target)
	for _, key := range idx.Keys() {
		if textutil.FoldSpaces(key) == folded {
			video, _ := idx.Lookup(key)
			return Resolution{Target: target, Video: video, Tier: TierSpaceless, Resolved: true}
		}
	}

	for _, key := range idx.Keys() {
		foldedKey := textutil.FoldSpaces(key)
		if strings.Contains(foldedKey, folded) || strings.Contains(folded, foldedKey) {
			video, _ := idx.Lookup(key)
			return Resolution{Target: target, Video: video, Tier: TierSubstring, Resolved: true}
		}
	}

	return Resolution{Target: target}
}
