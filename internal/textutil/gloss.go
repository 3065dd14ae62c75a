package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.AmericanEnglish)

// NormalizeGloss converts a raw gloss label into its canonical lookup form:
// lower-cased, trimmed, underscores treated as spaces, internal whitespace
// runs collapsed to a single space.
func NormalizeGloss(raw string) string {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(raw))
	prevSpace := false
	for _, r := range raw {
		if unicode.IsSpace(r) || r == '_' {
			if !prevSpace && b.Len() > 0 {
				b.WriteByte(' ')
				prevSpace = true
			}
			continue
		}
		b.WriteRune(r)
		prevSpace = false
	}
	return strings.TrimRight(b.String(), " ")
}

// FoldSpaces returns the gloss with every space removed. Space-insensitive
// matching compares folded forms on both sides.
func FoldSpaces(gloss string) string {
	return strings.ReplaceAll(gloss, " ", "")
}

// GlossFromStem derives a gloss from a flat-layout filename stem. A trailing
// "_<digits>" instance suffix is stripped before normalization, so both
// "thank_you_3" and "thank_you" yield "thank you".
func GlossFromStem(stem string) string {
	if idx := strings.LastIndex(stem, "_"); idx > 0 {
		suffix := stem[idx+1:]
		if suffix != "" && isDigits(suffix) {
			stem = stem[:idx]
		}
	}
	return NormalizeGloss(stem)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// assetReplacer strips characters that are unsafe in asset filenames.
var assetReplacer = strings.NewReplacer(
	"/", "",
	"\\", "",
	":", "",
	"*", "",
	"?", "",
	"\"", "",
	"<", "",
	">", "",
	"|", "",
)

// AssetFileName returns the canonical destination filename for a gloss:
// lower-cased, spaces replaced with underscores, ".mp4" extension.
func AssetFileName(gloss string) string {
	name := NormalizeGloss(assetReplacer.Replace(gloss))
	return strings.ReplaceAll(name, " ", "_") + ".mp4"
}

// DisplayLabel renders a gloss for table output, title-casing each word.
func DisplayLabel(gloss string) string {
	return titleCaser.String(NormalizeGloss(gloss))
}
