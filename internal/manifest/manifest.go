// Package manifest writes the import artifacts dropped next to the copied
// clips: the manifest JSON summarizing an import and the plain-text listing of
// every gloss the dataset offered. Both writes are best-effort; callers log
// failures and keep going.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const (
	// FileName is the manifest written into the assets directory.
	FileName = "manifest.json"
	// GlossListFileName is the operator-facing listing of indexed glosses.
	// The leading underscore keeps it sorted ahead of the clips.
	GlossListFileName = "_available_glosses.txt"
)

// Manifest records what an import run produced.
type Manifest struct {
	Source    string    `json:"source"`
	RunID     string    `json:"run_id,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	Count     int       `json:"count"`
	Glosses   []string  `json:"glosses"`
	Missing   []string  `json:"missing"`
}

// New builds a manifest from the copied and missing gloss lists. Both lists
// are copied and sorted; inputs are not mutated.
func New(source, runID string, copied, missing []string) Manifest {
	return Manifest{
		Source:    source,
		RunID:     runID,
		CreatedAt: time.Now().UTC(),
		Count:     len(copied),
		Glosses:   sortedCopy(copied),
		Missing:   sortedCopy(missing),
	}
}

// Write serializes the manifest into dir as indented JSON.
func (m Manifest) Write(dir string) error {
	raw, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	raw = append(raw, '\n')
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// Read loads a previously written manifest from dir.
func Read(dir string) (Manifest, error) {
	raw, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		return Manifest{}, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := json.Unmarshal(raw, &m); err != nil {
		return Manifest{}, fmt.Errorf("decode manifest: %w", err)
	}
	return m, nil
}

// WriteGlossList writes every indexed gloss into dir, sorted, one per line.
func WriteGlossList(dir string, glosses []string) error {
	sorted := sortedCopy(glosses)
	var b strings.Builder
	for _, gloss := range sorted {
		b.WriteString(gloss)
		b.WriteByte('\n')
	}
	path := filepath.Join(dir, GlossListFileName)
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write gloss list: %w", err)
	}
	return nil
}

func sortedCopy(values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	sort.Strings(out)
	return out
}
