// Package testsupport provides fixtures shared by signdex tests: temp-dir
// seeded configs and fake WLASL dataset trees in each supported layout.
package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"signdex/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.AssetsDir = filepath.Join(base, "assets")
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	return &cfg
}

// WithVocabulary replaces the target gloss list on the test config.
func WithVocabulary(glosses ...string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Vocabulary.Glosses = glosses
	}
}

// WithVerifyCopies enables checksum verification on the test config.
func WithVerifyCopies() ConfigOption {
	return func(cfg *config.Config) {
		cfg.Import.VerifyCopies = true
	}
}

// WriteClip writes a small fake video file, creating parent directories.
func WriteClip(t testing.TB, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if content == "" {
		content = "clip:" + filepath.Base(path)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// FlatDataset builds a flat-layout dataset root containing one file per name.
// Names are full filenames including extension.
func FlatDataset(t testing.TB, names ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, name := range names {
		WriteClip(t, filepath.Join(root, name), "")
	}
	return root
}

// GlossDirDataset builds a directory-per-gloss dataset root. Each key is a
// directory name, each value the list of clip filenames inside it.
func GlossDirDataset(t testing.TB, dirs map[string][]string) string {
	t.Helper()
	root := t.TempDir()
	for dir, clips := range dirs {
		if len(clips) == 0 {
			if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
				t.Fatalf("mkdir %s: %v", dir, err)
			}
			continue
		}
		for _, clip := range clips {
			WriteClip(t, filepath.Join(root, dir, clip), "")
		}
	}
	return root
}

// DescriptionInstance is one clip reference inside a description entry.
type DescriptionInstance struct {
	VideoID string `json:"video_id"`
}

// DescriptionEntry is one gloss record of a fake WLASL description JSON.
type DescriptionEntry struct {
	Gloss     string                `json:"gloss"`
	Instances []DescriptionInstance `json:"instances"`
}

// DescriptionDataset builds a description-layout dataset root: the JSON file
// plus a videos/ directory holding every clip named in availableIDs.
func DescriptionDataset(t testing.TB, cfg config.Dataset, entries []DescriptionEntry, availableIDs ...string) string {
	t.Helper()
	root := t.TempDir()
	raw, err := json.Marshal(entries)
	if err != nil {
		t.Fatalf("marshal description: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, cfg.DescriptionFile), raw, 0o644); err != nil {
		t.Fatalf("write description: %v", err)
	}
	for _, id := range availableIDs {
		WriteClip(t, filepath.Join(root, cfg.VideosDir, id+".mp4"), "")
	}
	return root
}
