package dataset_test

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"signdex/internal/config"
	"signdex/internal/dataset"
	"signdex/internal/testsupport"
)

func datasetConfig() config.Dataset {
	return config.Default().Dataset
}

func TestBuildMissingRootIsFatal(t *testing.T) {
	_, err := dataset.Build(filepath.Join(t.TempDir(), "nope"), datasetConfig(), nil)
	if err == nil {
		t.Fatal("expected error for missing root")
	}
}

func TestBuildFlatLayoutFirstClipWins(t *testing.T) {
	root := testsupport.FlatDataset(t, "hello_1.mp4", "hello_2.mp4", "thank_you_1.mp4", "notes.txt")

	idx, err := dataset.Build(root, datasetConfig(), nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if idx.Layout() != dataset.LayoutFlat {
		t.Fatalf("expected flat layout, got %s", idx.Layout())
	}
	if idx.Len() != 2 {
		t.Fatalf("expected 2 glosses, got %d: %v", idx.Len(), idx.Glosses())
	}

	video, ok := idx.Lookup("hello")
	if !ok {
		t.Fatal("expected hello in index")
	}
	if filepath.Base(video.Path) != "hello_1.mp4" {
		t.Fatalf("expected first clip in sorted order to win, got %s", video.Path)
	}
	if _, ok := idx.Lookup("thank you"); !ok {
		t.Fatal("expected underscore stem to normalize to \"thank you\"")
	}
}

func TestBuildGlossDirLayout(t *testing.T) {
	root := testsupport.GlossDirDataset(t, map[string][]string{
		"thank_you": {"b.mp4", "a.mp4"},
		"hello":     {"clip.mov"},
		"empty":     {},
		"papers":    {"readme.txt"},
	})

	idx, err := dataset.Build(root, datasetConfig(), nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if idx.Layout() != dataset.LayoutGlossDirs {
		t.Fatalf("expected gloss-dirs layout, got %s", idx.Layout())
	}

	video, ok := idx.Lookup("thank you")
	if !ok {
		t.Fatal("expected thank you in index")
	}
	if filepath.Base(video.Path) != "a.mp4" {
		t.Fatalf("expected deterministic first clip, got %s", video.Path)
	}
	if _, ok := idx.Lookup("hello"); !ok {
		t.Fatal("expected hello in index")
	}
	if _, ok := idx.Lookup("empty"); ok {
		t.Fatal("directories without clips must not be indexed")
	}
	if _, ok := idx.Lookup("papers"); ok {
		t.Fatal("directories without video files must not be indexed")
	}
}

func TestBuildDescriptionLayout(t *testing.T) {
	cfg := datasetConfig()
	root := testsupport.DescriptionDataset(t, cfg, []testsupport.DescriptionEntry{
		{Gloss: "Hello", Instances: []testsupport.DescriptionInstance{{VideoID: "00001"}, {VideoID: "00002"}}},
		{Gloss: "thank you", Instances: []testsupport.DescriptionInstance{{VideoID: "09999"}, {VideoID: "00003"}}},
		{Gloss: "absent", Instances: []testsupport.DescriptionInstance{{VideoID: "12345"}}},
	}, "00002", "00003")

	idx, err := dataset.Build(root, cfg, nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if idx.Layout() != dataset.LayoutDescription {
		t.Fatalf("expected description layout, got %s", idx.Layout())
	}
	if idx.Len() != 2 {
		t.Fatalf("expected 2 glosses, got %d: %v", idx.Len(), idx.Glosses())
	}

	video, ok := idx.Lookup("hello")
	if !ok {
		t.Fatal("expected hello in index")
	}
	if filepath.Base(video.Path) != "00002.mp4" {
		t.Fatalf("expected first available instance, got %s", video.Path)
	}
	if _, ok := idx.Lookup("absent"); ok {
		t.Fatal("glosses without available clips must not be indexed")
	}
}

func TestBuildDescriptionUnreadableJSONIsFatal(t *testing.T) {
	cfg := datasetConfig()
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, cfg.DescriptionFile), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(root, cfg.VideosDir), 0o755); err != nil {
		t.Fatal(err)
	}
	_, err := dataset.Build(root, cfg, nil)
	if err == nil {
		t.Fatal("expected error for malformed description")
	}
	if !strings.Contains(err.Error(), "description") {
		t.Fatalf("expected description context in error, got %v", err)
	}
}

func TestBuildResolvesVideosSubdirectory(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteClip(t, filepath.Join(root, "videos", "hello_1.mp4"), "")

	idx, err := dataset.Build(root, datasetConfig(), nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if _, ok := idx.Lookup("hello"); !ok {
		t.Fatal("expected scan to descend into videos/")
	}
}

func TestKeysOrderedShortestThenLexicographic(t *testing.T) {
	root := testsupport.FlatDataset(t, "bb_1.mp4", "a_1.mp4", "ba_1.mp4", "ccc_1.mp4")

	idx, err := dataset.Build(root, datasetConfig(), nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	want := []string{"a", "ba", "bb", "ccc"}
	if !slices.Equal(idx.Keys(), want) {
		t.Fatalf("unexpected key order: got %v want %v", idx.Keys(), want)
	}
}
