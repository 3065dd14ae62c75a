package dataset

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"signdex/internal/config"
	"signdex/internal/logging"
	"signdex/internal/services"
	"signdex/internal/textutil"
)

// Build scans the dataset root and returns the gloss index. A missing or
// unreadable root is fatal; individual unreadable subdirectories are skipped.
func Build(root string, cfg config.Dataset, logger *slog.Logger) (*Index, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logger.With(logging.String("component", "dataset"))

	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, services.Wrap(services.ErrDataset, "indexing", "locate root", "dataset path does not exist: "+root, nil)
		}
		return nil, services.Wrap(services.ErrDataset, "indexing", "locate root", "inspect dataset path", err)
	}
	if !info.IsDir() {
		return nil, services.Wrap(services.ErrDataset, "indexing", "locate root", root+" is not a directory", nil)
	}

	descPath := filepath.Join(root, cfg.DescriptionFile)
	if info, err := os.Stat(descPath); err == nil && !info.IsDir() {
		logger.Debug("using dataset description", logging.String("description", descPath))
		return buildFromDescription(descPath, filepath.Join(root, cfg.VideosDir), cfg.Extensions)
	}

	scanRoot := resolveScanRoot(root, cfg.VideosDir)
	logger.Debug("scanning dataset layout", logging.String("scan_root", scanRoot))
	return buildFromScan(scanRoot, cfg.Extensions)
}

// resolveScanRoot mirrors the common WLASL packagings: clips may live directly
// in the root or under a videos/ or processed/ subdirectory.
func resolveScanRoot(root, videosDir string) string {
	for _, sub := range []string{videosDir, "processed"} {
		if sub == "" {
			continue
		}
		candidate := filepath.Join(root, sub)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate
		}
	}
	return root
}

// buildFromScan indexes a directory tree that is either directory-per-gloss or
// flat files, possibly mixed. Directory entries arrive sorted from ReadDir, so
// the first clip for a duplicate gloss is the same on every run.
func buildFromScan(root string, extensions []string) (*Index, error) {
	items, err := os.ReadDir(root)
	if err != nil {
		return nil, services.Wrap(services.ErrDataset, "indexing", "scan root", "read dataset directory", err)
	}

	entries := make(map[string]Video)
	sawDirs := false
	for _, item := range items {
		if item.IsDir() {
			gloss := textutil.NormalizeGloss(item.Name())
			if gloss == "" {
				continue
			}
			clip, ok := firstClipIn(filepath.Join(root, item.Name()), extensions)
			if !ok {
				continue
			}
			sawDirs = true
			if _, dup := entries[gloss]; !dup {
				entries[gloss] = Video{Gloss: gloss, Path: clip}
			}
			continue
		}
		if !hasExtension(item.Name(), extensions) {
			continue
		}
		stem := strings.TrimSuffix(item.Name(), filepath.Ext(item.Name()))
		gloss := textutil.GlossFromStem(stem)
		if gloss == "" {
			continue
		}
		if _, dup := entries[gloss]; !dup {
			entries[gloss] = Video{Gloss: gloss, Path: filepath.Join(root, item.Name())}
		}
	}

	layout := LayoutFlat
	if sawDirs {
		layout = LayoutGlossDirs
	}
	return newIndex(entries, layout), nil
}

// firstClipIn returns the first matching video file in dir, in sorted order.
func firstClipIn(dir string, extensions []string) (string, bool) {
	items, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}
	for _, item := range items {
		if item.IsDir() {
			continue
		}
		if hasExtension(item.Name(), extensions) {
			return filepath.Join(dir, item.Name()), true
		}
	}
	return "", false
}

func hasExtension(name string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, want := range extensions {
		if ext == want {
			return true
		}
	}
	return false
}
