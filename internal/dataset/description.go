package dataset

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"signdex/internal/services"
	"signdex/internal/textutil"
)

// descriptionEntry matches one record of the WLASL description JSON.
type descriptionEntry struct {
	Gloss     string `json:"gloss"`
	Instances []struct {
		VideoID string `json:"video_id"`
	} `json:"instances"`
}

// buildFromDescription indexes glosses from the description JSON, keeping only
// entries whose clip is actually present in the videos directory. Each gloss
// maps to its first available instance.
func buildFromDescription(descPath, videosDir string, extensions []string) (*Index, error) {
	raw, err := os.ReadFile(descPath)
	if err != nil {
		return nil, services.Wrap(services.ErrDataset, "indexing", "read description", "read "+filepath.Base(descPath), err)
	}
	var records []descriptionEntry
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, services.Wrap(services.ErrDataset, "indexing", "parse description", "decode "+filepath.Base(descPath), err)
	}

	available, err := availableClips(videosDir, extensions)
	if err != nil {
		return nil, err
	}

	entries := make(map[string]Video, len(records))
	for _, record := range records {
		gloss := textutil.NormalizeGloss(record.Gloss)
		if gloss == "" {
			continue
		}
		if _, dup := entries[gloss]; dup {
			continue
		}
		for _, instance := range record.Instances {
			id := strings.TrimSpace(instance.VideoID)
			if id == "" {
				continue
			}
			if path, ok := available[id]; ok {
				entries[gloss] = Video{Gloss: gloss, Path: path}
				break
			}
		}
	}
	return newIndex(entries, LayoutDescription), nil
}

// availableClips maps filename stems in the videos directory to full paths.
func availableClips(videosDir string, extensions []string) (map[string]string, error) {
	items, err := os.ReadDir(videosDir)
	if err != nil {
		return nil, services.Wrap(services.ErrDataset, "indexing", "scan videos", "read videos directory "+videosDir, err)
	}
	clips := make(map[string]string, len(items))
	for _, item := range items {
		if item.IsDir() || !hasExtension(item.Name(), extensions) {
			continue
		}
		stem := strings.TrimSuffix(item.Name(), filepath.Ext(item.Name()))
		if _, dup := clips[stem]; !dup {
			clips[stem] = filepath.Join(videosDir, item.Name())
		}
	}
	return clips, nil
}
