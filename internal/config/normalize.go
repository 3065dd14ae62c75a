package config

import (
	"fmt"
	"strings"

	"signdex/internal/textutil"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeDataset()
	c.normalizeVocabulary()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.AssetsDir) == "" {
		c.Paths.AssetsDir = defaultAssetsDir
	}
	if c.Paths.AssetsDir, err = expandPath(c.Paths.AssetsDir); err != nil {
		return fmt.Errorf("paths.assets_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeDataset() {
	c.Dataset.DescriptionFile = strings.TrimSpace(c.Dataset.DescriptionFile)
	if c.Dataset.DescriptionFile == "" {
		c.Dataset.DescriptionFile = defaultDescriptionFile
	}
	c.Dataset.VideosDir = strings.TrimSpace(c.Dataset.VideosDir)
	if c.Dataset.VideosDir == "" {
		c.Dataset.VideosDir = defaultVideosDir
	}
	c.Dataset.SourceTag = strings.TrimSpace(c.Dataset.SourceTag)
	if c.Dataset.SourceTag == "" {
		c.Dataset.SourceTag = defaultSourceTag
	}
	if len(c.Dataset.Extensions) == 0 {
		c.Dataset.Extensions = defaultExtensions()
	}
	normalized := make([]string, 0, len(c.Dataset.Extensions))
	for _, ext := range c.Dataset.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		normalized = append(normalized, ext)
	}
	c.Dataset.Extensions = normalized
}

// normalizeVocabulary canonicalizes every target gloss and drops duplicates
// while preserving the configured order, which defines report order.
func (c *Config) normalizeVocabulary() {
	seen := make(map[string]struct{}, len(c.Vocabulary.Glosses))
	deduped := make([]string, 0, len(c.Vocabulary.Glosses))
	for _, raw := range c.Vocabulary.Glosses {
		gloss := textutil.NormalizeGloss(raw)
		if gloss == "" {
			continue
		}
		if _, ok := seen[gloss]; ok {
			continue
		}
		seen[gloss] = struct{}{}
		deduped = append(deduped, gloss)
	}
	c.Vocabulary.Glosses = deduped
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
