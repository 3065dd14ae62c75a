package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateDataset(); err != nil {
		return err
	}
	if err := c.validateVocabulary(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateDataset() error {
	if strings.ContainsAny(c.Dataset.DescriptionFile, `/\`) {
		return fmt.Errorf("dataset.description_file must be a bare filename, got %q", c.Dataset.DescriptionFile)
	}
	if strings.ContainsAny(c.Dataset.VideosDir, `/\`) {
		return fmt.Errorf("dataset.videos_dir must be a bare directory name, got %q", c.Dataset.VideosDir)
	}
	if len(c.Dataset.Extensions) == 0 {
		return errors.New("dataset.extensions must list at least one video extension")
	}
	return nil
}

func (c *Config) validateVocabulary() error {
	if len(c.Vocabulary.Glosses) == 0 {
		return errors.New("vocabulary.glosses must list at least one target gloss")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
