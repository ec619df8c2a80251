package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeLogging(); err != nil {
		return err
	}
	c.normalizeVocabulary()
	c.normalizeAnnotations()
	c.normalizeExport()
	return nil
}

func (c *Config) normalizePaths() error {
	if value, ok := os.LookupEnv("OMRDATA_REVIEW_DB"); ok && strings.TrimSpace(value) != "" {
		c.Paths.ReviewDB = strings.TrimSpace(value)
	}
	if strings.TrimSpace(c.Paths.ReviewDB) == "" {
		c.Paths.ReviewDB = defaultReviewDB
	}
	var err error
	if c.Paths.ReviewDB, err = expandPath(c.Paths.ReviewDB); err != nil {
		return fmt.Errorf("paths.review_db: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() error {
	if value, ok := os.LookupEnv("OMRDATA_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if strings.TrimSpace(c.Logging.File) != "" {
		var err error
		if c.Logging.File, err = expandPath(strings.TrimSpace(c.Logging.File)); err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
	}
	return nil
}

func (c *Config) normalizeVocabulary() {
	if len(c.Vocabulary.Aliases) == 0 {
		return
	}
	aliases := make(map[string]string, len(c.Vocabulary.Aliases))
	for legacy, target := range c.Vocabulary.Aliases {
		aliases[strings.TrimSpace(legacy)] = strings.TrimSpace(target)
	}
	c.Vocabulary.Aliases = aliases
}

func (c *Config) normalizeAnnotations() {
	ext := strings.ToLower(strings.TrimSpace(c.Annotations.Extension))
	if ext == "" {
		ext = defaultAnnotationExtension
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	c.Annotations.Extension = ext
}

func (c *Config) normalizeExport() {
	c.Export.Format = strings.ToLower(strings.TrimSpace(c.Export.Format))
	if c.Export.Format == "" {
		c.Export.Format = defaultExportFormat
	}
}
