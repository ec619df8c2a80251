package config

import (
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateAnnotations(); err != nil {
		return err
	}
	if err := c.validateExport(); err != nil {
		return err
	}
	if _, err := c.ShapeVocabulary(); err != nil {
		return err
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
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}

func (c *Config) validateAnnotations() error {
	if c.Annotations.Indent < 0 || c.Annotations.Indent > maxAnnotationIndent {
		return fmt.Errorf("annotations.indent must be between 0 and %d", maxAnnotationIndent)
	}
	return nil
}

func (c *Config) validateExport() error {
	switch c.Export.Format {
	case "json", "yaml":
		return nil
	default:
		return fmt.Errorf("export.format must be json or yaml, got %q", c.Export.Format)
	}
}
