package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"omrdata/internal/annotation"
	"omrdata/internal/config"
	"omrdata/internal/logging"
	"omrdata/internal/review"
	"omrdata/internal/shape"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.logLevelFlag != nil && strings.TrimSpace(*c.logLevelFlag) != "" {
			cfg.Logging.Level = strings.ToLower(strings.TrimSpace(*c.logLevelFlag))
			if err := cfg.Validate(); err != nil {
				c.configErr = err
				return
			}
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// logger builds a logger writing to the command's stderr so that stdout stays
// reserved for command output.
func (c *commandContext) logger(cmd *cobra.Command) (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := logging.NewFromConfig(cfg, cmd.ErrOrStderr())
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return logger, nil
}

// shapeCodec returns the shape codec including configured aliases.
func (c *commandContext) shapeCodec() (*shape.Codec, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	vocab, err := cfg.ShapeVocabulary()
	if err != nil {
		return nil, err
	}
	return shape.NewCodec(vocab), nil
}

// codec returns an annotation codec reporting diagnostics to sink.
func (c *commandContext) codec(sink annotation.Sink) (*annotation.Codec, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	shapes, err := c.shapeCodec()
	if err != nil {
		return nil, err
	}
	return annotation.NewCodec(
		annotation.WithShapeCodec(shapes),
		annotation.WithSink(sink),
		annotation.WithSuggestions(cfg.Vocabulary.Suggest),
	), nil
}

func (c *commandContext) withStore(fn func(*review.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	store, err := review.Open(cfg.Paths.ReviewDB)
	if err != nil {
		return fmt.Errorf("open review database: %w", err)
	}
	defer store.Close()
	return fn(store)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
