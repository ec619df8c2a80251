package testsupport

import (
	"path/filepath"
	"testing"

	"omrdata/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config whose review database lives in a per-test temp
// directory. It applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.ReviewDB = filepath.Join(base, "data", "review.db")
	cfgVal.Logging.Level = "error"

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithAliases sets legacy shape aliases on the test config.
func WithAliases(aliases map[string]string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Vocabulary.Aliases = aliases
	}
}

// WithSkipUnclassified toggles export.skip_unclassified on the test config.
func WithSkipUnclassified(skip bool) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Export.SkipUnclassified = skip
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(filepath.Dir(cfg.Paths.ReviewDB))
}
