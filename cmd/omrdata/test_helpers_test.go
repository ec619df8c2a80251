package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"omrdata/internal/config"
	"omrdata/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	pagesDir   string
}

func setupCLITestEnv(t *testing.T, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()

	cfg := testsupport.NewConfig(t, opts...)
	base := testsupport.BaseDir(cfg)
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("OMRDATA_LOG_LEVEL", "")
	t.Setenv("OMRDATA_REVIEW_DB", "")

	configPath := filepath.Join(base, "omrdata.toml")
	writeTestConfig(t, configPath, cfg)

	pagesDir := filepath.Join(base, "pages")
	if err := os.MkdirAll(pagesDir, 0o755); err != nil {
		t.Fatalf("mkdir pages: %v", err)
	}

	return &cliTestEnv{cfg: cfg, configPath: configPath, pagesDir: pagesDir}
}

func (e *cliTestEnv) page(t *testing.T, name, content string) string {
	t.Helper()
	return testsupport.WriteFile(t, e.pagesDir, name, content)
}

func (e *cliTestEnv) run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	return runCLI(t, args, e.configPath)
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	var sb strings.Builder
	fmt.Fprintf(&sb, "[paths]\nreview_db = %q\n\n", cfg.Paths.ReviewDB)
	fmt.Fprintf(&sb, "[logging]\nformat = %q\nlevel = %q\n\n", cfg.Logging.Format, cfg.Logging.Level)
	fmt.Fprintf(&sb, "[vocabulary]\nsuggest = %t\n\n", cfg.Vocabulary.Suggest)
	if len(cfg.Vocabulary.Aliases) > 0 {
		legacy := make([]string, 0, len(cfg.Vocabulary.Aliases))
		for k := range cfg.Vocabulary.Aliases {
			legacy = append(legacy, k)
		}
		sort.Strings(legacy)
		sb.WriteString("[vocabulary.aliases]\n")
		for _, k := range legacy {
			fmt.Fprintf(&sb, "%s = %q\n", k, cfg.Vocabulary.Aliases[k])
		}
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "[annotations]\nextension = %q\nindent = %d\n\n", cfg.Annotations.Extension, cfg.Annotations.Indent)
	fmt.Fprintf(&sb, "[export]\nformat = %q\nskip_unclassified = %t\n", cfg.Export.Format, cfg.Export.SkipUnclassified)
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func requireNotContains(t *testing.T, output, substr string) {
	t.Helper()
	if strings.Contains(output, substr) {
		t.Fatalf("expected %q not to contain %q", output, substr)
	}
}
