package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigInitAndValidate(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := env.run(t, "config", "validate")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Config path: "+env.configPath)
	requireContains(t, out, "Review database: "+env.cfg.Paths.ReviewDB)
	requireContains(t, out, "Configuration valid")

	target := filepath.Join(t.TempDir(), "config.toml")
	out, _, err = env.run(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	if _, _, err := env.run(t, "config", "init", "--path", target); err == nil {
		t.Fatal("expected refusal to overwrite existing config")
	}

	out, _, err = runCLI(t, []string{"config", "validate"}, target)
	if err != nil {
		t.Fatalf("sample config must validate: %v", err)
	}
	requireContains(t, out, "Configuration valid")
}

func TestConfigRejectsUnknownKeys(t *testing.T) {
	setupCLITestEnv(t)
	bad := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(bad, []byte("[paths]\nstaging_dir = \"/tmp\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := runCLI(t, []string{"config", "validate"}, bad); err == nil {
		t.Fatal("expected unknown key to fail validation")
	}
	if _, _, err := runCLI(t, []string{"shapes"}, bad); err == nil {
		t.Fatal("expected commands to fail on an invalid config")
	}
}

func TestRenderTable(t *testing.T) {
	out := renderTable([]string{"Shape", "Count"}, [][]string{{"beam", "3"}, {"stem"}}, []columnAlignment{alignLeft, alignRight})
	requireContains(t, out, "SHAPE")
	requireContains(t, out, "beam")
	requireContains(t, out, "╭")
	if renderTable(nil, nil, nil) != "" {
		t.Fatal("expected empty output without headers")
	}
	if got := renderTSV([]string{"a", "b"}, [][]string{{"1"}}); got != "a\tb\n1\t\n" {
		t.Fatalf("unexpected tsv %q", got)
	}
}
