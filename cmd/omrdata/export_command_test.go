package main

import (
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"

	"omrdata/internal/export"
	"omrdata/internal/testsupport"
)

func TestExportJSONDefault(t *testing.T) {
	env := setupCLITestEnv(t)
	path := env.page(t, "drift.xml", testsupport.DriftPage)

	out, _, err := env.run(t, "export", path)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	var view export.View
	if err := json.Unmarshal([]byte(out), &view); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if view.Total != 2 || len(view.Entries) != 2 || view.Entries[0].Shape != "" {
		t.Fatalf("unexpected view: %+v", view)
	}
}

func TestExportYAMLSkipUnclassified(t *testing.T) {
	env := setupCLITestEnv(t)
	env.page(t, "drift.xml", testsupport.DriftPage)
	path := env.page(t, "page.xml", testsupport.ValidPage)

	out, _, err := env.run(t, "export", "--format", "yaml", "--skip-unclassified", path)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	var view export.View
	if err := yaml.Unmarshal([]byte(out), &view); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if view.Total != 4 || view.Skipped != 0 || view.Entries[1].Shape != "beam" {
		t.Fatalf("unexpected view: %+v", view)
	}

	drift := env.pagesDir + "/drift.xml"
	out, stderr, err := env.run(t, "--log-level", "warn", "export", "-f", "yaml", "--skip-unclassified", drift)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if err := yaml.Unmarshal([]byte(out), &view); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if view.Skipped != 2 || len(view.Entries) != 0 {
		t.Fatalf("expected every unclassified symbol skipped, got %+v", view)
	}
	requireContains(t, stderr, "skipping unclassified symbol")
}

func TestExportConfigDefaults(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithSkipUnclassified(true))
	path := env.page(t, "drift.xml", testsupport.DriftPage)

	out, _, err := env.run(t, "export", path)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	var view export.View
	if err := json.Unmarshal([]byte(out), &view); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if view.Skipped != 2 {
		t.Fatalf("expected config to enable skipping, got %+v", view)
	}

	if _, _, err := env.run(t, "export", "--format", "csv", path); err == nil {
		t.Fatal("expected unsupported format error")
	}
}
