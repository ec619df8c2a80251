package main

import (
	"os"
	"testing"

	"omrdata/internal/testsupport"
)

const untidyPage = `<Annotations source="page-009.png">
  <Symbol shape="ledger" interline="20" id="5">
    <Bounds x="10.123456" y="2.50" w="30" h="1.0000"/>
  </Symbol>
</Annotations>`

const tidyPage = `<?xml version="1.0" encoding="UTF-8"?>
<Annotations version="1.0" source="page-009.png">
    <Symbol interline="20" id="5" shape="legerLine">
        <Bounds x="10.123" y="2.5" w="30" h="1"></Bounds>
    </Symbol>
</Annotations>
`

func TestFormatPrintsCanonicalForm(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithAliases(map[string]string{"ledger": "legerLine"}))
	path := env.page(t, "untidy.xml", untidyPage)

	out, _, err := env.run(t, "format", path)
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if out != tidyPage {
		t.Fatalf("unexpected canonical form:\n%s", out)
	}
	if got := testsupport.ReadFile(t, path); got != untidyPage {
		t.Fatal("format without --write must not modify the file")
	}
}

func TestFormatCheckAndWrite(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithAliases(map[string]string{"ledger": "legerLine"}))
	untidy := env.page(t, "untidy.xml", untidyPage)
	env.page(t, "tidy.xml", testsupport.ValidPage)

	out, _, err := env.run(t, "format", "--check", env.pagesDir)
	if err == nil {
		t.Fatal("expected --check to fail for a non-canonical file")
	}
	if out != untidy+"\n" {
		t.Fatalf("expected only the untidy file listed, got %q", out)
	}

	out, _, err = env.run(t, "format", "--write", "--backup", untidy)
	if err != nil {
		t.Fatalf("format --write: %v", err)
	}
	requireContains(t, out, "formatted "+untidy)
	if got := testsupport.ReadFile(t, untidy); got != tidyPage {
		t.Fatalf("unexpected rewritten file:\n%s", got)
	}
	if got := testsupport.ReadFile(t, untidy+".bak"); got != untidyPage {
		t.Fatal("expected backup of the original")
	}
	if err := os.Remove(untidy + ".bak"); err != nil {
		t.Fatal(err)
	}

	out, _, err = env.run(t, "format", "--check", env.pagesDir)
	if err != nil {
		t.Fatalf("expected canonical files to pass --check: %v (%s)", err, out)
	}
	if out != "" {
		t.Fatalf("expected no files listed, got %q", out)
	}
}

func TestFormatWriteKeepsUnknownShapes(t *testing.T) {
	env := setupCLITestEnv(t)
	path := env.page(t, "drift.xml", testsupport.DriftPage)
	original := testsupport.ReadFile(t, path)

	_, _, err := env.run(t, "format", "--write", path)
	if err == nil {
		t.Fatal("expected files with unknown shapes to be skipped")
	}
	if testsupport.ReadFile(t, path) != original {
		t.Fatal("file with unknown shapes must be left untouched")
	}

	if _, _, err := env.run(t, "format", "--write", "--drop-unknown", path); err != nil {
		t.Fatalf("format --drop-unknown: %v", err)
	}
	requireNotContains(t, testsupport.ReadFile(t, path), "noteheadBlak")
}

func TestFormatRejectsBrokenFile(t *testing.T) {
	env := setupCLITestEnv(t)
	path := env.page(t, "broken.xml", testsupport.BrokenPage)
	if _, _, err := env.run(t, "format", "--write", path); err == nil {
		t.Fatal("expected structural error")
	}
	if testsupport.ReadFile(t, path) != testsupport.BrokenPage {
		t.Fatal("broken file must be left untouched")
	}
}
