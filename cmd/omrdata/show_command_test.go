package main

import (
	"encoding/json"
	"testing"

	"omrdata/internal/testsupport"
)

func TestShowTree(t *testing.T) {
	env := setupCLITestEnv(t)
	path := env.page(t, "page.xml", testsupport.ValidPage)

	out, _, err := env.run(t, "show", path)
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	requireContains(t, out, "Source: page-001.png")
	requireContains(t, out, "Symbol{gClef interline:20 id:1 [x=12,y=30.5,w=18,h=52]}")
	requireContains(t, out, "Symbol{beam OUTER interline:20 id:2 [x=100,y=40,w=60,h=8]}")
	requireContains(t, out, "\n  Symbol{noteheadBlack interline:20 id:3 [x=100,y=60,w=12.75,h=10]}")
}

func TestShowTable(t *testing.T) {
	env := setupCLITestEnv(t)
	path := env.page(t, "drift.xml", testsupport.DriftPage)

	out, _, err := env.run(t, "show", "--table", path)
	if err != nil {
		t.Fatalf("show --table: %v", err)
	}
	requireContains(t, out, "Path\tID\tShape\tLabel\tInterline\tX\tY\tW\tH")
	requireContains(t, out, "Annotations/Symbol[0]\t7\t-\t\t18\t1\t2\t3\t4")
	requireContains(t, out, "Annotations/Symbol[1]\t\t-\t\t18\t5\t6\t7\t8")
}

func TestShowJSON(t *testing.T) {
	env := setupCLITestEnv(t)
	path := env.page(t, "page.xml", testsupport.ValidPage)

	out, _, err := env.run(t, "show", "--json", path)
	if err != nil {
		t.Fatalf("show --json: %v", err)
	}
	var view struct {
		Source  string `json:"source"`
		Total   int    `json:"total"`
		Symbols []struct {
			Path  string `json:"path"`
			Label string `json:"label"`
		} `json:"symbols"`
	}
	if err := json.Unmarshal([]byte(out), &view); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if view.Source != "page-001.png" || view.Total != 4 || view.Symbols[0].Label != "G Clef" {
		t.Fatalf("unexpected view: %+v", view)
	}
}

func TestShowBrokenFile(t *testing.T) {
	env := setupCLITestEnv(t)
	path := env.page(t, "broken.xml", testsupport.BrokenPage)
	_, _, err := env.run(t, "show", path)
	if err == nil {
		t.Fatal("expected structural error")
	}
	requireContains(t, err.Error(), "Annotations/Symbol[1]/Bounds")
}
