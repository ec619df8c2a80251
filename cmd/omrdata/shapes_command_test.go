package main

import (
	"encoding/json"
	"strings"
	"testing"

	"omrdata/internal/testsupport"
)

func TestShapesListsVocabulary(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithAliases(map[string]string{"ledger": "legerLine"}))

	out, _, err := env.run(t, "shapes")
	if err != nil {
		t.Fatalf("shapes: %v", err)
	}
	requireContains(t, out, "Shape\tLabel\tAliases")
	requireContains(t, out, "noteheadBlack\tNotehead Black\t")
	requireContains(t, out, "legerLine\tLeger Line\tledger")
}

func TestShapesFilter(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := env.run(t, "shapes", "--json", "clef")
	if err != nil {
		t.Fatalf("shapes clef: %v", err)
	}
	var rows []shapeRow
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(rows) == 0 {
		t.Fatal("expected clef shapes")
	}
	for _, row := range rows {
		if !strings.Contains(strings.ToLower(row.Name), "c") {
			t.Fatalf("unexpected match %q", row.Name)
		}
	}

	out, _, err = env.run(t, "shapes", "qqqq")
	if err != nil {
		t.Fatalf("shapes qqqq: %v", err)
	}
	requireContains(t, out, `No shape matches "qqqq"`)
}
