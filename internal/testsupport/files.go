package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// ValidPage is a well-formed annotation document with nested symbols.
const ValidPage = `<?xml version="1.0" encoding="UTF-8"?>
<Annotations version="1.0" source="page-001.png">
    <Symbol interline="20" id="1" shape="gClef">
        <Bounds x="12" y="30.5" w="18" h="52"></Bounds>
    </Symbol>
    <Symbol interline="20" id="2" shape="beam">
        <Bounds x="100" y="40" w="60" h="8"></Bounds>
        <Symbol interline="20" id="3" shape="noteheadBlack">
            <Bounds x="100" y="60" w="12.75" h="10"></Bounds>
        </Symbol>
        <Symbol interline="20" id="4" shape="noteheadBlack">
            <Bounds x="148" y="62" w="12.75" h="10"></Bounds>
        </Symbol>
    </Symbol>
</Annotations>
`

// DriftPage carries one renamed shape token and one symbol without a shape.
const DriftPage = `<?xml version="1.0" encoding="UTF-8"?>
<Annotations version="1.0" source="page-002.png">
    <Symbol interline="18" id="7" shape="noteheadBlak">
        <Bounds x="1" y="2" w="3" h="4"></Bounds>
    </Symbol>
    <Symbol interline="18">
        <Bounds x="5" y="6" w="7" h="8"></Bounds>
    </Symbol>
</Annotations>
`

// BrokenPage has a malformed coordinate in its second symbol.
const BrokenPage = `<?xml version="1.0" encoding="UTF-8"?>
<Annotations>
    <Symbol interline="20" shape="stem">
        <Bounds x="0" y="0" w="1" h="30"></Bounds>
    </Symbol>
    <Symbol interline="20" shape="stem">
        <Bounds x="1,5" y="0" w="1" h="30"></Bounds>
    </Symbol>
</Annotations>
`

// WriteFile writes content to dir/name, creating parent directories, and
// returns the full path.
func WriteFile(t testing.TB, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// ReadFile returns the content of path or fails the test.
func ReadFile(t testing.TB, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}
