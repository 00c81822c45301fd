package career

import (
	"os"
	"path/filepath"
	"testing"
)

func writeExport(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadFile_Array(t *testing.T) {
	dir := t.TempDir()
	writeExport(t, dir, "log.json", `[
		{"id": "a", "date": "2025-01-10", "description": "Led the incident review", "category": "leadership"},
		{"id": "b", "date": "2025-01-11", "description": "Paired on the cache rewrite", "category": "project"}
	]`)

	entries, err := LoadFile(filepath.Join(dir, "log.json"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != "a" || entries[1].ID != "b" {
		t.Errorf("entries out of order: %q, %q", entries[0].ID, entries[1].ID)
	}
}

func TestLoadFile_SingleObject(t *testing.T) {
	dir := t.TempDir()
	writeExport(t, dir, "one.json",
		`{"id": "solo", "date": "2025-02-01", "description": "Wrote the rollout plan", "category": "project"}`)

	entries, err := LoadFile(filepath.Join(dir, "one.json"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(entries) != 1 || entries[0].ID != "solo" {
		t.Fatalf("expected the single entry, got %+v", entries)
	}
}

func TestLoadFile_Malformed(t *testing.T) {
	dir := t.TempDir()
	writeExport(t, dir, "bad.json", `{"id": unquoted}`)

	if _, err := LoadFile(filepath.Join(dir, "bad.json")); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestLoadDir_OrderAndSkip(t *testing.T) {
	dir := t.TempDir()
	writeExport(t, dir, "b.json",
		`[{"id": "b1", "date": "2025-01-03", "description": "Second file", "category": "skill"}]`)
	writeExport(t, dir, "a.json", `[
		{"id": "a1", "date": "2025-01-01", "description": "First file, first entry", "category": "project"},
		{"id": "a2", "date": "2025-01-02", "description": "First file, second entry", "category": "project"}
	]`)
	writeExport(t, dir, "broken.json", `not json at all`)
	writeExport(t, dir, "notes.txt", `ignored`)

	entries, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	want := []string{"a1", "a2", "b1"}
	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(entries))
	}
	for i, id := range want {
		if entries[i].ID != id {
			t.Errorf("entries[%d].ID = %q, want %q", i, entries[i].ID, id)
		}
	}
}

func TestLoadDir_Missing(t *testing.T) {
	entries, err := LoadDir(filepath.Join(t.TempDir(), "absent"))
	if err != nil {
		t.Fatalf("LoadDir on missing dir: %v", err)
	}
	if entries != nil {
		t.Errorf("expected nil entries, got %d", len(entries))
	}
}
