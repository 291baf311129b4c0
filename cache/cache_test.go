// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kovidgoyal/fontcache/fontconfig"
)

func TestLoadMetadata(t *testing.T) {
	got, err := LoadMetadata("")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("empty path should yield empty metadata: %#v", got)
	}

	path := filepath.Join(t.TempDir(), "meta.yaml")
	yml := "default_family:\n  sans-serif: DejaVu Sans\n  monospace: DejaVu Sans Mono\n"
	if err := os.WriteFile(path, []byte(yml), 0o600); err != nil {
		t.Fatal(err)
	}
	got, err = LoadMetadata(path)
	if err != nil {
		t.Fatal(err)
	}
	expected := map[string]any{
		"default_family": map[string]any{
			"sans-serif": "DejaVu Sans",
			"monospace":  "DejaVu Sans Mono",
		},
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Fatalf("metadata mismatch (-want +got):\n%s", diff)
	}

	if _, err = LoadMetadata(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("missing metadata file should be an error")
	}
}

func TestDocumentWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache", "fonts.json")
	doc := Document{
		Entries: []fontconfig.FontEntry{
			{File: "/fonts/a.ttf", Family: "A", Style: "normal", Variant: "normal", Weight: 400, Stretch: "normal", Size: "scalable"},
		},
		Metadata: map[string]any{"default_family": "A"},
	}
	if err := doc.Write(path); err != nil {
		t.Fatal(err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var read Document
	if err := json.Unmarshal(raw, &read); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(doc, read); diff != "" {
		t.Fatalf("cache round trip mismatch (-want +got):\n%s", diff)
	}

	// replacing an existing cache leaves the new contents in place
	doc.Entries[0].Family = "B"
	if err := doc.Write(path); err != nil {
		t.Fatal(err)
	}
	raw, err = os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(raw, &read); err != nil {
		t.Fatal(err)
	}
	if read.Entries[0].Family != "B" {
		t.Fatalf("cache not replaced, family is %q", read.Entries[0].Family)
	}

	// no stray temporary files survive a successful write
	names, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 1 {
		t.Fatalf("stray files in cache dir: %#v", names)
	}
}

func TestDocumentWriteEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fonts.json")
	if err := (Document{}).Write(path); err != nil {
		t.Fatal(err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	// nil slices serialize as empty containers, not null
	var as_map map[string]json.RawMessage
	if err := json.Unmarshal(raw, &as_map); err != nil {
		t.Fatal(err)
	}
	if string(as_map["entries"]) != "[]" {
		t.Fatalf("entries serialized as %s", as_map["entries"])
	}
	if string(as_map["metadata"]) != "{}" {
		t.Fatalf("metadata serialized as %s", as_map["metadata"])
	}
}
