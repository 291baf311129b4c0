// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAtomicWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	if err := AtomicWriteFile(path, []byte("one"), 0o644); err != nil {
		t.Fatal(err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != "one" {
		t.Fatalf("read back %q", raw)
	}
	if err := AtomicWriteFile(path, []byte("two"), 0o644); err != nil {
		t.Fatal(err)
	}
	if raw, err = os.ReadFile(path); err != nil || string(raw) != "two" {
		t.Fatalf("overwrite failed: %q %v", raw, err)
	}
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("temporary file left behind: %#v", entries)
	}
}

func TestStableSortWithKey(t *testing.T) {
	type kv struct{ k, v string }
	s := []kv{{"b", "1"}, {"a", "2"}, {"b", "3"}, {"a", "4"}}
	StableSortWithKey(s, func(x kv) string { return x.k })
	expected := []kv{{"a", "2"}, {"a", "4"}, {"b", "1"}, {"b", "3"}}
	for i, want := range expected {
		if s[i] != want {
			t.Fatalf("sort not stable: %#v", s)
		}
	}
}
