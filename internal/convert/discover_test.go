// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "b.odt"))
	touch(t, filepath.Join(dir, "a.odt"))
	touch(t, filepath.Join(dir, "C.ODT"))
	touch(t, filepath.Join(dir, "notes.txt"))
	touch(t, filepath.Join(dir, "sub", "d.odt"))

	got, err := Discover(dir, ".odt", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		filepath.Join(dir, "C.ODT"),
		filepath.Join(dir, "a.odt"),
		filepath.Join(dir, "b.odt"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Discover = %v, want %v", got, want)
	}
}

func TestDiscover_Recurse(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.odt"))
	touch(t, filepath.Join(dir, "sub", "deep", "b.odt"))
	touch(t, filepath.Join(dir, "sub", "c.docx"))

	got, err := Discover(dir, ".odt", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		filepath.Join(dir, "a.odt"),
		filepath.Join(dir, "sub", "deep", "b.odt"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Discover = %v, want %v", got, want)
	}
}

func TestDiscover_IgnoresDirectories(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "folder.odt"), 0o755); err != nil {
		t.Fatal(err)
	}
	touch(t, filepath.Join(dir, "real.odt"))

	got, err := Discover(dir, ".odt", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{filepath.Join(dir, "real.odt")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Discover = %v, want %v", got, want)
	}
}

func TestDiscover_MissingDir(t *testing.T) {
	if _, err := Discover(filepath.Join(t.TempDir(), "absent"), ".odt", false); err == nil {
		t.Fatal("expected error for missing directory, got nil")
	}
}
