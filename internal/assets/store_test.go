package assets

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStore_ImagePath(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	got := store.ImagePath("951ed5a1314f01b06148407ca0ae5f56.png")
	want := filepath.Join(dir, "images", "951ed5a1314f01b06148407ca0ae5f56.png")
	if got != want {
		t.Errorf("ImagePath: expected %q, got %q", want, got)
	}
}

func TestStore_ImagePath_DropsDirectories(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	got := store.ImagePath("../../etc/passwd")
	want := filepath.Join(dir, "images", "passwd")
	if got != want {
		t.Errorf("ImagePath: expected %q, got %q", want, got)
	}
}

func TestStore_Copy_Missing(t *testing.T) {
	store := NewStore(t.TempDir())
	if got := store.Copy("welcome"); got != "" {
		t.Errorf("Copy missing: expected empty, got %q", got)
	}
}

func TestStore_Copy_ReadsOverride(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "copy"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "copy", "map.md"), []byte("  # Map\n\nCustom\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	store := NewStore(dir)
	if got := store.Copy("Map"); got != "# Map\n\nCustom" {
		t.Errorf("Copy: got %q", got)
	}
}
