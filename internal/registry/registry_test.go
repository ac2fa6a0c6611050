package registry

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault_OwnersAndPros(t *testing.T) {
	r := Default()
	owners := r.Owners()
	if len(owners) != 7 {
		t.Fatalf("Owners: expected 7, got %d", len(owners))
	}
	if owners[0].Name != "Kipp" || owners[0].Handle != "kipp3fn" {
		t.Errorf("first owner: got %+v", owners[0])
	}
	if owners[0].Bio == "" {
		t.Error("owners should carry a bio")
	}
	pros := r.Pros()
	if len(pros) != 2 {
		t.Fatalf("Pros: expected 2, got %d", len(pros))
	}
	for _, p := range pros {
		if p.ProfileURL == "" {
			t.Errorf("pro %q: expected profile url", p.Name)
		}
	}
}

func TestRegistry_ReturnsCopies(t *testing.T) {
	r := Default()
	owners := r.Owners()
	owners[0].Name = "mutated"
	if got, _ := r.Owner(0); got.Name != "Kipp" {
		t.Errorf("registry mutated through returned slice: %q", got.Name)
	}
}

func TestRegistry_IndexBounds(t *testing.T) {
	r := Default()
	if _, ok := r.Owner(-1); ok {
		t.Error("Owner(-1): expected !ok")
	}
	if _, ok := r.Pro(99); ok {
		t.Error("Pro(99): expected !ok")
	}
}

func TestLoad_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "people.yaml")
	data := []byte(`owners:
  - name: Ada
    handle: ada
    image_url: https://example.com/a/ada.png
    bio: Engine.
pros:
  - name: Bo
    profile_url: https://example.com/bo
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	r, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if o, _ := r.Owner(0); o.Handle != "ada" {
		t.Errorf("owner handle: got %q", o.Handle)
	}
	if p, _ := r.Pro(0); p.ProfileURL != "https://example.com/bo" {
		t.Errorf("pro url: got %q", p.ProfileURL)
	}
}

func TestLoad_TOMLEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "people.toml")
	if err := os.WriteFile(path, []byte("# nothing\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if !errors.Is(err, ErrEmpty) {
		t.Errorf("Load empty: expected ErrEmpty, got %v", err)
	}
}

func TestLoad_MissingName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "people.toml")
	if err := os.WriteFile(path, []byte("[[owners]]\nhandle = \"x\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load: expected error for owner without name")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load missing: expected ErrNotExist, got %v", err)
	}
}
