// Package assets resolves the local asset directory: fallback images and
// optional panel copy overrides.
package assets

import (
	"os"
	"path"
	"path/filepath"
	"strings"
)

const (
	// ImagesDir is the sub-directory holding fallback images.
	ImagesDir = "images"
	// CopyDir is the sub-directory holding optional markdown panel copy.
	CopyDir = "copy"
)

// Store reads local assets.
// Layout: <base>/images/<filename>, <base>/copy/<panel>.md
type Store struct {
	baseDir string
}

// NewStore creates a store rooted at baseDir.
func NewStore(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// BaseDir returns the root directory.
func (s *Store) BaseDir() string {
	return s.baseDir
}

// ImagePath returns the local path for an image filename.
// Any directory components in name are dropped.
func (s *Store) ImagePath(name string) string {
	return filepath.Join(s.baseDir, ImagesDir, path.Base(filepath.ToSlash(name)))
}

// Copy returns the markdown override for a panel, or "" if none exists.
// Missing files are not an error.
func (s *Store) Copy(panel string) string {
	normalized := strings.ToLower(strings.TrimSpace(panel))
	if normalized == "" {
		return ""
	}
	return readFile(filepath.Join(s.baseDir, CopyDir, normalized+".md"))
}

func readFile(path string) string {
	b, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}
