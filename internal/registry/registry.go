// Package registry holds the static people data shown on the TRANSIT panels.
// Records are loaded once at startup and never mutated afterwards.
package registry

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

//go:embed people.toml
var defaultPeople []byte

// ErrEmpty is returned when a data file defines no owners and no pros.
var ErrEmpty = errors.New("registry: no people defined")

// PersonRecord describes one displayed person.
// Owners carry a Bio; pros carry a ProfileURL instead.
type PersonRecord struct {
	Name       string `toml:"name" yaml:"name"`
	Handle     string `toml:"handle" yaml:"handle"`
	ImageURL   string `toml:"image_url" yaml:"image_url"`
	Bio        string `toml:"bio,omitempty" yaml:"bio,omitempty"`
	ProfileURL string `toml:"profile_url,omitempty" yaml:"profile_url,omitempty"`
}

// file is the on-disk shape shared by the TOML and YAML formats.
type file struct {
	Owners []PersonRecord `toml:"owners" yaml:"owners"`
	Pros   []PersonRecord `toml:"pros" yaml:"pros"`
}

// Registry is the immutable set of owners and pros.
type Registry struct {
	owners []PersonRecord
	pros   []PersonRecord
}

// New builds a registry from the given collections. The slices are copied.
func New(owners, pros []PersonRecord) *Registry {
	return &Registry{
		owners: append([]PersonRecord(nil), owners...),
		pros:   append([]PersonRecord(nil), pros...),
	}
}

// Default returns the registry built from the embedded people.toml.
func Default() *Registry {
	r, err := parseTOML(defaultPeople)
	if err != nil {
		// The embedded file is part of the build; a parse failure is a programming error.
		panic(fmt.Sprintf("registry: embedded people.toml: %v", err))
	}
	return r
}

// Load reads a registry from path. The format follows the extension:
// .yaml/.yml is parsed as YAML, anything else as TOML.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading people file: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return parseYAML(data)
	default:
		return parseTOML(data)
	}
}

func parseTOML(data []byte) (*Registry, error) {
	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing people toml: %w", err)
	}
	return fromFile(f)
}

func parseYAML(data []byte) (*Registry, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing people yaml: %w", err)
	}
	return fromFile(f)
}

func fromFile(f file) (*Registry, error) {
	if len(f.Owners) == 0 && len(f.Pros) == 0 {
		return nil, ErrEmpty
	}
	for i, p := range f.Owners {
		if p.Name == "" {
			return nil, fmt.Errorf("owner %d: missing name", i)
		}
	}
	for i, p := range f.Pros {
		if p.Name == "" {
			return nil, fmt.Errorf("pro %d: missing name", i)
		}
	}
	return New(f.Owners, f.Pros), nil
}

// Owners returns a copy of the ordered owners collection.
func (r *Registry) Owners() []PersonRecord {
	return append([]PersonRecord(nil), r.owners...)
}

// Pros returns a copy of the ordered pros collection.
func (r *Registry) Pros() []PersonRecord {
	return append([]PersonRecord(nil), r.pros...)
}

// Owner returns the owner at index i.
func (r *Registry) Owner(i int) (PersonRecord, bool) {
	if i < 0 || i >= len(r.owners) {
		return PersonRecord{}, false
	}
	return r.owners[i], true
}

// Pro returns the pro at index i.
func (r *Registry) Pro(i int) (PersonRecord, bool) {
	if i < 0 || i >= len(r.pros) {
		return PersonRecord{}, false
	}
	return r.pros[i], true
}
