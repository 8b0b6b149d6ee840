package manifest

import (
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"naught-generator/internal/common"
)

// Defaults applied to fields left empty.
const (
	DefaultVersion  = "1"
	DefaultPackage  = "surfaces"
	DefaultOutput   = "./surfaces"
	DefaultFilename = "naught_surfaces.go"
)

const filePerm = 0o644

// Manifest is the root of a naught-gen manifest file.
type Manifest struct {
	Version  string   `yaml:"version"`
	Package  string   `yaml:"package"`
	Output   string   `yaml:"output"`
	Filename string   `yaml:"filename"`
	Targets  []Target `yaml:"targets"`
}

// Target selects types from one Go package.
type Target struct {
	// Package is the import path (or go/packages pattern) to load.
	Package string `yaml:"package"`
	// Types are doublestar patterns over type names. Empty selects every
	// exported named type.
	Types []string `yaml:"types,omitempty"`
}

// Matches reports whether the type name is selected by t.
// Invalid patterns never match; Validate reports them.
func (t Target) Matches(name string) bool {
	if len(t.Types) == 0 {
		return true
	}

	for _, pattern := range t.Types {
		if ok, err := doublestar.Match(pattern, name); err == nil && ok {
			return true
		}
	}

	return false
}

// Packages returns the distinct package patterns of all targets, in manifest order.
func (m *Manifest) Packages() []string {
	out := make([]string, 0, len(m.Targets))
	for _, t := range m.Targets {
		out = append(out, t.Package)
	}

	return common.Dedup(out)
}

// LoadFile loads and parses a YAML manifest from the given path.
func LoadFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Manifest and applies defaults.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest

	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest YAML: %w", err)
	}

	applyDefaults(&m)

	return &m, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(m *Manifest) {
	if m.Version == "" {
		m.Version = DefaultVersion
	}

	if m.Package == "" {
		m.Package = DefaultPackage
	}

	if m.Output == "" {
		m.Output = DefaultOutput
	}

	if m.Filename == "" {
		m.Filename = DefaultFilename
	}
}

// Marshal serializes a Manifest to YAML.
func Marshal(m *Manifest) ([]byte, error) {
	return yaml.Marshal(m)
}

// WriteFile writes a Manifest to the given path.
func WriteFile(m *Manifest, path string) error {
	data, err := Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write manifest %s: %w", path, err)
	}

	return nil
}
