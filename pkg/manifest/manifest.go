// Package manifest reads featgate.toml build manifests.
//
// A manifest declares the package identity, its feature lists, and its direct
// dependency edges:
//
//	[package]
//	name = "myapp"
//	version = "0.1.0"
//
//	[features]
//	default = ["json", "logging"]
//	optional = ["metrics"]
//
//	[dependencies.libjson]
//	version = "1.2"
//	features = ["simd"]
//	default_features = false
//
//	[dependencies.libmetrics]
//	version = "0.4"
//	only_features = ["metrics"]
//
// The features table and each only_features option are kept as raw values so
// the features package can distinguish shape errors from content errors.
package manifest

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/featgate/featgate/pkg/errors"
	"github.com/featgate/featgate/pkg/features"
)

// Filename is the canonical manifest filename.
const Filename = "featgate.toml"

// Manifest is a decoded featgate.toml file.
type Manifest struct {
	Package      Package               `toml:"package"`
	Features     any                   `toml:"features"`
	Dependencies map[string]Dependency `toml:"dependencies"`

	path string
}

// Package identifies the unit the manifest describes.
type Package struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

// Dependency is one direct dependency edge as declared in the manifest.
type Dependency struct {
	Version         string   `toml:"version"`
	Features        []string `toml:"features"`
	DefaultFeatures *bool    `toml:"default_features"`
	OnlyFeatures    any      `toml:"only_features"`
}

// IncludeDefaults reports whether the dependency's default features should
// be included. Unset defaults to true.
func (d Dependency) IncludeDefaults() bool {
	return d.DefaultFeatures == nil || *d.DefaultFeatures
}

// Edge pairs a dependency name with its declared edge options.
type Edge struct {
	Name string
	Dep  Dependency
}

// Load reads and validates the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "manifest not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "failed to read %s", path)
	}
	m, err := Decode(data)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "in %s", path)
	}
	m.path = path
	return m, nil
}

// Decode parses manifest bytes and validates package and dependency names.
// Feature configuration is deliberately not validated here; that happens in
// the features package so each malformed input gets its specific error.
func Decode(data []byte) (*Manifest, error) {
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "failed to decode manifest")
	}

	if m.Package.Name == "" {
		return nil, errors.New(errors.ErrCodeInvalidManifest, "manifest is missing package.name")
	}
	for name := range m.Dependencies {
		if err := errors.ValidateDependencyName(name); err != nil {
			return nil, err
		}
	}
	return &m, nil
}

// Path returns the file the manifest was loaded from, if any.
func (m *Manifest) Path() string { return m.path }

// Name returns the declared package name.
func (m *Manifest) Name() string { return m.Package.Name }

// Declaration validates the manifest's raw features table and returns it as
// a feature declaration.
func (m *Manifest) Declaration() (features.Declaration, error) {
	return features.ParseDeclaration(m.Features, m.Package.Name)
}

// FeatureState resolves the manifest's feature declaration into a canonical
// enabled/disabled map. Non-fatal findings go to rep; rep may be nil.
func (m *Manifest) FeatureState(rep features.Reporter) (*features.State, error) {
	return features.Parse(m.Features, m.Package.Name, rep)
}

// Edges returns the direct dependency edges sorted by name, so graph
// construction and reporting are deterministic regardless of map order.
func (m *Manifest) Edges() []Edge {
	edges := make([]Edge, 0, len(m.Dependencies))
	for name, dep := range m.Dependencies {
		edges = append(edges, Edge{Name: name, Dep: dep})
	}
	slices.SortFunc(edges, func(a, b Edge) int { return strings.Compare(a.Name, b.Name) })
	return edges
}

// DirLoader loads dependency manifests from a vendor-style directory layout,
// where each dependency lives at <Root>/<name>/featgate.toml.
//
// A dependency without a manifest is not an error: it simply declares no
// features, which downstream resolution treats as an empty declaration.
type DirLoader struct {
	Root string
}

// Load implements the depgraph loader contract.
func (l DirLoader) Load(name string) (*Manifest, error) {
	path := filepath.Join(l.Root, name, Filename)
	m, err := Load(path)
	if err != nil {
		if errors.Is(err, errors.ErrCodeFileNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return m, nil
}
