package analyze

import (
	"cmp"
	"slices"

	"naught-generator/internal/common"
	"naught-generator/naught"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "naught-generator/examples/shapes"
	Name    string // e.g., "Circle"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// Compare orders TypeIDs by package path, then name.
func (t TypeID) Compare(other TypeID) int {
	return cmp.Or(cmp.Compare(t.PkgPath, other.PkgPath), cmp.Compare(t.Name, other.Name))
}

// Entry is a surface selected for code generation.
type Entry struct {
	ID      TypeID
	Surface naught.Surface
}

// SurfaceGraph holds the surfaces of all analyzed types.
type SurfaceGraph struct {
	// Surfaces maps TypeID to the surface of every exported named type.
	Surfaces map[TypeID]naught.Surface
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
	// Patterns maps each pattern given to LoadPackages to the import paths
	// it resolved to.
	Patterns map[string][]string
}

// NewSurfaceGraph creates a new empty SurfaceGraph.
func NewSurfaceGraph() *SurfaceGraph {
	return &SurfaceGraph{
		Surfaces: make(map[TypeID]naught.Surface),
		Packages: make(map[string]*PackageInfo),
		Patterns: make(map[string][]string),
	}
}

// Get returns the surface for a TypeID.
func (g *SurfaceGraph) Get(id TypeID) (naught.Surface, bool) {
	s, ok := g.Surfaces[id]
	return s, ok
}

// PackagesFor returns the packages a load pattern resolved to. An import
// path that was loaded under a different pattern resolves to itself.
func (g *SurfaceGraph) PackagesFor(pattern string) []*PackageInfo {
	var out []*PackageInfo
	for _, path := range g.Patterns[pattern] {
		if pkg, ok := g.Packages[path]; ok {
			out = append(out, pkg)
		}
	}

	if len(out) == 0 {
		if pkg, ok := g.Packages[pattern]; ok {
			out = append(out, pkg)
		}
	}

	return out
}

// Lookup resolves "pkg/path.Type" to a surface.
func (g *SurfaceGraph) Lookup(qualified string) (naught.Surface, bool) {
	pkgPath, name := common.SplitQualified(qualified)
	return g.Get(TypeID{PkgPath: pkgPath, Name: name})
}

// Entries returns every surface in the graph, sorted by TypeID.
func (g *SurfaceGraph) Entries() []Entry {
	out := make([]Entry, 0, len(g.Surfaces))
	for id, s := range g.Surfaces {
		out = append(out, Entry{ID: id, Surface: s})
	}

	SortEntries(out)

	return out
}

// SortEntries sorts entries in place by TypeID.
func SortEntries(entries []Entry) {
	slices.SortFunc(entries, func(a, b Entry) int { return a.ID.Compare(b.ID) })
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string   // Import path
	Name  string   // Package name
	Types []TypeID // Exported named types defined in this package
}
