package analyze

import (
	"errors"
	"fmt"
	"go/types"

	"github.com/rs/zerolog"
	"golang.org/x/tools/go/packages"

	"naught-generator/naught"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedTypes |
	packages.NeedImports

// Analyzer loads Go packages and builds a surface graph.
type Analyzer struct {
	graph  *SurfaceGraph
	logger zerolog.Logger
}

// NewAnalyzer creates a new Analyzer that does not log.
func NewAnalyzer() *Analyzer {
	return NewAnalyzerWithLogger(zerolog.Nop())
}

// NewAnalyzerWithLogger creates a new Analyzer that logs to logger.
func NewAnalyzerWithLogger(logger zerolog.Logger) *Analyzer {
	return &Analyzer{
		graph:  NewSurfaceGraph(),
		logger: logger,
	}
}

// LoadPackages loads the specified packages and adds their surfaces to the graph.
// Patterns are standard Go package patterns (e.g., "./shapes", "io"); each is
// loaded on its own so the graph records which import paths it resolved to.
func (a *Analyzer) LoadPackages(patterns ...string) (*SurfaceGraph, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
	}

	var errs []error
	for _, pattern := range patterns {
		pkgs, err := packages.Load(cfg, pattern)
		if err != nil {
			return nil, fmt.Errorf("failed to load packages %q: %w", pattern, err)
		}

		failed := false
		for _, pkg := range pkgs {
			for _, e := range pkg.Errors {
				errs = append(errs, e)
				failed = true
			}
		}
		if failed {
			continue
		}

		paths := make([]string, 0, len(pkgs))
		for _, pkg := range pkgs {
			a.processPackage(pkg)
			paths = append(paths, pkg.PkgPath)
		}
		a.graph.Patterns[pattern] = paths

		a.logger.Debug().Str("pattern", pattern).Strs("packages", paths).Msg("loaded packages")
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	return a.graph, nil
}

// Graph returns the current surface graph.
func (a *Analyzer) Graph() *SurfaceGraph {
	return a.graph
}

// processPackage extracts the surfaces of a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) {
	pkgInfo := &PackageInfo{
		Path: pkg.PkgPath,
		Name: pkg.Name,
	}

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !typeName.Exported() || typeName.IsAlias() {
			continue
		}

		named, ok := typeName.Type().(*types.Named)
		if !ok {
			continue
		}

		id := TypeID{PkgPath: pkg.PkgPath, Name: name}
		surface := surfaceOf(named, make(map[*types.Named]bool))

		a.graph.Surfaces[id] = surface
		pkgInfo.Types = append(pkgInfo.Types, id)

		a.logger.Debug().
			Str("type", id.String()).
			Int("methods", len(surface.Methods)).
			Int("embeds", len(surface.Embeds)).
			Bool("comparable", surface.Comparable).
			Msg("extracted surface")
	}

	a.graph.Packages[pkg.PkgPath] = pkgInfo
}

// surfaceOf describes a named type: its declared exported methods and the
// surfaces of its embedded fields or embedded interfaces.
func surfaceOf(named *types.Named, seen map[*types.Named]bool) naught.Surface {
	obj := named.Obj()

	s := naught.Surface{
		Name:       obj.Name(),
		Comparable: types.Comparable(named),
	}
	if obj.Pkg() != nil {
		s.PkgPath = obj.Pkg().Path()
	}

	origin := named.Origin()
	if seen[origin] {
		return s
	}
	seen[origin] = true
	defer delete(seen, origin)

	switch u := named.Underlying().(type) {
	case *types.Interface:
		for i := range u.NumExplicitMethods() {
			if m := u.ExplicitMethod(i); m.Exported() {
				s.Methods = append(s.Methods, m.Name())
			}
		}

		for i := range u.NumEmbeddeds() {
			if e, ok := derefNamed(u.EmbeddedType(i)); ok {
				s.Embeds = append(s.Embeds, surfaceOf(e, seen))
			}
		}

	case *types.Struct:
		s.Methods = declaredMethods(named)

		for i := range u.NumFields() {
			f := u.Field(i)
			if !f.Embedded() {
				continue
			}

			if e, ok := derefNamed(f.Type()); ok {
				s.Embeds = append(s.Embeds, surfaceOf(e, seen))
			}
		}

	default:
		s.Methods = declaredMethods(named)
	}

	return s
}

// declaredMethods returns the exported methods declared on named, for both
// value and pointer receivers, in declaration order.
func declaredMethods(named *types.Named) []string {
	var out []string
	for i := range named.NumMethods() {
		if m := named.Method(i); m.Exported() {
			out = append(out, m.Name())
		}
	}

	return out
}

func derefNamed(t types.Type) (*types.Named, bool) {
	t = types.Unalias(t)
	if p, ok := t.(*types.Pointer); ok {
		t = types.Unalias(p.Elem())
	}

	named, ok := t.(*types.Named)
	return named, ok
}
