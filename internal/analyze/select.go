package analyze

import (
	"fmt"
	"strings"

	"naught-generator/internal/diagnostic"
	"naught-generator/internal/manifest"
	"naught-generator/internal/match"
)

// Select picks the surfaces named by the manifest targets.
//
// Target packages are resolved through the patterns they were loaded with,
// so relative patterns work as well as import paths.
//
// A target package missing from the graph is an error; a type pattern
// matching nothing is a warning; a selected surface without methods is
// reported as info since mimicking it yields a trivial null object.
func Select(g *SurfaceGraph, m *manifest.Manifest) ([]Entry, *diagnostic.Diagnostics) {
	res := &diagnostic.Diagnostics{}
	if g == nil || m == nil {
		res.AddError("nothing_to_select", "surface graph or manifest is nil", "", "")
		return nil, res
	}

	var out []Entry
	picked := make(map[TypeID]struct{})

	for _, target := range m.Targets {
		pkgs := g.PackagesFor(target.Package)
		if len(pkgs) == 0 {
			res.AddError("package_not_loaded",
				fmt.Sprintf("package %q was not loaded", target.Package), target.Package, "")
			continue
		}

		matched := make(map[string]bool, len(target.Types))

		for _, pkg := range pkgs {
			for _, id := range pkg.Types {
				if !target.Matches(id.Name) {
					continue
				}

				for _, pattern := range target.Types {
					if (manifest.Target{Types: []string{pattern}}).Matches(id.Name) {
						matched[pattern] = true
					}
				}

				if _, dup := picked[id]; dup {
					continue
				}
				picked[id] = struct{}{}

				surface := g.Surfaces[id]
				if len(surface.MethodNames(true)) == 0 {
					res.AddInfo("empty_surface", "type has no exported methods", target.Package, id.Name)
				}

				out = append(out, Entry{ID: id, Surface: surface})
			}
		}

		for _, pattern := range target.Types {
			if !matched[pattern] {
				res.AddWarning("pattern_unmatched", unmatchedMessage(pattern, pkgs), target.Package, pattern)
			}
		}
	}

	SortEntries(out)

	return out, res
}

// unmatchedMessage describes a pattern that selected nothing, suggesting the
// closest type names when the pattern is a plain name.
func unmatchedMessage(pattern string, pkgs []*PackageInfo) string {
	msg := fmt.Sprintf("pattern %q matched no exported type", pattern)
	if strings.ContainsAny(pattern, "*?[{\\") {
		return msg
	}

	var names []string
	for _, pkg := range pkgs {
		for _, id := range pkg.Types {
			names = append(names, id.Name)
		}
	}

	if suggestions := match.Suggest(pattern, names, 3); len(suggestions) > 0 {
		msg += "; did you mean " + strings.Join(suggestions, ", ") + "?"
	}

	return msg
}
