package manifest

import (
	"fmt"
	"go/token"

	"github.com/bmatcuk/doublestar/v4"

	"naught-generator/internal/common"
	"naught-generator/internal/diagnostic"
)

// Validate checks the manifest structure. It does not load any package.
func Validate(m *Manifest) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if m == nil {
		res.AddError("manifest_is_nil", "manifest is nil", "", "")
		return res
	}

	if m.Version != DefaultVersion {
		res.AddError("unsupported_version", fmt.Sprintf("unsupported manifest version %q", m.Version), "", "")
	}

	if !token.IsIdentifier(m.Package) {
		res.AddError("invalid_package_name", fmt.Sprintf("%q is not a valid Go package name", m.Package), "", "")
	}

	if common.IsEmpty(m.Targets) {
		res.AddWarning("no_targets", "manifest has no targets; nothing will be generated", "", "")
	}

	seen := map[string]struct{}{}

	for _, t := range m.Targets {
		if t.Package == "" {
			res.AddError("missing_package", "target has no package", "", "")
			continue
		}

		if _, ok := seen[t.Package]; ok {
			res.AddWarning("duplicate_target", fmt.Sprintf("package %q is listed more than once", t.Package), t.Package, "")
		}

		seen[t.Package] = struct{}{}

		for _, pattern := range t.Types {
			if !doublestar.ValidatePattern(pattern) {
				res.AddError("invalid_pattern", fmt.Sprintf("invalid type pattern %q", pattern), t.Package, pattern)
			}
		}
	}

	return res
}
