// Package common holds small helpers shared by the naught-gen internals.
package common

import (
	"path"
	"strings"
)

// UnknownStr is the String() of enum values outside their defined range.
const UnknownStr = "unknown"

// PkgAlias returns the package alias (last element of path) for a given package path.
// Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	return path.Base(pkgPath)
}

// SplitQualified splits "pkg/path.Type" into its package path and type name.
// A name without a dot has an empty package path.
func SplitQualified(qualified string) (pkgPath, name string) {
	i := strings.LastIndex(qualified, ".")
	if i < 0 || i < strings.LastIndex(qualified, "/") {
		return "", qualified
	}

	return qualified[:i], qualified[i+1:]
}
