// Package diagnostic provides structured errors, warnings and infos
// collected while extracting surfaces for naught-gen.
//
// Key capabilities:
//   - Manifest validation problems (missing package, bad pattern)
//   - Patterns that match no type in a loaded package
//   - Surfaces with no methods, which mimic to trivial null objects
package diagnostic
