// Package match ranks type names by fuzzy similarity so that diagnostics
// can suggest the type a mistyped manifest pattern probably meant.
//
// Key functions:
//   - NormalizeIdent: folds identifiers to a comparable form
//   - Levenshtein: computes edit distance between strings
//   - Suggest: returns the closest candidates to a name
package match
