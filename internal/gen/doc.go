// Package gen emits Go source that declares naught.Surface values for the
// types selected by a manifest.
//
// Code is built with jennifer, so imports and formatting are handled by the
// renderer. The output holds:
//   - one exported variable per selected type, named after its package alias
//     and type name (e.g. ShapesCircle)
//   - a Surfaces index keyed by the qualified type name
//
// Mimicking a generated surface with naught.Builder.Mimic gives exact
// declared-method lists, which reflection alone cannot provide.
package gen
