// Package analyze provides package loading and surface extraction.
//
// It uses golang.org/x/tools/go/packages with go/types to describe every
// exported named type of the loaded packages as a naught.Surface: the
// methods the type declares itself, the surfaces it embeds, and whether it
// is comparable. Unlike reflection, go/types tells declared methods apart
// from promoted ones, so a method a type redeclares stays its own.
//
// Key types:
//   - TypeID: package import path + type name
//   - SurfaceGraph: all surfaces of the loaded packages
//   - Entry: a selected surface, ready for code generation
package analyze
