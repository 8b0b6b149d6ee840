package naught

import (
	"reflect"
	"slices"
)

// Surface describes the public method surface of a type for mimicry.
//
// Methods holds the names the type declares itself. Embeds is the type's
// ancestry: the surfaces of embedded fields (or embedded interfaces) whose
// methods the type inherits.
type Surface struct {
	Name       string
	PkgPath    string
	Methods    []string
	Embeds     []Surface
	Comparable bool
}

// NewSurface describes a type by an explicit list of method names.
func NewSurface(name string, methods ...string) Surface {
	return Surface{Name: name, Methods: methods}
}

// QualifiedName returns PkgPath.Name, or Name when the package is unknown.
func (s Surface) QualifiedName() string {
	if s.PkgPath == "" {
		return s.Name
	}

	return s.PkgPath + "." + s.Name
}

// MethodNames returns the sorted, de-duplicated member names of s.
// Inherited names from Embeds are included when includeInherited is true.
func (s Surface) MethodNames(includeInherited bool) []string {
	names := slices.Clone(s.Methods)
	if includeInherited {
		for _, e := range s.Embeds {
			names = append(names, e.MethodNames(true)...)
		}
	}
	slices.Sort(names)

	return slices.Compact(names)
}

// SurfaceFor returns the surface of T. See SurfaceOf.
func SurfaceFor[T any]() Surface {
	return SurfaceOf(reflect.TypeFor[T]())
}

// SurfaceOf derives a surface from a reflect.Type.
//
// Pointer types are dereferenced; the method set of *T is used so that
// pointer-receiver methods are included. Anonymous struct fields become
// Embeds and their methods are removed from Methods. Reflection cannot tell
// a method T redeclares from one it inherits, so a redeclared method is
// reported as inherited; use the generated surfaces of cmd/naught-gen when
// that distinction matters.
func SurfaceOf(t reflect.Type) Surface {
	return surfaceOf(t, make(map[reflect.Type]bool))
}

func surfaceOf(t reflect.Type, seen map[reflect.Type]bool) Surface {
	if t == nil {
		return Surface{}
	}
	for t.Kind() == reflect.Pointer && t.Name() == "" {
		t = t.Elem()
	}

	s := Surface{
		Name:       t.Name(),
		PkgPath:    t.PkgPath(),
		Comparable: t.Comparable(),
	}
	if s.Name == "" {
		s.Name = t.String()
	}
	if seen[t] {
		return s
	}
	seen[t] = true
	defer delete(seen, t)

	promoted := make(map[string]bool)
	if t.Kind() == reflect.Struct {
		for i := range t.NumField() {
			f := t.Field(i)
			if !f.Anonymous {
				continue
			}

			embed := surfaceOf(f.Type, seen)
			s.Embeds = append(s.Embeds, embed)
			for _, name := range embed.MethodNames(true) {
				promoted[name] = true
			}
		}
	}

	methodSet := t
	if t.Kind() != reflect.Interface {
		methodSet = reflect.PointerTo(t)
	}
	for i := range methodSet.NumMethod() {
		m := methodSet.Method(i)
		if !m.IsExported() || promoted[m.Name] {
			continue
		}
		s.Methods = append(s.Methods, m.Name)
	}

	return s
}
