// Package naught builds null-object types on demand.
//
// A null object stands in for an absent value while still answering the
// operations callers expect, so call sites do not need presence checks.
// Types are assembled by a Builder that records deferred Operations and
// applies them, in call order, when the type is finalized.
//
// Strategies:
//   - Explicit and implicit conversions returning zero values
//   - Nil-returning catch-all (the default when nothing else is chosen)
//   - Black hole: unknown members return the receiver, so chains never break
//   - Mimicry: explicit stubs named after another type's methods
//   - Singleton: one lazily created shared instance per generated type
//
// Members are dispatched by name through Instance.Invoke:
//
//	nullType := naught.Build(func(b *naught.Builder) {
//		b.DefineExplicitConversions()
//		b.BlackHole()
//	})
//	null := nullType.New()
//	s, _ := naught.Convert[string](null, "ToString") // ""
//	v, _ := null.Chain("Customer", "Address")        // null itself
//
// Surfaces for mimicry come from reflection (SurfaceOf, SurfaceFor), from an
// explicit list (NewSurface) or from code generated by cmd/naught-gen.
package naught
