package naught

// Build creates a null-object type.
//
// The configurators run in order against a fresh Builder. If none of them
// chose a strategy for unrecognized members, the nil-returning catch-all is
// applied, so every type has a defined policy for unknown members.
func Build(configurators ...func(*Builder)) *Type {
	b := NewBuilder()
	for _, configure := range configurators {
		if configure != nil {
			configure(b)
		}
	}

	if !b.IsInterfaceDefined() {
		b.RespondToMissingWithNil()
	}

	return b.Finalize()
}
