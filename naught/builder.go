package naught

const (
	defaultTypeName = "Null"
	defaultDisplay  = "<null>"
)

// Builder accumulates the configuration of a null-object type as an ordered
// list of Operations. Configuration methods only enqueue work and never fail;
// nothing is applied until Finalize.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	catchAllDefined bool
	operations      []Operation
	root            Root
	name            string
	display         func() string
}

// NewBuilder returns an empty Builder on the bare root.
func NewBuilder() *Builder {
	return &Builder{
		root:    RootBare,
		name:    defaultTypeName,
		display: func() string { return defaultDisplay },
	}
}

// MimicOption configures Mimic.
type MimicOption func(*mimicConfig)

type mimicConfig struct {
	includeInherited bool
}

// WithoutInherited restricts Mimic to the methods the target declares itself.
func WithoutInherited() MimicOption {
	return func(c *mimicConfig) { c.includeInherited = false }
}

// Defer enqueues an arbitrary operation. Nil operations are ignored.
func (b *Builder) Defer(op Operation) {
	if op == nil {
		return
	}
	b.operations = append(b.operations, op)
}

// IsInterfaceDefined reports whether a strategy for unrecognized members
// (nil catch-all, black hole or mimicry) has been chosen.
func (b *Builder) IsInterfaceDefined() bool { return b.catchAllDefined }

// DefineExplicitConversions registers ToString, ToInt, ToFloat, ToComplex,
// ToRat, ToSlice, ToMap and ToJSON, all returning zero values.
func (b *Builder) DefineExplicitConversions() {
	b.Defer(defineExplicitConversions)
}

// DefineImplicitConversions registers AsSlice and AsString.
//
// AsString backs MarshalText, so instances encode as empty text. AsSlice is
// only reachable through Invoke or Convert; no Go interface coerces a value
// to a slice, so nothing calls it implicitly.
func (b *Builder) DefineImplicitConversions() {
	b.Defer(defineImplicitConversions)
}

// Singleton restricts the type to one lazily created shared instance.
func (b *Builder) Singleton() {
	b.Defer(singleton)
}

// RespondToMissingWithNil makes every unrecognized member return nil and
// every RespondsTo query answer true.
func (b *Builder) RespondToMissingWithNil() {
	b.Defer(respondToMissingWithNil)
	b.catchAllDefined = true
}

// BlackHole makes every unrecognized member return the receiver and every
// RespondsTo query answer true.
func (b *Builder) BlackHole() {
	b.Defer(blackHole)
	b.catchAllDefined = true
}

// UseRoot selects the root profile explicitly.
func (b *Builder) UseRoot(r Root) {
	b.root = r
}

// Mimic stubs every method of s with a member returning nil.
//
// The root is resolved from s (see RootOf) and the display becomes
// "<null:Name>". Members outside the surface are not caught: invoking
// them fails exactly as on any type lacking them.
func (b *Builder) Mimic(s Surface, opts ...MimicOption) {
	cfg := mimicConfig{includeInherited: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	b.root = RootOf(s)
	b.name = defaultTypeName + "<" + s.Name + ">"
	display := "<null:" + s.Name + ">"
	b.display = func() string { return display }
	b.Defer(mimic(s, cfg.includeInherited))
	b.catchAllDefined = true
}

// Finalize generates the type: identity and display members first, then the
// root's members, then every queued operation in insertion order.
//
// Each call seals a new, independent Type from the same queue.
func (b *Builder) Finalize() *Type {
	def := newTypeDef(b.name, b.root, b.display)
	defineBasicMembers(def)
	defineRootMembers(def, b.root)
	for _, op := range b.operations {
		op(def)
	}

	return seal(typeSeq.Add(1), def)
}

// defineBasicMembers registers the identity and display members.
func defineBasicMembers(def *TypeDef) {
	def.Define(MemberType, func(self *Instance, _ ...any) any { return self.Type() })
	def.Define(MemberInspect, func(self *Instance, _ ...any) any { return self.typ.display() })
}
