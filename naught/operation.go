package naught

// Operation is a deferred mutation of a type under construction.
// Operations are recorded by a Builder and applied in insertion order by Finalize.
type Operation func(def *TypeDef)

// Method implements a member of a generated type.
type Method func(self *Instance, args ...any) any

// Fallback handles any member that is not registered on a generated type.
type Fallback func(self *Instance, name string, args ...any) any

// TypeDef is the mutable method table a generated type is assembled in.
// It only exists while Finalize runs; the result is sealed into a Type.
type TypeDef struct {
	name       string
	root       Root
	methods    map[string]Method
	order      []string
	inherited  map[string]Method
	fallback   Fallback
	respondsTo func(name string) bool
	singleton  bool
	display    func() string
}

func newTypeDef(name string, root Root, display func() string) *TypeDef {
	return &TypeDef{
		name:      name,
		root:      root,
		methods:   make(map[string]Method),
		inherited: make(map[string]Method),
		display:   display,
	}
}

// Name returns the name the generated type will report.
func (d *TypeDef) Name() string { return d.name }

// Root returns the root profile the type is built on.
func (d *TypeDef) Root() Root { return d.root }

// Define registers a member. A later definition of the same name replaces
// the earlier one but keeps its original position in Members.
func (d *TypeDef) Define(name string, m Method) {
	if m == nil {
		d.Undefine(name)
		return
	}
	if _, exists := d.methods[name]; !exists {
		d.order = append(d.order, name)
	}
	d.methods[name] = m
}

// Undefine removes a member. It is a no-op for unknown names.
func (d *TypeDef) Undefine(name string) {
	if _, exists := d.methods[name]; !exists {
		return
	}
	delete(d.methods, name)
	for i, n := range d.order {
		if n == name {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
}

// Defines reports whether name is registered, either declared on the type
// or inherited from its root.
func (d *TypeDef) Defines(name string) bool {
	if _, ok := d.methods[name]; ok {
		return true
	}
	_, ok := d.inherited[name]
	return ok
}

// inherit registers a member the root contributes. Declared members with
// the same name take precedence.
func (d *TypeDef) inherit(name string, m Method) {
	d.inherited[name] = m
}

// Members returns the declared member names in registration order.
func (d *TypeDef) Members() []string {
	return append([]string(nil), d.order...)
}

// SetFallback installs the handler for unregistered members.
// A nil fallback makes unregistered members fail with UnrecognizedMemberError.
func (d *TypeDef) SetFallback(f Fallback) { d.fallback = f }

// SetRespondsTo overrides the "supports member X" query.
// A nil function restores the default, which consults the method table.
func (d *TypeDef) SetRespondsTo(f func(name string) bool) { d.respondsTo = f }

// UseSingleton restricts the type to one shared instance.
func (d *TypeDef) UseSingleton() { d.singleton = true }
