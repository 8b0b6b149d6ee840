package naught

import (
	"slices"
	"strconv"
	"sync"
	"sync/atomic"
)

var typeSeq atomic.Uint64

// Type is a generated null-object type. It is immutable once Finalize
// returns it and safe for concurrent use.
type Type struct {
	id         uint64
	name       string
	root       Root
	methods    map[string]Method
	order      []string
	inherited  map[string]Method
	fallback   Fallback
	respondsTo func(name string) bool
	singleton  bool
	display    func() string

	sharedOnce sync.Once
	shared     *Instance
}

// seal copies a finished TypeDef into an immutable Type.
func seal(id uint64, def *TypeDef) *Type {
	methods := make(map[string]Method, len(def.methods))
	for name, m := range def.methods {
		methods[name] = m
	}
	inherited := make(map[string]Method, len(def.inherited))
	for name, m := range def.inherited {
		inherited[name] = m
	}

	return &Type{
		id:         id,
		name:       def.name,
		root:       def.root,
		methods:    methods,
		order:      slices.Clone(def.order),
		inherited:  inherited,
		fallback:   def.fallback,
		respondsTo: def.respondsTo,
		singleton:  def.singleton,
		display:    def.display,
	}
}

// ID returns the process-unique identifier of the type.
func (t *Type) ID() uint64 { return t.id }

// Name returns the generated type name, e.g. "Null" or "Null<Widget>".
func (t *Type) Name() string { return t.name }

// String returns the generated identity of the type, e.g. "Null<Widget>#3".
func (t *Type) String() string {
	return t.name + "#" + strconv.FormatUint(t.id, 10)
}

// Root returns the root profile the type was built on.
func (t *Type) Root() Root { return t.root }

// Members returns the declared member names in registration order.
// Members inherited from the root are listed by Inherited.
func (t *Type) Members() []string { return slices.Clone(t.order) }

// Inherited returns the sorted names of members contributed by the root.
func (t *Type) Inherited() []string {
	names := make([]string, 0, len(t.inherited))
	for name := range t.inherited {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

// Defines reports whether name is a declared or inherited member.
func (t *Type) Defines(name string) bool {
	_, ok := t.lookup(name)
	return ok
}

func (t *Type) lookup(name string) (Method, bool) {
	if m, ok := t.methods[name]; ok {
		return m, true
	}
	m, ok := t.inherited[name]

	return m, ok
}

// RespondsTo answers whether instances support the member name.
// Catch-all strategies answer true for every name.
func (t *Type) RespondsTo(name string) bool {
	if t.respondsTo != nil {
		return t.respondsTo(name)
	}

	return t.Defines(name)
}

// CatchAll reports whether unregistered members are handled by a fallback
// rather than failing.
func (t *Type) CatchAll() bool { return t.fallback != nil }

// IsSingleton reports whether the type is restricted to one shared instance.
func (t *Type) IsSingleton() bool { return t.singleton }

// New returns a new instance. For singleton types it returns the shared
// instance instead.
func (t *Type) New() *Instance {
	if t.singleton {
		return t.Instance()
	}

	return t.newInstance()
}

// Instance returns the shared instance of the type, creating it on first use.
func (t *Type) Instance() *Instance {
	t.sharedOnce.Do(func() {
		t.shared = t.newInstance()
	})

	return t.shared
}

func (t *Type) newInstance() *Instance {
	return &Instance{typ: t}
}
