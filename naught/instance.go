package naught

import (
	"fmt"
	"reflect"
)

// jsonNull is the JSON encoding of every null object.
var jsonNull = []byte("null")

// Instance is a null object. All of its behavior comes from its Type.
//
// Instances are obtained from Type.New or Type.Instance. A zero Instance
// (or a nil *Instance) has no type: it recognizes no member and displays
// as "<null>".
type Instance struct {
	typ *Type
}

// Type returns the generated type of the instance, or nil for a zero Instance.
func (i *Instance) Type() *Type {
	if i == nil {
		return nil
	}

	return i.typ
}

func (i *Instance) untyped() bool { return i == nil || i.typ == nil }

// Invoke calls the member name with args.
//
// Registered members run first; otherwise the type's fallback handles the
// call. Without a fallback the call fails with UnrecognizedMemberError.
func (i *Instance) Invoke(name string, args ...any) (any, error) {
	if i.untyped() {
		return nil, UnrecognizedMemberError{Type: untypedName, Member: name}
	}
	if m, ok := i.typ.lookup(name); ok {
		return m(i, args...), nil
	}
	if i.typ.fallback != nil {
		return i.typ.fallback(i, name, args...), nil
	}

	return nil, UnrecognizedMemberError{Type: i.typ.String(), Member: name}
}

// untypedName is reported as the type of a zero Instance.
const untypedName = "<untyped>"

// MustInvoke is like Invoke but panics on error.
func (i *Instance) MustInvoke(name string, args ...any) any {
	v, err := i.Invoke(name, args...)
	if err != nil {
		panic(err)
	}

	return v
}

// Chain invokes names one after another, each on the result of the previous
// call. Every intermediate result must be an *Instance.
func (i *Instance) Chain(names ...string) (any, error) {
	var cur any = i
	for _, name := range names {
		inst, ok := cur.(*Instance)
		if !ok {
			return nil, UnrecognizedMemberError{Type: fmt.Sprintf("%T", cur), Member: name}
		}

		v, err := inst.Invoke(name)
		if err != nil {
			return nil, err
		}
		cur = v
	}

	return cur, nil
}

// RespondsTo reports whether the instance supports the member name.
func (i *Instance) RespondsTo(name string) bool {
	if i.untyped() {
		return false
	}

	return i.typ.RespondsTo(name)
}

// Inspect returns the display form of the instance: "<null>" or
// "<null:Target>" for mimicking types, unless an operation redefined Inspect.
func (i *Instance) Inspect() string {
	if i.untyped() {
		return defaultDisplay
	}
	if m, ok := i.typ.lookup(MemberInspect); ok {
		if s, ok := m(i).(string); ok {
			return s
		}
	}

	return i.typ.display()
}

// String implements fmt.Stringer with the display form.
func (i *Instance) String() string { return i.Inspect() }

// GoString implements fmt.GoStringer with the display form.
func (i *Instance) GoString() string { return i.Inspect() }

// MarshalJSON encodes every null object as JSON null.
func (i *Instance) MarshalJSON() ([]byte, error) {
	return append([]byte(nil), jsonNull...), nil
}

// MarshalText implements encoding.TextMarshaler through the AsString
// member registered by implicit conversions.
func (i *Instance) MarshalText() ([]byte, error) {
	s, err := Convert[string](i, MemberAsString)
	if err != nil {
		return nil, err
	}

	return []byte(s), nil
}

// Convert invokes member on inst and asserts the result to T.
func Convert[T any](inst *Instance, member string, args ...any) (T, error) {
	var zero T

	v, err := inst.Invoke(member, args...)
	if err != nil {
		return zero, err
	}

	out, ok := v.(T)
	if !ok {
		return zero, ConversionTypeError{
			Member: member,
			Want:   reflect.TypeFor[T]().String(),
			Got:    fmt.Sprintf("%T", v),
		}
	}

	return out, nil
}
