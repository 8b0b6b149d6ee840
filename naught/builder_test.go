package naught_test

import (
	"errors"
	"fmt"
	"math/big"
	"sync"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"naught-generator/naught"
)

type Widget struct{}

func (Widget) Foo()            {}
func (*Widget) Bar(int) string { return "bar" }

func TestBuild_DefaultIsNilCatchAll(t *testing.T) {
	t.Parallel()

	typ := naught.Build()
	null := typ.New()

	for _, name := range []string{"anything", "Foo", "to_s", ""} {
		v, err := null.Invoke(name, 1, "two")
		require.NoError(t, err, name)
		assert.Nil(t, v, name)
		assert.True(t, null.RespondsTo(name), name)
	}
	assert.True(t, typ.CatchAll())
}

func TestBuild_NilConfiguratorIgnored(t *testing.T) {
	t.Parallel()

	typ := naught.Build(nil)
	v, err := typ.New().Invoke("missing")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestBuild_ExplicitConversions(t *testing.T) {
	t.Parallel()

	null := naught.Build(func(b *naught.Builder) {
		b.DefineExplicitConversions()
	}).New()

	cases := []struct {
		member string
		want   any
	}{
		{naught.MemberToString, ""},
		{naught.MemberToInt, 0},
		{naught.MemberToFloat, 0.0},
		{naught.MemberToComplex, complex128(0)},
		{naught.MemberToSlice, []any{}},
		{naught.MemberToMap, map[string]any{}},
		{naught.MemberToJSON, "null"},
	}

	for _, tc := range cases {
		t.Run(tc.member, func(t *testing.T) {
			got, err := null.Invoke(tc.member)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got, spew.Sdump(got))
		})
	}

	rat, err := naught.Convert[*big.Rat](null, naught.MemberToRat)
	require.NoError(t, err)
	assert.Equal(t, 0, rat.Sign())
}

func TestBuild_ConversionsKeepDefaultFallback(t *testing.T) {
	t.Parallel()

	b := naught.NewBuilder()
	b.DefineExplicitConversions()
	assert.False(t, b.IsInterfaceDefined())

	typ := naught.Build(func(b *naught.Builder) { b.DefineExplicitConversions() })
	assert.True(t, typ.CatchAll())
}

func TestFinalize_ConversionsOnlyFailOnUnknownMembers(t *testing.T) {
	t.Parallel()

	b := naught.NewBuilder()
	b.DefineExplicitConversions()
	null := b.Finalize().New()

	s, err := naught.Convert[string](null, naught.MemberToString)
	require.NoError(t, err)
	assert.Empty(t, s)

	_, err = null.Invoke("Unknown")
	require.Error(t, err)
	assert.True(t, errors.Is(err, naught.ErrUnrecognizedMember))

	var unrecognized naught.UnrecognizedMemberError
	require.True(t, errors.As(err, &unrecognized))
	assert.Equal(t, "Unknown", unrecognized.Member)
	assert.False(t, null.RespondsTo("Unknown"))
}

func TestBuild_ImplicitConversions(t *testing.T) {
	t.Parallel()

	null := naught.Build(func(b *naught.Builder) {
		b.DefineImplicitConversions()
	}).New()

	got, err := null.Invoke(naught.MemberAsSlice)
	require.NoError(t, err)
	assert.Equal(t, []any{}, got)

	got, err = null.Invoke(naught.MemberAsString)
	require.NoError(t, err)
	assert.Equal(t, "", got)

	text, err := null.MarshalText()
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestMarshalText_WithoutImplicitConversions(t *testing.T) {
	t.Parallel()

	// nil catch-all answers AsString with nil, which is not a string
	_, err := naught.Build().New().MarshalText()
	var convErr naught.ConversionTypeError
	require.True(t, errors.As(err, &convErr))
	assert.Equal(t, naught.MemberAsString, convErr.Member)

	_, err = naught.NewBuilder().Finalize().New().MarshalText()
	assert.True(t, errors.Is(err, naught.ErrUnrecognizedMember))
}

func TestBuild_BlackHoleReturnsReceiver(t *testing.T) {
	t.Parallel()

	null := naught.Build(func(b *naught.Builder) {
		b.BlackHole()
	}).New()

	got, err := null.Chain("anything", "other_thing", "third")
	require.NoError(t, err)
	assert.Same(t, null, got)

	v, err := null.Invoke("anything", 42)
	require.NoError(t, err)
	assert.Same(t, null, v)
	assert.True(t, null.RespondsTo("whatever"))
}

func TestChain_StopsOnNonInstance(t *testing.T) {
	t.Parallel()

	// the nil catch-all returns nil, which cannot receive the second call
	_, err := naught.Build().New().Chain("first", "second")
	require.Error(t, err)
	assert.True(t, errors.Is(err, naught.ErrUnrecognizedMember))
}

func TestBuild_CatchAllLastWriteWins(t *testing.T) {
	t.Parallel()

	nilLast := naught.Build(func(b *naught.Builder) {
		b.BlackHole()
		b.RespondToMissingWithNil()
	}).New()
	v, err := nilLast.Invoke("x")
	require.NoError(t, err)
	assert.Nil(t, v)

	holeLast := naught.Build(func(b *naught.Builder) {
		b.RespondToMissingWithNil()
		b.BlackHole()
	}).New()
	v, err = holeLast.Invoke("x")
	require.NoError(t, err)
	assert.Same(t, holeLast, v)
}

func TestDefer_AppliesInInsertionOrder(t *testing.T) {
	t.Parallel()

	custom := func(def *naught.TypeDef) {
		def.Define(naught.MemberToString, func(*naught.Instance, ...any) any { return "custom" })
	}

	after := naught.Build(func(b *naught.Builder) {
		b.DefineExplicitConversions()
		b.Defer(custom)
	}).New()
	assert.Equal(t, "custom", after.MustInvoke(naught.MemberToString))

	before := naught.Build(func(b *naught.Builder) {
		b.Defer(custom)
		b.DefineExplicitConversions()
	}).New()
	assert.Equal(t, "", before.MustInvoke(naught.MemberToString))
}

func TestDefer_NilIgnored(t *testing.T) {
	t.Parallel()

	b := naught.NewBuilder()
	b.Defer(nil)
	typ := b.Finalize()
	assert.Equal(t, []string{naught.MemberType, naught.MemberInspect}, typ.Members())
}

func TestTypeDef_DefineAndUndefine(t *testing.T) {
	t.Parallel()

	var seen []string
	typ := naught.Build(func(b *naught.Builder) {
		b.Defer(func(def *naught.TypeDef) {
			def.Define("A", func(*naught.Instance, ...any) any { return 1 })
			def.Define("B", func(*naught.Instance, ...any) any { return 2 })
			def.Define("A", func(*naught.Instance, ...any) any { return 3 })
			def.Undefine("B")
			def.Undefine("never-defined")
			seen = def.Members()
		})
	})

	assert.Equal(t, []string{naught.MemberType, naught.MemberInspect, "A"}, seen)
	assert.Equal(t, 3, typ.New().MustInvoke("A"))
	assert.False(t, typ.Defines("B"))
}

func TestMimic_StubsSurface(t *testing.T) {
	t.Parallel()

	b := naught.NewBuilder()
	b.Mimic(naught.SurfaceFor[Widget]())
	assert.True(t, b.IsInterfaceDefined())

	typ := b.Finalize()
	null := typ.New()

	assert.Equal(t, []string{naught.MemberType, naught.MemberInspect, "Bar", "Foo"}, typ.Members())
	assert.Equal(t, naught.RootStandard, typ.Root())

	v, err := null.Invoke("Foo")
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = null.Invoke("Bar", 1, 2, 3)
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = null.Invoke("Baz")
	require.Error(t, err)
	assert.True(t, errors.Is(err, naught.ErrUnrecognizedMember))
	assert.False(t, null.RespondsTo("Baz"))
	assert.True(t, null.RespondsTo("Foo"))
	assert.False(t, typ.CatchAll())

	assert.Equal(t, "<null:Widget>", null.Inspect())
	assert.Equal(t, "Null<Widget>", typ.Name())
}

func TestBuild_MimicSkipsDefaultFallback(t *testing.T) {
	t.Parallel()

	null := naught.Build(func(b *naught.Builder) {
		b.Mimic(naught.NewSurface("T", "foo", "bar"))
	}).New()

	assert.Equal(t, []string{naught.MemberType, naught.MemberInspect, "bar", "foo"}, null.Type().Members())
	assert.Nil(t, null.MustInvoke("foo"))

	_, err := null.Invoke("baz")
	assert.True(t, errors.Is(err, naught.ErrUnrecognizedMember))
	assert.Equal(t, "<null:T>", null.Inspect())
}

func TestMimic_ExplicitSurfaceUsesBareRoot(t *testing.T) {
	t.Parallel()

	typ := naught.Build(func(b *naught.Builder) {
		b.Mimic(naught.NewSurface("Plain", "String", "Hash", "Run"))
	})

	assert.Equal(t, naught.RootBare, typ.Root())
	assert.Empty(t, typ.Inherited())
	// root-owned names are never stubbed
	assert.Equal(t, []string{naught.MemberType, naught.MemberInspect, "Run"}, typ.Members())

	_, err := typ.New().Invoke("String")
	assert.True(t, errors.Is(err, naught.ErrUnrecognizedMember))
}

type base struct{}

func (base) Inherited() {}

type Derived struct {
	base
	Items []string
}

func (Derived) Own() {}

func TestMimic_IncludeInherited(t *testing.T) {
	t.Parallel()

	surface := naught.SurfaceFor[Derived]()

	with := naught.Build(func(b *naught.Builder) { b.Mimic(surface) })
	assert.True(t, with.Defines("Own"))
	assert.True(t, with.Defines("Inherited"))
	assert.Equal(t, naught.RootBare, with.Root())

	without := naught.Build(func(b *naught.Builder) { b.Mimic(surface, naught.WithoutInherited()) })
	assert.True(t, without.Defines("Own"))
	assert.False(t, without.Defines("Inherited"))
}

func TestMimic_ThenCatchAll(t *testing.T) {
	t.Parallel()

	null := naught.Build(func(b *naught.Builder) {
		b.Mimic(naught.NewSurface("T", "foo"))
		b.BlackHole()
	}).New()

	assert.Nil(t, null.MustInvoke("foo"))
	assert.Same(t, null, null.MustInvoke("baz"))
}

func TestMimic_ZeroMethods(t *testing.T) {
	t.Parallel()

	typ := naught.Build(func(b *naught.Builder) { b.Mimic(naught.NewSurface("Empty")) })
	assert.Equal(t, []string{naught.MemberType, naught.MemberInspect}, typ.Members())
	assert.Equal(t, "<null:Empty>", typ.New().Inspect())
}

func TestStandardRoot_EqualHashString(t *testing.T) {
	t.Parallel()

	typ := naught.Build(func(b *naught.Builder) { b.UseRoot(naught.RootStandard) })
	a, other := typ.New(), typ.New()

	assert.Equal(t, []string{naught.MemberEqual, naught.MemberHash, naught.MemberString}, typ.Inherited())
	assert.Equal(t, true, a.MustInvoke(naught.MemberEqual, a))
	assert.Equal(t, false, a.MustInvoke(naught.MemberEqual, other))
	assert.Equal(t, false, a.MustInvoke(naught.MemberEqual))
	assert.Equal(t, a.MustInvoke(naught.MemberHash), a.MustInvoke(naught.MemberHash))
	assert.Equal(t, "<null>", a.MustInvoke(naught.MemberString))
}

func TestStandardRoot_DeclaredMemberWins(t *testing.T) {
	t.Parallel()

	null := naught.Build(func(b *naught.Builder) {
		b.UseRoot(naught.RootStandard)
		b.Defer(func(def *naught.TypeDef) {
			def.Define(naught.MemberString, func(*naught.Instance, ...any) any { return "mine" })
		})
	}).New()

	assert.Equal(t, "mine", null.MustInvoke(naught.MemberString))
}

func TestBareRoot_HasNoEquality(t *testing.T) {
	t.Parallel()

	b := naught.NewBuilder()
	null := b.Finalize().New()

	_, err := null.Invoke(naught.MemberEqual, null)
	assert.True(t, errors.Is(err, naught.ErrUnrecognizedMember))
}

func TestIdentityAndDisplay(t *testing.T) {
	t.Parallel()

	typ := naught.Build()
	null := typ.New()

	assert.Same(t, typ, null.Type())
	assert.Same(t, typ, null.MustInvoke(naught.MemberType))
	assert.Equal(t, "<null>", null.Inspect())
	assert.Equal(t, "<null>", null.MustInvoke(naught.MemberInspect))
	assert.Equal(t, "<null>", fmt.Sprint(null))
	assert.Equal(t, "<null>", fmt.Sprintf("%#v", null))
	assert.Equal(t, fmt.Sprintf("Null#%d", typ.ID()), typ.String())

	other := naught.Build()
	assert.NotEqual(t, typ.ID(), other.ID())
}

func TestInspect_RedefinedByOperation(t *testing.T) {
	t.Parallel()

	null := naught.Build(func(b *naught.Builder) {
		b.Defer(func(def *naught.TypeDef) {
			def.Define(naught.MemberInspect, func(*naught.Instance, ...any) any { return "<absent>" })
		})
	}).New()

	assert.Equal(t, "<absent>", null.Inspect())
}

func TestMarshalJSON(t *testing.T) {
	t.Parallel()

	null := naught.Build(func(b *naught.Builder) { b.DefineExplicitConversions() }).New()

	data, err := null.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))

	// ToJSON and MarshalJSON agree, and callers cannot corrupt the shared encoding
	assert.Equal(t, string(data), null.MustInvoke(naught.MemberToJSON))
	data[0] = 'X'
	again, err := null.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "null", string(again))
}

func TestZeroInstance(t *testing.T) {
	t.Parallel()

	for name, inst := range map[string]*naught.Instance{
		"zero": {},
		"nil":  nil,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := inst.Invoke("Anything")
			require.ErrorIs(t, err, naught.ErrUnrecognizedMember)

			_, err = inst.Chain("A", "B")
			require.ErrorIs(t, err, naught.ErrUnrecognizedMember)

			assert.Nil(t, inst.Type())
			assert.False(t, inst.RespondsTo("Anything"))
			assert.Equal(t, "<null>", inst.Inspect())
			assert.Equal(t, "<null>", inst.String())

			_, err = inst.MarshalText()
			require.ErrorIs(t, err, naught.ErrUnrecognizedMember)
		})
	}
}

func TestSingleton_SharedInstance(t *testing.T) {
	t.Parallel()

	typ := naught.Build(func(b *naught.Builder) { b.Singleton() })
	require.True(t, typ.IsSingleton())

	assert.Same(t, typ.New(), typ.New())
	assert.Same(t, typ.Instance(), typ.New())
}

func TestSingleton_ConcurrentFirstAccess(t *testing.T) {
	t.Parallel()

	typ := naught.Build(func(b *naught.Builder) { b.Singleton() })

	const workers = 32
	got := make([]*naught.Instance, workers)

	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got[i] = typ.New()
		}()
	}
	wg.Wait()

	for _, inst := range got {
		assert.Same(t, got[0], inst)
	}
}

func TestNonSingleton_NewAndInstanceCoexist(t *testing.T) {
	t.Parallel()

	typ := naught.Build()
	assert.False(t, typ.IsSingleton())
	assert.NotSame(t, typ.New(), typ.New())
	assert.Same(t, typ.Instance(), typ.Instance())
}

func TestFinalize_TwiceYieldsIndependentTypes(t *testing.T) {
	t.Parallel()

	b := naught.NewBuilder()
	b.BlackHole()

	first, second := b.Finalize(), b.Finalize()
	assert.NotSame(t, first, second)
	assert.NotEqual(t, first.ID(), second.ID())
	assert.Equal(t, first.Members(), second.Members())
}

func TestConvert_WrongType(t *testing.T) {
	t.Parallel()

	null := naught.Build(func(b *naught.Builder) { b.DefineExplicitConversions() }).New()

	_, err := naught.Convert[int](null, naught.MemberToString)
	var convErr naught.ConversionTypeError
	require.True(t, errors.As(err, &convErr))
	assert.Equal(t, "int", convErr.Want)
	assert.Equal(t, "string", convErr.Got)
}

func TestMustInvoke_Panics(t *testing.T) {
	t.Parallel()

	null := naught.NewBuilder().Finalize().New()
	assert.Panics(t, func() { null.MustInvoke("nope") })
}
