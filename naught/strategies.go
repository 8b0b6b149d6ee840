package naught

import (
	"math/big"
)

// Members registered by DefineExplicitConversions.
const (
	MemberToString  = "ToString"
	MemberToInt     = "ToInt"
	MemberToFloat   = "ToFloat"
	MemberToComplex = "ToComplex"
	MemberToRat     = "ToRat"
	MemberToSlice   = "ToSlice"
	MemberToMap     = "ToMap"
	MemberToJSON    = "ToJSON"
)

// Members registered by DefineImplicitConversions.
const (
	MemberAsSlice  = "AsSlice"
	MemberAsString = "AsString"
)

func constant[T any](fn func() T) Method {
	return func(*Instance, ...any) any { return fn() }
}

func defineExplicitConversions(def *TypeDef) {
	def.Define(MemberToString, constant(func() string { return "" }))
	def.Define(MemberToInt, constant(func() int { return 0 }))
	def.Define(MemberToFloat, constant(func() float64 { return 0 }))
	def.Define(MemberToComplex, constant(func() complex128 { return 0 }))
	def.Define(MemberToRat, constant(func() *big.Rat { return new(big.Rat) }))
	def.Define(MemberToSlice, constant(func() []any { return []any{} }))
	def.Define(MemberToMap, constant(func() map[string]any { return map[string]any{} }))
	def.Define(MemberToJSON, constant(func() string { return string(jsonNull) }))
}

func defineImplicitConversions(def *TypeDef) {
	def.Define(MemberAsSlice, constant(func() []any { return []any{} }))
	def.Define(MemberAsString, constant(func() string { return "" }))
}

func singleton(def *TypeDef) {
	def.UseSingleton()
}

func respondsToAll(string) bool { return true }

func respondToMissingWithNil(def *TypeDef) {
	def.SetRespondsTo(respondsToAll)
	def.SetFallback(func(*Instance, string, ...any) any { return nil })
}

func blackHole(def *TypeDef) {
	def.SetRespondsTo(respondsToAll)
	def.SetFallback(func(self *Instance, _ string, _ ...any) any { return self })
}

// mimic stubs every method of s, except the names the root owns.
func mimic(s Surface, includeInherited bool) Operation {
	return func(def *TypeDef) {
		for _, name := range s.MethodNames(includeInherited) {
			if isRootMember(name) {
				continue
			}
			def.Define(name, func(*Instance, ...any) any { return nil })
		}
	}
}
