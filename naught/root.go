package naught

import (
	"hash/maphash"
	"slices"
)

//go:generate go tool stringer -type=Root -trimprefix=Root -output=root_string.go

// Root selects which default members a generated type inherits.
type Root int

const (
	// RootBare inherits nothing: no equality, no hashing, no String member.
	RootBare Root = iota
	// RootStandard inherits Equal, Hash and String members.
	RootStandard
)

// Identity/display members every generated type carries regardless of root.
const (
	MemberType    = "Type"
	MemberInspect = "Inspect"
)

// Members contributed by RootStandard.
const (
	MemberEqual  = "Equal"
	MemberHash   = "Hash"
	MemberString = "String"
)

var rootMembers = []string{MemberType, MemberInspect, MemberEqual, MemberHash, MemberString}

var hashSeed = maphash.MakeSeed()

// RootMembers returns the names owned by the general root. Mimicry never
// stubs these names.
func RootMembers() []string {
	return slices.Clone(rootMembers)
}

func isRootMember(name string) bool {
	return slices.Contains(rootMembers, name)
}

// RootOf resolves the root a null object mimicking s is built on.
// Types that take part in Go equality (comparable types, usable as map
// keys) resolve to RootStandard; everything else to RootBare.
func RootOf(s Surface) Root {
	if s.Comparable {
		return RootStandard
	}

	return RootBare
}

// defineRootMembers registers the members r contributes as inherited members.
func defineRootMembers(def *TypeDef, r Root) {
	if r != RootStandard {
		return
	}

	def.inherit(MemberEqual, func(self *Instance, args ...any) any {
		if len(args) != 1 {
			return false
		}
		other, ok := args[0].(*Instance)
		return ok && other == self
	})
	def.inherit(MemberHash, func(self *Instance, _ ...any) any {
		return maphash.Comparable(hashSeed, self)
	})
	def.inherit(MemberString, func(self *Instance, _ ...any) any {
		return self.Inspect()
	})
}
