// Package types implements the type representation layer for the Kaede
// compiler. It provides the closed set of type values the language can
// express, type variables for inference, and the per-compilation-unit
// type environment. This package has no AST dependencies; unification is
// implemented elsewhere on top of the structures defined here.
package types

import "fmt"

// Kind is a coarse classification of a type value, derived structurally
// without inspecting payloads.
type Kind int

const (
	KindVoid         Kind = iota // reserved; void itself classifies as KindPrimitive
	KindPrimitive                // none, void, float, string
	KindPointer                  // Ref, Pointer
	KindAggregate                // Function, Closure, Array, Tuple, Struct, Alias
	KindIntermediate             // TypeVar
)

// String returns the kind name for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindVoid:
		return "void"
	case KindPrimitive:
		return "primitive"
	case KindPointer:
		return "pointer"
	case KindAggregate:
		return "aggregate"
	case KindIntermediate:
		return "intermediate"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Value is the interface implemented by all type values.
type Value interface {
	// String returns the canonical rendering of the type.
	String() string

	// aValue is a marker method to restrict implementations to this package.
	aValue()
}

// value is a base struct for all type value implementations.
type value struct{}

func (value) aValue() {}

// KindOf returns the classification of v.
// Every constructible Value maps to exactly one kind.
func KindOf(v Value) Kind {
	switch v.(type) {
	case *Prim:
		return KindPrimitive
	case *Ref, *Pointer:
		return KindPointer
	case *Function, *Closure, *Array, *Tuple, *Struct, *Alias:
		return KindAggregate
	case *TypeVar:
		return KindIntermediate
	}
	panic(fmt.Sprintf("types: unknown Value %T", v))
}
