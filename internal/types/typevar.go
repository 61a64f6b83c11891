package types

import "fmt"

// TypeVar represents one inference unknown. TypeVars are shared mutable
// nodes: the same *TypeVar may be embedded in many values and linked to
// chain neighbors, so a mutation is immediately visible to every holder.
// They live for the whole compilation unit; Env owns the registry.
type TypeVar struct {
	value
	index int

	// Contained is the currently resolved type for this node.
	// Typ[None] while unresolved.
	Contained Value

	// Prev and Next form the doubly linked equivalence chain spliced by
	// the unifier when two variables are equated. Chains must stay
	// acyclic; the last link is the authoritative representative of the
	// class. Callers must complete one binding operation before starting
	// the next traversal.
	Prev, Next *TypeVar
}

// NewTypeVar creates an unlinked, unresolved type variable.
// Most callers should allocate through Env.CreateTypeVar instead, which
// also registers the variable for index lookup and chain dumps.
func NewTypeVar(index int) *TypeVar {
	return &TypeVar{index: index, Contained: Typ[None]}
}

// Index returns the variable's index.
func (tv *TypeVar) Index() int {
	return tv.index
}

// SetIndex renumbers the variable. Used for environment merges and
// dead-variable compaction; not exercised by this layer itself.
func (tv *TypeVar) SetIndex(index int) {
	tv.index = index
}

// FirstLink follows Prev to the start of the chain.
func (tv *TypeVar) FirstLink() *TypeVar {
	return tv.link(true)
}

// LastLink follows Next to the end of the chain. The returned node is the
// representative of the equivalence class; its Contained field holds the
// resolved type for every member.
func (tv *TypeVar) LastLink() *TypeVar {
	return tv.link(false)
}

// link walks to the chain extremity. A cycle means the unifier corrupted
// the chain; that is a fatal internal error, not a recoverable condition.
func (tv *TypeVar) link(prev bool) *TypeVar {
	step := func(t *TypeVar) *TypeVar {
		if prev {
			return t.Prev
		}
		return t.Next
	}
	slow, fast := tv, tv
	for {
		next := step(fast)
		if next == nil {
			return fast
		}
		fast = next
		if next = step(fast); next == nil {
			return fast
		}
		fast = next
		slow = step(slow)
		if fast == slow {
			panic(fmt.Sprintf("types: cyclic type variable chain through TypeVar%d", tv.index))
		}
	}
}

// Resolve returns the resolved type of the variable's equivalence class:
// the representative's Contained field. Typ[None] while still unresolved.
func (tv *TypeVar) Resolve() Value {
	return tv.LastLink().Contained
}

// String implements Value.
func (tv *TypeVar) String() string {
	return ToString(tv, false)
}
