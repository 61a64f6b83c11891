package types

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// NotFoundError is returned by Env.Find for an unbound name.
// It is recoverable: the checker reports an unknown identifier and
// continues with other declarations.
type NotFoundError struct {
	Name string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("could not find type for variable %q", e.Name)
}

// Env is the per-compilation-unit type environment: the name→type symbol
// table plus the allocator and registry for type variables. One Env is
// created per unit, populated and queried incrementally during checking,
// and discarded together with its variables once the unit is fully
// checked and the substitution pass has run.
type Env struct {
	bindings map[string]Value
	tvars    []*TypeVar // registry, addressed by variable index
	nextIdx  int
}

// NewEnv creates an empty type environment.
func NewEnv() *Env {
	return &Env{bindings: make(map[string]Value)}
}

// CreateTypeVar allocates and registers a fresh type variable. Indices
// are strictly increasing from 0 and never reused within the Env's
// lifetime. The returned variable is co-owned by the Env and the caller.
func (e *Env) CreateTypeVar() *TypeVar {
	tv := NewTypeVar(e.nextIdx)
	e.nextIdx++
	e.tvars = append(e.tvars, tv)
	return tv
}

// FindTypeVar returns the registered variable with the given index.
// The caller must supply an in-range index.
func (e *Env) FindTypeVar(index int) *TypeVar {
	return e.tvars[index]
}

// NumTypeVars returns the number of variables allocated so far.
func (e *Env) NumTypeVars() int {
	return len(e.tvars)
}

// Exist reports whether a binding exists for name.
func (e *Env) Exist(name string) bool {
	_, ok := e.bindings[name]
	return ok
}

// TryFind returns the type bound to name, or (nil, false) if unbound.
func (e *Env) TryFind(name string) (Value, bool) {
	v, ok := e.bindings[name]
	return v, ok
}

// Find returns the type bound to name. An unbound name yields a
// *NotFoundError carrying the name.
func (e *Env) Find(name string) (Value, error) {
	v, ok := e.bindings[name]
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	return v, nil
}

// Emplace binds name to v, overwriting any existing binding. It reports
// whether the binding was a fresh insertion.
func (e *Env) Emplace(name string, v Value) bool {
	_, exists := e.bindings[name]
	e.bindings[name] = v
	return !exists
}

// Names returns all bound names, sorted for deterministic output.
func (e *Env) Names() []string {
	names := make([]string, 0, len(e.bindings))
	for name := range e.bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NumBindings returns the number of name bindings.
func (e *Env) NumBindings() int {
	return len(e.bindings)
}

// ReplaceTypeVars rewrites every binding, substituting each embedded type
// variable with the resolved type of its equivalence class. Run exactly
// once, after unification has converged and before code generation reads
// the environment.
func (e *Env) ReplaceTypeVars() {
	for name, v := range e.bindings {
		e.bindings[name] = substTypeVars(v)
	}
}

// substTypeVars rebuilds v with every type variable replaced by its
// representative's Contained value. A variable whose class is still
// unresolved substitutes to none. The substituted value is itself
// rewritten, so variables resolved to composite types settle fully.
func substTypeVars(v Value) Value {
	switch v := v.(type) {
	case *Prim:
		return v
	case *TypeVar:
		contained := v.Resolve()
		if IsTypeVar(contained) {
			return contained
		}
		return substTypeVars(contained)
	case *Ref:
		return NewRef(substTypeVars(v.elem))
	case *Pointer:
		return NewPointer(substTypeVars(v.elem))
	case *Function:
		return NewFunction(substTypeVars(v.ret), substValues(v.args))
	case *Closure:
		return NewClosure(NewRef(substTypeVars(v.fun.elem)), substTypeVars(v.captures))
	case *Array:
		return NewArray(substTypeVars(v.elem), v.size)
	case *Tuple:
		return NewTuple(substValues(v.elems))
	case *Struct:
		fields := make([]Field, len(v.fields))
		for i, f := range v.fields {
			fields[i] = Field{Name: f.Name, Type: substTypeVars(f.Type)}
		}
		return NewStruct(fields)
	case *Alias:
		return NewAlias(v.name, substTypeVars(v.target))
	}
	panic(fmt.Sprintf("types: unknown Value %T", v))
}

func substValues(vs []Value) []Value {
	if vs == nil {
		return nil
	}
	out := make([]Value, len(vs))
	for i, v := range vs {
		out[i] = substTypeVars(v)
	}
	return out
}

// ToString renders every binding, one per line, in name order.
func (e *Env) ToString(verbose bool) string {
	var b strings.Builder
	for _, name := range e.Names() {
		fmt.Fprintf(&b, "%s : %s\n", name, ToString(e.bindings[name], verbose))
	}
	return b.String()
}

// String returns the non-verbose rendering of the environment.
func (e *Env) String() string {
	return e.ToString(false)
}

// Dump writes the bindings to w.
func (e *Env) Dump(w io.Writer, verbose bool) {
	io.WriteString(w, e.ToString(verbose))
}

// DumpTvLinks writes the chain connectivity of every registered type
// variable to w, in allocation order.
func (e *Env) DumpTvLinks(w io.Writer) {
	for _, tv := range e.tvars {
		fmt.Fprintf(w, "TypeVar%d:", tv.index)
		if tv.Prev != nil {
			fmt.Fprintf(w, " prev=TypeVar%d", tv.Prev.index)
		}
		if tv.Next != nil {
			fmt.Fprintf(w, " next=TypeVar%d", tv.Next.index)
		}
		fmt.Fprintf(w, " contained=%s\n", ToString(tv.Contained, false))
	}
}
