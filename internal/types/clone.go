package types

import "fmt"

// Clone returns a deep copy of v. Every box is copied; type variables are
// shared, never duplicated, so chain mutations stay visible through the
// copy. Predeclared primitives are shared as well.
func Clone(v Value) Value {
	switch v := v.(type) {
	case *Prim:
		return v
	case *TypeVar:
		return v
	case *Ref:
		return NewRef(Clone(v.elem))
	case *Pointer:
		return NewPointer(Clone(v.elem))
	case *Function:
		return NewFunction(Clone(v.ret), cloneValues(v.args))
	case *Closure:
		return NewClosure(NewRef(Clone(v.fun.elem)), Clone(v.captures))
	case *Array:
		return NewArray(Clone(v.elem), v.size)
	case *Tuple:
		return NewTuple(cloneValues(v.elems))
	case *Struct:
		fields := make([]Field, len(v.fields))
		for i, f := range v.fields {
			fields[i] = Field{Name: f.Name, Type: Clone(f.Type)}
		}
		return NewStruct(fields)
	case *Alias:
		return NewAlias(v.name, Clone(v.target))
	}
	panic(fmt.Sprintf("types: unknown Value %T", v))
}

func cloneValues(vs []Value) []Value {
	if vs == nil {
		return nil
	}
	out := make([]Value, len(vs))
	for i, v := range vs {
		out[i] = Clone(v)
	}
	return out
}
