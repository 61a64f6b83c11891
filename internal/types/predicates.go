package types

// IsPrimitive reports whether v is a payload-less primitive type.
func IsPrimitive(v Value) bool {
	return KindOf(v) == KindPrimitive
}

// IsTypeVar reports whether v is an inference variable.
func IsTypeVar(v Value) bool {
	_, ok := v.(*TypeVar)
	return ok
}

// FunReturn returns the return type of a function reachable directly or
// through one Closure→Ref layer. The caller must have confirmed the shape
// first; any other alternative panics.
func FunReturn(v Value) Value {
	switch v := v.(type) {
	case *Function:
		return v.ret
	case *Closure:
		if f, ok := v.fun.elem.(*Function); ok {
			return f.ret
		}
	}
	panic("types: FunReturn on non-function value " + ToString(v, false))
}

// NamedClosure returns the captures of a closure whose captured
// environment is a named aggregate. ok is false for any other shape.
func NamedClosure(v Value) (Value, bool) {
	c, ok := v.(*Closure)
	if !ok {
		return nil, false
	}
	if _, ok := c.captures.(*Alias); !ok {
		return nil, false
	}
	return c.captures, true
}

// Identical reports whether x and y are structurally identical types.
// Type variables compare by index; aliases by name and target.
func Identical(x, y Value) bool {
	if x == y {
		return true
	}
	if x == nil || y == nil {
		return false
	}
	switch x := x.(type) {
	case *Prim:
		y, ok := y.(*Prim)
		return ok && x.kind == y.kind
	case *TypeVar:
		y, ok := y.(*TypeVar)
		return ok && x.index == y.index
	case *Ref:
		y, ok := y.(*Ref)
		return ok && Identical(x.elem, y.elem)
	case *Pointer:
		y, ok := y.(*Pointer)
		return ok && Identical(x.elem, y.elem)
	case *Function:
		y, ok := y.(*Function)
		return ok && Identical(x.ret, y.ret) && identicalValues(x.args, y.args)
	case *Closure:
		y, ok := y.(*Closure)
		return ok && Identical(x.fun, y.fun) && Identical(x.captures, y.captures)
	case *Array:
		y, ok := y.(*Array)
		return ok && x.size == y.size && Identical(x.elem, y.elem)
	case *Tuple:
		y, ok := y.(*Tuple)
		return ok && identicalValues(x.elems, y.elems)
	case *Struct:
		y, ok := y.(*Struct)
		return ok && identicalStructs(x, y)
	case *Alias:
		y, ok := y.(*Alias)
		return ok && x.name == y.name && Identical(x.target, y.target)
	}
	return false
}

func identicalStructs(x, y *Struct) bool {
	if len(x.fields) != len(y.fields) {
		return false
	}
	for i := range x.fields {
		if x.fields[i].Name != y.fields[i].Name {
			return false
		}
		if !Identical(x.fields[i].Type, y.fields[i].Type) {
			return false
		}
	}
	return true
}

func identicalValues(x, y []Value) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if !Identical(x[i], y[i]) {
			return false
		}
	}
	return true
}
