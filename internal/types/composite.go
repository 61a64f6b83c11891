package types

// Ref represents a reference-semantics wrapper around a type.
type Ref struct {
	value
	elem Value
}

// NewRef creates a new reference type.
func NewRef(elem Value) *Ref {
	return &Ref{elem: elem}
}

// Elem returns the referenced type.
func (r *Ref) Elem() Value {
	return r.elem
}

// String implements Value.
func (r *Ref) String() string {
	return ToString(r, false)
}

// Pointer represents an owning indirection around a type.
type Pointer struct {
	value
	elem Value
}

// NewPointer creates a new pointer type.
func NewPointer(elem Value) *Pointer {
	return &Pointer{elem: elem}
}

// Elem returns the pointed-to type.
func (p *Pointer) Elem() Value {
	return p.elem
}

// String implements Value.
func (p *Pointer) String() string {
	return ToString(p, false)
}

// Function represents a function type: ordered argument types and one
// return type.
type Function struct {
	value
	ret  Value
	args []Value
}

// NewFunction creates a new function type from its full payload.
// args may be empty but never partial; there is no incremental construction.
func NewFunction(ret Value, args []Value) *Function {
	return &Function{ret: ret, args: args}
}

// Args builds an argument list for NewFunction.
func Args(vs ...Value) []Value {
	return vs
}

// Return returns the return type.
func (f *Function) Return() Value {
	return f.ret
}

// ArgTypes returns the ordered argument types.
func (f *Function) ArgTypes() []Value {
	return f.args
}

// NumArgs returns the number of arguments.
func (f *Function) NumArgs() int {
	return len(f.args)
}

// Arg returns the argument type at index i.
func (f *Function) Arg(i int) Value {
	return f.args[i]
}

// String implements Value.
func (f *Function) String() string {
	return ToString(f, false)
}

// Closure represents a function bundled with its captured environment.
type Closure struct {
	value
	fun      *Ref
	captures Value
}

// NewClosure creates a new closure type. fun must reference a function
// type; captures is typically a struct or tuple of the captured bindings.
func NewClosure(fun *Ref, captures Value) *Closure {
	return &Closure{fun: fun, captures: captures}
}

// Fun returns the reference to the closure's function type.
func (c *Closure) Fun() *Ref {
	return c.fun
}

// Captures returns the type of the captured environment.
func (c *Closure) Captures() Value {
	return c.captures
}

// String implements Value.
func (c *Closure) String() string {
	return ToString(c, false)
}

// Array represents an array type. Size 0 means unsized.
type Array struct {
	value
	elem Value
	size int
}

// NewArray creates a new array type with the given element type and size.
func NewArray(elem Value, size int) *Array {
	return &Array{elem: elem, size: size}
}

// Elem returns the array element type.
func (a *Array) Elem() Value {
	return a.elem
}

// Size returns the array size; 0 means unsized.
func (a *Array) Size() int {
	return a.size
}

// String implements Value.
func (a *Array) String() string {
	return ToString(a, false)
}

// Tuple represents an ordered collection of types.
type Tuple struct {
	value
	elems []Value
}

// NewTuple creates a new tuple type.
func NewTuple(elems []Value) *Tuple {
	return &Tuple{elems: elems}
}

// Elems returns the element types.
func (t *Tuple) Elems() []Value {
	return t.elems
}

// NumElems returns the number of elements.
func (t *Tuple) NumElems() int {
	return len(t.elems)
}

// Elem returns the element type at index i.
func (t *Tuple) Elem(i int) Value {
	return t.elems[i]
}

// String implements Value.
func (t *Tuple) String() string {
	return ToString(t, false)
}

// Field is a named struct member.
type Field struct {
	Name string
	Type Value
}

// Struct represents an ordered collection of named fields.
type Struct struct {
	value
	fields []Field
}

// NewStruct creates a new struct type with the given fields.
func NewStruct(fields []Field) *Struct {
	return &Struct{fields: fields}
}

// NumFields returns the number of fields.
func (s *Struct) NumFields() int {
	return len(s.fields)
}

// Field returns the field at the given index.
func (s *Struct) Field(i int) Field {
	return s.fields[i]
}

// Fields returns all fields.
func (s *Struct) Fields() []Field {
	return s.fields
}

// Tuple returns the positional view of the struct, dropping field names.
func (s *Struct) Tuple() *Tuple {
	elems := make([]Value, len(s.fields))
	for i, f := range s.fields {
		elems[i] = f.Type
	}
	return NewTuple(elems)
}

// String implements Value.
func (s *Struct) String() string {
	return ToString(s, false)
}

// Alias represents a name bound to a target type.
type Alias struct {
	value
	name   string
	target Value
}

// NewAlias creates a new alias type.
func NewAlias(name string, target Value) *Alias {
	return &Alias{name: name, target: target}
}

// Name returns the alias name.
func (a *Alias) Name() string {
	return a.name
}

// Target returns the aliased type.
func (a *Alias) Target() Value {
	return a.target
}

// String implements Value.
func (a *Alias) String() string {
	return ToString(a, false)
}
