package types

// PrimKind describes the kind of primitive type.
type PrimKind int

const (
	None   PrimKind = iota // uninferred marker
	Void                   // absence of a value
	Float                  // numeric type
	String                 // text type
)

// Prim represents a payload-less primitive type: none, void, float, string.
type Prim struct {
	value
	kind PrimKind
	name string
}

// Kind returns the kind of the primitive type.
func (p *Prim) Kind() PrimKind {
	return p.kind
}

// Name returns the name of the primitive type.
func (p *Prim) Name() string {
	return p.name
}

// String implements Value.
func (p *Prim) String() string {
	return p.name
}

// Typ holds the predeclared primitive types, indexed by PrimKind.
// These are shared instances; primitives carry no payload, so one value
// per kind suffices.
var Typ = []*Prim{
	None:   {kind: None, name: "none"},
	Void:   {kind: Void, name: "void"},
	Float:  {kind: Float, name: "float"},
	String: {kind: String, name: "string"},
}
