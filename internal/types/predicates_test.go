package types

import "testing"

func TestKindOf(t *testing.T) {
	fn := NewFunction(Typ[Float], nil)
	tests := []struct {
		name string
		v    Value
		kind Kind
	}{
		{"none", Typ[None], KindPrimitive},
		{"void", Typ[Void], KindPrimitive},
		{"float", Typ[Float], KindPrimitive},
		{"string", Typ[String], KindPrimitive},
		{"ref", NewRef(Typ[Float]), KindPointer},
		{"pointer", NewPointer(Typ[Float]), KindPointer},
		{"function", fn, KindAggregate},
		{"closure", NewClosure(NewRef(fn), NewTuple(nil)), KindAggregate},
		{"array", NewArray(Typ[Float], 4), KindAggregate},
		{"tuple", NewTuple([]Value{Typ[Float]}), KindAggregate},
		{"struct", NewStruct(nil), KindAggregate},
		{"alias", NewAlias("T", Typ[Float]), KindAggregate},
		{"typevar", NewTypeVar(0), KindIntermediate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.v); got != tt.kind {
				t.Errorf("KindOf() = %v, want %v", got, tt.kind)
			}
			// Classification is stable across repeated calls.
			if got := KindOf(tt.v); got != tt.kind {
				t.Errorf("KindOf() unstable: second call = %v", got)
			}
		})
	}
}

func TestIsPrimitive(t *testing.T) {
	if !IsPrimitive(Typ[Float]) {
		t.Errorf("IsPrimitive(float) = false")
	}
	if IsPrimitive(NewRef(Typ[Float])) {
		t.Errorf("IsPrimitive(float&) = true")
	}
	if IsPrimitive(NewTypeVar(0)) {
		t.Errorf("IsPrimitive(TypeVar0) = true")
	}
}

func TestIsTypeVar(t *testing.T) {
	if !IsTypeVar(NewTypeVar(0)) {
		t.Errorf("IsTypeVar(TypeVar0) = false")
	}
	if IsTypeVar(Typ[None]) {
		t.Errorf("IsTypeVar(none) = true")
	}
}

func TestFunReturn(t *testing.T) {
	fn := NewFunction(Typ[String], Args(Typ[Float]))

	if FunReturn(fn) != Typ[String] {
		t.Errorf("FunReturn(fn) != string")
	}

	cls := NewClosure(NewRef(fn), NewTuple(nil))
	if FunReturn(cls) != Typ[String] {
		t.Errorf("FunReturn(cls) != string")
	}
}

func TestFunReturnWrongShape(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("FunReturn on a non-function did not panic")
		}
	}()
	FunReturn(Typ[Float])
}

func TestNamedClosure(t *testing.T) {
	fn := NewFunction(Typ[Float], nil)
	caps := NewAlias("env0", NewStruct([]Field{{Name: "n", Type: Typ[Float]}}))
	cls := NewClosure(NewRef(fn), caps)

	got, ok := NamedClosure(cls)
	if !ok {
		t.Fatalf("NamedClosure(named) = _, false")
	}
	if got != caps {
		t.Errorf("NamedClosure() != captures alias")
	}

	anon := NewClosure(NewRef(fn), NewTuple(nil))
	if _, ok := NamedClosure(anon); ok {
		t.Errorf("NamedClosure(anonymous captures) = _, true")
	}
	if _, ok := NamedClosure(Typ[Float]); ok {
		t.Errorf("NamedClosure(float) = _, true")
	}
}

func TestIdentical(t *testing.T) {
	fn := func() Value { return NewFunction(Typ[Float], Args(Typ[Float], Typ[String])) }
	st := func() Value {
		return NewStruct([]Field{{Name: "x", Type: Typ[Float]}, {Name: "y", Type: Typ[Float]}})
	}

	tests := []struct {
		name string
		x, y Value
		want bool
	}{
		{"same primitive", Typ[Float], Typ[Float], true},
		{"different primitives", Typ[Float], Typ[String], false},
		{"equal functions", fn(), fn(), true},
		{"different return", fn(), NewFunction(Typ[Void], Args(Typ[Float], Typ[String])), false},
		{"different arity", fn(), NewFunction(Typ[Float], Args(Typ[Float])), false},
		{"equal structs", st(), st(), true},
		{"field name differs", st(), NewStruct([]Field{{Name: "x", Type: Typ[Float]}, {Name: "z", Type: Typ[Float]}}), false},
		{"struct vs tuple", st(), NewTuple([]Value{Typ[Float], Typ[Float]}), false},
		{"equal refs", NewRef(Typ[Float]), NewRef(Typ[Float]), true},
		{"ref vs pointer", NewRef(Typ[Float]), NewPointer(Typ[Float]), false},
		{"equal arrays", NewArray(Typ[Float], 4), NewArray(Typ[Float], 4), true},
		{"array size differs", NewArray(Typ[Float], 4), NewArray(Typ[Float], 8), false},
		{"typevar same index", NewTypeVar(3), NewTypeVar(3), true},
		{"typevar index differs", NewTypeVar(3), NewTypeVar(4), false},
		{"equal aliases", NewAlias("T", Typ[Float]), NewAlias("T", Typ[Float]), true},
		{"alias name differs", NewAlias("T", Typ[Float]), NewAlias("U", Typ[Float]), false},
		{"nil right", Typ[Float], nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Identical(tt.x, tt.y); got != tt.want {
				t.Errorf("Identical() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCloneDeepCopies(t *testing.T) {
	orig := NewStruct([]Field{{Name: "f", Type: NewArray(Typ[Float], 2)}})
	copied := Clone(orig).(*Struct)

	if copied == orig {
		t.Fatalf("Clone returned the original")
	}
	if copied.Field(0).Type == orig.Field(0).Type {
		t.Errorf("nested box was shared, want deep copy")
	}
	if !Identical(copied, orig) {
		t.Errorf("Clone not structurally identical to original")
	}
}
