package types

import (
	"strings"
	"testing"
)

func TestTypeVarAllocation(t *testing.T) {
	env := NewEnv()

	for want := 0; want < 3; want++ {
		tv := env.CreateTypeVar()
		if tv.Index() != want {
			t.Errorf("Index() = %d, want %d", tv.Index(), want)
		}
	}

	if env.NumTypeVars() != 3 {
		t.Errorf("NumTypeVars() = %d, want 3", env.NumTypeVars())
	}
	if got := env.FindTypeVar(1).String(); got != "TypeVar1" {
		t.Errorf("String() = %q, want %q", got, "TypeVar1")
	}
}

func TestTypeVarDefaults(t *testing.T) {
	tv := NewTypeVar(7)

	if tv.Contained != Typ[None] {
		t.Errorf("Contained = %v, want none", tv.Contained)
	}
	if tv.Prev != nil || tv.Next != nil {
		t.Errorf("fresh variable must be unlinked")
	}
	if tv.FirstLink() != tv || tv.LastLink() != tv {
		t.Errorf("unlinked variable must be its own extremities")
	}
	if KindOf(tv) != KindIntermediate {
		t.Errorf("KindOf() = %v, want %v", KindOf(tv), KindIntermediate)
	}
}

func TestTypeVarChainResolution(t *testing.T) {
	env := NewEnv()
	a := env.CreateTypeVar()
	b := env.CreateTypeVar()

	// Splice a onto b: a's class representative becomes b.
	a.Next = b
	b.Prev = a
	b.Contained = Typ[Float]

	if a.LastLink() != b {
		t.Errorf("LastLink() != b")
	}
	if b.FirstLink() != a {
		t.Errorf("FirstLink() != a")
	}
	if a.Resolve() != Typ[Float] {
		t.Errorf("Resolve() = %v, want float", a.Resolve())
	}
}

func TestTypeVarLongChain(t *testing.T) {
	env := NewEnv()
	vars := make([]*TypeVar, 5)
	for i := range vars {
		vars[i] = env.CreateTypeVar()
	}
	for i := 0; i+1 < len(vars); i++ {
		vars[i].Next = vars[i+1]
		vars[i+1].Prev = vars[i]
	}

	last := vars[len(vars)-1]
	first := vars[0]
	for _, tv := range vars {
		if tv.LastLink() != last {
			t.Errorf("LastLink() of TypeVar%d != last", tv.Index())
		}
		if tv.FirstLink() != first {
			t.Errorf("FirstLink() of TypeVar%d != first", tv.Index())
		}
	}

	// The first link's forward chain must end exactly at the last link.
	if first.LastLink() != last {
		t.Errorf("forward chain from first does not end at last")
	}
}

func TestTypeVarCycleIsFatal(t *testing.T) {
	env := NewEnv()
	a := env.CreateTypeVar()
	b := env.CreateTypeVar()
	a.Next = b
	b.Next = a

	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("LastLink() on a cyclic chain did not panic")
		}
		if msg, ok := r.(string); !ok || !strings.Contains(msg, "cyclic") {
			t.Errorf("unexpected panic value: %v", r)
		}
	}()
	a.LastLink()
}

func TestTypeVarRenumbering(t *testing.T) {
	tv := NewTypeVar(0)
	tv.SetIndex(42)

	if tv.Index() != 42 {
		t.Errorf("Index() = %d, want 42", tv.Index())
	}
	if tv.String() != "TypeVar42" {
		t.Errorf("String() = %q, want %q", tv.String(), "TypeVar42")
	}
}

func TestTypeVarSharedThroughClone(t *testing.T) {
	env := NewEnv()
	tv := env.CreateTypeVar()
	fn := NewFunction(tv, Args(tv))

	copied := Clone(fn).(*Function)
	if copied == fn {
		t.Fatalf("Clone returned the original box")
	}
	if copied.Return() != tv || copied.Arg(0) != tv {
		t.Errorf("Clone must share type variables, not copy them")
	}

	// Resolution through the shared node is visible in the copy.
	tv.Contained = Typ[Float]
	if copied.Arg(0).(*TypeVar).Resolve() != Typ[Float] {
		t.Errorf("resolution not visible through cloned value")
	}
}
