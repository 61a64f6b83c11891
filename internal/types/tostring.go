package types

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ToString returns the canonical rendering of v. The verbose flag expands
// alias targets. The output is for diagnostics and tests only and is
// never parsed back.
func ToString(v Value, verbose bool) string {
	var b strings.Builder
	writeValue(&b, v, verbose)
	return b.String()
}

// Fdump writes the rendering of v to w, followed by a newline.
func Fdump(w io.Writer, v Value, verbose bool) {
	fmt.Fprintln(w, ToString(v, verbose))
}

// writeValue renders v into b. The type switch is exhaustive over every
// Value implementation; a new alternative must be added here.
func writeValue(b *strings.Builder, v Value, verbose bool) {
	switch v := v.(type) {
	case *Prim:
		b.WriteString(v.name)
	case *TypeVar:
		b.WriteString("TypeVar")
		b.WriteString(strconv.Itoa(v.index))
	case *Ref:
		writeValue(b, v.elem, verbose)
		b.WriteByte('&')
	case *Pointer:
		writeValue(b, v.elem, verbose)
		b.WriteByte('*')
	case *Function:
		b.WriteByte('(')
		writeList(b, v.args, verbose)
		b.WriteString(") -> ")
		writeValue(b, v.ret, verbose)
	case *Closure:
		b.WriteString("cls{ ")
		writeValue(b, v.fun, verbose)
		b.WriteString(" , ")
		writeValue(b, v.captures, verbose)
		b.WriteString(" }")
	case *Array:
		b.WriteByte('[')
		writeValue(b, v.elem, verbose)
		b.WriteByte('x')
		b.WriteString(strconv.Itoa(v.size))
		b.WriteByte(']')
	case *Tuple:
		b.WriteByte('(')
		writeList(b, v.elems, verbose)
		b.WriteByte(')')
	case *Struct:
		b.WriteByte('{')
		for i, f := range v.fields {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(f.Name)
			b.WriteByte(':')
			writeValue(b, f.Type, verbose)
		}
		b.WriteByte('}')
	case *Alias:
		b.WriteString(v.name)
		if verbose {
			b.WriteString(": ")
			writeValue(b, v.target, verbose)
		}
	default:
		panic(fmt.Sprintf("types: unknown Value %T", v))
	}
}

// writeList renders vs joined with "," and no trailing separator.
func writeList(b *strings.Builder, vs []Value, verbose bool) {
	for i, v := range vs {
		if i > 0 {
			b.WriteByte(',')
		}
		writeValue(b, v, verbose)
	}
}
