// Package typexpr implements a small scanner and parser for the type
// expression syntax used by the kaedetypes explorer and by tests.
// The syntax follows the canonical rendering closely but is a separate
// surface: canonical String() output is not guaranteed to parse back
// (aliases print as bare names and closures have no literal form here).
//
// Grammar:
//
//	type    = primary { "&" | "*" } .
//	primary = ident                                // primitive or env binding
//	        | "'" number                           // registered type variable
//	        | "(" [ type { "," type } ] ")" [ "->" type ]
//	        | "[" type "x" number "]"
//	        | "{" [ ident ":" type { "," ident ":" type } ] "}" .
package typexpr

import (
	"fmt"
	"strconv"

	"github.com/kaede-lang/kaede/internal/types"
)

// SyntaxError reports a malformed type expression.
type SyntaxError struct {
	Col int // 1-based column in the source expression
	Msg string
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("col %d: %s", e.Col, e.Msg)
}

// Parse parses a single type expression. Identifiers resolve through env:
// the primitive names yield the predeclared types, any other name must be
// bound in env. 'N references the registered type variable with index N.
// env may be nil when the expression uses neither.
func Parse(src string, env *types.Env) (types.Value, error) {
	p := &parser{src: src, env: env}
	p.next()
	v, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if p.tok != tokEOF {
		return nil, p.errorf("unexpected %s after type", p.describe())
	}
	return v, nil
}

type token int

const (
	tokEOF token = iota
	tokIdent
	tokNumber
	tokLParen
	tokRParen
	tokLBrack
	tokRBrack
	tokLBrace
	tokRBrace
	tokComma
	tokColon
	tokAmp
	tokStar
	tokArrow
	tokQuote
	tokInvalid
)

type parser struct {
	src string
	off int // scan offset into src
	env *types.Env

	// Current token info
	tok    token
	lit    string // identifier or number literal
	tokCol int    // 1-based column of the current token
}

// next advances to the next token.
func (p *parser) next() {
	for p.off < len(p.src) && (p.src[p.off] == ' ' || p.src[p.off] == '\t') {
		p.off++
	}
	p.tokCol = p.off + 1
	p.lit = ""

	if p.off >= len(p.src) {
		p.tok = tokEOF
		return
	}

	ch := p.src[p.off]
	switch {
	case isIdentStart(ch):
		start := p.off
		for p.off < len(p.src) && isIdentCont(p.src[p.off]) {
			p.off++
		}
		p.tok, p.lit = tokIdent, p.src[start:p.off]
		return
	case ch >= '0' && ch <= '9':
		start := p.off
		for p.off < len(p.src) && p.src[p.off] >= '0' && p.src[p.off] <= '9' {
			p.off++
		}
		p.tok, p.lit = tokNumber, p.src[start:p.off]
		return
	}

	p.off++
	switch ch {
	case '(':
		p.tok = tokLParen
	case ')':
		p.tok = tokRParen
	case '[':
		p.tok = tokLBrack
	case ']':
		p.tok = tokRBrack
	case '{':
		p.tok = tokLBrace
	case '}':
		p.tok = tokRBrace
	case ',':
		p.tok = tokComma
	case ':':
		p.tok = tokColon
	case '&':
		p.tok = tokAmp
	case '*':
		p.tok = tokStar
	case '\'':
		p.tok = tokQuote
	case '-':
		if p.off < len(p.src) && p.src[p.off] == '>' {
			p.off++
			p.tok = tokArrow
			return
		}
		p.tok, p.lit = tokInvalid, "-"
	default:
		p.tok, p.lit = tokInvalid, string(ch)
	}
}

func isIdentStart(ch byte) bool {
	return ch == '_' || ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z'
}

func isIdentCont(ch byte) bool {
	return isIdentStart(ch) || ch >= '0' && ch <= '9'
}

// describe returns a readable name for the current token, for errors.
func (p *parser) describe() string {
	switch p.tok {
	case tokEOF:
		return "end of expression"
	case tokIdent:
		return fmt.Sprintf("identifier %q", p.lit)
	case tokNumber:
		return fmt.Sprintf("number %q", p.lit)
	default:
		if p.lit != "" {
			return fmt.Sprintf("%q", p.lit)
		}
		return fmt.Sprintf("%q", tokenText[p.tok])
	}
}

var tokenText = map[token]string{
	tokLParen: "(", tokRParen: ")",
	tokLBrack: "[", tokRBrack: "]",
	tokLBrace: "{", tokRBrace: "}",
	tokComma: ",", tokColon: ":",
	tokAmp: "&", tokStar: "*",
	tokArrow: "->", tokQuote: "'",
}

func (p *parser) errorf(format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{Col: p.tokCol, Msg: fmt.Sprintf(format, args...)}
}

// expect consumes the given token or fails.
func (p *parser) expect(tok token) error {
	if p.tok != tok {
		return p.errorf("expected %q, found %s", tokenText[tok], p.describe())
	}
	p.next()
	return nil
}

// parseType parses a primary type followed by any number of & and *
// postfix wrappers.
func (p *parser) parseType() (types.Value, error) {
	v, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.tok {
		case tokAmp:
			v = types.NewRef(v)
			p.next()
		case tokStar:
			v = types.NewPointer(v)
			p.next()
		default:
			return v, nil
		}
	}
}

func (p *parser) parsePrimary() (types.Value, error) {
	switch p.tok {
	case tokIdent:
		return p.parseName()
	case tokQuote:
		return p.parseTypeVar()
	case tokLParen:
		return p.parseParen()
	case tokLBrack:
		return p.parseArray()
	case tokLBrace:
		return p.parseStruct()
	}
	return nil, p.errorf("expected type, found %s", p.describe())
}

// parseName resolves an identifier: a primitive name or an env binding.
func (p *parser) parseName() (types.Value, error) {
	name, col := p.lit, p.tokCol
	p.next()

	switch name {
	case "none":
		return types.Typ[types.None], nil
	case "void":
		return types.Typ[types.Void], nil
	case "float":
		return types.Typ[types.Float], nil
	case "string":
		return types.Typ[types.String], nil
	}

	if p.env == nil {
		return nil, &SyntaxError{Col: col, Msg: fmt.Sprintf("unbound name %q", name)}
	}
	v, err := p.env.Find(name)
	if err != nil {
		return nil, &SyntaxError{Col: col, Msg: err.Error()}
	}
	return v, nil
}

// parseTypeVar parses 'N, a reference into the env's variable registry.
func (p *parser) parseTypeVar() (types.Value, error) {
	p.next() // consume '
	if p.tok != tokNumber {
		return nil, p.errorf("expected type variable index, found %s", p.describe())
	}
	index, err := strconv.Atoi(p.lit)
	if err != nil {
		return nil, p.errorf("bad type variable index %q", p.lit)
	}
	col := p.tokCol
	p.next()

	if p.env == nil || index < 0 || index >= p.env.NumTypeVars() {
		return nil, &SyntaxError{Col: col, Msg: fmt.Sprintf("no registered type variable %d", index)}
	}
	return p.env.FindTypeVar(index), nil
}

// parseParen parses a parenthesized list, then decides between a tuple
// and a function type depending on a trailing arrow.
func (p *parser) parseParen() (types.Value, error) {
	p.next() // consume (

	var elems []types.Value
	if p.tok != tokRParen {
		for {
			elem, err := p.parseType()
			if err != nil {
				return nil, err
			}
			elems = append(elems, elem)
			if p.tok != tokComma {
				break
			}
			p.next()
		}
	}
	if err := p.expect(tokRParen); err != nil {
		return nil, err
	}

	if p.tok != tokArrow {
		return types.NewTuple(elems), nil
	}
	p.next()
	ret, err := p.parseType()
	if err != nil {
		return nil, err
	}
	return types.NewFunction(ret, elems), nil
}

// parseArray parses [elem x size].
func (p *parser) parseArray() (types.Value, error) {
	p.next() // consume [

	elem, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if p.tok != tokIdent || p.lit != "x" {
		return nil, p.errorf("expected \"x\" in array type, found %s", p.describe())
	}
	p.next()
	if p.tok != tokNumber {
		return nil, p.errorf("expected array size, found %s", p.describe())
	}
	size, err := strconv.Atoi(p.lit)
	if err != nil {
		return nil, p.errorf("bad array size %q", p.lit)
	}
	p.next()
	if err := p.expect(tokRBrack); err != nil {
		return nil, err
	}
	return types.NewArray(elem, size), nil
}

// parseStruct parses {field:type,...}.
func (p *parser) parseStruct() (types.Value, error) {
	p.next() // consume {

	var fields []types.Field
	if p.tok != tokRBrace {
		for {
			if p.tok != tokIdent {
				return nil, p.errorf("expected field name, found %s", p.describe())
			}
			name := p.lit
			p.next()
			if err := p.expect(tokColon); err != nil {
				return nil, err
			}
			typ, err := p.parseType()
			if err != nil {
				return nil, err
			}
			fields = append(fields, types.Field{Name: name, Type: typ})
			if p.tok != tokComma {
				break
			}
			p.next()
		}
	}
	if err := p.expect(tokRBrace); err != nil {
		return nil, err
	}
	return types.NewStruct(fields), nil
}
