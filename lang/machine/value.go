// Package machine implements the runtime value domain, the lexically
// scoped environment chain, and the tree-walking evaluator that reduces
// a lang/ast expression tree to a Value.
package machine

import (
	"fmt"

	"github.com/kranzio/myscheme/lang/ast"
)

// Value is the interface implemented by every runtime value.
type Value interface {
	fmt.Stringer
	// Type returns a short name describing the value's kind, e.g.
	// "integer" or "closure".
	Type() string
}

// Integer is a fixnum value.
type Integer int

// Boolean is a boolean value. Only Boolean(false) is false; every other
// value (including Integer(0) and Null) is truthy.
type Boolean bool

// Symbol is an interned-by-value symbol, produced only by Quote.
type Symbol string

// nullType is the type of Null. There is exactly one value of this type.
type nullType struct{}

// Null is the empty list / nil value.
var Null Value = nullType{}

// voidType is the type of Void. There is exactly one value of this type.
type voidType struct{}

// Void is the value produced by (void) and by MakeVoid, which is what
// the empty syntax list resolves to. An empty Begin yields Null, not
// Void.
var Void Value = voidType{}

// terminateType is the type of Terminate. There is exactly one value of
// this type.
type terminateType struct{}

// Terminate is the sentinel value produced by (exit); the host REPL is
// responsible for stopping on seeing it.
var Terminate Value = terminateType{}

// Pair is a cons cell.
type Pair struct {
	Car, Cdr Value
}

// Closure is a first-class function: a parameter list and a body
// paired with the environment in effect where the Lambda was reduced,
// not where it is later applied.
type Closure struct {
	Params []string
	Body   ast.Expr
	Env    *Env
}

// ExpressionCell is a resolver-internal hint value: it lets a
// resolution-time environment record "this name will hold the value of
// this already-resolved expression" for let/letrec bindings. It is
// advisory only, nothing downstream switches on it, and it must never
// leak into an evaluation-time environment or into user-visible output.
type ExpressionCell struct {
	Expr ast.Expr
}

var (
	_ Value = Integer(0)
	_ Value = Boolean(false)
	_ Value = Symbol("")
	_ Value = nullType{}
	_ Value = voidType{}
	_ Value = terminateType{}
	_ Value = (*Pair)(nil)
	_ Value = (*Closure)(nil)
	_ Value = ExpressionCell{}
)

func (i Integer) String() string { return fmt.Sprintf("%d", int(i)) }
func (i Integer) Type() string   { return "integer" }

func (b Boolean) String() string {
	if b {
		return "#t"
	}
	return "#f"
}
func (b Boolean) Type() string { return "boolean" }

func (s Symbol) String() string { return string(s) }
func (s Symbol) Type() string   { return "symbol" }

func (nullType) String() string { return "()" }
func (nullType) Type() string   { return "null" }

func (voidType) String() string { return "#<void>" }
func (voidType) Type() string   { return "void" }

func (terminateType) String() string { return "#<terminate>" }
func (terminateType) Type() string   { return "terminate" }

func (p *Pair) String() string {
	s := "("
	s += p.Car.String()
	rest := p.Cdr
	for {
		switch r := rest.(type) {
		case nullType:
			return s + ")"
		case *Pair:
			s += " " + r.Car.String()
			rest = r.Cdr
		default:
			return s + " . " + rest.String() + ")"
		}
	}
}
func (p *Pair) Type() string { return "pair" }

func (c *Closure) String() string { return "#<closure>" }
func (c *Closure) Type() string   { return "closure" }

func (e ExpressionCell) String() string { return fmt.Sprintf("#<expr %s>", e.Expr) }
func (e ExpressionCell) Type() string   { return "expression-cell" }

// Truthy reports whether v is considered true by If and friends: only
// Boolean(false) is false.
func Truthy(v Value) bool {
	b, ok := v.(Boolean)
	return !ok || bool(b)
}
