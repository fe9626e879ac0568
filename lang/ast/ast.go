// Package ast defines the resolved expression tree (Expr) produced by
// lang/resolver from a lang/syntax tree. Unlike the raw syntax tree, an
// Expr has already disambiguated primitives, special forms, variable
// references and applications, so lang/machine's evaluator never has to
// re-inspect names.
package ast

import (
	"fmt"
	"strings"

	"github.com/kranzio/myscheme/lang/prim"
	"github.com/kranzio/myscheme/lang/syntax"
)

// Expr is the interface implemented by every node of a resolved
// expression tree.
type Expr interface {
	fmt.Stringer
	expr()
}

// Fixnum is an integer literal.
type Fixnum struct{ N int }

// BoolLit is a boolean literal (#t or #f).
type BoolLit struct{ B bool }

// Var is a reference to a variable bound in the environment at eval
// time (checked then, not at resolve time).
type Var struct{ X string }

// If is a strict three-arm conditional.
type If struct{ Cond, Then, Else Expr }

// Begin evaluates a sequence of expressions in order, for effect, and
// yields the value of the last one (Null if the sequence is empty).
type Begin struct{ Seq []Expr }

// Lambda is an anonymous function literal.
type Lambda struct {
	Params []string
	Body   Expr
}

// Apply is a general function call.
type Apply struct {
	Fn   Expr
	Args []Expr
}

// Binding is one (name, expr) pair of a Let or Letrec header.
type Binding struct {
	Name string
	Expr Expr
}

// Let is a parallel binding form: every RHS is evaluated under the
// outer environment, none can see its siblings.
type Let struct {
	Bindings []Binding
	Body     Expr
}

// Letrec is a mutually-recursive binding form: every RHS can see every
// binding in its own header.
type Letrec struct {
	Bindings []Binding
	Body     Expr
}

// Quote preserves a raw syntax tree to be turned into a value at eval
// time, never re-resolved.
type Quote struct{ Datum syntax.Syntax }

// MakeVoid produces the Void value.
type MakeVoid struct{}

// Exit produces the Terminate value.
type Exit struct{}

// PrimNullary applies a zero-argument primitive, e.g. (void), (exit).
type PrimNullary struct{ Kind prim.Kind }

// PrimUnary applies a one-argument primitive, e.g. (car x), (not x).
type PrimUnary struct {
	Kind prim.Kind
	X    Expr
}

// PrimBinary applies a two-argument primitive, e.g. (+ x y), (cons x y).
type PrimBinary struct {
	Kind prim.Kind
	X, Y Expr
}

func (*Fixnum) expr()      {}
func (*BoolLit) expr()     {}
func (*Var) expr()         {}
func (*If) expr()          {}
func (*Begin) expr()       {}
func (*Lambda) expr()      {}
func (*Apply) expr()       {}
func (*Let) expr()         {}
func (*Letrec) expr()      {}
func (*Quote) expr()       {}
func (*MakeVoid) expr()    {}
func (*Exit) expr()        {}
func (*PrimNullary) expr() {}
func (*PrimUnary) expr()   {}
func (*PrimBinary) expr()  {}

func (n *Fixnum) String() string { return fmt.Sprintf("%d", n.N) }
func (n *BoolLit) String() string {
	if n.B {
		return "#t"
	}
	return "#f"
}
func (n *Var) String() string { return n.X }
func (n *If) String() string {
	return fmt.Sprintf("(if %s %s %s)", n.Cond, n.Then, n.Else)
}
func (n *Begin) String() string {
	return fmt.Sprintf("(begin %s)", joinExprs(n.Seq))
}
func (n *Lambda) String() string {
	return fmt.Sprintf("(lambda (%s) %s)", strings.Join(n.Params, " "), n.Body)
}
func (n *Apply) String() string {
	if len(n.Args) == 0 {
		return fmt.Sprintf("(%s)", n.Fn)
	}
	return fmt.Sprintf("(%s %s)", n.Fn, joinExprs(n.Args))
}
func (n *Let) String() string {
	return fmt.Sprintf("(let (%s) %s)", joinBindings(n.Bindings), n.Body)
}
func (n *Letrec) String() string {
	return fmt.Sprintf("(letrec (%s) %s)", joinBindings(n.Bindings), n.Body)
}
func (n *Quote) String() string     { return fmt.Sprintf("(quote %s)", n.Datum) }
func (n *MakeVoid) String() string  { return "(void)" }
func (n *Exit) String() string      { return "(exit)" }
func (n *PrimNullary) String() string { return fmt.Sprintf("(%s)", n.Kind) }
func (n *PrimUnary) String() string   { return fmt.Sprintf("(%s %s)", n.Kind, n.X) }
func (n *PrimBinary) String() string  { return fmt.Sprintf("(%s %s %s)", n.Kind, n.X, n.Y) }

func joinExprs(es []Expr) string {
	parts := make([]string, len(es))
	for i, e := range es {
		parts[i] = e.String()
	}
	return strings.Join(parts, " ")
}

func joinBindings(bs []Binding) string {
	parts := make([]string, len(bs))
	for i, b := range bs {
		parts[i] = fmt.Sprintf("(%s %s)", b.Name, b.Expr)
	}
	return strings.Join(parts, " ")
}
