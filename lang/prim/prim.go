// Package prim holds the two process-wide, read-only name tables the
// resolver consults to disambiguate an identifier: the built-in
// primitives (+, car, null?, ...) and the reserved special-form names
// (lambda, let, letrec, if, begin, quote). Both tables are fixed at
// startup and never mutated afterward.
package prim

import "github.com/dolthub/swiss"

// Kind identifies a built-in primitive operator.
type Kind int

const (
	Mul Kind = iota
	Minus
	Plus
	Lt
	Le
	Eq
	Ge
	Gt
	EqQ
	Cons
	BooleanQ
	FixnumQ
	NullQ
	PairQ
	ProcedureQ
	SymbolQ
	Not
	Car
	Cdr
	Void
	Exit
)

// String returns the source-level spelling of the primitive, e.g. "+"
// for Plus or "car" for Car.
func (k Kind) String() string {
	if s, ok := names[k]; ok {
		return s
	}
	return "<unknown primitive>"
}

// Arity returns the fixed number of arguments this primitive accepts.
func (k Kind) Arity() int {
	switch k {
	case Void, Exit:
		return 0
	case BooleanQ, FixnumQ, NullQ, PairQ, ProcedureQ, SymbolQ, Not, Car, Cdr:
		return 1
	default:
		return 2
	}
}

// Reserved identifies a reserved special-form name.
type Reserved int

const (
	Lambda Reserved = iota
	Let
	Letrec
	If
	Begin
	Quote
)

func (r Reserved) String() string {
	if s, ok := reservedNames[r]; ok {
		return s
	}
	return "<unknown reserved word>"
}

var names = map[Kind]string{
	Mul: "*", Minus: "-", Plus: "+",
	Lt: "<", Le: "<=", Eq: "=", Ge: ">=", Gt: ">",
	EqQ: "eq?", Cons: "cons",
	BooleanQ: "boolean?", FixnumQ: "fixnum?", NullQ: "null?",
	PairQ: "pair?", ProcedureQ: "procedure?", SymbolQ: "symbol?",
	Not: "not", Car: "car", Cdr: "cdr",
	Void: "void", Exit: "exit",
}

var reservedNames = map[Reserved]string{
	Lambda: "lambda", Let: "let", Letrec: "letrec",
	If: "if", Begin: "begin", Quote: "quote",
}

// Primitives maps a primitive's source name to its Kind. Fixed at
// startup, read-only thereafter.
var Primitives *swiss.Map[string, Kind]

// ReservedWords maps a special form's source name to its Reserved kind. Fixed
// at startup, read-only thereafter.
var ReservedWords *swiss.Map[string, Reserved]

func init() {
	Primitives = swiss.NewMap[string, Kind](uint32(len(names)))
	for k, s := range names {
		Primitives.Put(s, k)
	}

	ReservedWords = swiss.NewMap[string, Reserved](uint32(len(reservedNames)))
	for r, s := range reservedNames {
		ReservedWords.Put(s, r)
	}
}

// IsPrimitive reports whether name is a built-in primitive.
func IsPrimitive(name string) bool {
	_, ok := Primitives.Get(name)
	return ok
}

// IsReserved reports whether name is a reserved special-form name.
func IsReserved(name string) bool {
	_, ok := ReservedWords.Get(name)
	return ok
}
