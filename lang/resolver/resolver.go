// Package resolver turns a raw lang/syntax tree into a resolved
// lang/ast expression tree, disambiguating primitives, reserved forms,
// variable references and applications.
//
// Resolution and evaluation share the same environment type
// (lang/machine.Env): a resolution-time environment only ever needs to
// answer "is this name already bound by an enclosing lambda/let/
// letrec?", so machine.Void is used as the bound-name placeholder for
// lambda parameters, and machine.ExpressionCell wraps the already
// resolved right-hand side as an advisory hint for let/letrec bindings.
// Nothing downstream inspects the placeholder's value.
package resolver

import (
	"fmt"

	"github.com/kranzio/myscheme/lang/ast"
	"github.com/kranzio/myscheme/lang/machine"
	"github.com/kranzio/myscheme/lang/prim"
	"github.com/kranzio/myscheme/lang/syntax"
)

// ParseError is returned for every resolution-time failure: malformed
// special forms, wrong arity for a built-in or special form, or an
// unrecognized operator position.
type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string { return e.Msg }

func parseErrorf(format string, args ...interface{}) error {
	return &ParseError{Msg: fmt.Sprintf(format, args...)}
}

// Resolve consumes one syntax.Syntax node and the resolution
// environment tracking names already bound by an enclosing lambda, let
// or letrec, and produces a resolved ast.Expr.
func Resolve(s syntax.Syntax, env *machine.Env) (ast.Expr, error) {
	switch s := s.(type) {
	case syntax.Number:
		return &ast.Fixnum{N: s.N}, nil

	case syntax.TrueAtom:
		return &ast.BoolLit{B: true}, nil

	case syntax.FalseAtom:
		return &ast.BoolLit{B: false}, nil

	case syntax.Identifier:
		return resolveIdentifier(s, env)

	case syntax.List:
		return resolveList(s, env)

	default:
		return nil, parseErrorf("Unknown operation")
	}
}

func resolveIdentifier(id syntax.Identifier, env *machine.Env) (ast.Expr, error) {
	if _, ok := machine.Find(id.S, env); ok {
		return &ast.Var{X: id.S}, nil
	}

	kind, ok := prim.Primitives.Get(id.S)
	if !ok {
		// Deferred to eval time: an unbound identifier that is neither a
		// user binding nor a primitive still resolves to a Var; whether it
		// is actually bound is an evaluator concern.
		return &ast.Var{X: id.S}, nil
	}
	return Resolve(desugarPrimitive(id.S, kind), env)
}

// desugarPrimitive wraps a bare primitive identifier in the matching
// anonymous lambda shape, so the inner application is produced by the
// ordinary List path and every primitive becomes a first-class value.
func desugarPrimitive(name string, kind prim.Kind) syntax.Syntax {
	switch kind.Arity() {
	case 0:
		return syntax.List{Children: []syntax.Syntax{
			syntax.Identifier{S: "lambda"},
			syntax.List{},
			syntax.List{Children: []syntax.Syntax{syntax.Identifier{S: name}}},
		}}
	case 1:
		return syntax.List{Children: []syntax.Syntax{
			syntax.Identifier{S: "lambda"},
			syntax.List{Children: []syntax.Syntax{syntax.Identifier{S: "x"}}},
			syntax.List{Children: []syntax.Syntax{
				syntax.Identifier{S: name}, syntax.Identifier{S: "x"},
			}},
		}}
	default:
		return syntax.List{Children: []syntax.Syntax{
			syntax.Identifier{S: "lambda"},
			syntax.List{Children: []syntax.Syntax{
				syntax.Identifier{S: "x"}, syntax.Identifier{S: "y"},
			}},
			syntax.List{Children: []syntax.Syntax{
				syntax.Identifier{S: name}, syntax.Identifier{S: "x"}, syntax.Identifier{S: "y"},
			}},
		}}
	}
}

func resolveList(l syntax.List, env *machine.Env) (ast.Expr, error) {
	if len(l.Children) == 0 {
		return &ast.MakeVoid{}, nil
	}

	head := l.Children[0]
	rest := l.Children[1:]

	if id, ok := head.(syntax.Identifier); ok {
		if _, ok := machine.Find(id.S, env); ok {
			return resolveApply(head, rest, env)
		}

		if kind, ok := prim.Primitives.Get(id.S); ok {
			return resolvePrimitive(id.S, kind, rest, env)
		}

		if word, ok := prim.ReservedWords.Get(id.S); ok {
			return resolveSpecialForm(word, rest, env)
		}

		return resolveApply(head, rest, env)
	}

	if _, ok := head.(syntax.List); ok {
		return resolveApply(head, rest, env)
	}

	return nil, parseErrorf("Unknown operation")
}

func resolveApply(head syntax.Syntax, rest []syntax.Syntax, env *machine.Env) (ast.Expr, error) {
	fn, err := Resolve(head, env)
	if err != nil {
		return nil, err
	}
	args, err := resolveAll(rest, env)
	if err != nil {
		return nil, err
	}
	return &ast.Apply{Fn: fn, Args: args}, nil
}

func resolveAll(xs []syntax.Syntax, env *machine.Env) ([]ast.Expr, error) {
	out := make([]ast.Expr, len(xs))
	for i, x := range xs {
		e, err := Resolve(x, env)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}

func checkArity(name string, want, got int) error {
	if want != got {
		return parseErrorf("expected %d argument(s), found %d", want, got)
	}
	return nil
}

func resolvePrimitive(name string, kind prim.Kind, args []syntax.Syntax, env *machine.Env) (ast.Expr, error) {
	if err := checkArity(name, kind.Arity(), len(args)); err != nil {
		return nil, err
	}

	switch kind.Arity() {
	case 0:
		return &ast.PrimNullary{Kind: kind}, nil
	case 1:
		x, err := Resolve(args[0], env)
		if err != nil {
			return nil, err
		}
		return &ast.PrimUnary{Kind: kind, X: x}, nil
	default:
		x, err := Resolve(args[0], env)
		if err != nil {
			return nil, err
		}
		y, err := Resolve(args[1], env)
		if err != nil {
			return nil, err
		}
		return &ast.PrimBinary{Kind: kind, X: x, Y: y}, nil
	}
}

func resolveSpecialForm(word prim.Reserved, args []syntax.Syntax, env *machine.Env) (ast.Expr, error) {
	switch word {
	case prim.Lambda:
		return resolveLambda(args, env)
	case prim.Let:
		return resolveLet(args, env)
	case prim.Letrec:
		return resolveLetrec(args, env)
	case prim.If:
		return resolveIf(args, env)
	case prim.Begin:
		return resolveBegin(args, env)
	case prim.Quote:
		return resolveQuote(args)
	default:
		return nil, parseErrorf("Unknown operation")
	}
}

func resolveLambda(args []syntax.Syntax, env *machine.Env) (ast.Expr, error) {
	if err := checkArity("lambda", 2, len(args)); err != nil {
		return nil, err
	}

	paramList, ok := args[0].(syntax.List)
	if !ok {
		return nil, parseErrorf("lambda: malformed parameter list")
	}

	params := make([]string, 0, len(paramList.Children))
	bodyEnv := env
	for _, p := range paramList.Children {
		pid, ok := p.(syntax.Identifier)
		if !ok {
			return nil, parseErrorf("lambda: malformed parameter")
		}
		params = append(params, pid.S)
		if _, bound := machine.Find(pid.S, bodyEnv); !bound {
			bodyEnv = machine.Extend(pid.S, machine.Void, bodyEnv)
		}
	}

	body, err := Resolve(args[1], bodyEnv)
	if err != nil {
		return nil, err
	}
	return &ast.Lambda{Params: params, Body: body}, nil
}

// resolveBindingHeader parses a let/letrec header ((x1 e1) ... (xn en)),
// resolving every RHS under outerEnv (the rule is the same for let and
// letrec: the evaluator, not the resolver, provides letrec's recursive
// semantics via environment pre-binding).
func resolveBindingHeader(args []syntax.Syntax, outerEnv *machine.Env) ([]ast.Binding, *machine.Env, error) {
	headerList, ok := args[0].(syntax.List)
	if !ok {
		return nil, nil, parseErrorf("malformed binding header")
	}

	bindings := make([]ast.Binding, 0, len(headerList.Children))
	innerEnv := outerEnv
	for _, h := range headerList.Children {
		pair, ok := h.(syntax.List)
		if !ok {
			return nil, nil, parseErrorf("malformed binding")
		}
		if len(pair.Children) != 2 {
			return nil, nil, parseErrorf("expected %d argument(s), found %d", 1, len(pair.Children)-1)
		}
		name, ok := pair.Children[0].(syntax.Identifier)
		if !ok {
			return nil, nil, parseErrorf("malformed binding name")
		}

		parsed, err := Resolve(pair.Children[1], outerEnv)
		if err != nil {
			return nil, nil, err
		}

		bindings = append(bindings, ast.Binding{Name: name.S, Expr: parsed})
		innerEnv = machine.Extend(name.S, machine.ExpressionCell{Expr: parsed}, innerEnv)
	}
	return bindings, innerEnv, nil
}

func resolveLet(args []syntax.Syntax, env *machine.Env) (ast.Expr, error) {
	if err := checkArity("let", 2, len(args)); err != nil {
		return nil, err
	}
	bindings, bodyEnv, err := resolveBindingHeader(args, env)
	if err != nil {
		return nil, err
	}
	body, err := Resolve(args[1], bodyEnv)
	if err != nil {
		return nil, err
	}
	return &ast.Let{Bindings: bindings, Body: body}, nil
}

func resolveLetrec(args []syntax.Syntax, env *machine.Env) (ast.Expr, error) {
	if err := checkArity("letrec", 2, len(args)); err != nil {
		return nil, err
	}
	bindings, bodyEnv, err := resolveBindingHeader(args, env)
	if err != nil {
		return nil, err
	}
	body, err := Resolve(args[1], bodyEnv)
	if err != nil {
		return nil, err
	}
	return &ast.Letrec{Bindings: bindings, Body: body}, nil
}

func resolveIf(args []syntax.Syntax, env *machine.Env) (ast.Expr, error) {
	if err := checkArity("if", 3, len(args)); err != nil {
		return nil, err
	}
	cond, err := Resolve(args[0], env)
	if err != nil {
		return nil, err
	}
	then, err := Resolve(args[1], env)
	if err != nil {
		return nil, err
	}
	alt, err := Resolve(args[2], env)
	if err != nil {
		return nil, err
	}
	return &ast.If{Cond: cond, Then: then, Else: alt}, nil
}

func resolveBegin(args []syntax.Syntax, env *machine.Env) (ast.Expr, error) {
	seq, err := resolveAll(args, env)
	if err != nil {
		return nil, err
	}
	return &ast.Begin{Seq: seq}, nil
}

func resolveQuote(args []syntax.Syntax) (ast.Expr, error) {
	if err := checkArity("quote", 1, len(args)); err != nil {
		return nil, err
	}
	return &ast.Quote{Datum: args[0]}, nil
}
