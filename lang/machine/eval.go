package machine

import (
	"github.com/kranzio/myscheme/lang/ast"
	"github.com/kranzio/myscheme/lang/prim"
)

// Eval reduces expr to a Value under env, using th for cancellation and
// recursion-depth bookkeeping. Pass a fresh Thread per independent
// evaluation; NewThread(nil) gives a Thread whose context is
// context.Background(), which is never cancelled.
func Eval(expr ast.Expr, env *Env, th *Thread) (Value, error) {
	leave, err := th.enter()
	defer leave()
	if err != nil {
		return nil, err
	}

	switch e := expr.(type) {
	case *ast.Fixnum:
		return Integer(e.N), nil

	case *ast.BoolLit:
		return Boolean(e.B), nil

	case *ast.Var:
		v, ok := Find(e.X, env)
		if !ok {
			return nil, unboundVariable(e.X)
		}
		return v, nil

	case *ast.If:
		cond, err := Eval(e.Cond, env, th)
		if err != nil {
			return nil, err
		}
		if Truthy(cond) {
			return Eval(e.Then, env, th)
		}
		return Eval(e.Else, env, th)

	case *ast.Begin:
		return evalBegin(e.Seq, env, th)

	case *ast.Lambda:
		return &Closure{Params: e.Params, Body: e.Body, Env: env}, nil

	case *ast.Apply:
		return evalApply(e, env, th)

	case *ast.Let:
		return evalLet(e, env, th)

	case *ast.Letrec:
		return evalLetrec(e, env, th)

	case *ast.Quote:
		return QuoteToValue(e.Datum), nil

	case *ast.MakeVoid:
		return Void, nil

	case *ast.Exit:
		return Terminate, nil

	case *ast.PrimNullary:
		return evalPrimNullary(e.Kind)

	case *ast.PrimUnary:
		x, err := Eval(e.X, env, th)
		if err != nil {
			return nil, err
		}
		return evalPrimUnary(e.Kind, x)

	case *ast.PrimBinary:
		x, err := Eval(e.X, env, th)
		if err != nil {
			return nil, err
		}
		y, err := Eval(e.Y, env, th)
		if err != nil {
			return nil, err
		}
		return evalPrimBinary(e.Kind, x, y)

	default:
		return nil, &RuntimeError{Kind: TypeError, Msg: "Type error"}
	}
}

func evalBegin(seq []ast.Expr, env *Env, th *Thread) (Value, error) {
	if len(seq) == 0 {
		return Null, nil
	}
	var (
		v   Value
		err error
	)
	for _, e := range seq {
		v, err = Eval(e, env, th)
		if err != nil {
			return nil, err
		}
	}
	return v, nil
}

func evalApply(e *ast.Apply, env *Env, th *Thread) (Value, error) {
	fnVal, err := Eval(e.Fn, env, th)
	if err != nil {
		return nil, err
	}
	closure, ok := fnVal.(*Closure)
	if !ok {
		return nil, badCall()
	}
	if len(closure.Params) != len(e.Args) {
		return nil, arityError(len(closure.Params), len(e.Args))
	}

	callEnv := closure.Env
	for i, arg := range e.Args {
		v, err := Eval(arg, env, th)
		if err != nil {
			return nil, err
		}
		callEnv = Extend(closure.Params[i], v, callEnv)
	}
	return Eval(closure.Body, callEnv, th)
}

// evalLet evaluates every binding's RHS under the outer environment
// (parallel: a sibling cannot see another sibling's binding) and then
// evaluates the body under the outer environment extended with every
// binding.
func evalLet(e *ast.Let, env *Env, th *Thread) (Value, error) {
	bodyEnv := env
	for _, b := range e.Bindings {
		v, err := Eval(b.Expr, env, th)
		if err != nil {
			return nil, err
		}
		bodyEnv = Extend(b.Name, v, bodyEnv)
	}
	return Eval(e.Body, bodyEnv, th)
}

// evalLetrec implements a three-phase algorithm: extend the
// environment with a placeholder for every binding first, then evaluate
// each binding's RHS under that same (now-recursive) environment and
// fix up its cell in place immediately, then evaluate the body. Because
// every RHS is evaluated under the one environment whose cells are
// later mutated, closures created by one binding's RHS see every
// sibling's final value once the fixup loop completes, enabling mutual
// recursion.
func evalLetrec(e *ast.Letrec, env *Env, th *Thread) (Value, error) {
	recEnv := env
	for _, b := range e.Bindings {
		recEnv = Extend(b.Name, Null, recEnv)
	}

	for _, b := range e.Bindings {
		v, err := Eval(b.Expr, recEnv, th)
		if err != nil {
			return nil, err
		}
		Modify(b.Name, v, recEnv)
	}

	return Eval(e.Body, recEnv, th)
}

func evalPrimNullary(k prim.Kind) (Value, error) {
	switch k {
	case prim.Void:
		return Void, nil
	case prim.Exit:
		return Terminate, nil
	default:
		return nil, typeError()
	}
}

func evalPrimUnary(k prim.Kind, x Value) (Value, error) {
	switch k {
	case prim.BooleanQ:
		_, ok := x.(Boolean)
		return Boolean(ok), nil
	case prim.FixnumQ:
		_, ok := x.(Integer)
		return Boolean(ok), nil
	case prim.NullQ:
		_, ok := x.(nullType)
		return Boolean(ok), nil
	case prim.PairQ:
		_, ok := x.(*Pair)
		return Boolean(ok), nil
	case prim.ProcedureQ:
		_, ok := x.(*Closure)
		return Boolean(ok), nil
	case prim.SymbolQ:
		_, ok := x.(Symbol)
		return Boolean(ok), nil
	case prim.Not:
		b, ok := x.(Boolean)
		return Boolean(ok && !bool(b)), nil
	case prim.Car:
		p, ok := x.(*Pair)
		if !ok {
			return nil, typeError()
		}
		return p.Car, nil
	case prim.Cdr:
		p, ok := x.(*Pair)
		if !ok {
			return nil, typeError()
		}
		return p.Cdr, nil
	default:
		return nil, typeError()
	}
}

func evalPrimBinary(k prim.Kind, x, y Value) (Value, error) {
	if k == prim.Cons {
		return &Pair{Car: x, Cdr: y}, nil
	}
	if k == prim.EqQ {
		return Boolean(valuesEqual(x, y)), nil
	}

	xi, xok := x.(Integer)
	yi, yok := y.(Integer)
	if !xok || !yok {
		return nil, typeError()
	}

	switch k {
	case prim.Mul:
		return xi * yi, nil
	case prim.Minus:
		return xi - yi, nil
	case prim.Plus:
		return xi + yi, nil
	case prim.Lt:
		return Boolean(xi < yi), nil
	case prim.Le:
		return Boolean(xi <= yi), nil
	case prim.Eq:
		return Boolean(xi == yi), nil
	case prim.Ge:
		return Boolean(xi >= yi), nil
	case prim.Gt:
		return Boolean(xi > yi), nil
	default:
		return nil, typeError()
	}
}

// valuesEqual implements eq?: same-identity pair or closure, or both
// Boolean with equal b, or both Symbol with equal string, or both
// Integer with equal n, or both Null, or both Void; false for every other
// combination.
func valuesEqual(x, y Value) bool {
	if xp, ok := x.(*Pair); ok {
		if yp, ok := y.(*Pair); ok {
			return xp == yp
		}
		return false
	}
	if xb, ok := x.(Boolean); ok {
		yb, ok := y.(Boolean)
		return ok && xb == yb
	}
	if xs, ok := x.(Symbol); ok {
		ys, ok := y.(Symbol)
		return ok && xs == ys
	}
	if xi, ok := x.(Integer); ok {
		yi, ok := y.(Integer)
		return ok && xi == yi
	}
	if _, ok := x.(nullType); ok {
		_, ok2 := y.(nullType)
		return ok2
	}
	if _, ok := x.(voidType); ok {
		_, ok2 := y.(voidType)
		return ok2
	}
	if xc, ok := x.(*Closure); ok {
		yc, ok := y.(*Closure)
		return ok && xc == yc
	}
	return false
}
