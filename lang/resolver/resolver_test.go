package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kranzio/myscheme/internal/reader"
	"github.com/kranzio/myscheme/lang/ast"
	"github.com/kranzio/myscheme/lang/machine"
	"github.com/kranzio/myscheme/lang/resolver"
)

func resolveSrc(t *testing.T, src string) (ast.Expr, error) {
	t.Helper()
	s, rerr, eof := reader.New(src).Next()
	require.NoError(t, rerr)
	require.False(t, eof)
	return resolver.Resolve(s, machine.Empty())
}

func TestResolveLiterals(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"42", "42"},
		{"#t", "#t"},
		{"#f", "#f"},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			e, err := resolveSrc(t, c.src)
			require.NoError(t, err)
			assert.Equal(t, c.want, e.String())
		})
	}
}

func TestResolveDesugarsPrimitiveToLambda(t *testing.T) {
	e, err := resolveSrc(t, "+")
	require.NoError(t, err)

	lam, ok := e.(*ast.Lambda)
	require.True(t, ok, "bare primitive identifier must desugar to a lambda, got %T", e)
	assert.Equal(t, []string{"x", "y"}, lam.Params)

	body, ok := lam.Body.(*ast.PrimBinary)
	require.True(t, ok)
	assert.Equal(t, "+", body.Kind.String())
}

func TestResolveNullaryPrimitiveDesugars(t *testing.T) {
	e, err := resolveSrc(t, "exit")
	require.NoError(t, err)

	lam, ok := e.(*ast.Lambda)
	require.True(t, ok)
	assert.Empty(t, lam.Params)
	_, ok = lam.Body.(*ast.PrimNullary)
	assert.True(t, ok)
}

func TestResolveApplication(t *testing.T) {
	e, err := resolveSrc(t, "(+ 1 2)")
	require.NoError(t, err)
	assert.Equal(t, "(+ 1 2)", e.String())

	prim, ok := e.(*ast.PrimBinary)
	require.True(t, ok)
	assert.Equal(t, "+", prim.Kind.String())
}

func TestResolveUserBindingShadowsPrimitive(t *testing.T) {
	e, err := resolveSrc(t, "(let ((+ (lambda (a b) a))) (+ 1 2))")
	require.NoError(t, err)

	let, ok := e.(*ast.Let)
	require.True(t, ok)

	apply, ok := let.Body.(*ast.Apply)
	require.True(t, ok, "+ must resolve as a Var application once shadowed, not a PrimBinary")
	v, ok := apply.Fn.(*ast.Var)
	require.True(t, ok)
	assert.Equal(t, "+", v.X)
}

func TestResolveLambdaArity(t *testing.T) {
	_, err := resolveSrc(t, "(lambda (x))")
	require.Error(t, err)
	assert.Equal(t, "expected 2 argument(s), found 1", err.Error())
}

func TestResolveIfArity(t *testing.T) {
	_, err := resolveSrc(t, "(if #t 1)")
	require.Error(t, err)
	assert.Equal(t, "expected 3 argument(s), found 2", err.Error())
}

func TestResolveLetMalformedBinding(t *testing.T) {
	_, err := resolveSrc(t, "(let ((x 1 2)) x)")
	require.Error(t, err)
	assert.Equal(t, "expected 1 argument(s), found 2", err.Error())
}

func TestResolveUnknownOperation(t *testing.T) {
	_, err := resolveSrc(t, "(#t 1 2)")
	require.Error(t, err)
	assert.Equal(t, "Unknown operation", err.Error())
}

func TestResolveQuoteDoesNotRecurse(t *testing.T) {
	e, err := resolveSrc(t, "(quote (+ 1 2))")
	require.NoError(t, err)

	q, ok := e.(*ast.Quote)
	require.True(t, ok)
	assert.Equal(t, "(+ 1 2)", q.Datum.String())
}

func TestResolveBeginAnyArity(t *testing.T) {
	e, err := resolveSrc(t, "(begin)")
	require.NoError(t, err)
	b, ok := e.(*ast.Begin)
	require.True(t, ok)
	assert.Empty(t, b.Seq)
}
