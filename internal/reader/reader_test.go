package reader_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kranzio/myscheme/internal/reader"
	"github.com/kranzio/myscheme/lang/syntax"
)

func readAll(t *testing.T, src string) []syntax.Syntax {
	t.Helper()
	r := reader.New(src)
	var forms []syntax.Syntax
	for {
		s, err, eof := r.Next()
		require.NoError(t, err)
		if eof {
			return forms
		}
		forms = append(forms, s)
	}
}

func TestReadAtoms(t *testing.T) {
	forms := readAll(t, "42 #t #f x")
	require.Len(t, forms, 4)
	assert.Equal(t, syntax.Number{N: 42}, forms[0])
	assert.Equal(t, syntax.TrueAtom{}, forms[1])
	assert.Equal(t, syntax.FalseAtom{}, forms[2])
	assert.Equal(t, syntax.Identifier{S: "x"}, forms[3])
}

func TestReadNegativeNumber(t *testing.T) {
	forms := readAll(t, "-3")
	require.Len(t, forms, 1)
	assert.Equal(t, syntax.Number{N: -3}, forms[0])
}

func TestReadSignAloneIsIdentifier(t *testing.T) {
	forms := readAll(t, "+ -")
	require.Len(t, forms, 2)
	assert.Equal(t, syntax.Identifier{S: "+"}, forms[0])
	assert.Equal(t, syntax.Identifier{S: "-"}, forms[1])
}

func TestReadList(t *testing.T) {
	forms := readAll(t, "(+ 1 2)")
	require.Len(t, forms, 1)
	assert.Equal(t, syntax.List{Children: []syntax.Syntax{
		syntax.Identifier{S: "+"},
		syntax.Number{N: 1},
		syntax.Number{N: 2},
	}}, forms[0])
}

func TestReadDottedPair(t *testing.T) {
	forms := readAll(t, "(1 . 2)")
	require.Len(t, forms, 1)
	assert.Equal(t, syntax.List{Children: []syntax.Syntax{
		syntax.Number{N: 1},
		syntax.Identifier{S: "."},
		syntax.Number{N: 2},
	}}, forms[0])
}

func TestReadNestedList(t *testing.T) {
	forms := readAll(t, "(lambda (x) (* x x))")
	require.Len(t, forms, 1)
	l, ok := forms[0].(syntax.List)
	require.True(t, ok)
	require.Len(t, l.Children, 3)
}

func TestReadSkipsComments(t *testing.T) {
	forms := readAll(t, "; a comment\n42 ; trailing\n")
	require.Len(t, forms, 1)
	assert.Equal(t, syntax.Number{N: 42}, forms[0])
}

func TestReadMultipleTopLevelForms(t *testing.T) {
	forms := readAll(t, "(+ 1 2)\n(* 3 4)")
	require.Len(t, forms, 2)
}

func TestReadUnexpectedEOF(t *testing.T) {
	r := reader.New("(+ 1 2")
	_, err, eof := r.Next()
	assert.False(t, eof)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected EOF")
}

func TestReadUnexpectedCloseParen(t *testing.T) {
	r := reader.New(")")
	_, err, eof := r.Next()
	assert.False(t, eof)
	require.Error(t, err)
}

func TestReadEmptyInput(t *testing.T) {
	r := reader.New("   ")
	_, err, eof := r.Next()
	assert.NoError(t, err)
	assert.True(t, eof)
}
