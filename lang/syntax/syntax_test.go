package syntax_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kranzio/myscheme/lang/syntax"
)

func TestString(t *testing.T) {
	cases := []struct {
		name string
		s    syntax.Syntax
		want string
	}{
		{"number", syntax.Number{N: 42}, "42"},
		{"identifier", syntax.Identifier{S: "x"}, "x"},
		{"true", syntax.TrueAtom{}, "#t"},
		{"false", syntax.FalseAtom{}, "#f"},
		{"empty list", syntax.List{}, "()"},
		{
			"application",
			syntax.List{Children: []syntax.Syntax{
				syntax.Identifier{S: "+"},
				syntax.Number{N: 1},
				syntax.Number{N: 2},
			}},
			"(+ 1 2)",
		},
		{
			"nested list",
			syntax.List{Children: []syntax.Syntax{
				syntax.Identifier{S: "lambda"},
				syntax.List{Children: []syntax.Syntax{syntax.Identifier{S: "x"}}},
				syntax.Identifier{S: "x"},
			}},
			"(lambda (x) x)",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.s.String())
		})
	}
}
