// Package reader turns source text into the stream of syntax.Syntax
// trees the resolver consumes, one per top-level form. It is
// intentionally thin, a handful of token kinds (parens, a dot,
// booleans, numbers, identifiers) over a rune scanner, since the core
// of this repository is the resolver/evaluator pipeline, not the reader
// that feeds it.
package reader

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/kranzio/myscheme/lang/syntax"
)

// Reader reads a sequence of top-level syntax.Syntax forms from source
// text.
type Reader struct {
	src []rune
	pos int
}

// New returns a Reader over src.
func New(src string) *Reader {
	return &Reader{src: []rune(src)}
}

// Next reads and returns the next top-level form. It returns (nil, nil,
// true) once the input is exhausted (no more forms, not an error).
func (r *Reader) Next() (s syntax.Syntax, err error, eof bool) {
	r.skipAtmosphere()
	if r.atEOF() {
		return nil, nil, true
	}
	s, err = r.readForm()
	return s, err, false
}

func (r *Reader) atEOF() bool { return r.pos >= len(r.src) }

func (r *Reader) peek() rune {
	if r.atEOF() {
		return 0
	}
	return r.src[r.pos]
}

func (r *Reader) advance() rune {
	c := r.src[r.pos]
	r.pos++
	return c
}

func (r *Reader) skipAtmosphere() {
	for !r.atEOF() {
		c := r.peek()
		switch {
		case unicode.IsSpace(c):
			r.advance()
		case c == ';':
			for !r.atEOF() && r.peek() != '\n' {
				r.advance()
			}
		default:
			return
		}
	}
}

func (r *Reader) readForm() (syntax.Syntax, error) {
	r.skipAtmosphere()
	if r.atEOF() {
		return nil, fmt.Errorf("unexpected EOF")
	}

	switch c := r.peek(); {
	case c == '(':
		return r.readList()
	case c == ')':
		r.advance() // consume the stray ')' so the next read moves past it
		return nil, fmt.Errorf("unexpected )")
	default:
		return r.readAtom()
	}
}

func (r *Reader) readList() (syntax.Syntax, error) {
	r.advance() // consume '('
	var children []syntax.Syntax
	for {
		r.skipAtmosphere()
		if r.atEOF() {
			return nil, fmt.Errorf("unexpected EOF")
		}
		if r.peek() == ')' {
			r.advance()
			return syntax.List{Children: children}, nil
		}
		child, err := r.readForm()
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
}

func isDelimiter(c rune) bool {
	return c == 0 || unicode.IsSpace(c) || c == '(' || c == ')' || c == ';'
}

func (r *Reader) readAtom() (syntax.Syntax, error) {
	start := r.pos
	for !r.atEOF() && !isDelimiter(r.peek()) {
		r.advance()
	}
	lit := string(r.src[start:r.pos])

	switch lit {
	case "#t":
		return syntax.TrueAtom{}, nil
	case "#f":
		return syntax.FalseAtom{}, nil
	}

	if n, ok := parseInt(lit); ok {
		return syntax.Number{N: n}, nil
	}

	if lit == "" {
		return nil, fmt.Errorf("unexpected EOF")
	}
	return syntax.Identifier{S: lit}, nil
}

func parseInt(lit string) (int, bool) {
	if lit == "" || lit == "+" || lit == "-" || lit == "." {
		return 0, false
	}
	s := lit
	if s[0] == '+' || s[0] == '-' {
		s = s[1:]
	}
	if s == "" || strings.ContainsAny(s, ".") {
		return 0, false
	}
	n, err := strconv.Atoi(lit)
	if err != nil {
		return 0, false
	}
	return n, true
}
