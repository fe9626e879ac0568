package machine

import "github.com/kranzio/myscheme/lang/syntax"

// dotIdentifier is the dot-notation marker recognized when converting a
// quoted list to a (possibly improper) pair chain.
const dotIdentifier = "."

// QuoteToValue converts a raw syntax tree, preserved verbatim by a
// Quote expression, into the runtime value it denotes. It never
// re-resolves the syntax tree; quotation is a pure syntax-to-value
// conversion.
func QuoteToValue(s syntax.Syntax) Value {
	switch s := s.(type) {
	case syntax.FalseAtom:
		return Boolean(false)
	case syntax.TrueAtom:
		return Boolean(true)
	case syntax.Number:
		return Integer(s.N)
	case syntax.Identifier:
		return Symbol(s.S)
	case syntax.List:
		return quoteList(s.Children)
	default:
		return Null
	}
}

func quoteList(xs []syntax.Syntax) Value {
	if len(xs) == 0 {
		return Null
	}

	sz := len(xs)
	if sz >= 3 {
		if id, ok := xs[sz-2].(syntax.Identifier); ok && id.S == dotIdentifier {
			res := QuoteToValue(xs[sz-1])
			for i := sz - 3; i >= 0; i-- {
				res = &Pair{Car: QuoteToValue(xs[i]), Cdr: res}
			}
			return res
		}
	}

	var res Value = Null
	for i := sz - 1; i >= 0; i-- {
		res = &Pair{Car: QuoteToValue(xs[i]), Cdr: res}
	}
	return res
}
