package bits

import (
	"strconv"
	"strings"
)

// Expression renders the packet tree as arithmetic notation. Literals
// render as decimal values; minimum and maximum as function calls; the
// remaining operators as infix expressions with their sub-expressions
// parenthesized. An infix operator with a single operand falls back to
// function-call form, e.g. "sum(9)".
func (p *Packet) Expression() (string, error) {
	if p.IsLiteral() {
		return strconv.FormatUint(p.Value, 10), nil
	}

	op, err := p.Op()
	if err != nil {
		return "", err
	}

	exprs := make([]string, len(p.Packets))
	for i, sub := range p.Packets {
		expr, err := sub.Expression()
		if err != nil {
			return "", err
		}
		if needsParens(sub) {
			expr = "(" + expr + ")"
		}
		exprs[i] = expr
	}

	if op.IsVariadicFunc() || len(exprs) == 1 {
		return op.FuncName() + "(" + strings.Join(exprs, ", ") + ")", nil
	}
	return strings.Join(exprs, " "+op.String()+" "), nil
}

// needsParens reports whether a sub-expression must be parenthesized when
// embedded in its parent: only infix operators are ambiguous.
func needsParens(p *Packet) bool {
	if p.IsLiteral() {
		return false
	}
	op, err := p.Op()
	if err != nil {
		return false
	}
	return !op.IsVariadicFunc()
}
