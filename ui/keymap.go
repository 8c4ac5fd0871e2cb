package ui

import "tally/calc"

// SymbolForRune maps a typed character to a calculator symbol. This is the
// keyboard map of the desktop build: digits, '.', the four operators,
// '=' or Enter for equals, 'c'/'C' for clear and '%' for percent.
func SymbolForRune(r rune) (calc.Symbol, bool) {
	if r >= '0' && r <= '9' {
		return calc.Digit(byte(r - '0')), true
	}
	switch r {
	case '.':
		return calc.Dot, true
	case '+':
		return calc.Operator(calc.OpAdd), true
	case '-':
		return calc.Operator(calc.OpSub), true
	case '*':
		return calc.Operator(calc.OpMul), true
	case '/':
		return calc.Operator(calc.OpDiv), true
	case '=', '\r', '\n':
		return calc.Equals, true
	case 'c', 'C':
		return calc.Clear, true
	case '%':
		return calc.Percent, true
	}
	return calc.Symbol{}, false
}
