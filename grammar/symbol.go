package grammar

import "fmt"

// Symbol is a grammar symbol: a terminal, a nonterminal or the end marker
// at the bottom of the parse stack.
type Symbol int8

// The end marker, terminals and nonterminals. Do not change the sequence,
// firstTerminal…lastNonterminal are used as markers.
const (
	EndMarker Symbol = iota // '$', bottom of stack

	SymOpen  // '['
	SymClose // ']'
	SymComma // ','
	SymPlus  // '+'
	SymMinus // '-'
	SymTimes // '*'
	SymNum   // 'num'

	NtS       // start symbol
	NtOP      // operator
	NtM       // matrix operand
	NtSOpt    // optional trailing number
	NtCore    // bracketed body
	NtInside  // rows or numbers
	NtRowList // list of rows
	NtRow     // a single row
	NtRowTail // continuation of a row list
	NtNumList // list of numbers
	NtNumTail // continuation of a number list
)

const (
	firstTerminal    = SymOpen
	lastTerminal     = SymNum
	firstNonterminal = NtS
	lastNonterminal  = NtNumTail
)

var symbolNames = [...]string{
	"$",
	"[", "]", ",", "+", "-", "*", "num",
	"S", "OP", "M", "S_OPT", "Core", "Inside", "RowList", "Row", "RowTail",
	"NumList", "NumTail",
}

func (s Symbol) String() string {
	if s < 0 || int(s) >= len(symbolNames) {
		return fmt.Sprintf("Symbol(%d)", int8(s))
	}
	return symbolNames[s]
}

// MarshalYAML writes a symbol by its grammar notation.
func (s Symbol) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// IsTerminal is true for symbols matched directly against input tokens.
func (s Symbol) IsTerminal() bool {
	return s >= firstTerminal && s <= lastTerminal
}

// IsNonterminal is true for symbols expanded by a production.
func (s Symbol) IsNonterminal() bool {
	return s >= firstNonterminal && s <= lastNonterminal
}

// terminal ↔ token type, indexed by Symbol
var terminalTokens = [...]TokenType{
	EndOfInput,
	OpenBracket, CloseBracket, Comma, Plus, Minus, Multiply, Number,
}

// TokenType returns the token type a terminal matches. For the end marker
// it is EndOfInput, for nonterminals None.
func (s Symbol) TokenType() TokenType {
	if s < 0 || int(s) >= len(terminalTokens) {
		return None
	}
	return terminalTokens[s]
}

// Matches is true if s is a terminal (or the end marker) matching a token of
// type tt.
func (s Symbol) Matches(tt TokenType) bool {
	return tt != None && s.TokenType() == tt
}

// Terminal returns the terminal symbol for a token type, if any. Unknown
// and None have no terminal; EndOfInput maps to the end marker.
func Terminal(tt TokenType) (Symbol, bool) {
	for i, t := range terminalTokens {
		if t == tt {
			return Symbol(i), true
		}
	}
	return EndMarker, false
}

// Terminals returns all terminal symbols.
func Terminals() []Symbol {
	var syms []Symbol
	for s := firstTerminal; s <= lastTerminal; s++ {
		syms = append(syms, s)
	}
	return syms
}

// Nonterminals returns all nonterminal symbols, the start symbol first.
func Nonterminals() []Symbol {
	var syms []Symbol
	for s := firstNonterminal; s <= lastNonterminal; s++ {
		syms = append(syms, s)
	}
	return syms
}
