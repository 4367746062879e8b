package grammar

import (
	"fmt"
	"unicode"
)

// TokenType is the category of a token. The zero value None flags the
// absence of a token.
type TokenType int8

// Token types of the matrix expression language.
const (
	None TokenType = iota
	OpenBracket
	CloseBracket
	Comma
	Plus
	Minus
	Multiply
	Number
	Unknown
	EndOfInput
)

var tokenTypeNames = [...]string{
	"None", "OpenBracket", "CloseBracket", "Comma", "Plus", "Minus",
	"Multiply", "Number", "Unknown", "EndOfInput",
}

func (tt TokenType) String() string {
	if tt < 0 || int(tt) >= len(tokenTypeNames) {
		return fmt.Sprintf("TokenType(%d)", int8(tt))
	}
	return tokenTypeNames[tt]
}

// MarshalYAML writes a token type by name.
func (tt TokenType) MarshalYAML() (interface{}, error) {
	return tt.String(), nil
}

// IsOperator is true for '+', '-' and '*'.
func (tt TokenType) IsOperator() bool {
	return tt == Plus || tt == Minus || tt == Multiply
}

// Token is a lexical unit produced by the lexer. Tokens are values and are
// not changed after they have been produced.
type Token struct {
	Type  TokenType `yaml:"type"`
	Value string    `yaml:"value"`
}

// EOFToken is the token emitted at the end of the input.
var EOFToken = Token{Type: EndOfInput, Value: "EOF"}

// IsNone is true for the empty token.
func (t Token) IsNone() bool {
	return t.Type == None
}

func (t Token) String() string {
	switch t.Type {
	case Number:
		return "NUM:" + t.Value
	case None:
		return "<none>"
	}
	return t.Value
}

// --- Character classification ----------------------------------------------

// Classify maps a single input character to the token type it starts.
// Whitespace is classified as None, as it never starts a token.
// Characters outside of the language's alphabet map to Unknown.
func Classify(r rune) TokenType {
	switch r {
	case '[':
		return OpenBracket
	case ']':
		return CloseBracket
	case ',':
		return Comma
	case '+':
		return Plus
	case '-':
		return Minus
	case '*':
		return Multiply
	}
	if IsDigit(r) {
		return Number
	}
	if IsSpace(r) {
		return None
	}
	return Unknown
}

// IsDigit is true for the decimal digits 0…9. Other Unicode digits are
// not part of numeric literals.
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsSpace is true for insignificant whitespace.
func IsSpace(r rune) bool {
	return unicode.IsSpace(r)
}

// IsPunctuation is true for characters forming a single-character token.
func IsPunctuation(r rune) bool {
	switch Classify(r) {
	case OpenBracket, CloseBracket, Comma, Plus, Minus, Multiply:
		return true
	}
	return false
}
