package scanner

import (
	"strings"

	"github.com/npillmayer/mstep/grammar"
)

// TokenStream is an append-only sequence of tokens. It is filled during the
// lexing phase and read by index during parsing.
type TokenStream struct {
	tokens []grammar.Token
}

// Append adds a token at the end of the stream.
func (ts *TokenStream) Append(tok grammar.Token) {
	ts.tokens = append(ts.tokens, tok)
}

// Len is the number of tokens in the stream.
func (ts *TokenStream) Len() int {
	return len(ts.tokens)
}

// At returns the token at index i. Positions past the end of the stream
// yield EOFToken.
func (ts *TokenStream) At(i int) grammar.Token {
	if i < 0 || i >= len(ts.tokens) {
		return grammar.EOFToken
	}
	return ts.tokens[i]
}

// Tokens returns a copy of the tokens in the stream.
func (ts *TokenStream) Tokens() []grammar.Token {
	return append([]grammar.Token(nil), ts.tokens...)
}

// Text concatenates the values of all tokens except the end of input,
// thus reproducing the non-whitespace characters of the input.
func (ts *TokenStream) Text() string {
	return Concat(ts.tokens)
}

func (ts *TokenStream) String() string {
	var b strings.Builder
	for i, tok := range ts.tokens {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.String())
	}
	return b.String()
}

// Concat concatenates the values of tokens, skipping EndOfInput.
func Concat(tokens []grammar.Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		if tok.Type == grammar.EndOfInput {
			continue
		}
		b.WriteString(tok.Value)
	}
	return b.String()
}

// Tokenize runs a lexer over text until the end of input and collects all
// tokens, including the final EndOfInput.
func Tokenize(text string) []grammar.Token {
	var ts TokenStream
	l := NewLexer(text)
	for {
		if tok, ok := l.Take(); ok {
			ts.Append(tok)
			if tok.Type == grammar.EndOfInput {
				return ts.tokens
			}
			continue
		}
		l.Step()
	}
}
