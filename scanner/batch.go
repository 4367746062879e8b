package scanner

import (
	"fmt"

	"github.com/npillmayer/mstep/grammar"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Automaton selects the kind of machine lexmachine compiles the token
// patterns into.
type Automaton int

// Automaton kinds.
const (
	DFA Automaton = iota
	NFA
)

func (a Automaton) String() string {
	if a == NFA {
		return "NFA"
	}
	return "DFA"
}

// ParseAutomaton maps "nfa" and "dfa" to an Automaton.
func ParseAutomaton(s string) (Automaton, error) {
	switch s {
	case "nfa", "NFA":
		return NFA, nil
	case "dfa", "DFA", "":
		return DFA, nil
	}
	return DFA, fmt.Errorf("unknown automaton kind %q", s)
}

// Batch is a reference scanner for the matrix expression language, built
// with lexmachine. It recognizes the same tokens as Lexer, but produces all
// of them in one go.
//
// lexmachine operates on bytes; characters outside of ASCII which are not
// part of the language produce one Unknown token per byte.
type Batch struct {
	automaton Automaton
	lexer     *lexmachine.Lexer
}

// patterns in order of priority
var batchPatterns = []struct {
	regex string
	tt    grammar.TokenType
}{
	{`\[`, grammar.OpenBracket},
	{`\]`, grammar.CloseBracket},
	{`,`, grammar.Comma},
	{`\+`, grammar.Plus},
	{`-`, grammar.Minus},
	{`\*`, grammar.Multiply},
	{`[0-9]+`, grammar.Number},
	{`( |\t|\n|\r)+`, grammar.None}, // skip
	{`.`, grammar.Unknown},
}

// NewBatch creates a batch scanner and compiles its patterns into an
// automaton of the requested kind.
func NewBatch(a Automaton) (*Batch, error) {
	lexer := lexmachine.NewLexer()
	for _, p := range batchPatterns {
		if p.tt == grammar.None {
			lexer.Add([]byte(p.regex), skip)
		} else {
			lexer.Add([]byte(p.regex), makeToken(p.tt))
		}
	}
	var err error
	if a == NFA {
		err = lexer.CompileNFA()
	} else {
		err = lexer.CompileDFA()
	}
	if err != nil {
		return nil, fmt.Errorf("compiling %s: %w", a, err)
	}
	tracer().Debugf("compiled batch scanner as %s", a)
	return &Batch{automaton: a, lexer: lexer}, nil
}

// Automaton returns the kind of machine the batch scanner runs on.
func (b *Batch) Automaton() Automaton {
	return b.automaton
}

// Tokenize splits text into tokens. The result ends with EndOfInput.
func (b *Batch) Tokenize(text string) ([]grammar.Token, error) {
	scan, err := b.lexer.Scanner([]byte(text))
	if err != nil {
		return nil, err
	}
	var tokens []grammar.Token
	for tok, err, eof := scan.Next(); !eof; tok, err, eof = scan.Next() {
		if ui, is := err.(*machines.UnconsumedInput); is {
			return tokens, fmt.Errorf("unconsumed input at %d:%d", ui.FailLine, ui.FailColumn)
		} else if err != nil {
			return tokens, err
		}
		lmtok := tok.(*lexmachine.Token)
		tokens = append(tokens, grammar.Token{
			Type:  grammar.TokenType(lmtok.Type),
			Value: string(lmtok.Lexeme),
		})
	}
	tokens = append(tokens, grammar.EOFToken)
	return tokens, nil
}

func makeToken(tt grammar.TokenType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(tt), string(m.Bytes), m), nil
	}
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}
