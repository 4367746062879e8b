package scanner

import (
	"github.com/npillmayer/mstep/grammar"
)

// Lexer is a stepwise automaton over an input text. Every call to Step
// performs one atomic micro-transition. Whenever a token has been
// recognized, it is held in a one-slot ready channel, which has to be
// drained with Take before the lexer moves on.
//
// A Lexer is not safe for concurrent use.
type Lexer struct {
	input    *runeStream
	state    State
	ready    grammar.Token
	finished bool
	steps    int
}

// NewLexer creates a lexer for text, starting in state Idle.
func NewLexer(text string) *Lexer {
	return &Lexer{
		input: newRuneStream(text),
		state: Idle{},
	}
}

// State returns the current state of the automaton.
func (l *Lexer) State() State {
	return l.state
}

// Finished is true after EndOfInput has been emitted.
func (l *Lexer) Finished() bool {
	return l.finished
}

// Steps is the number of micro-steps performed so far.
func (l *Lexer) Steps() int {
	return l.steps
}

// Ready returns the token waiting in the ready slot, if any.
func (l *Lexer) Ready() (grammar.Token, bool) {
	return l.ready, !l.ready.IsNone()
}

// Take drains the ready slot.
func (l *Lexer) Take() (grammar.Token, bool) {
	tok, ok := l.Ready()
	l.ready = grammar.Token{}
	return tok, ok
}

// Step performs one micro-transition. It returns true if more micro-steps
// are needed before a token becomes available. With a token waiting in the
// ready slot or after the end of input, Step does nothing and returns false.
func (l *Lexer) Step() bool {
	if !l.ready.IsNone() || l.finished {
		return false
	}
	l.steps++
	switch s := l.state.(type) {
	case Idle:
		return l.scan()
	case BuildingNumber:
		return l.build(s)
	case VerifyingNumber:
		return l.verify(s)
	}
	panic("lexer in unknown state")
}

// scan starts a new token.
func (l *Lexer) scan() bool {
	l.input.skipSpace(grammar.IsSpace)
	r, err := l.input.lookahead()
	if err != nil {
		l.emit(grammar.EOFToken)
		l.finished = true
		return false
	}
	if grammar.IsDigit(r) {
		tracer().Debugf("start of numeric literal at %d", l.input.Offset())
		l.state = BuildingNumber{
			Microstep: consumeFirst,
			Edge:      Edge{From: NFANone, To: NFA0},
		}
		return true
	}
	l.input.match(r)
	tt := grammar.Classify(r)
	if tt != grammar.Unknown {
		tracer().Debugf("single-character token %v", tt)
	} else {
		tracer().Infof("unknown character %#U", r)
	}
	l.emit(grammar.Token{Type: tt, Value: string(r)})
	return false
}

// build performs one micro-step of the NFA construction pass.
func (l *Lexer) build(b BuildingNumber) bool {
	switch b.Microstep {
	case consumeFirst:
		b.Partial += l.consumeDigit()
		b.Edge = Edge{NFA0, NFA1}
		b.Microstep = confirmFirst
	case confirmFirst:
		b.Edge = Edge{NFA1, NFA2}
		b.Microstep = testMore
	case testMore:
		if r, err := l.input.lookahead(); err == nil && grammar.IsDigit(r) {
			b.Edge = Edge{NFA2, NFA3}
			b.Microstep = consumeNext
		} else {
			b.Edge = Edge{NFA2, NFAFinal}
			b.Microstep = finalize
		}
	case consumeNext:
		b.Partial += l.consumeDigit()
		b.Edge = Edge{NFA3, NFA4}
		b.Microstep = confirmNext
	case confirmNext:
		b.Edge = Edge{NFA4, NFA2}
		b.Microstep = testMore
	case finalize:
		tracer().Debugf("NFA accepted %q, switching to DFA", b.Partial)
		l.state = VerifyingNumber{Partial: b.Partial, DFA: DFAStart}
		return true
	default:
		panic("illegal NFA micro-step")
	}
	tracer().Debugf("NFA %v, partial = %q", b.Edge, b.Partial)
	l.state = b
	return true
}

func (l *Lexer) consumeDigit() string {
	r, err := l.input.lookahead()
	if err != nil || !grammar.IsDigit(r) {
		panic("NFA expected a digit")
	}
	l.input.match(r)
	return string(r)
}

// verify performs one micro-step of the DFA verification pass. The DFA reads
// the collected text independently of the construction pass.
func (l *Lexer) verify(v VerifyingNumber) bool {
	if v.Cursor < len(v.Partial) {
		next, ok := dfaNext(v.DFA, rune(v.Partial[v.Cursor]), grammar.IsDigit)
		if !ok {
			tracer().Errorf("DFA rejected %q at %d", v.Partial, v.Cursor)
			l.state = Idle{}
			l.emit(grammar.Token{Type: grammar.Unknown, Value: v.Partial})
			return false
		}
		v.DFA = next
		v.Cursor++
		tracer().Debugf("DFA %v @%d", v.DFA, v.Cursor)
		l.state = v
		return true
	}
	if v.DFA != DFAAccepting {
		panic("DFA ended in non-accepting state")
	}
	l.state = Idle{}
	l.emit(grammar.Token{Type: grammar.Number, Value: v.Partial})
	return false
}

func (l *Lexer) emit(tok grammar.Token) {
	tracer().Debugf("token ready: %v", tok)
	l.ready = tok
}
