package engine

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/npillmayer/mstep/grammar"
	"github.com/npillmayer/mstep/scanner"
)

// Status messages.
const (
	StatusLexing   = "Phase 1: Lexing"
	StatusParsing  = "Phase 2: Parsing (PDA)"
	StatusAccepted = "ACCEPTED"
)

// DefaultMaxSteps is the default step limit for Run.
const DefaultMaxSteps = 10000

// Engine analyzes one input expression at a time. Submit starts a new run,
// Advance performs one step, and Inspect takes a snapshot for display.
type Engine struct {
	runID    string
	input    string
	lexer    *scanner.Lexer // nil after the lexing phase
	tokens   scanner.TokenStream
	lexing   bool
	stack    *symbolStack
	cursor   int // index of the lookahead in tokens
	shape    shapeValidator
	locked   bool
	finished bool
	err      error
	steps    int
	maxSteps int
	// display state
	status        string
	lastAction    string
	lastOperation string
	justPushed    []grammar.Symbol
	history       HistoryLog
}

// Option configures an Engine.
type Option func(*Engine)

// WithMaxSteps sets the step limit used by Run.
func WithMaxSteps(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxSteps = n
		}
	}
}

// New creates an engine and submits text.
func New(text string, opts ...Option) *Engine {
	e := &Engine{maxSteps: DefaultMaxSteps}
	for _, opt := range opts {
		opt(e)
	}
	e.Submit(text)
	return e
}

// Submit discards all state and starts a new run for text. The stack is
// seeded with the start symbol above the end marker, and the history holds
// a single initial entry.
func (e *Engine) Submit(text string) {
	e.runID = uuid.New().String()
	e.input = text
	e.lexer = scanner.NewLexer(text)
	e.tokens = scanner.TokenStream{}
	e.lexing = true
	e.stack = newSymbolStack()
	e.stack.Push(grammar.EndMarker)
	e.stack.Push(grammar.StartSymbol())
	e.cursor = 0
	e.shape = newShapeValidator()
	e.locked, e.finished = false, false
	e.err = nil
	e.steps = 0
	e.status = StatusLexing
	e.lastAction = "Init"
	e.lastOperation = ""
	e.justPushed = nil
	e.history = HistoryLog{}
	e.log("Init")
	tracer().Infof("run %s: input %q", e.runID, text)
}

// Locked is true after an error has stopped the run.
func (e *Engine) Locked() bool {
	return e.locked
}

// Finished is true after the input has been accepted.
func (e *Engine) Finished() bool {
	return e.finished
}

// Done is true if the run is either locked or finished.
func (e *Engine) Done() bool {
	return e.locked || e.finished
}

// Err returns the error which stopped the run, if any.
func (e *Engine) Err() error {
	return e.err
}

// Steps is the number of steps performed in the current run.
func (e *Engine) Steps() int {
	return e.steps
}

// Advance performs one step: it moves a ready token from the lexer to the
// token stream, advances the lexer by one micro-step, or performs one parser
// action. After the run has been locked or finished, Advance does nothing.
func (e *Engine) Advance() {
	if e.Done() {
		return
	}
	e.justPushed = nil
	e.lastOperation = ""
	e.steps++
	if e.lexing {
		e.advanceLexer()
		return
	}
	e.advanceParser()
}

// --- Lexing phase ----------------------------------------------------------

func (e *Engine) advanceLexer() {
	if tok, ok := e.lexer.Take(); ok {
		e.tokens.Append(tok)
		e.lastAction = "Lexer: Generated " + tok.Value
		e.log("Token: " + tok.Value)
		if tok.Type == grammar.EndOfInput {
			tracer().Infof("lexing done after %d micro-steps, %d tokens",
				e.lexer.Steps(), e.tokens.Len())
			e.lexing = false
			e.lexer = nil
			e.status = StatusParsing
			e.lastAction = "Lexing Done. Starting PDA."
		}
		return
	}
	if busy := e.lexer.Step(); busy {
		switch e.lexer.State().Mode() {
		case scanner.ModeBuildingNumber:
			e.lastAction = "Lexer: 1. NFA Running..."
		case scanner.ModeVerifyingNumber:
			e.lastAction = "Lexer: 2. DFA Verifying..."
		}
	}
}

// --- Parsing phase ---------------------------------------------------------

func (e *Engine) advanceParser() {
	top, ok := e.stack.Peek()
	if !ok {
		return
	}
	la := e.tokens.At(e.cursor)
	switch {
	case top == grammar.EndMarker:
		e.accept(la)
	case top.IsTerminal():
		e.match(top, la)
	default:
		e.expand(top, la)
	}
}

func (e *Engine) accept(la grammar.Token) {
	if la.Type != grammar.EndOfInput {
		e.fail(syntaxError(grammar.EndMarker, la))
		return
	}
	e.stack.Pop()
	e.finished = true
	e.status = StatusAccepted
	e.lastAction = "Done"
	e.log("ACCEPTED")
	tracer().Infof("run %s: input accepted after %d steps", e.runID, e.steps)
}

func (e *Engine) match(top grammar.Symbol, la grammar.Token) {
	if !top.Matches(la.Type) {
		e.fail(syntaxError(top, la))
		return
	}
	if err := e.validate(top); err != nil {
		e.fail(err)
		return
	}
	e.lastAction = "PDA: Matched " + top.String()
	e.lastOperation = "POP & MATCH"
	e.stack.Pop()
	e.cursor++
	e.log("Match " + top.String())
}

// validate applies the shape rules for a matched terminal.
func (e *Engine) validate(top grammar.Symbol) error {
	var note string
	switch top {
	case grammar.SymNum:
		e.shape.countNumber()
	case grammar.SymOpen:
		e.shape.openRow()
	case grammar.SymClose:
		var err error
		if note, err = e.shape.closeRow(); err != nil {
			return err
		}
	case grammar.SymPlus, grammar.SymMinus, grammar.SymTimes:
		note = e.shape.operator()
	}
	if note != "" {
		tracer().Debugf("%s", note)
		e.log(note)
	}
	return nil
}

func (e *Engine) expand(top grammar.Symbol, la grammar.Token) {
	p, ok := grammar.Predict(top, la.Type)
	if !ok {
		e.fail(syntaxError(top, la))
		return
	}
	e.stack.Pop()
	if p.IsEpsilon() {
		e.lastAction = "PDA: Epsilon " + top.String()
		e.log("Epsilon")
		return
	}
	e.stack.PushRHS(p.RHS)
	e.justPushed = p.RHS
	e.lastAction = "PDA: Expanded " + p.String()
	e.lastOperation = fmt.Sprintf("PUSH %d", len(p.RHS))
	e.log(fmt.Sprintf("PUSH %d Rules", len(p.RHS)))
}

func syntaxError(expected grammar.Symbol, found grammar.Token) error {
	return &SyntaxError{Expected: expected, Found: found}
}

// fail locks the run. The offending symbol stays on the stack.
func (e *Engine) fail(err error) {
	tracer().Errorf("run %s: %v", e.runID, err)
	e.err = err
	e.locked = true
	e.status = "ERROR: " + err.Error()
	e.lastAction = "STOPPED"
	e.log("ERROR: " + err.Error())
}

// log appends a history entry for the current state.
func (e *Engine) log(action string) {
	input := "LEX"
	if !e.lexing {
		input = e.tokens.At(e.cursor).Value
	}
	e.history.Append(HistoryEntry{
		Input:  input,
		Action: action,
		Stack:  e.stack.String(),
	})
}
