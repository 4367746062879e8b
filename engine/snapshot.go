package engine

import (
	"fmt"

	"github.com/npillmayer/mstep/grammar"
	"github.com/npillmayer/mstep/scanner"
)

// Phase is the coarse state of a run.
type Phase int8

// Phases of a run.
const (
	Lexing Phase = iota
	Parsing
	Accepted
	Failed
)

func (p Phase) String() string {
	switch p {
	case Lexing:
		return "lexing"
	case Parsing:
		return "parsing"
	case Accepted:
		return "accepted"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("Phase(%d)", int8(p))
}

// MarshalYAML writes a phase by name.
func (p Phase) MarshalYAML() (interface{}, error) {
	return p.String(), nil
}

// LexerView is the lexer part of a snapshot.
type LexerView struct {
	Mode       string        `yaml:"mode"`
	Microstate string        `yaml:"microstate,omitempty"`
	Partial    string        `yaml:"partial,omitempty"`
	Ready      grammar.Token `yaml:"ready,omitempty"`
}

// Snapshot is a read-only view of an engine, taken by Inspect.
type Snapshot struct {
	RunID         string           `yaml:"run"`
	Input         string           `yaml:"input"`
	Phase         Phase            `yaml:"phase"`
	Steps         int              `yaml:"steps"`
	Status        string           `yaml:"status"`
	Lexer         LexerView        `yaml:"lexer"`
	Tokens        []grammar.Token  `yaml:"tokens"`
	Cursor        int              `yaml:"cursor"`
	Stack         []grammar.Symbol `yaml:"stack"` // top first
	LastAction    string           `yaml:"last_action"`
	LastOperation string           `yaml:"last_operation,omitempty"`
	JustPushed    []grammar.Symbol `yaml:"just_pushed,omitempty"`
	Shape         Shape            `yaml:"shape"`
	Locked        bool             `yaml:"locked"`
	Finished      bool             `yaml:"finished"`
	Error         string           `yaml:"error,omitempty"`
	History       []HistoryEntry   `yaml:"history"`
}

// Inspect takes a snapshot of the engine. The snapshot shares no memory
// with the engine.
func (e *Engine) Inspect() Snapshot {
	snap := Snapshot{
		RunID:         e.runID,
		Input:         e.input,
		Phase:         e.phase(),
		Steps:         e.steps,
		Status:        e.status,
		Lexer:         e.lexerView(),
		Tokens:        e.tokens.Tokens(),
		Cursor:        e.cursor,
		Stack:         e.stack.Symbols(),
		LastAction:    e.lastAction,
		LastOperation: e.lastOperation,
		JustPushed:    append([]grammar.Symbol(nil), e.justPushed...),
		Shape:         e.shape.Shape,
		Locked:        e.locked,
		Finished:      e.finished,
		History:       e.history.Entries(),
	}
	if e.err != nil {
		snap.Error = e.err.Error()
	}
	return snap
}

func (e *Engine) phase() Phase {
	switch {
	case e.locked:
		return Failed
	case e.finished:
		return Accepted
	case e.lexing:
		return Lexing
	}
	return Parsing
}

func (e *Engine) lexerView() LexerView {
	if e.lexer == nil {
		return LexerView{Mode: scanner.ModeIdle.String()}
	}
	state := e.lexer.State()
	view := LexerView{
		Mode:       state.Mode().String(),
		Microstate: state.Microstate(),
	}
	switch s := state.(type) {
	case scanner.BuildingNumber:
		view.Partial = s.Partial
	case scanner.VerifyingNumber:
		view.Partial = s.Partial
	}
	view.Ready, _ = e.lexer.Ready()
	return view
}
