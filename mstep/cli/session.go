package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/mstep/engine"
	"github.com/npillmayer/mstep/grammar"
	"github.com/npillmayer/mstep/scanner"
)

// ErrNoExpression is returned by session commands which need a loaded
// expression.
var ErrNoExpression = errors.New("no expression loaded, use 'load <expr>'")

const sessionHelp = `
mstep will interpret the following statements:

  load <expr>              : start a new run for an expression
  step [n]                 : advance the run by one or n steps
  run                      : advance the run until it stops
  show                     : display the state of the run
  trace                    : display the execution trace
  tokens                   : display the token stream
  stack                    : display the parse stack
  grammar                  : list the productions of the grammar
  scan [nfa|dfa] <expr>    : tokenize an expression in one go
  export [file]            : write the state of the run as YAML

`

// session holds the engine of an interactive session. Eval returns domain
// values (snapshots, traces, token lists) which are rendered by Formatter.
type session struct {
	ctx      context.Context
	engine   *engine.Engine
	maxSteps int
}

func newSession(ctx context.Context, maxSteps int) *session {
	if ctx == nil {
		ctx = context.Background()
	}
	return &session{ctx: ctx, maxSteps: maxSteps}
}

func sessionCompletions() []readline.PrefixCompleterInterface {
	return []readline.PrefixCompleterInterface{
		readline.PcItem("load"),
		readline.PcItem("step"),
		readline.PcItem("run"),
		readline.PcItem("show"),
		readline.PcItem("trace"),
		readline.PcItem("tokens"),
		readline.PcItem("stack"),
		readline.PcItem("grammar"),
		readline.PcItem("scan",
			readline.PcItem("nfa"),
			readline.PcItem("dfa"),
		),
		readline.PcItem("export"),
	}
}

// Eval interprets a single statement.
func (s *session) Eval(line string) (interface{}, error) {
	line = strings.TrimSpace(line)
	cmd, rest := line, ""
	if i := strings.IndexAny(line, " \t"); i >= 0 {
		cmd, rest = line[:i], strings.TrimSpace(line[i+1:])
	}
	switch cmd {
	case "":
		return nil, nil
	case "load":
		return s.load(rest)
	case "scan":
		return s.scan(rest)
	case "grammar":
		return grammar.Productions(), nil
	}
	if s.engine == nil {
		return nil, ErrNoExpression
	}
	switch cmd {
	case "step":
		return s.step(rest)
	case "run":
		return s.run()
	case "show":
		return s.engine.Inspect(), nil
	case "trace":
		return s.engine.Inspect().History, nil
	case "tokens":
		snap := s.engine.Inspect()
		return tokenList{Tokens: snap.Tokens, Cursor: snap.Cursor}, nil
	case "stack":
		return stackView(s.engine.Inspect().Stack), nil
	case "export":
		return s.export(rest)
	}
	return nil, fmt.Errorf("unknown command %q", cmd)
}

func (s *session) load(expr string) (interface{}, error) {
	if s.engine == nil {
		s.engine = engine.New(expr, engine.WithMaxSteps(s.maxSteps))
	} else {
		s.engine.Submit(expr)
	}
	return s.engine.Inspect(), nil
}

func (s *session) step(arg string) (interface{}, error) {
	n := 1
	if arg != "" {
		var err error
		if n, err = strconv.Atoi(arg); err != nil || n < 1 {
			return nil, fmt.Errorf("step count must be a positive number, is %q", arg)
		}
	}
	if s.engine.Done() {
		return "run has stopped, use 'load <expr>' to start over", nil
	}
	s.engine.StepN(n)
	return s.engine.Inspect(), nil
}

// run advances to the end of the run. An error stopping the run is part of
// the snapshot; only a cancellation or the step limit count as failure of
// the command.
func (s *session) run() (interface{}, error) {
	_, err := s.engine.Run(s.ctx)
	if err != nil && (errors.Is(err, engine.ErrStepLimit) || s.ctx.Err() != nil) {
		return nil, err
	}
	return s.engine.Inspect(), nil
}

func (s *session) scan(args string) (interface{}, error) {
	automaton := scanner.DFA
	fields := strings.Fields(args)
	if len(fields) > 0 {
		if a, err := scanner.ParseAutomaton(fields[0]); err == nil {
			automaton = a
			args = strings.TrimSpace(strings.TrimPrefix(args, fields[0]))
		}
	}
	batch, err := scanner.NewBatch(automaton)
	if err != nil {
		return nil, err
	}
	tokens, err := batch.Tokenize(args)
	if err != nil {
		return nil, err
	}
	return tokenList{Tokens: tokens, Cursor: -1}, nil
}

func (s *session) export(filename string) (interface{}, error) {
	snap := s.engine.Inspect()
	if filename == "" {
		return snap, nil
	}
	f, err := os.Create(filename)
	if err != nil {
		return nil, err
	}
	if err = ExportYAML(snap, f); err != nil {
		f.Close()
		return nil, err
	}
	if err = f.Close(); err != nil {
		return nil, err
	}
	return fmt.Sprintf("run %s written to %s", snap.RunID, filename), nil
}
