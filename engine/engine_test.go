package engine

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/npillmayer/mstep/grammar"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func runToHalt(t *testing.T, input string) *Engine {
	e := New(input)
	if _, err := e.Run(context.Background()); errors.Is(err, ErrStepLimit) {
		t.Fatalf("input %q: engine did not halt", input)
	}
	return e
}

func TestEngineInit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mstep.engine")
	defer teardown()
	//
	e := New("[10,20]+[30,40]")
	snap := e.Inspect()
	if snap.Phase != Lexing || snap.Locked || snap.Finished {
		t.Errorf("unexpected initial phase %v", snap.Phase)
	}
	if len(snap.History) != 1 || snap.History[0].Action != "Init" || snap.History[0].Input != "LEX" {
		t.Errorf("expected a single Init entry, have %v", snap.History)
	}
	if !reflect.DeepEqual(snap.Stack, []grammar.Symbol{grammar.NtS, grammar.EndMarker}) {
		t.Errorf("expected stack S $, have %v", snap.Stack)
	}
	if snap.History[0].Stack != "$ S" {
		t.Errorf("expected stack snapshot \"$ S\", have %q", snap.History[0].Stack)
	}
	if snap.Shape.ExpectedRowLength != -1 || snap.Shape.Matrix1Cols != -1 {
		t.Errorf("expected row tracking to be unset, is %+v", snap.Shape)
	}
	if snap.Status != StatusLexing || snap.LastAction != "Init" {
		t.Errorf("unexpected status %q / %q", snap.Status, snap.LastAction)
	}
}

func TestEngineAcceptsValidInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mstep.engine")
	defer teardown()
	//
	for i, input := range []string{
		"[10,20]+[30,40]",
		"[10,20] - [30,40]",
		"[1,2,3]*[4,5,6]",
		"[[1,2],[3,4]]*[[5,6],[7,8]]",
		"[[1,2,3],[4,5,6]] + [[7,8,9]]",
		"[[1,2]]+[3,4]",
		"[1,2]+[[3,4],[5,6]]",
		"[1,2]+[3,4]5", // bare number after an operand
		"[1,2]7+[3,4]",
		" [ 10 , 20 ]\t+\n[ 30 , 40 ] ",
	} {
		e := runToHalt(t, input)
		if !e.Finished() || e.Locked() {
			t.Errorf("test %d: expected %q to be accepted, error is %v", i, input, e.Err())
			continue
		}
		snap := e.Inspect()
		if snap.Phase != Accepted || snap.Status != StatusAccepted {
			t.Errorf("test %d: unexpected phase %v", i, snap.Phase)
		}
		if len(snap.Stack) != 0 {
			t.Errorf("test %d: expected empty stack after acceptance, have %v", i, snap.Stack)
		}
		for _, h := range snap.History {
			if strings.HasPrefix(h.Action, "ERROR") {
				t.Errorf("test %d: unexpected error entry %v", i, h)
			}
		}
		if last := snap.History[len(snap.History)-1]; last.Action != "ACCEPTED" || last.Stack != "empty" {
			t.Errorf("test %d: unexpected final entry %+v", i, last)
		}
	}
}

func TestEngineShapeErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mstep.engine")
	defer teardown()
	//
	e := runToHalt(t, "[5]+[3]")
	var sizeErr *InvalidMatrixSizeError
	if !e.Locked() || !errors.As(e.Err(), &sizeErr) {
		t.Errorf("expected [5]+[3] to fail with invalid size, error is %v", e.Err())
	} else if sizeErr.Length != 1 {
		t.Errorf("expected row length 1, have %d", sizeErr.Length)
	}
	//
	e = runToHalt(t, "[10,20]+[1,2,3]")
	var dimErr *DimensionMismatchError
	if !errors.As(e.Err(), &dimErr) {
		t.Errorf("expected dimension mismatch, error is %v", e.Err())
	} else if dimErr.Expected != 2 || dimErr.Actual != 3 {
		t.Errorf("expected mismatch 2/3, have %d/%d", dimErr.Expected, dimErr.Actual)
	}
	//
	e = runToHalt(t, "[[1,2],[3,4,5]]")
	var rowErr *RowMismatchError
	if !errors.As(e.Err(), &rowErr) {
		t.Errorf("expected row mismatch, error is %v", e.Err())
	} else if rowErr.Expected != 2 || rowErr.Actual != 3 {
		t.Errorf("expected mismatch 2/3, have %d/%d", rowErr.Expected, rowErr.Actual)
	}
	//
	e = runToHalt(t, "[[1,2],[3]]")
	if !errors.As(e.Err(), &sizeErr) {
		t.Errorf("minimum size must be checked before row agreement, error is %v", e.Err())
	}
	//
	e = runToHalt(t, "[[1,2,3]]+[[4,5],[6,7]]")
	if !errors.As(e.Err(), &dimErr) {
		t.Errorf("left operand width must be checked before row agreement, error is %v", e.Err())
	}
}

func TestEngineSyntaxErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mstep.engine")
	defer teardown()
	//
	for i, test := range []struct {
		input    string
		expected grammar.Symbol
		found    grammar.TokenType
		unknown  bool
	}{
		{input: "[10,20]&[30,40]", expected: grammar.NtOP, found: grammar.Unknown, unknown: true},
		{input: "", expected: grammar.NtCore, found: grammar.EndOfInput},
		{input: "[1,2]", expected: grammar.NtOP, found: grammar.EndOfInput},
		{input: "[1,2]+[3,4]]", expected: grammar.EndMarker, found: grammar.CloseBracket},
		{input: "[1,,2]+[3,4]", expected: grammar.NtNumList, found: grammar.Comma},
		{input: "[]+[1,2]", expected: grammar.NtInside, found: grammar.CloseBracket},
		{input: "[[1,2],3]+[1,2]", expected: grammar.NtRow, found: grammar.Number},
		{input: "[1,2 3]+[4,5]", expected: grammar.SymClose, found: grammar.Number},
		{input: "[1,a]+[4,5]", expected: grammar.NtNumList, found: grammar.Unknown, unknown: true},
	} {
		e := runToHalt(t, test.input)
		var synErr *SyntaxError
		if !errors.As(e.Err(), &synErr) {
			t.Errorf("test %d: expected syntax error for %q, error is %v", i, test.input, e.Err())
			continue
		}
		if synErr.Expected != test.expected || synErr.Found.Type != test.found {
			t.Errorf("test %d: expected %v/%v, have %v/%v", i, test.expected, test.found,
				synErr.Expected, synErr.Found.Type)
		}
		if errors.Is(e.Err(), ErrUnknownCharacter) != test.unknown {
			t.Errorf("test %d: unknown character cause is %v", i, !test.unknown)
		}
	}
}

func TestEngineErrorIsRecorded(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mstep.engine")
	defer teardown()
	//
	e := runToHalt(t, "[10,20]&[30,40]")
	snap := e.Inspect()
	if snap.Phase != Failed || !snap.Locked || snap.Finished {
		t.Errorf("expected failed phase, is %v", snap.Phase)
	}
	if !strings.HasPrefix(snap.Status, "ERROR: ") || snap.LastAction != "STOPPED" {
		t.Errorf("unexpected status %q / %q", snap.Status, snap.LastAction)
	}
	last := snap.History[len(snap.History)-1]
	if last.Action != "ERROR: "+snap.Error || last.Input != "&" {
		t.Errorf("unexpected final entry %+v", last)
	}
	if snap.Stack[0] != grammar.NtOP {
		t.Errorf("expected failing symbol OP on top of stack, have %v", snap.Stack)
	}
}

func TestEngineIdempotentWhenHalted(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mstep.engine")
	defer teardown()
	//
	for _, input := range []string{"[10,20]+[30,40]", "[5]+[3]"} {
		e := runToHalt(t, input)
		before := e.Inspect()
		for i := 0; i < 5; i++ {
			e.Advance()
		}
		if after := e.Inspect(); !reflect.DeepEqual(before, after) {
			t.Errorf("%q: advance after halt changed the engine", input)
		}
	}
}

func TestEngineHistoryGrows(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mstep.engine")
	defer teardown()
	//
	e := New("[[1,2],[3,4]]+[[5,6],[7,8]]")
	prev := 1
	for !e.Done() {
		e.Advance()
		n := len(e.Inspect().History)
		if n < prev {
			t.Fatalf("history shrunk from %d to %d", prev, n)
		}
		prev = n
	}
	e.Submit("[1,2]+[3,4]")
	if n := len(e.Inspect().History); n != 1 {
		t.Errorf("expected history to be reset to 1 entry, have %d", n)
	}
}

func TestEngineLexingPhase(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mstep.engine")
	defer teardown()
	//
	e := New("[12]")
	var actions []string
	for e.Inspect().Phase == Lexing {
		e.Advance()
		actions = append(actions, e.Inspect().LastAction)
	}
	snap := e.Inspect()
	if len(snap.Tokens) != 4 {
		t.Fatalf("expected 4 tokens, have %v", snap.Tokens)
	}
	var tokenEntries []string
	for _, h := range snap.History[1:] {
		if h.Input != "LEX" {
			t.Errorf("expected input label LEX during lexing, have %q", h.Input)
		}
		tokenEntries = append(tokenEntries, h.Action)
	}
	expect := "Token: [|Token: 12|Token: ]|Token: EOF"
	if s := strings.Join(tokenEntries, "|"); s != expect {
		t.Errorf("expected history %q, have %q", expect, s)
	}
	seen := map[string]bool{}
	for _, a := range actions {
		seen[a] = true
	}
	for _, a := range []string{"Lexer: 1. NFA Running...", "Lexer: 2. DFA Verifying...",
		"Lexer: Generated 12", "Lexing Done. Starting PDA."} {
		if !seen[a] {
			t.Errorf("expected action %q during lexing", a)
		}
	}
	if snap.Status != StatusParsing || snap.Lexer.Mode != "Idle" {
		t.Errorf("unexpected state after lexing: %q, lexer %v", snap.Status, snap.Lexer.Mode)
	}
}

func TestEngineLexerView(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mstep.engine")
	defer teardown()
	//
	e := New("42")
	modes := map[string]bool{}
	for e.Inspect().Phase == Lexing {
		e.Advance()
		view := e.Inspect().Lexer
		modes[view.Mode] = true
		if view.Mode == "VerifyingNumber" && view.Partial != "42" {
			t.Errorf("expected verification of 42, have %q", view.Partial)
		}
	}
	if !modes["BuildingNumber"] || !modes["VerifyingNumber"] {
		t.Errorf("expected both recognizer passes to be visible, saw %v", modes)
	}
}

func TestEngineDerivationSteps(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mstep.engine")
	defer teardown()
	//
	e := New("[1,2]+[3,4]")
	for e.Inspect().Phase == Lexing {
		e.Advance()
	}
	for i, expect := range []struct {
		action string
		stack  string
		op     string
	}{
		{action: "PUSH 3 Rules", stack: "$ M OP M", op: "PUSH 3"},
		{action: "PUSH 2 Rules", stack: "$ M OP S_OPT Core", op: "PUSH 2"},
		{action: "PUSH 3 Rules", stack: "$ M OP S_OPT ] Inside [", op: "PUSH 3"},
		{action: "Match [", stack: "$ M OP S_OPT ] Inside", op: "POP & MATCH"},
		{action: "PUSH 1 Rules", stack: "$ M OP S_OPT ] NumList", op: "PUSH 1"},
		{action: "PUSH 2 Rules", stack: "$ M OP S_OPT ] NumTail num", op: "PUSH 2"},
		{action: "Match num", stack: "$ M OP S_OPT ] NumTail", op: "POP & MATCH"},
	} {
		before := len(e.Inspect().History)
		e.Advance()
		snap := e.Inspect()
		if len(snap.History) != before+1 {
			t.Fatalf("step %d: expected one history entry per parser step", i)
		}
		h := snap.History[len(snap.History)-1]
		if h.Action != expect.action || h.Stack != expect.stack || snap.LastOperation != expect.op {
			t.Errorf("step %d: expected %q/%q/%q, have %q/%q/%q", i,
				expect.action, expect.stack, expect.op, h.Action, h.Stack, snap.LastOperation)
		}
	}
	snap := e.Inspect()
	if snap.Cursor != 2 || snap.Shape.CurrentRowLength != 1 || !snap.Shape.InRow {
		t.Errorf("unexpected parser state: cursor=%d, shape=%+v", snap.Cursor, snap.Shape)
	}
}

func TestEngineShapeNotes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mstep.engine")
	defer teardown()
	//
	e := runToHalt(t, "[1,2]+[3,4]")
	var actions []string
	for _, h := range e.Inspect().History {
		actions = append(actions, h.Action)
	}
	all := strings.Join(actions, "|")
	for _, expect := range []string{
		"Set Dim: 2|Match ]",
		"Locked Matrix 1 Dim: 2|Match +",
		"Epsilon",
	} {
		if !strings.Contains(all, expect) {
			t.Errorf("expected %q in history", expect)
		}
	}
	if e.Inspect().Shape.Matrix1Cols != 2 {
		t.Errorf("expected locked left operand width of 2")
	}
}

func TestEngineRunLimits(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mstep.engine")
	defer teardown()
	//
	e := New("[10,20]+[30,40]", WithMaxSteps(5))
	n, err := e.Run(context.Background())
	if !errors.Is(err, ErrStepLimit) || n != 5 {
		t.Errorf("expected step limit after 5 steps, have %d, %v", n, err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := e.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected cancellation, have %v", err)
	}
	if n := e.StepN(3); n != 3 || e.Steps() != 8 {
		t.Errorf("expected 3 more steps, total 8, have %d/%d", n, e.Steps())
	}
}

func TestEngineSubmitResets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mstep.engine")
	defer teardown()
	//
	e := runToHalt(t, "[5]+[3]")
	run := e.Inspect().RunID
	e.Submit("[10,20]+[30,40]")
	snap := e.Inspect()
	if snap.Locked || snap.Error != "" || snap.Steps != 0 || snap.RunID == run {
		t.Errorf("submit did not reset the engine: %+v", snap)
	}
	if _, err := e.Run(context.Background()); err != nil || !e.Finished() {
		t.Errorf("expected second run to be accepted, error is %v", err)
	}
}
