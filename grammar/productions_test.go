package grammar

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSymbolClasses(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mstep.grammar")
	defer teardown()
	//
	if len(Terminals()) != 7 {
		t.Errorf("expected 7 terminals, have %d", len(Terminals()))
	}
	if len(Nonterminals()) != 11 {
		t.Errorf("expected 11 nonterminals, have %d", len(Nonterminals()))
	}
	if EndMarker.IsTerminal() || EndMarker.IsNonterminal() {
		t.Errorf("end marker must be neither terminal nor nonterminal")
	}
	for _, s := range Terminals() {
		if !s.IsTerminal() || s.IsNonterminal() {
			t.Errorf("symbol %v misclassified", s)
		}
		tt := s.TokenType()
		if !s.Matches(tt) {
			t.Errorf("terminal %v does not match its own token type %v", s, tt)
		}
		if back, ok := Terminal(tt); !ok || back != s {
			t.Errorf("terminal for %v expected to be %v, is %v", tt, s, back)
		}
	}
	if _, ok := Terminal(Unknown); ok {
		t.Errorf("did not expect a terminal for unknown tokens")
	}
	if NtSOpt.String() != "S_OPT" || SymNum.String() != "num" || EndMarker.String() != "$" {
		t.Errorf("unexpected symbol names")
	}
}

func TestProductionsAreLL1(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mstep.grammar")
	defer teardown()
	//
	for _, A := range Nonterminals() {
		seen := make(map[TokenType]Production)
		defaults := 0
		for _, p := range Productions() {
			if p.LHS != A {
				continue
			}
			if len(p.Lookahead) == 0 {
				defaults++
			}
			for _, la := range p.Lookahead {
				if q, ok := seen[la]; ok {
					t.Errorf("conflict for %v on %v: %v / %v", A, la, q, p)
				}
				seen[la] = p
			}
		}
		if defaults > 1 {
			t.Errorf("nonterminal %v has %d default productions", A, defaults)
		}
	}
}

func TestPredict(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mstep.grammar")
	defer teardown()
	//
	for i, test := range []struct {
		A    Symbol
		la   TokenType
		ok   bool
		prod string
	}{
		{A: NtS, la: OpenBracket, ok: true, prod: "S → M OP M"},
		{A: NtS, la: EndOfInput, ok: true, prod: "S → M OP M"},
		{A: NtOP, la: Plus, ok: true, prod: "OP → +"},
		{A: NtOP, la: Multiply, ok: true, prod: "OP → *"},
		{A: NtOP, la: Unknown, ok: false},
		{A: NtSOpt, la: Number, ok: true, prod: "S_OPT → num"},
		{A: NtSOpt, la: Plus, ok: true, prod: "S_OPT → ε"},
		{A: NtCore, la: OpenBracket, ok: true, prod: "Core → [ Inside ]"},
		{A: NtCore, la: Number, ok: false},
		{A: NtInside, la: OpenBracket, ok: true, prod: "Inside → RowList"},
		{A: NtInside, la: Number, ok: true, prod: "Inside → NumList"},
		{A: NtInside, la: CloseBracket, ok: false},
		{A: NtRow, la: Number, ok: false},
		{A: NtRowTail, la: Comma, ok: true, prod: "RowTail → , RowList"},
		{A: NtRowTail, la: CloseBracket, ok: true, prod: "RowTail → ε"},
		{A: NtNumList, la: Comma, ok: false},
		{A: NtNumTail, la: Comma, ok: true, prod: "NumTail → , NumList"},
		{A: NtNumTail, la: EndOfInput, ok: true, prod: "NumTail → ε"},
	} {
		p, ok := Predict(test.A, test.la)
		if ok != test.ok {
			t.Errorf("test %d failed: prediction for %v/%v: ok=%v", i, test.A, test.la, ok)
			continue
		}
		if ok && p.String() != test.prod {
			t.Errorf("test %d failed: expected %q, have %q", i, test.prod, p.String())
		}
	}
}

func TestProductionsAreCopies(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mstep.grammar")
	defer teardown()
	//
	p, _ := Predict(NtS, OpenBracket)
	p.RHS[0] = SymNum
	if q, _ := Predict(NtS, OpenBracket); q.RHS[0] != NtM {
		t.Errorf("grammar has been modified through a predicted production")
	}
}
