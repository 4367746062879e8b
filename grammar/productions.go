package grammar

import (
	"strings"
)

// Production is a grammar rule LHS → RHS. An empty RHS denotes an
// ε-production.
//
// Lookahead lists the token types selecting this production during a
// predictive derivation. A production with an empty lookahead list is
// the default for its LHS and is chosen if no other alternative applies.
type Production struct {
	LHS       Symbol
	RHS       []Symbol
	Lookahead []TokenType
}

// IsEpsilon is true for ε-productions.
func (p Production) IsEpsilon() bool {
	return len(p.RHS) == 0
}

func (p Production) String() string {
	var b strings.Builder
	b.WriteString(p.LHS.String())
	b.WriteString(" →")
	if p.IsEpsilon() {
		b.WriteString(" ε")
		return b.String()
	}
	for _, s := range p.RHS {
		b.WriteByte(' ')
		b.WriteString(s.String())
	}
	return b.String()
}

func (p Production) selects(tt TokenType) bool {
	for _, la := range p.Lookahead {
		if la == tt {
			return true
		}
	}
	return false
}

func (p *Production) clone() Production {
	return Production{
		LHS:       p.LHS,
		RHS:       append([]Symbol(nil), p.RHS...),
		Lookahead: append([]TokenType(nil), p.Lookahead...),
	}
}

func rule(lhs Symbol, rhs ...Symbol) *Production {
	return &Production{LHS: lhs, RHS: rhs}
}

func (p *Production) on(la ...TokenType) *Production {
	p.Lookahead = la
	return p
}

// Alternatives of one LHS are kept in sequence: first those with explicit
// lookahead, then the default (if any).
var productions = []*Production{
	rule(NtS, NtM, NtOP, NtM),
	rule(NtOP, SymPlus).on(Plus),
	rule(NtOP, SymMinus).on(Minus),
	rule(NtOP, SymTimes).on(Multiply),
	rule(NtM, NtCore, NtSOpt),
	rule(NtSOpt, SymNum).on(Number),
	rule(NtSOpt),
	rule(NtCore, SymOpen, NtInside, SymClose).on(OpenBracket),
	rule(NtInside, NtRowList).on(OpenBracket),
	rule(NtInside, NtNumList).on(Number),
	rule(NtRowList, NtRow, NtRowTail),
	rule(NtRow, SymOpen, NtNumList, SymClose).on(OpenBracket),
	rule(NtRowTail, SymComma, NtRowList).on(Comma),
	rule(NtRowTail),
	rule(NtNumList, SymNum, NtNumTail).on(Number),
	rule(NtNumTail, SymComma, NtNumList).on(Comma),
	rule(NtNumTail),
}

// Productions returns the rules of the grammar, in the order listed in the
// package documentation.
func Productions() []Production {
	prods := make([]Production, len(productions))
	for i, p := range productions {
		prods[i] = p.clone()
	}
	return prods
}

// StartSymbol is the symbol every derivation starts with.
func StartSymbol() Symbol {
	return NtS
}

// Predict selects the production to expand nonterminal A with, given the
// type of the lookahead token. If no production applies, Predict returns
// false. This is the case for syntax errors: an unexpected token where a
// nonterminal without a default alternative is to be expanded.
func Predict(A Symbol, la TokenType) (Production, bool) {
	var dflt *Production
	for _, p := range productions {
		if p.LHS != A {
			continue
		}
		if len(p.Lookahead) == 0 {
			if dflt == nil {
				dflt = p
			}
			continue
		}
		if p.selects(la) {
			tracer().Debugf("predict %v with %v: %v", A, la, p)
			return p.clone(), true
		}
	}
	if dflt != nil {
		tracer().Debugf("predict %v with %v: %v", A, la, dflt)
		return dflt.clone(), true
	}
	tracer().Debugf("no production for %v with lookahead %v", A, la)
	return Production{}, false
}
