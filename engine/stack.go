package engine

import (
	"strings"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/mstep/grammar"
)

// symbolStack is the parse stack of grammar symbols.
type symbolStack struct {
	stack *arraystack.Stack
}

func newSymbolStack() *symbolStack {
	return &symbolStack{stack: arraystack.New()}
}

func (s *symbolStack) Push(sym grammar.Symbol) {
	s.stack.Push(sym)
}

// PushRHS pushes the right hand side of a production such that its leftmost
// symbol ends up on top.
func (s *symbolStack) PushRHS(rhs []grammar.Symbol) {
	for i := len(rhs) - 1; i >= 0; i-- {
		s.stack.Push(rhs[i])
	}
}

func (s *symbolStack) Pop() (grammar.Symbol, bool) {
	v, ok := s.stack.Pop()
	if !ok {
		return grammar.EndMarker, false
	}
	return v.(grammar.Symbol), true
}

func (s *symbolStack) Peek() (grammar.Symbol, bool) {
	v, ok := s.stack.Peek()
	if !ok {
		return grammar.EndMarker, false
	}
	return v.(grammar.Symbol), true
}

func (s *symbolStack) Size() int {
	return s.stack.Size()
}

func (s *symbolStack) Empty() bool {
	return s.stack.Empty()
}

// Symbols returns the stack contents, top first.
func (s *symbolStack) Symbols() []grammar.Symbol {
	values := s.stack.Values()
	syms := make([]grammar.Symbol, len(values))
	for i, v := range values {
		syms[i] = v.(grammar.Symbol)
	}
	return syms
}

// String lists the stack bottom to top, e.g. "$ S_OPT ] Inside".
func (s *symbolStack) String() string {
	if s.Empty() {
		return "empty"
	}
	syms := s.Symbols()
	names := make([]string, len(syms))
	for i, sym := range syms {
		names[len(syms)-1-i] = sym.String()
	}
	return strings.Join(names, " ")
}
