package engine

import (
	"errors"
	"fmt"

	"github.com/npillmayer/mstep/grammar"
)

// ErrUnknownCharacter is the lexical cause of a syntax error at an Unknown
// token. The lexer does not fail on unknown characters; the error surfaces
// when the parser is unable to match the token.
var ErrUnknownCharacter = errors.New("unknown character")

// ErrStepLimit is returned by Run if the engine did not come to a halt
// within the configured number of steps.
var ErrStepLimit = errors.New("step limit reached")

// SyntaxError flags a token which does not fit the derivation: a terminal
// mismatch, a nonterminal without an applicable production, or input left
// over after the derivation is complete (Expected is the end marker).
type SyntaxError struct {
	Expected grammar.Symbol
	Found    grammar.Token
}

func (e *SyntaxError) Error() string {
	if e.Expected == grammar.EndMarker {
		return fmt.Sprintf("trailing characters found: %q", e.Found.Value)
	}
	return fmt.Sprintf("expected %s, found %q", e.Expected, e.Found.Value)
}

// Unwrap returns ErrUnknownCharacter for errors caused by an unknown
// character.
func (e *SyntaxError) Unwrap() error {
	if e.Found.Type == grammar.Unknown {
		return ErrUnknownCharacter
	}
	return nil
}

// InvalidMatrixSizeError flags a row with fewer than two numbers.
type InvalidMatrixSizeError struct {
	Length int
}

func (e *InvalidMatrixSizeError) Error() string {
	return fmt.Sprintf("invalid matrix: row of length %d, at least 2 required", e.Length)
}

// DimensionMismatchError flags a row of the right operand whose length
// differs from the row length of the left operand.
type DimensionMismatchError struct {
	Expected, Actual int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("dimension mismatch: matrix 1 has %d columns, matrix 2 has %d",
		e.Expected, e.Actual)
}

// RowMismatchError flags rows of different length within one operand.
type RowMismatchError struct {
	Expected, Actual int
}

func (e *RowMismatchError) Error() string {
	return fmt.Sprintf("row mismatch: expected %d, got %d", e.Expected, e.Actual)
}
