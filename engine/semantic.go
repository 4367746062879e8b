package engine

import "fmt"

const unset = -1

// minRowLength is the smallest number of elements a row may have.
const minRowLength = 2

// Shape holds the row tracking counters of the shape validator.
type Shape struct {
	ExpectedRowLength int  `yaml:"expected_row_length"` // row width of the current operand, -1 until set
	CurrentRowLength  int  `yaml:"current_row_length"`  // numbers seen in the open row
	Matrix1Cols       int  `yaml:"matrix1_cols"`        // locked row width of the left operand, -1 until set
	InRow             bool `yaml:"in_row"`              // a row body is open
}

// shapeValidator checks matrix shapes while terminals are matched.
// It is never consulted for expansions.
type shapeValidator struct {
	Shape
}

func newShapeValidator() shapeValidator {
	return shapeValidator{Shape{
		ExpectedRowLength: unset,
		Matrix1Cols:       unset,
	}}
}

// openRow is called for a matched '['. A nested '[' re-opens the row,
// so for matrices the innermost bracket determines the row.
func (v *shapeValidator) openRow() {
	v.CurrentRowLength = 0
	v.InRow = true
}

// countNumber is called for a matched number.
func (v *shapeValidator) countNumber() {
	if v.InRow {
		v.CurrentRowLength++
	}
}

// closeRow is called for a matched ']'. Checks are applied in order:
// minimum size, agreement with the left operand, agreement with the
// operand's previous rows. If the row establishes the operand's row width,
// closeRow returns a note for the history log.
func (v *shapeValidator) closeRow() (note string, err error) {
	if !v.InRow {
		return "", nil
	}
	n := v.CurrentRowLength
	if n < minRowLength {
		return "", &InvalidMatrixSizeError{Length: n}
	}
	if v.Matrix1Cols != unset && n != v.Matrix1Cols {
		return "", &DimensionMismatchError{Expected: v.Matrix1Cols, Actual: n}
	}
	if v.ExpectedRowLength == unset {
		v.ExpectedRowLength = n
		note = fmt.Sprintf("Set Dim: %d", n)
	} else if n != v.ExpectedRowLength {
		return "", &RowMismatchError{Expected: v.ExpectedRowLength, Actual: n}
	}
	v.CurrentRowLength = 0
	v.InRow = false
	return note, nil
}

// operator is called for a matched '+', '-' or '*'. It locks the row width
// of the left operand, if known, and resets the row tracking for the right
// operand.
func (v *shapeValidator) operator() (note string) {
	if v.ExpectedRowLength != unset {
		v.Matrix1Cols = v.ExpectedRowLength
		note = fmt.Sprintf("Locked Matrix 1 Dim: %d", v.Matrix1Cols)
	}
	v.ExpectedRowLength = unset
	v.CurrentRowLength = 0
	v.InRow = false
	return note
}
