package scanner

import "fmt"

// Mode discriminates the lexer's state variants.
type Mode int8

// Lexer modes.
const (
	ModeIdle Mode = iota
	ModeBuildingNumber
	ModeVerifyingNumber
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "Idle"
	case ModeBuildingNumber:
		return "BuildingNumber"
	case ModeVerifyingNumber:
		return "VerifyingNumber"
	}
	return fmt.Sprintf("Mode(%d)", int8(m))
}

// State is the state of the lexer automaton. It is one of
// Idle, BuildingNumber or VerifyingNumber.
type State interface {
	Mode() Mode
	Microstate() string // human readable position within the mode
	isState()
}

// Idle is the state between tokens.
type Idle struct{}

// Mode returns ModeIdle.
func (Idle) Mode() Mode { return ModeIdle }

// Microstate is empty for Idle.
func (Idle) Microstate() string { return "" }

func (Idle) isState() {}

// --- NFA construction ------------------------------------------------------

// NFAState is a node of the Thompson NFA for digit sequences:
//
//	0 ─d→ 1 ─ε→ 2 ─ε→ F
//	            2 ─ε→ 3 ─d→ 4 ─ε→ 2
type NFAState int8

// NFA nodes. NFANone is used for an edge without source.
const (
	NFANone NFAState = iota
	NFA0
	NFA1
	NFA2
	NFA3
	NFA4
	NFAFinal
)

func (s NFAState) String() string {
	switch s {
	case NFANone:
		return "-"
	case NFAFinal:
		return "F"
	}
	return fmt.Sprintf("%d", int8(s)-1)
}

// Edge is the NFA transition most recently traversed.
type Edge struct {
	From, To NFAState
}

func (e Edge) String() string {
	return e.From.String() + "→" + e.To.String()
}

// Microsteps of the construction pass. After consumeFirst the cycle
// testMore → consumeNext → confirmNext repeats for every further digit.
const (
	consumeFirst = iota // read the first digit: 0 → 1
	confirmFirst        // ε-move 1 → 2
	testMore            // branch: 2 → 3 if a digit follows, else 2 → F
	consumeNext         // read the next digit: 3 → 4
	confirmNext         // ε-move 4 → 2
	finalize            // hand over to verification
)

var microstepNames = [...]string{
	"consume first digit", "confirm", "test for more digits",
	"consume next digit", "confirm", "finalize",
}

// BuildingNumber is the construction pass for a numeric literal.
// Microstep is the next micro-step to perform, Partial the digits collected
// so far.
type BuildingNumber struct {
	Microstep int
	Partial   string
	Edge      Edge
}

// Mode returns ModeBuildingNumber.
func (BuildingNumber) Mode() Mode { return ModeBuildingNumber }

// Microstate describes the NFA edge last traversed and the pending micro-step.
func (b BuildingNumber) Microstate() string {
	next := ""
	if b.Microstep >= 0 && b.Microstep < len(microstepNames) {
		next = microstepNames[b.Microstep]
	}
	return fmt.Sprintf("NFA %s, next: %s", b.Edge, next)
}

func (BuildingNumber) isState() {}

// --- DFA verification ------------------------------------------------------

// DFAState is a state of the minimal DFA for digit sequences:
//
//	Start ─d→ Accepting ─d→ Accepting
type DFAState int8

// DFA states.
const (
	DFAStart DFAState = iota
	DFAAccepting
)

func (s DFAState) String() string {
	if s == DFAAccepting {
		return "Accepting"
	}
	return "Start"
}

// dfaNext is the transition function of the digit DFA. It returns false for
// a rejected input rune.
func dfaNext(s DFAState, r rune, isDigit func(rune) bool) (DFAState, bool) {
	if !isDigit(r) {
		return s, false
	}
	return DFAAccepting, true
}

// VerifyingNumber is the verification pass for a numeric literal.
// Cursor indexes into Partial, the text collected during construction.
type VerifyingNumber struct {
	Cursor  int
	Partial string
	DFA     DFAState
}

// Mode returns ModeVerifyingNumber.
func (VerifyingNumber) Mode() Mode { return ModeVerifyingNumber }

// Microstate reports the DFA state and the cursor.
func (v VerifyingNumber) Microstate() string {
	return fmt.Sprintf("DFA %s @%d", v.DFA, v.Cursor)
}

func (VerifyingNumber) isState() {}

var _ State = Idle{}
var _ State = BuildingNumber{}
var _ State = VerifyingNumber{}
