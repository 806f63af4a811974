package entity

// State is the aggregated state of a Board.
type State string

const (
	// StateX and StateO are Token wins.
	StateX State = "x"
	StateO State = "o"
	// StateCats is a cat's game (draw). All spaces must be filled.
	StateCats State = "xo"
	// StateIncomplete means the game may still be played.
	StateIncomplete State = "?"
)

// Combine maps two States to their combined state. This is useful to sum
// possibly mixed States in a row, column or Board. The operation is
// commutative.
func (that State) Combine(other State) State {
	switch {
	case that == StateIncomplete || other == StateIncomplete:
		return StateIncomplete
	case that == other:
		return that
	default:
		return StateCats
	}
}

// Winner returns the Token that owns a single-token State.
func (that State) Winner() (Token, bool) {
	switch that {
	case StateX:
		return TokenX, true
	case StateO:
		return TokenO, true
	default:
		return "", false
	}
}

func (that State) IsFinished() bool {
	return that != StateIncomplete
}

func (that State) String() string {
	switch that {
	case StateX, StateO:
		return string(that) + " wins"
	case StateCats:
		return "cat's game"
	default:
		return "incomplete"
	}
}

func stateOf(cell Cell) State {
	return State(cell)
}
