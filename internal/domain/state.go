package domain

// GameState is one immutable snapshot of a match. Transitions return a new
// value; two states are equal exactly when == holds.
type GameState struct {
	Board   Board
	Active  Mark
	Outcome Outcome
}

// Reset returns a new game with X to move.
func Reset() GameState {
	return GameState{Active: X}
}

// IsOver reports whether the outcome is terminal.
func (s GameState) IsOver() bool {
	return s.Outcome.Status != InProgress
}

// WinningLine returns the completed line, if the game was won.
func (s GameState) WinningLine() (Line, bool) {
	if s.Outcome.Status != Win {
		return Line{}, false
	}
	return s.Outcome.Line, true
}

// IsWinningCell reports whether index i lies on the winning line.
func (s GameState) IsWinningCell(i int) bool {
	ln, ok := s.WinningLine()
	return ok && ln.Contains(i)
}

// Moves returns the number of marked cells.
func (s GameState) Moves() int {
	n := 0
	for _, m := range s.Board {
		if m != Empty {
			n++
		}
	}
	return n
}

// ApplyMove places the active player's mark at index i (0..8). Moves after the
// game is over, on occupied cells, or outside the board are ignored and the
// state is returned unchanged.
func ApplyMove(s GameState, i int) GameState {
	if s.IsOver() || i < 0 || i >= len(s.Board) || s.Board[i] != Empty {
		return s
	}
	next := s
	next.Board[i] = s.Active
	next.Outcome = CalculateOutcome(next.Board)
	next.Active = s.Active.Opponent()
	return next
}
