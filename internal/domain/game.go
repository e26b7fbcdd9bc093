package domain

// Mark represents the content of a board cell.
type Mark uint8

const (
	Empty Mark = iota
	X
	O
)

func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return ""
	}
}

// Opponent returns the other player's mark. Empty has no opponent.
func (m Mark) Opponent() Mark {
	switch m {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

// Board is a fixed 3x3 board stored row-major.
type Board [9]Mark

// Index returns the board index of row r, column c (0..2).
func Index(r, c int) int { return r*3 + c }

// Position returns the row and column of a board index.
func Position(i int) (r, c int) { return i / 3, i % 3 }

// Full reports whether no cell is Empty.
func (b Board) Full() bool {
	for _, m := range b {
		if m == Empty {
			return false
		}
	}
	return true
}

// Line is an ordered triple of board indices.
type Line [3]int

// WinLines lists the lines that win when uniformly marked, in evaluation order.
var WinLines = [8]Line{
	// rows
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	// cols
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	// diags
	{0, 4, 8}, {2, 4, 6},
}

// Contains reports whether index i is part of the line.
func (l Line) Contains(i int) bool {
	return l[0] == i || l[1] == i || l[2] == i
}

// Status classifies a board.
type Status uint8

const (
	InProgress Status = iota
	Win
	Draw
)

// Outcome is the classification of a board. Winner and Line are set only on Win.
type Outcome struct {
	Status Status
	Winner Mark
	Line   Line
}

func (o Outcome) String() string {
	switch o.Status {
	case Win:
		return o.Winner.String() + " wins"
	case Draw:
		return "draw"
	default:
		return "in progress"
	}
}

// CalculateOutcome classifies any board. The first completed line in
// WinLines order decides the winner.
func CalculateOutcome(b Board) Outcome {
	for _, ln := range WinLines {
		m := b[ln[0]]
		if m != Empty && b[ln[1]] == m && b[ln[2]] == m {
			return Outcome{Status: Win, Winner: m, Line: ln}
		}
	}
	if b.Full() {
		return Outcome{Status: Draw}
	}
	return Outcome{Status: InProgress}
}
