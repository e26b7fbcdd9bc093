package web

import (
	"github.com/jaminalder/elite-tic-tac-toe/internal/domain"
)

// cellView is one square of the rendered grid.
type cellView struct {
	Index    int
	Symbol   string
	Class    string
	Winning  bool
	Disabled bool
}

// gameView is the template data for the page and the #game fragment.
type gameView struct {
	Cells       []cellView
	XActive     bool
	OActive     bool
	Over        bool
	Result      string
	ResultClass string
}

func markClass(m domain.Mark) string {
	switch m {
	case domain.X:
		return "x"
	case domain.O:
		return "o"
	default:
		return ""
	}
}

func newGameView(s domain.GameState) gameView {
	v := gameView{
		Cells:   make([]cellView, len(s.Board)),
		XActive: !s.IsOver() && s.Active == domain.X,
		OActive: !s.IsOver() && s.Active == domain.O,
		Over:    s.IsOver(),
	}
	for i, m := range s.Board {
		v.Cells[i] = cellView{
			Index:    i,
			Symbol:   m.String(),
			Class:    markClass(m),
			Winning:  s.IsWinningCell(i),
			Disabled: m != domain.Empty || s.IsOver(),
		}
	}
	switch s.Outcome.Status {
	case domain.Win:
		v.Result = s.Outcome.Winner.String() + " WINS!"
		v.ResultClass = markClass(s.Outcome.Winner)
	case domain.Draw:
		v.Result = "DRAW"
		v.ResultClass = "draw"
	}
	return v
}
