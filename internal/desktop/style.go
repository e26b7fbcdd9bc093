package desktop

import (
	"image/color"

	"github.com/jaminalder/elite-tic-tac-toe/internal/domain"
)

var (
	backgroundColor = color.NRGBA{R: 0x02, G: 0x06, B: 0x17, A: 0xff}
	cellColor       = color.NRGBA{R: 0x1e, G: 0x29, B: 0x3b, A: 0xff}
	winningColor    = color.NRGBA{R: 0x43, G: 0x38, B: 0xca, A: 0xff}
	textColor       = color.NRGBA{R: 0xe2, G: 0xe8, B: 0xf0, A: 0xff}
	mutedColor      = color.NRGBA{R: 0x64, G: 0x74, B: 0x8b, A: 0xff}
	xColor          = color.NRGBA{R: 0x22, G: 0xd3, B: 0xee, A: 0xff}
	oColor          = color.NRGBA{R: 0xfb, G: 0x71, B: 0x85, A: 0xff}
	drawColor       = color.NRGBA{R: 0x94, G: 0xa3, B: 0xb8, A: 0xff}
)

func markColor(m domain.Mark) color.NRGBA {
	switch m {
	case domain.X:
		return xColor
	case domain.O:
		return oColor
	default:
		return textColor
	}
}

func cellBackground(s domain.GameState, i int) color.NRGBA {
	if s.IsWinningCell(i) {
		return winningColor
	}
	return cellColor
}

// cellEnabled reports whether a click on cell i can change the game.
func cellEnabled(s domain.GameState, i int) bool {
	return !s.IsOver() && s.Board[i] == domain.Empty
}

func statusText(s domain.GameState) string {
	switch s.Outcome.Status {
	case domain.Win:
		return s.Outcome.Winner.String() + " WINS!"
	case domain.Draw:
		return "DRAW"
	default:
		return "Player " + s.Active.String() + " to move"
	}
}

func statusColor(s domain.GameState) color.NRGBA {
	switch s.Outcome.Status {
	case domain.Win:
		return markColor(s.Outcome.Winner)
	case domain.Draw:
		return drawColor
	default:
		return markColor(s.Active)
	}
}

func resetLabel(s domain.GameState) string {
	if s.IsOver() {
		return "PLAY AGAIN"
	}
	return "Reset Game"
}
