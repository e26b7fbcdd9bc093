// Package terminal renders the game on a text terminal and reads moves from
// line-based input.
package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/jaminalder/elite-tic-tac-toe/internal/app"
	"github.com/jaminalder/elite-tic-tac-toe/internal/domain"
)

// ErrQuit is returned by Render when the player asks to leave.
var ErrQuit = errors.New("quit")

const (
	colorX = "#22d3ee"
	colorO = "#fb7185"
)

// Renderer draws to an output and reads one command per Render call.
type Renderer struct {
	out *termenv.Output
	in  *bufio.Scanner
}

// New returns a renderer reading commands from in and drawing to out.
// Pass termenv.WithProfile(termenv.Ascii) to disable styling.
func New(in io.Reader, out io.Writer, opts ...termenv.OutputOption) *Renderer {
	return &Renderer{
		out: termenv.NewOutput(out, opts...),
		in:  bufio.NewScanner(in),
	}
}

var _ app.Renderer = (*Renderer)(nil)

// Render draws state, waits for one line of input and dispatches it.
// Keys 1-9 activate cells left-to-right, top-to-bottom; r resets; q quits.
// Anything else is ignored. Render returns io.EOF when input is exhausted.
func (r *Renderer) Render(state domain.GameState, onCellActivate func(int), onReset func()) error {
	if err := r.draw(state); err != nil {
		return err
	}
	if !r.in.Scan() {
		if err := r.in.Err(); err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		return io.EOF
	}
	cmd := strings.ToLower(strings.TrimSpace(r.in.Text()))
	switch cmd {
	case "q", "quit":
		return ErrQuit
	case "r", "reset":
		onReset()
		return nil
	}
	if n, err := strconv.Atoi(cmd); err == nil && n >= 1 && n <= 9 {
		onCellActivate(n - 1)
	}
	return nil
}

func (r *Renderer) draw(state domain.GameState) error {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(r.out.String("ELITE TIC TAC TOE").Bold().String())
	b.WriteString("\n\n")
	for row := 0; row < 3; row++ {
		b.WriteString(" ")
		for col := 0; col < 3; col++ {
			i := domain.Index(row, col)
			b.WriteString(r.cell(state, i))
			if col < 2 {
				b.WriteString(" │ ")
			}
		}
		b.WriteString("\n")
		if row < 2 {
			b.WriteString("───┼───┼───\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(r.status(state))
	b.WriteString("\n")
	b.WriteString(r.out.String(r.prompt(state)).Faint().String())
	_, err := io.WriteString(r.out, b.String())
	return err
}

func (r *Renderer) cell(state domain.GameState, i int) string {
	m := state.Board[i]
	if m == domain.Empty {
		return r.out.String(strconv.Itoa(i + 1)).Faint().String()
	}
	s := r.mark(m)
	if state.IsWinningCell(i) {
		s = s.Reverse()
	}
	return s.String()
}

func (r *Renderer) mark(m domain.Mark) termenv.Style {
	s := r.out.String(m.String()).Bold()
	switch m {
	case domain.X:
		return s.Foreground(r.out.Color(colorX))
	case domain.O:
		return s.Foreground(r.out.Color(colorO))
	}
	return s
}

// status describes whose turn it is or how the game ended.
func (r *Renderer) status(state domain.GameState) string {
	switch state.Outcome.Status {
	case domain.Win:
		return r.mark(state.Outcome.Winner).String() + " WINS!"
	case domain.Draw:
		return "DRAW"
	default:
		return "Player " + r.mark(state.Active).String() + " to move"
	}
}

func (r *Renderer) prompt(state domain.GameState) string {
	if state.IsOver() {
		return "r: play again  q: quit\n> "
	}
	return "1-9: place mark  r: reset  q: quit\n> "
}

// Run renders and dispatches commands until the player quits, input ends, or
// ctx is cancelled. Quitting and end of input are not errors.
func Run(ctx context.Context, r *Renderer, d *app.Driver) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := d.Step(r)
		switch {
		case err == nil:
		case errors.Is(err, ErrQuit), errors.Is(err, io.EOF):
			return nil
		default:
			return err
		}
	}
}
