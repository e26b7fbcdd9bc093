// Package desktop lays out the game as gio widgets. The window event loop
// itself lives in cmd/desktop.
package desktop

import (
	"image"

	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/jaminalder/elite-tic-tac-toe/internal/app"
	"github.com/jaminalder/elite-tic-tac-toe/internal/domain"
)

const (
	cellSize = unit.Dp(96)
	cellGap  = unit.Dp(4)
)

// Window holds the widget state that must survive between frames.
type Window struct {
	theme *material.Theme
	cells [9]widget.Clickable
	reset widget.Clickable
}

func New() *Window {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	th.Palette.Fg = textColor
	th.Palette.Bg = backgroundColor
	return &Window{theme: th}
}

// Frame adapts one FrameEvent's context to app.Renderer.
func (w *Window) Frame(gtx layout.Context) app.Renderer {
	return frame{w: w, gtx: gtx}
}

type frame struct {
	w   *Window
	gtx layout.Context
}

// Render dispatches clicks recorded since the previous frame, then lays out
// state. A dispatched click requests another frame to show its result.
func (f frame) Render(state domain.GameState, onCellActivate func(int), onReset func()) error {
	changed := false
	for i := range f.w.cells {
		if f.w.cells[i].Clicked(f.gtx) {
			onCellActivate(i)
			changed = true
		}
	}
	if f.w.reset.Clicked(f.gtx) {
		onReset()
		changed = true
	}
	if changed {
		f.gtx.Execute(op.InvalidateCmd{})
	}
	f.w.layout(f.gtx, state)
	return nil
}

func (w *Window) layout(gtx layout.Context, state domain.GameState) layout.Dimensions {
	paint.Fill(gtx.Ops, backgroundColor)
	spacer := layout.Spacer{Height: unit.Dp(16)}.Layout
	return layout.UniformInset(unit.Dp(24)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(w.title),
			layout.Rigid(spacer),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions { return w.status(gtx, state) }),
			layout.Rigid(spacer),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions { return w.grid(gtx, state) }),
			layout.Rigid(spacer),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions { return w.resetButton(gtx, state) }),
		)
	})
}

func (w *Window) title(gtx layout.Context) layout.Dimensions {
	l := material.H5(w.theme, "ELITE TIC TAC TOE")
	l.Alignment = text.Middle
	return l.Layout(gtx)
}

func (w *Window) status(gtx layout.Context, state domain.GameState) layout.Dimensions {
	l := material.H6(w.theme, statusText(state))
	l.Color = statusColor(state)
	l.Alignment = text.Middle
	return l.Layout(gtx)
}

func (w *Window) grid(gtx layout.Context, state domain.GameState) layout.Dimensions {
	rows := make([]layout.FlexChild, 3)
	for r := 0; r < 3; r++ {
		r := r
		rows[r] = layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			cols := make([]layout.FlexChild, 3)
			for c := 0; c < 3; c++ {
				i := domain.Index(r, c)
				cols[c] = layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return layout.UniformInset(cellGap).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
						return w.cell(gtx, state, i)
					})
				})
			}
			return layout.Flex{Axis: layout.Horizontal}.Layout(gtx, cols...)
		})
	}
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx, rows...)
}

func (w *Window) cell(gtx layout.Context, state domain.GameState, i int) layout.Dimensions {
	size := gtx.Dp(cellSize)
	gtx.Constraints = layout.Exact(image.Pt(size, size))
	b := material.Button(w.theme, &w.cells[i], state.Board[i].String())
	b.Background = cellBackground(state, i)
	b.Color = markColor(state.Board[i])
	b.TextSize = unit.Sp(48)
	b.CornerRadius = unit.Dp(12)
	if !cellEnabled(state, i) && !state.IsWinningCell(i) {
		gtx = gtx.Disabled()
	}
	return b.Layout(gtx)
}

func (w *Window) resetButton(gtx layout.Context, state domain.GameState) layout.Dimensions {
	b := material.Button(w.theme, &w.reset, resetLabel(state))
	b.Background = cellColor
	if !state.IsOver() {
		b.Color = mutedColor
	}
	return b.Layout(gtx)
}
