package app

import (
	"go.uber.org/zap"

	"github.com/jaminalder/elite-tic-tac-toe/internal/domain"
)

// Renderer presents a game and reports user activations back through the
// callbacks. onCellActivate receives a board index.
type Renderer interface {
	Render(state domain.GameState, onCellActivate func(index int), onReset func()) error
}

// Driver owns the single game of a local renderer. It is not safe for
// concurrent use; it belongs to the renderer's event loop.
type Driver struct {
	state domain.GameState
	log   *zap.Logger
}

func NewDriver(log *zap.Logger) *Driver {
	return &Driver{state: domain.Reset(), log: log.Named("driver")}
}

// State returns the current game.
func (d *Driver) State() domain.GameState { return d.state }

// Activate applies a move at index; ignored moves are logged and dropped.
func (d *Driver) Activate(index int) {
	next := domain.ApplyMove(d.state, index)
	if next == d.state {
		d.log.Debug("move ignored", zap.Int("index", index))
		return
	}
	mover := d.state.Active
	d.state = next
	if next.IsOver() {
		d.log.Info("game finished", zap.Stringer("mark", mover), zap.Int("index", index), zap.Stringer("outcome", next.Outcome))
		return
	}
	d.log.Debug("move applied", zap.Stringer("mark", mover), zap.Int("index", index))
}

// Reset starts a fresh game.
func (d *Driver) Reset() {
	d.state = domain.Reset()
	d.log.Debug("game reset")
}

// Step renders the current state once through r, wiring the callbacks to d.
func (d *Driver) Step(r Renderer) error {
	return r.Render(d.state, d.Activate, d.Reset)
}
