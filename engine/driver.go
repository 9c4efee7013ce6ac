// Package engine runs the game loop: a fixed-interval clock, the session that
// owns the current game, and the driver that serializes input and ticks.
package engine

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/snake/game"
	"github.com/lixenwraith/snake/input"
	"github.com/lixenwraith/snake/render"
)

// Renderer draws frames, satisfied by *render.Renderer
type Renderer interface {
	Draw(render.View)
	Sync()
}

// Driver is the single goroutine that touches the session
type Driver struct {
	session   *Session
	scheduler *ClockScheduler
	keys      *input.KeyTable
	renderer  Renderer
	logger    zerolog.Logger
}

// NewDriver wires a session to its clock, key table and renderer
func NewDriver(session *Session, scheduler *ClockScheduler, keys *input.KeyTable, renderer Renderer, logger zerolog.Logger) *Driver {
	if keys == nil {
		keys = input.DefaultKeyTable()
	}
	return &Driver{
		session:   session,
		scheduler: scheduler,
		keys:      keys,
		renderer:  renderer,
		logger:    logger,
	}
}

// Run processes events and ticks until quit, ctx cancellation or a closed event channel
// It starts the scheduler and stops it on return
func (d *Driver) Run(ctx context.Context, events <-chan tcell.Event) error {
	if d.session.State() == nil {
		d.session.NewGame()
	}

	d.scheduler.Start()
	defer d.scheduler.Stop()

	d.draw()

	for {
		select {
		case <-ctx.Done():
			d.logger.Debug().Err(ctx.Err()).Msg("driver cancelled")
			return nil

		case ev, ok := <-events:
			if !ok {
				d.logger.Debug().Msg("event channel closed")
				return nil
			}
			if d.handleEvent(ev) {
				d.logger.Debug().Int("games", d.session.Games()).Int("best", d.session.Best()).Msg("quit")
				return nil
			}

		case <-d.scheduler.Ticks():
			res := d.session.Tick()
			if res.Moved || res.Ate || res.Collision != game.NoCollision {
				d.draw()
			}
		}
	}
}

// handleEvent applies one terminal event, returning true on quit
func (d *Driver) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		action := d.keys.Resolve(ev)
		if action == input.ActionNone {
			return false
		}

		games := d.session.Games()
		if d.session.Apply(action) {
			return true
		}
		if d.session.Games() != games {
			// Fresh game starts a full interval after the key press
			if d.scheduler.IsPaused() {
				d.scheduler.Resume()
			}
			d.scheduler.Reset()
		}
		d.syncPause()
		d.draw()

	case *tcell.EventResize:
		w, h := ev.Size()
		d.logger.Debug().Int("width", w).Int("height", h).Msg("resize")
		d.renderer.Sync()
		d.draw()
	}
	return false
}

func (d *Driver) syncPause() {
	switch {
	case d.session.Paused() && !d.scheduler.IsPaused():
		d.scheduler.Pause()
	case !d.session.Paused() && d.scheduler.IsPaused():
		d.scheduler.Resume()
	}
}

func (d *Driver) draw() {
	d.renderer.Draw(render.View{
		State:  d.session.State(),
		Paused: d.session.Paused(),
		Best:   d.session.Best(),
		Games:  d.session.Games(),
	})
}
