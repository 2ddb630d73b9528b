package app

import (
	"fmt"

	"github.com/esengine/nova-editor/internal/backend"
	"github.com/esengine/nova-editor/internal/config"
)

// eventLoop services host events until a quit request or a host error.
// Returns ErrQuit on clean exit.
func (r *Runtime) eventLoop(ctx *config.Context) error {
	events := r.startInputPolling()
	r.draw(ctx)

	for {
		select {
		case <-r.done:
			return ErrQuit

		case ev, ok := <-events:
			if !ok {
				return ErrQuit
			}

			switch ev.Type {
			case backend.EventKey:
				if isQuitKey(ev) {
					return ErrQuit
				}

			case backend.EventResize:
				r.logger.Debug("resize %dx%d", ev.Width, ev.Height)
				r.draw(ctx)

			case backend.EventError:
				return &RuntimeStartError{Stage: "event loop", Err: ev.Err}
			}
		}
	}
}

// startInputPolling starts a goroutine that forwards backend events to the
// returned channel.
//
// PollEvent is blocking; Shutdown posts a synthetic event and the deferred
// backend.Shutdown in Run unblocks any residual poll, so the goroutine
// terminates on every exit path.
func (r *Runtime) startInputPolling() <-chan backend.Event {
	events := make(chan backend.Event, 64)

	go func() {
		defer close(events)

		for r.running.Load() {
			ev := r.backend.PollEvent()

			// Re-check after the blocking poll.
			if !r.running.Load() {
				return
			}

			select {
			case events <- ev:
			case <-r.done:
				return
			}
		}
	}()

	return events
}

// isQuitKey reports whether a key event requests shutdown.
func isQuitKey(ev backend.Event) bool {
	switch ev.Key {
	case backend.KeyCtrlQ, backend.KeyEscape:
		return true
	case backend.KeyRune:
		return ev.Rune == 'q'
	default:
		return false
	}
}

// draw renders the shell chrome: one centered line identifying the product.
// Window content beyond this belongs to the editor, not the shell core.
func (r *Runtime) draw(ctx *config.Context) {
	r.backend.Clear()

	w, h := r.backend.Size()
	line := fmt.Sprintf("%s %s", ctx.ProductName, ctx.Version)
	x := (w - len(line)) / 2
	if x < 0 {
		x = 0
	}
	y := h / 2
	for i, ch := range line {
		r.backend.SetCell(x+i, y, ch)
	}

	r.backend.Show()
}
