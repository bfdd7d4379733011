// Package receiver implements the device-side state machine: it holds the
// last known display fields, keeps a live countdown on screen, and in
// active mode solicits fresh data from the host instead of waiting for it.
//
// The receiver runs as one cooperative loop. Reads are bounded by the
// port's read timeout, so no single iteration blocks long enough to make
// the countdown stutter.
package receiver

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/kostyay/ipdisplay/internal/model"
	"github.com/kostyay/ipdisplay/internal/protocol"
)

// Screen is the display sink. A failed call is logged and skipped; display
// state is never rolled back for a render failure.
type Screen interface {
	Clear() error
	WriteAt(row, col int, text string) error
}

// Transport is the byte link to the host. Reads are expected to time out
// quickly and return (0, nil) when no data is pending.
type Transport interface {
	Read(p []byte) (n int, err error)
	Write(p []byte) (n int, err error)
}

// Config holds the receiver's timing and mode knobs.
type Config struct {
	RefreshInterval time.Duration // countdown span and request cadence
	RenderTick      time.Duration // countdown redraw cadence
	Passive         bool          // never emit REFRESH requests
}

// Receiver owns the DisplayState. All mutation happens on the goroutine
// running Run (or, in tests, the goroutine driving the step methods).
type Receiver struct {
	cfg    Config
	port   Transport
	screen Screen
	clock  clockwork.Clock
	state  model.DisplayState
	buf    []byte
}

// New creates a receiver. The countdown anchor starts at the current time
// so the waiting screen counts down to the first solicitation.
func New(cfg Config, port Transport, screen Screen, clock clockwork.Clock) *Receiver {
	r := &Receiver{
		cfg:    cfg,
		port:   port,
		screen: screen,
		clock:  clock,
		buf:    make([]byte, 256),
	}
	r.state.LastRequest = clock.Now()
	return r
}

// State returns a copy of the current display state.
func (r *Receiver) State() model.DisplayState {
	return r.state
}

// Poll reads whatever bytes are pending on the transport and feeds them
// through the codec. Read errors are logged and swallowed; the loop keeps
// going on the last known data.
func (r *Receiver) Poll() {
	n, err := r.port.Read(r.buf)
	if err != nil {
		log.Warn().Err(err).Msg("serial read failed")
		return
	}
	if n == 0 {
		return
	}
	r.HandleChunk(r.buf[:n])
}

// HandleChunk decodes an inbound byte chunk and applies every line in it.
// Data lines update the stored fields, restart the countdown and trigger
// an immediate render. Acks are consumed silently. Undecodable lines are
// logged and dropped.
func (r *Receiver) HandleChunk(chunk []byte) {
	for _, line := range protocol.DecodeChunk(chunk) {
		switch line.Kind {
		case protocol.KindData:
			r.state.SetFields(line.Field1, line.Field2, r.clock.Now())
			log.Debug().Str("line1", r.state.Line1).Str("line2", r.state.Line2).Msg("data received")
			r.Render()
		case protocol.KindRefreshAck:
			log.Debug().Msg("refresh acknowledged")
		case protocol.KindRefresh:
			// Host-side token; a device never expects it. Drop.
			log.Debug().Msg("ignoring REFRESH on device side")
		case protocol.KindInvalid:
			log.Warn().Err(line.Err).Msg("dropping undecodable line")
		}
	}
}

// MaybeRequestRefresh emits a REFRESH token once per RefreshInterval of
// silence. The anchor advances even when the write fails, so a dead link
// cannot make the loop spin on requests.
func (r *Receiver) MaybeRequestRefresh() {
	if r.cfg.Passive {
		return
	}
	now := r.clock.Now()
	if now.Sub(r.state.LastRequest) < r.cfg.RefreshInterval {
		return
	}
	if _, err := r.port.Write(protocol.EncodeToken(protocol.TokenRefresh)); err != nil {
		log.Warn().Err(err).Msg("refresh request write failed")
	} else {
		log.Debug().Msg("sent refresh request")
	}
	r.state.LastRequest = now
}

// Run drives the loop until ctx is cancelled: solicit, poll, redraw on
// the render tick. On shutdown it performs a best-effort final render and
// returns nil.
func (r *Receiver) Run(ctx context.Context) error {
	r.Render()
	lastRender := r.clock.Now()

	for {
		select {
		case <-ctx.Done():
			r.renderShutdown()
			return nil
		default:
		}

		r.MaybeRequestRefresh()
		r.Poll()

		if now := r.clock.Now(); now.Sub(lastRender) >= r.cfg.RenderTick {
			r.Render()
			lastRender = now
		}

		// Reads above are already bounded by the port timeout; this keeps
		// an idle fake-port loop from busy-spinning.
		r.clock.Sleep(10 * time.Millisecond)
	}
}

// Render pushes the current state to the screen: the waiting screen until
// the first data arrives, afterwards the last known fields with a
// countdown suffix on the second row.
func (r *Receiver) Render() {
	now := r.clock.Now()
	if !r.state.HasData {
		r.draw(model.WaitingLine1, fmt.Sprintf("Refresh in %ds", r.state.Countdown(now, r.cfg.RefreshInterval)))
		return
	}

	line2 := r.state.Line2
	if countdown := r.state.Countdown(now, r.cfg.RefreshInterval); countdown > 0 {
		// Shorten the status so the countdown suffix fits on the row.
		line2 = model.Truncate(r.state.Line2, 8) + fmt.Sprintf(" R:%ds", countdown)
	}
	r.draw(r.state.Line1, line2)
}

func (r *Receiver) renderShutdown() {
	r.draw(model.ShutdownLine1, "")
}

// draw writes both rows, truncated to the display width. Sink errors are
// logged; the next render proceeds normally.
func (r *Receiver) draw(line1, line2 string) {
	if err := r.screen.Clear(); err != nil {
		log.Warn().Err(err).Msg("display clear failed")
		return
	}
	if err := r.screen.WriteAt(0, 0, model.Truncate(line1, model.DisplayCols)); err != nil {
		log.Warn().Err(err).Msg("display write failed")
	}
	if line2 == "" {
		return
	}
	if err := r.screen.WriteAt(1, 0, model.Truncate(line2, model.DisplayCols)); err != nil {
		log.Warn().Err(err).Msg("display write failed")
	}
}
