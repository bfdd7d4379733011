// Package sender implements the host-side state machine: discover the
// display device, push the current network identity on a fixed cadence,
// answer REFRESH solicitations, and reconnect when the device vanishes.
//
// The link is fire-and-forget. Every data line is written more than once
// per send as cheap redundancy; there is no delivery confirmation.
package sender

import (
	"context"
	"errors"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/kostyay/ipdisplay/internal/config"
	"github.com/kostyay/ipdisplay/internal/protocol"
	"github.com/kostyay/ipdisplay/internal/serialport"
	"github.com/kostyay/ipdisplay/internal/sysinfo"
)

// ErrDiscoveryExhausted is returned by one-shot mode when no device
// appears within the attempt budget. Monitor mode never returns it.
var ErrDiscoveryExhausted = errors.New("no display device found after retries")

// repeatGap spaces the redundant writes of a single send.
const repeatGap = 100 * time.Millisecond

// Sender pushes host snapshots to the display device.
type Sender struct {
	cfg      *config.Settings
	provider sysinfo.Provider
	clock    clockwork.Clock

	// Collaborators, replaceable in tests.
	factory serialport.Factory
	find    func(preferred string) (string, error)
	exists  func(path string) bool

	lastSend    time.Time
	lastHonored time.Time
	buf         []byte
}

// New creates a sender using the real serial port and discovery.
func New(cfg *config.Settings, provider sysinfo.Provider, clock clockwork.Clock) *Sender {
	return &Sender{
		cfg:      cfg,
		provider: provider,
		clock:    clock,
		factory:  serialport.DefaultFactory,
		find:     serialport.Find,
		exists:   serialport.Exists,
		buf:      make([]byte, 256),
	}
}

// Run is monitor mode: discover, serve, reconnect, forever. It returns
// only when ctx is cancelled.
func (s *Sender) Run(ctx context.Context) error {
	log.Info().Msg("starting sender in monitor mode")
	for {
		path, err := s.discover(ctx, 0)
		if err != nil {
			return err // only a cancelled context gets here in monitor mode
		}
		s.serve(ctx, path)

		if ctx.Err() != nil {
			return nil
		}
		log.Info().Msg("device disconnected, waiting for reconnection")
		if err := s.sleep(ctx, s.cfg.RetryDelay); err != nil {
			return nil
		}
	}
}

// SendOnce is one-shot mode: bounded discovery, a single send, exit.
func (s *Sender) SendOnce(ctx context.Context, attempts int) error {
	path, err := s.discover(ctx, attempts)
	if err != nil {
		return err
	}

	port, err := s.factory(path, s.cfg.BaudRate)
	if err != nil {
		return err
	}
	defer s.closePort(port)

	if err := s.settle(ctx, port); err != nil {
		return err
	}
	return s.sendSnapshot(ctx, port)
}

// discover polls for a device path at a fixed retry interval. attempts of
// zero retries until ctx is cancelled.
func (s *Sender) discover(ctx context.Context, attempts int) (string, error) {
	log.Info().Msg("waiting for display device")
	for tried := 0; ; tried++ {
		if attempts > 0 && tried >= attempts {
			return "", ErrDiscoveryExhausted
		}
		path, err := s.find(s.cfg.Device)
		if err == nil {
			log.Info().Str("path", path).Msg("device found")
			return path, nil
		}
		if sleepErr := s.sleep(ctx, s.cfg.RetryDelay); sleepErr != nil {
			return "", sleepErr
		}
	}
}

// serve owns one connection from open to failure. Any exit path leaves
// the sender back in the disconnected state.
func (s *Sender) serve(ctx context.Context, path string) {
	port, err := s.factory(path, s.cfg.BaudRate)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("connection failed")
		return
	}
	defer s.closePort(port)
	log.Info().Str("path", path).Msg("connected")

	if err := s.settle(ctx, port); err != nil {
		return
	}

	// Initial burst: data goes out right away, several times, before the
	// interval cadence takes over.
	for i := 0; i < s.cfg.InitialSendCount; i++ {
		if err := s.sendSnapshot(ctx, port); err != nil {
			log.Warn().Err(err).Msg("initial send failed")
			return
		}
	}

	if err := port.SetReadTimeout(s.cfg.ReadTimeout); err != nil {
		log.Warn().Err(err).Msg("failed to set read timeout")
	}

	for ctx.Err() == nil {
		if err := s.maybeSend(ctx, port); err != nil {
			log.Warn().Err(err).Msg("send failed, reconnecting")
			return
		}
		if err := s.pollRequests(ctx, port); err != nil {
			log.Warn().Err(err).Msg("read failed, reconnecting")
			return
		}
		if !s.exists(path) {
			log.Info().Str("path", path).Msg("device path vanished")
			return
		}
		if err := s.sleep(ctx, 200*time.Millisecond); err != nil {
			return
		}
	}
}

// settle waits out the device's post-connect boot chatter and drops any
// stale input.
func (s *Sender) settle(ctx context.Context, port serialport.Port) error {
	if err := s.sleep(ctx, s.cfg.InitialDelay); err != nil {
		return err
	}
	if err := port.ResetInputBuffer(); err != nil {
		log.Debug().Err(err).Msg("input buffer reset failed")
	}
	return nil
}

// maybeSend pushes a fresh snapshot when the send interval has elapsed.
func (s *Sender) maybeSend(ctx context.Context, port serialport.Port) error {
	now := s.clock.Now()
	if !s.lastSend.IsZero() && now.Sub(s.lastSend) < s.cfg.SendInterval {
		return nil
	}
	return s.sendSnapshot(ctx, port)
}

// sendSnapshot gathers host state fresh and writes it, repeated for
// redundancy. The snapshot is never cached between sends.
func (s *Sender) sendSnapshot(ctx context.Context, port serialport.Port) error {
	snap := s.provider.Snapshot(ctx)
	field1, field2 := snap.Fields()
	line := protocol.Encode(field1, field2)

	repeat := s.cfg.SendRepeat
	if repeat < 1 {
		repeat = 1
	}
	for i := 0; i < repeat; i++ {
		if _, err := port.Write(line); err != nil {
			return err
		}
		if i < repeat-1 {
			if err := s.sleep(ctx, repeatGap); err != nil {
				return err
			}
		}
	}

	s.lastSend = s.clock.Now()
	log.Info().Str("line1", field1).Str("line2", field2).Msg("sent")
	return nil
}

// pollRequests drains pending input and honors refresh solicitations,
// rate-limited so a retry-happy device cannot saturate the link.
func (s *Sender) pollRequests(ctx context.Context, port serialport.Port) error {
	n, err := port.Read(s.buf)
	if err != nil {
		return err
	}
	if n == 0 {
		return nil
	}

	for _, line := range protocol.DecodeChunk(s.buf[:n]) {
		switch line.Kind {
		case protocol.KindRefresh:
			if err := s.handleRefresh(ctx, port); err != nil {
				return err
			}
		case protocol.KindInvalid:
			log.Warn().Err(line.Err).Msg("dropping undecodable line")
		case protocol.KindData, protocol.KindRefreshAck:
			// Device-bound traffic echoed back; nothing to do.
		}
	}
	return nil
}

func (s *Sender) handleRefresh(ctx context.Context, port serialport.Port) error {
	now := s.clock.Now()
	if !s.lastHonored.IsZero() && now.Sub(s.lastHonored) < s.cfg.RequestRateLimit {
		log.Debug().Msg("refresh request rate-limited")
		return nil
	}
	log.Info().Msg("refresh requested by device")

	if err := s.sendSnapshot(ctx, port); err != nil {
		return err
	}
	if _, err := port.Write(protocol.EncodeToken(protocol.TokenRefreshAck)); err != nil {
		return err
	}
	s.lastHonored = now
	return nil
}

// sleep waits for d or until ctx is cancelled, whichever comes first.
func (s *Sender) sleep(ctx context.Context, d time.Duration) error {
	timer := s.clock.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.Chan():
		return nil
	}
}

func (s *Sender) closePort(port serialport.Port) {
	if err := port.Close(); err != nil {
		log.Debug().Err(err).Msg("port close failed")
	}
	s.lastSend = time.Time{}
	s.lastHonored = time.Time{}
}
