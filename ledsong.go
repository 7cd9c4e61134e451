// Package ledsong plays LED songs on a serial-attached controller.
package ledsong

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/pkg/errors"
	"go.bug.st/serial"
	"golang.org/x/sync/errgroup"
	"libdb.so/ledsong/internal/ledterm"
	"libdb.so/ledsong/ledseq"
	"libdb.so/ledsong/ledserial"
	"libdb.so/ledsong/songs"
)

// Player is the main ledsong daemon. It drives a sequencer through a
// playlist from a non-blocking tick loop.
type Player struct {
	cfg      *Config
	logger   *slog.Logger
	channels ledseq.ChannelSet
	playlist []*songs.Song
}

// NewPlayer creates a new player. Every song in the playlist is loaded and
// checked against the declared channels.
func NewPlayer(cfg *Config, logger *slog.Logger) (*Player, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	playlist, err := cfg.LoadSongs()
	if err != nil {
		return nil, err
	}

	return &Player{
		cfg:      cfg,
		logger:   logger,
		channels: cfg.ChannelSet(),
		playlist: playlist,
	}, nil
}

// Playlist returns the songs the player plays, in order.
func (p *Player) Playlist() []*songs.Song {
	return p.playlist
}

// Run plays the playlist. It blocks until the playlist is done or the given
// context is canceled. If no device is configured, the playlist is previewed
// on stdout.
func (p *Player) Run(ctx context.Context) error {
	if p.cfg.Device == "" {
		return p.preview(ctx, os.Stdout)
	}
	return (&devicePlayer{Player: p}).Run(ctx)
}

func (p *Player) preview(ctx context.Context, w io.Writer) error {
	channels := p.cfg.Channels
	if len(channels) == 0 {
		channels = DefaultChannels()
	}

	lamps := make([]ledterm.Lamp, len(channels))
	for i, ch := range channels {
		lamps[i] = ledterm.Lamp{
			Channel: ledseq.Channel(ch.Pin),
			Name:    ch.Name,
			Color:   ch.Color,
		}
		if lamps[i].Name == "" {
			lamps[i].Name = fmt.Sprintf("D%d", ch.Pin)
		}
	}

	out := ledterm.NewOutput(w, lamps)
	defer out.Close()

	return p.Play(ctx, out)
}

// outputErrorer is implemented by outputs whose writes can fail.
type outputErrorer interface {
	Err() error
}

// Play plays the playlist to out using the monotonic clock. Every declared
// channel is turned off before Play returns.
func (p *Player) Play(ctx context.Context, out ledseq.Output) error {
	return p.play(ctx, out, ledseq.NewMonotonicClock())
}

func (p *Player) play(ctx context.Context, out ledseq.Output, clock ledseq.Clock) error {
	seq := ledseq.NewSequencer(p.channels, out)
	defer seq.AllOff()

	ticker := time.NewTicker(p.cfg.TickDuration())
	defer ticker.Stop()

	for i := 0; p.cfg.Loop || i < len(p.playlist); i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		song := p.playlist[i%len(p.playlist)]

		switch {
		case i == 0:
			if err := seq.Initialize(song.Sequence(), clock.Millis()); err != nil {
				return errors.Wrapf(err, "song %q", song.Name)
			}
		case len(p.playlist) == 1:
			seq.Restart(clock.Millis())
		default:
			seq.AllOff()
			if err := seq.Initialize(song.Sequence(), clock.Millis()); err != nil {
				return errors.Wrapf(err, "song %q", song.Name)
			}
		}

		p.logger.Info(
			"playing song",
			"song", song.Name,
			"events", song.Len(),
			"duration", time.Duration(song.Duration())*time.Millisecond)

		// An empty song still waits for one tick.
		for done := false; !done; done = seq.IsFinished() {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
			}

			if n := seq.Tick(clock.Millis()); n > 0 {
				p.logger.Debug(
					"applied events",
					"song", song.Name,
					"count", n,
					"position", seq.Position())
			}

			if e, ok := out.(outputErrorer); ok {
				if err := e.Err(); err != nil {
					return err
				}
			}
		}

		if p.cfg.LoopDelay > 0 {
			seq.AllOff()
			if err := sleep(ctx, time.Duration(p.cfg.LoopDelay)); err != nil {
				return err
			}
		}
	}

	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

type devicePlayer struct {
	*Player
	port serial.Port
}

func (d *devicePlayer) Run(ctx context.Context) error {
	port, err := serial.Open(d.cfg.Device, &serial.Mode{
		BaudRate: d.cfg.BaudRate(),
	})
	if err != nil {
		return errors.Wrap(err, "failed to open serial port")
	}
	defer port.Close()

	d.port = port

	errg, ctx := errgroup.WithContext(ctx)
	errg.Go(func() error {
		<-ctx.Done()
		d.logger.Debug("closing serial port")
		if err := port.Close(); err != nil {
			return errors.Wrap(err, "failed to close serial port")
		}
		return ctx.Err()
	})

	packets := make(chan ledserial.OutgoingPacket)
	errg.Go(func() error {
		return d.mainLoop(ctx)
	})
	errg.Go(func() error {
		return d.readPackets(ctx, packets)
	})
	errg.Go(func() error {
		return d.handlePackets(ctx, packets)
	})

	if err := errg.Wait(); err != nil && !errors.Is(err, errPlaylistDone) {
		return err
	}

	return nil
}

// errPlaylistDone stops the device goroutines once the playlist is over.
var errPlaylistDone = errors.New("playlist done")

func (d *devicePlayer) mainLoop(ctx context.Context) error {
	d.logger.Debug("waiting 100ms for the read loop to start...")
	if err := sleep(ctx, 100*time.Millisecond); err != nil {
		return err
	}

	out := &deviceOutput{port: d.port}

	channels := make([]uint8, len(d.channels))
	for i, ch := range d.channels {
		channels[i] = uint8(ch)
	}

	d.logger.Debug("sending initialize packet", "channels", channels)
	if err := out.write(ledserial.InitializePacket{Channels: channels}); err != nil {
		return errors.Wrap(err, "failed to initialize channels")
	}

	if err := d.Play(ctx, out); err != nil {
		return err
	}

	if err := out.write(ledserial.ClearPacket{}); err != nil {
		return errors.Wrap(err, "failed to clear channels")
	}

	return errPlaylistDone
}

func (d *devicePlayer) readPackets(ctx context.Context, dst chan<- ledserial.OutgoingPacket) error {
	if err := d.port.SetReadTimeout(serial.NoTimeout); err != nil {
		return errors.Wrap(err, "failed to reset read timeout")
	}

	return d.readPacketsFrom(ctx, d.port, dst)
}

func (d *devicePlayer) readPacketsFrom(ctx context.Context, r io.Reader, dst chan<- ledserial.OutgoingPacket) error {
	for ctx.Err() == nil {
		p, err := ledserial.ReadOutgoingPacket(r)
		if err != nil {
			// A short read indicates a timeout. This is expected.
			// Ignore the error and try again.
			if errors.Is(err, io.EOF) {
				continue
			}
			if ctx.Err() != nil {
				break
			}
			return errors.Wrap(err, "failed to read packet")
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case dst <- p:
			// ok
		}
	}

	return ctx.Err()
}

func (d *devicePlayer) handlePackets(ctx context.Context, packets <-chan ledserial.OutgoingPacket) error {
	for {
		var p ledserial.OutgoingPacket
		var ok bool
		select {
		case <-ctx.Done():
			return ctx.Err()
		case p, ok = <-packets:
			if !ok {
				return nil
			}
		}

		switch p := p.(type) {
		case ledserial.AckPacket:
			d.logger.Debug(
				"received ack packet from controller",
				"acked_for", p.IncomingPacketType)

		case ledserial.LogPacket:
			d.logger.Info(
				"received log packet from controller",
				"message", p.Message)

		case ledserial.ErrorPacket:
			d.logger.Warn(
				"received error packet from controller",
				"message", p.Message)
			return errors.Errorf("controller reported error: %s", p.Message)

		case ledserial.PanicPacket:
			d.logger.Error(
				"controller unrecoverably panicked",
				"message", p.Message)
			return errors.Errorf("controller panicked: %s", p.Message)

		default:
			return errors.Errorf("received unknown packet from controller: %s", p.Type())
		}
	}
}

// deviceOutput writes channel states to the controller as set packets.
// The first write error is kept and every later write is dropped.
type deviceOutput struct {
	port io.Writer
	err  error
}

var _ ledseq.Output = (*deviceOutput)(nil)

func (o *deviceOutput) SetChannelState(ch ledseq.Channel, on bool) {
	if o.err != nil {
		return
	}
	if err := o.write(ledserial.SetPacket{Channel: uint8(ch), On: on}); err != nil {
		o.err = errors.Wrapf(err, "failed to set channel %d", ch)
	}
}

func (o *deviceOutput) Err() error {
	return o.err
}

func (o *deviceOutput) write(p ledserial.IncomingPacket) error {
	return ledserial.WriteIncomingPacket(o.port, p)
}
