package ledsong

import (
	"encoding"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
	"libdb.so/ledsong/ledseq"
	"libdb.so/ledsong/ledserial"
	"libdb.so/ledsong/songs"
)

const (
	// DefaultBaud is the baud rate used when none is configured.
	DefaultBaud = 115200
	// DefaultTick is the tick loop period used when none is configured.
	DefaultTick = time.Millisecond
)

// Config is the configuration for the ledsong player.
type Config struct {
	// Device is the path to the serial device of the LED controller.
	// This is usually /dev/ttyACM0. If empty, playback is previewed in the
	// terminal instead.
	Device string `toml:"device"`
	// Baud is the baud rate for the serial connection.
	Baud int `toml:"baud"`
	// Tick is how often the sequencer is ticked.
	Tick TOMLDuration `toml:"tick"`
	// Loop replays the playlist forever.
	Loop bool `toml:"loop"`
	// LoopDelay is the pause between two songs.
	LoopDelay TOMLDuration `toml:"loop_delay"`
	// Playlist is the list of song names to play, in order.
	Playlist []string `toml:"playlist"`
	// Channels is the list of declared output channels. If empty, the
	// default red, green, blue and white pins are used.
	Channels []ChannelConfig `toml:"channel"`
	// Songs is a list of songs in addition to the built-in ones.
	Songs []SongConfig `toml:"song"`
}

// ChannelConfig is the configuration for one output channel.
type ChannelConfig struct {
	// Pin is the channel number, usually the digital pin the LED is wired to.
	Pin uint8 `toml:"pin"`
	// Name is a human readable name for the channel.
	Name string `toml:"name"`
	// Color is the color used to preview the channel in the terminal. It is
	// either a hex color like "#ff0000" or an ANSI color number.
	Color string `toml:"color"`
}

// SongConfig is the configuration for a song. Only one of File and Events
// should be set.
type SongConfig struct {
	// Name is the name used in the playlist.
	Name string `toml:"name"`
	// File is the path to a file holding the song in binary record form.
	File string `toml:"file"`
	// Events is the song's event table.
	Events []EventConfig `toml:"event"`
}

// EventConfig is the configuration for a single event.
type EventConfig struct {
	Delay   uint32 `toml:"delay"`
	Channel uint8  `toml:"channel"`
	On      bool   `toml:"on"`
}

// DefaultChannels returns the channel configuration used when none is set.
func DefaultChannels() []ChannelConfig {
	colors := map[songs.Color]string{
		songs.Red:   "#ff3b30",
		songs.Green: "#34c759",
		songs.Blue:  "#0a84ff",
		songs.White: "#f5f5f5",
	}

	channels := make([]ChannelConfig, len(ledseq.DefaultChannels))
	for i, ch := range ledseq.DefaultChannels {
		color := songs.ChannelColors[ch]
		channels[i] = ChannelConfig{
			Pin:   uint8(ch),
			Name:  string(color),
			Color: colors[color],
		}
	}
	return channels
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Baud < 0 {
		return fmt.Errorf("invalid baud rate %d", c.Baud)
	}
	if c.Tick < 0 || c.LoopDelay < 0 {
		return errors.New("durations must not be negative")
	}
	if len(c.Channels) > ledserial.MaxChannels {
		return fmt.Errorf("too many channels: %d, at most %d", len(c.Channels), ledserial.MaxChannels)
	}

	pins := make(map[uint8]bool)
	for _, ch := range c.Channels {
		if pins[ch.Pin] {
			return fmt.Errorf("channel %d declared twice", ch.Pin)
		}
		pins[ch.Pin] = true
	}

	names := make(map[string]bool)
	for _, song := range c.Songs {
		if song.Name == "" {
			return errors.New("song has no name")
		}
		if names[song.Name] {
			return fmt.Errorf("song %q defined twice", song.Name)
		}
		names[song.Name] = true

		if song.File != "" && len(song.Events) > 0 {
			return fmt.Errorf("song %q has both a file and events", song.Name)
		}
	}

	for _, name := range c.Playlist {
		if _, ok := songs.Lookup(name); !ok && !names[name] {
			return fmt.Errorf("playlist song %q not found", name)
		}
	}

	return nil
}

// ChannelSet returns the declared output channels.
func (c *Config) ChannelSet() ledseq.ChannelSet {
	channels := c.Channels
	if len(channels) == 0 {
		channels = DefaultChannels()
	}

	set := make(ledseq.ChannelSet, len(channels))
	for i, ch := range channels {
		set[i] = ledseq.Channel(ch.Pin)
	}
	return set
}

// LoadSongs loads the songs of the playlist, in playlist order. If the
// playlist is empty, all built-in songs are returned. Every song is checked
// against the declared channels.
func (c *Config) LoadSongs() ([]*songs.Song, error) {
	var playlist []*songs.Song
	if len(c.Playlist) == 0 {
		playlist = songs.All()
	}

	for _, name := range c.Playlist {
		song, err := c.loadSong(name)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load song %q", name)
		}
		playlist = append(playlist, song)
	}

	channels := c.ChannelSet()
	for _, song := range playlist {
		if err := ledseq.Validate(song.Sequence(), channels); err != nil {
			return nil, errors.Wrapf(err, "song %q", song.Name)
		}
	}

	return playlist, nil
}

func (c *Config) loadSong(name string) (*songs.Song, error) {
	for _, song := range c.Songs {
		if song.Name != name {
			continue
		}

		if song.File != "" {
			f, err := os.Open(song.File)
			if err != nil {
				return nil, errors.Wrap(err, "failed to open song file")
			}
			defer f.Close()

			seq, err := ledseq.ReadSequence(f)
			if err != nil {
				return nil, err
			}
			return songs.New(name, seq), nil
		}

		seq := make(ledseq.Sequence, len(song.Events))
		for i, ev := range song.Events {
			seq[i] = ledseq.Event{
				Delay:   ev.Delay,
				Channel: ledseq.Channel(ev.Channel),
				On:      ev.On,
			}
		}
		return songs.New(name, seq), nil
	}

	if song, ok := songs.Lookup(name); ok {
		return song, nil
	}

	return nil, errors.New("no such song")
}

// TickDuration returns the configured tick period or the default.
func (c *Config) TickDuration() time.Duration {
	if c.Tick == 0 {
		return DefaultTick
	}
	return time.Duration(c.Tick)
}

// BaudRate returns the configured baud rate or the default.
func (c *Config) BaudRate() int {
	if c.Baud == 0 {
		return DefaultBaud
	}
	return c.Baud
}

// TOMLDuration is a duration that can be parsed from TOML.
type TOMLDuration time.Duration

var (
	_ encoding.TextUnmarshaler = (*TOMLDuration)(nil)
	_ encoding.TextMarshaler   = (*TOMLDuration)(nil)
)

func (d *TOMLDuration) UnmarshalText(text []byte) error {
	duration, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = TOMLDuration(duration)
	return nil
}

func (d TOMLDuration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// ParseConfig parses a configuration from a reader.
func ParseConfig(r io.Reader) (*Config, error) {
	var config Config
	if err := toml.NewDecoder(r).Decode(&config); err != nil {
		return nil, err
	}
	return &config, nil
}
