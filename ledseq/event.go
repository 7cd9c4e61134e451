// Package ledseq plays back timed LED on/off sequences.
//
// A Sequence is an ordered, read-only table of Events. Each Event waits a
// number of milliseconds after the previous event was applied, then drives
// one output channel on or off. The Sequencer walks a Sequence from a
// cooperative tick loop and never blocks.
package ledseq

import (
	"errors"
	"fmt"
)

// Millis is a reading of a monotonic millisecond clock.
type Millis uint64

// Channel identifies one physical output line, usually a digital pin number.
type Channel uint8

// Event is one timed instruction to set a channel's state.
type Event struct {
	// Delay is the time in milliseconds to wait, counted from the instant
	// the previous event was applied, before applying this event.
	Delay uint32
	// Channel is the output line to drive.
	Channel Channel
	// On is the state to drive the channel to.
	On bool
}

// String returns a string representation of the event.
func (e Event) String() string {
	state := "off"
	if e.On {
		state = "on"
	}
	return fmt.Sprintf("+%dms ch%d %s", e.Delay, e.Channel, state)
}

// Sequence is the fixed, ordered list of events for one song. Sequences are
// shared between sequencers and must not be modified once built.
type Sequence []Event

// Duration returns the total play time of the sequence in milliseconds.
func (s Sequence) Duration() Millis {
	var d Millis
	for _, ev := range s {
		d += Millis(ev.Delay)
	}
	return d
}

// Channels returns the distinct channels referenced by the sequence in the
// order they first appear.
func (s Sequence) Channels() []Channel {
	var seen [256]bool
	var channels []Channel
	for _, ev := range s {
		if !seen[ev.Channel] {
			seen[ev.Channel] = true
			channels = append(channels, ev.Channel)
		}
	}
	return channels
}

// ChannelSet is the bounded set of output lines declared for playback.
type ChannelSet []Channel

// DefaultChannels are the four pins the song tables are wired for: red,
// green, blue and white.
var DefaultChannels = ChannelSet{2, 3, 4, 5}

// Contains returns true if ch is declared in the set.
func (cs ChannelSet) Contains(ch Channel) bool {
	for _, c := range cs {
		if c == ch {
			return true
		}
	}
	return false
}

// ErrUndeclaredChannel is returned when an event references a channel outside
// the declared channel set.
var ErrUndeclaredChannel = errors.New("undeclared channel")

// ChannelError describes the first event of a sequence that references an
// undeclared channel.
type ChannelError struct {
	Index   int
	Channel Channel
}

func (e *ChannelError) Error() string {
	return fmt.Sprintf("event %d: channel %d: %s", e.Index, e.Channel, ErrUndeclaredChannel)
}

func (e *ChannelError) Unwrap() error {
	return ErrUndeclaredChannel
}

// Validate checks that every event in seq drives a channel in channels.
// An empty sequence is always valid.
func Validate(seq Sequence, channels ChannelSet) error {
	if len(seq) > 0 && len(channels) == 0 {
		return errors.New("no channels declared")
	}
	for i, ev := range seq {
		if !channels.Contains(ev.Channel) {
			return &ChannelError{Index: i, Channel: ev.Channel}
		}
	}
	return nil
}
