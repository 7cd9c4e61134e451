package ledseq

// Output is the hardware abstraction the Sequencer writes to. Calls must
// return immediately.
type Output interface {
	// SetChannelState drives the given channel on or off.
	SetChannelState(ch Channel, on bool)
}

// OutputFunc is a function that implements Output.
type OutputFunc func(ch Channel, on bool)

// SetChannelState calls f(ch, on).
func (f OutputFunc) SetChannelState(ch Channel, on bool) { f(ch, on) }

// Sequencer advances through a Sequence as time passes, applying each event
// to the output at its due time. A Sequencer is owned by a single driver
// loop and is not safe for concurrent use.
type Sequencer struct {
	out      Output
	channels ChannelSet

	seq    Sequence
	cursor int    // index of the next event to apply
	due    Millis // due time of seq[cursor]
	last   Millis // latest clock reading seen by Tick
}

// NewSequencer creates a sequencer that drives the given channels through
// out. The channel set is also the set forced off on Restart.
func NewSequencer(channels ChannelSet, out Output) *Sequencer {
	return &Sequencer{
		out:      out,
		channels: channels,
	}
}

// Initialize binds seq and starts playback at now. The first event becomes
// due at now plus its delay. No output is written. A sequence that references
// an undeclared channel is rejected and leaves the sequencer finished.
func (s *Sequencer) Initialize(seq Sequence, now Millis) error {
	if err := Validate(seq, s.channels); err != nil {
		s.seq = nil
		s.cursor = 0
		return err
	}

	s.seq = seq
	s.start(now)
	return nil
}

func (s *Sequencer) start(now Millis) {
	s.cursor = 0
	s.last = now
	if len(s.seq) > 0 {
		s.due = now + Millis(s.seq[0].Delay)
	}
}

// Tick applies every event that is due at now, in order, and returns the
// number of events applied. Events that came due between infrequent calls
// are all applied in one call; each next due time is computed from the
// previous due time rather than from now, so catching up does not drift.
// A clock reading earlier than one already seen applies nothing.
func (s *Sequencer) Tick(now Millis) int {
	if now < s.last {
		return 0
	}
	s.last = now

	var n int
	for s.cursor < len(s.seq) && now >= s.due {
		ev := s.seq[s.cursor]
		s.out.SetChannelState(ev.Channel, ev.On)
		n++

		s.cursor++
		if s.cursor < len(s.seq) {
			s.due += Millis(s.seq[s.cursor].Delay)
		}
	}

	return n
}

// IsFinished returns true once every event of the sequence has been applied.
func (s *Sequencer) IsFinished() bool {
	return s.cursor >= len(s.seq)
}

// Restart forces every declared channel off and replays the bound sequence
// from the first event, counting its delay from now.
func (s *Sequencer) Restart(now Millis) {
	s.AllOff()
	s.start(now)
}

// AllOff forces every declared channel off. The cursor is not moved.
func (s *Sequencer) AllOff() {
	for _, ch := range s.channels {
		s.out.SetChannelState(ch, false)
	}
}

// Position returns the index of the next event to apply.
func (s *Sequencer) Position() int { return s.cursor }

// Len returns the number of events in the bound sequence.
func (s *Sequencer) Len() int { return len(s.seq) }

// NextDue returns the due time of the next event. ok is false if the
// sequence is finished.
func (s *Sequencer) NextDue() (due Millis, ok bool) {
	if s.IsFinished() {
		return 0, false
	}
	return s.due, true
}
