package ledseq

import (
	"errors"
	"reflect"
	"testing"
)

type write struct {
	Channel Channel
	On      bool
}

type recordingOutput struct {
	writes []write
}

func (o *recordingOutput) SetChannelState(ch Channel, on bool) {
	o.writes = append(o.writes, write{ch, on})
}

func expectedWrites(seq Sequence) []write {
	writes := make([]write, len(seq))
	for i, ev := range seq {
		writes[i] = write{ev.Channel, ev.On}
	}
	return writes
}

var hotCrossBunsIntro = Sequence{
	{35, 4, true},
	{510, 4, false},
	{35, 3, true},
	{510, 3, false},
	{0, 2, false},
	{35, 2, true},
	{0, 2, true},
	{510, 2, false},
	{545, 4, true},
	{545, 4, false},
	{0, 3, true},
	{545, 3, false},
}

func TestSequencerExample(t *testing.T) {
	out := &recordingOutput{}
	s := NewSequencer(DefaultChannels, out)

	seq := Sequence{{35, 4, true}, {510, 4, false}}
	if err := s.Initialize(seq, 1000); err != nil {
		t.Fatal("Initialize:", err)
	}

	if due, _ := s.NextDue(); due != 1035 {
		t.Fatalf("first due time = %d, want 1035", due)
	}

	if n := s.Tick(1000); n != 0 {
		t.Errorf("Tick(1000) applied %d events, want 0", n)
	}

	if n := s.Tick(1040); n != 1 {
		t.Errorf("Tick(1040) applied %d events, want 1", n)
	}
	if due, _ := s.NextDue(); due != 1545 {
		t.Errorf("second due time = %d, want 1545", due)
	}
	if s.IsFinished() {
		t.Error("finished after first event")
	}

	if n := s.Tick(2000); n != 1 {
		t.Errorf("Tick(2000) applied %d events, want 1", n)
	}
	if !s.IsFinished() {
		t.Error("not finished after last event")
	}

	want := []write{{4, true}, {4, false}}
	if !reflect.DeepEqual(out.writes, want) {
		t.Errorf("writes = %v, want %v", out.writes, want)
	}
}

func TestSequencerCatchUp(t *testing.T) {
	seq := hotCrossBunsIntro
	want := expectedWrites(seq)

	tests := []struct {
		name  string
		ticks func(start Millis) []Millis
	}{
		{
			name: "single far future tick",
			ticks: func(start Millis) []Millis {
				return []Millis{start + seq.Duration() + 10000}
			},
		},
		{
			name: "exact due times",
			ticks: func(start Millis) []Millis {
				var ticks []Millis
				due := start
				for _, ev := range seq {
					due += Millis(ev.Delay)
					ticks = append(ticks, due)
				}
				return ticks
			},
		},
		{
			name: "every millisecond",
			ticks: func(start Millis) []Millis {
				var ticks []Millis
				for now := start; now <= start+seq.Duration(); now++ {
					ticks = append(ticks, now)
				}
				return ticks
			},
		},
		{
			name: "coarse 700ms steps",
			ticks: func(start Millis) []Millis {
				var ticks []Millis
				for now := start; now <= start+seq.Duration()+700; now += 700 {
					ticks = append(ticks, now)
				}
				return ticks
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			out := &recordingOutput{}
			s := NewSequencer(DefaultChannels, out)
			if err := s.Initialize(seq, 500); err != nil {
				t.Fatal("Initialize:", err)
			}

			var applied int
			for _, now := range test.ticks(500) {
				applied += s.Tick(now)
			}

			if applied != len(seq) {
				t.Errorf("applied %d events, want %d", applied, len(seq))
			}
			if !reflect.DeepEqual(out.writes, want) {
				t.Errorf("writes = %v, want %v", out.writes, want)
			}
			if !s.IsFinished() {
				t.Error("sequencer not finished")
			}
		})
	}
}

func TestSequencerNeverEarly(t *testing.T) {
	out := &recordingOutput{}
	s := NewSequencer(DefaultChannels, out)
	if err := s.Initialize(hotCrossBunsIntro, 0); err != nil {
		t.Fatal("Initialize:", err)
	}

	var due Millis
	for i, ev := range hotCrossBunsIntro {
		due += Millis(ev.Delay)
		if ev.Delay > 0 {
			before := len(out.writes)
			s.Tick(due - 1)
			if len(out.writes) > i {
				t.Fatalf("event %d applied at %d, before its due time %d", i, due-1, due)
			}
			if len(out.writes) != before {
				t.Fatalf("tick before due time %d wrote %d events", due, len(out.writes)-before)
			}
		}
		s.Tick(due)
		if len(out.writes) <= i {
			t.Fatalf("event %d not applied at its due time %d", i, due)
		}
	}
}

func TestSequencerIdempotentTick(t *testing.T) {
	out := &recordingOutput{}
	s := NewSequencer(DefaultChannels, out)
	if err := s.Initialize(hotCrossBunsIntro, 0); err != nil {
		t.Fatal("Initialize:", err)
	}

	s.Tick(1200)
	written := len(out.writes)
	if written == 0 || written == len(hotCrossBunsIntro) {
		t.Fatalf("Tick(1200) wrote %d events, want a partial prefix", written)
	}

	for i := 0; i < 3; i++ {
		if n := s.Tick(1200); n != 0 {
			t.Errorf("repeated Tick(1200) applied %d events, want 0", n)
		}
	}
	if len(out.writes) != written {
		t.Errorf("writes grew from %d to %d on repeated ticks", written, len(out.writes))
	}

	s.Tick(100000)
	s.Tick(100000)
	if len(out.writes) != len(hotCrossBunsIntro) {
		t.Errorf("wrote %d events, want %d", len(out.writes), len(hotCrossBunsIntro))
	}
}

func TestSequencerZeroDelayCoincidence(t *testing.T) {
	out := &recordingOutput{}
	s := NewSequencer(DefaultChannels, out)

	// End one note and start another at the same instant, then retrigger.
	seq := Sequence{
		{100, 2, true},
		{200, 2, false},
		{0, 3, true},
		{50, 3, true},
		{0, 3, true},
	}
	if err := s.Initialize(seq, 0); err != nil {
		t.Fatal("Initialize:", err)
	}

	if n := s.Tick(100); n != 1 {
		t.Fatalf("Tick(100) applied %d events, want 1", n)
	}
	if n := s.Tick(300); n != 2 {
		t.Fatalf("Tick(300) applied %d events, want 2", n)
	}
	if n := s.Tick(350); n != 2 {
		t.Fatalf("Tick(350) applied %d events, want 2", n)
	}

	want := []write{{2, true}, {2, false}, {3, true}, {3, true}, {3, true}}
	if !reflect.DeepEqual(out.writes, want) {
		t.Errorf("writes = %v, want %v", out.writes, want)
	}
}

func TestSequencerLeadingZeroDelay(t *testing.T) {
	out := &recordingOutput{}
	s := NewSequencer(DefaultChannels, out)

	seq := Sequence{{0, 4, true}, {0, 3, true}, {273, 4, false}}
	if err := s.Initialize(seq, 42); err != nil {
		t.Fatal("Initialize:", err)
	}

	if len(out.writes) != 0 {
		t.Fatalf("Initialize wrote %v", out.writes)
	}
	if n := s.Tick(42); n != 2 {
		t.Errorf("Tick(42) applied %d events, want 2", n)
	}
}

func TestSequencerEmpty(t *testing.T) {
	out := &recordingOutput{}
	s := NewSequencer(DefaultChannels, out)

	if err := s.Initialize(nil, 1000); err != nil {
		t.Fatal("Initialize:", err)
	}
	if !s.IsFinished() {
		t.Error("empty sequence not finished after Initialize")
	}
	if n := s.Tick(5000); n != 0 {
		t.Errorf("Tick applied %d events on an empty sequence", n)
	}
	if _, ok := s.NextDue(); ok {
		t.Error("NextDue reported a pending event")
	}
}

func TestSequencerUndeclaredChannel(t *testing.T) {
	out := &recordingOutput{}
	s := NewSequencer(DefaultChannels, out)

	seq := Sequence{{35, 4, true}, {10, 9, true}}
	err := s.Initialize(seq, 0)
	if err == nil {
		t.Fatal("Initialize accepted a sequence with channel 9")
	}
	if !errors.Is(err, ErrUndeclaredChannel) {
		t.Errorf("error %v is not ErrUndeclaredChannel", err)
	}

	var chErr *ChannelError
	if !errors.As(err, &chErr) {
		t.Fatalf("error %v is not a *ChannelError", err)
	}
	if chErr.Index != 1 || chErr.Channel != 9 {
		t.Errorf("ChannelError = %+v, want index 1 channel 9", *chErr)
	}

	if !s.IsFinished() {
		t.Error("rejected sequence left the sequencer playing")
	}
	if s.Tick(1000) != 0 || len(out.writes) != 0 {
		t.Error("rejected sequence produced output")
	}
}

func TestSequencerClockGoesBackwards(t *testing.T) {
	out := &recordingOutput{}
	s := NewSequencer(DefaultChannels, out)

	seq := Sequence{{10, 2, true}, {10, 2, false}, {10, 3, true}}
	if err := s.Initialize(seq, 100); err != nil {
		t.Fatal("Initialize:", err)
	}

	s.Tick(115)
	if n := s.Tick(50); n != 0 {
		t.Errorf("Tick(50) after Tick(115) applied %d events, want 0", n)
	}
	if n := s.Tick(120); n != 1 {
		t.Errorf("Tick(120) applied %d events, want 1", n)
	}
	if n := s.Tick(130); n != 1 {
		t.Errorf("Tick(130) applied %d events, want 1", n)
	}
	if !s.IsFinished() {
		t.Error("not finished")
	}
}

func TestSequencerRestart(t *testing.T) {
	out := &recordingOutput{}
	s := NewSequencer(DefaultChannels, out)

	seq := Sequence{{0, 4, true}, {100, 5, true}, {100, 4, false}}
	if err := s.Initialize(seq, 0); err != nil {
		t.Fatal("Initialize:", err)
	}

	// Stop halfway with channels 4 and 5 lit.
	s.Tick(150)
	if s.Position() != 2 {
		t.Fatalf("Position() = %d, want 2", s.Position())
	}

	out.writes = nil
	s.Restart(1000)

	wantOff := []write{{2, false}, {3, false}, {4, false}, {5, false}}
	if !reflect.DeepEqual(out.writes, wantOff) {
		t.Fatalf("Restart wrote %v, want %v", out.writes, wantOff)
	}
	if s.Position() != 0 || s.IsFinished() {
		t.Fatalf("Restart left cursor at %d", s.Position())
	}

	out.writes = nil
	if n := s.Tick(999); n != 0 {
		t.Errorf("Tick(999) after Restart(1000) applied %d events", n)
	}
	s.Tick(1000 + seq.Duration())

	if !reflect.DeepEqual(out.writes, expectedWrites(seq)) {
		t.Errorf("replay wrote %v, want %v", out.writes, expectedWrites(seq))
	}
}

func TestSequencerRestartAfterFinish(t *testing.T) {
	out := &recordingOutput{}
	s := NewSequencer(ChannelSet{2}, out)

	seq := Sequence{{5, 2, true}}
	if err := s.Initialize(seq, 0); err != nil {
		t.Fatal("Initialize:", err)
	}

	for loop := 0; loop < 3; loop++ {
		start := Millis(loop * 100)
		if loop > 0 {
			s.Restart(start)
		}
		s.Tick(start + 5)
		if !s.IsFinished() {
			t.Fatalf("loop %d: not finished", loop)
		}
	}

	want := []write{
		{2, true},
		{2, false}, {2, true},
		{2, false}, {2, true},
	}
	if !reflect.DeepEqual(out.writes, want) {
		t.Errorf("writes = %v, want %v", out.writes, want)
	}
}
