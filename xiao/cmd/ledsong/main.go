// Command ledsong plays a built-in song on the board's digital pins forever.
package main

import (
	"time"

	"libdb.so/ledsong/ledseq"
	"libdb.so/ledsong/songs"
	"libdb.so/ledsong/xiao"
)

// songName is the song to play. Override it with
// -ldflags="-X main.songName=mary-had-a-little-lamb".
var songName = "hot-cross-buns"

// loopGap is the pause between two passes through the song.
const loopGap = time.Second

func main() {
	song, ok := songs.Lookup(songName)
	if !ok {
		fail()
	}

	out, err := xiao.NewPinOutput(ledseq.DefaultChannels)
	if err != nil {
		fail()
	}

	clock := ledseq.NewMonotonicClock()
	seq := ledseq.NewSequencer(ledseq.DefaultChannels, out)
	if err := seq.Initialize(song.Sequence(), clock.Millis()); err != nil {
		fail()
	}

	for {
		seq.Tick(clock.Millis())

		if seq.IsFinished() {
			seq.AllOff()
			xiao.StatusLEDOn(0, 0, 32)
			time.Sleep(loopGap)
			xiao.StatusLEDOff()
			seq.Restart(clock.Millis())
		}

		// Yield to the scheduler between ticks.
		time.Sleep(time.Millisecond)
	}
}

// fail blinks the status LED red forever.
func fail() {
	for {
		xiao.StatusLEDOn(255, 0, 0)
		time.Sleep(250 * time.Millisecond)
		xiao.StatusLEDOff()
		time.Sleep(250 * time.Millisecond)
	}
}
