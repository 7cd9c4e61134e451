// Package songs contains the built-in LED song tables.
//
// Each table was converted offline from a MIDI file. The conversion merged
// all tracks, mapped up to four distinct notes onto the red, green, blue and
// white pins in ascending pitch order and resolved overlapping notes on one
// pin into forced retriggers. The tables are replayed literally.
package songs

import (
	"fmt"
	"slices"
	"sort"

	"libdb.so/ledsong/ledseq"
)

// Color is the color of the LED wired to a channel.
type Color string

const (
	Red   Color = "red"
	Green Color = "green"
	Blue  Color = "blue"
	White Color = "white"
)

// ChannelColors maps the default channels to the colors wired to them.
var ChannelColors = map[ledseq.Channel]Color{
	2: Red,
	3: Green,
	4: Blue,
	5: White,
}

// NoteMapping records which MIDI note was assigned to a channel during
// conversion.
type NoteMapping struct {
	Channel ledseq.Channel
	Color   Color
	Note    uint8
}

// String returns a string representation of the mapping.
func (m NoteMapping) String() string {
	return fmt.Sprintf("%s(D%d) <- MIDI note %d", m.Color, m.Channel, m.Note)
}

// Song is a named sequence together with what is known about how it was
// converted.
type Song struct {
	// Name is the short name used to select the song.
	Name string
	// Source is the MIDI file the table was converted from.
	Source string
	// BPM is the effective tempo of the table. It is zero if unknown.
	BPM float64
	// Mapping lists the notes that were assigned to channels.
	Mapping []NoteMapping
	// ForcedRetriggers is the number of times the converter restarted a note
	// that was still on.
	ForcedRetriggers int
	// UnmatchedOffs is the number of note-off events the converter dropped
	// because the note was not on.
	UnmatchedOffs int
	// MinOffGap is the minimum off time in milliseconds the converter
	// inserted between repeated notes. It is zero if none was inserted.
	MinOffGap uint32

	seq ledseq.Sequence
}

// New creates a song from a sequence. The sequence is copied.
func New(name string, seq ledseq.Sequence) *Song {
	return &Song{Name: name, seq: slices.Clone(seq)}
}

// Sequence returns a copy of the song's event table.
func (s *Song) Sequence() ledseq.Sequence {
	return slices.Clone(s.seq)
}

// Len returns the number of events in the song.
func (s *Song) Len() int { return len(s.seq) }

// Duration returns the play time of one pass through the song.
func (s *Song) Duration() ledseq.Millis { return s.seq.Duration() }

var defaultMapping = []NoteMapping{
	{Channel: 2, Color: Red, Note: 48},
	{Channel: 3, Color: Green, Note: 50},
	{Channel: 4, Color: Blue, Note: 52},
	{Channel: 5, Color: White, Note: 55},
}

var builtin = []*Song{
	{
		Name:             "hot-cross-buns",
		Source:           "Hot Cross Buns.mid",
		BPM:              110,
		Mapping:          defaultMapping[:3],
		ForcedRetriggers: 1,
		UnmatchedOffs:    1,
		MinOffGap:        35,
		seq:              hotCrossBuns,
	},
	{
		Name:      "mary-had-a-little-lamb",
		Source:    "Mary Had a Little Lamb.mid",
		BPM:       55,
		Mapping:   defaultMapping,
		MinOffGap: 35,
		seq:       maryHadALittleLamb,
	},
	{
		// Converted before repeated notes were given an off gap, so
		// repeated notes run together.
		Name:    "mary-had-a-little-lamb-legacy",
		Source:  "Mary Had a Little Lamb.mid",
		Mapping: defaultMapping,
		seq:     maryHadALittleLambLegacy,
	},
}

// All returns the built-in songs sorted by name.
func All() []*Song {
	all := slices.Clone(builtin)
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all
}

// Lookup returns the built-in song with the given name.
func Lookup(name string) (*Song, bool) {
	for _, song := range builtin {
		if song.Name == name {
			return song, true
		}
	}
	return nil, false
}
