package ledseq

import (
	"encoding"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Endianness defines the byte order of the binary record format.
var Endianness = binary.LittleEndian

// RecordSize is the size in bytes of one encoded Event: a 32-bit delay, an
// 8-bit channel and an 8-bit state.
const RecordSize = 6

// ErrShortRecord is returned when encoded data does not hold a whole number
// of records.
var ErrShortRecord = errors.New("truncated event record")

var (
	_ encoding.BinaryMarshaler   = Sequence(nil)
	_ encoding.BinaryUnmarshaler = (*Sequence)(nil)
)

// appendRecord appends the record form of the event to b.
func (e Event) appendRecord(b []byte) []byte {
	var rec [RecordSize]byte
	Endianness.PutUint32(rec[0:4], e.Delay)
	rec[4] = uint8(e.Channel)
	if e.On {
		rec[5] = 1
	}
	return append(b, rec[:]...)
}

// MarshalBinary encodes the sequence as consecutive fixed-size records.
func (s Sequence) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, len(s)*RecordSize)
	for _, ev := range s {
		b = ev.appendRecord(b)
	}
	return b, nil
}

// UnmarshalBinary decodes consecutive fixed-size records into the sequence,
// replacing its contents.
func (s *Sequence) UnmarshalBinary(b []byte) error {
	if len(b)%RecordSize != 0 {
		return fmt.Errorf("%d trailing bytes: %w", len(b)%RecordSize, ErrShortRecord)
	}

	seq := make(Sequence, 0, len(b)/RecordSize)
	for i := 0; i < len(b); i += RecordSize {
		rec := b[i : i+RecordSize]

		ev := Event{
			Delay:   Endianness.Uint32(rec[0:4]),
			Channel: Channel(rec[4]),
		}
		switch rec[5] {
		case 0:
		case 1:
			ev.On = true
		default:
			return fmt.Errorf("event %d: invalid state byte %d", i/RecordSize, rec[5])
		}

		seq = append(seq, ev)
	}

	*s = seq
	return nil
}

// ReadSequence reads a whole record stream from r.
func ReadSequence(r io.Reader) (Sequence, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read sequence: %w", err)
	}

	var seq Sequence
	if err := seq.UnmarshalBinary(b); err != nil {
		return nil, err
	}
	return seq, nil
}

// WriteSequence writes the record form of seq to w.
func WriteSequence(w io.Writer, seq Sequence) error {
	b, _ := seq.MarshalBinary()
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("failed to write sequence: %w", err)
	}
	return nil
}
