package main

import (
	"io"
	"machine"
	"runtime"
	"time"
)

// SerialReadWriter is a machine.Serialer that also implements
// io.ReadWriter.
type SerialReadWriter interface {
	io.ReadWriter
	machine.Serialer
}

type serialIO struct {
	machine.Serialer
}

// WrapSerial wraps a machine.Serialer in an io.ReadWriter. Reads block
// until at least one byte is buffered.
func WrapSerial(serial machine.Serialer) SerialReadWriter {
	return serialIO{Serialer: serial}
}

func (s serialIO) Read(b []byte) (int, error) {
	if len(b) == 0 {
		return 0, nil
	}

	for s.Buffered() == 0 {
		// Sleep to reduce CPU usage.
		time.Sleep(time.Millisecond)
	}

	n := min(s.Buffered(), len(b))
	for i := 0; i < n; i++ {
		c, err := s.ReadByte()
		if err != nil {
			return i, err
		}
		b[i] = c
	}
	return n, nil
}

func (s serialIO) Write(b []byte) (int, error) {
	for i, c := range b {
		if err := s.WriteByte(c); err != nil {
			return i, err
		}
	}
	runtime.Gosched()
	return len(b), nil
}
