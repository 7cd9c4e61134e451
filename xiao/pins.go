// Package xiao drives LED channels on a Seeed XIAO RP2040.
package xiao

import (
	"fmt"
	"machine"

	"libdb.so/ledsong/ledseq"
)

// digitalPins maps the board's D0-D10 labels to GPIO pins. Channel n of a
// song drives pin Dn.
var digitalPins = [...]machine.Pin{
	machine.D0, machine.D1, machine.D2, machine.D3, machine.D4, machine.D5,
	machine.D6, machine.D7, machine.D8, machine.D9, machine.D10,
}

// Pin returns the GPIO pin for a channel.
func Pin(ch ledseq.Channel) (machine.Pin, bool) {
	if int(ch) >= len(digitalPins) {
		return machine.NoPin, false
	}
	return digitalPins[ch], true
}

// PinOutput writes channel states to GPIO pins.
type PinOutput struct {
	pins [len(digitalPins)]machine.Pin
}

var _ ledseq.Output = (*PinOutput)(nil)

// NewPinOutput configures the pins for the given channels as outputs and
// drives them low.
func NewPinOutput(channels ledseq.ChannelSet) (*PinOutput, error) {
	o := &PinOutput{}
	for i := range o.pins {
		o.pins[i] = machine.NoPin
	}

	for _, ch := range channels {
		pin, ok := Pin(ch)
		if !ok {
			return nil, fmt.Errorf("channel %d has no pin", ch)
		}
		pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
		pin.Low()
		o.pins[ch] = pin
	}

	return o, nil
}

// SetChannelState implements ledseq.Output. Channels that were not
// configured are ignored.
func (o *PinOutput) SetChannelState(ch ledseq.Channel, on bool) {
	if int(ch) >= len(o.pins) || o.pins[ch] == machine.NoPin {
		return
	}
	o.pins[ch].Set(on)
}
