package main

import (
	"fmt"
	"machine"

	"libdb.so/ledsong/ledseq"
	"libdb.so/ledsong/ledserial"
	"libdb.so/ledsong/xiao"
)

// Device stores the current state of the device.
type Device struct {
	serial SerialReadWriter

	out      *xiao.PinOutput
	channels ledseq.ChannelSet
}

// NewDevice creates a new device. No channel is driven until the host sends
// an initialize packet.
func NewDevice(serial machine.Serialer) *Device {
	return &Device{
		serial: WrapSerial(serial),
	}
}

// Run runs the device loop forever.
func (d *Device) Run() {
	for {
		p, err := d.readPacket()
		if err != nil {
			d.logError(err)
			continue
		}

		if err := d.handlePacket(p); err != nil {
			d.logError(err)
			continue
		}

		d.sendPacket(ledserial.AckPacket{
			IncomingPacketType: p.Type(),
		})
	}
}

func (d *Device) log(msg string) {
	d.sendPacket(ledserial.LogPacket{Message: msg})
}

func (d *Device) logError(err error) {
	d.sendPacket(ledserial.ErrorPacket{Message: err.Error()})
}

func (d *Device) sendPacket(p ledserial.OutgoingPacket) {
	ledserial.WriteOutgoingPacket(d.serial, p)
}

func (d *Device) readPacket() (ledserial.IncomingPacket, error) {
	return ledserial.ReadIncomingPacket(d.serial)
}

func (d *Device) handlePacket(p ledserial.IncomingPacket) error {
	switch p := p.(type) {
	case ledserial.InitializePacket:
		channels := make(ledseq.ChannelSet, len(p.Channels))
		for i, ch := range p.Channels {
			channels[i] = ledseq.Channel(ch)
		}

		out, err := xiao.NewPinOutput(channels)
		if err != nil {
			return err
		}

		d.out = out
		d.channels = channels
		d.log(fmt.Sprintf("initialized %d channels", len(channels)))

		// Green means a host is connected.
		xiao.StatusLEDOn(0, 32, 0)

	case ledserial.ClearPacket:
		if d.out == nil {
			return fmt.Errorf("clear before initialize")
		}
		for _, ch := range d.channels {
			d.out.SetChannelState(ch, false)
		}

	case ledserial.SetPacket:
		if d.out == nil {
			return fmt.Errorf("set before initialize")
		}
		ch := ledseq.Channel(p.Channel)
		if !d.channels.Contains(ch) {
			return fmt.Errorf("channel %d: %w", ch, ledseq.ErrUndeclaredChannel)
		}
		d.out.SetChannelState(ch, p.On)

	default:
		return fmt.Errorf("unknown packet type: %T", p)
	}

	return nil
}
