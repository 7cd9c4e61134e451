package xiao

import (
	"machine"

	"tinygo.org/x/drivers/ws2812"
)

var statusLED ws2812.Device
var statusLEDPower = machine.GPIO11
var statusLEDInitialized bool

func initStatusLED() {
	if !statusLEDInitialized {
		// https://wiki.seeedstudio.com/XIAO-RP2040-with-Arduino/
		statusLEDPower.Configure(machine.PinConfig{Mode: machine.PinOutput})
		statusLEDPower.Low()

		machine.GPIO12.Configure(machine.PinConfig{Mode: machine.PinOutput})
		statusLED = ws2812.New(machine.GPIO12)

		statusLEDInitialized = true
	}
}

// StatusLEDOn lights the onboard RGB LED in the given color.
func StatusLEDOn(r, g, b uint8) {
	initStatusLED()
	statusLEDPower.High()
	statusLED.WriteByte(g) // the onboard LED is GRB
	statusLED.WriteByte(r)
	statusLED.WriteByte(b)
}

// StatusLEDOff powers the onboard RGB LED down.
func StatusLEDOff() {
	initStatusLED()
	statusLEDPower.Low()
}

