// Command ledserial executes ledserial packets sent by the host over USB
// serial.
package main

import "machine"

func main() {
	NewDevice(machine.Serial).Run()
}
