//go:build tinygo

// meccanofw turns a microcontroller into a serial-to-IR bridge for MECCANO /
// ERECTOR toys. Type a selector (1-12) followed by Enter on the console and
// the matching command goes out on irPin.
package main

import (
	"machine"
	"time"

	"github.com/sparques/irtx"
	"github.com/sparques/irtx/meccano"
)

const (
	irPin = machine.D3

	// usePWM drives the carrier from a PWM slice instead of toggling the pin.
	// Set it per build; the firmware reads no profile.
	usePWM = false
)

func main() {
	// give the usb console a moment to attach
	time.Sleep(2 * time.Second)

	carrier, err := newCarrier()
	if err != nil {
		println("carrier:", err.Error())
		return
	}
	tx := irtx.NewTxDevice(irtx.TxConfig{Carrier: carrier})
	tr := meccano.NewTransmitter(tx, true)

	println("ready, clock", machine.CPUFrequency())

	var sel int
	var digits int
	for {
		if machine.Serial.Buffered() == 0 {
			time.Sleep(10 * time.Millisecond)
			continue
		}
		b, err := machine.Serial.ReadByte()
		if err != nil {
			continue
		}
		switch {
		case b >= '0' && b <= '9':
			// anything past two digits is out of range anyway
			if digits < 3 {
				sel = sel*10 + int(b-'0')
				digits++
			}
		case b == '\r' || b == '\n':
			if digits == 0 {
				continue
			}
			s := meccano.Selector(sel)
			if digits > 2 {
				s = 0
			}
			if err := tr.Transmit(s); err != nil {
				println(sel, err.Error())
			} else {
				println("sent", s.String())
			}
			sel, digits = 0, 0
		}
	}
}

func newCarrier() (irtx.Carrier, error) {
	if usePWM {
		return irtx.NewPWMCarrier(irPin)
	}
	pin := irtx.ConfigureOutput(irPin)
	return irtx.NewBitBangCarrier(pin, irtx.BusyWait, irtx.CompensationFor(machine.CPUFrequency())), nil
}
