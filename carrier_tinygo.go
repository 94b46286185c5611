//go:build tinygo

package irtx

import (
	"machine"
	"time"

	"github.com/sparques/pwm"
)

// PWMCarrier gates a hardware PWM channel running at 38kHz. Use it instead
// of BitBangCarrier when the IR pin sits on a PWM slice.
type PWMCarrier struct {
	pin    machine.Pin
	pgroup pwm.Group
	ch     uint8
	duty   uint32
}

func NewPWMCarrier(pin machine.Pin) (*PWMCarrier, error) {
	pin.Configure(machine.PinConfig{Mode: machine.PinPWM})
	pgroup := pwm.Get(pin)
	if err := pgroup.Configure(machine.PWMConfig{Period: uint64(1e9) / uint64(Freq38Khz)}); err != nil {
		return nil, err
	}
	ch, err := pgroup.Channel(pin)
	if err != nil {
		return nil, err
	}
	pgroup.Set(ch, 0)
	return &PWMCarrier{
		pin:    pin,
		pgroup: pgroup,
		ch:     ch,
		duty:   pgroup.Top() / 2,
	}, nil
}

func (c *PWMCarrier) Mark(d time.Duration) {
	c.pgroup.Set(c.ch, c.duty)
	BusyWait.Delay(d)
	c.pgroup.Set(c.ch, 0)
}

// ConfigureOutput readies pin for BitBangCarrier and parks it low.
func ConfigureOutput(pin machine.Pin) machine.Pin {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	pin.Low()
	return pin
}
