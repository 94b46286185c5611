package main

import (
	"github.com/davecheney/gpio"
	"github.com/pkg/errors"
)

type sysfsPin struct {
	gpio.Pin
}

func (p sysfsPin) High() { p.Set() }
func (p sysfsPin) Low()  { p.Clear() }

func openPin(n int) (outputPin, error) {
	pin, err := gpio.OpenPin(n, gpio.ModeOutput)
	if err != nil {
		return nil, errors.Wrapf(err, "open gpio %d", n)
	}
	pin.Clear()
	return sysfsPin{pin}, nil
}
