//go:build !linux

package main

import "github.com/pkg/errors"

func openPin(n int) (outputPin, error) {
	return nil, errors.Errorf("gpio %d: sysfs GPIO is only available on linux", n)
}
