// Package config loads transmitter profiles: which pin drives the IR LED,
// how fast the host runs, and whether the board has an IR LED at all.
package config

import (
	"bytes"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/sparques/irtx"
)

const (
	BoardMicroRC    = "micro_rc"
	BoardTwoChannel = "two_channel"
)

var ErrUnknownBoard = errors.New("unknown board")

// Profile describes one transmitter build driven from a Linux host. The
// carrier is always bit-banged there; the PWM carrier is a firmware build
// choice and has no key here.
type Profile struct {
	Board    string `yaml:"board"`
	Infrared bool   `yaml:"infrared"`
	Pin      int    `yaml:"pin"`
	ClockHz  uint32 `yaml:"clock_hz"`
	// EdgeDelayUs overrides the delay CompensationFor would pick from ClockHz.
	EdgeDelayUs *int `yaml:"edge_delay_us,omitempty"`
	GuardMs     int  `yaml:"guard_ms"`
}

var boards = map[string]Profile{
	BoardMicroRC: {
		Board:    BoardMicroRC,
		Infrared: true,
		Pin:      3,
		ClockHz:  irtx.Clock16MHz,
		GuardMs:  30,
	},
	// steering wheel transmitter, no IR LED fitted
	BoardTwoChannel: {
		Board:    BoardTwoChannel,
		Infrared: false,
		Pin:      3,
		ClockHz:  irtx.Clock16MHz,
		GuardMs:  30,
	},
}

// Default is the Micro RC board.
func Default() Profile {
	return boards[BoardMicroRC]
}

// Board returns the preset for name.
func Board(name string) (Profile, error) {
	p, ok := boards[name]
	if !ok {
		return Profile{}, errors.Wrapf(ErrUnknownBoard, "%q", name)
	}
	return p, nil
}

// LoadProfile reads a YAML profile. Fields it leaves out come from the
// preset named by its board key, or from Default when there is none. Unknown
// keys are an error.
func LoadProfile(filename string) (Profile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Profile{}, errors.Wrap(err, "failed to read profile")
	}
	return ParseProfile(data)
}

func ParseProfile(data []byte) (Profile, error) {
	var head struct {
		Board string `yaml:"board"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return Profile{}, errors.Wrap(err, "failed to parse profile")
	}

	p := Default()
	if head.Board != "" {
		var err error
		if p, err = Board(head.Board); err != nil {
			return Profile{}, err
		}
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && err != io.EOF {
		return Profile{}, errors.Wrap(err, "failed to parse profile")
	}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

func (p Profile) Validate() error {
	if p.EdgeDelayUs != nil && *p.EdgeDelayUs < 0 {
		return errors.Errorf("edge_delay_us must not be negative, got %d", *p.EdgeDelayUs)
	}
	if p.GuardMs <= 0 {
		return errors.Errorf("guard_ms must be positive, got %d", p.GuardMs)
	}
	if p.Pin < 0 {
		return errors.Errorf("pin must not be negative, got %d", p.Pin)
	}
	return nil
}

// Compensation is the carrier edge delay for this profile.
func (p Profile) Compensation() irtx.Compensation {
	if p.EdgeDelayUs != nil {
		return irtx.Compensation{EdgeDelay: time.Duration(*p.EdgeDelayUs) * time.Microsecond}
	}
	return irtx.CompensationFor(p.ClockHz)
}

func (p Profile) Guard() time.Duration {
	return time.Duration(p.GuardMs) * time.Millisecond
}
