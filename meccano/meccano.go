/*
# meccano

meccano implements the transmit side of the infrared protocol spoken by MECCANO / ERECTOR motorized toys.

## Protocol

Every command is a fixed train of 14 mark/space pairs on a 38kHz carrier. Durations are in units of 10us:

	lead-in   180, 180
	12 bits    30, 30   zero
	           30, 60   one
	trailer   120, 240

The 12 bits are a 6-bit group sent twice. The group is two command bits followed by a one-hot channel nibble:

	| Command | Bits |      | Channel | Bits |
	|^^^^^^^^^|^^^^^^|      |^^^^^^^^^|^^^^^^|
	|    Plus |   10 |      |       A | 1000 |
	|   Minus |   01 |      |       B | 0100 |
	|     Off |   00 |      |       C | 0010 |
	|         |      |      |       D | 0001 |

The receivers are picky about shape, so the trains are stored verbatim, not built from the bits above. Table.Bits
exists to check them.

## Selectors

Callers that only carry a number (a joystick loop, a serial console) address a train with a Selector in [1,12]:
A+ A- Aoff B+ B- Boff C+ C- Coff D+ D- Doff. Anything outside that range is rejected with ErrInvalidSelector
and nothing is sent.
*/
package meccano

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sparques/irtx"
)

var (
	// ErrInvalidSelector is returned for selectors outside [1,12] or for a channel/command outside its enum.
	ErrInvalidSelector = errors.New("invalid selector")
	// ErrInvalidChannel is returned when parsing a channel name fails.
	ErrInvalidChannel = errors.New("invalid channel")
	// ErrInvalidCommand is returned when parsing a command name fails.
	ErrInvalidCommand = errors.New("invalid command")
	// ErrInfraredUnsupported is returned by a Transmitter built for a board without an IR LED.
	ErrInfraredUnsupported = errors.New("board has no infrared transmitter")
)

type Channel uint8

const (
	ChannelA Channel = iota
	ChannelB
	ChannelC
	ChannelD

	NumChannels = 4
)

func (c Channel) String() string {
	if c >= NumChannels {
		return fmt.Sprintf("Channel(%d)", uint8(c))
	}
	return string(rune('A' + c))
}

// ParseChannel accepts A-D in either case.
func ParseChannel(s string) (Channel, error) {
	s = strings.TrimSpace(strings.ToUpper(s))
	if len(s) != 1 || s[0] < 'A' || s[0] >= 'A'+NumChannels {
		return 0, fmt.Errorf("%w: %q", ErrInvalidChannel, s)
	}
	return Channel(s[0] - 'A'), nil
}

type Command uint8

const (
	Plus Command = iota
	Minus
	Off

	NumCommands = 3
)

func (c Command) String() string {
	switch c {
	case Plus:
		return "+"
	case Minus:
		return "-"
	case Off:
		return "off"
	}
	return fmt.Sprintf("Command(%d)", uint8(c))
}

// ParseCommand accepts plus/minus/off and the +/- shorthands.
func ParseCommand(s string) (Command, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "+", "plus":
		return Plus, nil
	case "-", "minus":
		return Minus, nil
	case "off", "0":
		return Off, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidCommand, s)
}

// Selector numbers the 12 trains from 1; zero is never valid.
type Selector uint8

const NumSelectors = NumChannels * NumCommands

// SelectorFor maps a channel/command pair to its selector.
func SelectorFor(ch Channel, cmd Command) (Selector, error) {
	if ch >= NumChannels || cmd >= NumCommands {
		return 0, fmt.Errorf("%w: channel %v command %v", ErrInvalidSelector, ch, cmd)
	}
	return Selector(uint8(ch)*NumCommands + uint8(cmd) + 1), nil
}

func (s Selector) Valid() bool {
	return s >= 1 && s <= NumSelectors
}

// Split is the inverse of SelectorFor.
func (s Selector) Split() (Channel, Command, error) {
	if !s.Valid() {
		return 0, 0, fmt.Errorf("%w: %d", ErrInvalidSelector, uint8(s))
	}
	i := uint8(s) - 1
	return Channel(i / NumCommands), Command(i % NumCommands), nil
}

func (s Selector) String() string {
	ch, cmd, err := s.Split()
	if err != nil {
		return fmt.Sprintf("Selector(%d)", uint8(s))
	}
	return ch.String() + cmd.String()
}

const (
	// Unit is the resolution of a Table entry.
	Unit = 10 * time.Microsecond

	// PairsPerTable includes the lead-in and the trailer.
	PairsPerTable = 14
)

// Table is one pulse train as alternating mark, space values in Units.
type Table [2 * PairsPerTable]uint8

// Lookup returns a copy of the train for sel; the stored tables cannot be
// reached through it.
func Lookup(sel Selector) (Table, error) {
	if !sel.Valid() {
		return Table{}, fmt.Errorf("%w: %d", ErrInvalidSelector, uint8(sel))
	}
	return tables[sel-1], nil
}

// Pair returns the i'th mark/space pair in Units.
func (t Table) Pair(i int) (mark, space uint8) {
	return t[2*i], t[2*i+1]
}

func (t Table) Pairs() []irtx.TimePair {
	out := make([]irtx.TimePair, PairsPerTable)
	for i := range out {
		mark, space := t.Pair(i)
		out[i] = irtx.TimePair{time.Duration(mark) * Unit, time.Duration(space) * Unit}
	}
	return out
}

// Duration is the nominal on-air time of the train, guard excluded.
func (t Table) Duration() time.Duration {
	var total time.Duration
	for _, v := range t {
		total += time.Duration(v) * Unit
	}
	return total
}

// Bits decodes the 12 data pairs, first pair in bit 11. It fails on any pair
// that is neither a zero nor a one.
func (t Table) Bits() (uint16, error) {
	var bits uint16
	for i := 1; i < PairsPerTable-1; i++ {
		bits <<= 1
		switch mark, space := t.Pair(i); {
		case mark == 30 && space == 30:
		case mark == 30 && space == 60:
			bits |= 1
		default:
			return 0, fmt.Errorf("pair %d is (%d,%d), not a data bit", i, mark, space)
		}
	}
	return bits, nil
}

// Frame is a single command, ready for irtx.TxDevice.SendFrame.
type Frame struct {
	Selector Selector
	table    Table
}

func NewFrame(sel Selector) (Frame, error) {
	t, err := Lookup(sel)
	if err != nil {
		return Frame{}, err
	}
	return Frame{Selector: sel, table: t}, nil
}

func (f Frame) MarshalFrame() []irtx.TimePair {
	return f.table.Pairs()
}

// Transmitter is the entry point for sending commands. Like the TxDevice
// underneath it, it blocks for the whole frame plus guard and must only be
// used from one goroutine.
type Transmitter struct {
	tx       *irtx.TxDevice
	infrared bool
}

// NewTransmitter wraps tx. infrared is the board's capability flag; when it
// is false every send fails with ErrInfraredUnsupported.
func NewTransmitter(tx *irtx.TxDevice, infrared bool) *Transmitter {
	return &Transmitter{tx: tx, infrared: infrared}
}

// Transmit sends the train for sel and waits out the guard. Validation
// happens before the pin is touched.
func (t *Transmitter) Transmit(sel Selector) error {
	if !t.infrared {
		return ErrInfraredUnsupported
	}
	f, err := NewFrame(sel)
	if err != nil {
		return err
	}
	t.tx.SendFrame(f)
	return nil
}

// Send is Transmit addressed by channel and command.
func (t *Transmitter) Send(ch Channel, cmd Command) error {
	sel, err := SelectorFor(ch, cmd)
	if err != nil {
		return err
	}
	return t.Transmit(sel)
}

// FrameDuration is how long Transmit blocks for sel, nominally.
func (t *Transmitter) FrameDuration(sel Selector) (time.Duration, error) {
	tb, err := Lookup(sel)
	if err != nil {
		return 0, err
	}
	return tb.Duration() + t.tx.Guard(), nil
}
