// Package irtest provides a virtual clock and recording pin/carrier doubles so
// pulse trains can be checked without hardware or wall-clock waits.
package irtest

import (
	"time"

	"github.com/sparques/irtx"
)

// Clock is virtual time. Delay advances it instantly and records the wait.
type Clock struct {
	Now   time.Duration
	Waits []time.Duration
}

func (c *Clock) Delay(d time.Duration) {
	c.Waits = append(c.Waits, d)
	if d > 0 {
		c.Now += d
	}
}

// Silent returns a Delayer that advances the clock without recording,
// for carrier-internal waits that would otherwise be mistaken for spaces.
func (c *Clock) Silent() irtx.Delayer {
	return irtx.DelayFunc(func(d time.Duration) {
		if d > 0 {
			c.Now += d
		}
	})
}

// Edge is one pin write.
type Edge struct {
	At   time.Duration
	High bool
}

// Pin records edges against a Clock. Each write costs EdgeCost of virtual
// time, standing in for the instructions a real pin write takes.
type Pin struct {
	Clock    *Clock
	EdgeCost time.Duration
	Edges    []Edge
}

func (p *Pin) High() { p.write(true) }
func (p *Pin) Low()  { p.write(false) }

func (p *Pin) write(level bool) {
	p.Edges = append(p.Edges, Edge{At: p.Clock.Now, High: level})
	p.Clock.Now += p.EdgeCost
}

// Rising returns the timestamps of every low-to-high write.
func (p *Pin) Rising() []time.Duration {
	var out []time.Duration
	for _, e := range p.Edges {
		if e.High {
			out = append(out, e.At)
		}
	}
	return out
}

// Level is the last value written, false if nothing was.
func (p *Pin) Level() bool {
	if len(p.Edges) == 0 {
		return false
	}
	return p.Edges[len(p.Edges)-1].High
}

// Carrier records requested marks and advances the clock by each.
type Carrier struct {
	Clock *Clock
	Marks []time.Duration
}

func (c *Carrier) Mark(d time.Duration) {
	c.Marks = append(c.Marks, d)
	c.Clock.Now += d
}

// Pairs zips recorded marks with the waits that followed them. Any wait past
// the last mark (the guard) is returned separately.
func Pairs(c *Carrier) (pairs []irtx.TimePair, trailing []time.Duration) {
	waits := c.Clock.Waits
	for i, m := range c.Marks {
		var space time.Duration
		if i < len(waits) {
			space = waits[i]
		}
		pairs = append(pairs, irtx.TimePair{m, space})
	}
	if len(waits) > len(c.Marks) {
		trailing = waits[len(c.Marks):]
	}
	return pairs, trailing
}

// New returns a recording carrier and its clock, ready to hand to irtx.TxConfig.
func New() (*Carrier, *Clock) {
	clk := &Clock{}
	return &Carrier{Clock: clk}, clk
}
