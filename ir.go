package irtx

import "time"

const (
	// Freq38Khz is the most commonly used frequency for IR remotes
	Freq38Khz = 38000

	// CarrierPeriod is one full 38kHz cycle, rounded the way the receivers tolerate.
	CarrierPeriod = 26 * time.Microsecond
	// CarrierHalfPeriod is the high (or low) portion of one carrier cycle.
	CarrierHalfPeriod = CarrierPeriod / 2

	// DefaultGuard is the silence appended after a frame so the receiver does not
	// merge two back-to-back frames into one.
	DefaultGuard = 30 * time.Millisecond
)

// TimePair encodes two durations: a carrier-modulated mark followed by an unmodulated space.
type TimePair [2]time.Duration

// Mark is the modulated portion of the pair.
func (p TimePair) Mark() time.Duration { return p[0] }

// Space is the silent portion of the pair.
func (p TimePair) Space() time.Duration { return p[1] }

// FrameMarshaller defines an interface for marshalling data to slice of TimePairs
type FrameMarshaller interface {
	MarshalFrame() []TimePair
}

// Pin is the output an IR LED hangs off of. machine.Pin satisfies it as-is.
type Pin interface {
	High()
	Low()
}

// Delayer blocks the caller for d. Implementations used for carrier generation
// must not yield; see BusyWait.
type Delayer interface {
	Delay(d time.Duration)
}

// DelayFunc adapts a plain function to a Delayer.
type DelayFunc func(time.Duration)

func (f DelayFunc) Delay(d time.Duration) { f(d) }

// Carrier emits a modulated mark for d and leaves the output off afterwards.
type Carrier interface {
	Mark(d time.Duration)
}
