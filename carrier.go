package irtx

import "time"

// Clock16MHz is the host clock the stock compensation constant was measured on.
const Clock16MHz = 16_000_000

// Compensation describes how long to wait after each pin edge so that one
// edge plus its wait lasts a carrier half period.
type Compensation struct {
	// EdgeDelay is waited after every High and Low. Zero means raw toggles:
	// the pin writes alone are assumed to take a half period each.
	EdgeDelay time.Duration
}

// CompensationFor picks the edge delay for a host clock. At 16MHz a pin write
// takes about 3us, so 10us tops each half cycle up to 13us. Slower clocks spend
// the whole half period in the write itself and get no extra delay.
func CompensationFor(clockHz uint32) Compensation {
	switch clockHz {
	case Clock16MHz:
		return Compensation{EdgeDelay: 10 * time.Microsecond}
	}
	return Compensation{}
}

// EdgeCost is the time a single pin write is assumed to take.
func (c Compensation) EdgeCost() time.Duration {
	if c.EdgeDelay >= CarrierHalfPeriod {
		return 0
	}
	return CarrierHalfPeriod - c.EdgeDelay
}

// BitBangCarrier synthesizes the 38kHz carrier by toggling a plain GPIO pin.
// It blocks for the whole mark and is not safe for concurrent use; the pin
// belongs to whoever is inside Mark.
type BitBangCarrier struct {
	pin  Pin
	wait Delayer
	comp Compensation
}

func NewBitBangCarrier(pin Pin, wait Delayer, comp Compensation) *BitBangCarrier {
	return &BitBangCarrier{
		pin:  pin,
		wait: wait,
		comp: comp,
	}
}

// Mark emits whole carrier cycles while at least one period of d remains,
// then a trailing partial cycle if one fits inside what is left. The toggles
// are cut short, not the mark: any remainder is held low, so Mark blocks for
// exactly d.
func (c *BitBangCarrier) Mark(d time.Duration) {
	for d >= CarrierPeriod {
		c.cycle(c.comp.EdgeDelay)
		d -= CarrierPeriod
	}

	// high half, then whatever is left as the low half
	cost := c.comp.EdgeCost()
	if d >= CarrierHalfPeriod+cost {
		c.cycle(d - CarrierHalfPeriod - cost)
	} else {
		c.wait.Delay(d)
	}
}

func (c *BitBangCarrier) cycle(lowWait time.Duration) {
	c.pin.High()
	c.wait.Delay(c.comp.EdgeDelay)
	c.pin.Low()
	c.wait.Delay(lowWait)
}
