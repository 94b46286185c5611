package irtx_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparques/irtx"
	"github.com/sparques/irtx/internal/irtest"
)

const us = time.Microsecond

// newBitBang wires a BitBangCarrier to a recording pin whose writes cost
// exactly what the compensation assumes.
func newBitBang(clockHz uint32) (*irtx.BitBangCarrier, *irtest.Pin, *irtest.Clock) {
	clk := &irtest.Clock{}
	comp := irtx.CompensationFor(clockHz)
	pin := &irtest.Pin{Clock: clk, EdgeCost: comp.EdgeCost()}
	return irtx.NewBitBangCarrier(pin, clk.Silent(), comp), pin, clk
}

func TestCompensationFor(t *testing.T) {
	tests := []struct {
		name      string
		clockHz   uint32
		edgeDelay time.Duration
		edgeCost  time.Duration
	}{
		{"16MHz", irtx.Clock16MHz, 10 * us, 3 * us},
		{"8MHz", 8_000_000, 0, 13 * us},
		{"unknown", 0, 0, 13 * us},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comp := irtx.CompensationFor(tt.clockHz)
			assert.Equal(t, tt.edgeDelay, comp.EdgeDelay)
			assert.Equal(t, tt.edgeCost, comp.EdgeCost())
		})
	}

	assert.Equal(t, time.Duration(0), irtx.Compensation{EdgeDelay: 20 * us}.EdgeCost())
}

func TestCarrierCycles(t *testing.T) {
	c, pin, clk := newBitBang(irtx.Clock16MHz)
	c.Mark(1800 * us)

	rising := pin.Rising()
	require.Len(t, rising, 69)
	for i := 1; i < len(rising); i++ {
		assert.Equal(t, irtx.CarrierPeriod, rising[i]-rising[i-1], "cycle %d", i)
	}
	// high half is one write plus the edge delay
	assert.Equal(t, irtx.CarrierHalfPeriod, pin.Edges[1].At-pin.Edges[0].At)
	// the 6us left over is held low
	assert.Equal(t, 1800*us, clk.Now)
	assert.False(t, pin.Level())
}

func TestCarrierPartialCycle(t *testing.T) {
	c, pin, clk := newBitBang(irtx.Clock16MHz)
	c.Mark(72 * us)

	// two full cycles, then 20us: 13 high and 7 low
	assert.Len(t, pin.Rising(), 3)
	assert.Equal(t, 72*us, clk.Now)
	assert.False(t, pin.Level())
}

func TestCarrierBlocksForWholeMark(t *testing.T) {
	for _, clockHz := range []uint32{irtx.Clock16MHz, 8_000_000} {
		for d := time.Duration(0); d <= 2000*us; d += 7 * us {
			c, pin, clk := newBitBang(clockHz)
			c.Mark(d)
			assert.Equal(t, d, clk.Now, "clock %d mark %v", clockHz, d)
			assert.False(t, pin.Level())

			// toggling stops short of the mark's end, never past it
			if rising := pin.Rising(); len(rising) > 0 {
				assert.LessOrEqual(t, rising[len(rising)-1]+irtx.CarrierHalfPeriod, d)
			}
		}
	}
}

func TestCarrierShortMarkHeldLow(t *testing.T) {
	c, pin, clk := newBitBang(irtx.Clock16MHz)
	c.Mark(300 * us)

	// 11 cycles is 286us; 14us is too short for another high half
	assert.Len(t, pin.Rising(), 11)
	assert.Equal(t, 300*us, clk.Now)
	assert.False(t, pin.Level())
}

func TestCarrierRawToggles(t *testing.T) {
	c, pin, clk := newBitBang(8_000_000)
	c.Mark(1200 * us)

	// 46 cycles is 1196us, the 4us left over is held low
	assert.Len(t, pin.Rising(), 46)
	assert.Equal(t, 1200*us, clk.Now)
}

func TestCarrierZeroMark(t *testing.T) {
	c, pin, clk := newBitBang(irtx.Clock16MHz)
	c.Mark(0)
	assert.Empty(t, pin.Edges)
	assert.Zero(t, clk.Now)
}

func TestBusyWait(t *testing.T) {
	start := time.Now()
	irtx.BusyWait.Delay(200 * us)
	assert.GreaterOrEqual(t, time.Since(start), 200*us)

	start = time.Now()
	irtx.BusyWait.Delay(-time.Second)
	assert.Less(t, time.Since(start), time.Second)
}
