package irtx

import (
	"time"
)

// TxConfig is used to configure a TxDevice
type TxConfig struct {
	// Carrier modulates marks. Required; NewTxDevice panics without one.
	Carrier Carrier
	// Delayer waits out spaces and the guard interval. Defaults to BusyWait.
	Delayer Delayer
	// Guard is the silence after every frame. Defaults to DefaultGuard.
	Guard time.Duration
}

// TxDevice plays frames out through a Carrier. It is strictly sequential:
// every call blocks until the last space (and guard, for frames) has elapsed,
// and the device must not be shared between goroutines or used from an
// interrupt handler.
type TxDevice struct {
	carrier Carrier
	wait    Delayer
	guard   time.Duration
}

func NewTxDevice(cfg TxConfig) *TxDevice {
	if cfg.Carrier == nil {
		panic("irtx: TxConfig.Carrier is nil")
	}
	if cfg.Delayer == nil {
		cfg.Delayer = BusyWait
	}
	if cfg.Guard <= 0 {
		cfg.Guard = DefaultGuard
	}
	return &TxDevice{
		carrier: cfg.Carrier,
		wait:    cfg.Delayer,
		guard:   cfg.Guard,
	}
}

// Guard reports the silence appended after each frame.
func (tx *TxDevice) Guard() time.Duration {
	return tx.guard
}

func (tx *TxDevice) SendPair(pair TimePair) {
	tx.carrier.Mark(pair.Mark())
	tx.wait.Delay(pair.Space())
}

// SendPairs plays pairs in order. No guard is added.
func (tx *TxDevice) SendPairs(pairs ...TimePair) {
	for _, p := range pairs {
		tx.SendPair(p)
	}
}

// SendFrame plays a whole frame followed by the guard interval.
func (tx *TxDevice) SendFrame(fm FrameMarshaller) {
	tx.SendPairs(fm.MarshalFrame()...)
	tx.wait.Delay(tx.guard)
}

func (tx *TxDevice) SendFrames(fms ...FrameMarshaller) {
	for _, fm := range fms {
		tx.SendFrame(fm)
	}
}

// Duration is the nominal length of pairs, marks and spaces included.
func Duration(pairs []TimePair) time.Duration {
	var total time.Duration
	for _, p := range pairs {
		total += p.Mark() + p.Space()
	}
	return total
}
