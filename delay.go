package irtx

import "time"

// BusyWait spins until d has elapsed. time.Sleep hands the core to the
// scheduler, and on most targets the wakeup jitter is larger than a carrier
// half period, so waits inside a frame never sleep.
var BusyWait Delayer = DelayFunc(busyWait)

func busyWait(d time.Duration) {
	if d <= 0 {
		return
	}
	start := time.Now()
	for time.Since(start) < d {
	}
}

// Sleep is a Delayer for waits that tolerate jitter, such as the guard interval.
var Sleep Delayer = DelayFunc(time.Sleep)
