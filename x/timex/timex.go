package timex

import "time"

// Clock yields a monotonic millisecond count. The epoch is arbitrary;
// only differences are meaningful.
type Clock interface {
	NowMs() int64
}

// System is the process clock. It reads Go's monotonic time so wall-clock
// adjustments never appear as jumps.
var System Clock = systemClock{start: time.Now()}

type systemClock struct{ start time.Time }

func (c systemClock) NowMs() int64 { return time.Since(c.start).Milliseconds() }

// Manual is a clock advanced by hand. Tests and simulators drive it.
type Manual struct{ ms int64 }

func NewManual(startMs int64) *Manual { return &Manual{ms: startMs} }

func (m *Manual) NowMs() int64 { return m.ms }

// Advance moves the clock forward by d milliseconds.
func (m *Manual) Advance(d int64) { m.ms += d }

// Set jumps the clock to ms.
func (m *Manual) Set(ms int64) { m.ms = ms }
