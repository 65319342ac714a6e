package app

// Timer rate-limits an application's update. An interval of 0 runs the
// update on every tick.
type Timer struct {
	interval int64
	last     int64
	started  bool
}

func (t *Timer) SetInterval(ms int64) {
	if ms < 0 {
		ms = 0
	}
	t.interval = ms
}

func (t *Timer) Interval() int64 { return t.interval }

// Due reports whether an update should run at now, and if so records now
// as the last run.
func (t *Timer) Due(now int64) bool {
	if t.started && t.interval > 0 && now-t.last < t.interval {
		return false
	}
	t.last = now
	t.started = true
	return true
}

// Run calls update if the interval has elapsed since the previous run.
func (t *Timer) Run(now int64, update func(now int64)) {
	if t.Due(now) {
		update(now)
	}
}

// Early runs update immediately, out of schedule, and restarts the
// interval from now.
func (t *Timer) Early(now int64, update func(now int64)) {
	t.last = now
	t.started = true
	update(now)
}

// Reset makes the next tick due immediately, forgetting the previous run.
func (t *Timer) Reset() { t.started = false }

// Restart begins a fresh interval at now without running.
func (t *Timer) Restart(now int64) {
	t.last = now
	t.started = true
}
