// Package app defines what a pluggable application must provide.
//
// An application is two small capabilities implemented together: a
// self rate-limited Looper and a keypad.Listener. The shell drives the
// lifecycle around them. Applications are created once at boot, never
// destroyed, and move between inactive and active many times.
package app

import "pixelshell-go/keypad"

// Looper is invoked every shell tick while the application is active.
// Implementations decide for themselves whether enough time has passed to
// do work; Timer handles the common case.
type Looper interface {
	Loop(nowMs int64)
}

type Application interface {
	Looper
	keypad.Listener

	Name() string

	// Activate is called when the application becomes current; it must
	// draw its first frame. Deactivate is called when it stops being
	// current.
	Activate()
	Deactivate()

	// PrepareSleep runs before the device halts and must leave nothing
	// half-drawn. WakeUp runs after the device resumes; time may have
	// jumped arbitrarily, so time-based state must restart from nowMs.
	PrepareSleep()
	WakeUp(nowMs int64)
}

// Scheduler is the slice of the shell an application sees: the ability to
// hand control to another application.
type Scheduler interface {
	ScheduleApplication(next Application)
}
