package keypad

import "pixelshell-go/button"

// Events selects which key notifications a listener receives.
type Events uint8

const (
	KeyPress Events = 1 << iota
	LongKeyPress
	KeyRelease

	NoEvents  Events = 0
	AllEvents        = KeyPress | LongKeyPress | KeyRelease
)

func (e Events) Has(x Events) bool { return e&x == x }

// Listener receives key notifications. KeyEvents is consulted before every
// dispatch, so a listener may change its selection at any time.
type Listener interface {
	KeyEvents() Events
	OnKeyPress(b button.Button)
	OnLongKeyPress(b button.Button)
	OnKeyRelease(b button.Button)
}

// IdleListener is told once per idle period that input has not changed for
// the idle timeout.
type IdleListener interface {
	OnIdle()
}
