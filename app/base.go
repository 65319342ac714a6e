package app

import (
	"pixelshell-go/button"
	"pixelshell-go/keypad"
)

// Base supplies defaults for everything an Application needs except Name,
// Activate and Loop. Embed it and override what matters. Key delivery
// starts disabled.
type Base struct {
	Timer
	events keypad.Events
}

func (b *Base) KeyEvents() keypad.Events         { return b.events }
func (b *Base) EnableKeyEvents(e keypad.Events)  { b.events |= e }
func (b *Base) DisableKeyEvents(e keypad.Events) { b.events &^= e }
func (b *Base) OnKeyPress(button.Button)         {}
func (b *Base) OnLongKeyPress(button.Button)     {}
func (b *Base) OnKeyRelease(button.Button)       {}
func (b *Base) Deactivate()                      {}
func (b *Base) PrepareSleep()                    {}
func (b *Base) WakeUp(nowMs int64)               { b.Timer.Restart(nowMs) }
