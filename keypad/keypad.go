// Package keypad turns periodic button samples into key notifications.
//
// Debouncing is done by comparing whole discrete samples taken once per
// tick rather than by watching raw pin edges. Each Tick dispatches, in this
// order: the idle notification, every press, every long press, every
// release. Within a group buttons are visited in ordinal order.
package keypad

import (
	"pixelshell-go/button"
	"pixelshell-go/logx"
	"pixelshell-go/x/timex"
)

const (
	DefaultIdleTimeoutMs = 15000
	DefaultLongPressMs   = 300
)

// Sampler produces the current button state.
type Sampler interface {
	Read() button.Set
}

type Keypad struct {
	src   Sampler
	clock timex.Clock

	idleTimeout int64
	longPress   int64

	last      button.Set
	pressedAt [button.Count]int64
	longFired button.Set

	idleStart int64
	idleArmed bool

	listener Listener
	idle     IdleListener
}

type Option func(*Keypad)

func WithClock(c timex.Clock) Option { return func(k *Keypad) { k.clock = c } }

// WithIdleTimeout sets how long input must stay unchanged before OnIdle.
func WithIdleTimeout(ms int64) Option { return func(k *Keypad) { k.idleTimeout = ms } }

// WithLongPress sets how long a button must be held before OnLongKeyPress.
func WithLongPress(ms int64) Option { return func(k *Keypad) { k.longPress = ms } }

func New(src Sampler, opts ...Option) *Keypad {
	k := &Keypad{
		src:         src,
		clock:       timex.System,
		idleTimeout: DefaultIdleTimeoutMs,
		longPress:   DefaultLongPressMs,
	}
	for _, o := range opts {
		o(k)
	}
	k.rearm(k.clock.NowMs())
	return k
}

func (k *Keypad) SetListener(l Listener) { k.listener = l }
func (k *Keypad) ClearListener()         { k.listener = nil }
func (k *Keypad) Listener() Listener     { return k.listener }

// SetIdleListener installs the power-management hook. Set once at boot.
func (k *Keypad) SetIdleListener(l IdleListener) { k.idle = l }

// State is the sample seen by the most recent Tick.
func (k *Keypad) State() button.Set { return k.last }

// Raw samples the buttons without updating state or dispatching.
func (k *Keypad) Raw() button.Set { return k.src.Read() }

// Tick samples once and dispatches everything that changed.
func (k *Keypad) Tick() {
	now := k.clock.NowMs()
	cur := k.src.Read()
	old := k.last
	k.last = cur

	if old != cur {
		k.idleStart = now
		k.idleArmed = true
	} else if k.idleArmed && now-k.idleStart > k.idleTimeout {
		k.idleArmed = false
		logx.Debug("keypad", "idle", "after_ms", now-k.idleStart)
		if k.idle != nil {
			k.idle.OnIdle()
		}
	}

	pressed := cur.NotIn(old)
	for _, b := range button.All {
		if !pressed.Has(b) {
			continue
		}
		k.pressedAt[b] = now
		k.longFired = k.longFired.Without(b)
		if l := k.listener; l != nil && l.KeyEvents().Has(KeyPress) {
			l.OnKeyPress(b)
		}
	}

	// Held buttons that have not yet reported a long press this hold.
	for _, b := range button.All {
		if !cur.NotIn(k.longFired).Has(b) || now-k.pressedAt[b] <= k.longPress {
			continue
		}
		k.longFired = k.longFired.With(b)
		if l := k.listener; l != nil && l.KeyEvents().Has(LongKeyPress) {
			l.OnLongKeyPress(b)
		}
	}

	released := old.NotIn(cur)
	for _, b := range button.All {
		if !released.Has(b) {
			continue
		}
		k.longFired = k.longFired.Without(b)
		if l := k.listener; l != nil && l.KeyEvents().Has(KeyRelease) {
			l.OnKeyRelease(b)
		}
	}
}

// PrepareSleep is called before the device halts.
func (k *Keypad) PrepareSleep() {
	logx.Debug("keypad", "prepare sleep", "held", k.last)
}

// Wake restarts idle and long-press timing from now. Time may have jumped
// arbitrarily while halted.
func (k *Keypad) Wake() {
	k.rearm(k.clock.NowMs())
}

func (k *Keypad) rearm(now int64) {
	k.idleStart = now
	k.idleArmed = true
	for i := range k.pressedAt {
		k.pressedAt[i] = now
	}
}
