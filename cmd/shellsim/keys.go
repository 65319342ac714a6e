package main

import (
	"sync"
	"unicode"

	"pixelshell-go/button"
	"pixelshell-go/config"
	"pixelshell-go/x/timex"
)

// heldKeys turns terminal key presses into a button sampler. Terminals
// report no key-up, so each press holds its button for a fixed time and
// auto-repeat extends it. An upper-case key holds for the long-press time.
type heldKeys struct {
	clock timex.Clock
	hold  int64
	long  int64
	runes map[rune]button.Button

	mu    sync.Mutex
	until [button.Count]int64
}

func newHeldKeys(d config.Device, clock timex.Clock, holdMs int64) (*heldKeys, error) {
	pins, err := d.Pins()
	if err != nil {
		return nil, err
	}
	k := &heldKeys{
		clock: clock,
		hold:  holdMs,
		long:  d.LongPressMs + holdMs,
		runes: make(map[rune]button.Button, button.Count),
	}
	for i, p := range pins {
		r := []rune(p)
		if len(r) == 1 {
			k.runes[unicode.ToLower(r[0])] = button.Button(i)
		}
	}
	return k, nil
}

// Press reports whether r is bound to a button.
func (k *heldKeys) Press(r rune) bool {
	d := k.hold
	if unicode.IsUpper(r) {
		d = k.long
	}
	b, ok := k.runes[unicode.ToLower(r)]
	if !ok {
		return false
	}
	now := k.clock.NowMs()
	k.mu.Lock()
	if until := now + d; until > k.until[b] {
		k.until[b] = until
	}
	k.mu.Unlock()
	return true
}

func (k *heldKeys) Read() button.Set {
	now := k.clock.NowMs()
	k.mu.Lock()
	defer k.mu.Unlock()
	var s button.Set
	for i, u := range k.until {
		if u > now {
			s = s.With(button.Button(i))
		}
	}
	return s
}
