package main

import (
	"context"
	"unicode"
)

// wakeLine stands in for the wake pin. EnterLowPower parks the shell
// until the wake key is pressed or the simulator quits.
type wakeLine struct {
	key  rune
	ch   chan struct{}
	done <-chan struct{}
}

func newWakeLine(ctx context.Context, pin string) *wakeLine {
	w := &wakeLine{ch: make(chan struct{}, 1), done: ctx.Done()}
	if r := []rune(pin); len(r) == 1 {
		w.key = unicode.ToLower(r[0])
	}
	return w
}

// Press reports whether r is the wake key.
func (w *wakeLine) Press(r rune) bool {
	if w.key == 0 || unicode.ToLower(r) != w.key {
		return false
	}
	select {
	case w.ch <- struct{}{}:
	default:
	}
	return true
}

// Arm drops presses from before sleep was prepared.
func (w *wakeLine) Arm() {
	select {
	case <-w.ch:
	default:
	}
}

func (w *wakeLine) EnterLowPower() {
	select {
	case <-w.ch:
	case <-w.done:
	}
}
