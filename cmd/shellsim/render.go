package main

import (
	"github.com/gdamore/tcell/v2"

	"pixelshell-go/display"
	"pixelshell-go/services/heartbeat"
	"pixelshell-go/x/conv"
)

const help = "a w s x d: keys  A W S X D: long  z: wake  esc: quit"

var (
	stylePanel = tcell.StyleDefault.Foreground(tcell.ColorAqua).Background(tcell.ColorBlack)
	styleOff   = tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorBlack)
	styleText  = tcell.StyleDefault
)

// view paints the framebuffer two pixel rows per terminal cell inside a
// box, with a status line and key help underneath.
type view struct {
	scr  tcell.Screen
	fb   *display.Framebuffer
	w, h int
	px   []bool
}

func newView(scr tcell.Screen, fb *display.Framebuffer) *view {
	w, h := fb.Size()
	return &view{scr: scr, fb: fb, w: int(w), h: int(h)}
}

func (v *view) pixel(x, y int) bool {
	if y >= v.h {
		return false
	}
	return v.px[y*v.w+x]
}

func (v *view) draw(st heartbeat.Status) {
	var on bool
	v.px, on = v.fb.Snapshot(v.px)
	rows := (v.h + 1) / 2

	v.scr.Clear()
	box := styleOff
	if on {
		box = stylePanel
	}
	v.border(v.w+2, rows+2, box)

	for cy := 0; cy < rows; cy++ {
		for x := 0; x < v.w; x++ {
			r := ' '
			if on {
				r = halfBlock(v.pixel(x, 2*cy), v.pixel(x, 2*cy+1))
			}
			v.scr.SetContent(x+1, cy+1, r, nil, stylePanel)
		}
	}

	v.text(0, rows+2, statusLine(st))
	v.text(0, rows+3, help)
	v.scr.Show()
}

func (v *view) border(w, h int, st tcell.Style) {
	for x := 1; x < w-1; x++ {
		v.scr.SetContent(x, 0, '─', nil, st)
		v.scr.SetContent(x, h-1, '─', nil, st)
	}
	for y := 1; y < h-1; y++ {
		v.scr.SetContent(0, y, '│', nil, st)
		v.scr.SetContent(w-1, y, '│', nil, st)
	}
	v.scr.SetContent(0, 0, '┌', nil, st)
	v.scr.SetContent(w-1, 0, '┐', nil, st)
	v.scr.SetContent(0, h-1, '└', nil, st)
	v.scr.SetContent(w-1, h-1, '┘', nil, st)
}

func (v *view) text(x, y int, s string) {
	for _, r := range s {
		v.scr.SetContent(x, y, r, nil, styleText)
		x++
	}
}

func halfBlock(top, bottom bool) rune {
	switch {
	case top && bottom:
		return '█'
	case top:
		return '▀'
	case bottom:
		return '▄'
	default:
		return ' '
	}
}

func statusLine(st heartbeat.Status) string {
	power := string(st.Power)
	if power == "" {
		power = "-"
	}
	app := st.App
	if app == "" {
		app = "-"
	}
	return "power=" + power + " app=" + app + " beats=" + conv.Itoa(st.Beats)
}
