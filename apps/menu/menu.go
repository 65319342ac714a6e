// Package menu is the launcher screen: a scrolling list of applications.
// Up and down move the cursor (wrapping at the ends), a long press jumps
// to the first or last entry, center or right starts the selection.
package menu

import (
	"pixelshell-go/app"
	"pixelshell-go/button"
	"pixelshell-go/display"
	"pixelshell-go/keypad"
	"pixelshell-go/x/mathx"
)

const (
	rowHeight = 8
	blinkMs   = 500
)

type Entry struct {
	Label string
	App   app.Application
}

type Menu struct {
	app.Base

	sched app.Scheduler
	disp  *display.Display

	entries   []Entry
	sel       int
	cursorOn  bool
	holdBlink bool // restart the blink interval on the next loop
	launching bool
}

func New(s app.Scheduler, d *display.Display) *Menu {
	m := &Menu{sched: s, disp: d}
	m.SetInterval(blinkMs)
	return m
}

// Add appends an entry. Call at boot only.
func (m *Menu) Add(label string, a app.Application) {
	m.entries = append(m.entries, Entry{Label: label, App: a})
}

func (m *Menu) Name() string { return "menu" }

// Selected is the index of the highlighted entry.
func (m *Menu) Selected() int { return m.sel }

func (m *Menu) Activate() {
	m.launching = false
	m.cursorOn = true
	m.holdBlink = true
	m.EnableKeyEvents(keypad.KeyPress | keypad.LongKeyPress)
	m.draw()
}

func (m *Menu) Deactivate() {
	m.DisableKeyEvents(keypad.AllEvents)
}

// Loop blinks the cursor.
func (m *Menu) Loop(now int64) {
	if m.holdBlink {
		m.holdBlink = false
		m.Restart(now)
		return
	}
	m.Run(now, func(int64) {
		m.cursorOn = !m.cursorOn
		m.draw()
	})
}

func (m *Menu) OnKeyPress(b button.Button) {
	n := len(m.entries)
	if n == 0 || m.launching {
		return
	}
	switch b {
	case button.Up:
		m.sel = mathx.Wrap(m.sel-1, n)
	case button.Down:
		m.sel = mathx.Wrap(m.sel+1, n)
	case button.Center, button.Right:
		m.launching = true
		m.sched.ScheduleApplication(m.entries[m.sel].App)
		return
	default:
		return
	}
	m.showCursor()
}

func (m *Menu) OnLongKeyPress(b button.Button) {
	n := len(m.entries)
	if n == 0 || m.launching {
		return
	}
	switch b {
	case button.Up:
		m.sel = 0
	case button.Down:
		m.sel = n - 1
	default:
		return
	}
	m.showCursor()
}

func (m *Menu) WakeUp(now int64) {
	m.Base.WakeUp(now)
	m.cursorOn = true
	m.draw()
}

// showCursor redraws with the cursor visible for a full blink interval.
func (m *Menu) showCursor() {
	m.cursorOn = true
	m.holdBlink = true
	m.draw()
}

func (m *Menu) draw() {
	w, h := m.disp.Size()
	m.disp.Clear()

	visible := int(h) / rowHeight
	if visible < 1 {
		visible = 1
	}
	top := mathx.Clamp(m.sel-visible/2, 0, mathx.Clamp(len(m.entries)-visible, 0, len(m.entries)))
	for row := 0; row < visible && top+row < len(m.entries); row++ {
		i := top + row
		y := int16(row * rowHeight)
		fg := display.On
		if i == m.sel && m.cursorOn {
			m.disp.FillRect(0, y, w, rowHeight, display.On)
			fg = display.Off
		}
		m.disp.DrawText(2, y+rowHeight-2, m.entries[i].Label, fg)
	}
}
