// Package splash is the boot animation. It runs for a fixed number of
// frames, or until any key is pressed, then hands over to Next.
package splash

import (
	"pixelshell-go/app"
	"pixelshell-go/button"
	"pixelshell-go/display"
	"pixelshell-go/keypad"
	"pixelshell-go/x/mathx"
)

const (
	FrameMs = 60
	Frames  = 32

	title = "pixelshell"
)

// logo is an 8x8 heart.
var logo = display.Bitmap{W: 8, H: 8, Bits: []byte{
	0b01100110,
	0b11111111,
	0b11111111,
	0b11111111,
	0b01111110,
	0b00111100,
	0b00011000,
	0b00000000,
}}

type Splash struct {
	app.Base

	sched app.Scheduler
	disp  *display.Display

	// Next is scheduled when the animation ends.
	Next app.Application

	frame   int
	leaving bool
}

func New(s app.Scheduler, d *display.Display) *Splash {
	sp := &Splash{sched: s, disp: d}
	sp.SetInterval(FrameMs)
	return sp
}

func (s *Splash) Name() string { return "splash" }

// Frame is the index of the frame on screen.
func (s *Splash) Frame() int { return s.frame }

func (s *Splash) Activate() {
	s.frame = 0
	s.leaving = false
	s.Reset()
	s.EnableKeyEvents(keypad.KeyPress)
	s.draw()
}

func (s *Splash) Deactivate() {
	s.DisableKeyEvents(keypad.AllEvents)
}

func (s *Splash) Loop(now int64) {
	s.Run(now, func(int64) {
		if s.frame+1 >= Frames {
			s.leave()
			return
		}
		s.frame++
		s.draw()
	})
}

func (s *Splash) OnKeyPress(button.Button) { s.leave() }

func (s *Splash) WakeUp(now int64) {
	s.Base.WakeUp(now)
	s.draw()
}

// leave schedules Next once; keys pressed while the switch is queued are
// ignored.
func (s *Splash) leave() {
	if s.leaving || s.Next == nil {
		return
	}
	s.leaving = true
	s.sched.ScheduleApplication(s.Next)
}

func (s *Splash) draw() {
	w, h := s.disp.Size()
	s.disp.Clear()

	// The logo bounces between the left and right edge.
	span := int(w - logo.W)
	if span < 1 {
		span = 1
	}
	pos := mathx.Wrap(s.frame*4, 2*span)
	x := int16(span - mathx.Abs(pos-span))
	s.disp.DrawBitmap(x, h/2-logo.H, logo, display.On)

	tx := (w - s.disp.TextWidth(title)) / 2
	s.disp.DrawText(mathx.Clamp(tx, 0, w), h/2+8, title, display.On)
}
