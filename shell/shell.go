// Package shell runs one application at a time on top of the keypad and
// the display.
//
// The shell is driven by Tick. A tick either executes exactly one deferred
// command (system lane first) or, when none is pending, samples the keypad
// and advances the current application's loop. Every tick ends with a
// display flush. Application switches and power transitions are always
// deferred commands, so nothing ever switches underneath a running
// callback.
package shell

import (
	"context"
	"runtime"
	"time"

	"pixelshell-go/app"
	"pixelshell-go/bus"
	"pixelshell-go/display"
	"pixelshell-go/errcode"
	"pixelshell-go/event"
	"pixelshell-go/keypad"
	"pixelshell-go/logx"
	"pixelshell-go/types"
	"pixelshell-go/x/timex"
)

var (
	topicPower = bus.T("shell", "power")
	topicApp   = bus.T("shell", "app")
)

// Halter suspends the processor until an external interrupt arrives.
type Halter interface {
	EnterLowPower()
}

// Armer is implemented by halters whose wake source latches. Arm is called
// on the prepare-sleep tick; a wake edge after that ends the next halt at
// once instead of being lost.
type Armer interface {
	Arm()
}

// HaltFunc adapts a plain function to Halter.
type HaltFunc func()

func (f HaltFunc) EnterLowPower() { f() }

type Config struct {
	// TickMs is the Run period. 0 ticks as fast as possible, yielding to
	// the scheduler between ticks.
	TickMs int64
}

// Deps are the collaborators the shell orchestrates. Keypad, Display and
// Halter are required; Clock defaults to timex.System; Conn is optional and
// enables status publishing.
type Deps struct {
	Keypad  *keypad.Keypad
	Display *display.Display
	Halter  Halter
	Clock   timex.Clock
	Conn    *bus.Connection
}

type Shell struct {
	kp    *keypad.Keypad
	disp  *display.Display
	halt  Halter
	clock timex.Clock
	conn  *bus.Connection

	period time.Duration
	queue  *event.Queue[app.Application]

	current app.Application
	state   types.PowerState
}

var _ app.Scheduler = (*Shell)(nil)

func New(cfg Config, d Deps) (*Shell, error) {
	switch {
	case d.Keypad == nil:
		return nil, &errcode.E{C: errcode.InvalidParams, Op: "shell.new", Msg: "keypad"}
	case d.Display == nil:
		return nil, &errcode.E{C: errcode.InvalidParams, Op: "shell.new", Msg: "display"}
	case d.Halter == nil:
		return nil, &errcode.E{C: errcode.InvalidParams, Op: "shell.new", Msg: "halter"}
	case cfg.TickMs < 0:
		return nil, &errcode.E{C: errcode.InvalidParams, Op: "shell.new", Msg: "tick_ms"}
	}
	if d.Clock == nil {
		d.Clock = timex.System
	}
	s := &Shell{
		kp:     d.Keypad,
		disp:   d.Display,
		halt:   d.Halter,
		clock:  d.Clock,
		conn:   d.Conn,
		period: time.Duration(cfg.TickMs) * time.Millisecond,
		queue:  event.NewQueue[app.Application](),
	}
	s.kp.SetIdleListener(s)
	s.setState(types.PowerActive)
	s.publishApp()
	return s, nil
}

// Current is the active application, nil while a switch is half done.
func (s *Shell) Current() app.Application { return s.current }

func (s *Shell) State() types.PowerState { return s.state }

// Pending reports how many commands wait in lane.
func (s *Shell) Pending(lane event.Lane) int { return s.queue.Pending(lane) }

// ScheduleApplication queues a switch to next. The switch completes on
// later ticks: one to deactivate the current application, if any, and one
// to activate next.
func (s *Shell) ScheduleApplication(next app.Application) {
	if next == nil {
		logx.Warn("shell", "schedule nil application")
		return
	}
	if s.current != nil {
		s.push(event.Application, event.Command[app.Application]{Kind: event.Deactivate, Target: s.current})
	}
	s.push(event.Application, event.Command[app.Application]{Kind: event.Activate, Target: next})
}

// Tick advances the whole system by one step.
func (s *Shell) Tick() {
	if c, ok := s.queue.Pop(); ok {
		s.execute(c)
	} else {
		s.kp.Tick()
		if a := s.current; a != nil {
			a.Loop(s.clock.NowMs())
		}
	}
	if err := s.disp.Flush(); err != nil {
		logx.Warn("shell", "flush failed", "err", err)
	}
}

// Run ticks until ctx is done.
func (s *Shell) Run(ctx context.Context) error {
	logx.Info("shell", "running", "tick_ms", s.period.Milliseconds())

	var tick *time.Ticker
	if s.period > 0 {
		tick = time.NewTicker(s.period)
		defer tick.Stop()
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		s.Tick()
		if tick == nil {
			runtime.Gosched()
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick.C:
		}
	}
}

func (s *Shell) push(lane event.Lane, c event.Command[app.Application]) {
	if err := s.queue.Push(lane, c); err != nil {
		logx.Error("shell", "command dropped", "err", err)
	}
}

func (s *Shell) execute(c event.Command[app.Application]) {
	logx.Debug("shell", "execute", "kind", c.Kind)
	switch c.Kind {
	case event.PrepareSleep:
		s.prepareSleep()
	case event.EnterLowPower:
		s.enterLowPower()
	case event.AwaitRelease:
		s.awaitRelease()
	case event.Deactivate:
		s.deactivate(c.Target)
	case event.Activate:
		s.activate(c.Target)
	}
}

func (s *Shell) deactivate(a app.Application) {
	s.current = nil
	s.kp.ClearListener()
	s.publishApp()
	if a != nil {
		logx.Info("shell", "deactivate", "app", a.Name())
		a.Deactivate()
	}
}

func (s *Shell) activate(a app.Application) {
	if a == nil {
		return
	}
	logx.Info("shell", "activate", "app", a.Name())
	s.current = a
	s.publishApp()
	a.Activate()
	s.kp.SetListener(a)
}

func (s *Shell) publishApp() {
	if s.conn == nil {
		return
	}
	st := types.AppStatus{TSms: s.clock.NowMs()}
	if s.current != nil {
		st.Name = s.current.Name()
	}
	s.conn.Publish(s.conn.NewMessage(topicApp, st, true))
}
