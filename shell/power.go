package shell

import (
	"runtime"

	"pixelshell-go/app"
	"pixelshell-go/event"
	"pixelshell-go/logx"
	"pixelshell-go/types"
)

// Power cycle:
//
//	active --idle--> sleep_requested --prepare, halt--> sleeping
//	sleeping --interrupt--> waking --all released--> active
//
// Each arrow past the idle notification is a system lane command, so the
// cycle takes three ticks and always runs ahead of pending app switches.

// OnIdle is called by the keypad when input has been unchanged for the
// idle timeout. It is ignored unless the shell is fully active.
func (s *Shell) OnIdle() {
	if s.state != types.PowerActive {
		return
	}
	logx.Info("shell", "idle, sleeping")
	s.setState(types.PowerSleepRequested)
	s.push(event.System, event.Command[app.Application]{Kind: event.PrepareSleep})
	s.push(event.System, event.Command[app.Application]{Kind: event.EnterLowPower})
}

func (s *Shell) prepareSleep() {
	if a, ok := s.halt.(Armer); ok {
		a.Arm()
	}
	s.kp.PrepareSleep()
	if a := s.current; a != nil {
		a.PrepareSleep()
	}
	s.disp.PrepareSleep()
	if err := s.disp.Flush(); err != nil {
		logx.Warn("shell", "blank flush failed", "err", err)
	}
}

// enterLowPower blocks in the halter until the wake interrupt.
func (s *Shell) enterLowPower() {
	s.setState(types.PowerSleeping)
	s.halt.EnterLowPower()
	s.setState(types.PowerWaking)
	s.push(event.System, event.Command[app.Application]{Kind: event.AwaitRelease})
}

// awaitRelease spins until every button reads released; the interrupt that
// ended the halt is usually still held down. Then everything is woken.
func (s *Shell) awaitRelease() {
	polls := 0
	for !s.kp.Raw().Empty() {
		polls++
		runtime.Gosched()
	}
	now := s.clock.NowMs()
	logx.Info("shell", "awake", "polls", polls)

	s.disp.Wake()
	s.kp.Wake()
	if a := s.current; a != nil {
		a.WakeUp(now)
	}
	s.setState(types.PowerActive)
}

func (s *Shell) setState(st types.PowerState) {
	s.state = st
	if s.conn == nil {
		return
	}
	s.conn.Publish(s.conn.NewMessage(topicPower, types.PowerStatus{State: st, TSms: s.clock.NowMs()}, true))
}
