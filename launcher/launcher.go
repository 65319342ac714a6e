// Package launcher wires a board's hardware to the shell and the fixed
// application set.
package launcher

import (
	"tinygo.org/x/drivers"

	"pixelshell-go/app"
	"pixelshell-go/apps/menu"
	"pixelshell-go/apps/snake"
	"pixelshell-go/apps/splash"
	"pixelshell-go/bus"
	"pixelshell-go/config"
	"pixelshell-go/display"
	"pixelshell-go/errcode"
	"pixelshell-go/keypad"
	"pixelshell-go/logx"
	"pixelshell-go/shell"
	"pixelshell-go/x/timex"
)

// Hardware is everything Boot needs from a board or a simulator.
type Hardware struct {
	Device  config.Device
	Sampler keypad.Sampler
	Panel   drivers.Displayer
	Halter  shell.Halter
	Clock   timex.Clock     // nil: timex.System
	Conn    *bus.Connection // optional status telemetry
}

// Apps is the fixed application set.
type Apps struct {
	Splash *splash.Splash
	Menu   *menu.Menu
	Snake  *snake.Snake
}

// ByName finds an application by its Name.
func (a Apps) ByName(name string) (app.Application, bool) {
	for _, x := range []app.Application{a.Splash, a.Menu, a.Snake} {
		if x.Name() == name {
			return x, true
		}
	}
	return nil, false
}

type System struct {
	Shell   *shell.Shell
	Keypad  *keypad.Keypad
	Display *display.Display
	Apps    Apps
}

// Boot builds the system and schedules the configured initial application.
// Nothing runs until the caller starts ticking the shell.
func Boot(hw Hardware) (*System, error) {
	if hw.Sampler == nil || hw.Panel == nil {
		return nil, &errcode.E{C: errcode.InvalidParams, Op: "launcher.boot", Msg: "sampler and panel required"}
	}
	clock := hw.Clock
	if clock == nil {
		clock = timex.System
	}

	opts := []keypad.Option{keypad.WithClock(clock)}
	if hw.Device.IdleMs > 0 {
		opts = append(opts, keypad.WithIdleTimeout(hw.Device.IdleMs))
	}
	if hw.Device.LongPressMs > 0 {
		opts = append(opts, keypad.WithLongPress(hw.Device.LongPressMs))
	}
	kp := keypad.New(hw.Sampler, opts...)
	disp := display.New(hw.Panel)

	sh, err := shell.New(shell.Config{TickMs: hw.Device.TickMs}, shell.Deps{
		Keypad:  kp,
		Display: disp,
		Halter:  hw.Halter,
		Clock:   clock,
		Conn:    hw.Conn,
	})
	if err != nil {
		return nil, err
	}

	apps := Apps{
		Splash: splash.New(sh, disp),
		Menu:   menu.New(sh, disp),
		Snake:  snake.New(sh, disp),
	}
	apps.Splash.Next = apps.Menu
	apps.Menu.Add("Snake", apps.Snake)
	apps.Menu.Add("About", apps.Splash)
	apps.Snake.Menu = apps.Menu

	initial := hw.Device.InitialApp
	if initial == "" {
		initial = config.DefaultInitialApp
	}
	first, ok := apps.ByName(initial)
	if !ok {
		return nil, &errcode.E{C: errcode.NotConfigured, Op: "launcher.boot", Msg: "initial app " + initial}
	}
	sh.ScheduleApplication(first)

	logx.Info("launcher", "booted", "board", hw.Device.Board, "first", first.Name())
	return &System{Shell: sh, Keypad: kp, Display: disp, Apps: apps}, nil
}
