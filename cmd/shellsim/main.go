// Command shellsim runs the shell in a terminal. The panel is drawn with
// block characters and letter keys stand in for the buttons.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"pixelshell-go/bus"
	"pixelshell-go/config"
	"pixelshell-go/display"
	"pixelshell-go/launcher"
	"pixelshell-go/logx"
	"pixelshell-go/services/heartbeat"
	"pixelshell-go/x/timex"
)

const frameEvery = 33 * time.Millisecond

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "shellsim:", err)
		os.Exit(1)
	}
}

func run() error {
	s, err := loadSettings()
	if err != nil {
		return err
	}
	lg, err := newLogger(s.LogFile, s.LogLevel, s.LogJSON)
	if err != nil {
		return err
	}
	defer func() { _ = lg.Sync() }()
	logx.SetSink(zapSink{l: lg})
	logx.SetLevel(logLevel(lg.Level()))
	defer logx.SetSink(nil)

	dev, err := s.device()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	keys, err := newHeldKeys(dev, timex.System, s.HoldMs)
	if err != nil {
		return err
	}
	wake := newWakeLine(ctx, dev.WakePin)
	fb := display.NewFramebuffer(dev.Panel.Width, dev.Panel.Height)

	b := bus.NewBus(4)
	config.Publish(b.NewConnection("config"), dev)
	hb := heartbeat.New(0)
	_ = hb.Start(ctx, b.NewConnection("heartbeat"))

	sys, err := launcher.Boot(launcher.Hardware{
		Device:  dev,
		Sampler: keys,
		Panel:   fb,
		Halter:  wake,
		Clock:   timex.System,
		Conn:    b.NewConnection("shell"),
	})
	if err != nil {
		return err
	}

	scr, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := scr.Init(); err != nil {
		return err
	}
	defer scr.Fini()

	shellDone := make(chan error, 1)
	go func() { shellDone <- sys.Shell.Run(ctx) }()
	go pollKeys(scr, keys, wake, cancel)

	v := newView(scr, fb)
	frame := time.NewTicker(frameEvery)
	defer frame.Stop()
	for {
		select {
		case <-ctx.Done():
			<-shellDone
			logx.Info("shellsim", "quit")
			return nil
		case err := <-shellDone:
			if ctx.Err() != nil {
				return nil
			}
			return err
		case <-frame.C:
			v.draw(hb.Status())
		}
	}
}

// pollKeys feeds terminal input to the sampler and the wake line until
// the user quits.
func pollKeys(scr tcell.Screen, keys *heldKeys, wake *wakeLine, quit context.CancelFunc) {
	for {
		switch ev := scr.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			scr.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				quit()
				return
			case tcell.KeyRune:
				if !wake.Press(ev.Rune()) && !keys.Press(ev.Rune()) {
					logx.Debug("shellsim", "unbound key", "rune", string(ev.Rune()))
				}
			}
		}
	}
}
