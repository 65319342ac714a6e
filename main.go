package main

import (
	"context"
	"time"

	"pixelshell-go/bus"
	"pixelshell-go/config"
	"pixelshell-go/launcher"
	"pixelshell-go/logx"
	"pixelshell-go/platform"
	"pixelshell-go/services/heartbeat"
)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	logx.Info("main", "boot", "board", platform.BoardName)

	brd, err := platform.Open()
	if err != nil {
		fatal("board bring-up failed", err)
	}

	ctx := context.Background()
	b := bus.NewBus(4)
	config.Publish(b.NewConnection("config"), brd.Device)
	_ = heartbeat.New(0).Start(ctx, b.NewConnection("heartbeat"))

	sys, err := launcher.Boot(launcher.Hardware{
		Device:  brd.Device,
		Sampler: brd.Keys,
		Panel:   brd.Panel,
		Halter:  brd.Halter,
		Conn:    b.NewConnection("shell"),
	})
	if err != nil {
		fatal("launcher failed", err)
	}

	if err := sys.Shell.Run(ctx); err != nil {
		fatal("shell stopped", err)
	}
}

// fatal logs and parks forever; there is nothing to return to on a board.
func fatal(msg string, err error) {
	logx.Error("main", msg, "err", err)
	for {
		time.Sleep(time.Hour)
	}
}
