// Command boardtest is a bring-up check for a board's buttons and panel.
// It shows the live button state as a cross of squares and cycles panel
// power every few seconds. Runs without the shell.
package main

import (
	"time"

	"pixelshell-go/button"
	"pixelshell-go/display"
	"pixelshell-go/logx"
	"pixelshell-go/platform"
)

// ---------- Configuration ----------

const (
	pollEvery = 20 * time.Millisecond

	// Panel power cycling
	cycleEvery = 10 * time.Second
	dwellOff   = time.Second

	square = 10
	gap    = 2
)

// Square offsets in cells, indexed by button ordinal.
var layout = [button.Count][2]int16{
	button.Left:   {0, 1},
	button.Up:     {1, 0},
	button.Center: {1, 1},
	button.Down:   {1, 2},
	button.Right:  {2, 1},
}

// ---------- Drawing ----------

func drawKeys(d *display.Display, held button.Set) {
	w, h := d.Size()
	pitch := int16(square + gap)
	ox := (w - 3*pitch) / 2
	oy := (h - 3*pitch) / 2
	d.Clear()
	for i, at := range layout {
		x, y := ox+at[0]*pitch, oy+at[1]*pitch
		if held.Has(button.Button(i)) {
			d.FillRect(x, y, square, square, display.On)
			continue
		}
		d.FillRect(x, y, square, 1, display.On)
		d.FillRect(x, y+square-1, square, 1, display.On)
		d.FillRect(x, y, 1, square, display.On)
		d.FillRect(x+square-1, y, 1, square, display.On)
	}
}

func cyclePower(d *display.Display) {
	logx.Info("boardtest", "panel off")
	d.PrepareSleep()
	if err := d.Flush(); err != nil {
		logx.Warn("boardtest", "flush", "err", err)
	}
	time.Sleep(dwellOff)
	d.Wake()
	logx.Info("boardtest", "panel on")
}

func main() {
	time.Sleep(2 * time.Second)
	logx.Info("boardtest", "boot", "board", platform.BoardName)

	brd, err := platform.Open()
	if err != nil {
		logx.Error("boardtest", "board bring-up failed", "err", err)
		return
	}
	disp := display.New(brd.Panel)

	var last button.Set
	var presses [button.Count]int
	drawKeys(disp, last)
	nextCycle := time.Now().Add(cycleEvery)

	for {
		held := brd.Keys.Read()
		if held != last {
			held.NotIn(last).Each(func(b button.Button) {
				presses[b]++
				logx.Info("boardtest", "press", "button", b, "count", presses[b])
			})
			last = held
			drawKeys(disp, held)
		}
		if time.Now().After(nextCycle) {
			cyclePower(disp)
			drawKeys(disp, last)
			nextCycle = time.Now().Add(cycleEvery)
		}
		if err := disp.Flush(); err != nil {
			logx.Warn("boardtest", "flush", "err", err)
		}
		time.Sleep(pollEvery)
	}
}
