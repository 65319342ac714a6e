// Package snake is the demo game.
//
// The snake steps once per loop interval. Pressing a new direction turns
// and steps immediately instead of waiting for the next interval; holding
// the current direction past the long-press threshold speeds the snake up
// until it is released. A long press on center returns to the menu, a
// short one restarts after a crash.
package snake

import (
	"pixelshell-go/app"
	"pixelshell-go/button"
	"pixelshell-go/display"
	"pixelshell-go/keypad"
	"pixelshell-go/x/conv"
	"pixelshell-go/x/mathx"
)

const (
	Cell = 4 // pixels per grid cell

	StepMs = 200
	FastMs = 70

	startLen = 3
)

type cell struct{ x, y int }

type Snake struct {
	app.Base

	sched app.Scheduler
	disp  *display.Display

	// Menu is scheduled on a long center press.
	Menu app.Application

	cols, rows int

	body    []cell // head first
	dir     button.Button
	pending button.Button
	turn    bool
	fast    bool // sped up by holding fastKey
	fastKey button.Button
	food    cell
	alive   bool
	score   int
	rng     uint32
}

func New(s app.Scheduler, d *display.Display) *Snake {
	w, h := d.Size()
	g := &Snake{
		sched: s,
		disp:  d,
		cols:  mathx.Clamp(int(w)/Cell, 4, 64),
		rows:  mathx.Clamp(int(h)/Cell, 4, 64),
		rng:   0x9e3779b9,
	}
	g.SetInterval(StepMs)
	return g
}

func (g *Snake) Name() string { return "snake" }

func (g *Snake) Alive() bool { return g.alive }
func (g *Snake) Score() int  { return g.score }
func (g *Snake) Len() int    { return len(g.body) }

// Head is the head cell, or (-1, -1) before the first game.
func (g *Snake) Head() (x, y int) {
	if len(g.body) == 0 {
		return -1, -1
	}
	return g.body[0].x, g.body[0].y
}

func (g *Snake) Activate() {
	g.EnableKeyEvents(keypad.AllEvents)
	g.restart()
}

func (g *Snake) Deactivate() {
	g.DisableKeyEvents(keypad.AllEvents)
}

func (g *Snake) restart() {
	g.body = g.body[:0]
	cy := g.rows / 2
	for i := 0; i < startLen; i++ {
		g.body = append(g.body, cell{g.cols/2 - i, cy})
	}
	g.dir, g.pending = button.Right, button.Right
	g.turn = false
	g.alive = true
	g.score = 0
	g.slow()
	g.Reset()
	g.placeFood()
	g.draw()
}

func (g *Snake) Loop(now int64) {
	if !g.alive {
		return
	}
	if g.turn {
		g.turn = false
		g.Early(now, g.step)
		return
	}
	g.Run(now, g.step)
}

func (g *Snake) OnKeyPress(b button.Button) {
	if b == button.Center {
		if !g.alive {
			g.restart()
		}
		return
	}
	if !g.alive || b == button.Opposite(g.dir) || b == g.pending {
		return
	}
	g.pending = b
	g.turn = true
}

func (g *Snake) OnLongKeyPress(b button.Button) {
	switch {
	case b == button.Center:
		if g.Menu != nil {
			g.sched.ScheduleApplication(g.Menu)
		}
	case b == g.dir:
		g.fast, g.fastKey = true, b
		g.SetInterval(FastMs)
	}
}

func (g *Snake) OnKeyRelease(b button.Button) {
	if g.fast && b == g.fastKey {
		g.slow()
	}
}

func (g *Snake) slow() {
	g.fast = false
	g.SetInterval(StepMs)
}

// WakeUp restarts the step interval and drops any speed-up; the keys that
// held it were released before the wake completed.
func (g *Snake) WakeUp(now int64) {
	g.Base.WakeUp(now)
	g.slow()
	g.turn = false
	g.draw()
}

func (g *Snake) step(int64) {
	g.dir = g.pending
	head := g.body[0]
	switch g.dir {
	case button.Left:
		head.x--
	case button.Right:
		head.x++
	case button.Up:
		head.y--
	case button.Down:
		head.y++
	}

	grow := head == g.food
	tail := len(g.body)
	if !grow {
		tail-- // the tail moves out of the way this step
	}
	if head.x < 0 || head.y < 0 || head.x >= g.cols || head.y >= g.rows || g.occupied(head, tail) {
		g.alive = false
		g.draw()
		return
	}

	if grow {
		g.body = append(g.body, cell{})
		g.score++
	}
	copy(g.body[1:], g.body[:len(g.body)-1])
	g.body[0] = head
	if grow {
		g.placeFood()
	}
	g.draw()
}

// occupied reports whether c overlaps the first n body cells.
func (g *Snake) occupied(c cell, n int) bool {
	for _, b := range g.body[:n] {
		if b == c {
			return true
		}
	}
	return false
}

func (g *Snake) placeFood() {
	free := g.cols*g.rows - len(g.body)
	if free <= 0 {
		g.food = cell{-1, -1}
		return
	}
	k := int(g.next() % uint32(free))
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			c := cell{x, y}
			if g.occupied(c, len(g.body)) {
				continue
			}
			if k == 0 {
				g.food = c
				return
			}
			k--
		}
	}
}

// next is xorshift32.
func (g *Snake) next() uint32 {
	x := g.rng
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	g.rng = x
	return x
}

func (g *Snake) draw() {
	g.disp.Clear()
	for _, c := range g.body {
		g.disp.FillRect(int16(c.x*Cell), int16(c.y*Cell), Cell-1, Cell-1, display.On)
	}
	if g.food.x >= 0 {
		g.disp.FillRect(int16(g.food.x*Cell+1), int16(g.food.y*Cell+1), Cell-2, Cell-2, display.On)
	}
	if !g.alive {
		g.disp.DrawText(1, 7, "score "+conv.Itoa(g.score), display.On)
	}
}
