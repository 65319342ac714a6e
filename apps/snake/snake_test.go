package snake

import (
	"testing"

	"pixelshell-go/app"
	"pixelshell-go/button"
	"pixelshell-go/display"
)

type recSched struct{ got []app.Application }

func (r *recSched) ScheduleApplication(a app.Application) { r.got = append(r.got, a) }

type stub struct{ app.Base }

func (*stub) Name() string { return "menu" }
func (*stub) Activate()    {}
func (*stub) Loop(int64)   {}

// newGame is a 10x5 grid; the snake starts at (5,2) heading right with
// food parked in a corner.
func newGame(t *testing.T) (*Snake, *recSched) {
	t.Helper()
	rs := &recSched{}
	g := New(rs, display.New(display.NewFramebuffer(40, 20)))
	g.Menu = &stub{}
	g.Activate()
	g.food = cell{0, 0}
	if x, y := g.Head(); x != 5 || y != 2 || g.Len() != startLen {
		t.Fatalf("start head (%d,%d) len %d", x, y, g.Len())
	}
	return g, rs
}

func expectHead(t *testing.T, g *Snake, x, y int) {
	t.Helper()
	if hx, hy := g.Head(); hx != x || hy != y {
		t.Fatalf("head = (%d,%d), want (%d,%d)", hx, hy, x, y)
	}
}

func TestStepsOnInterval(t *testing.T) {
	g, _ := newGame(t)
	g.Loop(0)
	expectHead(t, g, 6, 2)
	g.Loop(StepMs - 1)
	expectHead(t, g, 6, 2)
	g.Loop(StepMs)
	expectHead(t, g, 7, 2)
}

func TestTurnStepsEarly(t *testing.T) {
	g, _ := newGame(t)
	g.Loop(0)
	g.OnKeyPress(button.Up)
	g.Loop(50)
	expectHead(t, g, 6, 1)

	// The interval restarted at the early step.
	g.Loop(StepMs)
	expectHead(t, g, 6, 1)
	g.Loop(50 + StepMs)
	expectHead(t, g, 6, 0)
}

func TestReverseIgnored(t *testing.T) {
	g, _ := newGame(t)
	g.OnKeyPress(button.Left)
	if g.turn {
		t.Fatal("reversal queued a turn")
	}
	g.Loop(0)
	expectHead(t, g, 6, 2)
}

func TestHoldSpeedsUp(t *testing.T) {
	g, _ := newGame(t)
	g.OnLongKeyPress(button.Up) // not the heading
	if g.Interval() != StepMs {
		t.Fatal("long press off-heading changed speed")
	}
	g.OnLongKeyPress(button.Right)
	if g.Interval() != FastMs {
		t.Fatalf("interval = %d, want fast", g.Interval())
	}
	g.OnKeyRelease(button.Right)
	if g.Interval() != StepMs {
		t.Fatalf("interval = %d after release", g.Interval())
	}

	g.OnLongKeyPress(button.Right)
	g.WakeUp(90_000)
	if g.Interval() != StepMs {
		t.Fatal("speed-up survived wake")
	}
	g.Loop(90_000 + StepMs - 1)
	expectHead(t, g, 5, 2)
	g.Loop(90_000 + StepMs)
	expectHead(t, g, 6, 2)
}

func TestOtherReleaseKeepsSpeed(t *testing.T) {
	g, _ := newGame(t)
	g.OnLongKeyPress(button.Right)
	g.OnKeyPress(button.Up)
	g.OnKeyRelease(button.Up)
	g.OnKeyRelease(button.Center)
	if g.Interval() != FastMs {
		t.Fatalf("interval = %d, want fast while right is held", g.Interval())
	}
	g.OnKeyRelease(button.Right)
	if g.Interval() != StepMs {
		t.Fatalf("interval = %d after right released", g.Interval())
	}
}

func TestHeadBeforeFirstGame(t *testing.T) {
	g := New(&recSched{}, display.New(display.NewFramebuffer(40, 20)))
	if x, y := g.Head(); x != -1 || y != -1 {
		t.Fatalf("Head() = (%d,%d) before Activate", x, y)
	}
}

func TestCenterLongPressReturnsToMenu(t *testing.T) {
	g, rs := newGame(t)
	g.OnKeyPress(button.Center)
	if len(rs.got) != 0 {
		t.Fatal("short center press left the game")
	}
	g.OnLongKeyPress(button.Center)
	if len(rs.got) != 1 || rs.got[0] != g.Menu {
		t.Fatalf("scheduled %v, want menu", rs.got)
	}
}

func TestWallCrashAndRestart(t *testing.T) {
	g, _ := newGame(t)
	now := int64(0)
	for i := 0; i < 5; i++ {
		g.Loop(now)
		now += StepMs
	}
	if g.Alive() {
		t.Fatal("snake went through the wall")
	}
	expectHead(t, g, 9, 2)

	g.Loop(now)
	expectHead(t, g, 9, 2)
	g.OnKeyPress(button.Up)
	if g.turn {
		t.Fatal("dead snake accepted a turn")
	}

	g.OnKeyPress(button.Center)
	if !g.Alive() || g.Score() != 0 {
		t.Fatal("center did not restart")
	}
	expectHead(t, g, 5, 2)
}

func TestEatGrows(t *testing.T) {
	g, _ := newGame(t)
	g.food = cell{6, 2}
	g.Loop(0)
	if g.Len() != startLen+1 || g.Score() != 1 {
		t.Fatalf("len %d score %d after eating", g.Len(), g.Score())
	}
	expectHead(t, g, 6, 2)
	if g.occupied(g.food, g.Len()) {
		t.Fatalf("food %v placed on the snake", g.food)
	}
}

func TestTailMovesOutOfTheWay(t *testing.T) {
	g, _ := newGame(t)
	g.body = []cell{{2, 2}, {2, 3}, {3, 3}, {3, 2}}
	g.dir, g.pending = button.Up, button.Right
	g.Loop(0)
	if !g.Alive() {
		t.Fatal("moving into the vacating tail is legal")
	}
	expectHead(t, g, 3, 2)

	g.body = []cell{{2, 2}, {2, 3}, {3, 3}, {3, 2}, {3, 1}}
	g.dir, g.pending = button.Up, button.Right
	g.Loop(StepMs)
	if g.Alive() {
		t.Fatal("snake ran into itself")
	}
}

func TestDrawsBody(t *testing.T) {
	fb := display.NewFramebuffer(40, 20)
	g := New(&recSched{}, display.New(fb))
	g.Activate()
	// Head cell at (5,2) is 3x3 pixels starting at (20,8).
	if !fb.Pixel(20, 8) || !fb.Pixel(22, 10) || fb.Pixel(23, 11) {
		t.Fatal("head cell not drawn as expected")
	}
}
