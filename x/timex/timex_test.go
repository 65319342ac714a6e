package timex

import "testing"

func TestManualClock(t *testing.T) {
	c := NewManual(100)
	if c.NowMs() != 100 {
		t.Fatalf("NowMs() = %d, want 100", c.NowMs())
	}
	c.Advance(250)
	if c.NowMs() != 350 {
		t.Fatalf("after Advance NowMs() = %d, want 350", c.NowMs())
	}
	c.Set(10)
	if c.NowMs() != 10 {
		t.Fatalf("after Set NowMs() = %d, want 10", c.NowMs())
	}
}

func TestSystemClockMonotonic(t *testing.T) {
	a := System.NowMs()
	b := System.NowMs()
	if b < a {
		t.Fatalf("system clock went backwards: %d -> %d", a, b)
	}
}
