package event

import (
	"testing"

	"pixelshell-go/errcode"
)

func TestSystemLaneFirst(t *testing.T) {
	q := NewQueue[string]()
	if err := q.Push(Application, Command[string]{Kind: Activate, Target: "menu"}); err != nil {
		t.Fatal(err)
	}
	if err := q.Push(System, Command[string]{Kind: PrepareSleep}); err != nil {
		t.Fatal(err)
	}

	c, ok := q.Pop()
	if !ok || c.Kind != PrepareSleep {
		t.Fatalf("first pop = %+v, %v; want prepare_sleep", c, ok)
	}
	c, ok = q.Pop()
	if !ok || c.Kind != Activate || c.Target != "menu" {
		t.Fatalf("second pop = %+v, %v; want activate menu", c, ok)
	}
	if _, ok := q.Pop(); ok {
		t.Fatal("third pop should report none")
	}
}

func TestLaneFIFO(t *testing.T) {
	q := NewQueue[int]()
	_ = q.Push(Application, Command[int]{Kind: Deactivate, Target: 1})
	_ = q.Push(Application, Command[int]{Kind: Activate, Target: 2})
	if q.Pending(Application) != 2 || q.Pending(System) != 0 {
		t.Fatalf("pending = %d/%d", q.Pending(Application), q.Pending(System))
	}
	for _, want := range []Command[int]{{Deactivate, 1}, {Activate, 2}} {
		got, ok := q.Pop()
		if !ok || got != want {
			t.Fatalf("pop = %+v, want %+v", got, want)
		}
	}
}

func TestLaneBudget(t *testing.T) {
	q := NewQueue[int]()
	for i := 0; i < LaneCapacity-1; i++ {
		if err := q.Push(System, Command[int]{Kind: PrepareSleep, Target: i}); err != nil {
			t.Fatalf("push %d: %v", i, err)
		}
	}
	err := q.Push(System, Command[int]{Kind: AwaitRelease})
	if errcode.Of(err) != errcode.QueueFull {
		t.Fatalf("over-budget push err = %v, want queue_full", err)
	}
	// The rejected push must not disturb ordering.
	for i := 0; i < LaneCapacity-1; i++ {
		c, ok := q.Pop()
		if !ok || c.Target != i {
			t.Fatalf("pop %d = %+v, %v", i, c, ok)
		}
	}
	// The other lane is independent.
	if err := q.Push(Application, Command[int]{Kind: Activate}); err != nil {
		t.Fatal(err)
	}
}

func TestClear(t *testing.T) {
	q := NewQueue[int]()
	_ = q.Push(System, Command[int]{Kind: EnterLowPower})
	_ = q.Push(Application, Command[int]{Kind: Activate})
	q.Clear()
	if _, ok := q.Pop(); ok {
		t.Fatal("queue not empty after Clear")
	}
}

func TestKindString(t *testing.T) {
	if EnterLowPower.String() != "enter_low_power" || Kind(99).String() != "none" {
		t.Fatal("Kind.String mismatch")
	}
}
