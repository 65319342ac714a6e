package ring

import "testing"

func TestPushPopScenario(t *testing.T) {
	r := New[int](4)
	r.PushBack(10)
	r.PushBack(20)
	r.PushBack(30)
	r.PopFront()

	if got := r.Front(); got != 20 {
		t.Fatalf("Front() = %d, want 20", got)
	}
	if got := r.Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2", got)
	}
	if got := r.Back(); got != 30 {
		t.Fatalf("Back() = %d, want 30", got)
	}
}

func TestFIFOAcrossWrap(t *testing.T) {
	const capacity = 5
	r := New[int](capacity)

	next, expect := 0, 0
	pushes, pops := 0, 0
	// Interleave bursts so indices wrap many times while staying within Cap-1.
	for round := 0; round < 50; round++ {
		burst := round%(capacity-1) + 1
		for i := 0; i < burst && r.Len() < capacity-1; i++ {
			r.PushBack(next)
			next++
			pushes++
		}
		if got := r.Len(); got != pushes-pops {
			t.Fatalf("round %d: Len() = %d, want %d", round, got, pushes-pops)
		}
		for i := 0; i < r.Len(); i++ {
			if got := r.At(i); got != expect+i {
				t.Fatalf("round %d: At(%d) = %d, want %d", round, i, got, expect+i)
			}
		}
		drain := (round % 3) + 1
		for i := 0; i < drain && r.Len() > 0; i++ {
			if got := r.Front(); got != expect {
				t.Fatalf("round %d: Front() = %d, want %d", round, got, expect)
			}
			r.PopFront()
			expect++
			pops++
		}
	}
}

func TestOverrunIsSilent(t *testing.T) {
	r := New[string](3)
	r.PushBack("a")
	r.PushBack("b")
	if r.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", r.Len())
	}

	// Third push fills the reserved slot: back meets front and the ring reads empty.
	r.PushBack("c")
	if r.Len() != 0 {
		t.Fatalf("Len() after overrun = %d, want 0", r.Len())
	}

	// Next push lands on the oldest unread slot.
	r.PushBack("d")
	if r.Len() != 1 {
		t.Fatalf("Len() after second overrun = %d, want 1", r.Len())
	}
	if got := r.Front(); got != "d" {
		t.Fatalf("Front() = %q, want %q (oldest %q overwritten)", got, "d", "a")
	}
}

func TestClear(t *testing.T) {
	r := New[int](4)
	r.PushBack(1)
	r.PushBack(2)
	r.Clear()
	if r.Len() != 0 {
		t.Fatalf("Len() after Clear = %d", r.Len())
	}
	r.PushBack(7)
	if r.Front() != 7 || r.Back() != 7 {
		t.Fatalf("Front/Back after Clear+Push = %d/%d", r.Front(), r.Back())
	}
}

func TestNewRejectsTinyCapacity(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for capacity 1")
		}
	}()
	_ = New[int](1)
}
