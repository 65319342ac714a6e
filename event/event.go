// Package event holds the shell's deferred commands.
//
// Commands are small values pushed by copy into one of two lanes. The
// system lane carries power transitions and always drains before the
// application lane, so a pending app switch can never hold off sleep.
// The shell pops at most one command per tick.
package event

import (
	"pixelshell-go/errcode"
	"pixelshell-go/x/ring"
)

// Kind selects what the shell does when a command is executed.
type Kind uint8

const (
	None Kind = iota
	PrepareSleep
	EnterLowPower
	AwaitRelease
	Deactivate
	Activate
)

func (k Kind) String() string {
	switch k {
	case PrepareSleep:
		return "prepare_sleep"
	case EnterLowPower:
		return "enter_low_power"
	case AwaitRelease:
		return "await_release"
	case Deactivate:
		return "deactivate"
	case Activate:
		return "activate"
	default:
		return "none"
	}
}

// Command is a deferred action. Target is an opaque handle the executor
// understands (the application for Deactivate/Activate, unused otherwise).
type Command[T any] struct {
	Kind   Kind
	Target T
}

type Lane uint8

const (
	System Lane = iota
	Application
)

func (l Lane) String() string {
	if l == System {
		return "system"
	}
	return "application"
}

// LaneCapacity is the ring size per lane. One slot stays free, so each
// lane holds at most LaneCapacity-1 pending commands: one prepare/halt
// pair on the system lane, one deactivate/activate pair on the
// application lane.
const LaneCapacity = 3

// Queue is the two-lane deferred command queue.
type Queue[T any] struct {
	lanes [2]*ring.Ring[Command[T]]
}

func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{lanes: [2]*ring.Ring[Command[T]]{
		ring.New[Command[T]](LaneCapacity),
		ring.New[Command[T]](LaneCapacity),
	}}
}

// Push appends c to lane. A lane already at its budget rejects the command
// with errcode.QueueFull instead of letting the ring overwrite itself.
func (q *Queue[T]) Push(lane Lane, c Command[T]) error {
	r := q.lanes[lane]
	if r.Len() >= r.Cap()-1 {
		return &errcode.E{C: errcode.QueueFull, Op: "event.push", Msg: lane.String() + " " + c.Kind.String()}
	}
	r.PushBack(c)
	return nil
}

// Pop removes and returns the next command: system lane first, then the
// application lane.
func (q *Queue[T]) Pop() (Command[T], bool) {
	for _, r := range q.lanes {
		if r.Len() > 0 {
			c := r.Front()
			r.PopFront()
			return c, true
		}
	}
	return Command[T]{}, false
}

// Pending reports how many commands wait in lane.
func (q *Queue[T]) Pending(lane Lane) int { return q.lanes[lane].Len() }

// Clear drops every pending command in both lanes.
func (q *Queue[T]) Clear() {
	for _, r := range q.lanes {
		r.Clear()
	}
}
