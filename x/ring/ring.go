// Package ring provides a fixed-capacity FIFO ring over any element type.
//
// The ring keeps one slot free to tell full from empty, so a ring of
// capacity N holds at most N-1 live elements. Callers own that budget.
// There is no overflow check: a push into a ring already holding N-1
// elements makes back catch up with front (Len drops to 0), and further
// pushes overwrite the oldest unread slots.
package ring

// Ring is a single-context FIFO. It is not safe for concurrent use.
type Ring[T any] struct {
	buf   []T
	front int
	back  int
}

// New allocates a ring with the given capacity (>= 2).
func New[T any](capacity int) *Ring[T] {
	if capacity < 2 {
		panic("ring: capacity must be >= 2")
	}
	return &Ring[T]{buf: make([]T, capacity)}
}

func (r *Ring[T]) Cap() int { return len(r.buf) }

// Len is (back - front + Cap) mod Cap.
func (r *Ring[T]) Len() int {
	n := len(r.buf)
	return (r.back - r.front + n) % n
}

func (r *Ring[T]) PushBack(v T) {
	r.buf[r.back] = v
	r.back = r.next(r.back)
}

// PopFront discards the front element. Undefined on an empty ring.
func (r *Ring[T]) PopFront() {
	var zero T
	r.buf[r.front] = zero
	r.front = r.next(r.front)
}

// Front returns the oldest element. Undefined on an empty ring.
func (r *Ring[T]) Front() T { return r.buf[r.front] }

// Back returns the newest element. Undefined on an empty ring.
func (r *Ring[T]) Back() T {
	n := len(r.buf)
	return r.buf[(r.back-1+n)%n]
}

// At returns the i-th element counted from the front. No bounds check.
func (r *Ring[T]) At(i int) T { return r.buf[(r.front+i)%len(r.buf)] }

func (r *Ring[T]) Clear() {
	var zero T
	for i := range r.buf {
		r.buf[i] = zero
	}
	r.front, r.back = 0, 0
}

func (r *Ring[T]) next(i int) int {
	i++
	if i == len(r.buf) {
		return 0
	}
	return i
}
