package display

import (
	"image/color"
	"sync"
)

// Framebuffer is a monochrome in-memory panel. It stands in for glass on
// headless boards, in the simulator and in tests. The drawing buffer and
// the last pushed frame are kept apart so a reader sees whole frames only.
type Framebuffer struct {
	w, h int16

	draw []bool

	mu     sync.Mutex
	shown  []bool
	pushes int
	off    bool
}

func NewFramebuffer(w, h int16) *Framebuffer {
	n := int(w) * int(h)
	return &Framebuffer{w: w, h: h, draw: make([]bool, n), shown: make([]bool, n)}
}

func (f *Framebuffer) Size() (x, y int16) { return f.w, f.h }

func (f *Framebuffer) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= f.w || y >= f.h {
		return
	}
	f.draw[int(y)*int(f.w)+int(x)] = c.R|c.G|c.B != 0
}

func (f *Framebuffer) ClearBuffer() {
	for i := range f.draw {
		f.draw[i] = false
	}
}

// Display publishes the drawing buffer as the shown frame.
func (f *Framebuffer) Display() error {
	f.mu.Lock()
	copy(f.shown, f.draw)
	f.pushes++
	f.mu.Unlock()
	return nil
}

func (f *Framebuffer) PowerOff() error {
	f.mu.Lock()
	f.off = true
	f.mu.Unlock()
	return nil
}

func (f *Framebuffer) PowerOn() error {
	f.mu.Lock()
	f.off = false
	f.mu.Unlock()
	return nil
}

// Snapshot copies the last pushed frame into dst (allocating if needed)
// and reports whether the panel is powered.
func (f *Framebuffer) Snapshot(dst []bool) ([]bool, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(dst) != len(f.shown) {
		dst = make([]bool, len(f.shown))
	}
	copy(dst, f.shown)
	return dst, !f.off
}

// Lit counts set pixels in the last pushed frame.
func (f *Framebuffer) Lit() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, p := range f.shown {
		if p {
			n++
		}
	}
	return n
}

// Pushes counts Display calls.
func (f *Framebuffer) Pushes() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pushes
}

// Pixel reads the drawing buffer.
func (f *Framebuffer) Pixel(x, y int16) bool {
	if x < 0 || y < 0 || x >= f.w || y >= f.h {
		return false
	}
	return f.draw[int(y)*int(f.w)+int(x)]
}

// Powered reports whether the panel is on.
func (f *Framebuffer) Powered() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return !f.off
}
