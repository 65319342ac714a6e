package display

import (
	"errors"
	"image/color"
	"testing"

	"pixelshell-go/errcode"
)

func TestFlushOnlyWhenDirty(t *testing.T) {
	fb := NewFramebuffer(16, 8)
	d := New(fb)

	if err := d.Flush(); err != nil {
		t.Fatal(err)
	}
	if fb.Pushes() != 0 {
		t.Fatalf("clean flush pushed %d frames", fb.Pushes())
	}

	d.SetPixel(3, 2, On)
	if !d.Dirty() {
		t.Fatal("SetPixel did not mark dirty")
	}
	_ = d.Flush()
	_ = d.Flush()
	if fb.Pushes() != 1 || d.Flushes() != 1 {
		t.Fatalf("pushes = %d/%d, want 1", fb.Pushes(), d.Flushes())
	}
	if fb.Lit() != 1 {
		t.Fatalf("lit = %d, want 1", fb.Lit())
	}
}

func TestClippingAndRects(t *testing.T) {
	fb := NewFramebuffer(8, 8)
	d := New(fb)
	d.SetPixel(-1, 0, On)
	d.SetPixel(8, 8, On)
	d.FillRect(6, 6, 4, 4, On) // partly off-panel
	_ = d.Flush()
	if fb.Lit() != 4 {
		t.Fatalf("lit = %d, want 4 after clipping", fb.Lit())
	}

	d.Clear()
	_ = d.Flush()
	if fb.Lit() != 0 {
		t.Fatalf("lit = %d after Clear", fb.Lit())
	}
}

func TestDrawBitmap(t *testing.T) {
	fb := NewFramebuffer(16, 4)
	d := New(fb)
	// 10 pixels wide: two bytes per row.
	bmp := Bitmap{W: 10, H: 2, Bits: []byte{
		0b10000000, 0b01000000, // (0,0) and (9,0)
		0b00000001, 0b00000000, // (7,1)
	}}
	d.DrawBitmap(2, 1, bmp, On)
	for _, p := range [][2]int16{{2, 1}, {11, 1}, {9, 2}} {
		if !fb.Pixel(p[0], p[1]) {
			t.Fatalf("pixel %v not set", p)
		}
	}
	if fb.Pixel(3, 1) {
		t.Fatal("unexpected pixel (3,1)")
	}
}

func TestDrawTextMarksDirty(t *testing.T) {
	fb := NewFramebuffer(64, 16)
	d := New(fb)
	d.DrawText(0, 10, "HI", On)
	if !d.Dirty() {
		t.Fatal("DrawText did not mark dirty")
	}
	_ = d.Flush()
	if fb.Lit() == 0 {
		t.Fatal("text drew no pixels")
	}
	if d.TextWidth("HI") <= 0 {
		t.Fatal("TextWidth should be positive")
	}
}

func TestSleepCycle(t *testing.T) {
	fb := NewFramebuffer(8, 8)
	d := New(fb)
	d.FillRect(0, 0, 8, 8, On)
	_ = d.Flush()

	d.PrepareSleep()
	_ = d.Flush()
	if fb.Lit() != 0 {
		t.Fatalf("frame before sleep not blank: %d lit", fb.Lit())
	}
	if fb.Powered() || !d.Asleep() {
		t.Fatal("panel still powered after sleep flush")
	}

	d.Wake()
	if !fb.Powered() || d.Asleep() {
		t.Fatal("panel not powered after Wake")
	}
	pushes := fb.Pushes()
	_ = d.Flush()
	if fb.Pushes() != pushes+1 {
		t.Fatal("Wake did not force a flush")
	}
}

type failingPanel struct{ *Framebuffer }

func (failingPanel) Display() error { return errors.New("i2c nack") }

func TestFlushError(t *testing.T) {
	d := New(failingPanel{NewFramebuffer(4, 4)})
	d.SetPixel(0, 0, color.RGBA{R: 1})
	if err := d.Flush(); errcode.Of(err) != errcode.PanelIO {
		t.Fatalf("Flush err = %v, want panel_io", err)
	}
	if d.Dirty() {
		t.Fatal("failed flush should not retry every tick")
	}
}
