// Package display is the drawing surface applications render into.
//
// Display sits in front of any tinygo drivers.Displayer panel. Draw calls
// only touch the panel's buffer and mark the frame dirty; Flush pushes the
// frame to the glass at most once per shell tick, and only when something
// changed.
package display

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"

	"pixelshell-go/errcode"
	"pixelshell-go/logx"
)

var (
	On  = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	Off = color.RGBA{A: 0xff}
)

// PowerControl is implemented by panels that can be switched off while the
// device sleeps.
type PowerControl interface {
	PowerOff() error
	PowerOn() error
}

// bufferClearer is the fast-path clear most tinygo panel drivers expose.
type bufferClearer interface {
	ClearBuffer()
}

type Display struct {
	panel drivers.Displayer
	w, h  int16
	font  tinyfont.Fonter

	dirty      bool
	powerOff   bool // switch the panel off after the next flush
	asleep     bool
	flushCount uint32
}

var _ drivers.Displayer = (*Display)(nil)

func New(panel drivers.Displayer) *Display {
	w, h := panel.Size()
	return &Display{panel: panel, w: w, h: h, font: &tinyfont.TomThumb}
}

func (d *Display) Size() (x, y int16) { return d.w, d.h }

// SetPixel draws one pixel; coordinates outside the panel are clipped.
func (d *Display) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= d.w || y >= d.h {
		return
	}
	d.panel.SetPixel(x, y, c)
	d.dirty = true
}

// Display satisfies drivers.Displayer; it is Flush.
func (d *Display) Display() error { return d.Flush() }

func (d *Display) Clear() {
	if bc, ok := d.panel.(bufferClearer); ok {
		bc.ClearBuffer()
	} else {
		d.fill(0, 0, d.w, d.h, Off)
	}
	d.dirty = true
}

func (d *Display) FillRect(x, y, w, h int16, c color.RGBA) {
	d.fill(x, y, w, h, c)
	d.dirty = true
}

func (d *Display) fill(x, y, w, h int16, c color.RGBA) {
	for j := y; j < y+h; j++ {
		for i := x; i < x+w; i++ {
			d.SetPixel(i, j, c)
		}
	}
}

// DrawText renders s with its baseline at y.
func (d *Display) DrawText(x, y int16, s string, c color.RGBA) {
	tinyfont.WriteLine(d, d.font, x, y, s, c)
	d.dirty = true
}

// TextWidth is the advance width of s in the current font.
func (d *Display) TextWidth(s string) int16 {
	_, outbox := tinyfont.LineWidth(d.font, s)
	return int16(outbox)
}

// Bitmap is a 1-bpp image, row-major, most significant bit first, each row
// padded to a whole byte.
type Bitmap struct {
	W, H int16
	Bits []byte
}

func (b Bitmap) stride() int { return (int(b.W) + 7) / 8 }

// At reports whether pixel (x, y) of the bitmap is set.
func (b Bitmap) At(x, y int16) bool {
	i := int(y)*b.stride() + int(x)/8
	if i >= len(b.Bits) {
		return false
	}
	return b.Bits[i]&(0x80>>(uint(x)%8)) != 0
}

// DrawBitmap paints the set pixels of b at (x, y) in c. Clear bits are left
// untouched.
func (d *Display) DrawBitmap(x, y int16, b Bitmap, c color.RGBA) {
	for j := int16(0); j < b.H; j++ {
		for i := int16(0); i < b.W; i++ {
			if b.At(i, j) {
				d.SetPixel(x+i, y+j, c)
			}
		}
	}
	d.dirty = true
}

// Dirty reports whether anything was drawn since the last flush.
func (d *Display) Dirty() bool { return d.dirty }

// Flushes counts frames actually pushed to the panel.
func (d *Display) Flushes() uint32 { return d.flushCount }

// Flush pushes the frame to the panel if it changed.
func (d *Display) Flush() error {
	if !d.dirty {
		return nil
	}
	d.dirty = false
	d.flushCount++
	if err := d.panel.Display(); err != nil {
		return errcode.Wrap(errcode.PanelIO, "display.flush", err)
	}
	if d.powerOff {
		d.powerOff = false
		d.asleep = true
		if pc, ok := d.panel.(PowerControl); ok {
			if err := pc.PowerOff(); err != nil {
				logx.Warn("display", "power off failed", "err", err)
			}
		}
	}
	return nil
}

// PrepareSleep blanks the frame. The following Flush pushes the blank frame
// and then powers the panel down.
func (d *Display) PrepareSleep() {
	d.Clear()
	d.powerOff = true
}

// Wake powers the panel back up and forces the next flush.
func (d *Display) Wake() {
	if d.asleep {
		if pc, ok := d.panel.(PowerControl); ok {
			if err := pc.PowerOn(); err != nil {
				logx.Warn("display", "power on failed", "err", err)
			}
		}
	}
	d.asleep = false
	d.powerOff = false
	d.dirty = true
}

// Asleep reports whether the panel was powered down by PrepareSleep.
func (d *Display) Asleep() bool { return d.asleep }
