//go:build linux && !(rp2040 || rp2350)

package platform

import (
	"image/color"

	"tinygo.org/x/drivers"
)

// SSD1306 commands used by i2cPanel.
const (
	cmdDisplayOff  = 0xAE
	cmdDisplayOn   = 0xAF
	cmdClockDiv    = 0xD5
	cmdMultiplex   = 0xA8
	cmdOffset      = 0xD3
	cmdStartLine   = 0x40
	cmdChargePump  = 0x8D
	cmdMemoryMode  = 0x20
	cmdSegRemap    = 0xA1
	cmdComScanDec  = 0xC8
	cmdComPins     = 0xDA
	cmdContrast    = 0x81
	cmdPrecharge   = 0xD9
	cmdVcomDetect  = 0xDB
	cmdResume      = 0xA4
	cmdNormal      = 0xA6
	cmdStopScroll  = 0x2E
	cmdColumnAddr  = 0x21
	cmdPageAddr    = 0x22
	ctrlCommand    = 0x00
	ctrlData       = 0x40
	defaultOLEDI2C = 0x3C
)

// i2cPanel drives an SSD1306 over any bus with an I²C Tx. The tinygo
// ssd1306 package pulls in the machine package, so Linux boards use this
// with a periph bus instead. Pages are 8 pixel rows, one bit per row, LSB
// on top.
type i2cPanel struct {
	bus  drivers.I2C
	addr uint16
	w, h int16
	buf  []byte
	tx   []byte
}

func newI2CPanel(bus drivers.I2C, addr uint16, w, h int16) *i2cPanel {
	if addr == 0 {
		addr = defaultOLEDI2C
	}
	n := int(w) * int(h) / 8
	return &i2cPanel{bus: bus, addr: addr, w: w, h: h, buf: make([]byte, n), tx: make([]byte, n+1)}
}

// Configure runs the power-up sequence for the internal charge pump and
// leaves the panel on and blank.
func (p *i2cPanel) Configure() error {
	comPins, contrast := byte(0x12), byte(0xCF)
	if p.h == 32 {
		comPins, contrast = 0x02, 0x8F
	}
	err := p.command(
		cmdDisplayOff,
		cmdClockDiv, 0x80,
		cmdMultiplex, byte(p.h-1),
		cmdOffset, 0x00,
		cmdStartLine|0x00,
		cmdChargePump, 0x14,
		cmdMemoryMode, 0x00,
		cmdSegRemap,
		cmdComScanDec,
		cmdComPins, comPins,
		cmdContrast, contrast,
		cmdPrecharge, 0xF1,
		cmdVcomDetect, 0x40,
		cmdResume,
		cmdNormal,
		cmdStopScroll,
	)
	if err != nil {
		return err
	}
	p.ClearBuffer()
	if err := p.Display(); err != nil {
		return err
	}
	return p.command(cmdDisplayOn)
}

func (p *i2cPanel) command(cmds ...byte) error {
	for _, c := range cmds {
		if err := p.bus.Tx(p.addr, []byte{ctrlCommand, c}, nil); err != nil {
			return err
		}
	}
	return nil
}

func (p *i2cPanel) Size() (x, y int16) { return p.w, p.h }

func (p *i2cPanel) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= p.w || y >= p.h {
		return
	}
	i := int(x) + int(y/8)*int(p.w)
	bit := byte(1) << uint(y%8)
	if c.R|c.G|c.B != 0 {
		p.buf[i] |= bit
	} else {
		p.buf[i] &^= bit
	}
}

func (p *i2cPanel) ClearBuffer() {
	for i := range p.buf {
		p.buf[i] = 0
	}
}

// Display sends the whole buffer in one data transaction.
func (p *i2cPanel) Display() error {
	if err := p.command(cmdColumnAddr, 0, byte(p.w-1), cmdPageAddr, 0, byte(p.h/8-1)); err != nil {
		return err
	}
	p.tx[0] = ctrlData
	copy(p.tx[1:], p.buf)
	return p.bus.Tx(p.addr, p.tx, nil)
}

func (p *i2cPanel) PowerOff() error { return p.command(cmdDisplayOff) }
func (p *i2cPanel) PowerOn() error  { return p.command(cmdDisplayOn) }
