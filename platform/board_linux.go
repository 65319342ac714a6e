//go:build linux && !(rp2040 || rp2350)

package platform

import (
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
	"tinygo.org/x/drivers"

	"pixelshell-go/button"
	"pixelshell-go/config"
	"pixelshell-go/display"
	"pixelshell-go/errcode"
	"pixelshell-go/logx"
)

const BoardName = "rpi"

// i2cOpener opens an I²C bus by name.
type i2cOpener func(name string) (drivers.I2C, error)

func open(dev config.Device) (*Board, error) {
	if _, err := host.Init(); err != nil {
		return nil, errcode.Wrap(errcode.PinSetup, "platform.host_init", err)
	}
	return openWith(dev, openI2C)
}

func openI2C(name string) (drivers.I2C, error) {
	b, err := i2creg.Open(name)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// openWith brings the board up once periph's drivers are loaded. Pins
// are looked up in gpioreg by name.
func openWith(dev config.Device, openBus i2cOpener) (*Board, error) {
	pins, err := dev.Pins()
	if err != nil {
		return nil, err
	}
	var in [button.Count]button.Input
	for _, b := range button.All {
		p := gpioreg.ByName(pins[b])
		if p == nil {
			return nil, &errcode.E{C: errcode.UnknownPin, Op: "platform.pin", Msg: pins[b]}
		}
		in[b] = &pinInput{pin: p, activeLow: dev.ActiveLow}
	}
	keys := button.NewReader(in)
	if err := keys.Setup(); err != nil {
		return nil, err
	}

	wake := gpioreg.ByName(dev.WakePin)
	if wake == nil {
		return nil, &errcode.E{C: errcode.UnknownPin, Op: "platform.wake", Msg: dev.WakePin}
	}
	pull, edge := gpio.PullDown, gpio.RisingEdge
	if dev.ActiveLow {
		pull, edge = gpio.PullUp, gpio.FallingEdge
	}
	if err := wake.In(pull, edge); err != nil {
		return nil, errcode.Wrap(errcode.PinSetup, "platform.wake", err)
	}

	panel, err := openPanel(dev.Panel, openBus)
	if err != nil {
		return nil, err
	}

	logx.Info("platform", "board up", "board", dev.Board, "wake", dev.WakePin, "panel", dev.Panel.Kind)
	return &Board{
		Device: dev,
		Keys:   keys,
		Panel:  panel,
		Halter: &edgeHalter{pin: wake},
	}, nil
}

func openPanel(p config.Panel, openBus i2cOpener) (drivers.Displayer, error) {
	if p.Kind != "ssd1306" {
		logx.Warn("platform", "headless, frames are not shown", "kind", p.Kind)
		return display.NewFramebuffer(p.Width, p.Height), nil
	}
	bus, err := openBus(p.Bus)
	if err != nil {
		return nil, errcode.Wrap(errcode.PanelSetup, "platform.i2c", err)
	}
	panel := newI2CPanel(bus, p.I2CAddr, p.Width, p.Height)
	if err := panel.Configure(); err != nil {
		return nil, errcode.Wrap(errcode.PanelSetup, "platform.ssd1306", err)
	}
	return panel, nil
}

// pinInput reads one periph GPIO.
type pinInput struct {
	pin       gpio.PinIO
	activeLow bool
}

func (in *pinInput) Setup() error {
	pull := gpio.PullDown
	if in.activeLow {
		pull = gpio.PullUp
	}
	return in.pin.In(pull, gpio.NoEdge)
}

func (in *pinInput) Read() bool { return in.pin.Read() == gpio.Level(!in.activeLow) }

// edgeHalter blocks the process on the wake pin's next edge.
type edgeHalter struct {
	pin gpio.PinIO
}

// Arm drops the edges the kernel queued while the device was awake.
func (h *edgeHalter) Arm() {
	for h.pin.WaitForEdge(0) {
	}
}

func (h *edgeHalter) EnterLowPower() { h.pin.WaitForEdge(-1) }
