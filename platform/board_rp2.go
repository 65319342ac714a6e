//go:build rp2040 || rp2350

package platform

import (
	"device/arm"
	"machine"
	"sync/atomic"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/ssd1306"

	"pixelshell-go/button"
	"pixelshell-go/config"
	"pixelshell-go/display"
	"pixelshell-go/errcode"
	"pixelshell-go/logx"
	"pixelshell-go/shell"
)

const BoardName = "pico"

// woke is the only state the wake interrupt touches.
var woke atomic.Bool

func open(dev config.Device) (*Board, error) {
	if dev.Console != nil {
		if err := openConsole(*dev.Console); err != nil {
			logx.Warn("platform", "console unavailable", "err", err)
		}
	}

	pins, err := dev.Pins()
	if err != nil {
		return nil, err
	}
	var in [button.Count]button.Input
	for _, b := range button.All {
		n, err := parseGP(pins[b])
		if err != nil {
			return nil, err
		}
		in[b] = &rp2Input{pin: machine.Pin(n), activeLow: dev.ActiveLow}
	}
	keys := button.NewReader(in)
	if err := keys.Setup(); err != nil {
		return nil, err
	}

	wn, err := parseGP(dev.WakePin)
	if err != nil {
		return nil, err
	}
	change := machine.PinRising
	if dev.ActiveLow {
		change = machine.PinFalling
	}
	if err := machine.Pin(wn).SetInterrupt(change, func(machine.Pin) { woke.Store(true) }); err != nil {
		return nil, errcode.Wrap(errcode.PinSetup, "platform.wake_irq", err)
	}

	panel, err := openPanel(dev.Panel)
	if err != nil {
		return nil, err
	}

	logx.Info("platform", "board up", "board", dev.Board, "wake", dev.WakePin, "panel", dev.Panel.Kind, "addr", logx.Hex(dev.Panel.I2CAddr))
	return &Board{Device: dev, Keys: keys, Panel: panel, Halter: wakePin{}}, nil
}

// wakePin halts on the wake interrupt. Only the ISR sets woke; Arm clears
// it when sleep is prepared and EnterLowPower consumes it.
type wakePin struct{}

var _ shell.Armer = wakePin{}

func (wakePin) Arm() { woke.Store(false) }

// EnterLowPower sleeps in wfi until the wake pin has fired. Other
// interrupts also end a wfi, so the flag is checked after each one.
func (wakePin) EnterLowPower() {
	for !woke.Swap(false) {
		arm.Asm("wfi")
	}
}

type rp2Input struct {
	pin       machine.Pin
	activeLow bool
}

func (in *rp2Input) Setup() error {
	mode := machine.PinInputPulldown
	if in.activeLow {
		mode = machine.PinInputPullup
	}
	in.pin.Configure(machine.PinConfig{Mode: mode})
	return nil
}

func (in *rp2Input) Read() bool { return in.pin.Get() != in.activeLow }

// oled adds panel power control to the ssd1306 driver.
type oled struct {
	*ssd1306.Device
}

func (o oled) PowerOff() error { return o.Sleep(true) }
func (o oled) PowerOn() error  { return o.Sleep(false) }

func openPanel(p config.Panel) (drivers.Displayer, error) {
	if p.Kind != "ssd1306" {
		return display.NewFramebuffer(p.Width, p.Height), nil
	}
	sda, err := parseGP(p.SDA)
	if err != nil {
		return nil, err
	}
	scl, err := parseGP(p.SCL)
	if err != nil {
		return nil, err
	}
	bus := machine.I2C0
	if i2cIndex(sda) == 1 {
		bus = machine.I2C1
	}
	if err := bus.Configure(machine.I2CConfig{
		Frequency: 400 * machine.KHz,
		SDA:       machine.Pin(sda),
		SCL:       machine.Pin(scl),
	}); err != nil {
		return nil, errcode.Wrap(errcode.PanelSetup, "platform.i2c", err)
	}
	dev := ssd1306.NewI2C(bus)
	dev.Configure(ssd1306.Config{
		Width:    p.Width,
		Height:   p.Height,
		Address:  p.I2CAddr,
		VccState: ssd1306.SWITCHCAPVCC,
	})
	dev.ClearDisplay()
	return oled{dev}, nil
}

func openConsole(c config.Console) error {
	tx, err := parseGP(c.TX)
	if err != nil {
		return err
	}
	rx, err := parseGP(c.RX)
	if err != nil {
		return err
	}
	u := uartx.UART0
	if uartIndex(tx) == 1 {
		u = uartx.UART1
	}
	if err := u.Configure(uartx.UARTConfig{
		BaudRate: c.Baud,
		TX:       machine.Pin(tx),
		RX:       machine.Pin(rx),
	}); err != nil {
		return err
	}
	logx.SetSink(logx.WriterSink{W: u})
	return nil
}
