// Package platform brings up the board this binary was built for.
//
// Exactly one board file is compiled per target: rp2040/rp2350 boards talk
// to the machine package directly, Linux single-board computers go through
// periph.io, and everything else reports errcode.Unsupported.
package platform

import (
	"strconv"
	"strings"

	"tinygo.org/x/drivers"

	"pixelshell-go/button"
	"pixelshell-go/config"
	"pixelshell-go/errcode"
	"pixelshell-go/shell"
)

// Board is the hardware the launcher needs.
type Board struct {
	Device config.Device
	Keys   *button.Reader
	Panel  drivers.Displayer
	Halter shell.Halter
}

// Open loads the embedded configuration for BoardName and configures the
// hardware it describes.
func Open() (*Board, error) {
	if BoardName == "" {
		return nil, &errcode.E{C: errcode.Unsupported, Op: "platform.open", Msg: "no board for this target"}
	}
	dev, err := config.Load(BoardName)
	if err != nil {
		return nil, err
	}
	return open(dev)
}

// parseGP accepts "GP4", "gp4" or "4" and returns the GPIO number.
func parseGP(name string) (int, error) {
	s := strings.TrimPrefix(strings.ToUpper(name), "GP")
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 29 {
		return 0, &errcode.E{C: errcode.UnknownPin, Op: "platform.pin", Msg: name}
	}
	return n, nil
}

// i2cIndex is the RP2 I²C controller a given SDA pin belongs to. SDA
// functions alternate between I2C0 and I2C1 every two pins.
func i2cIndex(sda int) int { return (sda / 2) % 2 }

// uartIndex is the RP2 UART a given TX pin belongs to. UART functions move
// in blocks of four pins: UART0, UART1, UART1, UART0, repeating.
func uartIndex(tx int) int {
	switch (tx / 4) % 4 {
	case 1, 2:
		return 1
	}
	return 0
}
