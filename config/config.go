// Package config resolves the per-board device description compiled into
// the binary.
package config

import (
	"encoding/json"

	"pixelshell-go/bus"
	"pixelshell-go/button"
	"pixelshell-go/errcode"
	"pixelshell-go/keypad"
)

const (
	configPrefix = "config"

	DefaultTickMs     = 10
	DefaultInitialApp = "splash"
)

// EmbeddedConfigLookup allows overriding how configs are resolved.
var EmbeddedConfigLookup = func(board string) ([]byte, bool) {
	b, ok := embeddedConfigs[board]
	return b, ok
}

// Device describes one board: where its buttons and panel are and how the
// shell should be tuned on it.
type Device struct {
	Board string `json:"board"`

	// Buttons maps a button name ("left", "up", ...) to a board pin name.
	Buttons   map[string]string `json:"buttons"`
	ActiveLow bool              `json:"active_low"`
	WakePin   string            `json:"wake_pin"`

	IdleMs      int64 `json:"idle_ms"`
	LongPressMs int64 `json:"long_press_ms"`
	TickMs      int64 `json:"tick_ms"`

	InitialApp string `json:"initial_app"`
	Panel      Panel  `json:"panel"`

	// Console is the log UART on boards that have one.
	Console *Console `json:"console,omitempty"`

	// HeartbeatS is the status log period in seconds; 0 disables it.
	HeartbeatS int `json:"heartbeat_s"`
}

type Console struct {
	TX   string `json:"tx"`
	RX   string `json:"rx"`
	Baud uint32 `json:"baud"`
}

// Panel describes the display hardware.
type Panel struct {
	Kind    string `json:"kind"` // "ssd1306" or "framebuffer"
	Width   int16  `json:"width"`
	Height  int16  `json:"height"`
	I2CAddr uint16 `json:"i2c_addr,omitempty"`
	SDA     string `json:"sda,omitempty"`
	SCL     string `json:"scl,omitempty"`
	// Bus names the I²C bus on Linux boards ("1" for /dev/i2c-1); empty
	// opens the first one found.
	Bus string `json:"bus,omitempty"`
}

// Load resolves and decodes the embedded config for board.
func Load(board string) (Device, error) {
	if board == "" {
		return Device{}, &errcode.E{C: errcode.InvalidParams, Op: "config.load", Msg: "empty board"}
	}
	raw, ok := EmbeddedConfigLookup(board)
	if !ok || len(raw) == 0 {
		return Device{}, &errcode.E{C: errcode.UnknownBoard, Op: "config.load", Msg: board}
	}
	d, err := Decode(raw)
	if err != nil {
		return Device{}, err
	}
	if d.Board == "" {
		d.Board = board
	}
	return d, nil
}

// Decode parses raw JSON, fills defaults and validates the result.
func Decode(raw []byte) (Device, error) {
	var d Device
	if err := json.Unmarshal(raw, &d); err != nil {
		return Device{}, errcode.Wrap(errcode.InvalidParams, "config.decode", err)
	}
	d.applyDefaults()
	if err := d.validate(); err != nil {
		return Device{}, err
	}
	return d, nil
}

func (d *Device) applyDefaults() {
	if d.IdleMs == 0 {
		d.IdleMs = keypad.DefaultIdleTimeoutMs
	}
	if d.LongPressMs == 0 {
		d.LongPressMs = keypad.DefaultLongPressMs
	}
	if d.TickMs == 0 {
		d.TickMs = DefaultTickMs
	}
	if d.InitialApp == "" {
		d.InitialApp = DefaultInitialApp
	}
	if d.Panel.Kind == "" {
		d.Panel.Kind = "framebuffer"
	}
}

func (d *Device) validate() error {
	for name := range d.Buttons {
		if _, err := button.Parse(name); err != nil {
			return &errcode.E{C: errcode.UnknownButton, Op: "config.validate", Msg: name}
		}
	}
	switch {
	case d.IdleMs < 0, d.LongPressMs < 0, d.TickMs < 0:
		return &errcode.E{C: errcode.InvalidParams, Op: "config.validate", Msg: "negative timing"}
	case d.Panel.Width <= 0 || d.Panel.Height <= 0:
		return &errcode.E{C: errcode.InvalidParams, Op: "config.validate", Msg: "panel size"}
	case d.Panel.Kind == "ssd1306" && d.Panel.Height%8 != 0:
		return &errcode.E{C: errcode.InvalidParams, Op: "config.validate", Msg: "ssd1306 height must be a multiple of 8"}
	}
	return nil
}

// Pins lists the pin name of every button in ordinal order. A button with
// no pin is an error.
func (d Device) Pins() ([button.Count]string, error) {
	var pins [button.Count]string
	for _, b := range button.All {
		p, ok := d.Buttons[b.String()]
		if !ok || p == "" {
			return pins, &errcode.E{C: errcode.NotConfigured, Op: "config.pins", Msg: b.String()}
		}
		pins[b] = p
	}
	return pins, nil
}

// Publish places the device description on the bus as a retained message
// for tooling.
func Publish(conn *bus.Connection, d Device) {
	conn.Publish(conn.NewMessage(bus.T(configPrefix, "device"), d, true))
}
