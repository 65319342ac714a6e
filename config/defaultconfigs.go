package config

// -----------------------------------------------------------------------------
// Embedded configuration
//
// Key: board name (selected by build target, see platform)
// Val: raw JSON bytes for that board
// -----------------------------------------------------------------------------

const cfgPico = `{
  "board": "pico",
  "buttons": {
    "left": "GP4",
    "up": "GP3",
    "center": "GP6",
    "down": "GP5",
    "right": "GP2"
  },
  "active_low": true,
  "wake_pin": "GP6",
  "tick_ms": 10,
  "panel": {
    "kind": "ssd1306",
    "width": 128,
    "height": 64,
    "i2c_addr": 60,
    "sda": "GP16",
    "scl": "GP17"
  },
  "console": {
    "tx": "GP0",
    "rx": "GP1",
    "baud": 115200
  },
  "heartbeat_s": 30
}`

const cfgRPi = `{
  "board": "rpi",
  "buttons": {
    "left": "GPIO5",
    "up": "GPIO6",
    "center": "GPIO13",
    "down": "GPIO19",
    "right": "GPIO26"
  },
  "active_low": true,
  "wake_pin": "GPIO13",
  "tick_ms": 10,
  "panel": {
    "kind": "ssd1306",
    "width": 128,
    "height": 64,
    "i2c_addr": 60,
    "bus": "1"
  },
  "heartbeat_s": 10
}`

const cfgSim = `{
  "board": "sim",
  "buttons": {
    "left": "a",
    "up": "w",
    "center": "s",
    "down": "x",
    "right": "d"
  },
  "wake_pin": "z",
  "idle_ms": 15000,
  "long_press_ms": 300,
  "tick_ms": 20,
  "panel": {
    "kind": "framebuffer",
    "width": 72,
    "height": 40
  },
  "heartbeat_s": 5
}`

var embeddedConfigs = map[string][]byte{
	"pico": []byte(cfgPico),
	"rpi":  []byte(cfgRPi),
	"sim":  []byte(cfgSim),
}
