package main

import (
	"github.com/kelseyhightower/envconfig"

	"pixelshell-go/config"
)

// Settings are read from SHELLSIM_* environment variables. Zero timing
// values keep whatever the board config says.
type Settings struct {
	Board       string `envconfig:"BOARD" default:"sim"`
	IdleMs      int64  `envconfig:"IDLE_MS"`
	LongPressMs int64  `envconfig:"LONG_PRESS_MS"`
	TickMs      int64  `envconfig:"TICK_MS"`
	InitialApp  string `envconfig:"INITIAL_APP"`
	HoldMs      int64  `envconfig:"HOLD_MS" default:"150"`
	LogFile     string `envconfig:"LOG_FILE" default:"shellsim.log"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LogJSON     bool   `envconfig:"LOG_JSON" default:"false"`
}

func loadSettings() (Settings, error) {
	var s Settings
	if err := envconfig.Process("shellsim", &s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// device loads the board config and applies the overrides.
func (s Settings) device() (config.Device, error) {
	d, err := config.Load(s.Board)
	if err != nil {
		return config.Device{}, err
	}
	if s.IdleMs > 0 {
		d.IdleMs = s.IdleMs
	}
	if s.LongPressMs > 0 {
		d.LongPressMs = s.LongPressMs
	}
	if s.TickMs > 0 {
		d.TickMs = s.TickMs
	}
	if s.InitialApp != "" {
		d.InitialApp = s.InitialApp
	}
	return d, nil
}
