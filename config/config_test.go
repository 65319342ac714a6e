// config/config_test.go
package config

import (
	"testing"
	"time"

	"pixelshell-go/bus"
	"pixelshell-go/button"
	"pixelshell-go/errcode"
)

func TestEmbeddedBoardsDecode(t *testing.T) {
	for _, board := range []string{"pico", "rpi", "sim"} {
		d, err := Load(board)
		if err != nil {
			t.Fatalf("%s: %v", board, err)
		}
		if d.Board != board {
			t.Fatalf("%s: board = %q", board, d.Board)
		}
		if _, err := d.Pins(); err != nil {
			t.Fatalf("%s: pins: %v", board, err)
		}
		if d.TickMs <= 0 || d.Panel.Width <= 0 {
			t.Fatalf("%s: bad tuning %+v", board, d)
		}
	}
}

func TestBoardsWithGlassHaveAPanel(t *testing.T) {
	for _, board := range []string{"pico", "rpi"} {
		d, _ := Load(board)
		if d.Panel.Kind != "ssd1306" || d.Panel.I2CAddr == 0 {
			t.Fatalf("%s: panel = %+v", board, d.Panel)
		}
	}
}

func TestDefaultsApplied(t *testing.T) {
	old := EmbeddedConfigLookup
	EmbeddedConfigLookup = func(board string) ([]byte, bool) {
		return []byte(`{"panel": {"width": 8, "height": 8}}`), true
	}
	t.Cleanup(func() { EmbeddedConfigLookup = old })

	d, err := Load("bench")
	if err != nil {
		t.Fatal(err)
	}
	if d.Board != "bench" || d.IdleMs != 15000 || d.LongPressMs != 300 || d.TickMs != DefaultTickMs {
		t.Fatalf("defaults not applied: %+v", d)
	}
	if d.InitialApp != DefaultInitialApp || d.Panel.Kind != "framebuffer" {
		t.Fatalf("defaults not applied: %+v", d)
	}
	if _, err := d.Pins(); errcode.Of(err) != errcode.NotConfigured {
		t.Fatalf("Pins err = %v, want not_configured", err)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(""); errcode.Of(err) != errcode.InvalidParams {
		t.Fatalf("empty board: %v", err)
	}
	if _, err := Load("toaster"); errcode.Of(err) != errcode.UnknownBoard {
		t.Fatalf("unknown board: %v", err)
	}

	cases := []struct {
		raw  string
		code errcode.Code
	}{
		{`{`, errcode.InvalidParams},
		{`{"buttons": {"middle": "GP1"}, "panel": {"width": 8, "height": 8}}`, errcode.UnknownButton},
		{`{"idle_ms": -1, "panel": {"width": 8, "height": 8}}`, errcode.InvalidParams},
		{`{"panel": {"width": 0, "height": 8}}`, errcode.InvalidParams},
		{`{"panel": {"kind": "ssd1306", "width": 128, "height": 60}}`, errcode.InvalidParams},
	}
	for _, c := range cases {
		if _, err := Decode([]byte(c.raw)); errcode.Of(err) != c.code {
			t.Fatalf("Decode(%s) err = %v, want %s", c.raw, err, c.code)
		}
	}
}

func TestPinsOrdinalOrder(t *testing.T) {
	d, err := Load("pico")
	if err != nil {
		t.Fatal(err)
	}
	pins, _ := d.Pins()
	if pins[button.Left] != "GP4" || pins[button.Right] != "GP2" {
		t.Fatalf("pins = %v", pins)
	}
}

func TestPublishRetained(t *testing.T) {
	b := bus.NewBus(4)
	conn := b.NewConnection("test-config")
	d, _ := Load("sim")
	Publish(conn, d)

	sub := conn.Subscribe(bus.T(configPrefix, "#"))
	select {
	case m := <-sub.Channel():
		got, ok := m.Payload.(Device)
		if !ok || got.Board != "sim" {
			t.Fatalf("payload = %#v", m.Payload)
		}
	case <-time.After(200 * time.Millisecond):
		t.Fatal("no retained device config")
	}
}
