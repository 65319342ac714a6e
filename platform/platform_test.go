package platform

import (
	"testing"

	"pixelshell-go/errcode"
)

func TestParseGP(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"GP4", 4, true},
		{"gp16", 16, true},
		{"7", 7, true},
		{"GP29", 29, true},
		{"GP30", 0, false},
		{"GPIO5", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		got, err := parseGP(c.in)
		if c.ok && (err != nil || got != c.want) {
			t.Fatalf("parseGP(%q) = %d, %v", c.in, got, err)
		}
		if !c.ok && errcode.Of(err) != errcode.UnknownPin {
			t.Fatalf("parseGP(%q) err = %v, want unknown_pin", c.in, err)
		}
	}
}

func TestI2CIndex(t *testing.T) {
	for sda, want := range map[int]int{0: 0, 2: 1, 4: 0, 6: 1, 16: 0, 18: 1, 26: 1} {
		if got := i2cIndex(sda); got != want {
			t.Fatalf("i2cIndex(%d) = %d, want %d", sda, got, want)
		}
	}
}

func TestUARTIndex(t *testing.T) {
	for tx, want := range map[int]int{0: 0, 4: 1, 8: 1, 12: 0, 16: 0, 20: 1, 24: 1, 28: 0} {
		if got := uartIndex(tx); got != want {
			t.Fatalf("uartIndex(%d) = %d, want %d", tx, got, want)
		}
	}
}
