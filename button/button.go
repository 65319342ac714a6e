// Package button models the device's five-way button cluster.
//
// Ordinals are laid out so that opposite directions sit symmetrically
// around Center: Opposite(b) == Count-1-b.
package button

import "pixelshell-go/errcode"

// Button is one physical key.
type Button uint8

const (
	Left Button = iota
	Up
	Center
	Down
	Right
)

// Count is the number of buttons.
const Count = 5

// All lists every button in ordinal order.
var All = [Count]Button{Left, Up, Center, Down, Right}

var names = [Count]string{"left", "up", "center", "down", "right"}

func (b Button) String() string {
	if int(b) < Count {
		return names[b]
	}
	return "invalid"
}

// Mask returns the single-bit set for b.
func (b Button) Mask() Set { return Set(1) << b }

// Opposite returns the symmetric direction. Center has no opposite and
// panics.
func Opposite(b Button) Button {
	if b == Center || int(b) >= Count {
		panic("button: Opposite of " + b.String())
	}
	return Count - 1 - b
}

// Parse resolves a configuration name to a Button.
func Parse(name string) (Button, error) {
	for i, n := range names {
		if n == name {
			return Button(i), nil
		}
	}
	return 0, &errcode.E{C: errcode.UnknownButton, Op: "button.parse", Msg: name}
}
