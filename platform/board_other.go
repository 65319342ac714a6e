//go:build !linux && !(rp2040 || rp2350)

package platform

import (
	"pixelshell-go/config"
	"pixelshell-go/errcode"
)

// BoardName is empty: there is no hardware to drive on this target.
const BoardName = ""

func open(config.Device) (*Board, error) {
	return nil, &errcode.E{C: errcode.Unsupported, Op: "platform.open"}
}
