package button

import "pixelshell-go/errcode"

// Input is the raw capability behind one logical button. Read reports the
// instantaneous pressed state; any analog threshold or pin inversion is the
// implementation's business.
type Input interface {
	Setup() error
	Read() bool
}

// Reader samples a full cluster of inputs into a Set.
type Reader struct {
	in [Count]Input
}

// NewReader binds one input per button, indexed by ordinal. A nil input
// reads as released.
func NewReader(in [Count]Input) *Reader { return &Reader{in: in} }

// Setup configures every input. The first failure is returned.
func (r *Reader) Setup() error {
	for _, b := range All {
		if r.in[b] == nil {
			continue
		}
		if err := r.in[b].Setup(); err != nil {
			return &errcode.E{C: errcode.PinSetup, Op: "button.setup", Msg: b.String(), Err: err}
		}
	}
	return nil
}

// Read samples each button independently.
func (r *Reader) Read() Set {
	var s Set
	for _, b := range All {
		if in := r.in[b]; in != nil && in.Read() {
			s |= b.Mask()
		}
	}
	return s
}

// Func adapts a plain read function into an Input with no setup step.
type Func func() bool

func (f Func) Setup() error { return nil }
func (f Func) Read() bool   { return f() }
