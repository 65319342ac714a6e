package button

// Set is an immutable bitmask over the buttons; bit b is Mask(b).
type Set uint8

// SetOf builds a set from individual buttons.
func SetOf(bs ...Button) Set {
	var s Set
	for _, b := range bs {
		s |= b.Mask()
	}
	return s
}

func (s Set) Has(b Button) bool    { return s&b.Mask() != 0 }
func (s Set) With(b Button) Set    { return s | b.Mask() }
func (s Set) Without(b Button) Set { return s &^ b.Mask() }
func (s Set) Empty() bool          { return s == 0 }

// NotIn returns the buttons present in s but absent from other. With s the
// new sample and other the previous one this is the set of rising edges.
func (s Set) NotIn(other Set) Set { return s &^ other }

// Difference is the symmetric difference (XOR).
func (s Set) Difference(other Set) Set { return s ^ other }

// Len counts members.
func (s Set) Len() int {
	n := 0
	for v := s; v != 0; v &= v - 1 {
		n++
	}
	return n
}

// Each calls fn for each member in ordinal order.
func (s Set) Each(fn func(Button)) {
	for _, b := range All {
		if s.Has(b) {
			fn(b)
		}
	}
}

func (s Set) String() string {
	if s == 0 {
		return "{}"
	}
	out := "{"
	first := true
	s.Each(func(b Button) {
		if !first {
			out += ","
		}
		out += b.String()
		first = false
	})
	return out + "}"
}
