package button

import (
	"errors"
	"testing"

	"pixelshell-go/errcode"
)

func TestMasks(t *testing.T) {
	want := map[Button]Set{Left: 1, Up: 2, Center: 4, Down: 8, Right: 16}
	for b, m := range want {
		if got := b.Mask(); got != m {
			t.Fatalf("Mask(%s) = %d, want %d", b, got, m)
		}
	}
}

func TestOppositeInvolution(t *testing.T) {
	pairs := map[Button]Button{Left: Right, Right: Left, Up: Down, Down: Up}
	for b, o := range pairs {
		if got := Opposite(b); got != o {
			t.Fatalf("Opposite(%s) = %s, want %s", b, got, o)
		}
		if got := Opposite(Opposite(b)); got != b {
			t.Fatalf("Opposite(Opposite(%s)) = %s", b, got)
		}
	}
}

func TestOppositeCenterPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for Opposite(Center)")
		}
	}()
	_ = Opposite(Center)
}

func TestSetAlgebraExhaustive(t *testing.T) {
	for o := 0; o < 32; o++ {
		for n := 0; n < 32; n++ {
			old, nw := Set(o), Set(n)
			if got, want := nw.NotIn(old), Set(n&^o); got != want {
				t.Fatalf("%05b.NotIn(%05b) = %05b, want %05b", n, o, got, want)
			}
			if got, want := nw.Difference(old), Set(n^o); got != want {
				t.Fatalf("%05b.Difference(%05b) = %05b, want %05b", n, o, got, want)
			}
			if (old == nw) != (o == n) {
				t.Fatalf("equality mismatch for %05b/%05b", o, n)
			}
		}
	}
}

func TestEachOrdinalOrder(t *testing.T) {
	var got []Button
	SetOf(Right, Left, Down).Each(func(b Button) { got = append(got, b) })
	want := []Button{Left, Down, Right}
	if len(got) != len(want) {
		t.Fatalf("Each visited %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Each visited %v, want %v", got, want)
		}
	}
	if s := SetOf(Right, Left, Down); s.Len() != 3 || s.String() != "{left,down,right}" {
		t.Fatalf("Len/String = %d/%s", s.Len(), s)
	}
}

func TestParse(t *testing.T) {
	b, err := Parse("down")
	if err != nil || b != Down {
		t.Fatalf("Parse(down) = %v, %v", b, err)
	}
	if _, err := Parse("select"); errcode.Of(err) != errcode.UnknownButton {
		t.Fatalf("Parse(select) err = %v", err)
	}
}

type fakeInput struct {
	pressed  bool
	setupErr error
	setups   int
}

func (f *fakeInput) Setup() error { f.setups++; return f.setupErr }
func (f *fakeInput) Read() bool   { return f.pressed }

func TestReader(t *testing.T) {
	var in [Count]Input
	fakes := [Count]*fakeInput{}
	for i := range in {
		fakes[i] = &fakeInput{}
		in[i] = fakes[i]
	}
	in[Center] = nil // unpopulated position reads released

	r := NewReader(in)
	if err := r.Setup(); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if fakes[Left].setups != 1 {
		t.Fatalf("Left setup count = %d", fakes[Left].setups)
	}

	fakes[Up].pressed = true
	fakes[Right].pressed = true
	if got, want := r.Read(), SetOf(Up, Right); got != want {
		t.Fatalf("Read() = %s, want %s", got, want)
	}
}

func TestReaderSetupError(t *testing.T) {
	cause := errors.New("no such pin")
	var in [Count]Input
	in[Down] = &fakeInput{setupErr: cause}
	err := NewReader(in).Setup()
	if errcode.Of(err) != errcode.PinSetup || !errors.Is(err, cause) {
		t.Fatalf("Setup err = %v", err)
	}
}
