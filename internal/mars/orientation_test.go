package mars

import (
	"errors"
	"testing"
)

var headings = []Orientation{North, East, South, West}

func TestTurnsAreInverse(t *testing.T) {
	for _, o := range headings {
		if got := o.Right().Left(); got != o {
			t.Fatalf("%v: right then left gave %v", o, got)
		}
		if got := o.Left().Right(); got != o {
			t.Fatalf("%v: left then right gave %v", o, got)
		}
	}
}

func TestFourTurnsReturnHome(t *testing.T) {
	for _, o := range headings {
		l, r := o, o
		for i := 0; i < 4; i++ {
			l = l.Left()
			r = r.Right()
		}
		if l != o || r != o {
			t.Fatalf("%v: four turns gave left=%v right=%v", o, l, r)
		}
	}
}

func TestRightCycle(t *testing.T) {
	want := map[Orientation]Orientation{North: East, East: South, South: West, West: North}
	for from, to := range want {
		if got := from.Right(); got != to {
			t.Fatalf("%v.Right() want %v got %v", from, to, got)
		}
	}
}

func TestStep(t *testing.T) {
	p := Position{X: 2, Y: 2}
	cases := map[Orientation]Position{
		North: {2, 3},
		South: {2, 1},
		East:  {3, 2},
		West:  {1, 2},
	}
	for o, want := range cases {
		if got := p.Step(o); got != want {
			t.Fatalf("step %v want %v got %v", o, want, got)
		}
	}
}

func TestInvalidOrientationPanics(t *testing.T) {
	bad := Orientation(7)
	for name, fn := range map[string]func(){
		"left":  func() { bad.Left() },
		"right": func() { bad.Right() },
		"step":  func() { Position{}.Step(bad) },
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				err, ok := recover().(error)
				if !ok || !errors.Is(err, ErrInvalidOrientation) {
					t.Fatalf("want ErrInvalidOrientation panic, got %v", err)
				}
			}()
			fn()
		})
	}
}

func TestParseOrientation(t *testing.T) {
	for _, o := range headings {
		got, err := ParseOrientation(o.String())
		if err != nil || got != o {
			t.Fatalf("parse %q: got %v, %v", o.String(), got, err)
		}
	}
	if _, err := ParseOrientation("Q"); !errors.Is(err, ErrInvalidOrientation) {
		t.Fatalf("want ErrInvalidOrientation, got %v", err)
	}
}

func TestInstructionKnown(t *testing.T) {
	for _, in := range []Instruction{TurnLeft, TurnRight, Forward} {
		if !in.Known() {
			t.Fatalf("%v should be known", in)
		}
	}
	for _, in := range ParseInstructions("lrfX#1 ") {
		if in.Known() {
			t.Fatalf("%q should be unknown", in)
		}
	}
}
