package interpreter

import (
	"errors"
	"testing"

	"martianrobots/internal/mars"
)

const sample = `5 3
1 1 E
RFRFRFRF

3 2 N
FRRFLLFFRRFLL

0 3 W
LLFFFLFLFL
`

func mustParse(t *testing.T, data string) *Mission {
	t.Helper()
	m, err := Parse("input", data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return m
}

func TestParseSample(t *testing.T) {
	m := mustParse(t, sample)
	if m.Grid.MaxX != 5 || m.Grid.MaxY != 3 {
		t.Fatalf("grid want 5 3 got %d %d", m.Grid.MaxX, m.Grid.MaxY)
	}
	if len(m.Robots) != 3 {
		t.Fatalf("want 3 robots got %d", len(m.Robots))
	}
	r := m.Robots[1]
	if r.X != 3 || r.Y != 2 || r.Heading != "N" {
		t.Fatalf("robot 1 got %d %d %s", r.X, r.Y, r.Heading)
	}
	if r.Pos.Line != 5 {
		t.Fatalf("robot 1 should start on line 5, got %d", r.Pos.Line)
	}
	if got := len(r.Instructions()); got != 13 {
		t.Fatalf("want 13 instructions got %d", got)
	}
	if m.Name() != "input" {
		t.Fatalf("name want input got %q", m.Name())
	}
}

func instructionString(in []mars.Instruction) string {
	out := make([]rune, len(in))
	for i, r := range in {
		out[i] = rune(r)
	}
	return string(out)
}

func TestParseProgramLineIsVerbatim(t *testing.T) {
	cases := []struct {
		line string
		want string
	}{
		{"F#F", "F#F"},
		{"1FF", "1FF"},
		{"RF F?", "RF F?"},
		{"42", "42"},
		{"  LRF  \r", "LRF"},
	}
	for _, c := range cases {
		m := mustParse(t, "5 5\n0 0 N\n"+c.line+"\n")
		if len(m.Robots) != 1 {
			t.Fatalf("%q: want 1 robot got %d", c.line, len(m.Robots))
		}
		if got := instructionString(m.Robots[0].Instructions()); got != c.want {
			t.Fatalf("%q: want program %q got %q", c.line, c.want, got)
		}
	}
}

func TestUnknownSymbolsDoNotHideMoves(t *testing.T) {
	for line, want := range map[string]string{
		"F#F": "0 2 N",
		"1FF": "0 2 N",
		"F F": "0 2 N",
	} {
		results, err := mustParse(t, "5 5\n0 0 N\n"+line+"\n").Exec(quietContext())
		if err != nil {
			t.Fatalf("%q: %v", line, err)
		}
		if got := results[0].String(); got != want {
			t.Fatalf("%q: want %s got %s", line, want, got)
		}
	}
}

func TestParseLinesArePaired(t *testing.T) {
	// blank lines are skipped, so the line after a pose is always its program
	m := mustParse(t, "5 3\n1 1 E\n\n2 2 S\n3 3 N\n")
	if len(m.Robots) != 2 {
		t.Fatalf("want 2 robots got %d", len(m.Robots))
	}
	if got := m.Robots[0].Program; got != "2 2 S" {
		t.Fatalf("first program want %q got %q", "2 2 S", got)
	}
	if len(m.Robots[1].Instructions()) != 0 {
		t.Fatalf("trailing pose should have no instructions")
	}
}

func TestParseProgramOnPoseLine(t *testing.T) {
	m := mustParse(t, "5 3\n1 1 E RFRF\n2 2 S\nF\n")
	if len(m.Robots) != 2 || m.Robots[0].Program != "RFRF" || m.Robots[1].Program != "F" {
		t.Fatalf("unexpected records %+v", m.Robots)
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse("empty", "  \n\n"); !errors.Is(err, ErrNoGrid) {
		t.Fatalf("want ErrNoGrid got %v", err)
	}
	for _, bad := range []string{"5", "5 3\n1 1", "5 3\nE 1 1\nF", "5 3 X\n"} {
		if _, err := Parse("bad", bad); err == nil {
			t.Fatalf("%q should not parse", bad)
		}
	}
}

func TestRobotRecordPose(t *testing.T) {
	m := mustParse(t, "5 3\n1 1 Q\nF\n")
	_, err := m.Robots[0].Pose()
	if !errors.Is(err, mars.ErrInvalidOrientation) {
		t.Fatalf("want ErrInvalidOrientation got %v", err)
	}
}
