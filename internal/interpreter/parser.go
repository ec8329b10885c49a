package interpreter

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var ErrNoGrid = errors.New("mission has no grid line")

// Mission is one run: a grid declaration followed by robot records.
//
//	5 3
//	1 1 E
//	RFRFRFRF
type Mission struct {
	Pos    lexer.Position
	Grid   *Grid         `parser:"@@?"`
	Robots []*RobotRecord `parser:"@@*"`
}

type Grid struct {
	Pos  lexer.Position
	MaxX int `parser:"@Int"`
	MaxY int `parser:"@Int"`
}

// RobotRecord is a starting pose and the instruction line that follows it.
// The instruction line is taken verbatim up to the end of the line, so any
// symbol on it reaches the engine. A pose at the end of the input without an
// instruction line has an empty program.
type RobotRecord struct {
	Pos     lexer.Position
	X       int    `parser:"@Int"`
	Y       int    `parser:"@Int"`
	Heading string `parser:"@Heading"`
	Program string `parser:"@Program?"`
}

// After a heading the lexer switches to the program state, where the next
// non-blank line is one Program token.
var missionLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{Name: "Blank", Pattern: `[ \t\r]+`},
		{Name: "EOL", Pattern: `\n`},
		{Name: "Int", Pattern: `-?\d+`},
		{Name: "Heading", Pattern: `[^\s\d-]\S*`, Action: lexer.Push("Program")},
	},
	"Program": {
		{Name: "Blank", Pattern: `[ \t\r]+`},
		{Name: "EOL", Pattern: `\n`},
		{Name: "Program", Pattern: `\S[^\n]*`, Action: lexer.Pop()},
	},
})

var parser = participle.MustBuild[Mission](
	participle.Lexer(missionLexer),
	participle.Elide("Blank", "EOL"),
)

// Parse parses a mission document. name is used in error positions.
func Parse(name, data string) (*Mission, error) {
	m, err := parser.ParseString(name, data)
	if err != nil {
		return nil, err
	}
	if m.Grid == nil {
		return nil, fmt.Errorf("%s: %w", name, ErrNoGrid)
	}
	return m, nil
}

// Name is the file name the mission was parsed from.
func (m *Mission) Name() string {
	return m.Pos.Filename
}
