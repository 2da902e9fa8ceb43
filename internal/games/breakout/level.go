// Package breakout implements the brick-breaker session: ball physics,
// bricks, bonuses, the countdown and the game state machine.
package breakout

import (
	"github.com/vovakirdan/tui-breaker/internal/games/breakout/levels"
	"github.com/vovakirdan/tui-breaker/internal/games/breakout/levels/formats"
)

// Level represents a playable brick layout.
// Grid cells hold durability; 0 means no brick.
type Level struct {
	ID   string
	Name string
	Grid [][]int
}

// Clone creates a deep copy of the level.
func (l Level) Clone() Level {
	clone := Level{ID: l.ID, Name: l.Name, Grid: make([][]int, len(l.Grid))}
	for i, row := range l.Grid {
		clone.Grid[i] = append([]int(nil), row...)
	}
	return clone
}

// Width returns the length of the longest row.
func (l Level) Width() int {
	w := 0
	for _, row := range l.Grid {
		w = max(w, len(row))
	}
	return w
}

// Height returns the number of rows.
func (l Level) Height() int {
	return len(l.Grid)
}

// CountBricks returns the number of non-empty cells.
func (l Level) CountBricks() int {
	count := 0
	for _, row := range l.Grid {
		for _, cell := range row {
			if cell > 0 {
				count++
			}
		}
	}
	return count
}

// ParseLevel creates a Level from an ASCII map ('.' empty, '#' or '1'-'9'
// durability, 'H' hard). Ragged rows are padded.
func ParseLevel(id, name string, lines []string) Level {
	grid, err := formats.Normalize(formats.ParseRows(lines))
	if err != nil && grid == nil {
		return Level{ID: id, Name: name}
	}
	return Level{ID: id, Name: name, Grid: grid}
}

// FromFile converts a loaded level file.
func FromFile(lvl levels.Level) Level {
	return Level{ID: lvl.ID, Name: lvl.Name, Grid: lvl.Grid}.Clone()
}

// BuiltinLevels returns all built-in levels.
func BuiltinLevels() []Level {
	return []Level{
		ParseLevel("classic", "Classic", []string{
			"3333333333",
			"2222222222",
			"2222222222",
			"1111111111",
			"1111111111",
		}),

		ParseLevel("pyramid", "Pyramid", []string{
			"....33....",
			"...2222...",
			"..222222..",
			".11111111.",
			"1111111111",
		}),

		ParseLevel("checker", "Checkerboard", []string{
			"2.2.2.2.2.",
			".1.1.1.1.1",
			"2.2.2.2.2.",
			".1.1.1.1.1",
			"2.2.2.2.2.",
		}),

		ParseLevel("diamond", "Diamond", []string{
			"....11....",
			"...1221...",
			"..123321..",
			"...1221...",
			"....11....",
		}),

		ParseLevel("fortress", "Fortress", []string{
			"HHHHHHHHHH",
			"H........H",
			"H.222222.H",
			"H.111111.H",
			"H........H",
		}),

		ParseLevel("striped", "Striped", []string{
			"3333333333",
			"..........",
			"2222222222",
			"..........",
			"1111111111",
		}),

		ParseLevel("invaders", "Invaders", []string{
			"..1....1..",
			".111..111.",
			"1212112121",
			"1111111111",
			".1.1..1.1.",
		}),

		ParseLevel("boss", "Final Boss", []string{
			"HHHHHHHHHH",
			"H22222222H",
			"H21111112H",
			"H22222222H",
			"HHHHHHHHHH",
		}),
	}
}

// LoadLevels returns the levels found in dir, or the built-ins when dir is
// empty or holds no usable level. The error reports a directory that could
// not be read.
func LoadLevels(dir string) ([]Level, error) {
	if dir == "" {
		return BuiltinLevels(), nil
	}
	files, _, err := levels.NewLoader(dir).LoadAll()
	if len(files) == 0 {
		return BuiltinLevels(), err
	}
	out := make([]Level, len(files))
	for i, f := range files {
		out[i] = FromFile(f)
	}
	return out, err
}
