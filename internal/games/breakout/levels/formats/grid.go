// Package formats provides pluggable level file format parsers.
package formats

import (
	"errors"
	"fmt"
)

var (
	// ErrNoRows is returned for a level without any grid rows.
	ErrNoRows = errors.New("level has no rows")

	// ErrEmptyLevel is returned for a level whose grid holds no bricks.
	ErrEmptyLevel = errors.New("level has no bricks")
)

// Level represents a parsed level ready for use.
// Grid cells hold brick durability; 0 means no brick.
type Level struct {
	ID       string
	Name     string
	Grid     [][]int
	Metadata map[string]string
}

// ParseRows converts an ASCII map into a grid.
// Characters:
//
//	'.' or ' ' = empty
//	'#' = brick with durability 1
//	'1'-'9' = brick with that durability
//	'H' = hard brick (durability 3)
//
// Any other character is treated as empty.
func ParseRows(lines []string) [][]int {
	grid := make([][]int, len(lines))
	for row, line := range lines {
		cells := make([]int, 0, len(line))
		for _, ch := range line {
			switch {
			case ch == '#':
				cells = append(cells, 1)
			case ch == 'H':
				cells = append(cells, 3)
			case ch >= '1' && ch <= '9':
				cells = append(cells, int(ch-'0'))
			default:
				cells = append(cells, 0)
			}
		}
		grid[row] = cells
	}
	return grid
}

// Normalize pads every row to the longest row so the grid is rectangular.
// Empty rows keep their slot. Negative cells are rejected.
func Normalize(grid [][]int) ([][]int, error) {
	if len(grid) == 0 {
		return nil, ErrNoRows
	}

	width := 0
	for _, row := range grid {
		width = max(width, len(row))
	}

	out := make([][]int, len(grid))
	bricks := 0
	for r, row := range grid {
		out[r] = make([]int, width)
		for c, cell := range row {
			if cell < 0 {
				return nil, fmt.Errorf("cell (%d, %d): negative durability %d", r, c, cell)
			}
			if cell > 0 {
				bricks++
			}
			out[r][c] = cell
		}
	}

	if bricks == 0 {
		return out, ErrEmptyLevel
	}
	return out, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".toml"}
}

// build assembles a Level from either a numeric grid or ASCII rows.
func build(id, name string, grid [][]int, rows []string, meta map[string]string) (Level, error) {
	if len(grid) == 0 && len(rows) > 0 {
		grid = ParseRows(rows)
	}

	normalized, err := Normalize(grid)
	if err != nil {
		return Level{}, err
	}

	return Level{
		ID:       id,
		Name:     name,
		Grid:     normalized,
		Metadata: meta,
	}, nil
}
