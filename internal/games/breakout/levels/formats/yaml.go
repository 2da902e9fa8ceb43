package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
// Either Grid (null for an empty cell) or Rows (ASCII) must be set.
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Grid     [][]*int          `yaml:"grid,omitempty"`
	Rows     []string          `yaml:"rows,omitempty"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	grid := make([][]int, len(yl.Grid))
	for r, row := range yl.Grid {
		grid[r] = make([]int, len(row))
		for c, cell := range row {
			if cell != nil {
				grid[r][c] = *cell
			}
		}
	}

	return build(yl.ID, yl.Name, grid, yl.Rows, yl.Metadata)
}
