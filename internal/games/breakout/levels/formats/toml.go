package formats

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// TOMLLevel represents the TOML structure for a level file.
// TOML has no null, so empty grid cells are written as 0.
type TOMLLevel struct {
	ID       string            `toml:"id"`
	Name     string            `toml:"name"`
	Grid     [][]int           `toml:"grid"`
	Rows     []string          `toml:"rows"`
	Metadata map[string]string `toml:"metadata"`
}

// ParseTOML parses a TOML level file.
func ParseTOML(data []byte) (Level, error) {
	var tl TOMLLevel
	if _, err := toml.Decode(string(data), &tl); err != nil {
		return Level{}, fmt.Errorf("toml decode: %w", err)
	}

	return build(tl.ID, tl.Name, tl.Grid, tl.Rows, tl.Metadata)
}
