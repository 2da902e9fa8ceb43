package formats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRows(t *testing.T) {
	grid := ParseRows([]string{"#.3", "H 9x"})
	assert.Equal(t, [][]int{{1, 0, 3}, {3, 0, 9, 0}}, grid)
}

func TestNormalize(t *testing.T) {
	grid, err := Normalize([][]int{{1}, {}, {0, 2, 2}})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 0, 0}, {0, 0, 0}, {0, 2, 2}}, grid, "ragged rows are padded, empty rows kept")

	_, err = Normalize(nil)
	assert.ErrorIs(t, err, ErrNoRows)

	_, err = Normalize([][]int{{0, 0}, {}})
	assert.ErrorIs(t, err, ErrEmptyLevel)

	_, err = Normalize([][]int{{1, -1}})
	assert.Error(t, err)
}

func TestParseYAMLGrid(t *testing.T) {
	data := []byte(`
id: arches
name: Arches
grid:
  - [1, null, 1]
  - [2, 2]
metadata:
  author: test
`)
	lvl, err := ParseYAML(data)
	require.NoError(t, err)

	assert.Equal(t, "arches", lvl.ID)
	assert.Equal(t, "Arches", lvl.Name)
	assert.Equal(t, [][]int{{1, 0, 1}, {2, 2, 0}}, lvl.Grid)
	assert.Equal(t, "test", lvl.Metadata["author"])
}

func TestParseYAMLRows(t *testing.T) {
	lvl, err := ParseYAML([]byte("id: ascii\nrows:\n  - \"#.#\"\n  - \"222\"\n"))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 0, 1}, {2, 2, 2}}, lvl.Grid)
}

func TestParseYAMLErrors(t *testing.T) {
	_, err := ParseYAML([]byte("id: [broken"))
	assert.Error(t, err)

	_, err = ParseYAML([]byte("id: blank\ngrid:\n  - [null, 0]\n"))
	assert.ErrorIs(t, err, ErrEmptyLevel)

	_, err = ParseYAML([]byte("id: none\n"))
	assert.ErrorIs(t, err, ErrNoRows)
}

func TestParseTOML(t *testing.T) {
	data := []byte(`
id = "tiles"
name = "Tiles"
grid = [
  [1, 0, 1],
  [3],
]
`)
	lvl, err := ParseTOML(data)
	require.NoError(t, err)

	assert.Equal(t, "tiles", lvl.ID)
	assert.Equal(t, [][]int{{1, 0, 1}, {3, 0, 0}}, lvl.Grid)
}

func TestParseTOMLRows(t *testing.T) {
	lvl, err := ParseTOML([]byte("id = \"r\"\nrows = [\"1.1\", \".H.\"]\n"))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 0, 1}, {0, 3, 0}}, lvl.Grid)
}
