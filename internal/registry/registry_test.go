package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vovakirdan/tui-breaker/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(core.Canvas)                   {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterCreateList(t *testing.T) {
	Register("stub_a", func() Game { return &stubGame{id: "stub_a"} })

	assert.True(t, Exists("stub_a"))
	assert.False(t, Exists("stub_missing"))

	g, err := Create("stub_a")
	require.NoError(t, err)
	assert.Equal(t, "stub_a", g.ID())

	found := false
	for _, info := range List() {
		if info.ID == "stub_a" {
			found = true
			assert.Equal(t, "Stub stub_a", info.Title)
		}
	}
	assert.True(t, found, "List() should include registered mode")
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("stub_unknown")
	assert.Error(t, err)
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })
	assert.Panics(t, func() {
		Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })
	})
}
