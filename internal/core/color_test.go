package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDarken(t *testing.T) {
	base := HSL(120, 0.7, 0.5)
	_, _, l := Darken(base, 50).Hsl()
	assert.InDelta(t, 0.25, l, 0.01)

	_, _, l = Darken(base, 0).Hsl()
	assert.InDelta(t, 0.5, l, 0.01)
}
