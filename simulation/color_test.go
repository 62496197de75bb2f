package simulation

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTintRGBA(t *testing.T) {
	assert.Equal(t, color.RGBA{255, 0, 127, 255}, TintRGBA(NewColor(1, 0, 0.5)))
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, TintRGBA(NewColor(3, -1, float32(math.NaN()))))
}
