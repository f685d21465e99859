package embedding

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeVectorUnitLength(t *testing.T) {
	out := NormalizeVector([]float32{3, 4})

	assert.InDelta(t, 0.6, out[0], 1e-6)
	assert.InDelta(t, 0.8, out[1], 1e-6)

	var magnitude float64
	for _, v := range out {
		magnitude += float64(v) * float64(v)
	}
	assert.InDelta(t, 1.0, math.Sqrt(magnitude), 1e-6)
}

func TestNormalizeVectorZeroVector(t *testing.T) {
	out := NormalizeVector([]float32{0, 0, 0})
	assert.Equal(t, []float32{0, 0, 0}, out)
}

func TestNormalizeVectorAlreadyNormalized(t *testing.T) {
	out := NormalizeVector([]float32{1, 0})
	assert.InDelta(t, 1.0, out[0], 1e-6)
	assert.InDelta(t, 0.0, out[1], 1e-6)
}
