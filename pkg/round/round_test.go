package round

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInteger(t *testing.T) {
	tests := []struct {
		in                      float64
		up, down, even, oddWant float64
	}{
		{2.5, 3, 2, 2, 3},
		{3.5, 4, 3, 4, 3},
		{-2.5, -3, -2, -2, -3},
		{-3.5, -4, -3, -4, -3},
		{1.2, 1, 1, 1, 1},
		{1.7, 2, 2, 2, 2},
		{-1.7, -2, -2, -2, -2},
		{0, 0, 0, 0, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.up, Integer(tt.in, HalfUp), "half up %v", tt.in)
		assert.Equal(t, tt.down, Integer(tt.in, HalfDown), "half down %v", tt.in)
		assert.Equal(t, tt.even, Integer(tt.in, HalfEven), "half even %v", tt.in)
		assert.Equal(t, tt.oddWant, Integer(tt.in, HalfOdd), "half odd %v", tt.in)
	}
}

func TestFloat(t *testing.T) {
	assert.InDelta(t, 1.23, Float(1.2345, 2, HalfUp), 1e-12)
	assert.InDelta(t, 0.12, Float(0.125, 2, HalfEven), 1e-12)
	assert.InDelta(t, 0.13, Float(0.125, 2, HalfUp), 1e-12)
	assert.InDelta(t, 1200.0, Float(1234, -2, HalfUp), 1e-9)
	assert.Equal(t, 2.0, Float(2.5, 0, HalfEven))
	assert.Equal(t, 3.0, Float(2.5, 0, Mode(0)), "unknown mode behaves as half up")
}

func TestFloat_NonFinite(t *testing.T) {
	assert.True(t, math.IsNaN(Float(math.NaN(), 2, HalfUp)))
	assert.True(t, math.IsInf(Float(math.Inf(1), 2, HalfUp), 1))
	assert.Equal(t, math.MaxFloat64, Float(math.MaxFloat64, 10, HalfUp))
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "half_even", HalfEven.String())
	assert.Equal(t, "unknown", Mode(9).String())
}
