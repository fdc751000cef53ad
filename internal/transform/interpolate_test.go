package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNew(t *testing.T, scale float64, pos Position, crop Crop, rotation float64) Transform {
	t.Helper()
	tr, err := New(scale, pos, crop, rotation)
	require.NoError(t, err)
	return tr
}

func TestInterpolate_Midpoint(t *testing.T) {
	start := mustNew(t, 1.0, Position{X: 0, Y: 0}, Crop{}, 0)
	end := mustNew(t, 3.0, Position{X: 100, Y: -50}, Crop{Top: 20, Right: 40, Bottom: 60, Left: 80}, 180)

	mid, err := Interpolate(start, end, 0.5)

	require.NoError(t, err)
	assert.InDelta(t, 2.0, mid.Scale, 1e-9)
	assert.InDelta(t, 50.0, mid.Position.X, 1e-9)
	assert.InDelta(t, -25.0, mid.Position.Y, 1e-9)
	assert.InDelta(t, 10.0, mid.Crop.Top, 1e-9)
	assert.InDelta(t, 20.0, mid.Crop.Right, 1e-9)
	assert.InDelta(t, 30.0, mid.Crop.Bottom, 1e-9)
	assert.InDelta(t, 40.0, mid.Crop.Left, 1e-9)
	assert.InDelta(t, 90.0, mid.Rotation, 1e-9)
}

func TestInterpolate_ClampsParameter(t *testing.T) {
	start := mustNew(t, 1.0, Position{}, Crop{}, 0)
	end := mustNew(t, 2.0, Position{X: 10}, Crop{}, 90)

	below, err := Interpolate(start, end, -3)
	require.NoError(t, err)
	assert.Equal(t, start, below)

	above, err := Interpolate(start, end, 7)
	require.NoError(t, err)
	assert.Equal(t, end, above)
}

func TestFrames_Endpoints(t *testing.T) {
	start := mustNew(t, 1.0, Position{X: 1, Y: 2}, Crop{Top: 3}, -30)
	end := mustNew(t, 4.0, Position{X: -7, Y: 9}, Crop{Left: 11}, 270)

	frames, err := Frames(start, end, 5)

	require.NoError(t, err)
	require.Len(t, frames, 5)
	// endpoint frames are field-for-field identical to the inputs
	assert.Equal(t, start, frames[0])
	assert.Equal(t, end, frames[4])
}

func TestFrames_Counts(t *testing.T) {
	start := mustNew(t, 1.0, Position{}, Crop{}, 0)
	end := mustNew(t, 2.0, Position{}, Crop{}, 0)

	none, err := Frames(start, end, 0)
	require.NoError(t, err)
	assert.Empty(t, none)

	negative, err := Frames(start, end, -4)
	require.NoError(t, err)
	assert.Empty(t, negative)

	single, err := Frames(start, end, 1)
	require.NoError(t, err)
	assert.Equal(t, []Transform{end}, single)
}

func TestFrames_EvenSpacing(t *testing.T) {
	start := mustNew(t, 1.0, Position{}, Crop{}, 0)
	end := mustNew(t, 5.0, Position{}, Crop{}, 0)

	frames, err := Frames(start, end, 3)

	require.NoError(t, err)
	require.Len(t, frames, 3)
	assert.InDelta(t, 3.0, frames[1].Scale, 1e-9)
}
