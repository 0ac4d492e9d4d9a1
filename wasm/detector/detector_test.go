package detector

import (
	"testing"

	pigo "github.com/esimov/pigo/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBestPicksHighestScore(t *testing.T) {
	dets := []pigo.Detection{
		{Row: 10, Col: 10, Scale: 50, Q: 3},
		{Row: 40, Col: 80, Scale: 90, Q: 12},
		{Row: 20, Col: 30, Scale: 60, Q: 8},
	}
	best, ok := Best(dets, 5)
	require.True(t, ok)
	assert.Equal(t, 80, best.Col)

	_, ok = Best(dets, 20)
	assert.False(t, ok)
	_, ok = Best(nil, 0)
	assert.False(t, ok)
}

func TestGrayscale(t *testing.T) {
	rgba := []uint8{
		255, 255, 255, 255,
		0, 0, 0, 255,
		255, 0, 0, 255,
	}
	gray := Grayscale(rgba, 3, 1)
	require.Len(t, gray, 3)
	assert.Equal(t, uint8(255), gray[0])
	assert.Equal(t, uint8(0), gray[1])
	assert.Equal(t, uint8(76), gray[2])

	short := Grayscale(rgba[:4], 2, 1)
	assert.Equal(t, []uint8{255, 0}, short)
}

func TestToViewportMirrors(t *testing.T) {
	x, y := ToViewport(160, 120, 640, 480, 1280, 720)
	assert.Equal(t, 960.0, x)
	assert.Equal(t, 180.0, y)

	x, y = ToViewport(1, 1, 0, 0, 100, 100)
	assert.Zero(t, x)
	assert.Zero(t, y)
}

func TestGazeNeedsCascades(t *testing.T) {
	d := NewDetector()
	assert.False(t, d.Ready())
	_, _, ok := d.Gaze(make([]uint8, 16), 4, 4)
	assert.False(t, ok)
}
