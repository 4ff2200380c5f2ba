package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helios/hgl"
)

func TestSkyboxDeterministic(t *testing.T) {
	a := newSkybox(24, 16)
	b := newSkybox(24, 16)

	require.Equal(t, len(a.Vertices), len(b.Vertices))
	require.Len(t, a.StarDirs, starCount)
	assert.Equal(t, a.Colors[0], b.Colors[0])
	assert.Equal(t, a.Colors[len(a.Colors)/2], b.Colors[len(b.Colors)/2])
	assert.Equal(t, a.StarDirs, b.StarDirs)
	assert.Equal(t, a.StarBright, b.StarBright)
}

func TestSkyboxStarsUnitLength(t *testing.T) {
	s := newSkybox(12, 8)
	for _, d := range s.StarDirs {
		assert.InDelta(t, 1, hgl.Len(d), 1e-4)
	}
	for _, b := range s.StarBright {
		assert.GreaterOrEqual(t, b, float32(0.6)-1e-4)
		assert.LessOrEqual(t, b, float32(1)+1e-4)
	}
}

func TestSkyboxColorsInRange(t *testing.T) {
	s := newSkybox(24, 16)
	for _, c := range s.Colors {
		for _, ch := range []float32{c.X, c.Y, c.Z} {
			assert.GreaterOrEqual(t, ch, float32(0))
			assert.LessOrEqual(t, ch, float32(1))
		}
	}
}

func TestShootingStarQuietPhase(t *testing.T) {
	fb := hgl.NewFramebuffer(64, 64, hgl.RGB(0, 0, 0))

	// Phase 0.9 of the 7.5s cycle: the meteor is dark.
	DrawShootingStar(fb, 7.5*0.9)

	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			assert.Equal(t, hgl.RGB(0, 0, 0), fb.At(x, y))
		}
	}
}

func TestShootingStarDeterministicFrame(t *testing.T) {
	a := hgl.NewFramebuffer(64, 64, hgl.RGB(0, 0, 0))
	b := hgl.NewFramebuffer(64, 64, hgl.RGB(0, 0, 0))

	DrawShootingStar(a, 2.0)
	DrawShootingStar(b, 2.0)

	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			assert.Equal(t, a.At(x, y), b.At(x, y))
		}
	}
}
