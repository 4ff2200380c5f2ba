package hgl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(v0, v1, v2, o0, o1, o2 Vec3, w, h int) []Fragment {
	var out []Fragment
	RasterizeTriangle(v0, v1, v2, o0, o1, o2, w, h, func(f Fragment) {
		out = append(out, f)
	})
	return out
}

func TestRasterCoverageAndDepth(t *testing.T) {
	v0 := V3(0, 0, 0.1)
	v1 := V3(4, 0, 0.5)
	v2 := V3(0, 4, 0.9)

	frags := collect(v0, v1, v2, v0, v1, v2, 16, 16)
	require.NotEmpty(t, frags)

	var at *Fragment
	for i := range frags {
		f := &frags[i]
		assert.GreaterOrEqual(t, f.X, 0)
		assert.GreaterOrEqual(t, f.Y, 0)
		if f.X == 1 && f.Y == 1 {
			at = f
		}
	}
	require.NotNil(t, at, "pixel (1,1) must be covered")

	// Hand-computed normalized barycentric weights at (1,1) for this
	// triangle are (0.5, 0.25, 0.25).
	want := 0.5*0.1 + 0.25*0.5 + 0.25*0.9
	assert.InDelta(t, want, at.Depth, 1e-5)
}

func TestRasterBothWindings(t *testing.T) {
	v0 := V3(0, 0, 0)
	v1 := V3(4, 0, 0)
	v2 := V3(0, 4, 0)

	ccw := collect(v0, v1, v2, v0, v1, v2, 16, 16)
	cw := collect(v0, v2, v1, v0, v2, v1, 16, 16)
	assert.Equal(t, len(ccw), len(cw), "winding must not change coverage")
	assert.NotEmpty(t, ccw)
}

func TestRasterDegenerateTriangle(t *testing.T) {
	// Collinear vertices: signed area ≈ 0, no fragments.
	frags := collect(V3(0, 0, 0), V3(4, 4, 0), V3(10, 10, 0), V3(0, 0, 0), V3(0, 0, 0), V3(0, 0, 0), 64, 64)
	assert.Empty(t, frags)

	frags = collect(V3(2, 2, 0), V3(2, 2, 0), V3(2, 2, 0), V3(0, 0, 0), V3(0, 0, 0), V3(0, 0, 0), 64, 64)
	assert.Empty(t, frags)
}

func TestRasterClampsToFramebuffer(t *testing.T) {
	// Triangle mostly off-screen; every emitted fragment stays in bounds.
	frags := collect(V3(-10, -10, 0), V3(30, -10, 0), V3(-10, 30, 0), V3(0, 0, 0), V3(0, 0, 0), V3(0, 0, 0), 8, 8)
	require.NotEmpty(t, frags)
	for _, f := range frags {
		assert.GreaterOrEqual(t, f.X, 0)
		assert.Less(t, f.X, 8)
		assert.GreaterOrEqual(t, f.Y, 0)
		assert.Less(t, f.Y, 8)
	}
}

func TestRasterObjectInterpolation(t *testing.T) {
	v0 := V3(0, 0, 0)
	v1 := V3(4, 0, 0)
	v2 := V3(0, 4, 0)
	o0 := V3(1, 0, 0)
	o1 := V3(0, 1, 0)
	o2 := V3(0, 0, 1)

	frags := collect(v0, v1, v2, o0, o1, o2, 16, 16)
	require.NotEmpty(t, frags)
	for _, f := range frags {
		// Barycentric weights sum to 1, so interpolated components do too.
		assert.InDelta(t, 1, f.Obj.X+f.Obj.Y+f.Obj.Z, 1e-4)
	}
}

func TestRasterFlatColor(t *testing.T) {
	var frags []FlatFragment
	RasterizeFlat(
		V3(0, 0, 0), V3(4, 0, 0), V3(0, 4, 0),
		V3(1, 0, 0), V3(1, 0, 0), V3(1, 0, 0),
		16, 16,
		func(f FlatFragment) { frags = append(frags, f) },
	)
	require.NotEmpty(t, frags)
	for _, f := range frags {
		assert.InDelta(t, 1, f.Color.X, 1e-4)
		assert.InDelta(t, 0, f.Color.Y, 1e-4)
		assert.InDelta(t, 0, f.Color.Z, 1e-4)
	}
}
