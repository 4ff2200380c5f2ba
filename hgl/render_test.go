package hgl

import (
	"math"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testSphere builds a small UV-sphere triangle list without depending on the
// mesh package (which imports hgl).
func testSphere(radius float32, segments, rings int) []Vec3 {
	at := func(ring, seg int) Vec3 {
		theta := math32.Pi * float32(ring) / float32(rings)
		phi := 2 * math32.Pi * float32(seg) / float32(segments)
		return V3(
			radius*math32.Sin(theta)*math32.Cos(phi),
			radius*math32.Cos(theta),
			radius*math32.Sin(theta)*math32.Sin(phi),
		)
	}

	var out []Vec3
	for r := 0; r < rings; r++ {
		for s := 0; s < segments; s++ {
			a := at(r, s)
			b := at(r+1, s)
			c := at(r+1, s+1)
			d := at(r, s+1)
			out = append(out, a, b, c, a, c, d)
		}
	}
	return out
}

func TestRenderRedSphereHeadOn(t *testing.T) {
	const w, h = 200, 200
	bg := RGB(0, 0, 0)
	fb := NewFramebuffer(w, h, bg)

	fovY := float32(math.Pi / 3) // 60°
	view := Mat4LookAt(V3(0, 0, 10), V3(0, 0, 0), V3(0, 1, 0))
	proj := Mat4Perspective(fovY, 1, 0.5, 100)
	vp := Mat4Viewport(0, 0, w, h)

	Render(fb,
		Placement{Scale: 1},
		testSphere(1, 24, 18),
		VertexIdentity,
		SolidShader(V3(1, 0, 0)),
		view, proj, vp,
		Uniforms{Time: 0, Resolution: V2(w, h), Temp: 0.5, Intensity: 1},
	)

	painted := 0
	cx, cy := float32(w)/2, float32(h)/2
	// Screen-space radius of a unit sphere at distance 10 under this
	// projection: (r/d) / tan(fov/2) * (h/2) ≈ 17.4 px. Allow slack for the
	// coarse tessellation and silhouette rounding.
	maxR := float64(22)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := fb.At(x, y)
			if c == bg {
				continue
			}
			painted++
			assert.Greater(t, c.R, c.G, "sphere pixels must be red-tinted")
			assert.Greater(t, c.R, c.B)

			dx := float64(float32(x) - cx)
			dy := float64(float32(y) - cy)
			assert.LessOrEqual(t, math.Sqrt(dx*dx+dy*dy), maxR,
				"no pixel outside the projected radius")
		}
	}
	require.Greater(t, painted, 400, "disc must actually cover pixels")

	// Horizontal symmetry: matched pixel counts left and right of center.
	left, right := 0, 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if fb.At(x, y) == bg {
				continue
			}
			if float32(x) < cx {
				left++
			} else {
				right++
			}
		}
	}
	assert.InDelta(t, left, right, float64(left)/5+10)
}

func TestRenderPartialTriangleDiscarded(t *testing.T) {
	fb := NewFramebuffer(50, 50, RGB(0, 0, 0))
	view := Mat4LookAt(V3(0, 0, 10), V3(0, 0, 0), V3(0, 1, 0))
	proj := Mat4Perspective(1, 1, 0.5, 100)
	vp := Mat4Viewport(0, 0, 50, 50)

	// Five vertices: one full triangle plus a dangling pair.
	verts := []Vec3{
		V3(-1, -1, 0), V3(1, -1, 0), V3(0, 1, 0),
		V3(-1, -1, 0), V3(1, -1, 0),
	}
	Render(fb, Placement{Scale: 1}, verts, VertexIdentity, SolidShader(V3(0, 1, 0)), view, proj, vp, Uniforms{Intensity: 1})

	painted := 0
	for y := 0; y < 50; y++ {
		for x := 0; x < 50; x++ {
			if fb.At(x, y) != RGB(0, 0, 0) {
				painted++
			}
		}
	}
	assert.Greater(t, painted, 0, "the complete triangle renders")
}

func TestRenderDropsTriangleWithClippedVertex(t *testing.T) {
	fb := NewFramebuffer(50, 50, RGB(0, 0, 0))
	view := Mat4LookAt(V3(0, 0, 10), V3(0, 0, 0), V3(0, 1, 0))
	proj := Mat4Perspective(1, 1, 0.5, 100)
	vp := Mat4Viewport(0, 0, 50, 50)

	// Third vertex sits behind the camera: the whole triangle vanishes.
	verts := []Vec3{V3(-1, -1, 0), V3(1, -1, 0), V3(0, 1, 100)}
	Render(fb, Placement{Scale: 1}, verts, VertexIdentity, SolidShader(V3(0, 1, 0)), view, proj, vp, Uniforms{Intensity: 1})

	for y := 0; y < 50; y++ {
		for x := 0; x < 50; x++ {
			assert.Equal(t, RGB(0, 0, 0), fb.At(x, y))
		}
	}
}

func TestRenderFlatWritesInterpolatedColor(t *testing.T) {
	fb := NewFramebuffer(50, 50, RGB(0, 0, 0))
	view := Mat4LookAt(V3(0, 0, 10), V3(0, 0, 0), V3(0, 1, 0))
	proj := Mat4Perspective(1, 1, 0.5, 100)
	vp := Mat4Viewport(0, 0, 50, 50)

	verts := []Vec3{V3(-1, -1, 0), V3(1, -1, 0), V3(0, 1, 0)}
	cols := []Vec3{V3(0, 0, 1), V3(0, 0, 1), V3(0, 0, 1)}
	RenderFlat(fb, verts, cols, view, proj, vp)

	painted := 0
	for y := 0; y < 50; y++ {
		for x := 0; x < 50; x++ {
			c := fb.At(x, y)
			if c == RGB(0, 0, 0) {
				continue
			}
			painted++
			assert.Equal(t, uint8(255), c.B)
		}
	}
	assert.Greater(t, painted, 0)
}
