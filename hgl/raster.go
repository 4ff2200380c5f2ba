package hgl

import "github.com/chewxy/math32"

// Fragment is one covered pixel of a rasterized triangle: integer pixel
// coordinates, interpolated NDC depth (lower = nearer), and the interpolated
// object-space position used by fragment shaders for procedural texturing.
type Fragment struct {
	X, Y  int
	Depth float32
	Obj   Vec3
}

// FlatFragment is the fast-path payload: an interpolated per-vertex color
// instead of an object-space position.
type FlatFragment struct {
	X, Y  int
	Depth float32
	Color Vec3
}

// Triangles whose signed screen area is below this are degenerate and
// produce no fragments.
const minArea = 1e-4

func edgeFn(ax, ay, bx, by, px, py float32) float32 {
	return (px-ax)*(by-ay) - (py-ay)*(bx-ax)
}

func boundingBox(v0, v1, v2 Vec3, w, h int) (minX, minY, maxX, maxY int, ok bool) {
	minX = int(math32.Floor(min3(v0.X, v1.X, v2.X)))
	maxX = int(math32.Ceil(max3(v0.X, v1.X, v2.X)))
	minY = int(math32.Floor(min3(v0.Y, v1.Y, v2.Y)))
	maxY = int(math32.Ceil(max3(v0.Y, v1.Y, v2.Y)))
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX >= w {
		maxX = w - 1
	}
	if maxY >= h {
		maxY = h - 1
	}
	ok = minX <= maxX && minY <= maxY
	return
}

// RasterizeTriangle walks the clamped integer bounding box of three screen
// vertices and emits one Fragment per covered pixel. o0..o2 are the matching
// pre-projection object-space positions; depth and object position are
// interpolated with normalized barycentric weights.
//
// A pixel is inside when all three edge weights share the sign of the
// triangle's signed area, so both windings rasterize with the same test and
// no separate back-face cull is needed. The emitted sequence is finite,
// non-restartable, and produced fresh per call.
func RasterizeTriangle(v0, v1, v2, o0, o1, o2 Vec3, w, h int, emit func(Fragment)) {
	minX, minY, maxX, maxY, ok := boundingBox(v0, v1, v2, w, h)
	if !ok {
		return
	}

	area := edgeFn(v0.X, v0.Y, v1.X, v1.Y, v2.X, v2.Y)
	if math32.Abs(area) < minArea {
		return
	}
	invArea := 1 / area

	for y := minY; y <= maxY; y++ {
		py := float32(y)
		for x := minX; x <= maxX; x++ {
			px := float32(x)
			w0 := edgeFn(v1.X, v1.Y, v2.X, v2.Y, px, py)
			w1 := edgeFn(v2.X, v2.Y, v0.X, v0.Y, px, py)
			w2 := edgeFn(v0.X, v0.Y, v1.X, v1.Y, px, py)
			if !sameSide(w0, w1, w2, area) {
				continue
			}
			a0 := w0 * invArea
			a1 := w1 * invArea
			a2 := w2 * invArea

			emit(Fragment{
				X:     x,
				Y:     y,
				Depth: a0*v0.Z + a1*v1.Z + a2*v2.Z,
				Obj: Vec3{
					X: a0*o0.X + a1*o1.X + a2*o2.X,
					Y: a0*o0.Y + a1*o1.Y + a2*o2.Y,
					Z: a0*o0.Z + a1*o1.Z + a2*o2.Z,
				},
			})
		}
	}
}

// RasterizeFlat is the background fast path: same coverage and depth
// interpolation as RasterizeTriangle, but the per-pixel payload is an
// interpolated flat color, skipping the fragment-shader stage entirely.
func RasterizeFlat(v0, v1, v2, c0, c1, c2 Vec3, w, h int, emit func(FlatFragment)) {
	minX, minY, maxX, maxY, ok := boundingBox(v0, v1, v2, w, h)
	if !ok {
		return
	}

	area := edgeFn(v0.X, v0.Y, v1.X, v1.Y, v2.X, v2.Y)
	if math32.Abs(area) < minArea {
		return
	}
	invArea := 1 / area

	for y := minY; y <= maxY; y++ {
		py := float32(y)
		for x := minX; x <= maxX; x++ {
			px := float32(x)
			w0 := edgeFn(v1.X, v1.Y, v2.X, v2.Y, px, py)
			w1 := edgeFn(v2.X, v2.Y, v0.X, v0.Y, px, py)
			w2 := edgeFn(v0.X, v0.Y, v1.X, v1.Y, px, py)
			if !sameSide(w0, w1, w2, area) {
				continue
			}
			a0 := w0 * invArea
			a1 := w1 * invArea
			a2 := w2 * invArea

			emit(FlatFragment{
				X:     x,
				Y:     y,
				Depth: a0*v0.Z + a1*v1.Z + a2*v2.Z,
				Color: Vec3{
					X: a0*c0.X + a1*c1.X + a2*c2.X,
					Y: a0*c0.Y + a1*c1.Y + a2*c2.Y,
					Z: a0*c0.Z + a1*c1.Z + a2*c2.Z,
				},
			})
		}
	}
}

func sameSide(w0, w1, w2, area float32) bool {
	if area > 0 {
		return w0 >= 0 && w1 >= 0 && w2 >= 0
	}
	return w0 <= 0 && w1 <= 0 && w2 <= 0
}

func min3(a, b, c float32) float32 {
	if a > b {
		a = b
	}
	if a > c {
		a = c
	}
	return a
}

func max3(a, b, c float32) float32 {
	if a < b {
		a = b
	}
	if a < c {
		a = c
	}
	return a
}
