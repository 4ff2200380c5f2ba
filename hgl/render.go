package hgl

// Render pushes one triangle-list mesh through the full pipeline: vertex
// shader → transform/clip → primitive assembly → rasterization → fragment
// shader → depth-tested composite into fb.
//
// vertices is an ordered triangle list, three consecutive entries per
// triangle; a trailing partial triangle is discarded. A triangle with any
// clip-rejected vertex is dropped whole rather than clipped and
// retriangulated.
func Render(fb *Framebuffer, p Placement, vertices []Vec3, vs VertexShader, fs FragmentShader, view, proj, viewport Mat4, u Uniforms) {
	if fb == nil || len(vertices) < 3 {
		return
	}

	mvp := Mat4Mul(proj, Mat4Mul(view, p.Model()))
	u = u.Clamped()
	w, h := fb.Width(), fb.Height()

	for i := 0; i+2 < len(vertices); i += 3 {
		o0 := vs.Apply(vertices[i], u.Time)
		o1 := vs.Apply(vertices[i+1], u.Time)
		o2 := vs.Apply(vertices[i+2], u.Time)

		s0, ok0 := TransformVertex(o0, mvp, viewport)
		s1, ok1 := TransformVertex(o1, mvp, viewport)
		s2, ok2 := TransformVertex(o2, mvp, viewport)
		if !ok0 || !ok1 || !ok2 {
			continue
		}

		RasterizeTriangle(s0, s1, s2, o0, o1, o2, w, h, func(f Fragment) {
			fb.SetPixel(f.X, f.Y, f.Depth, ColorFromV3(fs.Shade(f, u)))
		})
	}
}

// RenderFlat draws a per-vertex-colored triangle list with no model
// transform and no fragment shader (the background-sphere fast path).
// colors must parallel vertices.
func RenderFlat(fb *Framebuffer, vertices, colors []Vec3, view, proj, viewport Mat4) {
	if fb == nil || len(vertices) < 3 || len(colors) < len(vertices) {
		return
	}

	mvp := Mat4Mul(proj, view)
	w, h := fb.Width(), fb.Height()

	for i := 0; i+2 < len(vertices); i += 3 {
		s0, ok0 := TransformVertex(vertices[i], mvp, viewport)
		s1, ok1 := TransformVertex(vertices[i+1], mvp, viewport)
		s2, ok2 := TransformVertex(vertices[i+2], mvp, viewport)
		if !ok0 || !ok1 || !ok2 {
			continue
		}

		RasterizeFlat(s0, s1, s2, colors[i], colors[i+1], colors[i+2], w, h, func(f FlatFragment) {
			fb.SetPixel(f.X, f.Y, f.Depth, ColorFromV3(f.Color))
		})
	}
}
