package hgl

// Placement describes where a drawable sits for one frame: a translation and
// uniform scale plus either Euler rotation angles or an explicit orthonormal
// right/up/forward basis (used when an entity tracks a live orientation, e.g.
// a player-controlled craft).
type Placement struct {
	Translation Vec3
	Scale       float32
	Rotation    Vec3 // Euler angles in radians, ignored when UseBasis is set

	UseBasis bool
	Right    Vec3
	Up       Vec3
	Forward  Vec3
}

// Model builds the model matrix for the placement.
//
// Euler mode composes intrinsic pitch(X)→yaw(Y)→roll(Z) rotations with the
// uniform scale, then translates. Basis mode places the scaled basis vectors
// directly into the matrix columns, no trigonometry involved.
func (p Placement) Model() Mat4 {
	if p.UseBasis {
		r := p.Right.Mul(p.Scale)
		u := p.Up.Mul(p.Scale)
		f := p.Forward.Mul(p.Scale)
		return Mat4{
			r.X, r.Y, r.Z, 0,
			u.X, u.Y, u.Z, 0,
			f.X, f.Y, f.Z, 0,
			p.Translation.X, p.Translation.Y, p.Translation.Z, 1,
		}
	}

	rot := Mat4Mul(Mat4RotateX(p.Rotation.X), Mat4Mul(Mat4RotateY(p.Rotation.Y), Mat4RotateZ(p.Rotation.Z)))
	s := p.Scale
	scale := Mat4{
		s, 0, 0, 0,
		0, s, 0, 0,
		0, 0, s, 0,
		0, 0, 0, 1,
	}
	return Mat4Mul(Mat4Translate(p.Translation), Mat4Mul(rot, scale))
}

// TransformVertex maps one object-space vertex through mvp and the viewport.
//
// It returns the screen-space vertex (x_pixel, y_pixel, ndc_z) and true when
// the vertex is visible, or false when it was clip-rejected. Rejection rules:
// clip.w <= 0 (behind the camera or degenerate), ndc.x or ndc.y outside
// [-1,1], or ndc.z < -1. ndc.z > 1 deliberately passes: rejecting far-plane
// overshoot would pop triangles at mesh silhouettes near the device cube.
func TransformVertex(v Vec3, mvp, viewport Mat4) (Vec3, bool) {
	clip := Mat4MulV4(mvp, Vec4{X: v.X, Y: v.Y, Z: v.Z, W: 1})
	if clip.W <= 0 {
		return Vec3{}, false
	}

	invW := 1 / clip.W
	ndc := Vec3{X: clip.X * invW, Y: clip.Y * invW, Z: clip.Z * invW}

	if ndc.X < -1 || ndc.X > 1 ||
		ndc.Y < -1 || ndc.Y > 1 ||
		ndc.Z < -1 {
		return Vec3{}, false
	}

	screen := Mat4MulV4(viewport, Vec4{X: ndc.X, Y: ndc.Y, Z: ndc.Z, W: 1})
	return Vec3{X: screen.X, Y: screen.Y, Z: ndc.Z}, true
}
