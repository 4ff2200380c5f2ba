package scene

import (
	"github.com/chewxy/math32"

	"helios/hgl"
)

// ShipInput is one frame's attitude and thrust command for a basis-placed
// entity, in radians and object units (already scaled by frame time).
type ShipInput struct {
	Pitch  float32 // around Right
	Yaw    float32 // around Up
	Roll   float32 // around Forward
	Thrust float32 // along Forward
}

// Steer rotates the entity's orientation basis by the input and moves it
// along its forward axis, then re-orthonormalizes the basis so drift never
// accumulates.
func (e *Entity) Steer(in ShipInput) {
	if !e.UseBasis {
		return
	}

	r, u, f := e.Right, e.Up, e.Forward

	if in.Pitch != 0 {
		u = rotateAbout(u, r, in.Pitch)
		f = rotateAbout(f, r, in.Pitch)
	}
	if in.Yaw != 0 {
		r = rotateAbout(r, u, in.Yaw)
		f = rotateAbout(f, u, in.Yaw)
	}
	if in.Roll != 0 {
		r = rotateAbout(r, f, in.Roll)
		u = rotateAbout(u, f, in.Roll)
	}

	// Gram-Schmidt, keeping the f = r×u handedness.
	r = hgl.Normalize(r)
	u = hgl.Normalize(u.Sub(r.Mul(hgl.Dot(u, r))))
	if u == (hgl.Vec3{}) {
		u = hgl.V3(0, 1, 0)
	}
	f = hgl.Cross(r, u)

	e.Right, e.Up, e.Forward = r, u, f
	e.Translation = e.Translation.Add(f.Mul(in.Thrust))
}

// rotateAbout rotates v around the unit axis by angle (Rodrigues).
func rotateAbout(v, axis hgl.Vec3, angle float32) hgl.Vec3 {
	c := math32.Cos(angle)
	s := math32.Sin(angle)
	return v.Mul(c).
		Add(hgl.Cross(axis, v).Mul(s)).
		Add(axis.Mul(hgl.Dot(axis, v) * (1 - c)))
}
