package scene

import "helios/hgl"

// Camera is a follow camera that sticks to the ship. It has no yaw/pitch of
// its own: it keeps an offset direction expressed in the ship's local frame
// (right, up, back) and rebuilds the world-space eye from the ship basis
// every frame.
type Camera struct {
	Eye     hgl.Vec3
	Target  hgl.Vec3
	Up      hgl.Vec3
	Right   hgl.Vec3
	Forward hgl.Vec3

	// offsetDirLocal is the unit offset direction in ship-local
	// (right, up, back) coordinates, e.g. (0, 0.5, 1) = above and behind.
	offsetDirLocal hgl.Vec3

	// Distance scales offsetDirLocal to place the eye.
	Distance  float32
	ZoomSpeed float32
}

const minCameraDistance = 0.5

// NewCamera builds a follow camera from an initial eye and target. The local
// offset direction is initialized by projecting the relative position onto a
// generic basis (right = +X, up = +Y, forward = +Z).
func NewCamera(eye, target hgl.Vec3) *Camera {
	offset := eye.Sub(target)
	distance := hgl.Len(offset)
	if distance < 0.001 {
		distance = 0.001
	}

	dir := hgl.V3(
		hgl.Dot(offset, hgl.V3(1, 0, 0)),
		hgl.Dot(offset, hgl.V3(0, 1, 0)),
		-hgl.Dot(offset, hgl.V3(0, 0, 1)),
	)
	if hgl.Len(dir) > 0 {
		dir = hgl.Normalize(dir)
	} else {
		dir = hgl.V3(0, 0, 1)
	}

	return &Camera{
		Eye:            eye,
		Target:         target,
		Up:             hgl.V3(0, 1, 0),
		Right:          hgl.V3(1, 0, 0),
		Forward:        hgl.V3(0, 0, 1),
		offsetDirLocal: dir,
		Distance:       distance,
		ZoomSpeed:      0.5,
	}
}

// FollowShip re-anchors the camera to the ship: target locks to the ship
// position and the eye is the stored local offset re-expressed in the
// ship's (orthonormalized) world basis.
func (c *Camera) FollowShip(shipPos, shipRight, shipUp hgl.Vec3) {
	c.Target = shipPos

	r := shipRight
	if hgl.Len(r) == 0 {
		r = hgl.V3(1, 0, 0)
	} else {
		r = hgl.Normalize(r)
	}
	u := shipUp
	if hgl.Len(u) == 0 {
		u = hgl.V3(0, 1, 0)
	} else {
		u = hgl.Normalize(u)
	}
	f := hgl.Cross(r, u)
	if hgl.Len(f) == 0 {
		f = hgl.V3(0, 0, 1)
	} else {
		f = hgl.Normalize(f)
	}

	dir := c.offsetDirLocal
	if hgl.Len(dir) > 0 {
		dir = hgl.Normalize(dir)
	}
	scaled := dir.Mul(c.Distance)

	// Local (right, up, back) → world: back is -forward.
	worldOffset := hgl.V3(
		r.X*scaled.X+u.X*scaled.Y-f.X*scaled.Z,
		r.Y*scaled.X+u.Y*scaled.Y-f.Y*scaled.Z,
		r.Z*scaled.X+u.Z*scaled.Y-f.Z*scaled.Z,
	)

	c.Eye = shipPos.Add(worldOffset)
	c.Up = u
	c.Right = r
	c.Forward = f
}

// ZoomIn moves the camera toward the ship, clamped to a minimum distance.
func (c *Camera) ZoomIn() {
	c.Distance -= c.ZoomSpeed
	if c.Distance < minCameraDistance {
		c.Distance = minCameraDistance
	}
}

// ZoomOut moves the camera away from the ship.
func (c *Camera) ZoomOut() {
	c.Distance += c.ZoomSpeed
}

// View returns the look-at view matrix for the rasterizer.
func (c *Camera) View() hgl.Mat4 {
	return hgl.Mat4LookAt(c.Eye, c.Target, c.Up)
}
