package scene

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helios/hgl"
)

func TestOrbitClosedForm(t *testing.T) {
	s := NewSystem([]Entity{{
		Name:   "p",
		Motion: Orbit(hgl.V3(0, 5, 0), 10, 0.5, 1.0),
	}})

	time := float32(3)
	s.Update(time)

	theta := float32(1.0) + 0.5*time
	p := s.Find("p")
	require.NotNil(t, p)
	assert.InDelta(t, 10*math32.Cos(theta), p.Translation.X, 1e-4)
	assert.InDelta(t, 5, p.Translation.Y, 1e-4)
	assert.InDelta(t, 10*math32.Sin(theta), p.Translation.Z, 1e-4)
}

func TestOrbitAroundFollowsParent(t *testing.T) {
	s := NewSystem([]Entity{
		{Name: "planet", Motion: Orbit(hgl.V3(0, 0, 0), 50, 0.2, 0)},
		{Name: "moon", Motion: OrbitAround("planet", 8, 1.0, 0)},
	})

	s.Update(2)

	planet := s.Find("planet")
	moon := s.Find("moon")
	require.NotNil(t, planet)
	require.NotNil(t, moon)

	d := hgl.Len(moon.Translation.Sub(planet.Translation))
	assert.InDelta(t, 8, d, 1e-3, "moon stays at orbit radius from its parent")
}

func TestOrbitAroundZeroRadiusCentersOnParent(t *testing.T) {
	s := NewSystem([]Entity{
		{Name: "planet", Motion: Orbit(hgl.V3(0, 0, 0), 50, 0.2, 0)},
		{Name: "ring", Motion: OrbitAround("planet", 0, 0, 0)},
	})

	s.Update(7)
	assert.Equal(t, s.Find("planet").Translation, s.Find("ring").Translation)
}

func TestOrbitAroundUnknownParentIsStatic(t *testing.T) {
	s := NewSystem([]Entity{{
		Name:        "orphan",
		Translation: hgl.V3(1, 2, 3),
		Motion:      OrbitAround("missing", 5, 1, 0),
	}})

	s.Update(4)
	assert.Equal(t, hgl.V3(1, 2, 3), s.Find("orphan").Translation)
}

func TestStaticDoesNotMove(t *testing.T) {
	s := NewSystem([]Entity{{
		Name:        "s",
		Translation: hgl.V3(0, 50, 200),
		Motion:      Static(),
	}})

	s.Update(123)
	assert.Equal(t, hgl.V3(0, 50, 200), s.Find("s").Translation)
}

func TestPlacementSpinAndTangent(t *testing.T) {
	e := Entity{
		Motion:      Orbit(hgl.V3(0, 0, 0), 10, 0.5, 1.0),
		Spin:        hgl.V3(0, 0.4, 0),
		FaceTangent: true,
		Scale:       2,
	}

	time := float32(3)
	p := e.Placement(time)
	wantYaw := -(float32(1.0) + 0.5*time) + 0.4*time
	assert.InDelta(t, wantYaw, p.Rotation.Y, 1e-5)
	assert.Equal(t, float32(2), p.Scale)
	assert.False(t, p.UseBasis)
}

func TestSteerKeepsBasisOrthonormal(t *testing.T) {
	e := Entity{
		UseBasis: true,
		Right:    hgl.V3(1, 0, 0),
		Up:       hgl.V3(0, 1, 0),
		Forward:  hgl.V3(0, 0, 1),
	}

	for i := 0; i < 50; i++ {
		e.Steer(ShipInput{Pitch: 0.1, Yaw: -0.07, Roll: 0.03, Thrust: 0.5})
	}

	assert.InDelta(t, 1, hgl.Len(e.Right), 1e-3)
	assert.InDelta(t, 1, hgl.Len(e.Up), 1e-3)
	assert.InDelta(t, 1, hgl.Len(e.Forward), 1e-3)
	assert.InDelta(t, 0, hgl.Dot(e.Right, e.Up), 1e-3)
	assert.InDelta(t, 0, hgl.Dot(e.Right, e.Forward), 1e-3)
	assert.InDelta(t, 0, hgl.Dot(e.Up, e.Forward), 1e-3)
}

func TestSteerThrustMovesForward(t *testing.T) {
	e := Entity{
		UseBasis: true,
		Right:    hgl.V3(1, 0, 0),
		Up:       hgl.V3(0, 1, 0),
		Forward:  hgl.V3(0, 0, 1),
	}
	e.Steer(ShipInput{Thrust: 3})
	assert.InDelta(t, 3, e.Translation.Z, 1e-5)
}

func TestSampleSystemShipPresent(t *testing.T) {
	s := SampleSystem([]hgl.Vec3{{}, {}, {}})
	ship := s.Find(ShipName)
	require.NotNil(t, ship)
	assert.True(t, ship.UseBasis)

	// Two-pass update resolves the ring onto the gas giant.
	s.Update(1)
	assert.Equal(t, s.Find("jora").Translation, s.Find("jora-ring").Translation)
}
