// Package scene holds the drawable entities of the solar system, their
// orbital motion, the player ship, the follow camera, and the sky.
package scene

import (
	"github.com/chewxy/math32"

	"helios/hgl"
)

// MotionKind selects an entity's motion rule.
type MotionKind uint8

const (
	// MotionStatic keeps the entity where it was placed.
	MotionStatic MotionKind = iota
	// MotionOrbit circles a fixed world-space center.
	MotionOrbit
	// MotionOrbitAround circles another entity, resolved by name each frame.
	MotionOrbitAround
)

// Motion is a closed-form orbital motion description. Positions are a pure
// function of time; there is no integration state.
type Motion struct {
	Kind         MotionKind
	Center       hgl.Vec3 // MotionOrbit
	Parent       string   // MotionOrbitAround
	Radius       float32
	AngularSpeed float32
	Phase        float32
}

func Static() Motion { return Motion{Kind: MotionStatic} }

func Orbit(center hgl.Vec3, radius, angularSpeed, phase float32) Motion {
	return Motion{Kind: MotionOrbit, Center: center, Radius: radius, AngularSpeed: angularSpeed, Phase: phase}
}

func OrbitAround(parent string, radius, angularSpeed, phase float32) Motion {
	return Motion{Kind: MotionOrbitAround, Parent: parent, Radius: radius, AngularSpeed: angularSpeed, Phase: phase}
}

// Entity is one drawable: a mesh, its shader pair, and its placement state.
// Mesh data is immutable for the entity's lifetime; shaders are stateless
// value objects.
type Entity struct {
	Name        string
	Translation hgl.Vec3
	Rotation    hgl.Vec3
	Scale       float32
	Motion      Motion
	Vertices    []hgl.Vec3
	VShader     hgl.VertexShader
	FShader     hgl.FragmentShader
	Spin        hgl.Vec3 // angular velocity (rad/s) around each local axis
	FaceTangent bool     // add tangent-facing yaw from orbital motion

	// Ship-style entities carry a live orthonormal basis instead of Euler
	// angles.
	UseBasis bool
	Right    hgl.Vec3
	Up       hgl.Vec3
	Forward  hgl.Vec3
}

// Placement resolves the entity's hgl placement at the given time, folding
// in spin and tangent-facing yaw.
func (e *Entity) Placement(time float32) hgl.Placement {
	if e.UseBasis {
		return hgl.Placement{
			Translation: e.Translation,
			Scale:       e.Scale,
			UseBasis:    true,
			Right:       e.Right,
			Up:          e.Up,
			Forward:     e.Forward,
		}
	}

	rot := e.Rotation
	if e.FaceTangent {
		switch e.Motion.Kind {
		case MotionOrbit, MotionOrbitAround:
			rot.Y += -(e.Motion.Phase + e.Motion.AngularSpeed*time)
		}
	}
	rot.X += e.Spin.X * time
	rot.Y += e.Spin.Y * time
	rot.Z += e.Spin.Z * time

	return hgl.Placement{
		Translation: e.Translation,
		Scale:       e.Scale,
		Rotation:    rot,
	}
}

// System is an indexed set of entities updated in two passes: world-anchored
// placements first, then parent-relative placements resolved through a
// name→index map built once at construction.
type System struct {
	Entities []Entity
	index    map[string]int
}

func NewSystem(entities []Entity) *System {
	s := &System{Entities: entities}
	s.reindex()
	return s
}

// Add appends an entity and refreshes the name index.
func (s *System) Add(e Entity) {
	s.Entities = append(s.Entities, e)
	s.reindex()
}

func (s *System) reindex() {
	s.index = make(map[string]int, len(s.Entities))
	for i := range s.Entities {
		s.index[s.Entities[i].Name] = i
	}
}

// Find returns the named entity or nil.
func (s *System) Find(name string) *Entity {
	i, ok := s.index[name]
	if !ok {
		return nil
	}
	return &s.Entities[i]
}

// Update advances every entity's translation to its closed-form position at
// the given time.
func (s *System) Update(time float32) {
	// Pass 1: statics and world-centered orbits.
	for i := range s.Entities {
		e := &s.Entities[i]
		if e.Motion.Kind != MotionOrbit {
			continue
		}
		theta := e.Motion.Phase + e.Motion.AngularSpeed*time
		e.Translation = hgl.V3(
			e.Motion.Center.X+e.Motion.Radius*math32.Cos(theta),
			e.Motion.Center.Y,
			e.Motion.Center.Z+e.Motion.Radius*math32.Sin(theta),
		)
	}

	// Pass 2: children orbiting a parent, in world axes around the parent's
	// pass-1 position.
	for i := range s.Entities {
		e := &s.Entities[i]
		if e.Motion.Kind != MotionOrbitAround {
			continue
		}
		pi, ok := s.index[e.Motion.Parent]
		if !ok {
			continue
		}
		parent := s.Entities[pi].Translation
		if e.Motion.Radius == 0 {
			e.Translation = parent
			continue
		}
		theta := e.Motion.Phase + e.Motion.AngularSpeed*time
		e.Translation = hgl.V3(
			parent.X+e.Motion.Radius*math32.Cos(theta),
			parent.Y,
			parent.Z+e.Motion.Radius*math32.Sin(theta),
		)
	}
}
