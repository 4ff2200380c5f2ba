package scene

import (
	"helios/hgl"
	"helios/mesh"
)

// ShipName identifies the player entity inside a System.
const ShipName = "ship"

// SampleSystem builds the demo solar system: a flaring sun at the origin,
// three planets, a moon and a displaced ring around the gas giant, and the
// player ship.
func SampleSystem(shipVertices []hgl.Vec3) *System {
	sphere := mesh.UVSphere(1, 40, 30)

	entities := []Entity{
		{
			Name:        "sol",
			Translation: hgl.V3(0, 0, 0),
			Scale:       12,
			Motion:      Static(),
			Vertices:    sphere,
			VShader:     hgl.VertexSolarFlare,
			FShader:     hgl.StarShader(),
			Spin:        hgl.V3(0, 0.05, 0),
		},
		{
			Name:     "ferra",
			Scale:    3,
			Motion:   Orbit(hgl.V3(0, 0, 0), 40, 0.25, 0),
			Vertices: sphere,
			VShader:  hgl.VertexIdentity,
			FShader:  hgl.RockyShader(hgl.V3(0.45, 0.35, 0.28)),
			Spin:     hgl.V3(0, 0.4, 0),
		},
		{
			Name:     "veld",
			Scale:    2.5,
			Motion:   Orbit(hgl.V3(0, 0, 0), 65, 0.16, 2.1),
			Vertices: sphere,
			VShader:  hgl.VertexIdentity,
			FShader:  hgl.SolidShader(hgl.V3(0.8, 0.45, 0.2)),
			Spin:     hgl.V3(0, 0.3, 0),
		},
		{
			Name:     "jora",
			Scale:    6,
			Motion:   Orbit(hgl.V3(0, 0, 0), 95, 0.1, 4.2),
			Vertices: sphere,
			VShader:  hgl.VertexIdentity,
			FShader:  hgl.StripsShader(hgl.V3(0.75, 0.62, 0.42), hgl.V3(0.5, 0.38, 0.3)),
			Spin:     hgl.V3(0, 0.25, 0),
		},
		{
			Name:     "jora-ring",
			Scale:    6,
			Motion:   OrbitAround("jora", 0, 0, 0),
			Vertices: mesh.Ring(1.4, 2.2, 96),
			VShader:  hgl.VertexRingWave,
			FShader:  hgl.SolidShader(hgl.V3(0.7, 0.6, 0.5)),
		},
		{
			Name:        "luna",
			Scale:       1.2,
			Motion:      OrbitAround("jora", 12, 0.8, 1.0),
			Vertices:    sphere,
			VShader:     hgl.VertexIdentity,
			FShader:     hgl.RockyShader(hgl.V3(0.4, 0.4, 0.42)),
			FaceTangent: true,
		},
		{
			Name:        ShipName,
			Translation: hgl.V3(0, 50, 200),
			Scale:       1,
			Motion:      Static(),
			Vertices:    shipVertices,
			VShader:     hgl.VertexIdentity,
			FShader:     hgl.AlienShipShader(),
			UseBasis:    true,
			Right:       hgl.V3(1, 0, 0),
			Up:          hgl.V3(0, 1, 0),
			Forward:     hgl.V3(0, 0, 1),
		},
	}

	return NewSystem(entities)
}
