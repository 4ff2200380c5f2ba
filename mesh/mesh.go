// Package mesh loads and generates triangle-list meshes for the renderer.
//
// A mesh at the pipeline boundary is just an ordered []hgl.Vec3 with three
// consecutive entries per triangle; indexing and deduplication happen here,
// upstream of the rasterizer.
package mesh

import (
	"github.com/chewxy/math32"

	"helios/hgl"
)

// UVSphere returns a triangle list covering a sphere of the given radius,
// built from segments longitudinal slices and rings latitudinal bands.
// Pole quads collapse to zero-area triangles, which the rasterizer drops.
func UVSphere(radius float32, segments, rings int) []hgl.Vec3 {
	if segments < 3 {
		segments = 3
	}
	if rings < 2 {
		rings = 2
	}

	at := func(ring, seg int) hgl.Vec3 {
		theta := math32.Pi * float32(ring) / float32(rings)
		phi := 2 * math32.Pi * float32(seg) / float32(segments)
		return hgl.V3(
			radius*math32.Sin(theta)*math32.Cos(phi),
			radius*math32.Cos(theta),
			radius*math32.Sin(theta)*math32.Sin(phi),
		)
	}

	out := make([]hgl.Vec3, 0, segments*rings*6)
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

// Ring returns a flat annulus in the XZ plane (y = 0) between inner and
// outer radius, as a triangle list.
func Ring(inner, outer float32, segments int) []hgl.Vec3 {
	if segments < 3 {
		segments = 3
	}

	at := func(radius float32, seg int) hgl.Vec3 {
		phi := 2 * math32.Pi * float32(seg) / float32(segments)
		return hgl.V3(radius*math32.Cos(phi), 0, radius*math32.Sin(phi))
	}

	out := make([]hgl.Vec3, 0, segments*6)
	for s := 0; s < segments; s++ {
		a := at(inner, s)
		b := at(outer, s)
		c := at(outer, s+1)
		d := at(inner, s+1)
		out = append(out, a, b, c, a, c, d)
	}
	return out
}
