package mesh

import (
	"bytes"
	_ "embed"

	"helios/hgl"
)

//go:embed ship.obj
var shipOBJ []byte

// Ship returns the player-craft mesh. It tries path first (when non-empty),
// then the embedded model, and degrades to a small sphere if both fail, the
// same fallback chain the scene expects for any drawable mesh.
func Ship(path string) []hgl.Vec3 {
	if path != "" {
		if verts, err := LoadFile(path); err == nil && len(verts) >= 3 {
			return verts
		}
	}
	if verts, err := Parse(bytes.NewReader(shipOBJ)); err == nil && len(verts) >= 3 {
		return verts
	}
	return UVSphere(1, 16, 12)
}
