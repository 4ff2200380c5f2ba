package hgl

// Color is an RGBA color in 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b, A: 0xFF} }

// ColorFromV3 quantizes a linear RGB vector. Channels are clamped to [0,1].
func ColorFromV3(v Vec3) Color {
	return Color{
		R: uint8(Clamp01(v.X) * 255),
		G: uint8(Clamp01(v.Y) * 255),
		B: uint8(Clamp01(v.Z) * 255),
		A: 0xFF,
	}
}

// V3FromColor converts 8-bit channels back to linear [0,1] RGB.
func V3FromColor(c Color) Vec3 {
	return Vec3{
		X: float32(c.R) / 255,
		Y: float32(c.G) / 255,
		Z: float32(c.B) / 255,
	}
}
