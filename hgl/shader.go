package hgl

import "github.com/chewxy/math32"

// Shader variants form a closed set dispatched by a single switch. A mesh
// owns exactly one vertex variant and one fragment variant for its lifetime;
// there is no runtime shader graph.

// Uniforms are the per-frame globals visible to fragment shaders.
type Uniforms struct {
	Time       float32
	Resolution Vec2
	Temp       float32 // temperature bias, valid range [0,1]
	Intensity  float32 // intensity gain, valid range [0.2,2]
}

// Clamped returns the uniforms with the user-tunable scalars forced into
// their valid ranges.
func (u Uniforms) Clamped() Uniforms {
	u.Temp = Clamp(u.Temp, 0, 1)
	u.Intensity = Clamp(u.Intensity, 0.2, 2)
	return u
}

// VertexShader selects the vertex-displacement variant. All variants are
// pure functions of (position, time).
type VertexShader uint8

const (
	// VertexIdentity passes positions through unchanged.
	VertexIdentity VertexShader = iota
	// VertexSolarFlare pushes a point along its own direction from the mesh
	// origin by animated fractal noise (star surface).
	VertexSolarFlare
	// VertexRingWave offsets a point's vertical coordinate by fractal noise
	// over its horizontal coordinates (displaced ring mesh).
	VertexRingWave
)

// Apply runs the vertex-displacement variant on one object-space position.
func (s VertexShader) Apply(v Vec3, time float32) Vec3 {
	switch s {
	case VertexSolarFlare:
		dir := V3(0, 0, 1)
		if Len(v) > 0 {
			dir = Normalize(v)
		}
		p := V3(v.X*0.25, v.Y*0.25, v.Z*0.25+time*0.2)
		n := FBM(p, 4, 2.0, 0.5)
		flare := (n*2 - 1) * 0.35 // amplitude in object units
		return v.Add(dir.Mul(flare))

	case VertexRingWave:
		n := FBM(V3(v.X*0.8, v.Z*0.8, time*0.3), 4, 2.0, 0.5)
		return V3(v.X, v.Y+(n*2-1)*0.15, v.Z)

	default:
		return v
	}
}

// FragmentKind keys the fragment-coloring strategy.
type FragmentKind uint8

const (
	FragmentStar FragmentKind = iota
	FragmentSolid
	FragmentRocky
	FragmentStrips
	FragmentAlienShip
)

// FragmentShader is a fragment-coloring variant plus its material parameters.
type FragmentShader struct {
	Kind FragmentKind
	Base Vec3 // base albedo (Solid, Rocky) or first band color (Strips)
	Alt  Vec3 // second band color (Strips)
}

func StarShader() FragmentShader           { return FragmentShader{Kind: FragmentStar} }
func SolidShader(base Vec3) FragmentShader { return FragmentShader{Kind: FragmentSolid, Base: base} }
func RockyShader(base Vec3) FragmentShader { return FragmentShader{Kind: FragmentRocky, Base: base} }
func StripsShader(base, alt Vec3) FragmentShader {
	return FragmentShader{Kind: FragmentStrips, Base: base, Alt: alt}
}
func AlienShipShader() FragmentShader { return FragmentShader{Kind: FragmentAlienShip} }

// Shade runs the fragment variant and returns linear RGB with every channel
// clamped to [0,1].
func (s FragmentShader) Shade(f Fragment, u Uniforms) Vec3 {
	switch s.Kind {
	case FragmentSolid:
		return shadeSolid(f, s.Base)
	case FragmentRocky:
		return shadeRocky(f, s.Base)
	case FragmentStrips:
		return shadeStrips(f, u, s.Base, s.Alt)
	case FragmentAlienShip:
		return shadeAlienShip(f)
	default:
		return shadeStar(f, u)
	}
}

// temperatureToRGB maps t in [0,1] through a 3-stop gradient:
// red/orange → yellow → white with a slight blue tint.
func temperatureToRGB(t float32) Vec3 {
	t = Clamp01(t)
	if t < 0.5 {
		k := t / 0.5
		return V3(1, Lerp(0.2, 1, k), 0)
	}
	k := (t - 0.5) / 0.5
	return V3(1, 1, Lerp(0, 0.3, k))
}

func shadeStar(f Fragment, u Uniforms) Vec3 {
	// Object-space direction gives stable texturing on the sphere surface.
	dir := f.Obj
	if l := Len(dir); l > 0 {
		dir = dir.Mul(1 / l)
	}

	// Turbulence cycles through an 8-second loop.
	tloop := math32.Mod(u.Time, 8) / 8
	turb := FBM(V3(dir.X*3, dir.Y*3, tloop*8), 5, 2.0, 0.55)

	// Core intensity approximates disc-center proximity with dir.z; abs keeps
	// it camera-agnostic.
	facing := Clamp01(math32.Abs(dir.Z))

	intensity := Clamp01((facing*0.7 + turb*0.6) * u.Intensity)
	colorBase := temperatureToRGB(Clamp01((intensity + u.Temp*0.8) * 0.7))

	// Higher-frequency flicker rides on top of the gradient.
	spikes := math32.Abs(ValueNoise3(V3(dir.X*10+u.Time*1.7, dir.Y*10-u.Time*1.3, u.Time*0.5))*2 - 1)
	emission := Clamp(0.6*intensity+0.8*spikes, 0, 1.5)

	return V3(
		Clamp01(colorBase.X*emission),
		Clamp01(colorBase.Y*emission),
		Clamp01(colorBase.Z*emission),
	)
}

func shadeSolid(f Fragment, base Vec3) Vec3 {
	band := 0.5 + 0.5*math32.Sin(math32.Atan2(f.Obj.X, f.Obj.Z)*10)
	pattern := base.Mul(band)
	out := base.Mul(0.5).Add(pattern.Mul(0.5))
	return V3(Clamp01(out.X), Clamp01(out.Y), Clamp01(out.Z))
}

// sunLight is the fixed light the planet shaders shade against, expressed in
// object space.
var sunLight = Vec3{X: 0, Y: 10, Z: 0}

func lambert(normal, pos Vec3) float32 {
	ld := Normalize(sunLight.Sub(pos))
	d := Dot(normal, ld)
	if d < 0 {
		d = 0
	}
	return Clamp01(0.15 + 0.85*d)
}

func shadeRocky(f Fragment, base Vec3) Vec3 {
	dir := f.Obj
	if l := Len(dir); l > 0 {
		dir = dir.Mul(1 / l)
	}

	coarse := FBM(dir.Mul(4), 4, 2.0, 0.5)
	fine := FBM(dir.Mul(9), 3, 2.2, 0.5)
	rock := coarse*0.65 + fine*0.35

	col := base.Add(V3(rock*0.35, rock*0.35, rock*0.35))

	crater := ValueNoise3(dir.Mul(18))
	if crater > 0.72 {
		col = col.Mul(1 - (crater-0.72)/0.28*0.6)
	}

	col = col.Mul(lambert(dir, f.Obj))
	return V3(Clamp01(col.X), Clamp01(col.Y), Clamp01(col.Z))
}

func shadeStrips(f Fragment, u Uniforms, base, alt Vec3) Vec3 {
	dir := f.Obj
	if l := Len(dir); l > 0 {
		dir = dir.Mul(1 / l)
	}

	// Latitude bands warped by low-frequency noise; the sine is pushed
	// through a saturating slope so bands have soft but definite edges.
	warp := FBM(f.Obj.Mul(2), 4, 2.0, 0.5)
	band := Clamp01(math32.Sin((f.Obj.Y*6+warp*2.5)*math32.Pi)*1.25 + 0.5)
	col := LerpV3(base, alt, band)

	clouds := FBM(dir.Mul(5).Add(V3(u.Time*0.05, 0, 0)), 4, 2.0, 0.5)
	if clouds > 0.6 {
		col = LerpV3(col, V3(1, 1, 1), (clouds-0.6)/0.4*0.7)
	}

	storm := ValueNoise3(dir.Mul(25))
	if storm > 0.97 {
		col = col.Mul(0.45)
	}

	col = col.Mul(lambert(dir, f.Obj))
	return V3(Clamp01(col.X), Clamp01(col.Y), Clamp01(col.Z))
}

func shadeAlienShip(f Fragment) Vec3 {
	// Hard two-tone hull bands, unlit.
	if math32.Sin(f.Obj.Y*12) > 0 {
		return V3(0.55, 0.57, 0.6)
	}
	return V3(0.2, 0.75, 0.35)
}
