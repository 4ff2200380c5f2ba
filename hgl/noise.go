package hgl

import "github.com/chewxy/math32"

// Deterministic 3D value noise. All functions here are pure: identical input
// coordinates always yield identical output, across frames and machines.

// quintic smoothstep
func fade(t float32) float32 { return t * t * t * (t*(t*6-15) + 10) }

func hash3(p Vec3) float32 {
	n := Dot(p, V3(127.1, 311.7, 74.7))
	return Fract(math32.Sin(math32.Sin(n)*43758.5453) * 143758.5453)
}

// ValueNoise3 samples a smoothly interpolated pseudo-random scalar field
// built from hashed lattice points. Output is in [0,1).
func ValueNoise3(p Vec3) float32 {
	i := V3(math32.Floor(p.X), math32.Floor(p.Y), math32.Floor(p.Z))
	f := p.Sub(i)

	n000 := hash3(i)
	n100 := hash3(i.Add(V3(1, 0, 0)))
	n010 := hash3(i.Add(V3(0, 1, 0)))
	n110 := hash3(i.Add(V3(1, 1, 0)))
	n001 := hash3(i.Add(V3(0, 0, 1)))
	n101 := hash3(i.Add(V3(1, 0, 1)))
	n011 := hash3(i.Add(V3(0, 1, 1)))
	n111 := hash3(i.Add(V3(1, 1, 1)))

	u := V3(fade(f.X), fade(f.Y), fade(f.Z))

	nx00 := Lerp(n000, n100, u.X)
	nx10 := Lerp(n010, n110, u.X)
	nx01 := Lerp(n001, n101, u.X)
	nx11 := Lerp(n011, n111, u.X)

	nxy0 := Lerp(nx00, nx10, u.Y)
	nxy1 := Lerp(nx01, nx11, u.Y)

	return Lerp(nxy0, nxy1, u.Z)
}

// FBM is a fractal sum of value-noise octaves at increasing frequency and
// decreasing amplitude. Zero octaves sum to exactly 0.
func FBM(p Vec3, octaves int, lacunarity, gain float32) float32 {
	amp := float32(0.5)
	freq := float32(1)
	sum := float32(0)
	for o := 0; o < octaves; o++ {
		sum += amp * ValueNoise3(V3(p.X*freq, p.Y*freq, p.Z*freq))
		freq *= lacunarity
		amp *= gain
	}
	return sum
}

// The sky noise family is an independent hash/interpolation pair used by the
// background sphere, so nebula texture never correlates with surface noise.

func SkyHash3(p Vec3) float32 {
	n := p.X*157 + p.Y*113 + p.Z*427
	return Fract(Fract(math32.Sin(n)*43758.5453) * Fract(math32.Cos(n)*12345.6789))
}

// SkyNoise3 is value noise over SkyHash3 with cubic smoothing.
func SkyNoise3(p Vec3) float32 {
	i := V3(math32.Floor(p.X), math32.Floor(p.Y), math32.Floor(p.Z))
	f := p.Sub(i)

	c000 := SkyHash3(i)
	c100 := SkyHash3(i.Add(V3(1, 0, 0)))
	c010 := SkyHash3(i.Add(V3(0, 1, 0)))
	c110 := SkyHash3(i.Add(V3(1, 1, 0)))
	c001 := SkyHash3(i.Add(V3(0, 0, 1)))
	c101 := SkyHash3(i.Add(V3(1, 0, 1)))
	c011 := SkyHash3(i.Add(V3(0, 1, 1)))
	c111 := SkyHash3(i.Add(V3(1, 1, 1)))

	fu := f.X * f.X * (3 - 2*f.X)
	fv := f.Y * f.Y * (3 - 2*f.Y)
	fw := f.Z * f.Z * (3 - 2*f.Z)

	x00 := c000 + (c100-c000)*fu
	x10 := c010 + (c110-c010)*fu
	x01 := c001 + (c101-c001)*fu
	x11 := c011 + (c111-c011)*fu

	y0 := x00 + (x10-x00)*fv
	y1 := x01 + (x11-x01)*fv

	return y0 + (y1-y0)*fw
}

// FBMSky is the fractal sum over SkyNoise3.
func FBMSky(p Vec3, octaves int, lacunarity, gain float32) float32 {
	amp := float32(0.5)
	freq := float32(1)
	sum := float32(0)
	for o := 0; o < octaves; o++ {
		sum += amp * SkyNoise3(p.Mul(freq))
		freq *= lacunarity
		amp *= gain
	}
	return sum
}
