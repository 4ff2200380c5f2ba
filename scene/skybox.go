package scene

import (
	"github.com/chewxy/math32"

	"helios/hgl"
	"helios/mesh"
)

// Skybox is the precomputed background: a huge inward-facing sphere with
// per-vertex nebula colors, a fixed 3D starfield, and a procedural shooting
// star. Nebula colors are sampled once at construction; only the shooting
// star animates per frame.
type Skybox struct {
	Vertices []hgl.Vec3 // nebula sphere triangle list
	Colors   []hgl.Vec3 // nebula color per vertex

	StarDirs   []hgl.Vec3 // unit star directions
	StarBright []float32  // brightness per star
}

const (
	skyRadius  = 10000
	starRadius = 9500 // slightly inside the sphere to avoid z-fighting
	starCount  = 600
)

func NewSkybox() *Skybox {
	return newSkybox(200, 200)
}

func newSkybox(segments, rings int) *Skybox {
	vertices := mesh.UVSphere(skyRadius, segments, rings)

	colors := make([]hgl.Vec3, len(vertices))
	for i, v := range vertices {
		colors[i] = sampleSky(v)
	}

	// Deterministic pseudo-random star directions and brightness.
	starDirs := make([]hgl.Vec3, 0, starCount)
	starBright := make([]float32, 0, starCount)
	for i := 0; i < starCount; i++ {
		fi := float32(i) + 1
		theta := math32.Sin(fi*12.9898) * math32.Pi
		phi := math32.Sin(fi*78.233) * 2 * math32.Pi

		starDirs = append(starDirs, hgl.Normalize(hgl.V3(
			math32.Sin(theta)*math32.Cos(phi),
			math32.Cos(theta),
			math32.Sin(theta)*math32.Sin(phi),
		)))
		starBright = append(starBright, 0.6+0.4*(math32.Sin(fi*3.17)*0.5+0.5))
	}

	return &Skybox{
		Vertices:   vertices,
		Colors:     colors,
		StarDirs:   starDirs,
		StarBright: starBright,
	}
}

// sampleSky returns the nebula color for a sky direction, with occasional
// point-star sparkle baked into the vertex colors.
func sampleSky(dir hgl.Vec3) hgl.Vec3 {
	d := hgl.Normalize(dir)

	neb := hgl.FBMSky(d.Mul(2.5), 5, 2.2, 0.55)
	neb2 := hgl.FBMSky(d.Mul(7), 4, 2.0, 0.5)
	mix := hgl.Clamp01(neb*0.6 + neb2*0.4)

	col := hgl.V3(
		(5+mix*40)/255,
		(8+mix*60)/255,
		(20+mix*140)/255,
	)

	starNoise := hgl.SkyHash3(d.Mul(120))
	if starNoise > 0.9985 {
		a := hgl.Clamp01((starNoise - 0.9985) / 0.0015)
		b := (210 + 45*a) / 255
		col = hgl.V3(b, b, hgl.Clamp01(b*1.1))
	} else if starNoise > 0.995 {
		b := (160 + (starNoise-0.995)/0.005*80) / 255
		col = hgl.V3(b, b, hgl.Clamp01(b*1.05))
	}

	return col
}

// DrawSphere rasterizes the nebula sphere through the flat fast path.
func (s *Skybox) DrawSphere(fb *hgl.Framebuffer, view, proj, viewport hgl.Mat4) {
	hgl.RenderFlat(fb, s.Vertices, s.Colors, view, proj, viewport)
}

// DrawStars splats each fixed star as a 3×3 block, slightly nearer than the
// nebula so the sparkle survives the depth test.
func (s *Skybox) DrawStars(fb *hgl.Framebuffer, view, proj, viewport hgl.Mat4) {
	mvp := hgl.Mat4Mul(proj, view)

	for i, dir := range s.StarDirs {
		screen, ok := hgl.TransformVertex(dir.Mul(starRadius), mvp, viewport)
		if !ok {
			continue
		}

		sx := int(screen.X)
		sy := int(screen.Y)
		depth := screen.Z - 0.001
		intensity := uint8(hgl.Clamp01(s.StarBright[i]) * 255)
		c := hgl.Color{R: intensity, G: intensity, B: 255, A: 255}

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				fb.SetPixel(sx+dx, sy+dy, depth, c)
			}
		}
	}
}

const shootingStarPeriod = 7.5

// DrawShootingStar draws a time-driven meteor trail. Each period picks a new
// deterministic start and heading; the trail only shows for the first 80% of
// the cycle and fades toward its tail.
func DrawShootingStar(fb *hgl.Framebuffer, time float32) {
	w := fb.Width()
	h := fb.Height()
	if w == 0 || h == 0 {
		return
	}

	tCycle := math32.Mod(time, shootingStarPeriod)
	phase := tCycle / shootingStarPeriod
	if phase > 0.8 {
		return
	}

	seed := math32.Floor(time/shootingStarPeriod) + 1

	sx := hgl.Fract(math32.Sin(math32.Sin(seed*12.9898)*78.233) * 43758.5453)
	sy := hgl.Fract(math32.Sin(math32.Sin(seed*93.9898)*47.123) * 12345.6789)

	startX := sx * float32(w)
	startY := sy * float32(h)

	angle := math32.Sin(seed*2.4)*0.8 - 0.4
	dirX := math32.Cos(angle)
	dirY := math32.Sin(angle)

	travel := phase * float32(w) * 1.4
	startX -= dirX * travel
	startY -= dirY * travel

	const length = 25
	for i := 0; i < length; i++ {
		t := float32(i) / length
		px := startX + dirX*float32(i)
		py := startY + dirY*float32(i)
		if px < 0 || px >= float32(w) || py < 0 || py >= float32(h) {
			continue
		}

		alpha := (1 - t) * (1 - t)
		brightness := uint8(200 + 55*alpha)
		// A bit in front of the background layers.
		fb.SetPixel(int(px), int(py), 0.8, hgl.Color{R: brightness, G: brightness, B: 255, A: 255})
	}
}
