// Package app drives frames: it owns the framebuffer, scene, and camera,
// applies control input, renders each frame through the hgl pipeline, and
// presents it either in an ebiten window or headless.
package app

import (
	"github.com/chewxy/math32"

	"helios/hgl"
	"helios/internal/config"
	"helios/mesh"
	"helios/scene"
)

// Controls is the per-frame input snapshot, decoupled from any window
// backend so the headless runner can drive the same simulation.
type Controls struct {
	TempUp, TempDown           bool
	IntensityUp, IntensityDown bool
	ZoomIn, ZoomOut            bool

	PitchUp, PitchDown    bool
	YawLeft, YawRight     bool
	RollLeft, RollRight   bool
	ThrustFwd, ThrustBack bool
}

// Sim is the complete frame-synchronous simulation and render state.
type Sim struct {
	cfg config.Config

	fb     *hgl.Framebuffer
	sky    *scene.Skybox
	system *scene.System
	camera *scene.Camera

	proj     hgl.Mat4
	viewport hgl.Mat4

	time      float32
	temp      float32
	intensity float32
}

// NewSim allocates the framebuffer and builds the scene. Buffers are sized
// once here and reused for every frame.
func NewSim(cfg config.Config) *Sim {
	fb := hgl.NewFramebuffer(cfg.Width, cfg.Height, hgl.RGB(4, 12, 36))

	system := scene.SampleSystem(mesh.Ship(cfg.ShipMesh))
	ship := system.Find(scene.ShipName)

	camera := scene.NewCamera(hgl.V3(0, 5, 30), hgl.V3(0, 0, 0))
	if ship != nil {
		camera.FollowShip(ship.Translation, ship.Right, ship.Up)
	}

	aspect := float32(cfg.Width) / float32(cfg.Height)
	return &Sim{
		cfg:       cfg,
		fb:        fb,
		sky:       scene.NewSkybox(),
		system:    system,
		camera:    camera,
		proj:      hgl.Mat4Perspective(cfg.FOVDegrees*math32.Pi/180, aspect, cfg.Near, cfg.Far),
		viewport:  hgl.Mat4Viewport(0, 0, float32(cfg.Width), float32(cfg.Height)),
		temp:      0.1,
		intensity: 0.5,
	}
}

func (s *Sim) Framebuffer() *hgl.Framebuffer { return s.fb }
func (s *Sim) Time() float32                 { return s.time }

// Step advances controls and motion by dt seconds, then renders the frame
// into the framebuffer: clear → sky → entities → HUD.
func (s *Sim) Step(in Controls, dt float32) {
	s.time += dt
	s.applyControls(in, dt)

	s.system.Update(s.time)

	ship := s.system.Find(scene.ShipName)
	if ship != nil {
		s.camera.FollowShip(ship.Translation, ship.Right, ship.Up)
	}

	s.renderFrame()
}

func (s *Sim) applyControls(in Controls, dt float32) {
	if in.TempUp {
		s.temp += s.cfg.TempRate * dt
	}
	if in.TempDown {
		s.temp -= s.cfg.TempRate * dt
	}
	if in.IntensityUp {
		s.intensity += s.cfg.IntensityRate * dt
	}
	if in.IntensityDown {
		s.intensity -= s.cfg.IntensityRate * dt
	}
	s.temp = hgl.Clamp(s.temp, 0, 1)
	s.intensity = hgl.Clamp(s.intensity, 0.2, 2)

	if in.ZoomIn {
		s.camera.ZoomIn()
	}
	if in.ZoomOut {
		s.camera.ZoomOut()
	}

	ship := s.system.Find(scene.ShipName)
	if ship == nil {
		return
	}
	var cmd scene.ShipInput
	turn := s.cfg.TurnRate * dt
	if in.PitchUp {
		cmd.Pitch += turn
	}
	if in.PitchDown {
		cmd.Pitch -= turn
	}
	if in.YawLeft {
		cmd.Yaw += turn
	}
	if in.YawRight {
		cmd.Yaw -= turn
	}
	if in.RollLeft {
		cmd.Roll += turn
	}
	if in.RollRight {
		cmd.Roll -= turn
	}
	if in.ThrustFwd {
		cmd.Thrust += s.cfg.ShipSpeed * dt
	}
	if in.ThrustBack {
		cmd.Thrust -= s.cfg.ShipSpeed * dt
	}
	ship.Steer(cmd)
}

func (s *Sim) renderFrame() {
	s.fb.Clear()

	view := s.camera.View()

	s.sky.DrawSphere(s.fb, view, s.proj, s.viewport)
	s.sky.DrawStars(s.fb, view, s.proj, s.viewport)
	scene.DrawShootingStar(s.fb, s.time)

	u := hgl.Uniforms{
		Time:       s.time,
		Resolution: hgl.V2(float32(s.cfg.Width), float32(s.cfg.Height)),
		Temp:       s.temp,
		Intensity:  s.intensity,
	}

	for i := range s.system.Entities {
		e := &s.system.Entities[i]
		hgl.Render(s.fb, e.Placement(s.time), e.Vertices, e.VShader, e.FShader, view, s.proj, s.viewport, u)
	}

	s.drawHUD()
}
