package app

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"helios/internal/buildinfo"
	"helios/internal/config"
)

// RunWindow opens a desktop window, polls the keyboard at 60 TPS, and
// presents the framebuffer every frame. It blocks until the window closes.
func RunWindow(cfg config.Config) error {
	g := &game{sim: NewSim(cfg)}
	ebiten.SetWindowTitle("Helios (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(cfg.Width*2, cfg.Height*2)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type game struct {
	sim   *Sim
	img   *image.RGBA
	fbImg *ebiten.Image
}

func (g *game) Update() error {
	g.sim.Step(pollControls(), 1.0/60.0)
	return nil
}

func pollControls() Controls {
	return Controls{
		TempUp:        ebiten.IsKeyPressed(ebiten.KeyT),
		TempDown:      ebiten.IsKeyPressed(ebiten.KeyG),
		IntensityUp:   ebiten.IsKeyPressed(ebiten.KeyY),
		IntensityDown: ebiten.IsKeyPressed(ebiten.KeyH),
		ZoomIn:        ebiten.IsKeyPressed(ebiten.KeyR),
		ZoomOut:       ebiten.IsKeyPressed(ebiten.KeyF),

		PitchUp:    ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		PitchDown:  ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		YawLeft:    ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		YawRight:   ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		RollLeft:   ebiten.IsKeyPressed(ebiten.KeyQ),
		RollRight:  ebiten.IsKeyPressed(ebiten.KeyE),
		ThrustFwd:  ebiten.IsKeyPressed(ebiten.KeyW),
		ThrustBack: ebiten.IsKeyPressed(ebiten.KeyS),
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	fb := g.sim.Framebuffer()
	w, h := fb.Width(), fb.Height()
	if g.img == nil || g.img.Bounds().Dx() != w || g.img.Bounds().Dy() != h {
		g.img = image.NewRGBA(image.Rect(0, 0, w, h))
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(w, h)
	}

	fb.SnapshotRGBA(g.img.Pix)

	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.sim.Framebuffer().Width(), g.sim.Framebuffer().Height()
}
