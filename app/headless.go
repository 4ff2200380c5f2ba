package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"helios/internal/config"
)

// HeadlessConfig controls the no-window runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	Frames  uint64
}

// RunHeadless renders frames without opening a window, pacing them with a
// ticker. With Frames == 0 it runs until the context is cancelled. Input is
// a zero Controls every frame, so the scene animates but nothing steers.
func RunHeadless(ctx context.Context, cfg config.Config, hc HeadlessConfig) error {
	if hc.Hz <= 0 {
		hc.Hz = 60
	}
	d := time.Second / time.Duration(hc.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", hc.Hz)
	}

	sim := NewSim(cfg)
	dt := float32(1) / float32(hc.Hz)

	t := time.NewTicker(d)
	defer t.Stop()

	start := time.Now()
	var frame uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			sim.Step(Controls{}, dt)
			frame++
			if frame%uint64(hc.Hz) == 0 {
				slog.Info("headless frame", "frame", frame, "sim_time", sim.Time())
			}
			if hc.Frames > 0 && frame >= hc.Frames {
				elapsed := time.Since(start)
				slog.Info("headless run done",
					"frames", frame,
					"elapsed", elapsed,
					"avg_frame", elapsed/time.Duration(frame))
				return nil
			}
		}
	}
}
