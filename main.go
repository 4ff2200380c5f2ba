package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"helios/app"
	"helios/internal/config"
)

func main() {
	var hc app.HeadlessConfig
	var cfgPath string
	flag.StringVar(&cfgPath, "config", "helios.toml", "Path to TOML config file (missing file = defaults).")
	flag.BoolVar(&hc.Enabled, "headless", false, "Render without a window.")
	flag.IntVar(&hc.Hz, "hz", 60, "Frame rate in headless mode.")
	flag.Uint64Var(&hc.Frames, "frames", 0, "Stop after N frames in headless mode (0 = run forever).")
	flag.Parse()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if hc.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := app.RunHeadless(ctx, cfg, hc); err != nil {
			if err == context.Canceled {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := app.RunWindow(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
