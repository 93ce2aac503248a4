package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/taigrr/rtcore/internal/demo"
	"github.com/taigrr/rtcore/pkg/render"
)

func newProjectileCmd() *cobra.Command {
	cfg := demo.DefaultProjectileConfig()
	var pngPath string

	cmd := &cobra.Command{
		Use:   "projectile",
		Short: "Plot a projectile fired under gravity and wind",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}

			p, env, err := demo.Launch(cfg)
			if err != nil {
				return err
			}

			path := demo.Trajectory(p, env, cfg.MaxTicks)
			slog.Debug("trajectory", "ticks", len(path), "landing", path[len(path)-1])

			fb := render.NewFramebuffer(cfg.Width, cfg.Height)
			fb.Clear(render.ColorBlack)
			for _, pos := range path {
				fb.PlotFlipped(pos, render.ColorRed)
			}

			return output(cmd, fb, pngPath)
		},
	}

	f := cmd.Flags()
	f.IntVar(&cfg.Width, "width", cfg.Width, "Canvas width in pixels")
	f.IntVar(&cfg.Height, "height", cfg.Height, "Canvas height in pixels")
	f.Float64Var(&cfg.Speed, "speed", cfg.Speed, "Launch speed")
	f.StringVar(&pngPath, "png", "", "Write a PNG file instead of drawing to the terminal")

	return cmd
}
