package main

import (
	"math"

	"github.com/spf13/cobra"
	"github.com/taigrr/rtcore/internal/demo"
	"github.com/taigrr/rtcore/pkg/render"
)

func newClockCmd() *cobra.Command {
	cfg := demo.DefaultClockConfig()
	var (
		pngPath string
		sweep   bool
	)

	cmd := &cobra.Command{
		Use:   "clock",
		Short: "Draw the twelve hour marks of a clock face",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}

			fb := render.NewFramebuffer(cfg.Size, cfg.Size)
			fb.Clear(render.ColorBlack)

			if sweep {
				// hand from twelve to three o'clock
				frames := demo.HandSweep(cfg, 0, 3*math.Pi/6)
				for i, angle := range frames {
					hue := 360 * float64(i) / float64(len(frames))
					fb.PlotFlipped(demo.HandTip(cfg, angle), render.Hue(hue))
				}
			}

			for _, mark := range demo.ClockFace(cfg) {
				fb.PlotFlipped(mark, render.ColorWhite)
			}

			return output(cmd, fb, pngPath)
		},
	}

	f := cmd.Flags()
	f.IntVar(&cfg.Size, "size", cfg.Size, "Canvas width and height in pixels")
	f.Float64Var(&cfg.Radius, "radius", cfg.Radius, "Radius of the hour marks")
	f.StringVar(&pngPath, "png", "", "Write a PNG file instead of drawing to the terminal")
	f.BoolVar(&sweep, "sweep", false, "Trace a spring-animated hand from twelve to three")
	f.IntVar(&cfg.FPS, "fps", cfg.FPS, "Hand sweep frame rate")

	return cmd
}
