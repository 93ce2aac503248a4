// rtcore - ray tracer core demos
// Draws the clock-face and projectile demos and inspects glTF node
// transforms.
//
// Commands:
//
//	clock       - Twelve hour marks, optionally with a spring-driven hand sweep
//	projectile  - Trajectory of a shot under gravity and wind
//	inspect     - Local and world matrices of every node in a glTF file
//
// Without --png, images are drawn to stdout with half-block characters.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/taigrr/rtcore/pkg/math3d"
	"github.com/taigrr/rtcore/pkg/render"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := fang.Execute(ctx, newRootCmd(), fang.WithVersion(version)); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "rtcore",
		Short: "Ray tracer core demos",
		Long:  "Draw the clock and projectile demos and inspect glTF node transforms.",
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			slog.SetDefault(logger)
			math3d.SetLogger(logger)
		},
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "Log debug output to stderr")

	root.AddCommand(
		newClockCmd(),
		newProjectileCmd(),
		newInspectCmd(),
	)
	return root
}

// output writes fb to pngPath, or to the command's stdout as terminal cells
// when pngPath is empty.
func output(cmd *cobra.Command, fb *render.Framebuffer, pngPath string) error {
	if pngPath == "" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), fb.String())
		return err
	}
	if err := fb.SavePNG(pngPath); err != nil {
		return err
	}
	slog.Info("wrote image", "path", pngPath, "width", fb.Width, "height", fb.Height)
	return nil
}
