package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dualscope/internal/driver"
	"dualscope/internal/render"
	"dualscope/internal/signal"
)

var (
	renderTicks  int
	renderWidth  int
	renderHeight int
	renderSeed   int64
)

// renderCmd draws frames headlessly: the same driver/plotter/canvas
// pipeline as the TUI, minus the terminal program.
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the scope headlessly and print the final frame",
	Long: `Advances the animation driver a fixed number of ticks and prints the
resulting braille frame to stdout. Useful for piping a scene into other
tools or eyeballing a preset without entering the interactive scope.`,
	RunE: runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	preset, err := signal.ByName(cfg.Signal.Preset)
	if err != nil {
		return err
	}
	params := preset.Params

	logger.Info("rendering",
		zap.String("preset", preset.Name),
		zap.Int("ticks", renderTicks),
		zap.Int("width", renderWidth),
		zap.Int("height", renderHeight),
	)

	plotter := render.NewPlotter(cfg.Render.Steps, cfg.Render.FPS, rand.New(rand.NewSource(renderSeed)))
	canvas := render.NewCanvas(renderWidth, renderHeight)

	drv := driver.New()
	t0 := time.Now()
	drv.Start(t0)

	interval := cfg.FrameInterval()
	frame := plotter.Frame(params, 0, renderWidth, renderHeight)
	for i := 1; i <= renderTicks; i++ {
		drv.ShouldSchedule()
		drv.Tick(t0.Add(time.Duration(i) * interval))
		frame = plotter.Frame(params, drv.Seconds(), renderWidth, renderHeight)
	}

	fmt.Println(canvas.Render(frame))
	return nil
}

func init() {
	renderCmd.Flags().IntVar(&renderTicks, "ticks", 1, "number of animation ticks to advance")
	renderCmd.Flags().IntVar(&renderWidth, "width", 72, "frame width in cells")
	renderCmd.Flags().IntVar(&renderHeight, "height", 18, "frame height in cells")
	renderCmd.Flags().Int64Var(&renderSeed, "seed", 1, "noise seed, fixed for reproducible output")
}
