package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"dualscope/cmd/dualscope/ui"
	"dualscope/internal/config"
	"dualscope/internal/logging"
	"dualscope/internal/store"
	"dualscope/internal/watch"
)

var (
	// Global flags
	configPath string
	verbose    bool

	// Root-command flags
	presetFlag   string
	fpsFlag      int
	durationFlag string
	noWatch      bool

	// Logger for non-interactive subcommands
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "dualscope",
	Short: "dualscope - a dual-universe oscilloscope for the terminal",
	Long: `dualscope draws a parametrized pair of universes: a shared waveform
that splits at a configurable point into two independently shaped
branches, sampled and redrawn every animation tick.

Run without arguments to start the interactive scope. Keys mutate the
signal parameters live; a jam regenerates the whole scene at once.`,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScope()
	},
}

// loadConfig loads the config file and layers the command-line overrides
// on top, re-validating the result.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if presetFlag != "" {
		cfg.Signal.Preset = presetFlag
	}
	if fpsFlag > 0 {
		cfg.Render.FPS = fpsFlag
	}
	if durationFlag != "" {
		cfg.Session.AutoStop = durationFlag
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// runScope launches the interactive scope together with the config file
// watcher; either one failing tears both down.
func runScope() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	trace := logging.New(cfg.Logging)
	defer trace.Sync()

	echo := store.NewEcho(cfg.Store.Dir, cfg.Store.Enabled)
	prog := tea.NewProgram(ui.NewModel(cfg, trace, echo), tea.WithAltScreen())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	if !noWatch {
		cw, werr := watch.New(configPath, func(next *config.Config) {
			prog.Send(ui.ConfigReloadedMsg{Cfg: next})
		}, trace)
		if werr != nil {
			// Live reload is a convenience; the scope runs without it.
			trace.Action("watch_unavailable", zap.Error(werr))
		} else {
			g.Go(func() error {
				if err := cw.Run(ctx); !errors.Is(err, context.Canceled) {
					return err
				}
				return nil
			})
		}
	}

	g.Go(func() error {
		defer cancel()
		_, err := prog.Run()
		return err
	})

	return g.Wait()
}

func init() {
	// Assigned here rather than in the literal: the closure references
	// rootCmd, which would otherwise be an initialization cycle.
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// The interactive scope has its own action trace; subcommands
		// share one stderr logger.
		if cmd == rootCmd {
			return nil
		}
		zcfg := zap.NewProductionConfig()
		zcfg.Encoding = "console"
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "dualscope.yaml", "path to the config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging for subcommands")

	rootCmd.Flags().StringVar(&presetFlag, "preset", "", "start preset (overrides config)")
	rootCmd.Flags().IntVar(&fpsFlag, "fps", 0, "tick rate (overrides config)")
	rootCmd.Flags().StringVar(&durationFlag, "duration", "", "auto-stop after this duration, e.g. 90s")
	rootCmd.Flags().BoolVar(&noWatch, "no-watch", false, "disable live config reload")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(toneCmd)
	rootCmd.AddCommand(presetsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
