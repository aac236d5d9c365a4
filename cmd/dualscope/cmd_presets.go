package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"dualscope/internal/signal"
)

// presetsCmd lists the closed preset enumeration.
var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List built-in scene presets",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range signal.Names() {
			preset, err := signal.ByName(name)
			if err != nil {
				return err
			}
			p := preset.Params
			marker := "  "
			if name == signal.DefaultPreset {
				marker = "* "
			}
			fmt.Printf("%s%-10s %s\n", marker, name, preset.Description)
			fmt.Printf("             f1=%.2f f2=%.2f phase=%.2f amp=%.2f noise=%.2f split=%.1f/[%.0f,%.0f]\n",
				p.FreqPrimary, p.FreqSecondary, p.Phase, p.Amplitude, p.Noise, p.SplitPoint, p.XMin, p.XMax)
		}
		return nil
	},
}
