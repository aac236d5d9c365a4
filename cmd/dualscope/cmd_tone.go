package main

import (
	"fmt"
	"os"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dualscope/internal/signal"
	"dualscope/internal/store"
	"dualscope/internal/tone"
	"dualscope/internal/wav"
)

var (
	toneOut  string
	tonePlay bool
)

// toneCmd renders the current scene as audio: primary frequency as the
// carrier, secondary as the binaural beat offset.
var toneCmd = &cobra.Command{
	Use:   "tone",
	Short: "Export the scene as a binaural tone WAV (optionally play it)",
	Long: `Synthesizes a stereo tone from the active parameter set: the left
channel carries freq_primary scaled by tone.base_hz, the right channel
adds freq_secondary as a beat offset. Uses the previous session's
parameter echo when one exists, the configured preset otherwise.`,
	RunE: runTone,
}

func runTone(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	preset, err := signal.ByName(cfg.Signal.Preset)
	if err != nil {
		return err
	}
	params := preset.Params
	if echoed, _, ok := store.NewEcho(cfg.Store.Dir, cfg.Store.Enabled).Load(); ok {
		params = echoed
	}

	sr := beep.SampleRate(cfg.Tone.SampleRate)
	dur := cfg.GetToneDuration()
	gen := tone.New(sr, params, cfg.Tone.BaseHz)

	out := toneOut
	if out == "" {
		out = cfg.Tone.Output
	}

	logger.Info("synthesizing tone",
		zap.Float64("left_hz", gen.LeftHz()),
		zap.Float64("right_hz", gen.RightHz()),
		zap.Duration("duration", dur),
		zap.String("output", out),
	)

	if err := exportWAV(out, sr, dur, gen); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%.1fs, L %.1f Hz / R %.1f Hz)\n", out, dur.Seconds(), gen.LeftHz(), gen.RightHz())

	if tonePlay {
		return playTone(sr, dur, tone.New(sr, params, cfg.Tone.BaseHz))
	}
	return nil
}

func exportWAV(path string, sr beep.SampleRate, dur time.Duration, gen beep.Streamer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	enc, err := wav.NewEncoder(f, int(sr), 2)
	if err != nil {
		return err
	}

	streamer := beep.Take(sr.N(dur), gen)
	buf := make([][2]float64, 512)
	for {
		n, ok := streamer.Stream(buf)
		frames := make([][2]int16, n)
		for i := 0; i < n; i++ {
			frames[i][0] = pcm16(buf[i][0])
			frames[i][1] = pcm16(buf[i][1])
		}
		if err := enc.WriteStereo(frames); err != nil {
			return err
		}
		if !ok {
			break
		}
	}
	return enc.Close()
}

func playTone(sr beep.SampleRate, dur time.Duration, gen beep.Streamer) error {
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return fmt.Errorf("failed to open speaker: %w", err)
	}
	done := make(chan struct{})
	speaker.Play(beep.Seq(beep.Take(sr.N(dur), gen), beep.Callback(func() {
		close(done)
	})))
	<-done
	return nil
}

// pcm16 converts a [-1, 1] sample to 16-bit PCM with saturation.
func pcm16(s float64) int16 {
	if s > 1 {
		s = 1
	}
	if s < -1 {
		s = -1
	}
	return int16(s * 32767)
}

func init() {
	toneCmd.Flags().StringVar(&toneOut, "out", "", "output WAV path (default from config)")
	toneCmd.Flags().BoolVar(&tonePlay, "play", false, "also play the tone through the speaker")
}
