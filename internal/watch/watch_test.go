package watch

import (
	"context"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"dualscope/internal/config"
	"dualscope/internal/logging"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func writeConfig(t *testing.T, path, preset string, fps int) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Signal.Preset = preset
	cfg.Render.FPS = fps
	require.NoError(t, cfg.Save(path))
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dualscope.yaml")
	writeConfig(t, path, "calm", 30)

	got := make(chan *config.Config, 4)
	cw, err := New(path, func(c *config.Config) { got <- c }, logging.NewNop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- cw.Run(ctx) }()

	writeConfig(t, path, "schism", 24)

	select {
	case cfg := <-got:
		assert.Equal(t, "schism", cfg.Signal.Preset)
		assert.Equal(t, 24, cfg.Render.FPS)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload observed")
	}

	cancel()
	require.ErrorIs(t, <-done, context.Canceled)
}

func TestWatcherRejectsInvalidEdit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dualscope.yaml")
	writeConfig(t, path, "calm", 30)

	var reloads atomic.Int32
	trace := logging.NewNop()
	cw, err := New(path, func(*config.Config) { reloads.Add(1) }, trace)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- cw.Run(ctx) }()

	// A config that parses but fails validation must be rejected.
	cfg := config.DefaultConfig()
	cfg.Render.FPS = 999
	require.NoError(t, cfg.Save(path))

	require.Eventually(t, func() bool {
		for _, line := range trace.Recent() {
			if strings.Contains(line, "config_reload_rejected") {
				return true
			}
		}
		return false
	}, 5*time.Second, 20*time.Millisecond)
	assert.Equal(t, int32(0), reloads.Load())

	cancel()
	<-done
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dualscope.yaml")
	writeConfig(t, path, "calm", 30)

	reloaded := make(chan struct{}, 1)
	cw, err := New(path, func(*config.Config) { reloaded <- struct{}{} }, logging.NewNop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- cw.Run(ctx) }()

	writeConfig(t, filepath.Join(dir, "other.yaml"), "beat", 20)

	select {
	case <-reloaded:
		t.Fatal("sibling file triggered a reload")
	case <-time.After(600 * time.Millisecond):
	}

	cancel()
	<-done
}
