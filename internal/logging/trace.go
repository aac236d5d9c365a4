// Package logging provides the append-only action trace: a human-readable
// diagnostic log of everything the user did to the scope (start, stop, jam,
// preset switches, parameter nudges). The trace is structured through zap
// and mirrored into a small in-memory ring for the TUI log pane.
//
// The trace is best-effort by contract: if the sink cannot be opened the
// scope runs on with a nop logger rather than surfacing an error.
package logging

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"dualscope/internal/config"
)

// ringSize bounds the in-memory mirror shown in the log pane.
const ringSize = 200

// Trace is the action trace shared by the UI and the file watcher.
// Action/Recent are safe for concurrent use.
type Trace struct {
	logger  *zap.Logger
	session string

	mu     sync.Mutex
	recent []string
}

// New builds a trace writing to the configured sink. Sink failures degrade
// to a nop zap logger; the in-memory ring keeps working either way.
func New(cfg config.LoggingConfig) *Trace {
	tr := &Trace{session: uuid.NewString()}

	level := zapcore.InfoLevel
	if err := level.Set(cfg.Level); err != nil {
		level = zapcore.InfoLevel
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.Encoding = "console"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.Path != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err == nil {
			zcfg.OutputPaths = []string{cfg.Path}
			zcfg.ErrorOutputPaths = []string{cfg.Path}
		}
	} else {
		zcfg.OutputPaths = []string{"stderr"}
	}

	logger, err := zcfg.Build()
	if err != nil {
		logger = zap.NewNop()
	}
	tr.logger = logger.With(zap.String("session", tr.session))
	return tr
}

// NewNop returns a trace that only keeps the in-memory ring. Used by tests
// and headless rendering.
func NewNop() *Trace {
	return &Trace{logger: zap.NewNop(), session: uuid.NewString()}
}

// Session returns the trace's session id.
func (t *Trace) Session() string { return t.session }

// Action records one user or system action with structured detail.
func (t *Trace) Action(verb string, fields ...zap.Field) {
	t.logger.Info(verb, fields...)

	line := time.Now().Format("15:04:05") + "  " + verb
	for _, f := range fields {
		line += "  " + f.Key + "=" + fieldValue(f)
	}

	t.mu.Lock()
	t.recent = append(t.recent, line)
	if len(t.recent) > ringSize {
		t.recent = t.recent[len(t.recent)-ringSize:]
	}
	t.mu.Unlock()
}

// Recent returns a copy of the ring, oldest first.
func (t *Trace) Recent() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, len(t.recent))
	copy(out, t.recent)
	return out
}

// Sync flushes the underlying sink. Errors are swallowed: the trace never
// becomes a failure path.
func (t *Trace) Sync() {
	_ = t.logger.Sync()
}

func fieldValue(f zap.Field) string {
	switch f.Type {
	case zapcore.StringType:
		return f.String
	case zapcore.Float64Type:
		return fmt.Sprintf("%.3f", math.Float64frombits(uint64(f.Integer)))
	case zapcore.Int64Type, zapcore.Int32Type:
		return fmt.Sprintf("%d", f.Integer)
	case zapcore.BoolType:
		if f.Integer == 1 {
			return "true"
		}
		return "false"
	case zapcore.DurationType:
		return time.Duration(f.Integer).String()
	default:
		return fmt.Sprintf("%v", f.Interface)
	}
}
