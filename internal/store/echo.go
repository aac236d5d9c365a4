// Package store persists a best-effort echo of the current parameter set so
// the next session can start where this one left off. It is deliberately
// not a storage layer: every failure is swallowed and reported only as a
// boolean, and the scope runs identically with the echo disabled.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"dualscope/internal/signal"
)

const echoFile = "params.json"

// echoRecord versions the on-disk shape so a future field change can be
// detected instead of half-decoded.
type echoRecord struct {
	Version int           `json:"version"`
	Preset  string        `json:"preset"`
	Params  signal.Params `json:"params"`
}

const echoVersion = 1

// Echo reads and writes the parameter echo file under dir/.dualscope/.
type Echo struct {
	path    string
	enabled bool
}

// NewEcho creates an echo rooted at dir. A disabled echo is a valid object
// whose Load always misses and whose Save always reports false.
func NewEcho(dir string, enabled bool) *Echo {
	return &Echo{
		path:    filepath.Join(dir, ".dualscope", echoFile),
		enabled: enabled,
	}
}

// Load returns the echoed parameters and preset name if a usable echo
// exists. Any read, decode or validation problem is treated as a miss.
func (e *Echo) Load() (signal.Params, string, bool) {
	if !e.enabled {
		return signal.Params{}, "", false
	}
	data, err := os.ReadFile(e.path)
	if err != nil {
		return signal.Params{}, "", false
	}
	var rec echoRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return signal.Params{}, "", false
	}
	if rec.Version != echoVersion {
		return signal.Params{}, "", false
	}
	if err := rec.Params.Validate(); err != nil {
		return signal.Params{}, "", false
	}
	return rec.Params, rec.Preset, true
}

// Save writes the echo. The return value exists for tests; callers in the
// UI ignore it.
func (e *Echo) Save(p signal.Params, preset string) bool {
	if !e.enabled {
		return false
	}
	data, err := json.MarshalIndent(echoRecord{Version: echoVersion, Preset: preset, Params: p}, "", "  ")
	if err != nil {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(e.path), 0o755); err != nil {
		return false
	}
	return os.WriteFile(e.path, data, 0o644) == nil
}
