package signal

import (
	"math"
	"math/rand"
	"testing"
)

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Params)
		wantErr bool
	}{
		{"valid", func(*Params) {}, false},
		{"zero primary freq", func(p *Params) { p.FreqPrimary = 0 }, true},
		{"negative secondary freq", func(p *Params) { p.FreqSecondary = -1 }, true},
		{"negative amplitude", func(p *Params) { p.Amplitude = -0.1 }, true},
		{"negative noise", func(p *Params) { p.Noise = -0.1 }, true},
		{"empty domain", func(p *Params) { p.XMax = p.XMin }, true},
		{"split below domain", func(p *Params) { p.SplitPoint = p.XMin - 1 }, true},
		{"split above domain", func(p *Params) { p.SplitPoint = p.XMax + 1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testParams()
			tt.mutate(&p)
			err := p.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSettersClamp(t *testing.T) {
	p := testParams()

	p.SetFreqPrimary(1000)
	if p.FreqPrimary != MaxFrequency {
		t.Errorf("expected clamp to %v, got %v", MaxFrequency, p.FreqPrimary)
	}
	p.SetFreqPrimary(0)
	if p.FreqPrimary != MinFrequency {
		t.Errorf("expected clamp to %v, got %v", MinFrequency, p.FreqPrimary)
	}

	p.SetNoise(-3)
	if p.Noise != 0 {
		t.Errorf("expected noise clamp to 0, got %v", p.Noise)
	}

	p.SetAmplitude(99)
	if p.Amplitude != MaxAmplitude {
		t.Errorf("expected amplitude clamp to %v, got %v", MaxAmplitude, p.Amplitude)
	}

	p.SetSplitPoint(-100)
	if p.SplitPoint <= p.XMin || p.SplitPoint >= p.XMax {
		t.Errorf("split point %v escaped domain interior", p.SplitPoint)
	}

	p.SetPhase(5 * math.Pi)
	if p.Phase < 0 || p.Phase >= 2*math.Pi {
		t.Errorf("phase %v not wrapped into [0, 2π)", p.Phase)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("setters produced an invalid record: %v", err)
	}
}

func TestJammedIsValidAndFresh(t *testing.T) {
	p := testParams()
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 50; i++ {
		next := p.Jammed(rng)
		if err := next.Validate(); err != nil {
			t.Fatalf("jam %d produced invalid params: %v", i, err)
		}
		// Domain bounds and amplitude carry over; the receiver is untouched.
		if next.XMin != p.XMin || next.XMax != p.XMax || next.Amplitude != p.Amplitude {
			t.Fatalf("jam %d mutated carried-over fields", i)
		}
	}
	if p.FreqPrimary != 1.2 {
		t.Error("Jammed mutated its receiver")
	}
}

func TestJammedDeterministicPerSeed(t *testing.T) {
	p := testParams()
	a := p.Jammed(rand.New(rand.NewSource(7)))
	b := p.Jammed(rand.New(rand.NewSource(7)))
	if a != b {
		t.Error("same seed should regenerate the same record")
	}
}

func TestPresetsValid(t *testing.T) {
	names := Names()
	if len(names) == 0 {
		t.Fatal("no presets registered")
	}
	for _, name := range names {
		preset, err := ByName(name)
		if err != nil {
			t.Fatalf("ByName(%q): %v", name, err)
		}
		if err := preset.Params.Validate(); err != nil {
			t.Errorf("preset %q invalid: %v", name, err)
		}
		if preset.Name != name {
			t.Errorf("preset %q carries name %q", name, preset.Name)
		}
	}

	if _, err := ByName("no-such-thing"); err == nil {
		t.Error("expected error for unknown preset")
	}
	if _, err := ByName(DefaultPreset); err != nil {
		t.Errorf("default preset missing: %v", err)
	}
}

func TestPresetNextCycles(t *testing.T) {
	names := Names()
	seen := map[string]bool{}
	cur := names[0]
	for range names {
		seen[cur] = true
		cur = Next(cur)
	}
	if cur != names[0] {
		t.Errorf("Next did not wrap: ended at %q", cur)
	}
	if len(seen) != len(names) {
		t.Errorf("Next skipped presets: visited %d of %d", len(seen), len(names))
	}
	if Next("bogus") != names[0] {
		t.Error("Next with unknown name should land on the first preset")
	}
}
