package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestBombChanceBounded(t *testing.T) {
	spawn := Default().Spawn
	prev := spawn.BombChanceAt(0)
	if prev != 0.22 {
		t.Fatalf("BombChanceAt(0) = %v, want 0.22", prev)
	}
	for i := 1; i <= 1000; i++ {
		tm := float64(i) * 0.1
		c := spawn.BombChanceAt(tm)
		if c < prev {
			t.Fatalf("bomb chance decreased at t=%v: %v -> %v", tm, prev, c)
		}
		if c > 0.55 {
			t.Fatalf("bomb chance %v at t=%v exceeds 0.55", c, tm)
		}
		prev = c
	}
	if got := spawn.BombChanceAt(1000); got != 0.55 {
		t.Fatalf("BombChanceAt(1000) = %v, want cap 0.55", got)
	}
}

func TestIntervalAndSpeedCurves(t *testing.T) {
	d := Default()
	tests := []struct {
		t            float64
		wantInterval float64
		wantSpeed    float64
	}{
		{0, 0.70, 1.0},
		{10, 0.40, 2.8},
		{100, 0.22, 3.2},
	}
	for _, tt := range tests {
		if got := d.Spawn.IntervalAt(tt.t); !near(got, tt.wantInterval) {
			t.Errorf("IntervalAt(%v) = %v, want %v", tt.t, got, tt.wantInterval)
		}
		if got := d.Speed.SpeedAt(tt.t); !near(got, tt.wantSpeed) {
			t.Errorf("SpeedAt(%v) = %v, want %v", tt.t, got, tt.wantSpeed)
		}
	}
}

func near(a, b float64) bool {
	d := a - b
	return d > -1e-9 && d < 1e-9
}

func TestParseTuningOverridesDefaults(t *testing.T) {
	data := []byte(`
initialLives: 5
spawn:
  bombChanceMax: 0.4
player:
  easing: 0.5
`)
	got, err := ParseTuning(data)
	if err != nil {
		t.Fatalf("ParseTuning: %v", err)
	}
	if got.InitialLives != 5 || got.Spawn.BombChanceMax != 0.4 || got.Player.Easing != 0.5 {
		t.Fatalf("overrides not applied: %+v", got)
	}
	if got.Spawn.IntervalBase != 0.70 || got.Speed.Cap != 2.2 {
		t.Fatalf("defaults lost: %+v", got)
	}
}

func TestParseTuningRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"no lives", "initialLives: 0"},
		{"chance above one", "spawn:\n  bombChanceMax: 1.5"},
		{"base above max", "spawn:\n  bombChanceBase: 0.6\n  bombChanceMax: 0.5"},
		{"min above base", "spawn:\n  intervalMin: 2"},
		{"zero easing", "player:\n  easing: 0"},
		{"zero frame delta", "maxFrameDelta: 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTuning([]byte(tt.yaml))
			if !errors.Is(err, ErrInvalidTuning) {
				t.Fatalf("err = %v, want ErrInvalidTuning", err)
			}
		})
	}
}

func TestParseTuningBadYAML(t *testing.T) {
	if _, err := ParseTuning([]byte("speed: [oops")); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestLoadTuning(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("speed:\n  cap: 1.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := LoadTuning(path)
	if err != nil {
		t.Fatalf("LoadTuning: %v", err)
	}
	if got.Speed.Cap != 1.0 {
		t.Fatalf("speed.cap = %v, want 1.0", got.Speed.Cap)
	}

	if _, err := LoadTuning(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file err = %v, want ErrNotExist", err)
	}
}

func TestLoadTuningFromEnv(t *testing.T) {
	t.Setenv(TuningEnvVar, "")
	got, err := LoadTuningFromEnv()
	if err != nil || got != Default() {
		t.Fatalf("unset env = %+v, %v; want defaults", got, err)
	}

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("initialLives: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(TuningEnvVar, path)
	got, err = LoadTuningFromEnv()
	if err != nil {
		t.Fatalf("LoadTuningFromEnv: %v", err)
	}
	if got.InitialLives != 5 {
		t.Fatalf("initialLives = %d, want 5", got.InitialLives)
	}
}
