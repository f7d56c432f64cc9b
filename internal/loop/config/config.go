// Package config centralizes all tunable game parameters.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Frame pacing for terminal clients.
const (
	ClientTargetFPS       = 60
	ClientTargetFrameTime = time.Second / ClientTargetFPS
)

// Terminal view. The simulation runs in this logical space and the canvas
// scales it to whatever terminal it is drawn on.
const (
	ViewWidth     = 360
	ViewHeight    = 240
	MaxTermWidth  = 160 // Columns; larger terminals get a centered, bordered view
	MaxTermHeight = 54  // Rows
)

// Inactivity (terminal clients only)
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)

// ReferenceFPS is the frame rate that per-frame constants (fall speed,
// easing) are expressed in.
const ReferenceFPS = 60

// ErrInvalidTuning is returned by Validate for out-of-range values.
var ErrInvalidTuning = errors.New("invalid tuning")

// Tuning holds every number that shapes a round.
type Tuning struct {
	InitialLives  int     `yaml:"initialLives"`
	MaxFrameDelta float64 `yaml:"maxFrameDelta"` // Seconds; longer frames are clamped

	Speed  SpeedConfig  `yaml:"speed"`
	Spawn  SpawnConfig  `yaml:"spawn"`
	Player PlayerConfig `yaml:"player"`
}

// SpeedConfig controls the global difficulty multiplier:
// speed = Base + min(Cap, Growth*t).
type SpeedConfig struct {
	Base   float64 `yaml:"base"`
	Growth float64 `yaml:"growth"` // Per second of play
	Cap    float64 `yaml:"cap"`
}

// SpawnConfig controls when and what falls.
type SpawnConfig struct {
	IntervalBase  float64 `yaml:"intervalBase"`  // Seconds between spawns at t=0
	IntervalDecay float64 `yaml:"intervalDecay"` // Seconds removed per second of play
	IntervalMin   float64 `yaml:"intervalMin"`

	BombChanceBase   float64 `yaml:"bombChanceBase"`
	BombChanceGrowth float64 `yaml:"bombChanceGrowth"` // Per second of play
	BombChanceMax    float64 `yaml:"bombChanceMax"`

	SizeRatio      float64 `yaml:"sizeRatio"`      // Entity size as a fraction of the shorter screen side
	VelocityBase   float64 `yaml:"velocityBase"`   // Pixels per reference frame
	VelocitySpread float64 `yaml:"velocitySpread"` // Random extra on top of VelocityBase
	ReferenceWidth float64 `yaml:"referenceWidth"` // Screen width the velocities were tuned for
}

// PlayerConfig controls the player's size and responsiveness.
type PlayerConfig struct {
	HeightRatio   float64 `yaml:"heightRatio"`   // Height as a fraction of the shorter screen side
	WidthRatio    float64 `yaml:"widthRatio"`    // Width as a fraction of height
	BaselineRatio float64 `yaml:"baselineRatio"` // Center distance from the bottom, as a fraction of height
	Easing        float64 `yaml:"easing"`        // Fraction of the distance to the target covered per reference frame
}

// Default returns the stock tuning.
func Default() Tuning {
	return Tuning{
		InitialLives:  3,
		MaxFrameDelta: 0.033,
		Speed: SpeedConfig{
			Base:   1.0,
			Growth: 0.18,
			Cap:    2.2,
		},
		Spawn: SpawnConfig{
			IntervalBase:     0.70,
			IntervalDecay:    0.03,
			IntervalMin:      0.22,
			BombChanceBase:   0.22,
			BombChanceGrowth: 0.02,
			BombChanceMax:    0.55,
			SizeRatio:        0.10,
			VelocityBase:     2.4,
			VelocitySpread:   1.4,
			ReferenceWidth:   900,
		},
		Player: PlayerConfig{
			HeightRatio:   0.26,
			WidthRatio:    0.68,
			BaselineRatio: 0.62,
			Easing:        0.18,
		},
	}
}

// LoadTuning reads a YAML tuning file. Fields missing from the file keep
// their default values.
func LoadTuning(path string) (Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("failed to read tuning: %w", err)
	}
	return ParseTuning(data)
}

// ParseTuning decodes YAML over the defaults and validates the result.
func ParseTuning(data []byte) (Tuning, error) {
	t := Default()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("failed to parse tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// Validate checks that every value is in a range the simulation can run with.
func (t Tuning) Validate() error {
	switch {
	case t.InitialLives < 1:
		return fmt.Errorf("%w: initialLives must be at least 1, got %d", ErrInvalidTuning, t.InitialLives)
	case t.MaxFrameDelta <= 0:
		return fmt.Errorf("%w: maxFrameDelta must be positive, got %v", ErrInvalidTuning, t.MaxFrameDelta)
	case t.Speed.Base <= 0:
		return fmt.Errorf("%w: speed.base must be positive, got %v", ErrInvalidTuning, t.Speed.Base)
	case t.Speed.Growth < 0 || t.Speed.Cap < 0:
		return fmt.Errorf("%w: speed growth and cap must not be negative", ErrInvalidTuning)
	case t.Spawn.IntervalMin <= 0:
		return fmt.Errorf("%w: spawn.intervalMin must be positive, got %v", ErrInvalidTuning, t.Spawn.IntervalMin)
	case t.Spawn.IntervalMin > t.Spawn.IntervalBase:
		return fmt.Errorf("%w: spawn.intervalMin(%v) > spawn.intervalBase(%v)",
			ErrInvalidTuning, t.Spawn.IntervalMin, t.Spawn.IntervalBase)
	case t.Spawn.IntervalDecay < 0:
		return fmt.Errorf("%w: spawn.intervalDecay must not be negative", ErrInvalidTuning)
	case !isChance(t.Spawn.BombChanceBase) || !isChance(t.Spawn.BombChanceMax):
		return fmt.Errorf("%w: bomb chances must be within [0, 1]", ErrInvalidTuning)
	case t.Spawn.BombChanceBase > t.Spawn.BombChanceMax:
		return fmt.Errorf("%w: spawn.bombChanceBase(%v) > spawn.bombChanceMax(%v)",
			ErrInvalidTuning, t.Spawn.BombChanceBase, t.Spawn.BombChanceMax)
	case t.Spawn.BombChanceGrowth < 0:
		return fmt.Errorf("%w: spawn.bombChanceGrowth must not be negative", ErrInvalidTuning)
	case t.Spawn.SizeRatio <= 0 || t.Spawn.SizeRatio >= 1:
		return fmt.Errorf("%w: spawn.sizeRatio must be within (0, 1), got %v", ErrInvalidTuning, t.Spawn.SizeRatio)
	case t.Spawn.VelocityBase <= 0 || t.Spawn.VelocitySpread < 0:
		return fmt.Errorf("%w: spawn velocities must be positive", ErrInvalidTuning)
	case t.Spawn.ReferenceWidth <= 0:
		return fmt.Errorf("%w: spawn.referenceWidth must be positive", ErrInvalidTuning)
	case t.Player.HeightRatio <= 0 || t.Player.WidthRatio <= 0 || t.Player.BaselineRatio <= 0:
		return fmt.Errorf("%w: player ratios must be positive", ErrInvalidTuning)
	case t.Player.Easing <= 0 || t.Player.Easing > 1:
		return fmt.Errorf("%w: player.easing must be within (0, 1], got %v", ErrInvalidTuning, t.Player.Easing)
	}
	return nil
}

func isChance(v float64) bool {
	return v >= 0 && v <= 1
}

// SpeedAt returns the difficulty multiplier after t seconds of play.
func (c SpeedConfig) SpeedAt(t float64) float64 {
	return c.Base + min(c.Cap, t*c.Growth)
}

// IntervalAt returns the time between spawns after t seconds of play.
func (c SpawnConfig) IntervalAt(t float64) float64 {
	return max(c.IntervalMin, c.IntervalBase-t*c.IntervalDecay)
}

// BombChanceAt returns the probability that a spawn is a bomb after t
// seconds of play.
func (c SpawnConfig) BombChanceAt(t float64) float64 {
	return min(c.BombChanceBase+t*c.BombChanceGrowth, c.BombChanceMax)
}

// TuningEnvVar names the environment variable that points at a tuning file.
const TuningEnvVar = "GIFTDROP_TUNING"

// LoadTuningFromEnv loads the tuning file named by TuningEnvVar, or returns
// the defaults when it is unset.
func LoadTuningFromEnv() (Tuning, error) {
	path := os.Getenv(TuningEnvVar)
	if path == "" {
		return Default(), nil
	}
	return LoadTuning(path)
}
