package object

import (
	"math"
	"math/rand"

	"github.com/tomz197/giftdrop/internal/loop/config"
)

// EntitySpawner drops a new entity whenever enough time has passed.
// The interval shrinks and the bomb share grows as the round goes on.
type EntitySpawner struct {
	cfg   config.SpawnConfig
	rng   *rand.Rand
	timer float64 // Seconds since the last spawn
}

// NewEntitySpawner creates a spawner drawing from rng.
func NewEntitySpawner(cfg config.SpawnConfig, rng *rand.Rand) *EntitySpawner {
	return &EntitySpawner{cfg: cfg, rng: rng}
}

// Timer returns the seconds accumulated since the last spawn.
func (s *EntitySpawner) Timer() float64 {
	return s.timer
}

// Reset clears the spawn timer.
func (s *EntitySpawner) Reset() {
	s.timer = 0
}

// Update accumulates dt and returns a new entity once the interval for the
// current elapsed time is reached. At most one entity is spawned per call,
// and none on an empty screen.
func (s *EntitySpawner) Update(dt, elapsed, speed float64, screen Screen) (Entity, bool) {
	if screen.Base() <= 0 {
		return Entity{}, false
	}
	s.timer += dt
	if s.timer < s.cfg.IntervalAt(elapsed) {
		return Entity{}, false
	}
	s.timer = 0
	return s.Spawn(elapsed, speed, screen), true
}

// Spawn creates an entity just above the top edge at a random column.
func (s *EntitySpawner) Spawn(elapsed, speed float64, screen Screen) Entity {
	size := math.Floor(screen.Base() * s.cfg.SizeRatio)
	x := math.Floor(s.rng.Float64()*(screen.Width-size) + size/2)

	kind := KindGift
	if s.rng.Float64() < s.cfg.BombChanceAt(elapsed) {
		kind = KindBomb
	}

	vy := (s.cfg.VelocityBase + s.rng.Float64()*s.cfg.VelocitySpread) * speed * (screen.Width / s.cfg.ReferenceWidth)

	return Entity{
		X:    x,
		Y:    -size,
		Size: size,
		VY:   vy,
		Kind: kind,
	}
}
