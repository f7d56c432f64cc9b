// Package loop holds the game simulation: state, per-frame advance,
// collisions and the Idle → Running → GameOver state machine.
// It never renders, plays sound or reads devices; front ends drive it.
package loop

import (
	"math/rand"
	"time"

	"github.com/tomz197/giftdrop/internal/feedback"
	"github.com/tomz197/giftdrop/internal/loop/config"
	"github.com/tomz197/giftdrop/internal/object"
)

// GameState represents the current game phase.
type GameState int

const (
	GameStateIdle    GameState = iota // Title screen, nothing moves
	GameStateRunning                  // Active gameplay
	GameStateOver                     // Lives ran out, waiting for restart
)

func (g GameState) String() string {
	switch g {
	case GameStateIdle:
		return "idle"
	case GameStateRunning:
		return "running"
	case GameStateOver:
		return "game over"
	default:
		return "unknown"
	}
}

// State holds everything about one game. It is owned by a single loop and
// is not safe for concurrent use.
type State struct {
	GameState GameState
	Elapsed   float64 // Seconds of play since the last start
	Score     int
	Lives     int
	Speed     float64 // Difficulty multiplier applied to new entities

	Entities []object.Entity
	Player   object.Player
	Screen   object.Screen

	Tuning  config.Tuning
	spawner *object.EntitySpawner
	cues    []feedback.Cue
}

// NewState creates an idle game on the given screen. A nil rng is replaced
// with one seeded from the clock.
func NewState(screen object.Screen, tuning config.Tuning, rng *rand.Rand) *State {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s := &State{
		GameState: GameStateIdle,
		Screen:    screen,
		Tuning:    tuning,
		spawner:   object.NewEntitySpawner(tuning.Spawn, rng),
	}
	s.reset()
	return s
}

// Running reports whether the simulation advances on each frame.
func (s *State) Running() bool {
	return s.GameState == GameStateRunning
}

// SpawnTimer returns the seconds since the last spawn.
func (s *State) SpawnTimer() float64 {
	return s.spawner.Timer()
}

// SetTarget sets where the player should move to, in screen coordinates.
// This is the only field input code may change.
func (s *State) SetTarget(x float64) {
	s.Player.TargetX = x
}

// Resize changes the screen. Sizes derived from it (player, new entities)
// pick it up on the next start.
func (s *State) Resize(screen object.Screen) {
	s.Screen = screen
}

// AddEntity puts an entity into play.
func (s *State) AddEntity(e object.Entity) {
	s.Entities = append(s.Entities, e)
}

// reset restores a fresh round on the current screen.
func (s *State) reset() {
	s.Elapsed = 0
	s.Score = 0
	s.Lives = s.Tuning.InitialLives
	s.Speed = s.Tuning.Speed.Base
	s.Entities = s.Entities[:0]
	s.spawner.Reset()
	s.Player = object.NewPlayer(s.Screen, s.Tuning.Player)
}

func (s *State) emit(c feedback.Cue) {
	s.cues = append(s.cues, c)
}

// flushCues returns the cues emitted since the last flush.
func (s *State) flushCues() []feedback.Cue {
	if len(s.cues) == 0 {
		return nil
	}
	out := make([]feedback.Cue, len(s.cues))
	copy(out, s.cues)
	s.cues = s.cues[:0]
	return out
}
