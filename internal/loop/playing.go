package loop

import (
	"time"

	"github.com/tomz197/giftdrop/internal/feedback"
	"github.com/tomz197/giftdrop/internal/loop/config"
)

// Advance runs one frame of simulation and returns the cues it produced.
// Within a frame the order is always spawn, move, resolve collisions.
// Nothing happens unless the game is running.
func Advance(state *State, delta time.Duration) []feedback.Cue {
	if !state.Running() {
		return nil
	}

	dt := clampDelta(delta, state.Tuning.MaxFrameDelta)
	state.Elapsed += dt
	state.Speed = state.Tuning.Speed.SpeedAt(state.Elapsed)

	spawnEntities(state, dt)
	moveObjects(state, dt*config.ReferenceFPS)
	resolveCollisions(state)

	return state.flushCues()
}

// clampDelta converts delta to seconds, capped so a stalled frame (e.g. a
// backgrounded window) cannot teleport everything.
func clampDelta(delta time.Duration, limit float64) float64 {
	dt := delta.Seconds()
	if dt < 0 {
		return 0
	}
	return min(dt, limit)
}

// spawnEntities lets the spawner add at most one new entity.
func spawnEntities(state *State, dt float64) {
	if e, ok := state.spawner.Update(dt, state.Elapsed, state.Speed, state.Screen); ok {
		state.AddEntity(e)
	}
}

// moveObjects drops every entity and eases the player toward its target.
// frames is the elapsed time in reference frames.
func moveObjects(state *State, frames float64) {
	for i := range state.Entities {
		state.Entities[i].Fall(frames)
	}
	state.Player.Follow(state.Screen, state.Tuning.Player.Easing, frames)
}
