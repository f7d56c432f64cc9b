package loop

import (
	"slices"

	"github.com/tomz197/giftdrop/internal/feedback"
	"github.com/tomz197/giftdrop/internal/object"
)

// resolveCollisions checks every entity against the player, newest first so
// removals never skip an element. Gifts score, bombs cost a life, and
// entities that fell off the bottom are dropped. When the last life is lost
// the round ends at once and the remaining entities are left untouched.
func resolveCollisions(state *State) {
	player := state.Player.Bounds()

	for i := len(state.Entities) - 1; i >= 0; i-- {
		e := &state.Entities[i]

		if player.Overlaps(e.Bounds()) {
			kind := e.Kind
			removeEntity(state, i)
			if kind == object.KindGift {
				collectGift(state)
				continue
			}
			if hitBomb(state) {
				return
			}
			continue
		}

		if e.Gone(state.Screen) {
			removeEntity(state, i)
		}
	}
}

func removeEntity(state *State, i int) {
	state.Entities = slices.Delete(state.Entities, i, i+1)
}

func collectGift(state *State) {
	state.Score++
	state.emit(feedback.CueGiftCollected)
}

// hitBomb takes a life and reports whether it was the last one.
func hitBomb(state *State) bool {
	if state.Lives > 0 {
		state.Lives--
	}
	state.emit(feedback.CueBombHit)
	if state.Lives == 0 {
		endGame(state)
		return true
	}
	return false
}
