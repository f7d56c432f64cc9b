package loop

import "github.com/tomz197/giftdrop/internal/feedback"

// Start begins a round from the title screen or restarts after game over.
// It resets score, lives, speed, entities and the player. Starting a round
// that is already running does nothing and returns no cues.
func Start(state *State) []feedback.Cue {
	switch state.GameState {
	case GameStateIdle, GameStateOver:
	default:
		return nil
	}

	state.reset()
	state.GameState = GameStateRunning
	state.emit(feedback.CueGameStarted)
	return state.flushCues()
}

// endGame stops the simulation. Rendering goes on; Advance becomes a no-op.
func endGame(state *State) {
	state.GameState = GameStateOver
	state.emit(feedback.CueGameOver)
}
