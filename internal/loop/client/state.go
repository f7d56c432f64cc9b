package client

import (
	"time"

	"github.com/tomz197/giftdrop/internal/feedback"
	"github.com/tomz197/giftdrop/internal/input"
	"github.com/tomz197/giftdrop/internal/loop"
)

// ClientState holds per-session front-end state: what the player pressed,
// the toast line and terminal bookkeeping. Game rules live in loop.State.
type ClientState struct {
	Input   input.Input
	Toast   feedback.Toast
	BellOn  bool // Ring the terminal bell on cues
	Running bool // Client loop running
	Best    int  // Best score this session

	delta         time.Duration  // Frame delta time
	isInactive    bool           // Whether the inactivity warning is shown
	wasInactive   bool           // Inactivity state at the last full clear
	prevGameState loop.GameState // Game state at the last full clear
}

// NewClientState creates a new initialized client state.
func NewClientState(bell bool) *ClientState {
	return &ClientState{
		BellOn:  bell,
		Running: true,
	}
}
