package object

import (
	"math"

	"github.com/tomz197/giftdrop/internal/loop/config"
	"github.com/tomz197/giftdrop/internal/physics"
)

// Player is the character that catches gifts.
type Player struct {
	X, Y    float64 // Position (center)
	W, H    float64 // Hitbox size, fixed until the next reset
	TargetX float64 // Where input wants the player to be
}

// NewPlayer creates a player sized for the screen and centered horizontally.
func NewPlayer(screen Screen, shape config.PlayerConfig) Player {
	h := math.Floor(screen.Base() * shape.HeightRatio)
	w := math.Floor(h * shape.WidthRatio)
	x := math.Floor(screen.Width * 0.5)
	return Player{
		X:       x,
		Y:       math.Floor(screen.Height - h*shape.BaselineRatio),
		W:       w,
		H:       h,
		TargetX: x,
	}
}

// Bounds returns the player's hitbox.
func (p *Player) Bounds() physics.Rect {
	return physics.CenteredRect(p.X, p.Y, p.W, p.H)
}

// Follow clamps the target to the screen and eases the player toward it.
// factor is the fraction of the remaining distance covered per reference
// frame; frames is the elapsed time in reference frames.
func (p *Player) Follow(screen Screen, factor, frames float64) {
	p.TargetX = physics.Clamp(p.TargetX, p.W*0.5, screen.Width-p.W*0.5)
	p.X = physics.Ease(p.X, p.TargetX, factor, frames)
}
