// Package object defines the things that live inside a game: falling
// entities, the player and the screen they share.
package object

import "github.com/tomz197/giftdrop/internal/physics"

// Screen represents the dimensions of the simulation's coordinate space.
type Screen struct {
	Width  float64
	Height float64
}

// CenterX returns the horizontal center of the screen.
func (s Screen) CenterX() float64 {
	return s.Width / 2
}

// Base returns the shorter screen side, used to size sprites so they keep
// their proportions in both portrait and landscape layouts.
func (s Screen) Base() float64 {
	if s.Width < s.Height {
		return s.Width
	}
	return s.Height
}

// Kind identifies what happens when an entity reaches the player.
type Kind int

const (
	KindGift Kind = iota // Adds to the score
	KindBomb             // Costs a life
)

func (k Kind) String() string {
	switch k {
	case KindGift:
		return "gift"
	case KindBomb:
		return "bomb"
	default:
		return "unknown"
	}
}

// Entity is a falling gift or bomb.
type Entity struct {
	X, Y float64 // Position (center)
	Size float64 // Side length of the square hitbox
	VY   float64 // Fall speed in pixels per reference frame (1/60 s)
	Kind Kind
}

// Bounds returns the entity's hitbox.
func (e *Entity) Bounds() physics.Rect {
	return physics.CenteredRect(e.X, e.Y, e.Size, e.Size)
}

// Fall moves the entity down by its velocity over the given number of
// reference frames.
func (e *Entity) Fall(frames float64) {
	e.Y += e.VY * frames
}

// Gone reports whether the entity's top edge has passed below the screen
// by more than its own size.
func (e *Entity) Gone(screen Screen) bool {
	return e.Y-e.Size/2 > screen.Height+e.Size
}
