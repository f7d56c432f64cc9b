package gui

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Sprite file names inside the assets directory.
const (
	CharacterFile = "character.png"
	GiftFile      = "gift.png"
	BombFile      = "bomb.png"
)

// Sprite is an image that may have failed to load. Drawing code checks
// Loaded and falls back to plain shapes.
type Sprite struct {
	Image  *ebiten.Image
	Loaded bool
}

// Assets are the sprites the game draws with.
type Assets struct {
	Character Sprite
	Gift      Sprite
	Bomb      Sprite
}

// AllLoaded reports whether every sprite is available.
func (a Assets) AllLoaded() bool {
	return a.Character.Loaded && a.Gift.Loaded && a.Bomb.Loaded
}

// LoadAssets loads every sprite from dir. Sprites that fail keep
// Loaded=false; the returned error lists all failures.
func LoadAssets(dir string) (Assets, error) {
	var a Assets
	var errs []error
	for _, s := range []struct {
		sprite *Sprite
		file   string
	}{
		{&a.Character, CharacterFile},
		{&a.Gift, GiftFile},
		{&a.Bomb, BombFile},
	} {
		if err := loadSprite(s.sprite, filepath.Join(dir, s.file)); err != nil {
			errs = append(errs, err)
		}
	}
	return a, errors.Join(errs...)
}

func loadSprite(s *Sprite, path string) error {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return fmt.Errorf("failed to load sprite %s: %w", path, err)
	}
	s.Image = img
	s.Loaded = true
	return nil
}

// drawSprite draws s scaled to fit a w×h box centered on (cx, cy).
func drawSprite(dst *ebiten.Image, s Sprite, cx, cy, w, h float64) {
	b := s.Image.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(cx-w/2, cy-h/2)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(s.Image, op)
}
