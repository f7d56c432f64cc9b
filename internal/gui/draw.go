package gui

import (
	"fmt"
	"image/color"
	"math/rand"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/tomz197/giftdrop/internal/loop"
	"github.com/tomz197/giftdrop/internal/object"
)

var (
	colorSky       = color.RGBA{R: 11, G: 16, B: 38, A: 255}
	colorStar      = color.RGBA{R: 200, G: 210, B: 255, A: 160}
	colorGround    = color.RGBA{R: 28, G: 36, B: 70, A: 255}
	colorGift      = color.RGBA{R: 250, G: 204, B: 21, A: 255}
	colorGiftGlow  = color.RGBA{R: 250, G: 204, B: 21, A: 40}
	colorBomb      = color.RGBA{R: 239, G: 68, B: 68, A: 255}
	colorPlayer    = color.RGBA{R: 56, G: 189, B: 248, A: 255}
	colorShadow    = color.RGBA{A: 90}
	colorOverlay   = color.RGBA{A: 150}
	colorButton    = color.RGBA{R: 255, G: 255, B: 255, A: 40}
	colorButtonOff = color.RGBA{R: 255, G: 255, B: 255, A: 15}
)

// starCount is the number of background stars.
const starCount = 80

// star is one background dot.
type star struct {
	x, y, r float32
}

// makeStars lays out a fixed starfield for the given size. The same size
// always yields the same field.
func makeStars(width, height int) []star {
	rng := rand.New(rand.NewSource(int64(width)*7919 + int64(height)))
	stars := make([]star, starCount)
	for i := range stars {
		stars[i] = star{
			x: rng.Float32() * float32(width),
			y: rng.Float32() * float32(height) * 0.8,
			r: 0.5 + rng.Float32()*1.2,
		}
	}
	return stars
}

// Draw paints the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorSky)
	for _, s := range g.stars {
		vector.DrawFilledCircle(screen, s.x, s.y, s.r, colorStar, true)
	}

	g.drawGround(screen)
	for i := range g.state.Entities {
		g.drawEntity(screen, &g.state.Entities[i])
	}
	g.drawPlayer(screen, &g.state.Player)

	g.drawHUD(screen)
	if g.toast.Visible() {
		printCentered(screen, g.toast.Text(), g.width/2, 64)
	}
	g.drawOverlay(screen)
}

func (g *Game) drawGround(screen *ebiten.Image) {
	p := g.state.Player
	top := float32(p.Y + p.H*0.5)
	vector.DrawFilledRect(screen, 0, top, float32(g.width), float32(g.height)-top, colorGround, false)
}

func (g *Game) drawEntity(screen *ebiten.Image, e *object.Entity) {
	switch e.Kind {
	case object.KindGift:
		vector.DrawFilledCircle(screen, float32(e.X), float32(e.Y), float32(e.Size*0.75), colorGiftGlow, true)
		if g.assets.Gift.Loaded {
			drawSprite(screen, g.assets.Gift, e.X, e.Y, e.Size, e.Size)
			return
		}
		drawBox(screen, e.Bounds().X, e.Bounds().Y, e.Size, e.Size, colorGift)
	case object.KindBomb:
		if g.assets.Bomb.Loaded {
			drawSprite(screen, g.assets.Bomb, e.X, e.Y, e.Size, e.Size)
			return
		}
		drawBox(screen, e.Bounds().X, e.Bounds().Y, e.Size, e.Size, colorBomb)
	}
}

func (g *Game) drawPlayer(screen *ebiten.Image, p *object.Player) {
	b := p.Bounds()
	vector.DrawFilledCircle(screen, float32(p.X), float32(b.Y+b.H), float32(b.W*0.55), colorShadow, true)
	if g.assets.Character.Loaded {
		drawSprite(screen, g.assets.Character, p.X, p.Y, p.W, p.H)
		return
	}
	drawBox(screen, b.X, b.Y, b.W, b.H, colorPlayer)
}

func drawBox(screen *ebiten.Image, x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", g.state.Score), 16, 16)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Lives: %d", g.state.Lives), 16, 32)

	btn := g.soundButton()
	fill, label := colorButtonOff, "OFF"
	if g.settings.SoundEnabled() {
		fill, label = colorButton, "ON"
	}
	drawBox(screen, btn.X, btn.Y, btn.W, btn.H, fill)
	ebitenutil.DebugPrintAt(screen, label, int(btn.X)+8, int(btn.Y)+10)
}

// drawOverlay dims the play field and shows the title, game over or
// missing-assets notice.
func (g *Game) drawOverlay(screen *ebiten.Image) {
	var lines []string
	switch g.state.GameState {
	case loop.GameStateIdle:
		lines = []string{
			"GIFT DROP",
			"",
			"Catch the gifts, dodge the bombs.",
			"Drag or hold the mouse to move. M toggles sound.",
			"",
			"Click or press SPACE to start",
		}
	case loop.GameStateOver:
		lines = []string{
			"GAME OVER",
			"",
			fmt.Sprintf("Score: %d", g.state.Score),
			"",
			"Click or press SPACE to play again",
		}
	default:
		return
	}
	if g.assetNotice {
		lines = append(lines, "", "Some sprites are missing; drawing plain shapes instead.")
	}

	drawBox(screen, 0, 0, float64(g.width), float64(g.height), colorOverlay)
	y := g.height/2 - len(lines)*8
	for _, line := range lines {
		printCentered(screen, line, g.width/2, y)
		y += 16
	}
}

// debugGlyphWidth is the advance of one character in ebitenutil's debug font.
const debugGlyphWidth = 6

// printCentered prints s centered on column x with the debug font.
func printCentered(screen *ebiten.Image, s string, x, y int) {
	s = printable(s)
	ebitenutil.DebugPrintAt(screen, s, x-len(s)*debugGlyphWidth/2, y)
}

// printable drops what the debug font cannot draw, which is everything
// outside printable ASCII (emoji in toasts, mostly).
func printable(s string) string {
	s = strings.Map(func(r rune) rune {
		if r < 0x20 || r > 0x7e {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}
