// Package gui runs the game in a window (or browser canvas) with Ebitengine.
package gui

import (
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/tomz197/giftdrop/internal/feedback"
	"github.com/tomz197/giftdrop/internal/loop"
	"github.com/tomz197/giftdrop/internal/loop/config"
	"github.com/tomz197/giftdrop/internal/object"
	"github.com/tomz197/giftdrop/internal/physics"
	"github.com/tomz197/giftdrop/internal/settings"
)

// Default window size.
const (
	WindowWidth  = 900
	WindowHeight = 600
)

// soundButtonSize is the side of the square sound toggle in the top-right corner.
const soundButtonSize = 36

// Options configures a Game.
type Options struct {
	Tuning   config.Tuning
	Assets   Assets
	AssetErr error // Non-nil shows the missing-assets notice
	Settings *settings.Manager
	Audio    *AudioManager // nil plays nothing
	Rand     *rand.Rand

	// DeviceScale reports device pixels per window unit. nil asks the
	// monitor ebiten runs on.
	DeviceScale func() float64
}

// Game implements ebiten.Game.
type Game struct {
	state    *loop.State
	toast    feedback.Toast
	sink     feedback.Sink
	audio    *AudioManager
	settings *settings.Manager
	assets   Assets

	assetNotice bool // Missing-assets notice still showing
	width       int  // Device pixels
	height      int  // Device pixels
	scale       func() float64
	stars       []star
}

// frameInput is everything Update reads from devices in one tick.
type frameInput struct {
	pointerDown bool // Mouse button held or a finger on the screen
	pointerX    int
	pointerY    int
	clicked     bool // Mouse button or touch went down this tick
	start       bool // Space or Enter
	toggleSound bool // M
}

// NewGame creates an idle game sized to the default window.
func NewGame(opts Options) *Game {
	g := &Game{
		audio:       opts.Audio,
		settings:    opts.Settings,
		assets:      opts.Assets,
		assetNotice: opts.AssetErr != nil,
		width:       WindowWidth,
		height:      WindowHeight,
		scale:       opts.DeviceScale,
	}
	if g.scale == nil {
		g.scale = deviceScale
	}
	if g.settings == nil {
		g.settings = settings.NewManager(nil)
	}
	g.state = loop.NewState(g.screen(), opts.Tuning, opts.Rand)
	g.stars = makeStars(g.width, g.height)

	sinks := feedback.Multi{&g.toast}
	if g.audio != nil {
		sinks = append(sinks, g.audio)
	}
	g.sink = sinks
	return g
}

func (g *Game) screen() object.Screen {
	return object.Screen{Width: float64(g.width), Height: float64(g.height)}
}

// Update reads input and advances the simulation by one tick.
func (g *Game) Update() error {
	g.handleInput(readInput())
	g.advance(time.Second / time.Duration(ebiten.TPS()))
	return nil
}

// readInput samples mouse, touch and keyboard.
func readInput() frameInput {
	var in frameInput
	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		in.pointerDown = true
		in.pointerX, in.pointerY = ebiten.TouchPosition(ids[0])
		in.clicked = len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
	} else {
		in.pointerX, in.pointerY = ebiten.CursorPosition()
		in.pointerDown = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
		in.clicked = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	}
	in.start = inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	in.toggleSound = inpututil.IsKeyJustPressed(ebiten.KeyM)
	return in
}

// handleInput applies one tick of input.
func (g *Game) handleInput(in frameInput) {
	onButton := g.soundButton().Overlaps(physics.Rect{X: float64(in.pointerX), Y: float64(in.pointerY), W: 1, H: 1})
	if in.toggleSound || (in.clicked && onButton) {
		g.toggleSound()
	}
	if onButton {
		return
	}

	if in.pointerDown {
		g.state.SetTarget(float64(in.pointerX))
	}
	if (in.start || in.clicked) && !g.state.Running() {
		g.start()
	}
}

// start begins a round sized to the current window.
func (g *Game) start() {
	g.state.Resize(g.screen())
	g.assetNotice = false
	feedback.Dispatch(g.sink, loop.Start(g.state))
}

// advance runs the simulation and counts the toast down.
func (g *Game) advance(dt time.Duration) {
	feedback.Dispatch(g.sink, loop.Advance(g.state, dt))
	g.toast.Update(dt)
}

func (g *Game) toggleSound() {
	on, err := g.settings.ToggleSound()
	if err != nil {
		log.Warn("could not save settings", "err", err)
	}
	if on {
		g.toast.Show("Sound on 🔊")
		if g.audio != nil {
			g.audio.Beep()
		}
	} else {
		g.toast.Show("Sound off 🔇")
	}
}

// soundButton is the hit area of the sound toggle.
func (g *Game) soundButton() physics.Rect {
	return physics.Rect{
		X: float64(g.width) - soundButtonSize - 12,
		Y: 12,
		W: soundButtonSize,
		H: soundButtonSize,
	}
}

// Layout follows the window size in device pixels. A running round keeps
// its screen; the new size applies from the next start. An empty window
// keeps the last size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := g.scale()
	width := int(math.Round(float64(outsideWidth) * scale))
	height := int(math.Round(float64(outsideHeight) * scale))
	if width <= 0 || height <= 0 {
		return g.width, g.height
	}
	if width != g.width || height != g.height {
		g.width, g.height = width, height
		g.stars = makeStars(g.width, g.height)
		if !g.state.Running() {
			g.state.Resize(g.screen())
		}
	}
	return width, height
}

// deviceScale returns the device scale factor of the current monitor.
func deviceScale() float64 {
	if m := ebiten.Monitor(); m != nil {
		if f := m.DeviceScaleFactor(); f > 0 {
			return f
		}
	}
	return 1
}
