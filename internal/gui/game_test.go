package gui

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tomz197/giftdrop/internal/loop"
	"github.com/tomz197/giftdrop/internal/loop/config"
)

func newTestGame() *Game {
	return NewGame(Options{
		Tuning:      config.Default(),
		Rand:        rand.New(rand.NewSource(1)),
		DeviceScale: func() float64 { return 1 },
	})
}

func TestClickStartsAndPointerSteers(t *testing.T) {
	g := newTestGame()

	g.handleInput(frameInput{clicked: true, pointerDown: true, pointerX: 450, pointerY: 300})
	if !g.state.Running() {
		t.Fatal("click should start the round")
	}
	if g.toast.Text() == "" {
		t.Fatal("start should show a toast")
	}

	g.handleInput(frameInput{pointerDown: true, pointerX: 700, pointerY: 300})
	if g.state.Player.TargetX != 700 {
		t.Fatalf("TargetX = %v, want 700", g.state.Player.TargetX)
	}

	g.handleInput(frameInput{pointerX: 100, pointerY: 300})
	if g.state.Player.TargetX != 700 {
		t.Fatal("hovering without pressing must not move the target")
	}
}

func TestSoundButtonTogglesWithoutStarting(t *testing.T) {
	g := newTestGame()
	btn := g.soundButton()

	g.handleInput(frameInput{clicked: true, pointerDown: true, pointerX: int(btn.X) + 2, pointerY: int(btn.Y) + 2})
	if g.settings.SoundEnabled() {
		t.Fatal("button click should turn sound off")
	}
	if g.state.Running() {
		t.Fatal("button click must not start the round")
	}

	g.handleInput(frameInput{toggleSound: true})
	if !g.settings.SoundEnabled() {
		t.Fatal("M should turn sound back on")
	}
}

func TestLayoutResizesIdleGameOnly(t *testing.T) {
	g := newTestGame()
	g.Layout(1200, 800)
	if g.state.Screen.Width != 1200 || g.state.Screen.Height != 800 {
		t.Fatalf("idle screen = %+v", g.state.Screen)
	}

	g.start()
	if g.state.Player.X != 600 {
		t.Fatalf("player X = %v, want centered at 600", g.state.Player.X)
	}

	g.Layout(640, 480)
	if g.state.Screen.Width != 1200 {
		t.Fatal("running round should keep its screen until restart")
	}
}

func TestAdvanceExpiresToast(t *testing.T) {
	g := newTestGame()
	g.start()
	for range 60 {
		g.advance(time.Second / 60)
	}
	if g.toast.Visible() {
		t.Fatal("toast should be gone after a second")
	}
	if g.state.Elapsed <= 0 {
		t.Fatal("simulation did not advance")
	}
}

func TestStarsAreStable(t *testing.T) {
	a := makeStars(900, 600)
	b := makeStars(900, 600)
	if len(a) != starCount {
		t.Fatalf("got %d stars", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatal("starfield differs for the same size")
		}
		if a[i].x < 0 || a[i].x > 900 || a[i].y < 0 || a[i].y > 600 {
			t.Fatalf("star %d off screen: %+v", i, a[i])
		}
	}
}

func TestLoadAssetsReportsMissing(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, GiftFile), []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}

	a, err := LoadAssets(dir)
	if err == nil {
		t.Fatal("expected an error for missing and broken sprites")
	}
	if a.Character.Loaded || a.Gift.Loaded || a.Bomb.Loaded || a.AllLoaded() {
		t.Fatalf("no sprite should be loaded: %+v", a)
	}
}

func TestGameOverAllowsRestart(t *testing.T) {
	g := newTestGame()
	g.start()
	g.state.GameState = loop.GameStateOver

	g.handleInput(frameInput{start: true})
	if !g.state.Running() {
		t.Fatal("space should restart after game over")
	}
	if g.state.Lives != config.Default().InitialLives {
		t.Fatalf("lives = %d", g.state.Lives)
	}
}

func TestLayoutUsesDevicePixels(t *testing.T) {
	g := NewGame(Options{
		Tuning:      config.Default(),
		Rand:        rand.New(rand.NewSource(1)),
		DeviceScale: func() float64 { return 2 },
	})
	w, h := g.Layout(450, 300)
	if w != 900 || h != 600 {
		t.Fatalf("Layout = %dx%d, want 900x600", w, h)
	}
	if g.state.Screen.Width != 900 || g.state.Screen.Height != 600 {
		t.Fatalf("screen = %+v, want device pixel size", g.state.Screen)
	}
}

func TestLayoutIgnoresEmptyWindow(t *testing.T) {
	g := newTestGame()
	if w, h := g.Layout(0, 0); w != WindowWidth || h != WindowHeight {
		t.Fatalf("Layout(0, 0) = %dx%d, want the previous size", w, h)
	}
	g.start()
	if g.state.Screen.Base() <= 0 {
		t.Fatalf("round started on an empty screen: %+v", g.state.Screen)
	}
}

func TestPrintableDropsEmoji(t *testing.T) {
	tests := map[string]string{
		"+1 🎁":       "+1",
		"💣 -1":       "-1",
		"Sound on 🔊": "Sound on",
		"GAME OVER":  "GAME OVER",
	}
	for in, want := range tests {
		if got := printable(in); got != want {
			t.Errorf("printable(%q) = %q, want %q", in, got, want)
		}
	}
}
