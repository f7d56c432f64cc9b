package main

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/tomz197/giftdrop/internal/config"
	"github.com/tomz197/giftdrop/internal/gui"
	loopconfig "github.com/tomz197/giftdrop/internal/loop/config"
	"github.com/tomz197/giftdrop/internal/settings"
)

const appName = "giftdrop"

func main() {
	logger := config.NewLogger(os.Stderr, "gui")

	tuning, err := loopconfig.LoadTuningFromEnv()
	if err != nil {
		logger.Fatal("failed to load tuning", "err", err)
	}

	sm, err := settings.Open(appName)
	if err != nil {
		logger.Warn("settings will not be saved", "err", err)
	}

	assetDir := config.GetEnv("GIFTDROP_ASSETS", "assets")
	assets, assetErr := gui.LoadAssets(assetDir)
	if assetErr != nil {
		logger.Warn("missing sprites, using plain shapes", "dir", assetDir, "err", assetErr)
	}

	game := gui.NewGame(gui.Options{
		Tuning:   tuning,
		Assets:   assets,
		AssetErr: assetErr,
		Settings: sm,
		Audio:    gui.NewAudioManager(audio.NewContext(gui.AudioSampleRate), sm),
	})

	ebiten.SetWindowSize(gui.WindowWidth, gui.WindowHeight)
	ebiten.SetWindowTitle("Gift Drop")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("game error", "err", err)
	}
}
