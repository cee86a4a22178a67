//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"

	"ambient-weather/internal/app"
	"ambient-weather/internal/log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := log.Init(cfg.Debug, cfg.LogFile); err != nil {
		panic(err)
	}
	defer log.Sync()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	categories, err := cfg.Categories(ctx, log.GetZapLogger())
	if err != nil {
		log.Fatalf("category feed: %v", err)
	}

	game := app.New(cfg, categories, log.GetZapLogger())

	ebiten.SetWindowTitle("weatherfx — " + cfg.Weather)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(ebiten.SyncWithFPS)
	ebiten.SetScreenClearedEveryFrame(true)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatalf("run: %v", err)
	}
}
