package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"ambient-weather/internal/app"
	"ambient-weather/internal/log"
	"ambient-weather/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	// The screen owns the tty, so logs go to a file or nowhere.
	logPath := cfg.LogFile
	if logPath == "" {
		logPath = os.DevNull
	}
	if err := log.Init(cfg.Debug, logPath); err != nil {
		panic(err)
	}
	defer log.Sync()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	categories, err := cfg.Categories(ctx, log.GetZapLogger())
	if err != nil {
		log.Fatalf("category feed: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init screen: %v", err)
	}

	session := term.NewSession(screen, term.Options{
		Weather:    cfg.Weather,
		FPS:        cfg.FPS,
		CellW:      cfg.CellW,
		CellH:      cfg.CellH,
		Source:     cfg.Source(),
		Categories: categories,
		Logger:     log.GetZapLogger(),
	})
	runErr := session.Run(ctx)
	screen.Fini()

	if runErr != nil && ctx.Err() == nil {
		log.Errorw("terminal session failed", "error", runErr)
		os.Exit(1)
	}
}
