// Package term hosts the weather engine in a terminal.
package term

import (
	"context"
	"fmt"

	"ambient-weather/internal/clock"
	"ambient-weather/internal/core"
	"ambient-weather/internal/render"
	"ambient-weather/internal/surface"
	"ambient-weather/internal/weather"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

// Options configures a terminal session.
type Options struct {
	Weather      string
	FPS          int
	CellW, CellH int
	Source       core.Source
	Categories   <-chan string
	Logger       *zap.Logger
}

// Session wires a tcell screen, a terminal canvas and a frame loop around
// one engine.
type Session struct {
	screen tcell.Screen
	canvas *render.Terminal
	loop   *clock.Loop
	engine *weather.Engine
	cats   <-chan string
	log    *zap.Logger
}

// NewSession builds a session on an initialized screen.
func NewSession(screen tcell.Screen, opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	canvas := render.NewTerminal(screen, opts.CellW, opts.CellH)
	loop := clock.NewLoop(opts.FPS, logger)
	loop.SetAfterFrame(canvas.Present)

	engine := weather.New(surface.NewManager(canvas, canvas, logger), loop, opts.Source, logger)
	engine.SetWeatherCategory(opts.Weather)

	return &Session{
		screen: screen,
		canvas: canvas,
		loop:   loop,
		engine: engine,
		cats:   opts.Categories,
		log:    logger,
	}
}

// Run starts the engine and blocks until ctx is done or the user quits. A
// user quit returns nil.
func (s *Session) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	quit := false
	go s.pumpEvents(ctx, func() {
		quit = true
		cancel()
	})
	if s.cats != nil {
		go s.pumpCategories(ctx)
	}

	s.engine.Start()
	err := s.loop.Run(ctx)
	s.engine.Stop()
	if quit {
		return nil
	}
	if err != nil {
		return fmt.Errorf("terminal session: %w", err)
	}
	return nil
}

func (s *Session) pumpEvents(ctx context.Context, quit func()) {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		s.loop.Post(func() { s.handle(ev, quit) })
		if ctx.Err() != nil {
			return
		}
	}
}

func (s *Session) pumpCategories(ctx context.Context) {
	for {
		select {
		case c, ok := <-s.cats:
			if !ok {
				return
			}
			s.loop.Post(func() { s.engine.SetWeatherCategory(c) })
		case <-ctx.Done():
			return
		}
	}
}

// handle runs on the loop goroutine.
func (s *Session) handle(ev tcell.Event, quit func()) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		s.screen.Sync()
		s.engine.NotifyResize()
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			quit()
			return
		}
		if ev.Key() != tcell.KeyRune {
			return
		}
		switch ev.Rune() {
		case 'q':
			quit()
		case 's':
			s.engine.SetWeatherCategory("snow")
		case 'r':
			s.engine.SetWeatherCategory("rain")
		case 'c':
			s.engine.SetWeatherCategory("clear")
		}
	}
}
