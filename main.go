package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"minesweeper/pkg/game/config"
	"minesweeper/pkg/game/gameplay"
	"minesweeper/pkg/game/generator"
	"minesweeper/pkg/game/locale"
	"minesweeper/pkg/game/renderer"
	ebitenrenderer "minesweeper/pkg/game/renderer/ebiten"
	"minesweeper/pkg/game/renderer/tui"
	"minesweeper/pkg/game/server"
	"minesweeper/pkg/game/state"
)

func main() {
	cfg, err := config.Parse(os.Args, os.LookupEnv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	closeLog := setupLogging(cfg)
	defer closeLog()

	if err := locale.Init(cfg.Locale); err != nil {
		logrus.WithError(err).Warn("locale fallback")
	}

	logrus.WithFields(logrus.Fields{
		"frontend": cfg.Frontend,
		"width":    cfg.Width,
		"height":   cfg.Height,
		"mines":    cfg.Mines,
		"seed":     cfg.Seed,
		"config":   cfg.File,
	}).Info("starting")

	switch cfg.Frontend {
	case config.FrontendServe:
		err = serve(cfg)
	case config.FrontendGUI:
		err = runGUI(cfg)
	default:
		err = runTUI(cfg)
	}
	if err != nil {
		logrus.WithError(err).Fatal("minesweeper stopped")
	}
}

// setupLogging points the standard logger at the configured level and file.
// Without a file the terminal frontend discards logs so they never draw over the board.
func setupLogging(cfg config.Config) func() {
	logrus.SetLevel(cfg.Level())
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			logrus.WithError(err).Fatal("cannot open log file")
		}
		logrus.SetOutput(f)
		return func() { f.Close() }
	}

	if cfg.Frontend == config.FrontendTUI {
		logrus.SetOutput(io.Discard)
	}
	return func() {}
}

// newPlacer seeds the uniform placer; one source is shared by every game of the session
func newPlacer(cfg config.Config) generator.Placer {
	return generator.NewUniform(generator.NewSource(cfg.Seed))
}

func newGame(cfg config.Config) (*state.Game, error) {
	return gameplay.BuildGame(cfg.Width, cfg.Height, cfg.Mines, newPlacer(cfg))
}

// gameLoop renders, reads one intent and applies it until the player quits
func gameLoop(g *state.Game) {
	for !g.Quit {
		renderer.Clear()
		renderer.RenderFrame(g)
		gameplay.ProcessIntent(g, renderer.GetInput())
	}
}

func runTUI(cfg config.Config) error {
	r := tui.New()
	renderer.SetRenderer(r)
	renderer.Init()

	g, err := newGame(cfg)
	if err != nil {
		return err
	}
	gameLoop(g)

	renderer.Clear()
	renderer.RenderFrame(g)
	renderer.ShowMessage("\n" + locale.Get("GOODBYE"))
	return nil
}

func runGUI(cfg config.Config) error {
	r := ebitenrenderer.New()
	renderer.SetRenderer(r)
	renderer.Init()

	g, err := newGame(cfg)
	if err != nil {
		return err
	}
	logMessage(g, "%s", locale.Get("GUI_HELP"))
	renderer.RenderFrame(g)

	return r.Run(func() { gameLoop(g) })
}

func serve(cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := server.New(server.Options{
		Width:  cfg.Width,
		Height: cfg.Height,
		Mines:  cfg.Mines,
		Seed:   cfg.Seed,
	})
	return s.Run(ctx, cfg.Addr)
}

// logMessage adds a formatted message to the game's message log
func logMessage(g *state.Game, msg string, a ...any) {
	g.AddMessage(renderer.FormatText(msg, a...))
}
