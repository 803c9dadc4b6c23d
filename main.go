package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	httpapi "pixelpet/internal/api/http"
	"pixelpet/internal/config"
	"pixelpet/internal/game"
	"pixelpet/internal/scheduler"
	"pixelpet/internal/ui"
	"pixelpet/internal/weather"
)

const usage = `usage: pixelpet [-config path] [play|serve|stats]

  play   run the terminal game (default)
  serve  run the HTTP API
  stats  show the pet's stats and exit
`

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to the YAML config file")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	mode := flag.Arg(0)
	if mode == "" {
		mode = "play"
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	switch mode {
	case "play":
		err = runPlay(cfg)
	case "serve":
		err = runServe(cfg)
	case "stats":
		err = runStats(cfg)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

// newGame builds the game context from config. Without an API key the game
// runs on the neutral weather effect.
func newGame(cfg *config.Config) *game.Game {
	opts := game.Options{Locator: cfg.Weather.Locator()}

	if cfg.Weather.APIKey != "" {
		httpClient := &http.Client{Timeout: 10 * time.Second}
		opts.Fetcher = weather.NewClient(httpClient, cfg.Weather.APIKey,
			weather.WithBaseURL(cfg.Weather.BaseURL),
			weather.WithBackoff(cfg.Weather.Backoff()),
		)
	} else {
		log.Printf("weather: OPENWEATHER_API_KEY not set; using neutral weather")
	}

	return game.New(opts)
}

func runPlay(cfg *config.Config) error {
	// The alt screen owns stdout, so logs go to a file.
	f, err := tea.LogToFile("pixelpet.log", "pixelpet")
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer f.Close()

	g := newGame(cfg)
	p := g.Registry().Create(cfg.Pet.Name, cfg.Pet.Kind)

	program := tea.NewProgram(ui.NewModel(g, p.ID), tea.WithAltScreen())

	sched := scheduler.New(g, cfg.Game.TickInterval, cfg.Weather.Interval,
		scheduler.WithOnTick(func() { program.Send(ui.RefreshMsg{}) }),
	)
	if err := sched.Start(); err != nil {
		return fmt.Errorf("starting scheduler: %w", err)
	}
	defer sched.Stop()

	_, err = program.Run()
	return err
}

func runServe(cfg *config.Config) error {
	g := newGame(cfg)
	p := g.Registry().Create(cfg.Pet.Name, cfg.Pet.Kind)
	log.Printf("serving %s (id %s)", p.Name, p.ID)

	sched := scheduler.New(g, cfg.Game.TickInterval, cfg.Weather.Interval)
	if err := sched.Start(); err != nil {
		return fmt.Errorf("starting scheduler: %w", err)
	}
	defer sched.Stop()

	app := httpapi.NewApp(g)

	go func() {
		if err := app.Listen(":" + cfg.Server.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
	return nil
}

func runStats(cfg *config.Config) error {
	g := newGame(cfg)
	p := g.Registry().Create(cfg.Pet.Name, cfg.Pet.Kind)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	_ = g.RefreshWeather(ctx) // logged and alerted inside; stats still show

	var w *weather.Data
	if data, ok := g.Weather(); ok {
		w = &data
	}
	return ui.DisplayStats(p, w)
}
