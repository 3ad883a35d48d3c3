package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"snake/internal/app"
	"snake/internal/domain"
	"snake/internal/ui/graphics"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	cfg := domain.DefaultGameConfig()
	flag.IntVar(&cfg.Width, "width", cfg.Width, "window width in pixels")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "window height in pixels")
	flag.IntVar(&cfg.CellSize, "cell", cfg.CellSize, "cell size in pixels")
	flag.DurationVar(&cfg.GameOverDelay, "dwell", cfg.GameOverDelay, "how long the game over screen stays up")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "food placement seed, 0 picks one from the clock")
	flag.IntVar(&cfg.FrameRate, "fps", cfg.FrameRate, "frame loop rate")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	log.Printf("Window %dx%d, cell %d, dwell %s, %d fps",
		cfg.Width, cfg.Height, cfg.CellSize, cfg.GameOverDelay, cfg.FrameRate)

	fonts, err := graphics.LoadFonts()
	if err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	application, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}

	engine := graphics.NewEngine(application, cfg, fonts)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stopped := make(chan struct{})
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		select {
		case <-ctx.Done():
			log.Println("Shutting down...")
			application.RequestQuit()
		case <-stopped:
		}
		return nil
	})

	runErr := engine.Run()
	close(stopped)
	if err := g.Wait(); err != nil {
		log.Printf("Signal watcher: %v", err)
	}

	if runErr != nil {
		log.Fatalf("UI error: %v", runErr)
	}
}
