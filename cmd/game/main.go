package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Skeleton-Glade/internal/assets"
	"github.com/Garsondee/Skeleton-Glade/internal/audio"
	"github.com/Garsondee/Skeleton-Glade/internal/display"
	"github.com/Garsondee/Skeleton-Glade/internal/game"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	catalog := assets.NewCatalog()
	sound := audio.NewEngine(catalog, audio.WithLogger(logger))
	defer sound.Close()

	app, err := display.NewApp(logger,
		game.WithModelSource(catalog),
		game.WithAudio(sound),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer app.Close()

	ebiten.SetWindowTitle("Skeleton Glade")
	ebiten.SetWindowSize(1280, 800)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
