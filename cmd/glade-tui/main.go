package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/Garsondee/Skeleton-Glade/internal/assets"
	"github.com/Garsondee/Skeleton-Glade/internal/audio"
	"github.com/Garsondee/Skeleton-Glade/internal/game"
	"github.com/Garsondee/Skeleton-Glade/internal/terminal"
	"github.com/Garsondee/Skeleton-Glade/internal/tuning"
)

var (
	tuningPath string
	logPath    string
	seed       int64
	mute       bool
)

var rootCmd = &cobra.Command{
	Use:   "glade-tui",
	Short: "Play Skeleton Glade in the terminal",
	Long: `glade-tui runs the glade in a terminal. WASD or the arrows move, j swings,
k defends, q and e turn the camera, space jumps and i opens the inventory.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

func init() {
	rootCmd.Flags().StringVar(&tuningPath, "tuning", "", "YAML file overlaid on the default tuning")
	rootCmd.Flags().StringVar(&logPath, "log", "", "write logs to this file (the screen owns stderr)")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed; 0 picks one from the clock")
	rootCmd.Flags().BoolVar(&mute, "mute", false, "disable sound")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runTUI(cmd *cobra.Command, _ []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var logOut io.Writer = io.Discard
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := slog.New(slog.NewTextHandler(logOut, nil))

	cfg := tuning.MustDefault()
	if tuningPath != "" {
		var err error
		if cfg, err = tuning.Load(tuningPath); err != nil {
			return err
		}
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	catalog := assets.NewCatalog()
	opts := []game.Option{game.WithTuning(cfg), game.WithSeed(seed), game.WithModelSource(catalog)}
	if !mute {
		sound := audio.NewEngine(catalog, audio.WithLogger(logger))
		defer sound.Close()
		opts = append(opts, game.WithAudio(sound))
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	ui, err := terminal.New(screen, logger, opts...)
	if err != nil {
		return err
	}
	defer ui.Close()

	logger.Info("terminal session started", "seed", seed)
	if err := ui.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
