package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/Garsondee/Fire-Sense/internal/config"
	"github.com/Garsondee/Fire-Sense/internal/engine"
	"github.com/Garsondee/Fire-Sense/internal/logging"
	"github.com/Garsondee/Fire-Sense/internal/sound"
	"github.com/Garsondee/Fire-Sense/internal/tui"
)

var (
	configFile string
	logLevel   string
	logFile    string
	levelArg   string
	seed       int64
	mute       bool
)

var rootCmd = &cobra.Command{
	Use:          "fire-tui",
	Short:        "Play the fire game in the terminal",
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (yaml, toml or json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "write logs here; the terminal is taken by the game")
	rootCmd.Flags().StringVar(&levelArg, "level", "", "start straight into a level (1, 2, manual, suppression)")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "spawn RNG seed, 0 for random")
	rootCmd.Flags().BoolVar(&mute, "mute", false, "disable audio")
}

func run(cmd *cobra.Command, _ []string) error {
	loader := config.NewLoader(configFile)
	if f := cmd.Flags().Lookup("log-level"); f.Changed {
		if err := loader.Viper().BindPFlag("log.level", f); err != nil {
			return err
		}
	}
	cfg, err := loader.Load()
	if err != nil {
		return err
	}

	var out io.Writer = io.Discard
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	logger := logging.New("fire-tui", cfg.Log.Level, out)

	var level engine.Level
	if levelArg != "" {
		if level, err = engine.ParseLevel(levelArg); err != nil {
			return err
		}
	}

	var player *sound.Player
	if cfg.Audio.Enabled && !mute {
		player = sound.NewPlayer(cfg.Audio.Volume, logger)
		if err := player.Init(); err != nil {
			logger.Warn("audio unavailable, playing silently", "err", err)
		}
		defer player.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := tui.New(screen, tui.Config{
		Level:     level,
		FrameRate: cfg.Server.FrameRate,
		Seed:      seed,
		Player:    player,
		Logger:    logger,
	})
	if err := app.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "fire-tui:", err)
		os.Exit(1)
	}
}
