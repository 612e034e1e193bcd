package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Garsondee/Fire-Sense/internal/config"
	"github.com/Garsondee/Fire-Sense/internal/logging"
	"github.com/Garsondee/Fire-Sense/internal/metrics"
	"github.com/Garsondee/Fire-Sense/internal/server"
)

var (
	configFile string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:          "fire-serve",
	Short:        "Serve the fire game over HTTP and websocket",
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (yaml, toml or json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error")
	rootCmd.Flags().String("addr", "", "listen address for the game API")
	rootCmd.Flags().String("metrics-addr", "", "listen address for the runtime dashboard, empty to disable")
	rootCmd.Flags().Int("frame-rate", 0, "session frames per second")
}

func run(cmd *cobra.Command, _ []string) error {
	loader := config.NewLoader(configFile)
	v := loader.Viper()
	for key, flag := range map[string]string{
		"log.level":          "log-level",
		"server.addr":        "addr",
		"server.metricsAddr": "metrics-addr",
		"server.frameRate":   "frame-rate",
	} {
		if f := cmd.Flags().Lookup(flag); f != nil && f.Changed {
			if err := v.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}
	cfg, err := loader.Load()
	if err != nil {
		return err
	}

	logger := logging.New("fire-serve", cfg.Log.Level, os.Stderr)
	logger.Info("config loaded", "addr", cfg.Server.Addr, "metrics", cfg.Server.MetricsAddr, "frame_rate", cfg.Server.FrameRate)
	loader.Watch(func(c config.Config) {
		logging.SetLevel(logger, c.Log.Level)
		logger.Info("config reloaded", "log_level", c.Log.Level)
	}, func(err error) {
		logger.Warn("config reload rejected", "err", err)
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(server.Options{
		FrameRate: cfg.Server.FrameRate,
		Logger:    logger.WithPrefix("http"),
	})

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Run(ctx, cfg.Server.Addr) })
	if cfg.Server.MetricsAddr != "" {
		g.Go(func() error {
			logger.Info("runtime dashboard", "url", "http://"+cfg.Server.MetricsAddr+metrics.DashboardPath)
			return metrics.Serve(ctx, cfg.Server.MetricsAddr)
		})
	}
	return g.Wait()
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Error("fire-serve", "err", err)
		os.Exit(1)
	}
}
