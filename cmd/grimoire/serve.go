package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/grimoire-tools/grimoire/internal/config"
	"github.com/grimoire-tools/grimoire/internal/home"
	"github.com/grimoire-tools/grimoire/internal/server"
)

var (
	serveHost string
	servePort string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the grimoire HTTP API server",
	Long: `Serve starts the HTTP API server. The config file is watched for
changes and parser tuning is hot-reloaded without a restart.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

		h, err := home.New(homeDir)
		if err != nil {
			return err
		}
		if err := h.EnsureExists(); err != nil {
			return err
		}
		if !h.ConfigExists() && cfgFile == "" {
			if err := config.WriteDefault(h.ConfigPath()); err != nil {
				return err
			}
			logger.Info("wrote default config", "path", h.ConfigPath())
		}

		mgr, err := config.NewManager(cfgFile)
		if err != nil {
			return err
		}
		mgr.WatchConfig()
		cfg := mgr.Get()

		host := serveHost
		if host == "" {
			host = cfg.Server.Host
		}
		port := servePort
		if port == "" {
			port = cfg.Server.Port
		}

		srv, err := server.New(server.Config{
			Host:          host,
			Port:          port,
			ConfigManager: mgr,
			Home:          h,
			Logger:        logger,
		})
		if err != nil {
			return err
		}

		return srv.Start(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "address to bind (overrides config)")
	serveCmd.Flags().StringVar(&servePort, "port", "", "port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
