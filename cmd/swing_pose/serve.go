package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/swingtrack/swing-pose/internal/db"
	"github.com/swingtrack/swing-pose/internal/poses"
	"github.com/swingtrack/swing-pose/internal/server"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes the pose dataset, scene projection and PNG rendering.
Snapshot routes are enabled when database.url is configured.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	port := cfg.Server.Port
	if servePort != 0 {
		port = servePort
	}

	serverCfg := server.Config{
		Port:    port,
		Dataset: poses.Default(),
		Render:  renderOptions(),
		Defaults: server.SceneDefaults{
			Camera: cfg.CameraValue(),
			Grid:   cfg.GridValue(),
		},
		RateLimit: cfg.RateLimitValue(),
		Logger:    logger,
	}

	if cfg.Database.URL != "" {
		database, err := db.Connect(cmd.Context(), cfg.Database.URL, logger)
		if err != nil {
			return err
		}
		defer database.Close()

		if err := database.EnsureSchema(cmd.Context()); err != nil {
			return err
		}
		serverCfg.Store = database
	} else {
		logger.Warn().Msg("database.url not set, snapshot routes disabled")
	}

	srv, err := server.New(serverCfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
