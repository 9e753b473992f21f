// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/thatcatcamp/autotheme/internal/backup"
	"github.com/thatcatcamp/autotheme/internal/config"
	"github.com/thatcatcamp/autotheme/internal/handlers"
	"github.com/thatcatcamp/autotheme/internal/logging"
)

const shutdownTimeout = 10 * time.Second

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Server operations",
	Long:  "Start the AutoTheme HTTP API",
}

var serverStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the HTTP server",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSystemDB(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if os.Getenv("AUTOTHEME_JWT_SECRET") == "" && config.GetString("auth.jwt_secret") == "CHANGE_ME_IN_PRODUCTION_USE_ENV_VAR" {
			log.Warn().Msg("Using the default JWT secret, set AUTOTHEME_JWT_SECRET")
		}

		if config.GetBool("backups.enabled") {
			scheduler := backup.NewScheduler(newBackupManager())
			if interval := config.GetDuration("backups.interval"); interval > 0 {
				scheduler.SetInterval(interval)
			}
			schedulerDone := scheduler.Start()
			log.Info().Str("dir", scheduler.Manager.BackupPath).Dur("interval", scheduler.BackupInterval).Msg("Backup scheduler started")
			defer func() {
				scheduler.Stop()
				<-schedulerDone
			}()
		}

		gin.SetMode(gin.ReleaseMode)
		r, stop := handlers.NewRouter(handlers.RouterConfig{
			RateLimit:    config.GetInt("server.rate_limit"),
			RateInterval: config.GetDuration("server.rate_interval"),
			Blocklist:    config.GetStringSlice("server.ip_blocklist"),
			Allowlist:    config.GetStringSlice("server.ip_allowlist"),
			HSTS:         config.GetBool("server.hsts"),
			Logger:       logging.Component("http"),
		})
		defer stop()

		port, _ := cmd.Flags().GetString("port")
		if port == "" {
			port = config.GetString("server.http_port")
		}
		srv := &http.Server{
			Addr:              ":" + port,
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		errCh := make(chan error, 1)
		go func() {
			log.Info().Str("addr", srv.Addr).Msg("Starting HTTP server")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			if err != nil {
				log.Error().Err(err).Msg("Server error")
				os.Exit(1)
			}
		case <-ctx.Done():
			log.Info().Msg("Shutting down")
			shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancelShutdown()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("Graceful shutdown failed")
			}
		}
	},
}

func init() {
	serverStartCmd.Flags().String("port", "", "listen port (default from server.http_port)")
	serverCmd.AddCommand(serverStartCmd)
	rootCmd.AddCommand(serverCmd)
}
