package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Mriskiali/motion-fits/internal/config"
	"github.com/Mriskiali/motion-fits/internal/kvstore"
	"github.com/Mriskiali/motion-fits/internal/mcp"
	"github.com/Mriskiali/motion-fits/internal/reminder"
	"github.com/Mriskiali/motion-fits/internal/server"
	"github.com/Mriskiali/motion-fits/internal/session"
	"github.com/Mriskiali/motion-fits/internal/store"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"tailscale.com/tsnet"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	migrateOnly := flag.Bool("migrate-only", false, "run migrations and exit")
	mcpMode := flag.Bool("mcp", false, "serve MCP over stdio instead of HTTP")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	if *mcpMode {
		// stdout carries the MCP protocol in stdio mode.
		log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
	log.Info("MotionFits starting", "version", Version)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	// Open the key-value backend
	var kv kvstore.Store
	switch cfg.Storage.Backend {
	case "postgres":
		dsn := cfg.Storage.Postgres.DSN()
		if err := kvstore.RunMigrations(dsn, "migrations"); err != nil {
			log.Error("migration failed", "error", err)
			os.Exit(1)
		}
		log.Info("migrations applied")
		if *migrateOnly {
			log.Info("migrate-only: exiting")
			return
		}
		kv, err = kvstore.OpenPostgres(ctx, dsn)
	default:
		if *migrateOnly {
			log.Info("migrate-only: nothing to do for sqlite")
			return
		}
		kv, err = kvstore.OpenSQLite(cfg.Storage.DataDir)
	}
	if err != nil {
		log.Error("failed to open storage", "backend", cfg.Storage.Backend, "error", err)
		os.Exit(1)
	}
	defer kv.Close()
	log.Info("storage opened", "backend", cfg.Storage.Backend)

	st := store.New(ctx, kv, log)

	if *mcpMode {
		mcpSrv := mcp.New(st, Version, log)
		if err := mcpserver.ServeStdio(mcpSrv); err != nil {
			log.Error("mcp server error", "error", err)
			os.Exit(1)
		}
		return
	}

	sessions := session.NewManager(st, log)
	goals := reminder.NewService(st, reminder.NewInProcess(), log)
	srv := server.New(st, sessions, goals, cfg.Auth.APIKey, log)

	// Drive rest timers. Expiry is detected here, once per timer, and
	// surfaced as a log line.
	tickCtx, stopTick := context.WithCancel(ctx)
	defer stopTick()
	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-tickCtx.Done():
				return
			case now := <-ticker.C:
				for _, t := range st.Tick(tickCtx, now) {
					log.Info("rest timer finished", "plan", t.PlanID, "exercise", t.ExerciseID, "date", t.Date)
				}
			}
		}
	}()

	// Start server — tsnet or plain HTTP
	var listener net.Listener

	if cfg.Tailscale.Enabled {
		tsServer := &tsnet.Server{
			Hostname: cfg.Tailscale.Hostname,
			Dir:      cfg.Tailscale.StateDir,
		}
		if err := tsServer.Start(); err != nil {
			log.Error("tsnet start failed", "error", err)
			os.Exit(1)
		}
		defer tsServer.Close()

		listener, err = tsServer.Listen("tcp", ":80")
		if err != nil {
			log.Error("tsnet listen failed", "error", err)
			os.Exit(1)
		}
		log.Info("tsnet server starting", "hostname", cfg.Tailscale.Hostname)
	} else {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		listener, err = net.Listen("tcp", addr)
		if err != nil {
			log.Error("listen failed", "addr", addr, "error", err)
			os.Exit(1)
		}
		log.Info("server starting", "addr", addr, "mode", "dev (no tailscale)")
	}

	httpSrv := &http.Server{Handler: srv}

	go func() {
		if err := httpSrv.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info("shutting down", "signal", sig)
	stopTick()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", "error", err)
	}
	log.Info("server stopped")
}
