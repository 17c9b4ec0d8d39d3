// Copyright (c) 2026 Caseboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/caseboard/caseboard/cliparse"
	"github.com/caseboard/caseboard/middleware"
	"github.com/caseboard/caseboard/router"
	"github.com/caseboard/caseboard/sheetstore"
)

func main() {
	var err error

	// Local development keeps secrets in .env; absence is fine
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to Google Sheets and Drive
	store, err := sheetstore.NewGoogleStore(context.Background(), cfg.CredentialsFile, cfg.StoreTimeout)
	if err != nil {
		slog.Error("sheets client setup failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Row store ready", "master_sheet", cfg.MasterSheetID)

	// Create router
	mux := router.NewRouter(store, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
