package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/paynote/paynote/internal/auth"
	authStore "github.com/paynote/paynote/internal/auth/store"
	"github.com/paynote/paynote/internal/config"
	"github.com/paynote/paynote/internal/database"
	paynoteHttp "github.com/paynote/paynote/internal/http"
	authHandler "github.com/paynote/paynote/internal/http/auth"
	noteHandler "github.com/paynote/paynote/internal/http/note"
	summaryHandler "github.com/paynote/paynote/internal/http/summary"
	"github.com/paynote/paynote/internal/note"
	noteStore "github.com/paynote/paynote/internal/note/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.Timeout)
	defer cancel()

	db, err := database.New(ctx, cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		authService = auth.NewService(authStore.New(db), cfg.Auth.JWTSecret, cfg.Auth.SessionTTL)
		noteService = note.NewService(noteStore.New(db))
	)

	var (
		authH    = authHandler.NewHandler(authService, cfg.Auth.SessionTTL)
		noteH    = noteHandler.NewHandler(noteService)
		summaryH = summaryHandler.NewHandler(noteService)
	)

	router := paynoteHttp.New(authService, authH, noteH, summaryH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
