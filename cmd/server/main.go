package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	directory "github.com/peerwave/signaling/internal/adapter/driven/directory/memory"
	"github.com/peerwave/signaling/internal/adapter/driven/gateway/ws"
	repo "github.com/peerwave/signaling/internal/adapter/driven/persistence/memory"
	handler "github.com/peerwave/signaling/internal/adapter/driving/http"
	"github.com/peerwave/signaling/internal/config"
	"github.com/peerwave/signaling/internal/core/domain"
	"github.com/peerwave/signaling/internal/core/service"
	"github.com/rs/zerolog"
)

func main() {
	w := zerolog.ConsoleWriter{Out: os.Stdout}
	l := zerolog.New(w).With().Timestamp().Caller().Logger()

	cfg := config.NewConfig()

	rooms := repo.NewRoomRepository()
	hub := ws.NewHub()

	accounts := directory.NewDirectory()
	for token, username := range cfg.Auth.Sessions {
		accounts.AddSession(token, domain.Account{
			ID:       domain.NewUserID(),
			Username: username,
		})
	}

	roomService := service.NewRoomService(rooms)
	relayService := service.NewRelayService(rooms, hub)
	h := handler.NewHandler(roomService, relayService, accounts, cfg.Server.StaticDir)

	r := h.NewRouter()

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		l.Info().Str("addr", cfg.Addr()).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			l.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	l.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		l.Error().Err(err).Msg("Server forced to shutdown")
	}

	hub.Close()
	l.Info().Msg("Server exited")
}
