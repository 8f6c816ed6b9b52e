package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"docdesk/internal/config"
	"docdesk/internal/controller"
	"docdesk/internal/domains"
	"docdesk/internal/scheduler"
	"docdesk/internal/server"
	"docdesk/internal/service"
	"docdesk/internal/storage"
	"docdesk/internal/storage/providers"
	httptransport "docdesk/internal/transport/http"
)

func main() {
	cfg := config.MustLoad()
	setupLogger(cfg.Env)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	blobs, err := storage.Open(ctx, cfg.Storage.Driver, cfg.Storage.DSN())
	if err != nil {
		log.Fatalf("failed to open storage: %v", err)
	}
	defer blobs.Close()

	allProviders := providers.New(blobs, cfg.Storage.Key)
	templateService := service.NewTemplateService(allProviders.TemplateProvider)

	catalogue := domains.Catalogue(cfg.Documents.BaseURL)
	documentService := service.NewDocumentService(catalogue, cfg.Documents.DefaultLogo)

	sessions := controller.NewRegistry(controller.Options{
		Catalogue:   catalogue,
		Templates:   templateService,
		DefaultLogo: cfg.Documents.DefaultLogo,
	}, cfg.Sessions.IdleTTL)
	scheduler.NewSessionSweeper(sessions, cfg.Sessions.SweepInterval).Start(ctx)

	router := httptransport.Router(templateService, documentService, sessions)

	addr := ":" + cfg.Server.Port
	slog.Info("listening", "addr", addr, "storage", cfg.Storage.Driver)
	if err := server.Start(ctx, addr, router, cfg.Server.AllowedOrigins); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

func setupLogger(env string) {
	var handler slog.Handler
	switch env {
	case "local":
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	default:
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	slog.SetDefault(slog.New(handler))
}
