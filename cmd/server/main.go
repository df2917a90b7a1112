package main

import (
	"log/slog"
	"net/http"
	"os"

	"symptom-assistant/internal/config"
	"symptom-assistant/internal/core"
	"symptom-assistant/internal/db"
	httpserver "symptom-assistant/internal/http"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// The recorder opens the store per call; nothing to close here.
	recorder, err := db.NewRecorder(cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		slog.Error("Failed to configure record store", "error", err)
		os.Exit(1)
	}
	recorder.Notifier = db.Notifier{Channel: cfg.LogNotifyChannel}
	slog.Info("Record store configured", "driver", cfg.DatabaseDriver)

	chatService := core.NewChatService(cfg.NewLLMClient(), recorder)
	chatService.Pipeline = core.NewPipeline(cfg.AnswerMaxChars)
	slog.Info("Completion client configured", "provider", cfg.LLMProvider, "model", cfg.ChatModel)

	srv, err := httpserver.NewServer(chatService, recorder, cfg.DefaultLocale)
	if err != nil {
		slog.Error("Failed to construct server", "error", err)
		os.Exit(1)
	}

	addr := ":" + cfg.Port
	slog.Info("Listening", "address", addr, "default_locale", cfg.DefaultLocale)
	if err := http.ListenAndServe(addr, srv); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
