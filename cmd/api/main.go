package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"weather-chat-agent/config"
	_ "weather-chat-agent/docs" // Swagger docs
	chatHTTP "weather-chat-agent/internal/chat/delivery/http"
	tgDelivery "weather-chat-agent/internal/chat/delivery/telegram"
	"weather-chat-agent/internal/chat/usecase"
	"weather-chat-agent/internal/conversation"
	"weather-chat-agent/internal/httpserver"
	"weather-chat-agent/internal/middleware"
	"weather-chat-agent/internal/router"
	owProvider "weather-chat-agent/internal/weather/provider/openweather"
	"weather-chat-agent/pkg/gemini"
	"weather-chat-agent/pkg/log"
	"weather-chat-agent/pkg/openweather"
	"weather-chat-agent/pkg/telegram"
)

// @title       Weather Chat API
// @description Conversational weather assistant backed by Gemini intent routing and OpenWeatherMap.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Weather Chat Agent...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Upstream clients
	geminiClient := gemini.NewClient(cfg.Gemini.APIKey)
	geminiClient.SetModel(cfg.Gemini.Model)

	weatherClient := openweather.NewClient(cfg.Weather.APIKey)
	if cfg.Weather.APIURL != "" {
		weatherClient.SetAPIURL(cfg.Weather.APIURL)
	}

	// 4. Chat domain
	provider := owProvider.New(weatherClient, logger)
	semanticRouter := router.New(geminiClient, logger)
	store := conversation.NewStore(conversation.StoreConfig{
		MaxTurns:    cfg.Chat.MaxTurns,
		MaxSessions: cfg.Chat.MaxSessions,
		SessionTTL:  cfg.Chat.SessionTTL,
	})

	chatUC := usecase.New(logger, semanticRouter, provider, geminiClient, store)
	chatHandler := chatHTTP.New(logger, chatUC)

	// 5. Telegram surface (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, chatUC, bot)

		if cfg.Telegram.WebhookURL != "" {
			webhookURL := cfg.Telegram.WebhookURL + "/webhook/telegram"
			if whErr := bot.SetWebhook(webhookURL); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
			}
		}
	} else {
		logger.Info(ctx, "Telegram bot token not configured, HTTP surface only")
	}

	// 6. HTTP Server
	mw := middleware.New(logger, cfg)
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      mw,
		ChatHandler:     chatHandler,
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
