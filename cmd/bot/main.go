package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/diegoclair/standup-bot/internal/cache"
	"github.com/diegoclair/standup-bot/internal/chat/discordchat"
	"github.com/diegoclair/standup-bot/internal/chat/slackchat"
	"github.com/diegoclair/standup-bot/internal/config"
	"github.com/diegoclair/standup-bot/internal/database"
	"github.com/diegoclair/standup-bot/internal/domain"
	"github.com/diegoclair/standup-bot/internal/domain/contract"
	"github.com/diegoclair/standup-bot/internal/domain/service"
	"github.com/diegoclair/standup-bot/internal/handlers"
	"github.com/diegoclair/standup-bot/internal/logging"
	"github.com/diegoclair/standup-bot/migrator/sqlite"
	"github.com/joho/godotenv"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := logging.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("bot stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	logger.Info("running migrations")
	if err := sqlite.Migrate(db.DB()); err != nil {
		return err
	}
	logger.Info("migrations completed successfully")

	dm := database.NewInstance(db)

	locker, err := newLocker(ctx, cfg, logger)
	if err != nil {
		return err
	}
	if closer, ok := locker.(interface{ Close() error }); ok {
		defer closer.Close()
	}

	templates, err := config.LoadTemplates(cfg.MessagesFile)
	if err != nil {
		return err
	}

	var (
		chat         contract.ChatClient
		prefix       string
		discord      *discordgo.Session
		slackClient  *slack.Client
		slackHandler *handlers.SlackHandler
	)

	switch cfg.Platform {
	case config.PlatformSlack:
		slackClient = slack.New(cfg.SlackBotToken)
		chat = slackchat.New(slackClient)
		prefix = domain.SlackPrefix

	default:
		discord, err = discordgo.New("Bot " + cfg.DiscordBotToken)
		if err != nil {
			return err
		}
		discord.Identify.Intents = discordgo.IntentGuilds |
			discordgo.IntentGuildMessages |
			discordgo.IntentDirectMessages |
			discordgo.IntentMessageContent
		chat = discordchat.New(discord)
		prefix = domain.DiscordPrefix
	}

	services, err := service.NewInstance(dm, chat, locker, templates, service.Options{
		Prefix:              prefix,
		DispatchTimeout:     cfg.Dispatch.Timeout,
		DispatchConcurrency: cfg.Dispatch.Concurrency,
		SummaryEnabled:      cfg.SummaryEnabled,
	}, logger)
	if err != nil {
		return err
	}

	if slackClient != nil {
		auth, err := slackClient.AuthTestContext(ctx)
		if err != nil {
			return err
		}
		logger.Info("connected to slack", zap.String("team", auth.Team), zap.String("bot_user_id", auth.UserID))
		slackHandler = handlers.NewSlackHandler(services.Standup, cfg.SlackSigningSecret, auth.UserID, logger.Named("slack"))
	}

	if discord != nil {
		handlers.NewDiscordHandler(services.Standup, chat, logger.Named("discord")).Register(discord)
		if err := discord.Open(); err != nil {
			return err
		}
		defer discord.Close()
		logger.Info("connected to discord gateway")
	}

	services.Scheduler.Start(ctx)
	defer services.Scheduler.Stop()

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handlers.NewRouter(slackHandler, db, logger.Named("http")),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("port", cfg.Port), zap.String("platform", cfg.Platform))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err := <-serverErr:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func newLocker(ctx context.Context, cfg *config.Config, logger *zap.Logger) (contract.Locker, error) {
	if cfg.RedisURL == "" {
		logger.Info("REDIS_URL not set, scheduled firings are not coordinated across replicas")
		return cache.NoopLocker{}, nil
	}

	hostname, _ := os.Hostname()
	locker, err := cache.NewRedisLocker(cfg.RedisURL, hostname)
	if err != nil {
		return nil, err
	}
	if err := locker.Ping(ctx); err != nil {
		return nil, err
	}
	return locker, nil
}
