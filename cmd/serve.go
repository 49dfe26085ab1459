package main

import (
	"UnifyMD/agent"
	"UnifyMD/cache"
	"UnifyMD/config"
	"UnifyMD/database"
	"UnifyMD/events"
	"UnifyMD/routes"
	"UnifyMD/utils"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			return runServer(cfg)
		},
	}
}

func runServer(cfg *config.AppConfig) error {
	ctx := context.Background()

	db, err := database.InitDB(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close(db)

	redisClient, err := database.NewRedisClient(ctx, database.DefaultRedisConfig(cfg.RedisAddress))
	if err != nil {
		return fmt.Errorf("failed to initialize Redis client: %w", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	issuer, err := utils.NewTokenIssuer(cfg.SymmetricKey)
	if err != nil {
		return err
	}

	var publisher events.Publisher = events.NopPublisher{}
	if cfg.EventsEnabled() {
		publisher = events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		log.Info().Strs("brokers", cfg.KafkaBrokers).Str("topic", cfg.KafkaTopic).Msg("publishing events to kafka")
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close event publisher")
		}
	}()

	var executor agent.Executor
	if cfg.ChatEnabled() {
		executor = agent.NewRemoteExecutor(cfg.AgentURL, cfg.AgentAPIKey, cfg.AgentTimeout)
	} else {
		log.Warn().Msg("AGENT_URL not set, chat is disabled")
	}

	handler := routes.SetupRoutes(routes.Dependencies{
		Config:    cfg,
		DB:        db,
		Cache:     cache.NewCache(redisClient),
		Publisher: publisher,
		Executor:  executor,
		Issuer:    issuer,
	})

	// The write timeout leaves room for a full agent call.
	srv := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        handler,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   cfg.AgentTimeout + 30*time.Second,
		MaxHeaderBytes: 1 << 20,
		IdleTimeout:    30 * time.Second,
	}

	serveErr := make(chan error, 1)
	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()
		log.Info().Str("addr", srv.Addr).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		return fmt.Errorf("listenAndServe(): %w", err)
	case <-quit:
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	log.Info().Msg("shutting down server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	wg.Wait()
	log.Info().Msg("server exited gracefully")
	return nil
}
