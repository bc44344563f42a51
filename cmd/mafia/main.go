package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/mafia/internal/common/clock"
	"github.com/KirkDiggler/mafia/internal/common/uuid"
	"github.com/KirkDiggler/mafia/internal/config"
	"github.com/KirkDiggler/mafia/internal/handlers/cli"
	"github.com/KirkDiggler/mafia/internal/logging"
	"github.com/KirkDiggler/mafia/internal/random"
	gameRepo "github.com/KirkDiggler/mafia/internal/repositories/game"
	gameService "github.com/KirkDiggler/mafia/internal/services/game"
	"github.com/KirkDiggler/mafia/internal/services/messaging"
	"github.com/KirkDiggler/mafia/internal/services/roles"
	"github.com/KirkDiggler/mafia/internal/services/session"
)

func main() {
	ctx, done := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer done()

	cfg, err := config.Load(".env")
	if err != nil {
		logging.DefaultLogger().Fatalf("processing the config: %v", err)
	}

	logger := logging.NewLogger(cfg.Debug)
	ctx = logging.WithLogger(ctx, logger)

	if err := realMain(ctx, cfg); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatalf("main.realMain: %v", err)
	}
}

func realMain(ctx context.Context, cfg *config.Config) error {
	logger := logging.FromContext(ctx).Named("main.realMain")

	repo, closeRepo, err := newRepository(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeRepo()

	src := random.New(&random.Config{Seed: cfg.Seed})
	ids := uuid.New()

	sessions, err := session.New(&session.Config{
		Repository:    repo,
		UUIDGenerator: ids,
	})
	if err != nil {
		return fmt.Errorf("failed to create session service: %w", err)
	}

	purgeStaleSessions(ctx, sessions)

	assigner, err := roles.New(&roles.Config{
		Random:        src,
		UUIDGenerator: ids,
	})
	if err != nil {
		return fmt.Errorf("failed to create role assigner: %w", err)
	}

	games, err := gameService.New(&gameService.Config{
		RoleAssigner:  assigner,
		Clock:         clock.New(),
		UUIDGenerator: ids,
	})
	if err != nil {
		return fmt.Errorf("failed to create game service: %w", err)
	}

	messages, err := messaging.New(&messaging.Config{Random: src})
	if err != nil {
		return fmt.Errorf("failed to create messaging service: %w", err)
	}

	console, err := cli.New(&cli.Config{
		In:               os.Stdin,
		Out:              os.Stdout,
		GameService:      games,
		SessionService:   sessions,
		RoleAssigner:     assigner,
		MessagingService: messages,
	})
	if err != nil {
		return fmt.Errorf("failed to create console: %w", err)
	}

	logger.Debugw("starting console", "store", cfg.Store, "seed", cfg.Seed)

	return console.Run(ctx)
}

// newRepository builds the snapshot store named by the config
func newRepository(ctx context.Context, cfg *config.Config) (gameRepo.Repository, func(), error) {
	if cfg.Store != config.StoreRedis {
		repo, err := gameRepo.NewMemory(&gameRepo.MemoryConfig{Size: cfg.CacheSize})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create memory store: %w", err)
		}
		return repo, func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	repo, err := gameRepo.NewRedis(&gameRepo.Config{
		RedisClient: client,
		TTL:         cfg.Redis.TTL,
	})
	if err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to create redis store: %w", err)
	}

	closeClient := func() {
		if err := client.Close(); err != nil {
			logging.FromContext(ctx).Warnw("failed to close redis client", "error", err)
		}
	}

	return repo, closeClient, nil
}

// purgeStaleSessions ends sessions left behind by a previous run
func purgeStaleSessions(ctx context.Context, sessions session.Service) {
	logger := logging.FromContext(ctx)

	active, err := sessions.ListActiveSessions(ctx, &session.ListActiveSessionsInput{})
	if err != nil {
		logger.Warnw("failed to list stale sessions", "error", err)
		return
	}

	for _, id := range active.SessionIDs {
		if _, err := sessions.EndSession(ctx, &session.EndSessionInput{SessionID: id}); err != nil {
			logger.Warnw("failed to end stale session", "sessionID", id, "error", err)
			continue
		}
		logger.Infow("ended stale session", "sessionID", id)
	}
}
