package cli

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"time"

	"football-quiz/internal/config"
	"football-quiz/internal/domain"
	pgmigrations "football-quiz/internal/infra/postgres/migrations"
	redisstore "football-quiz/internal/infra/redis"
	"football-quiz/internal/logging"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"
)

// NewMigrateCmd creates the quizzes table and seeds the football questions.
func NewMigrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrations(cmd.Context(), *configPath)
		},
	}
}

func runMigrations(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger := logging.New(os.Stdout, cfg.Log.Level, cfg.Log.Format)
	if err := runMigrationsWithConfig(ctx, cfg, logger); err != nil {
		return err
	}
	return invalidateQuizCache(ctx, cfg, logger)
}

// invalidateQuizCache drops the Redis copy of the configured quiz so running
// servers pick up reseeded content on their next load.
func invalidateQuizCache(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	if cfg.Redis.Addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer client.Close()

	quizID := cfg.Quiz.ID
	if quizID == "" {
		quizID = domain.FootballQuizID
	}
	repo := redisstore.NewQuizRepository(client, nil, config.TTLDuration(cfg.Quiz.TTL, 10*time.Minute))
	if err := repo.Invalidate(ctx, quizID); err != nil {
		return fmt.Errorf("invalidate quiz cache: %w", err)
	}
	logger.Info("quiz cache invalidated", "quiz", quizID)
	return nil
}

func runMigrationsWithConfig(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	if cfg.Postgres.URL == "" {
		return fmt.Errorf("postgres url not configured")
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.Postgres.URL)))
	db := bun.NewDB(sqldb, pgdialect.New())
	defer db.Close()

	migrator := migrate.NewMigrator(db, pgmigrations.Migrations)

	if err := migrator.Init(ctx); err != nil {
		return fmt.Errorf("init migrations: %w", err)
	}

	group, err := migrator.Migrate(ctx)
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	if group.IsZero() {
		logger.Info("no new migrations")
		return nil
	}
	logger.Info("migrations applied", "group", group.String())
	return nil
}
