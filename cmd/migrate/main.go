// Command migrate applies the database schema and exits.
package main

import (
	"context"
	"log/slog"
	"os"

	"bazaar/config"
	logs "bazaar/internal/infra/log"
	"bazaar/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type migrateParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	DB     *gorm.DB
	Logger *slog.Logger
}

func main() {
	fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Invoke(runMigrations),
	).Run()
}

func runMigrations(params migrateParams) {
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				exitCode := 0
				if err := postgres.Migrate(context.Background(), params.DB); err != nil {
					params.Logger.Error("Migration failed", slog.Any("error", err))
					exitCode = 1
				} else {
					params.Logger.Info("Migration completed")
				}

				if err := params.Shutdown(fx.ExitCode(exitCode)); err != nil {
					params.Logger.Error("Failed to shut down", slog.Any("error", err))
					os.Exit(1)
				}
			}()

			return nil
		},
	})
}
