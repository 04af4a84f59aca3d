// Package persistence selects the user storage backend named by storage.driver.
package persistence

import (
	"log/slog"

	"go.uber.org/fx"

	"account/config"
	"account/internal/domain/constants"
	"account/internal/domain/repository"
	"account/internal/errors"
	"account/internal/infra/persistence/memory"
	"account/internal/infra/persistence/postgres"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewUserRepository opens the configured backend. The postgres connection is
// only created, and tied to the fx lifecycle, when that driver is selected.
func NewUserRepository(params Params) (repository.UserRepository, error) {
	switch params.Config.Storage.Driver {
	case constants.StorageDriverMemory:
		params.Logger.Warn("Using in-memory user storage, data is lost on restart")

		return memory.NewUserRepository(), nil
	case constants.StorageDriverPostgres, "":
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, err
		}

		return postgres.NewUserRepository(db), nil
	default:
		return nil, errors.Errorf("unknown storage driver: %s", params.Config.Storage.Driver)
	}
}
