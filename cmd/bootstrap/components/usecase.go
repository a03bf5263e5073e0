package components

import (
	"tourdesk/internal/pkg/clock"
	"tourdesk/internal/pkg/config"
	"tourdesk/internal/usecase"
	"tourdesk/internal/usecase/commands"
	"tourdesk/internal/usecase/livesync"
	"tourdesk/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseSyncModule,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	usecase.NewStaffDirectory,
	func(cfg config.Config) config.AuthConfig {
		return cfg.Auth
	},
)

var usecaseSyncModule = fx.Module("usecase/sync",
	fx.Provide(
		func(cfg config.Config) livesync.Config {
			return livesync.Config{
				DebounceWindow: cfg.Sync.DebounceWindow,
				ResolveTimeout: cfg.Sync.ResolveTimeout,
			}
		},
		livesync.NewManager,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewPackageUseCase,
		commands.NewQuoteUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewPackageQueries,
		queries.NewQuoteQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewAuthUseCase,
		usecase.NewTokenValidator,
	),
)
