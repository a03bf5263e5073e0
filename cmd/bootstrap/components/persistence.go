package components

import (
	"tourdesk/internal/infra/readstore"
	"tourdesk/internal/infra/repository"
	"tourdesk/internal/infra/resolution"
	"tourdesk/internal/infra/uow"
	"tourdesk/internal/usecase/livesync"
	"tourdesk/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	readstoreModule,
	repositoryModule,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Package
		fx.Annotate(
			readstore.NewPackageReadStore,
			fx.As(new(queries.PackageReadStore)),
		),
		// Quote
		fx.Annotate(
			readstore.NewQuoteReadStore,
			fx.As(new(queries.QuoteReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork
		uow.NewPostgresUoW,
		// Write repositories reused outside the UoW by the sync engine
		repository.NewPackageRepository,
		repository.NewQuoteRepository,
		// Pricing state persistence for the sync engine
		fx.Annotate(
			repository.NewPricingStateStore,
			fx.As(new(livesync.StateWriter)),
			fx.As(new(livesync.StateReads)),
		),
		// In-process price resolution collaborator
		fx.Annotate(
			resolution.NewClient,
			fx.As(new(livesync.ResolutionClient)),
		),
	),
)
