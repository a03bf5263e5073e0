package resolution

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"tourdesk/internal/domain/pricing"
	"tourdesk/internal/infra"
	"tourdesk/internal/infra/repository"
	"tourdesk/internal/usecase/livesync"
)

// Client answers resolution requests against the package catalog. It plays
// the external collaborator role for the livesync engine: the engine never
// sees the catalog, only this narrow contract.
type Client struct {
	pool     *pgxpool.Pool
	packages *repository.PackageRepository
	resolver *pricing.Resolver
}

func NewClient(pool *pgxpool.Pool, packages *repository.PackageRepository) *Client {
	return &Client{
		pool:     pool,
		packages: packages,
		resolver: pricing.NewResolver(),
	}
}

func (c *Client) Resolve(ctx context.Context, req livesync.ResolveRequest) (*livesync.ResolveResponse, error) {
	pkg, err := c.packages.FindByID(ctx, c.pool, req.PackageID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, pricing.NewResolutionError(pricing.KindPackageNotFound, "linked package no longer exists")
		}
		return nil, err
	}

	// The quote pins the version it linked against. Pricing against a newer
	// table silently changes provenance, so it is refused instead.
	if pkg.Version() != req.PackageVersion {
		return nil, pricing.NewResolutionError(pricing.KindPackageVersionChanged, "package was edited since linking")
	}

	res, err := c.resolver.Resolve(pkg, req.NumberOfPeople, req.NumberOfNights, req.ArrivalDate)
	if err != nil {
		return nil, err
	}

	return &livesync.ResolveResponse{
		Price:       res.Price,
		TierIndex:   res.TierIndex,
		TierLabel:   res.TierLabel,
		PeriodLabel: res.PeriodLabel,
		Currency:    res.Currency,
	}, nil
}
