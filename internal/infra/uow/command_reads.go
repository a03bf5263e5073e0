package uow

import (
	"context"

	"github.com/google/uuid"

	"tourdesk/internal/infra"
	"tourdesk/internal/usecase/shared"
)

// commandReads serves the write side's validation lookups with minimal
// snapshots, keeping command code off the read-model types.
type commandReads struct {
	db shared.DB
}

func (r *commandReads) PackageByID(ctx context.Context, id uuid.UUID) (*shared.PackageSnapshot, error) {
	const query = `SELECT id, name, version, currency FROM packages WHERE id = $1`

	var snap shared.PackageSnapshot
	err := r.db.QueryRow(ctx, query, id).Scan(&snap.ID, &snap.Name, &snap.Version, &snap.Currency)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find package", err)
	}
	return &snap, nil
}

func (r *commandReads) LinkedQuoteCount(ctx context.Context, packageID uuid.UUID) (int64, error) {
	const query = `SELECT count(*) FROM quotes WHERE linked_package_id = $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, packageID).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count linked quotes", err)
	}
	return count, nil
}

func (r *commandReads) QuoteByID(ctx context.Context, id uuid.UUID) (*shared.QuoteSnapshot, error) {
	const query = `
		SELECT id, customer_name, sync_status, linked_package_id, updated_at
		FROM quotes
		WHERE id = $1`

	var snap shared.QuoteSnapshot
	err := r.db.QueryRow(ctx, query, id).Scan(&snap.ID, &snap.CustomerName, &snap.SyncStatus, &snap.LinkedPackageID, &snap.UpdatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find quote", err)
	}
	return &snap, nil
}
