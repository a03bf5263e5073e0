package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"tourdesk/internal/domain/catalog"
	"tourdesk/internal/infra"
	"tourdesk/internal/usecase/shared"
)

type PackageRepository struct{}

func NewPackageRepository() *PackageRepository {
	return &PackageRepository{}
}

func (r *PackageRepository) Create(ctx context.Context, db shared.DB, pkg *catalog.Package) error {
	pricing, err := json.Marshal(NewPricingDoc(pkg))
	if err != nil {
		return infra.WrapRepoErr("failed to encode pricing table", err)
	}

	const query = `
		INSERT INTO packages (id, name, version, currency, pricing, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, now(), now())`
	if _, err := db.Exec(ctx, query, pkg.ID(), pkg.Name(), pkg.Version(), pkg.Currency(), pricing); err != nil {
		return infra.WrapRepoErr("failed to create package", err)
	}
	return nil
}

func (r *PackageRepository) FindByID(ctx context.Context, db shared.DB, id uuid.UUID) (*catalog.Package, error) {
	const query = `
		SELECT name, version, currency, pricing, created_at, updated_at
		FROM packages
		WHERE id = $1`

	var (
		name      string
		version   int
		currency  string
		pricing   []byte
		createdAt time.Time
		updatedAt time.Time
	)
	err := db.QueryRow(ctx, query, id).Scan(&name, &version, &currency, &pricing, &createdAt, &updatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find package", err)
	}

	var doc PricingDoc
	if err := json.Unmarshal(pricing, &doc); err != nil {
		return nil, infra.WrapRepoErr("failed to decode pricing table", err)
	}
	tiers, durations, periods, err := doc.Restore()
	if err != nil {
		return nil, infra.WrapRepoErr("stored pricing table is invalid", err)
	}

	return catalog.ReconstructPackage(id, name, version, currency, tiers, durations, periods, createdAt, updatedAt), nil
}

// Update persists a pricing edit guarded by the version the edit was loaded
// against, so two concurrent edits cannot both win.
func (r *PackageRepository) Update(ctx context.Context, db shared.DB, pkg *catalog.Package, expectedVersion int) error {
	pricing, err := json.Marshal(NewPricingDoc(pkg))
	if err != nil {
		return infra.WrapRepoErr("failed to encode pricing table", err)
	}

	const query = `
		UPDATE packages
		SET name = $2, version = $3, currency = $4, pricing = $5, updated_at = now()
		WHERE id = $1 AND version = $6`
	tag, err := db.Exec(ctx, query, pkg.ID(), pkg.Name(), pkg.Version(), pkg.Currency(), pricing, expectedVersion)
	if err != nil {
		return infra.WrapRepoErr("failed to update package", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindVersionConflict, "package version changed since load", nil)
	}
	return nil
}

func (r *PackageRepository) Delete(ctx context.Context, db shared.DB, id uuid.UUID) error {
	tag, err := db.Exec(ctx, `DELETE FROM packages WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete package", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "package not found", nil)
	}
	return nil
}
