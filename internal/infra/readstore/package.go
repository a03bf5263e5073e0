package readstore

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jinzhu/copier"

	"tourdesk/internal/infra"
	"tourdesk/internal/infra/repository"
	"tourdesk/internal/usecase/queries"
)

type PackageReadStore struct {
	db *pgxpool.Pool
}

func NewPackageReadStore(db *pgxpool.Pool) *PackageReadStore {
	return &PackageReadStore{db: db}
}

func (r *PackageReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PackageView, error) {
	const query = `
		SELECT id, name, version, currency, pricing, created_at, updated_at
		FROM packages
		WHERE id = $1`

	var (
		view    queries.PackageView
		pricing []byte
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.Name, &view.Version, &view.Currency, &pricing, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get package view by id", err)
	}

	var doc repository.PricingDoc
	if err := json.Unmarshal(pricing, &doc); err != nil {
		return nil, infra.WrapRepoErr("failed to decode pricing table", err)
	}
	if err := mapPricing(&view, doc); err != nil {
		return nil, infra.WrapRepoErr("failed to map pricing table", err)
	}
	return &view, nil
}

func (r *PackageReadStore) List(ctx context.Context) ([]*queries.PackageListItem, error) {
	const query = `
		SELECT id, name, version, currency, created_at
		FROM packages
		ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list packages", err)
	}
	defer rows.Close()

	items := make([]*queries.PackageListItem, 0)
	for rows.Next() {
		var item queries.PackageListItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Version, &item.Currency, &item.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan package row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate package rows", err)
	}
	return items, nil
}

func mapPricing(view *queries.PackageView, doc repository.PricingDoc) error {
	if err := copier.Copy(&view.Tiers, &doc.Tiers); err != nil {
		return err
	}
	view.Durations = append([]int(nil), doc.Nights...)

	view.Periods = make([]queries.PeriodView, 0, len(doc.Periods))
	for _, p := range doc.Periods {
		pv := queries.PeriodView{Label: p.Label}
		pv.Months = append([]int(nil), p.Months...)
		if err := copier.Copy(&pv.Ranges, &p.Ranges); err != nil {
			return err
		}
		for _, pt := range p.Points {
			pv.Points = append(pv.Points, queries.PricePointView{
				TierIndex:  pt.TierIndex,
				Nights:     pt.Nights,
				PriceCents: pt.AmountCents,
				OnRequest:  pt.OnRequest,
			})
		}
		view.Periods = append(view.Periods, pv)
	}
	return nil
}
