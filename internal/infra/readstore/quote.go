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

type QuoteReadStore struct {
	db *pgxpool.Pool
}

func NewQuoteReadStore(db *pgxpool.Pool) *QuoteReadStore {
	return &QuoteReadStore{db: db}
}

func (r *QuoteReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.QuoteView, error) {
	const query = `
		SELECT id, customer_name,
			number_of_people, number_of_nights, number_of_rooms, arrival_date,
			total_price_cents, sync_status, error_message, linked_package,
			created_at, updated_at
		FROM quotes
		WHERE id = $1`

	var (
		view     queries.QuoteView
		snapshot []byte
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.CustomerName,
		&view.NumberOfPeople, &view.NumberOfNights, &view.NumberOfRooms, &view.ArrivalDate,
		&view.TotalPriceCents, &view.SyncStatus, &view.ErrorMessage, &snapshot,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get quote view by id", err)
	}

	if snapshot != nil {
		var doc repository.SnapshotDoc
		if err := json.Unmarshal(snapshot, &doc); err != nil {
			return nil, infra.WrapRepoErr("failed to decode linked snapshot", err)
		}
		linked := &queries.LinkedPackageView{CalculatedCents: doc.CalculatedPriceCents}
		if err := copier.Copy(linked, &doc); err != nil {
			return nil, infra.WrapRepoErr("failed to map linked snapshot", err)
		}
		view.LinkedPackage = linked
	}
	return &view, nil
}

func (r *QuoteReadStore) List(ctx context.Context) ([]*queries.QuoteListItem, error) {
	const query = `
		SELECT id, customer_name, number_of_people, number_of_nights, arrival_date,
			total_price_cents, sync_status, linked_package_id, created_at
		FROM quotes
		ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list quotes", err)
	}
	defer rows.Close()

	items := make([]*queries.QuoteListItem, 0)
	for rows.Next() {
		var item queries.QuoteListItem
		err := rows.Scan(
			&item.ID, &item.CustomerName, &item.NumberOfPeople, &item.NumberOfNights, &item.ArrivalDate,
			&item.TotalPriceCents, &item.SyncStatus, &item.LinkedPackageID, &item.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan quote row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate quote rows", err)
	}
	return items, nil
}
