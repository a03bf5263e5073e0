package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"tourdesk/internal/domain/catalog"
	"tourdesk/internal/domain/quote"
	"tourdesk/internal/infra"
	"tourdesk/internal/usecase/shared"
)

type QuoteRepository struct{}

func NewQuoteRepository() *QuoteRepository {
	return &QuoteRepository{}
}

func (r *QuoteRepository) Create(ctx context.Context, db shared.DB, q *quote.Quote, now time.Time) error {
	state := q.PricingState()
	cols, err := pricingStateColumns(state)
	if err != nil {
		return err
	}

	const query = `
		INSERT INTO quotes (
			id, customer_name,
			number_of_people, number_of_nights, number_of_rooms, arrival_date,
			total_price_cents, last_resolved_cents, sync_status, error_message,
			linked_package, linked_package_id,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $13)`
	_, err = db.Exec(ctx, query,
		q.ID(), q.CustomerName(),
		state.People, state.Nights, state.Rooms, state.Arrival,
		cols.totalCents, cols.lastResolvedCents, state.Status.String(), cols.errorMessage,
		cols.snapshot, cols.linkedPackageID,
		now,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create quote", err)
	}
	return nil
}

func (r *QuoteRepository) Rename(ctx context.Context, db shared.DB, id uuid.UUID, customerName string, now time.Time) error {
	const query = `UPDATE quotes SET customer_name = $2, updated_at = $3 WHERE id = $1`
	tag, err := db.Exec(ctx, query, id, customerName, now)
	if err != nil {
		return infra.WrapRepoErr("failed to rename quote", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "quote not found", nil)
	}
	return nil
}

func (r *QuoteRepository) Delete(ctx context.Context, db shared.DB, id uuid.UUID) error {
	tag, err := db.Exec(ctx, `DELETE FROM quotes WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete quote", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "quote not found", nil)
	}
	return nil
}

// SavePricingState writes back everything the synchronization machine owns.
func (r *QuoteRepository) SavePricingState(ctx context.Context, db shared.DB, quoteID uuid.UUID, state quote.State, now time.Time) error {
	cols, err := pricingStateColumns(state)
	if err != nil {
		return err
	}

	const query = `
		UPDATE quotes
		SET number_of_people = $2, number_of_nights = $3, number_of_rooms = $4, arrival_date = $5,
			total_price_cents = $6, last_resolved_cents = $7, sync_status = $8, error_message = $9,
			linked_package = $10, linked_package_id = $11,
			updated_at = $12
		WHERE id = $1`
	tag, err := db.Exec(ctx, query,
		quoteID,
		state.People, state.Nights, state.Rooms, state.Arrival,
		cols.totalCents, cols.lastResolvedCents, state.Status.String(), cols.errorMessage,
		cols.snapshot, cols.linkedPackageID,
		now,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save pricing state", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "quote not found", nil)
	}
	return nil
}

func (r *QuoteRepository) FindPricingState(ctx context.Context, db shared.DB, quoteID uuid.UUID) (quote.State, error) {
	const query = `
		SELECT number_of_people, number_of_nights, number_of_rooms, arrival_date,
			total_price_cents, last_resolved_cents, sync_status, error_message,
			linked_package
		FROM quotes
		WHERE id = $1`

	var (
		state             quote.State
		totalCents        *int64
		lastResolvedCents *int64
		status            string
		errorMessage      *string
		snapshot          []byte
	)
	err := db.QueryRow(ctx, query, quoteID).Scan(
		&state.People, &state.Nights, &state.Rooms, &state.Arrival,
		&totalCents, &lastResolvedCents, &status, &errorMessage,
		&snapshot,
	)
	if err != nil {
		return quote.State{}, infra.WrapRepoErr("failed to load pricing state", err)
	}

	state.Status = quote.SyncStatus(status)
	if totalCents != nil {
		state.TotalPrice = catalog.MoneyFromCents(*totalCents)
		state.HasPrice = true
	}
	if lastResolvedCents != nil {
		resolved := catalog.MoneyFromCents(*lastResolvedCents)
		state.LastResolved = &resolved
	}
	if errorMessage != nil {
		state.ErrorMessage = *errorMessage
	}
	if snapshot != nil {
		var doc SnapshotDoc
		if err := json.Unmarshal(snapshot, &doc); err != nil {
			return quote.State{}, infra.WrapRepoErr("failed to decode linked snapshot", err)
		}
		state.Linked = doc.Restore()
	}
	return state, nil
}

type stateColumns struct {
	totalCents        *int64
	lastResolvedCents *int64
	errorMessage      *string
	snapshot          []byte
	linkedPackageID   *uuid.UUID
}

func pricingStateColumns(state quote.State) (stateColumns, error) {
	var cols stateColumns
	if state.HasPrice {
		cents := state.TotalPrice.Cents()
		cols.totalCents = &cents
	}
	if state.LastResolved != nil {
		cents := state.LastResolved.Cents()
		cols.lastResolvedCents = &cents
	}
	if state.ErrorMessage != "" {
		cols.errorMessage = &state.ErrorMessage
	}
	if state.Linked != nil {
		raw, err := json.Marshal(NewSnapshotDoc(state.Linked))
		if err != nil {
			return stateColumns{}, infra.WrapRepoErr("failed to encode linked snapshot", err)
		}
		cols.snapshot = raw
		id := state.Linked.PackageID
		cols.linkedPackageID = &id
	}
	return cols, nil
}
