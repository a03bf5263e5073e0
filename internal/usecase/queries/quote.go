package queries

import (
	"context"

	"github.com/google/uuid"

	"tourdesk/internal/infra"
	"tourdesk/internal/pkg/errs"
)

type QuoteReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*QuoteView, error)
	List(ctx context.Context) ([]*QuoteListItem, error)
}

type QuoteQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*QuoteView, error)
	List(ctx context.Context) ([]*QuoteListItem, error)
}

type quoteQueriesImpl struct {
	store QuoteReadStore
}

func NewQuoteQueries(store QuoteReadStore) QuoteQueries {
	return &quoteQueriesImpl{store: store}
}

func (q *quoteQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*QuoteView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrQuoteNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	view.Breakdown = breakdownOf(view)
	return view, nil
}

func (q *quoteQueriesImpl) List(ctx context.Context) ([]*QuoteListItem, error) {
	items, err := q.store.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return items, nil
}

// breakdownOf derives the per-person/per-room/per-night figures. No figures
// exist without a numeric total (e.g. an unresolved ON_REQUEST price).
func breakdownOf(view *QuoteView) *BreakdownView {
	if view.TotalPriceCents == nil {
		return nil
	}
	units := float64(*view.TotalPriceCents) / 100.0
	var b BreakdownView
	if view.NumberOfPeople > 0 {
		v := units / float64(view.NumberOfPeople)
		b.PerPerson = &v
	}
	if view.NumberOfRooms > 0 {
		v := units / float64(view.NumberOfRooms)
		b.PerRoom = &v
	}
	if view.NumberOfNights > 0 {
		v := units / float64(view.NumberOfNights)
		b.PerNight = &v
	}
	return &b
}
