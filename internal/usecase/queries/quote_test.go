//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"tourdesk/internal/infra"
	"tourdesk/internal/pkg/errs"
	"tourdesk/internal/pkg/ptr"
	"tourdesk/internal/usecase/queries"
	queriesmock "tourdesk/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func quoteView(id uuid.UUID) *queries.QuoteView {
	now := time.Now()
	return &queries.QuoteView{
		ID:             id,
		CustomerName:   "Dana Whitfield",
		NumberOfPeople: 4,
		NumberOfNights: 3,
		NumberOfRooms:  2,
		ArrivalDate:    now.AddDate(0, 2, 0),
		SyncStatus:     "synced",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestQuoteQueriesGetByID(t *testing.T) {
	t.Run("derives the breakdown from a numeric total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockQuoteReadStore(ctrl)
		id := uuid.New()

		view := quoteView(id)
		view.TotalPriceCents = ptr.To(int64(60000))
		store.EXPECT().FindByID(gomock.Any(), id).Return(view, nil)

		got, err := queries.NewQuoteQueries(store).GetByID(context.Background(), id)
		require.NoError(t, err)
		require.NotNil(t, got.Breakdown)
		require.NotNil(t, got.Breakdown.PerPerson)
		require.NotNil(t, got.Breakdown.PerRoom)
		require.NotNil(t, got.Breakdown.PerNight)
		assert.InDelta(t, 150.0, *got.Breakdown.PerPerson, 1e-9)
		assert.InDelta(t, 300.0, *got.Breakdown.PerRoom, 1e-9)
		assert.InDelta(t, 200.0, *got.Breakdown.PerNight, 1e-9)
	})

	t.Run("no breakdown without a total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockQuoteReadStore(ctrl)
		id := uuid.New()

		store.EXPECT().FindByID(gomock.Any(), id).Return(quoteView(id), nil)

		got, err := queries.NewQuoteQueries(store).GetByID(context.Background(), id)
		require.NoError(t, err)
		assert.Nil(t, got.Breakdown)
	})

	t.Run("zero rooms omits the per room figure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockQuoteReadStore(ctrl)
		id := uuid.New()

		view := quoteView(id)
		view.NumberOfRooms = 0
		view.TotalPriceCents = ptr.To(int64(60000))
		store.EXPECT().FindByID(gomock.Any(), id).Return(view, nil)

		got, err := queries.NewQuoteQueries(store).GetByID(context.Background(), id)
		require.NoError(t, err)
		require.NotNil(t, got.Breakdown)
		assert.Nil(t, got.Breakdown.PerRoom)
		assert.NotNil(t, got.Breakdown.PerPerson)
	})

	t.Run("maps a missing row to the domain sentinel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockQuoteReadStore(ctrl)
		id := uuid.New()

		store.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.NewRepoErr(infra.KindNotFound, "quote not found", nil))

		_, err := queries.NewQuoteQueries(store).GetByID(context.Background(), id)
		assert.ErrorIs(t, err, errs.ErrQuoteNotFound)
	})

	t.Run("marks other storage failures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockQuoteReadStore(ctrl)
		id := uuid.New()

		store.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, errors.New("connection reset"))

		_, err := queries.NewQuoteQueries(store).GetByID(context.Background(), id)
		assert.ErrorIs(t, err, errs.ErrDatabaseOperationFailed)
	})
}

func TestQuoteQueriesList(t *testing.T) {
	t.Run("passes list items through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockQuoteReadStore(ctrl)

		items := []*queries.QuoteListItem{
			{ID: uuid.New(), CustomerName: "Imani Okafor", SyncStatus: "synced"},
			{ID: uuid.New(), CustomerName: "Dana Whitfield", SyncStatus: "custom"},
		}
		store.EXPECT().List(gomock.Any()).Return(items, nil)

		got, err := queries.NewQuoteQueries(store).List(context.Background())
		require.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Equal(t, "Imani Okafor", got[0].CustomerName)
	})

	t.Run("marks storage failures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockQuoteReadStore(ctrl)

		store.EXPECT().List(gomock.Any()).Return(nil, errors.New("timeout"))

		_, err := queries.NewQuoteQueries(store).List(context.Background())
		assert.ErrorIs(t, err, errs.ErrDatabaseOperationFailed)
	})
}

func TestPackageQueriesGetByID(t *testing.T) {
	t.Run("maps a missing row to the domain sentinel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockPackageReadStore(ctrl)
		id := uuid.New()

		store.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.NewRepoErr(infra.KindNotFound, "package not found", nil))

		_, err := queries.NewPackageQueries(store).GetByID(context.Background(), id)
		assert.ErrorIs(t, err, errs.ErrPackageNotFound)
	})
}
