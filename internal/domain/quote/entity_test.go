//go:build unit

package quote_test

import (
	"testing"
	"time"

	"tourdesk/internal/domain/quote"
	"tourdesk/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.QuoteBuilder)
	errIs  error
}

func TestQuote(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewQuoteBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Dana Whitfield", actual.CustomerName())
		assert.Equal(t, quote.StatusSynced, actual.SyncStatus())
		assert.Nil(t, actual.Linked())
		assert.False(t, actual.HasPrice())
	})

	t.Run("validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty customer name",
				mutate: func(b *builder.QuoteBuilder) { b.CustomerName = "  " },
				errIs:  quote.ErrEmptyCustomerName,
			},
			{
				name:   "zero people",
				mutate: func(b *builder.QuoteBuilder) { b.NumberOfPeople = 0 },
				errIs:  quote.ErrInvalidPeople,
			},
			{
				name:   "zero nights",
				mutate: func(b *builder.QuoteBuilder) { b.NumberOfNights = 0 },
				errIs:  quote.ErrInvalidNights,
			},
			{
				name:   "negative rooms",
				mutate: func(b *builder.QuoteBuilder) { b.NumberOfRooms = -1 },
				errIs:  quote.ErrInvalidRooms,
			},
			{
				name:   "zero rooms is allowed",
				mutate: func(b *builder.QuoteBuilder) { b.NumberOfRooms = 0 },
			},
			{
				name:   "arrival in the past",
				mutate: func(b *builder.QuoteBuilder) { b.ArrivalDate = b.Now.AddDate(0, 0, -1) },
				errIs:  quote.ErrArrivalInPast,
			},
			{
				name:   "arrival exactly now",
				mutate: func(b *builder.QuoteBuilder) { b.ArrivalDate = b.Now },
				errIs:  quote.ErrArrivalInPast,
			},
		})
	})

	t.Run("rename", func(t *testing.T) {
		q, err := builder.NewQuoteBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, q.Rename("  Imani Clarke  "))
		assert.Equal(t, "Imani Clarke", q.CustomerName())

		assert.ErrorIs(t, q.Rename(" "), quote.ErrEmptyCustomerName)
		assert.Equal(t, "Imani Clarke", q.CustomerName())
	})

	t.Run("pricing state round trip", func(t *testing.T) {
		q, err := builder.NewQuoteBuilder().BuildDomain()
		require.NoError(t, err)

		s := q.PricingState()
		s = quote.Reduce(s, quote.LinkRequested{Seq: 1, PackageID: uuid.New(), PackageName: "P", PackageVersion: 1})
		q.ApplyPricingState(s)

		assert.Equal(t, quote.StatusCalculating, q.SyncStatus())
		require.NotNil(t, q.Linked())
	})
}

func TestValidateArrival(t *testing.T) {
	now := time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)

	assert.NoError(t, quote.ValidateArrival(now.Add(time.Minute), now))
	assert.ErrorIs(t, quote.ValidateArrival(now, now), quote.ErrArrivalInPast)
	assert.ErrorIs(t, quote.ValidateArrival(now.Add(-time.Minute), now), quote.ErrArrivalInPast)
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewQuoteBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
