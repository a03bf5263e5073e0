//go:build unit

package quote_test

import (
	"testing"

	"tourdesk/internal/domain/catalog"
	"tourdesk/internal/domain/quote"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeBreakdown(t *testing.T) {
	total := catalog.MoneyFromCents(60000) // 600.00

	t.Run("all divisors positive", func(t *testing.T) {
		b := quote.ComputeBreakdown(total, 4, 2, 3)

		require.NotNil(t, b.PerPerson)
		require.NotNil(t, b.PerRoom)
		require.NotNil(t, b.PerNight)
		assert.InDelta(t, 150.0, *b.PerPerson, 1e-9)
		assert.InDelta(t, 300.0, *b.PerRoom, 1e-9)
		assert.InDelta(t, 200.0, *b.PerNight, 1e-9)
	})

	t.Run("zero rooms omits the per room figure", func(t *testing.T) {
		b := quote.ComputeBreakdown(total, 4, 0, 3)

		assert.NotNil(t, b.PerPerson)
		assert.Nil(t, b.PerRoom)
		assert.NotNil(t, b.PerNight)
	})

	t.Run("uneven division keeps full precision", func(t *testing.T) {
		b := quote.ComputeBreakdown(catalog.MoneyFromCents(10000), 3, 1, 1)

		require.NotNil(t, b.PerPerson)
		assert.InDelta(t, 100.0/3.0, *b.PerPerson, 1e-9)
	})
}

func TestBreakdownFor(t *testing.T) {
	t.Run("no breakdown without a priced total", func(t *testing.T) {
		s := quote.State{People: 2, Rooms: 1, Nights: 3}
		assert.Nil(t, quote.BreakdownFor(s))
	})

	t.Run("breakdown for a priced state", func(t *testing.T) {
		s := quote.State{
			People:     2,
			Rooms:      1,
			Nights:     3,
			TotalPrice: catalog.MoneyFromCents(30000),
			HasPrice:   true,
		}
		b := quote.BreakdownFor(s)
		require.NotNil(t, b)
		assert.InDelta(t, 150.0, *b.PerPerson, 1e-9)
	})
}
