//go:build unit

package catalog_test

import (
	"testing"
	"time"

	"tourdesk/internal/domain/catalog"
	"tourdesk/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.PackageBuilder)
	errIs  error
}

func TestPackage(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewPackageBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Alpine Highlights", actual.Name())
		assert.Equal(t, 1, actual.Version())
		assert.Equal(t, "EUR", actual.Currency())
		assert.Len(t, actual.Tiers(), 2)
		assert.Len(t, actual.Durations(), 2)
		assert.Len(t, actual.Periods(), 1)
	})

	t.Run("name and currency validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty name",
				mutate: func(b *builder.PackageBuilder) { b.Name = "" },
				errIs:  catalog.ErrEmptyPackageName,
			},
			{
				name:   "whitespace only name",
				mutate: func(b *builder.PackageBuilder) { b.Name = "   " },
				errIs:  catalog.ErrEmptyPackageName,
			},
			{
				name:   "currency too short",
				mutate: func(b *builder.PackageBuilder) { b.Currency = "EU" },
				errIs:  catalog.ErrInvalidCurrency,
			},
			{
				name:   "lowercase currency is normalized",
				mutate: func(b *builder.PackageBuilder) { b.Currency = "eur" },
			},
		})
	})

	t.Run("pricing table validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "no tiers",
				mutate: func(b *builder.PackageBuilder) { b.Tiers = nil },
				errIs:  catalog.ErrNoTiers,
			},
			{
				name:   "no durations",
				mutate: func(b *builder.PackageBuilder) { b.Nights = nil },
				errIs:  catalog.ErrNoDurations,
			},
			{
				name:   "no periods",
				mutate: func(b *builder.PackageBuilder) { b.Periods = nil },
				errIs:  catalog.ErrNoPeriods,
			},
			{
				name:   "duplicate duration",
				mutate: func(b *builder.PackageBuilder) { b.Nights = []int{3, 3} },
				errIs:  catalog.ErrDuplicateDuration,
			},
			{
				name: "price point references undeclared tier",
				mutate: func(b *builder.PackageBuilder) {
					b.Periods[0].Points[0].TierIndex = 9
				},
				errIs: catalog.ErrUnknownTierIndex,
			},
			{
				name: "price point references undeclared duration",
				mutate: func(b *builder.PackageBuilder) {
					b.Periods[0].Points[0].Nights = 5
				},
				errIs: catalog.ErrUnknownDuration,
			},
			{
				name: "duplicate price point for the same cell",
				mutate: func(b *builder.PackageBuilder) {
					b.Periods[0].Points = append(b.Periods[0].Points, b.Periods[0].Points[0])
				},
				errIs: catalog.ErrDuplicatePricePoint,
			},
		})
	})

	t.Run("ReplacePricing bumps the version", func(t *testing.T) {
		pkg, err := builder.NewPackageBuilder().BuildDomain()
		require.NoError(t, err)

		next, err := builder.NewPackageBuilder().BuildDomain()
		require.NoError(t, err)

		err = pkg.ReplacePricing("USD", next.Tiers(), next.Durations(), next.Periods())
		require.NoError(t, err)

		assert.Equal(t, 2, pkg.Version())
		assert.Equal(t, "USD", pkg.Currency())
	})

	t.Run("ReplacePricing rejects an invalid table without touching state", func(t *testing.T) {
		pkg, err := builder.NewPackageBuilder().BuildDomain()
		require.NoError(t, err)

		err = pkg.ReplacePricing("USD", nil, pkg.Durations(), pkg.Periods())
		require.ErrorIs(t, err, catalog.ErrNoTiers)

		assert.Equal(t, 1, pkg.Version())
		assert.Equal(t, "EUR", pkg.Currency())
	})

	t.Run("HasDuration matches exactly", func(t *testing.T) {
		pkg, err := builder.NewPackageBuilder().BuildDomain()
		require.NoError(t, err)

		assert.True(t, pkg.HasDuration(3))
		assert.True(t, pkg.HasDuration(7))
		assert.False(t, pkg.HasDuration(5))
	})
}

func TestGroupSizeTier(t *testing.T) {
	t.Run("bounds validation", func(t *testing.T) {
		_, err := catalog.NewGroupSizeTier(0, 3, "invalid")
		assert.ErrorIs(t, err, catalog.ErrInvalidTierBounds)

		_, err = catalog.NewGroupSizeTier(4, 3, "inverted")
		assert.ErrorIs(t, err, catalog.ErrInvalidTierBounds)

		_, err = catalog.NewGroupSizeTier(1, 3, "  ")
		assert.ErrorIs(t, err, catalog.ErrEmptyTierLabel)
	})

	t.Run("bounds are inclusive", func(t *testing.T) {
		tier, err := catalog.NewGroupSizeTier(2, 4, "2-4 people")
		require.NoError(t, err)

		assert.False(t, tier.Contains(1))
		assert.True(t, tier.Contains(2))
		assert.True(t, tier.Contains(4))
		assert.False(t, tier.Contains(5))
	})
}

func TestDateRange(t *testing.T) {
	t.Run("start after end is rejected", func(t *testing.T) {
		start := time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC)
		_, err := catalog.NewDateRange(start, start.AddDate(0, 0, -1))
		assert.ErrorIs(t, err, catalog.ErrInvalidDateRange)
	})

	t.Run("contains is inclusive and ignores time of day", func(t *testing.T) {
		start := time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2026, time.July, 31, 0, 0, 0, 0, time.UTC)
		r, err := catalog.NewDateRange(start, end)
		require.NoError(t, err)

		assert.True(t, r.Contains(start))
		assert.True(t, r.Contains(end.Add(23*time.Hour)))
		assert.False(t, r.Contains(start.AddDate(0, 0, -1)))
		assert.False(t, r.Contains(end.AddDate(0, 0, 1)))
	})
}

func TestPeriodEntry(t *testing.T) {
	points := []catalog.PricePoint{catalog.NewPricePoint(0, 3, catalog.OnRequestPrice())}

	t.Run("needs months or ranges", func(t *testing.T) {
		_, err := catalog.NewPeriodEntry("Empty", nil, nil, points)
		assert.ErrorIs(t, err, catalog.ErrPeriodWithoutRule)
	})

	t.Run("month match is year agnostic", func(t *testing.T) {
		period, err := catalog.NewPeriodEntry("January", []time.Month{time.January}, nil, points)
		require.NoError(t, err)

		assert.True(t, period.Covers(time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)))
		assert.True(t, period.Covers(time.Date(2031, time.January, 1, 0, 0, 0, 0, time.UTC)))
		assert.False(t, period.Covers(time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("explicit ranges suppress month matching", func(t *testing.T) {
		r, err := catalog.NewDateRange(
			time.Date(2026, time.December, 20, 0, 0, 0, 0, time.UTC),
			time.Date(2027, time.January, 5, 0, 0, 0, 0, time.UTC),
		)
		require.NoError(t, err)

		period, err := catalog.NewPeriodEntry("Holidays", []time.Month{time.June}, []catalog.DateRange{r}, points)
		require.NoError(t, err)

		assert.True(t, period.Covers(time.Date(2026, time.December, 25, 0, 0, 0, 0, time.UTC)))
		// June is listed but ranges take precedence once present
		assert.False(t, period.Covers(time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)))
	})
}

func TestPrice(t *testing.T) {
	t.Run("negative amounts are rejected", func(t *testing.T) {
		_, err := catalog.NewMoney(-1)
		assert.ErrorIs(t, err, catalog.ErrNegativeAmount)
	})

	t.Run("on request has no numeric amount", func(t *testing.T) {
		p := catalog.OnRequestPrice()
		require.True(t, p.IsOnRequest())

		_, ok := p.Amount()
		assert.False(t, ok)
		assert.Equal(t, "ON_REQUEST", p.String())
	})

	t.Run("fixed price exposes its amount", func(t *testing.T) {
		amount, err := catalog.NewMoney(12345)
		require.NoError(t, err)

		p := catalog.NewPrice(amount)
		require.False(t, p.IsOnRequest())

		got, ok := p.Amount()
		require.True(t, ok)
		assert.Equal(t, int64(12345), got.Cents())
		assert.InDelta(t, 123.45, got.Units(), 1e-9)
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewPackageBuilder().With(c.mutate).BuildDomain()

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
