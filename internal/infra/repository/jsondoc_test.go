//go:build unit

package repository_test

import (
	"testing"

	"tourdesk/internal/domain/catalog"
	"tourdesk/internal/domain/quote"
	"tourdesk/internal/infra/repository"
	"tourdesk/internal/pkg/ptr"
	"tourdesk/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPricingDocRestore(t *testing.T) {
	t.Run("rebuilds the table through domain constructors", func(t *testing.T) {
		pkg, err := builder.NewPackageBuilder().BuildDomain()
		require.NoError(t, err)

		doc := repository.NewPricingDoc(pkg)
		tiers, durations, periods, err := doc.Restore()
		require.NoError(t, err)

		require.Len(t, tiers, 2)
		assert.Equal(t, "1-3 people", tiers[0].Label())
		require.Len(t, durations, 2)
		assert.Equal(t, []int{3, 7}, []int{durations[0].Nights(), durations[1].Nights()})

		require.Len(t, periods, 1)
		points := periods[0].Points()
		require.Len(t, points, 4)
		assert.True(t, points[3].Price().IsOnRequest(), "on-request cell survives the round trip")
		amount, ok := points[0].Price().Amount()
		require.True(t, ok)
		assert.Equal(t, int64(10000), amount.Cents())
	})

	t.Run("rejects stored data that fails domain validation", func(t *testing.T) {
		doc := repository.PricingDoc{
			Tiers:  []repository.TierDoc{{MinPeople: 5, MaxPeople: 2, Label: "inverted"}},
			Nights: []int{3},
		}
		_, _, _, err := doc.Restore()
		assert.Error(t, err)
	})

	t.Run("rejects a numeric point with no amount", func(t *testing.T) {
		doc := repository.PricingDoc{
			Tiers:  []repository.TierDoc{{MinPeople: 1, MaxPeople: 3, Label: "1-3"}},
			Nights: []int{3},
			Periods: []repository.PeriodDoc{{
				Label:  "Winter",
				Months: []int{1},
				Points: []repository.PricePointDoc{{TierIndex: 0, Nights: 3}},
			}},
		}
		_, _, _, err := doc.Restore()
		assert.ErrorIs(t, err, catalog.ErrMissingPriceAmount)
	})
}

func TestSnapshotDocRestore(t *testing.T) {
	t.Run("nil snapshot stays nil both ways", func(t *testing.T) {
		assert.Nil(t, repository.NewSnapshotDoc(nil))
		var doc *repository.SnapshotDoc
		assert.Nil(t, doc.Restore())
	})

	t.Run("numeric resolution round trip", func(t *testing.T) {
		price := catalog.NewPrice(catalog.MoneyFromCents(15000))
		info := &quote.LinkedPackageInfo{
			PackageID:       uuid.New(),
			PackageName:     "Alpine Highlights",
			PackageVersion:  2,
			TierIndex:       1,
			TierLabel:       "4-6 people",
			PeriodLabel:     "Winter",
			SelectedNights:  3,
			CalculatedPrice: &price,
			Currency:        "EUR",
		}

		doc := repository.NewSnapshotDoc(info)
		require.NotNil(t, doc)
		assert.True(t, doc.Resolved)
		assert.Equal(t, ptr.To(int64(15000)), doc.CalculatedPriceCents)

		restored := doc.Restore()
		require.NotNil(t, restored)
		require.NotNil(t, restored.CalculatedPrice)
		amount, ok := restored.CalculatedPrice.Amount()
		require.True(t, ok)
		assert.Equal(t, int64(15000), amount.Cents())
		assert.Equal(t, info.PackageVersion, restored.PackageVersion)
	})

	t.Run("on-request resolution restores without an amount", func(t *testing.T) {
		price := catalog.OnRequestPrice()
		info := &quote.LinkedPackageInfo{
			PackageID:         uuid.New(),
			PackageName:       "Alpine Highlights",
			PackageVersion:    1,
			TierIndex:         1,
			TierLabel:         "4-6 people",
			PeriodLabel:       "Winter",
			SelectedNights:    7,
			CalculatedPrice:   &price,
			PriceWasOnRequest: true,
		}

		doc := repository.NewSnapshotDoc(info)
		require.NotNil(t, doc)
		assert.True(t, doc.Resolved)
		assert.Nil(t, doc.CalculatedPriceCents)

		restored := doc.Restore()
		require.NotNil(t, restored)
		require.NotNil(t, restored.CalculatedPrice)
		assert.True(t, restored.CalculatedPrice.IsOnRequest())
		assert.True(t, restored.PriceWasOnRequest)
	})
}
