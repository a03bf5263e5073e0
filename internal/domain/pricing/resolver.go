package pricing

import (
	"time"

	"tourdesk/internal/domain/catalog"
)

// Resolution is the outcome of a successful price resolution.
type Resolution struct {
	Price       catalog.Price
	TierIndex   int
	TierLabel   string
	PeriodLabel string
	Nights      int
	Currency    string
}

// PerPerson returns the numeric price divided by the people count. It is
// undefined for ON_REQUEST prices and non-positive counts.
func (r Resolution) PerPerson(people int) (float64, bool) {
	amount, ok := r.Price.Amount()
	if !ok || people < 1 {
		return 0, false
	}
	return amount.Units() / float64(people), true
}

// Resolver composes tier, period and lookup into the single entry point the
// resolution collaborator wraps. Resolve is idempotent and side-effect-free:
// identical inputs always yield identical output.
type Resolver struct{}

func NewResolver() *Resolver {
	return &Resolver{}
}

func (r *Resolver) Resolve(pkg *catalog.Package, people, nights int, arrival time.Time) (*Resolution, error) {
	tierIndex, tier, err := ResolveTier(pkg.Tiers(), people)
	if err != nil {
		return nil, err
	}

	period, err := ResolvePeriod(pkg.Periods(), arrival)
	if err != nil {
		return nil, err
	}

	price, err := LookupPrice(period, tierIndex, nights)
	if err != nil {
		return nil, err
	}

	return &Resolution{
		Price:       price,
		TierIndex:   tierIndex,
		TierLabel:   tier.Label(),
		PeriodLabel: period.Label(),
		Nights:      nights,
		Currency:    pkg.Currency(),
	}, nil
}
