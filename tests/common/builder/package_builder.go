//go:build unit || e2e

package builder

import (
	"time"

	"tourdesk/internal/domain/catalog"
	reqdto "tourdesk/internal/handler/dto/request"
	"tourdesk/internal/usecase/commands"
	"tourdesk/internal/usecase/queries"
	"tourdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

// PackageBuilder assembles a two-tier package priced for January and a
// summer date range, the shape most pricing tests need.
type PackageBuilder struct {
	Name     string
	Currency string
	Tiers    []reqdto.TierRequest
	Nights   []int
	Periods  []reqdto.PeriodRequest
}

func NewPackageBuilder() *PackageBuilder {
	small := int64(10000)
	large := int64(15000)
	return &PackageBuilder{
		Name:     "Alpine Highlights",
		Currency: "EUR",
		Tiers: []reqdto.TierRequest{
			{MinPeople: 1, MaxPeople: 3, Label: "1-3 people"},
			{MinPeople: 4, MaxPeople: 6, Label: "4-6 people"},
		},
		Nights: []int{3, 7},
		Periods: []reqdto.PeriodRequest{
			{
				Label:  "Winter",
				Months: []int{1, 2},
				Points: []reqdto.PricePointRequest{
					{TierIndex: 0, Nights: 3, AmountCents: &small},
					{TierIndex: 0, Nights: 7, AmountCents: &large},
					{TierIndex: 1, Nights: 3, AmountCents: &large},
					{TierIndex: 1, Nights: 7, OnRequest: true},
				},
			},
		},
	}
}

func (b *PackageBuilder) With(mutate func(*PackageBuilder)) *PackageBuilder {
	mutate(b)
	return b
}

func (b *PackageBuilder) WithPeriod(p reqdto.PeriodRequest) *PackageBuilder {
	b.Periods = append(b.Periods, p)
	return b
}

func (b *PackageBuilder) BuildDomain() (*catalog.Package, error) {
	tiers := make([]catalog.GroupSizeTier, 0, len(b.Tiers))
	for _, t := range b.Tiers {
		tier, err := catalog.NewGroupSizeTier(t.MinPeople, t.MaxPeople, t.Label)
		if err != nil {
			return nil, err
		}
		tiers = append(tiers, tier)
	}

	durations := make([]catalog.DurationOption, 0, len(b.Nights))
	for _, n := range b.Nights {
		d, err := catalog.NewDurationOption(n)
		if err != nil {
			return nil, err
		}
		durations = append(durations, d)
	}

	periods := make([]catalog.PeriodEntry, 0, len(b.Periods))
	for _, p := range b.Periods {
		months := make([]time.Month, 0, len(p.Months))
		for _, m := range p.Months {
			months = append(months, time.Month(m))
		}
		ranges := make([]catalog.DateRange, 0, len(p.Ranges))
		for _, r := range p.Ranges {
			dr, err := catalog.NewDateRange(r.Start, r.End)
			if err != nil {
				return nil, err
			}
			ranges = append(ranges, dr)
		}
		points := make([]catalog.PricePoint, 0, len(p.Points))
		for _, pt := range p.Points {
			var price catalog.Price
			if pt.OnRequest {
				price = catalog.OnRequestPrice()
			} else {
				amount, err := catalog.NewMoney(*pt.AmountCents)
				if err != nil {
					return nil, err
				}
				price = catalog.NewPrice(amount)
			}
			points = append(points, catalog.NewPricePoint(pt.TierIndex, pt.Nights, price))
		}
		period, err := catalog.NewPeriodEntry(p.Label, months, ranges, points)
		if err != nil {
			return nil, err
		}
		periods = append(periods, period)
	}

	return catalog.NewPackage(b.Name, b.Currency, tiers, durations, periods)
}

func (b *PackageBuilder) BuildCreateRequestDTO() reqdto.CreatePackageRequest {
	return reqdto.CreatePackageRequest{
		Name:     b.Name,
		Currency: b.Currency,
		Tiers:    b.Tiers,
		Nights:   b.Nights,
		Periods:  b.Periods,
	}
}

func (b *PackageBuilder) BuildUpdatePricingRequestDTO() reqdto.UpdatePricingRequest {
	return reqdto.UpdatePricingRequest{
		Currency: b.Currency,
		Tiers:    b.Tiers,
		Nights:   b.Nights,
		Periods:  b.Periods,
	}
}

func (b *PackageBuilder) BuildCreateCommand() commands.CreatePackageRequest {
	return b.BuildCreateRequestDTO().ToCommand()
}

func (b *PackageBuilder) BuildView() *queries.PackageView {
	now := time.Now()
	view := &queries.PackageView{
		ID:        uuid.New(),
		Name:      b.Name,
		Version:   1,
		Currency:  b.Currency,
		Durations: b.Nights,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, t := range b.Tiers {
		view.Tiers = append(view.Tiers, queries.TierView{MinPeople: t.MinPeople, MaxPeople: t.MaxPeople, Label: t.Label})
	}
	for _, p := range b.Periods {
		pv := queries.PeriodView{Label: p.Label, Months: p.Months}
		for _, r := range p.Ranges {
			pv.Ranges = append(pv.Ranges, queries.DateRangeView{Start: r.Start, End: r.End})
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
	return view
}

func (b *PackageBuilder) BuildListItem() *queries.PackageListItem {
	return &queries.PackageListItem{
		ID:        uuid.New(),
		Name:      b.Name,
		Version:   1,
		Currency:  b.Currency,
		CreatedAt: time.Now(),
	}
}

func (b *PackageBuilder) BuildSnapshot() *shared.PackageSnapshot {
	return &shared.PackageSnapshot{
		ID:       uuid.New(),
		Name:     b.Name,
		Version:  1,
		Currency: b.Currency,
	}
}
