package repository

import (
	"time"

	"github.com/google/uuid"

	"tourdesk/internal/domain/catalog"
	"tourdesk/internal/domain/quote"
)

// JSONB documents for the pricing table and the linked snapshot. The column
// shape is an infra concern; domain objects are rebuilt through their
// constructors so stored data passes the same validation as fresh input.

type TierDoc struct {
	MinPeople int    `json:"min_people"`
	MaxPeople int    `json:"max_people"`
	Label     string `json:"label"`
}

type DateRangeDoc struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type PricePointDoc struct {
	TierIndex   int    `json:"tier_index"`
	Nights      int    `json:"nights"`
	AmountCents *int64 `json:"amount_cents,omitempty"`
	OnRequest   bool   `json:"on_request,omitempty"`
}

type PeriodDoc struct {
	Label  string          `json:"label"`
	Months []int           `json:"months,omitempty"`
	Ranges []DateRangeDoc  `json:"ranges,omitempty"`
	Points []PricePointDoc `json:"points"`
}

type PricingDoc struct {
	Tiers   []TierDoc   `json:"tiers"`
	Nights  []int       `json:"nights"`
	Periods []PeriodDoc `json:"periods"`
}

func NewPricingDoc(pkg *catalog.Package) PricingDoc {
	tiers := pkg.Tiers()
	doc := PricingDoc{
		Tiers:   make([]TierDoc, 0, len(tiers)),
		Periods: make([]PeriodDoc, 0, len(pkg.Periods())),
	}
	for _, t := range tiers {
		doc.Tiers = append(doc.Tiers, TierDoc{
			MinPeople: t.MinPeople(),
			MaxPeople: t.MaxPeople(),
			Label:     t.Label(),
		})
	}
	for _, d := range pkg.Durations() {
		doc.Nights = append(doc.Nights, d.Nights())
	}
	for _, p := range pkg.Periods() {
		pd := PeriodDoc{Label: p.Label()}
		for _, m := range p.Months() {
			pd.Months = append(pd.Months, int(m))
		}
		for _, r := range p.Ranges() {
			pd.Ranges = append(pd.Ranges, DateRangeDoc{Start: r.Start(), End: r.End()})
		}
		for _, pt := range p.Points() {
			ppd := PricePointDoc{TierIndex: pt.TierIndex(), Nights: pt.Nights()}
			if amount, ok := pt.Price().Amount(); ok {
				cents := amount.Cents()
				ppd.AmountCents = &cents
			} else {
				ppd.OnRequest = true
			}
			pd.Points = append(pd.Points, ppd)
		}
		doc.Periods = append(doc.Periods, pd)
	}
	return doc
}

func (doc PricingDoc) Restore() ([]catalog.GroupSizeTier, []catalog.DurationOption, []catalog.PeriodEntry, error) {
	tiers := make([]catalog.GroupSizeTier, 0, len(doc.Tiers))
	for _, t := range doc.Tiers {
		tier, err := catalog.NewGroupSizeTier(t.MinPeople, t.MaxPeople, t.Label)
		if err != nil {
			return nil, nil, nil, err
		}
		tiers = append(tiers, tier)
	}

	durations := make([]catalog.DurationOption, 0, len(doc.Nights))
	for _, n := range doc.Nights {
		d, err := catalog.NewDurationOption(n)
		if err != nil {
			return nil, nil, nil, err
		}
		durations = append(durations, d)
	}

	periods := make([]catalog.PeriodEntry, 0, len(doc.Periods))
	for _, p := range doc.Periods {
		months := make([]time.Month, 0, len(p.Months))
		for _, m := range p.Months {
			months = append(months, time.Month(m))
		}
		ranges := make([]catalog.DateRange, 0, len(p.Ranges))
		for _, r := range p.Ranges {
			dr, err := catalog.NewDateRange(r.Start, r.End)
			if err != nil {
				return nil, nil, nil, err
			}
			ranges = append(ranges, dr)
		}
		points := make([]catalog.PricePoint, 0, len(p.Points))
		for _, pt := range p.Points {
			var price catalog.Price
			if pt.OnRequest {
				price = catalog.OnRequestPrice()
			} else {
				if pt.AmountCents == nil {
					return nil, nil, nil, catalog.ErrMissingPriceAmount
				}
				amount, err := catalog.NewMoney(*pt.AmountCents)
				if err != nil {
					return nil, nil, nil, err
				}
				price = catalog.NewPrice(amount)
			}
			points = append(points, catalog.NewPricePoint(pt.TierIndex, pt.Nights, price))
		}
		period, err := catalog.NewPeriodEntry(p.Label, months, ranges, points)
		if err != nil {
			return nil, nil, nil, err
		}
		periods = append(periods, period)
	}

	return tiers, durations, periods, nil
}

type SnapshotDoc struct {
	PackageID            uuid.UUID `json:"package_id"`
	PackageName          string    `json:"package_name"`
	PackageVersion       int       `json:"package_version"`
	TierIndex            int       `json:"tier_index"`
	TierLabel            string    `json:"tier_label"`
	PeriodLabel          string    `json:"period_label"`
	SelectedNights       int       `json:"selected_nights"`
	Resolved             bool      `json:"resolved"`
	CalculatedPriceCents *int64    `json:"calculated_price_cents,omitempty"`
	PriceWasOnRequest    bool      `json:"price_was_on_request"`
	Currency             string    `json:"currency,omitempty"`
}

func NewSnapshotDoc(info *quote.LinkedPackageInfo) *SnapshotDoc {
	if info == nil {
		return nil
	}
	doc := &SnapshotDoc{
		PackageID:         info.PackageID,
		PackageName:       info.PackageName,
		PackageVersion:    info.PackageVersion,
		TierIndex:         info.TierIndex,
		TierLabel:         info.TierLabel,
		PeriodLabel:       info.PeriodLabel,
		SelectedNights:    info.SelectedNights,
		Resolved:          info.Resolved(),
		PriceWasOnRequest: info.PriceWasOnRequest,
		Currency:          info.Currency,
	}
	if info.CalculatedPrice != nil {
		if amount, ok := info.CalculatedPrice.Amount(); ok {
			cents := amount.Cents()
			doc.CalculatedPriceCents = &cents
		}
	}
	return doc
}

func (doc *SnapshotDoc) Restore() *quote.LinkedPackageInfo {
	if doc == nil {
		return nil
	}
	info := &quote.LinkedPackageInfo{
		PackageID:         doc.PackageID,
		PackageName:       doc.PackageName,
		PackageVersion:    doc.PackageVersion,
		TierIndex:         doc.TierIndex,
		TierLabel:         doc.TierLabel,
		PeriodLabel:       doc.PeriodLabel,
		SelectedNights:    doc.SelectedNights,
		PriceWasOnRequest: doc.PriceWasOnRequest,
		Currency:          doc.Currency,
	}
	if doc.Resolved {
		var price catalog.Price
		if doc.PriceWasOnRequest {
			price = catalog.OnRequestPrice()
		} else if doc.CalculatedPriceCents != nil {
			price = catalog.NewPrice(catalog.MoneyFromCents(*doc.CalculatedPriceCents))
		}
		info.CalculatedPrice = &price
	}
	return info
}
