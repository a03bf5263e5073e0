package request

import (
	"time"

	"tourdesk/internal/usecase/commands"
)

type TierRequest struct {
	MinPeople int    `json:"min_people" binding:"required,min=1"`
	MaxPeople int    `json:"max_people" binding:"required,min=1"`
	Label     string `json:"label" binding:"required"`
}

type DateRangeRequest struct {
	Start time.Time `json:"start" binding:"required"`
	End   time.Time `json:"end" binding:"required"`
}

type PricePointRequest struct {
	TierIndex   int    `json:"tier_index" binding:"min=0"`
	Nights      int    `json:"nights" binding:"required,min=1"`
	AmountCents *int64 `json:"amount_cents,omitempty"`
	OnRequest   bool   `json:"on_request,omitempty"`
}

type PeriodRequest struct {
	Label  string              `json:"label" binding:"required"`
	Months []int               `json:"months,omitempty" binding:"omitempty,dive,min=1,max=12"`
	Ranges []DateRangeRequest  `json:"ranges,omitempty"`
	Points []PricePointRequest `json:"points" binding:"required,dive"`
}

type CreatePackageRequest struct {
	Name     string          `json:"name" binding:"required"`
	Currency string          `json:"currency" binding:"required,len=3"`
	Tiers    []TierRequest   `json:"tiers" binding:"required,min=1,dive"`
	Nights   []int           `json:"nights" binding:"required,min=1,dive,min=1"`
	Periods  []PeriodRequest `json:"periods" binding:"required,min=1,dive"`
}

type UpdatePricingRequest struct {
	Currency string          `json:"currency" binding:"required,len=3"`
	Tiers    []TierRequest   `json:"tiers" binding:"required,min=1,dive"`
	Nights   []int           `json:"nights" binding:"required,min=1,dive,min=1"`
	Periods  []PeriodRequest `json:"periods" binding:"required,min=1,dive"`
}

func (r CreatePackageRequest) ToCommand() commands.CreatePackageRequest {
	return commands.CreatePackageRequest{
		Name:     r.Name,
		Currency: r.Currency,
		Tiers:    toTierInputs(r.Tiers),
		Nights:   r.Nights,
		Periods:  toPeriodInputs(r.Periods),
	}
}

func (r UpdatePricingRequest) ToCommand() commands.UpdatePricingRequest {
	return commands.UpdatePricingRequest{
		Currency: r.Currency,
		Tiers:    toTierInputs(r.Tiers),
		Nights:   r.Nights,
		Periods:  toPeriodInputs(r.Periods),
	}
}

func toTierInputs(tiers []TierRequest) []commands.TierInput {
	out := make([]commands.TierInput, 0, len(tiers))
	for _, t := range tiers {
		out = append(out, commands.TierInput{
			MinPeople: t.MinPeople,
			MaxPeople: t.MaxPeople,
			Label:     t.Label,
		})
	}
	return out
}

func toPeriodInputs(periods []PeriodRequest) []commands.PeriodInput {
	out := make([]commands.PeriodInput, 0, len(periods))
	for _, p := range periods {
		in := commands.PeriodInput{Label: p.Label, Months: p.Months}
		for _, r := range p.Ranges {
			in.Ranges = append(in.Ranges, commands.DateRangeInput{Start: r.Start, End: r.End})
		}
		for _, pt := range p.Points {
			in.Points = append(in.Points, commands.PricePointInput{
				TierIndex:   pt.TierIndex,
				Nights:      pt.Nights,
				AmountCents: pt.AmountCents,
				OnRequest:   pt.OnRequest,
			})
		}
		out = append(out, in)
	}
	return out
}
