package catalog

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyPackageName = errors.New("package name cannot be empty")
	ErrInvalidCurrency  = errors.New("currency must be a three-letter code")
	ErrNoTiers          = errors.New("package needs at least one group size tier")
	ErrNoDurations      = errors.New("package needs at least one duration option")
	ErrNoPeriods        = errors.New("package needs at least one pricing period")
)

// Package is a reusable tour offering with tiered, period-based pricing.
// Version is bumped on every pricing edit; quotes snapshot the version they
// were priced against and never follow later edits.
type Package struct {
	id        uuid.UUID
	name      string
	version   int
	currency  string
	tiers     []GroupSizeTier
	durations []DurationOption
	periods   []PeriodEntry
	createdAt time.Time
	updatedAt time.Time
}

func NewPackage(
	name string,
	currency string,
	tiers []GroupSizeTier,
	durations []DurationOption,
	periods []PeriodEntry,
) (*Package, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyPackageName
	}
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if len(currency) != 3 {
		return nil, ErrInvalidCurrency
	}
	if err := validatePricingTable(tiers, durations, periods); err != nil {
		return nil, err
	}

	return &Package{
		id:        uuid.New(),
		name:      name,
		version:   1,
		currency:  currency,
		tiers:     append([]GroupSizeTier(nil), tiers...),
		durations: append([]DurationOption(nil), durations...),
		periods:   append([]PeriodEntry(nil), periods...),
	}, nil
}

func ReconstructPackage(
	id uuid.UUID,
	name string,
	version int,
	currency string,
	tiers []GroupSizeTier,
	durations []DurationOption,
	periods []PeriodEntry,
	createdAt, updatedAt time.Time,
) *Package {
	return &Package{
		id:        id,
		name:      name,
		version:   version,
		currency:  currency,
		tiers:     tiers,
		durations: durations,
		periods:   periods,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (p *Package) ID() uuid.UUID               { return p.id }
func (p *Package) Name() string                { return p.name }
func (p *Package) Version() int                { return p.version }
func (p *Package) Currency() string            { return p.currency }
func (p *Package) Tiers() []GroupSizeTier      { return append([]GroupSizeTier(nil), p.tiers...) }
func (p *Package) Durations() []DurationOption { return append([]DurationOption(nil), p.durations...) }
func (p *Package) Periods() []PeriodEntry      { return append([]PeriodEntry(nil), p.periods...) }
func (p *Package) CreatedAt() time.Time        { return p.createdAt }
func (p *Package) UpdatedAt() time.Time        { return p.updatedAt }

// ReplacePricing swaps the whole pricing table and bumps the version.
func (p *Package) ReplacePricing(
	currency string,
	tiers []GroupSizeTier,
	durations []DurationOption,
	periods []PeriodEntry,
) error {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if len(currency) != 3 {
		return ErrInvalidCurrency
	}
	if err := validatePricingTable(tiers, durations, periods); err != nil {
		return err
	}

	p.currency = currency
	p.tiers = append([]GroupSizeTier(nil), tiers...)
	p.durations = append([]DurationOption(nil), durations...)
	p.periods = append([]PeriodEntry(nil), periods...)
	p.version++
	return nil
}

func (p *Package) HasDuration(nights int) bool {
	for _, d := range p.durations {
		if d.Nights() == nights {
			return true
		}
	}
	return false
}

func validatePricingTable(tiers []GroupSizeTier, durations []DurationOption, periods []PeriodEntry) error {
	if len(tiers) == 0 {
		return ErrNoTiers
	}
	if len(durations) == 0 {
		return ErrNoDurations
	}
	if len(periods) == 0 {
		return ErrNoPeriods
	}

	nights := make(map[int]struct{}, len(durations))
	for _, d := range durations {
		if _, dup := nights[d.Nights()]; dup {
			return ErrDuplicateDuration
		}
		nights[d.Nights()] = struct{}{}
	}

	for _, period := range periods {
		seen := make(map[[2]int]struct{})
		for _, pt := range period.Points() {
			if pt.TierIndex() < 0 || pt.TierIndex() >= len(tiers) {
				return ErrUnknownTierIndex
			}
			if _, ok := nights[pt.Nights()]; !ok {
				return ErrUnknownDuration
			}
			key := [2]int{pt.TierIndex(), pt.Nights()}
			if _, dup := seen[key]; dup {
				return ErrDuplicatePricePoint
			}
			seen[key] = struct{}{}
		}
	}
	return nil
}
