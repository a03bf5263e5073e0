package catalog

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidTierBounds   = errors.New("tier bounds must satisfy 1 <= min <= max")
	ErrEmptyTierLabel      = errors.New("tier label cannot be empty")
	ErrInvalidDuration     = errors.New("duration must be a positive number of nights")
	ErrDuplicateDuration   = errors.New("duplicate duration option")
	ErrEmptyPeriodLabel    = errors.New("period label cannot be empty")
	ErrPeriodWithoutRule   = errors.New("period needs at least one month or date range")
	ErrInvalidDateRange    = errors.New("date range start must not be after end")
	ErrUnknownTierIndex    = errors.New("price point references an undeclared tier")
	ErrUnknownDuration     = errors.New("price point references an undeclared duration")
	ErrDuplicatePricePoint = errors.New("duplicate price point for tier/nights pair")
)

// GroupSizeTier is an inclusive people-count bracket. Tiers are meant to be
// contiguous and non-overlapping, but resolution tolerates overlap by taking
// the earliest declared match.
type GroupSizeTier struct {
	minPeople int
	maxPeople int
	label     string
}

func NewGroupSizeTier(minPeople, maxPeople int, label string) (GroupSizeTier, error) {
	if minPeople < 1 || maxPeople < minPeople {
		return GroupSizeTier{}, ErrInvalidTierBounds
	}
	label = strings.TrimSpace(label)
	if label == "" {
		return GroupSizeTier{}, ErrEmptyTierLabel
	}
	return GroupSizeTier{minPeople: minPeople, maxPeople: maxPeople, label: label}, nil
}

func (t GroupSizeTier) MinPeople() int { return t.minPeople }
func (t GroupSizeTier) MaxPeople() int { return t.maxPeople }
func (t GroupSizeTier) Label() string  { return t.label }

func (t GroupSizeTier) Contains(people int) bool {
	return people >= t.minPeople && people <= t.maxPeople
}

// DurationOption is a bookable stay length in nights. Lookups match it
// exactly, never by interpolation.
type DurationOption struct {
	nights int
}

func NewDurationOption(nights int) (DurationOption, error) {
	if nights < 1 {
		return DurationOption{}, ErrInvalidDuration
	}
	return DurationOption{nights: nights}, nil
}

func (d DurationOption) Nights() int { return d.nights }

// DateRange is an inclusive calendar window.
type DateRange struct {
	start time.Time
	end   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	if start.After(end) {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{start: truncateToDay(start), end: truncateToDay(end)}, nil
}

func (r DateRange) Start() time.Time { return r.start }
func (r DateRange) End() time.Time   { return r.end }

func (r DateRange) Contains(date time.Time) bool {
	d := truncateToDay(date)
	return !d.Before(r.start) && !d.After(r.end)
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// PricePoint is one cell of the period's price matrix.
type PricePoint struct {
	tierIndex int
	nights    int
	price     Price
}

func NewPricePoint(tierIndex, nights int, price Price) PricePoint {
	return PricePoint{tierIndex: tierIndex, nights: nights, price: price}
}

func (p PricePoint) TierIndex() int { return p.tierIndex }
func (p PricePoint) Nights() int    { return p.nights }
func (p PricePoint) Price() Price   { return p.price }

// PeriodEntry names a pricing window. A date belongs to the period when it
// falls inside one of the explicit ranges, or, absent ranges, when its
// calendar month is listed (year-agnostic).
type PeriodEntry struct {
	label  string
	months []time.Month
	ranges []DateRange
	points []PricePoint
}

func NewPeriodEntry(label string, months []time.Month, ranges []DateRange, points []PricePoint) (PeriodEntry, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return PeriodEntry{}, ErrEmptyPeriodLabel
	}
	if len(months) == 0 && len(ranges) == 0 {
		return PeriodEntry{}, ErrPeriodWithoutRule
	}
	return PeriodEntry{
		label:  label,
		months: append([]time.Month(nil), months...),
		ranges: append([]DateRange(nil), ranges...),
		points: append([]PricePoint(nil), points...),
	}, nil
}

func (p PeriodEntry) Label() string        { return p.label }
func (p PeriodEntry) Months() []time.Month { return append([]time.Month(nil), p.months...) }
func (p PeriodEntry) Ranges() []DateRange  { return append([]DateRange(nil), p.ranges...) }
func (p PeriodEntry) Points() []PricePoint { return append([]PricePoint(nil), p.points...) }

func (p PeriodEntry) Covers(date time.Time) bool {
	if len(p.ranges) > 0 {
		for _, r := range p.ranges {
			if r.Contains(date) {
				return true
			}
		}
		return false
	}
	month := date.Month()
	for _, m := range p.months {
		if m == month {
			return true
		}
	}
	return false
}

// PointFor returns the price point matching the exact (tier, nights) pair.
func (p PeriodEntry) PointFor(tierIndex, nights int) (PricePoint, bool) {
	for _, pt := range p.points {
		if pt.tierIndex == tierIndex && pt.nights == nights {
			return pt, true
		}
	}
	return PricePoint{}, false
}
