package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"tourdesk/internal/domain/catalog"
	"tourdesk/internal/infra"
	"tourdesk/internal/pkg/errs"
	"tourdesk/internal/usecase/shared"
)

type TierInput struct {
	MinPeople int
	MaxPeople int
	Label     string
}

type DateRangeInput struct {
	Start time.Time
	End   time.Time
}

// PricePointInput carries either a cents amount or the on-request marker,
// never both.
type PricePointInput struct {
	TierIndex   int
	Nights      int
	AmountCents *int64
	OnRequest   bool
}

type PeriodInput struct {
	Label  string
	Months []int
	Ranges []DateRangeInput
	Points []PricePointInput
}

type CreatePackageRequest struct {
	Name     string
	Currency string
	Tiers    []TierInput
	Nights   []int
	Periods  []PeriodInput
}

type UpdatePricingRequest struct {
	Currency string
	Tiers    []TierInput
	Nights   []int
	Periods  []PeriodInput
}

type CreatePackageResult struct {
	PackageID uuid.UUID
	Version   int
}

type PackageCommands interface {
	CreatePackage(ctx context.Context, req CreatePackageRequest) (*CreatePackageResult, error)
	UpdatePricing(ctx context.Context, packageID uuid.UUID, req UpdatePricingRequest) (int, error)
	DeletePackage(ctx context.Context, packageID uuid.UUID) error
}

type packageUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewPackageUseCase(uow shared.UnitOfWork) PackageCommands {
	return &packageUseCaseImpl{uow: uow}
}

func (uc *packageUseCaseImpl) CreatePackage(ctx context.Context, req CreatePackageRequest) (*CreatePackageResult, error) {
	tiers, durations, periods, err := buildPricingTable(req.Tiers, req.Nights, req.Periods)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	pkg, err := catalog.NewPackage(req.Name, req.Currency, tiers, durations, periods)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Packages().Create(ctx, tx.DB(), pkg)
	})
	if err != nil {
		return nil, err
	}
	return &CreatePackageResult{PackageID: pkg.ID(), Version: pkg.Version()}, nil
}

// UpdatePricing replaces the whole pricing table and returns the bumped
// version. Linked quotes keep pricing against their snapshot version; the
// next resolution for them reports the version change instead.
func (uc *packageUseCaseImpl) UpdatePricing(ctx context.Context, packageID uuid.UUID, req UpdatePricingRequest) (int, error) {
	tiers, durations, periods, err := buildPricingTable(req.Tiers, req.Nights, req.Periods)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDomainValidation)
	}

	var newVersion int
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		pkg, derr := tx.Packages().FindByID(ctx, tx.DB(), packageID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.ErrPackageNotFound
			}
			return derr
		}
		expected := pkg.Version()
		if derr = pkg.ReplacePricing(req.Currency, tiers, durations, periods); derr != nil {
			return errs.Mark(derr, errs.ErrDomainValidation)
		}
		if derr = tx.Packages().Update(ctx, tx.DB(), pkg, expected); derr != nil {
			if infra.IsKind(derr, infra.KindVersionConflict) {
				return errs.ErrVersionConflict
			}
			return derr
		}
		newVersion = pkg.Version()
		return nil
	})
	if err != nil {
		return 0, err
	}
	return newVersion, nil
}

func (uc *packageUseCaseImpl) DeletePackage(ctx context.Context, packageID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		count, derr := tx.Reads().LinkedQuoteCount(ctx, packageID)
		if derr != nil {
			return derr
		}
		if count > 0 {
			return errs.ErrPackageInUse
		}
		if derr = tx.Packages().Delete(ctx, tx.DB(), packageID); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.ErrPackageNotFound
			}
			return derr
		}
		return nil
	})
}

func buildPricingTable(
	tierInputs []TierInput,
	nightInputs []int,
	periodInputs []PeriodInput,
) ([]catalog.GroupSizeTier, []catalog.DurationOption, []catalog.PeriodEntry, error) {
	tiers := make([]catalog.GroupSizeTier, 0, len(tierInputs))
	for _, in := range tierInputs {
		tier, err := catalog.NewGroupSizeTier(in.MinPeople, in.MaxPeople, in.Label)
		if err != nil {
			return nil, nil, nil, err
		}
		tiers = append(tiers, tier)
	}

	durations := make([]catalog.DurationOption, 0, len(nightInputs))
	for _, nights := range nightInputs {
		d, err := catalog.NewDurationOption(nights)
		if err != nil {
			return nil, nil, nil, err
		}
		durations = append(durations, d)
	}

	periods := make([]catalog.PeriodEntry, 0, len(periodInputs))
	for _, in := range periodInputs {
		months := make([]time.Month, 0, len(in.Months))
		for _, m := range in.Months {
			months = append(months, time.Month(m))
		}
		ranges := make([]catalog.DateRange, 0, len(in.Ranges))
		for _, r := range in.Ranges {
			dr, err := catalog.NewDateRange(r.Start, r.End)
			if err != nil {
				return nil, nil, nil, err
			}
			ranges = append(ranges, dr)
		}
		points := make([]catalog.PricePoint, 0, len(in.Points))
		for _, p := range in.Points {
			price, err := buildPrice(p)
			if err != nil {
				return nil, nil, nil, err
			}
			points = append(points, catalog.NewPricePoint(p.TierIndex, p.Nights, price))
		}
		period, err := catalog.NewPeriodEntry(in.Label, months, ranges, points)
		if err != nil {
			return nil, nil, nil, err
		}
		periods = append(periods, period)
	}

	return tiers, durations, periods, nil
}

func buildPrice(in PricePointInput) (catalog.Price, error) {
	if in.OnRequest {
		return catalog.OnRequestPrice(), nil
	}
	if in.AmountCents == nil {
		return catalog.Price{}, catalog.ErrMissingPriceAmount
	}
	amount, err := catalog.NewMoney(*in.AmountCents)
	if err != nil {
		return catalog.Price{}, err
	}
	return catalog.NewPrice(amount), nil
}
