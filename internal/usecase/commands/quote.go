package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"tourdesk/internal/domain/catalog"
	"tourdesk/internal/domain/quote"
	"tourdesk/internal/infra"
	"tourdesk/internal/pkg/clock"
	"tourdesk/internal/pkg/errs"
	"tourdesk/internal/pkg/patch"
	"tourdesk/internal/usecase/livesync"
	"tourdesk/internal/usecase/shared"
)

type CreateQuoteRequest struct {
	CustomerName     string
	NumberOfPeople   int
	NumberOfNights   int
	NumberOfRooms    int
	ArrivalDate      time.Time
	ManualPriceCents *int64
}

// UpdateQuoteRequest carries a partial edit; nil fields keep their current
// value.
type UpdateQuoteRequest struct {
	CustomerName   *string
	NumberOfPeople *int
	NumberOfNights *int
	NumberOfRooms  *int
	ArrivalDate    *time.Time
}

type CreateQuoteResult struct {
	QuoteID uuid.UUID
}

type QuoteCommands interface {
	CreateQuote(ctx context.Context, req CreateQuoteRequest) (*CreateQuoteResult, error)
	UpdateQuote(ctx context.Context, quoteID uuid.UUID, req UpdateQuoteRequest) (quote.State, error)
	SetManualPrice(ctx context.Context, quoteID uuid.UUID, amountCents int64) (quote.State, error)
	LinkPackage(ctx context.Context, quoteID, packageID uuid.UUID) (quote.State, error)
	UnlinkPackage(ctx context.Context, quoteID uuid.UUID) (quote.State, error)
	Recalculate(ctx context.Context, quoteID uuid.UUID) (quote.State, error)
	ResetToCalculated(ctx context.Context, quoteID uuid.UUID) (quote.State, error)
	DeleteQuote(ctx context.Context, quoteID uuid.UUID) error
}

type quoteUseCaseImpl struct {
	uow      shared.UnitOfWork
	sessions *livesync.Manager
	clock    clock.Clock
}

func NewQuoteUseCase(uow shared.UnitOfWork, sessions *livesync.Manager, clk clock.Clock) QuoteCommands {
	return &quoteUseCaseImpl{uow: uow, sessions: sessions, clock: clk}
}

func (uc *quoteUseCaseImpl) CreateQuote(ctx context.Context, req CreateQuoteRequest) (*CreateQuoteResult, error) {
	q, err := quote.NewQuote(
		req.CustomerName,
		req.NumberOfPeople,
		req.NumberOfNights,
		req.NumberOfRooms,
		req.ArrivalDate,
		uc.clock.Now(),
	)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if req.ManualPriceCents != nil {
		price, merr := catalog.NewMoney(*req.ManualPriceCents)
		if merr != nil {
			return nil, errs.Mark(merr, errs.ErrDomainValidation)
		}
		q.ApplyPricingState(quote.Reduce(q.PricingState(), quote.ManualPriceSet{Price: price}))
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Quotes().Create(ctx, tx.DB(), q, uc.clock.Now())
	})
	if err != nil {
		return nil, err
	}
	return &CreateQuoteResult{QuoteID: q.ID()}, nil
}

// UpdateQuote applies a partial edit. Parameter changes go through the live
// session, so a linked quote comes back out-of-sync with a debounced
// recomputation already scheduled.
func (uc *quoteUseCaseImpl) UpdateQuote(ctx context.Context, quoteID uuid.UUID, req UpdateQuoteRequest) (quote.State, error) {
	session, err := uc.session(ctx, quoteID)
	if err != nil {
		return quote.State{}, err
	}

	current := session.State()
	people := patch.Coalesce(req.NumberOfPeople, current.People)
	nights := patch.Coalesce(req.NumberOfNights, current.Nights)
	rooms := patch.Coalesce(req.NumberOfRooms, current.Rooms)
	arrival := patch.Coalesce(req.ArrivalDate, current.Arrival)

	if err = quote.ValidateParameters(people, nights, rooms); err != nil {
		return quote.State{}, errs.Mark(err, errs.ErrDomainValidation)
	}
	if req.ArrivalDate != nil {
		if err = quote.ValidateArrival(arrival, uc.clock.Now()); err != nil {
			return quote.State{}, errs.Mark(err, errs.ErrArrivalInPast)
		}
	}

	if req.CustomerName != nil {
		err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Quotes().Rename(ctx, tx.DB(), quoteID, *req.CustomerName, uc.clock.Now())
		})
		if err != nil {
			return quote.State{}, err
		}
	}

	return session.SetParameters(ctx, people, nights, rooms, arrival)
}

func (uc *quoteUseCaseImpl) SetManualPrice(ctx context.Context, quoteID uuid.UUID, amountCents int64) (quote.State, error) {
	price, err := catalog.NewMoney(amountCents)
	if err != nil {
		return quote.State{}, errs.Mark(err, errs.ErrDomainValidation)
	}

	session, err := uc.session(ctx, quoteID)
	if err != nil {
		return quote.State{}, err
	}
	return session.SetManualPrice(ctx, price)
}

// LinkPackage attaches a package and waits for the triggered resolution to
// settle, so the caller sees the synced (or error) outcome rather than a
// transient calculating state. The request context bounds the wait.
func (uc *quoteUseCaseImpl) LinkPackage(ctx context.Context, quoteID, packageID uuid.UUID) (quote.State, error) {
	pkg, err := uc.uow.CommandReads().PackageByID(ctx, packageID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return quote.State{}, errs.ErrPackageNotFound
		}
		return quote.State{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	session, err := uc.session(ctx, quoteID)
	if err != nil {
		return quote.State{}, err
	}

	if _, err = session.Link(ctx, pkg.ID, pkg.Name, pkg.Version); err != nil {
		return quote.State{}, err
	}
	return session.WaitSettled(ctx)
}

func (uc *quoteUseCaseImpl) UnlinkPackage(ctx context.Context, quoteID uuid.UUID) (quote.State, error) {
	session, err := uc.session(ctx, quoteID)
	if err != nil {
		return quote.State{}, err
	}
	return session.Unlink(ctx)
}

func (uc *quoteUseCaseImpl) Recalculate(ctx context.Context, quoteID uuid.UUID) (quote.State, error) {
	session, err := uc.session(ctx, quoteID)
	if err != nil {
		return quote.State{}, err
	}
	if session.State().Dormant() {
		return quote.State{}, errs.ErrQuoteNotLinked
	}
	return session.Recalculate(ctx)
}

func (uc *quoteUseCaseImpl) ResetToCalculated(ctx context.Context, quoteID uuid.UUID) (quote.State, error) {
	session, err := uc.session(ctx, quoteID)
	if err != nil {
		return quote.State{}, err
	}
	if session.State().Dormant() {
		return quote.State{}, errs.ErrQuoteNotLinked
	}
	return session.ResetToCalculated(ctx)
}

func (uc *quoteUseCaseImpl) DeleteQuote(ctx context.Context, quoteID uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().QuoteByID(ctx, quoteID); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.ErrQuoteNotFound
			}
			return derr
		}
		return tx.Quotes().Delete(ctx, tx.DB(), quoteID)
	})
	if err != nil {
		return err
	}
	uc.sessions.Evict(quoteID)
	return nil
}

func (uc *quoteUseCaseImpl) session(ctx context.Context, quoteID uuid.UUID) (*livesync.Session, error) {
	session, err := uc.sessions.Session(ctx, quoteID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrQuoteNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return session, nil
}
