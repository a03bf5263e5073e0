package livesync

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"tourdesk/internal/domain/catalog"
	"tourdesk/internal/domain/pricing"
	"tourdesk/internal/domain/quote"
)

// Config tunes a session's timing behavior.
type Config struct {
	// DebounceWindow coalesces bursts of parameter edits into one
	// resolution request issued after a quiet period.
	DebounceWindow time.Duration
	// ResolveTimeout bounds a single resolution call.
	ResolveTimeout time.Duration
}

// Session owns one quote's pricing state and serializes every mutation of
// totalPrice, syncStatus and the linked snapshot through the pure reducer.
//
// Races between overlapping resolutions are settled by a generation counter:
// each issued request gets the next sequence number, and a response is
// applied only while its number is still the latest. A newer trigger
// supersedes an in-flight request; the superseded response is discarded on
// arrival, never applied.
type Session struct {
	quoteID  uuid.UUID
	resolver ResolutionClient
	writer   StateWriter
	cfg      Config
	logger   *slog.Logger

	mu       sync.Mutex
	state    quote.State
	seq      uint64
	inFlight bool
	timer    *time.Timer
	pending  bool
	settleCh chan struct{}
}

func newSession(quoteID uuid.UUID, initial quote.State, resolver ResolutionClient, writer StateWriter, cfg Config, logger *slog.Logger) *Session {
	initial.Generation = 0
	if initial.Status == quote.StatusCalculating {
		// A crash mid-resolution must not leave the machine stuck; the
		// request it was waiting for is gone.
		initial.Status = quote.StatusOutOfSync
	}
	return &Session{
		quoteID:  quoteID,
		resolver: resolver,
		writer:   writer,
		cfg:      cfg,
		logger:   logger,
		state:    initial,
	}
}

// State returns the current pricing state.
func (s *Session) State() quote.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Link attaches a package and triggers the initial resolution.
func (s *Session) Link(ctx context.Context, packageID uuid.UUID, packageName string, packageVersion int) (quote.State, error) {
	s.mu.Lock()
	s.cancelDebounceLocked()
	s.seq++
	s.state = quote.Reduce(s.state, quote.LinkRequested{
		Seq:            s.seq,
		PackageID:      packageID,
		PackageName:    packageName,
		PackageVersion: packageVersion,
	})
	s.dispatchLocked()
	st := s.state
	s.mu.Unlock()

	return st, s.persist(ctx, st)
}

// SetParameters applies an edit to people/nights/rooms/arrival. While linked
// and not overridden this marks the price out-of-sync and schedules a
// debounced recomputation.
func (s *Session) SetParameters(ctx context.Context, people, nights, rooms int, arrival time.Time) (quote.State, error) {
	s.mu.Lock()
	s.state = quote.Reduce(s.state, quote.ParametersChanged{
		People:  people,
		Nights:  nights,
		Rooms:   rooms,
		Arrival: arrival,
	})
	if !s.state.Dormant() && s.state.Status == quote.StatusOutOfSync {
		s.scheduleDebounceLocked()
	}
	st := s.state
	s.mu.Unlock()

	return st, s.persist(ctx, st)
}

// SetManualPrice records a human-entered total. An override cancels any
// scheduled recomputation; leaving custom takes an explicit Recalculate or
// ResetToCalculated.
func (s *Session) SetManualPrice(ctx context.Context, price catalog.Money) (quote.State, error) {
	s.mu.Lock()
	s.state = quote.Reduce(s.state, quote.ManualPriceSet{Price: price})
	if s.state.Status == quote.StatusCustom {
		s.cancelDebounceLocked()
		s.broadcastSettleLocked()
	}
	st := s.state
	s.mu.Unlock()

	return st, s.persist(ctx, st)
}

// Recalculate issues an immediate resolution with current parameters, also
// valid from custom and error states.
func (s *Session) Recalculate(ctx context.Context) (quote.State, error) {
	return s.resolveNow(ctx)
}

// ResetToCalculated abandons a manual override and re-derives the price.
func (s *Session) ResetToCalculated(ctx context.Context) (quote.State, error) {
	return s.resolveNow(ctx)
}

// Unlink detaches the package, retaining every other quote field verbatim.
func (s *Session) Unlink(ctx context.Context) (quote.State, error) {
	s.mu.Lock()
	s.cancelDebounceLocked()
	s.state = quote.Reduce(s.state, quote.Unlinked{})
	s.broadcastSettleLocked()
	st := s.state
	s.mu.Unlock()

	return st, s.persist(ctx, st)
}

// WaitSettled blocks until no resolution is in flight and no debounce is
// pending, then returns the settled state. The context bounds the wait.
func (s *Session) WaitSettled(ctx context.Context) (quote.State, error) {
	for {
		s.mu.Lock()
		if !s.inFlight && !s.pending {
			st := s.state
			s.mu.Unlock()
			return st, nil
		}
		if s.settleCh == nil {
			s.settleCh = make(chan struct{})
		}
		ch := s.settleCh
		s.mu.Unlock()

		select {
		case <-ch:
		case <-ctx.Done():
			return quote.State{}, ctx.Err()
		}
	}
}

func (s *Session) resolveNow(ctx context.Context) (quote.State, error) {
	s.mu.Lock()
	if s.state.Dormant() {
		st := s.state
		s.mu.Unlock()
		return st, nil
	}
	s.cancelDebounceLocked()
	s.seq++
	s.state = quote.Reduce(s.state, quote.ResolutionRequested{Seq: s.seq})
	s.dispatchLocked()
	st := s.state
	s.mu.Unlock()

	return st, s.persist(ctx, st)
}

// scheduleDebounceLocked (re)arms the quiet-period timer.
func (s *Session) scheduleDebounceLocked() {
	s.pending = true
	if s.timer != nil {
		s.timer.Reset(s.cfg.DebounceWindow)
		return
	}
	s.timer = time.AfterFunc(s.cfg.DebounceWindow, s.debounceFired)
}

func (s *Session) cancelDebounceLocked() {
	if s.timer != nil {
		s.timer.Stop()
	}
	s.pending = false
}

func (s *Session) debounceFired() {
	s.mu.Lock()
	if !s.pending {
		s.mu.Unlock()
		return
	}
	s.pending = false
	if s.state.Dormant() || s.state.Status == quote.StatusCustom {
		s.broadcastSettleLocked()
		s.mu.Unlock()
		return
	}
	s.seq++
	s.state = quote.Reduce(s.state, quote.ResolutionRequested{Seq: s.seq})
	s.dispatchLocked()
	st := s.state
	s.mu.Unlock()

	s.persistBackground(st)
}

// dispatchLocked launches the resolution for the state's current generation.
func (s *Session) dispatchLocked() {
	linked := s.state.Linked
	req := ResolveRequest{
		PackageID:      linked.PackageID,
		PackageVersion: linked.PackageVersion,
		NumberOfPeople: s.state.People,
		NumberOfNights: s.state.Nights,
		ArrivalDate:    s.state.Arrival,
	}
	s.inFlight = true
	go s.runResolve(s.seq, req)
}

func (s *Session) runResolve(seq uint64, req ResolveRequest) {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ResolveTimeout)
	defer cancel()

	resp, err := s.resolver.Resolve(ctx, req)

	s.mu.Lock()
	if seq != s.seq {
		// Superseded while in flight; a newer request owns the state now.
		s.mu.Unlock()
		return
	}
	s.inFlight = false
	if err != nil {
		s.state = quote.Reduce(s.state, quote.ResolutionFailed{
			Seq:     seq,
			Message: resolutionMessage(err),
		})
	} else {
		s.state = quote.Reduce(s.state, quote.ResolutionSucceeded{
			Seq:         seq,
			Price:       resp.Price,
			TierIndex:   resp.TierIndex,
			TierLabel:   resp.TierLabel,
			PeriodLabel: resp.PeriodLabel,
			Nights:      req.NumberOfNights,
			Currency:    resp.Currency,
		})
	}
	s.broadcastSettleLocked()
	st := s.state
	s.mu.Unlock()

	s.persistBackground(st)
}

func (s *Session) broadcastSettleLocked() {
	if s.settleCh != nil && !s.inFlight && !s.pending {
		close(s.settleCh)
		s.settleCh = nil
	}
}

func (s *Session) persist(ctx context.Context, st quote.State) error {
	if err := s.writer.SavePricingState(ctx, s.quoteID, st); err != nil {
		return err
	}
	return nil
}

func (s *Session) persistBackground(st quote.State) {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ResolveTimeout)
	defer cancel()
	if err := s.writer.SavePricingState(ctx, s.quoteID, st); err != nil {
		s.logger.Error("failed to persist pricing state", "quote_id", s.quoteID, "error", err)
	}
}

func resolutionMessage(err error) string {
	switch pricing.KindOf(err) {
	case pricing.KindNoMatchingTier:
		return "no pricing tier matches the number of people"
	case pricing.KindNoMatchingPeriod:
		return "no pricing period covers the arrival date"
	case pricing.KindNoPriceForCombination:
		return "no price is defined for this tier, period and nights combination"
	case pricing.KindPackageNotFound:
		return "the linked package no longer exists"
	case pricing.KindPackageVersionChanged:
		return "the linked package was edited since linking"
	default:
		return "price resolution failed: " + err.Error()
	}
}
