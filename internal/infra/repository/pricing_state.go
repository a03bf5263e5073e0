package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"tourdesk/internal/domain/quote"
	"tourdesk/internal/pkg/clock"
)

// PricingStateStore is the pool-backed persistence the livesync engine
// writes through. Engine writes happen outside any caller transaction; the
// session is the only writer per quote, so last-write-wins is safe here.
type PricingStateStore struct {
	pool   *pgxpool.Pool
	quotes *QuoteRepository
	clock  clock.Clock
}

func NewPricingStateStore(pool *pgxpool.Pool, quotes *QuoteRepository, clk clock.Clock) *PricingStateStore {
	return &PricingStateStore{pool: pool, quotes: quotes, clock: clk}
}

func (s *PricingStateStore) SavePricingState(ctx context.Context, quoteID uuid.UUID, state quote.State) error {
	return s.quotes.SavePricingState(ctx, s.pool, quoteID, state, s.clock.Now())
}

func (s *PricingStateStore) PricingState(ctx context.Context, quoteID uuid.UUID) (quote.State, error) {
	return s.quotes.FindPricingState(ctx, s.pool, quoteID)
}
