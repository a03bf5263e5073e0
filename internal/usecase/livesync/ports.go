package livesync

import (
	"context"
	"time"

	"github.com/google/uuid"

	"tourdesk/internal/domain/catalog"
	"tourdesk/internal/domain/quote"
)

// ResolveRequest is the wire contract of the external resolution
// collaborator. PackageVersion pins the snapshot the quote was linked
// against; the collaborator answers PackageVersionChanged when the package
// has been edited since.
type ResolveRequest struct {
	PackageID      uuid.UUID
	PackageVersion int
	NumberOfPeople int
	NumberOfNights int
	ArrivalDate    time.Time
}

type ResolveResponse struct {
	Price       catalog.Price
	TierIndex   int
	TierLabel   string
	PeriodLabel string
	Currency    string
}

// ResolutionClient is the network-like collaborator wrapping the price
// resolution service. Calls may take non-trivial time; there is no hard
// cancellation; an unwanted response is simply ignored.
type ResolutionClient interface {
	Resolve(ctx context.Context, req ResolveRequest) (*ResolveResponse, error)
}

// StateWriter persists machine-owned pricing state.
type StateWriter interface {
	SavePricingState(ctx context.Context, quoteID uuid.UUID, state quote.State) error
}

// StateReads loads the pricing state a session starts from.
type StateReads interface {
	PricingState(ctx context.Context, quoteID uuid.UUID) (quote.State, error)
}
