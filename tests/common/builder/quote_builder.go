//go:build unit || e2e

package builder

import (
	"time"

	"tourdesk/internal/domain/catalog"
	"tourdesk/internal/domain/quote"
	reqdto "tourdesk/internal/handler/dto/request"
	"tourdesk/internal/usecase/commands"
	"tourdesk/internal/usecase/queries"

	"github.com/google/uuid"
)

type QuoteBuilder struct {
	CustomerName     string
	NumberOfPeople   int
	NumberOfNights   int
	NumberOfRooms    int
	ArrivalDate      time.Time
	ManualPriceCents *int64
	Now              time.Time
}

func NewQuoteBuilder() *QuoteBuilder {
	now := time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)
	return &QuoteBuilder{
		CustomerName:   "Dana Whitfield",
		NumberOfPeople: 2,
		NumberOfNights: 3,
		NumberOfRooms:  1,
		ArrivalDate:    now.AddDate(0, 1, 0),
		Now:            now,
	}
}

func (b *QuoteBuilder) With(mutate func(*QuoteBuilder)) *QuoteBuilder {
	mutate(b)
	return b
}

func (b *QuoteBuilder) BuildDomain() (*quote.Quote, error) {
	return quote.NewQuote(b.CustomerName, b.NumberOfPeople, b.NumberOfNights, b.NumberOfRooms, b.ArrivalDate, b.Now)
}

func (b *QuoteBuilder) BuildCreateRequestDTO() reqdto.CreateQuoteRequest {
	return reqdto.CreateQuoteRequest{
		CustomerName:     b.CustomerName,
		NumberOfPeople:   b.NumberOfPeople,
		NumberOfNights:   b.NumberOfNights,
		NumberOfRooms:    b.NumberOfRooms,
		ArrivalDate:      b.ArrivalDate,
		ManualPriceCents: b.ManualPriceCents,
	}
}

func (b *QuoteBuilder) BuildCreateCommand() commands.CreateQuoteRequest {
	return b.BuildCreateRequestDTO().ToCommand()
}

// BuildState returns the dormant pricing state a fresh quote starts from.
func (b *QuoteBuilder) BuildState() quote.State {
	return quote.State{
		Status:  quote.StatusSynced,
		People:  b.NumberOfPeople,
		Nights:  b.NumberOfNights,
		Rooms:   b.NumberOfRooms,
		Arrival: b.ArrivalDate,
	}
}

// BuildLinkedState returns a synced state resolved against a package.
func (b *QuoteBuilder) BuildLinkedState(packageID uuid.UUID, priceCents int64) quote.State {
	s := b.BuildState()
	amount := catalog.MoneyFromCents(priceCents)
	price := catalog.NewPrice(amount)
	s.Linked = &quote.LinkedPackageInfo{
		PackageID:       packageID,
		PackageName:     "Alpine Highlights",
		PackageVersion:  1,
		TierIndex:       0,
		TierLabel:       "1-3 people",
		PeriodLabel:     "Winter",
		SelectedNights:  b.NumberOfNights,
		CalculatedPrice: &price,
		Currency:        "EUR",
	}
	s.TotalPrice = amount
	s.HasPrice = true
	s.LastResolved = &amount
	s.Status = quote.StatusSynced
	return s
}

func (b *QuoteBuilder) BuildView() *queries.QuoteView {
	return &queries.QuoteView{
		ID:              uuid.New(),
		CustomerName:    b.CustomerName,
		NumberOfPeople:  b.NumberOfPeople,
		NumberOfNights:  b.NumberOfNights,
		NumberOfRooms:   b.NumberOfRooms,
		ArrivalDate:     b.ArrivalDate,
		TotalPriceCents: b.ManualPriceCents,
		SyncStatus:      quote.StatusSynced.String(),
		CreatedAt:       b.Now,
		UpdatedAt:       b.Now,
	}
}

func (b *QuoteBuilder) BuildListItem() *queries.QuoteListItem {
	return &queries.QuoteListItem{
		ID:              uuid.New(),
		CustomerName:    b.CustomerName,
		NumberOfPeople:  b.NumberOfPeople,
		NumberOfNights:  b.NumberOfNights,
		ArrivalDate:     b.ArrivalDate,
		TotalPriceCents: b.ManualPriceCents,
		SyncStatus:      quote.StatusSynced.String(),
		CreatedAt:       b.Now,
	}
}
