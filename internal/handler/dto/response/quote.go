package response

import (
	"time"

	"github.com/google/uuid"

	"tourdesk/internal/domain/quote"
	"tourdesk/internal/usecase/queries"
)

type BreakdownResponse struct {
	PerPerson *float64 `json:"per_person,omitempty"`
	PerRoom   *float64 `json:"per_room,omitempty"`
	PerNight  *float64 `json:"per_night,omitempty"`
}

type LinkedPackageResponse struct {
	PackageID         uuid.UUID `json:"package_id"`
	PackageName       string    `json:"package_name"`
	PackageVersion    int       `json:"package_version"`
	TierIndex         int       `json:"tier_index"`
	TierLabel         string    `json:"tier_label"`
	PeriodLabel       string    `json:"period_label"`
	SelectedNights    int       `json:"selected_nights"`
	CalculatedCents   *int64    `json:"calculated_price_cents,omitempty"`
	PriceWasOnRequest bool      `json:"price_was_on_request"`
	Currency          string    `json:"currency,omitempty"`
}

type QuoteResponse struct {
	ID              uuid.UUID              `json:"id"`
	CustomerName    string                 `json:"customer_name"`
	NumberOfPeople  int                    `json:"number_of_people"`
	NumberOfNights  int                    `json:"number_of_nights"`
	NumberOfRooms   int                    `json:"number_of_rooms"`
	ArrivalDate     time.Time              `json:"arrival_date"`
	TotalPriceCents *int64                 `json:"total_price_cents,omitempty"`
	SyncStatus      string                 `json:"sync_status"`
	ErrorMessage    *string                `json:"error_message,omitempty"`
	LinkedPackage   *LinkedPackageResponse `json:"linked_package,omitempty"`
	Breakdown       *BreakdownResponse     `json:"breakdown,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

type QuoteListItemResponse struct {
	ID              uuid.UUID  `json:"id"`
	CustomerName    string     `json:"customer_name"`
	NumberOfPeople  int        `json:"number_of_people"`
	NumberOfNights  int        `json:"number_of_nights"`
	ArrivalDate     time.Time  `json:"arrival_date"`
	TotalPriceCents *int64     `json:"total_price_cents,omitempty"`
	SyncStatus      string     `json:"sync_status"`
	LinkedPackageID *uuid.UUID `json:"linked_package_id,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// QuoteSyncResponse is returned by the pricing lifecycle endpoints. It
// carries engine-owned state only; full quote detail comes from GET.
type QuoteSyncResponse struct {
	ID              uuid.UUID              `json:"id"`
	NumberOfPeople  int                    `json:"number_of_people"`
	NumberOfNights  int                    `json:"number_of_nights"`
	NumberOfRooms   int                    `json:"number_of_rooms"`
	ArrivalDate     time.Time              `json:"arrival_date"`
	TotalPriceCents *int64                 `json:"total_price_cents,omitempty"`
	SyncStatus      string                 `json:"sync_status"`
	ErrorMessage    *string                `json:"error_message,omitempty"`
	LinkedPackage   *LinkedPackageResponse `json:"linked_package,omitempty"`
	Breakdown       *BreakdownResponse     `json:"breakdown,omitempty"`
}

func FromQuoteView(view *queries.QuoteView) *QuoteResponse {
	resp := &QuoteResponse{
		ID:              view.ID,
		CustomerName:    view.CustomerName,
		NumberOfPeople:  view.NumberOfPeople,
		NumberOfNights:  view.NumberOfNights,
		NumberOfRooms:   view.NumberOfRooms,
		ArrivalDate:     view.ArrivalDate,
		TotalPriceCents: view.TotalPriceCents,
		SyncStatus:      view.SyncStatus,
		ErrorMessage:    view.ErrorMessage,
		CreatedAt:       view.CreatedAt,
		UpdatedAt:       view.UpdatedAt,
	}
	if view.LinkedPackage != nil {
		lp := LinkedPackageResponse(*view.LinkedPackage)
		resp.LinkedPackage = &lp
	}
	if view.Breakdown != nil {
		resp.Breakdown = &BreakdownResponse{
			PerPerson: view.Breakdown.PerPerson,
			PerRoom:   view.Breakdown.PerRoom,
			PerNight:  view.Breakdown.PerNight,
		}
	}
	return resp
}

func FromQuoteList(items []*queries.QuoteListItem) []*QuoteListItemResponse {
	out := make([]*QuoteListItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, &QuoteListItemResponse{
			ID:              item.ID,
			CustomerName:    item.CustomerName,
			NumberOfPeople:  item.NumberOfPeople,
			NumberOfNights:  item.NumberOfNights,
			ArrivalDate:     item.ArrivalDate,
			TotalPriceCents: item.TotalPriceCents,
			SyncStatus:      item.SyncStatus,
			LinkedPackageID: item.LinkedPackageID,
			CreatedAt:       item.CreatedAt,
		})
	}
	return out
}

// FromPricingState renders live engine state without a read-side round trip,
// so lifecycle responses cannot be staler than the state they acknowledge.
func FromPricingState(quoteID uuid.UUID, st quote.State) *QuoteSyncResponse {
	resp := &QuoteSyncResponse{
		ID:             quoteID,
		NumberOfPeople: st.People,
		NumberOfNights: st.Nights,
		NumberOfRooms:  st.Rooms,
		ArrivalDate:    st.Arrival,
		SyncStatus:     st.Status.String(),
	}
	if st.HasPrice {
		cents := st.TotalPrice.Cents()
		resp.TotalPriceCents = &cents
	}
	if st.ErrorMessage != "" {
		msg := st.ErrorMessage
		resp.ErrorMessage = &msg
	}
	if st.Linked != nil {
		lp := &LinkedPackageResponse{
			PackageID:         st.Linked.PackageID,
			PackageName:       st.Linked.PackageName,
			PackageVersion:    st.Linked.PackageVersion,
			TierIndex:         st.Linked.TierIndex,
			TierLabel:         st.Linked.TierLabel,
			PeriodLabel:       st.Linked.PeriodLabel,
			SelectedNights:    st.Linked.SelectedNights,
			PriceWasOnRequest: st.Linked.PriceWasOnRequest,
			Currency:          st.Linked.Currency,
		}
		if st.Linked.CalculatedPrice != nil {
			if amount, ok := st.Linked.CalculatedPrice.Amount(); ok {
				cents := amount.Cents()
				lp.CalculatedCents = &cents
			}
		}
		resp.LinkedPackage = lp
	}
	if b := quote.BreakdownFor(st); b != nil {
		resp.Breakdown = &BreakdownResponse{
			PerPerson: b.PerPerson,
			PerRoom:   b.PerRoom,
			PerNight:  b.PerNight,
		}
	}
	return resp
}
