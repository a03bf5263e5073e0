package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type TierView struct {
	MinPeople int    `json:"min_people"`
	MaxPeople int    `json:"max_people"`
	Label     string `json:"label"`
}

type DateRangeView struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type PricePointView struct {
	TierIndex  int    `json:"tier_index"`
	Nights     int    `json:"nights"`
	PriceCents *int64 `json:"price_cents,omitempty"`
	OnRequest  bool   `json:"on_request"`
}

type PeriodView struct {
	Label  string           `json:"label"`
	Months []int            `json:"months,omitempty"`
	Ranges []DateRangeView  `json:"ranges,omitempty"`
	Points []PricePointView `json:"points"`
}

type PackageView struct {
	ID        uuid.UUID    `json:"id"`
	Name      string       `json:"name"`
	Version   int          `json:"version"`
	Currency  string       `json:"currency"`
	Tiers     []TierView   `json:"tiers"`
	Durations []int        `json:"durations"`
	Periods   []PeriodView `json:"periods"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

type PackageListItem struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Version   int       `json:"version"`
	Currency  string    `json:"currency"`
	CreatedAt time.Time `json:"created_at"`
}

type LinkedPackageView struct {
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

type BreakdownView struct {
	PerPerson *float64 `json:"per_person,omitempty"`
	PerRoom   *float64 `json:"per_room,omitempty"`
	PerNight  *float64 `json:"per_night,omitempty"`
}

type QuoteView struct {
	ID              uuid.UUID          `json:"id"`
	CustomerName    string             `json:"customer_name"`
	NumberOfPeople  int                `json:"number_of_people"`
	NumberOfNights  int                `json:"number_of_nights"`
	NumberOfRooms   int                `json:"number_of_rooms"`
	ArrivalDate     time.Time          `json:"arrival_date"`
	TotalPriceCents *int64             `json:"total_price_cents,omitempty"`
	SyncStatus      string             `json:"sync_status"`
	ErrorMessage    *string            `json:"error_message,omitempty"`
	LinkedPackage   *LinkedPackageView `json:"linked_package,omitempty"`
	Breakdown       *BreakdownView     `json:"breakdown,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

type QuoteListItem struct {
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
