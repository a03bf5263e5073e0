package request

import (
	"time"

	"github.com/google/uuid"

	"tourdesk/internal/usecase/commands"
)

type CreateQuoteRequest struct {
	CustomerName     string    `json:"customer_name" binding:"required"`
	NumberOfPeople   int       `json:"number_of_people" binding:"required,min=1"`
	NumberOfNights   int       `json:"number_of_nights" binding:"required,min=1"`
	NumberOfRooms    int       `json:"number_of_rooms" binding:"min=0"`
	ArrivalDate      time.Time `json:"arrival_date" binding:"required"`
	ManualPriceCents *int64    `json:"manual_price_cents,omitempty" binding:"omitempty,min=0"`
}

type UpdateQuoteRequest struct {
	CustomerName   *string    `json:"customer_name,omitempty"`
	NumberOfPeople *int       `json:"number_of_people,omitempty" binding:"omitempty,min=1"`
	NumberOfNights *int       `json:"number_of_nights,omitempty" binding:"omitempty,min=1"`
	NumberOfRooms  *int       `json:"number_of_rooms,omitempty" binding:"omitempty,min=0"`
	ArrivalDate    *time.Time `json:"arrival_date,omitempty"`
}

type SetManualPriceRequest struct {
	AmountCents int64 `json:"amount_cents" binding:"min=0"`
}

type LinkPackageRequest struct {
	PackageID uuid.UUID `json:"package_id" binding:"required"`
}

func (r CreateQuoteRequest) ToCommand() commands.CreateQuoteRequest {
	return commands.CreateQuoteRequest{
		CustomerName:     r.CustomerName,
		NumberOfPeople:   r.NumberOfPeople,
		NumberOfNights:   r.NumberOfNights,
		NumberOfRooms:    r.NumberOfRooms,
		ArrivalDate:      r.ArrivalDate,
		ManualPriceCents: r.ManualPriceCents,
	}
}

func (r UpdateQuoteRequest) ToCommand() commands.UpdateQuoteRequest {
	return commands.UpdateQuoteRequest{
		CustomerName:   r.CustomerName,
		NumberOfPeople: r.NumberOfPeople,
		NumberOfNights: r.NumberOfNights,
		NumberOfRooms:  r.NumberOfRooms,
		ArrivalDate:    r.ArrivalDate,
	}
}
