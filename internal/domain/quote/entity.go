package quote

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"tourdesk/internal/domain/catalog"
)

var (
	ErrEmptyCustomerName = errors.New("customer name cannot be empty")
	ErrInvalidPeople     = errors.New("number of people must be positive")
	ErrInvalidNights     = errors.New("number of nights must be positive")
	ErrInvalidRooms      = errors.New("number of rooms cannot be negative")
	ErrArrivalInPast     = errors.New("arrival date must be in the future")
)

// Quote is a priced offer a staff member builds for a customer. Its pricing
// fields (total price, sync status, linked snapshot) are owned by the
// synchronization machine and written back through ApplyPricingState.
type Quote struct {
	id           uuid.UUID
	customerName string
	state        State
	createdAt    time.Time
	updatedAt    time.Time
}

// NewQuote creates an unlinked quote. The arrival date must lie in the future
// relative to now (booking time, not resolution time); the period resolver
// itself never looks at the clock.
func NewQuote(customerName string, people, nights, rooms int, arrival time.Time, now time.Time) (*Quote, error) {
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return nil, ErrEmptyCustomerName
	}
	if err := ValidateParameters(people, nights, rooms); err != nil {
		return nil, err
	}
	if err := ValidateArrival(arrival, now); err != nil {
		return nil, err
	}

	return &Quote{
		id:           uuid.New(),
		customerName: customerName,
		state: State{
			Status:  StatusSynced,
			People:  people,
			Nights:  nights,
			Rooms:   rooms,
			Arrival: arrival,
		},
	}, nil
}

func ReconstructQuote(
	id uuid.UUID,
	customerName string,
	state State,
	createdAt, updatedAt time.Time,
) *Quote {
	return &Quote{
		id:           id,
		customerName: customerName,
		state:        state,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func ValidateParameters(people, nights, rooms int) error {
	if people < 1 {
		return ErrInvalidPeople
	}
	if nights < 1 {
		return ErrInvalidNights
	}
	if rooms < 0 {
		return ErrInvalidRooms
	}
	return nil
}

func ValidateArrival(arrival, now time.Time) error {
	if !arrival.After(now) {
		return ErrArrivalInPast
	}
	return nil
}

func (q *Quote) ID() uuid.UUID              { return q.id }
func (q *Quote) CustomerName() string       { return q.customerName }
func (q *Quote) People() int                { return q.state.People }
func (q *Quote) Nights() int                { return q.state.Nights }
func (q *Quote) Rooms() int                 { return q.state.Rooms }
func (q *Quote) Arrival() time.Time         { return q.state.Arrival }
func (q *Quote) TotalPrice() catalog.Money  { return q.state.TotalPrice }
func (q *Quote) HasPrice() bool             { return q.state.HasPrice }
func (q *Quote) SyncStatus() SyncStatus     { return q.state.Status }
func (q *Quote) Linked() *LinkedPackageInfo { return q.state.Linked }
func (q *Quote) ErrorMessage() string       { return q.state.ErrorMessage }
func (q *Quote) CreatedAt() time.Time       { return q.createdAt }
func (q *Quote) UpdatedAt() time.Time       { return q.updatedAt }

// PricingState returns the machine-owned state for the livesync engine.
func (q *Quote) PricingState() State {
	return q.state
}

// ApplyPricingState writes back state produced by the machine's reducer.
func (q *Quote) ApplyPricingState(s State) {
	q.state = s
}

func (q *Quote) Rename(customerName string) error {
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return ErrEmptyCustomerName
	}
	q.customerName = customerName
	return nil
}
