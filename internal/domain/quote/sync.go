package quote

import (
	"time"

	"github.com/google/uuid"

	"tourdesk/internal/domain/catalog"
)

// ManualPriceToleranceCents is the largest difference between a manual edit
// and the last resolved price that does not count as an override (0.01
// currency unit).
const ManualPriceToleranceCents = 1

// State is the full pricing state owned by the synchronization machine.
// Nothing else mutates totalPrice, syncStatus or the linked snapshot.
// With no linked package the machine is dormant: status reads as synced and
// events other than linking are inert.
type State struct {
	Status SyncStatus

	People  int
	Nights  int
	Rooms   int
	Arrival time.Time

	TotalPrice   catalog.Money
	HasPrice     bool
	LastResolved *catalog.Money
	Linked       *LinkedPackageInfo
	ErrorMessage string

	// Generation is the sequence number of the latest issued resolution
	// request. A response is applied only when its sequence matches; older
	// in-flight responses are discarded.
	Generation uint64
}

func (s State) Dormant() bool {
	return s.Linked == nil
}

// Event is a transition input for Reduce.
type Event interface {
	isSyncEvent()
}

// LinkRequested starts linking a package: a resolution is in flight for the
// identified package version.
type LinkRequested struct {
	Seq            uint64
	PackageID      uuid.UUID
	PackageName    string
	PackageVersion int
}

// ResolutionRequested starts a recalculation for the already linked package
// (explicit recalculate, reset, or a debounced parameter change).
type ResolutionRequested struct {
	Seq uint64
}

// ResolutionSucceeded carries the collaborator's answer for request Seq.
type ResolutionSucceeded struct {
	Seq         uint64
	Price       catalog.Price
	TierIndex   int
	TierLabel   string
	PeriodLabel string
	Nights      int
	Currency    string
}

// ResolutionFailed carries a typed failure for request Seq.
type ResolutionFailed struct {
	Seq     uint64
	Message string
}

// ParametersChanged records an edit to people, nights, rooms or arrival date.
type ParametersChanged struct {
	People  int
	Nights  int
	Rooms   int
	Arrival time.Time
}

// ManualPriceSet records a human-entered total price.
type ManualPriceSet struct {
	Price catalog.Money
}

// Unlinked detaches the quote from its package, retaining all other fields.
type Unlinked struct{}

func (LinkRequested) isSyncEvent()       {}
func (ResolutionRequested) isSyncEvent() {}
func (ResolutionSucceeded) isSyncEvent() {}
func (ResolutionFailed) isSyncEvent()    {}
func (ParametersChanged) isSyncEvent()   {}
func (ManualPriceSet) isSyncEvent()      {}
func (Unlinked) isSyncEvent()            {}

// Reduce is the pure transition function of the synchronization machine.
// It is independent of any networking or timer concerns; the livesync engine
// feeds it events and owns when resolutions are actually issued.
func Reduce(s State, ev Event) State {
	switch e := ev.(type) {
	case LinkRequested:
		s.Linked = &LinkedPackageInfo{
			PackageID:      e.PackageID,
			PackageName:    e.PackageName,
			PackageVersion: e.PackageVersion,
		}
		s.LastResolved = nil
		s.ErrorMessage = ""
		s.Status = StatusCalculating
		s.Generation = e.Seq
		return s

	case ResolutionRequested:
		if s.Dormant() {
			return s
		}
		s.Status = StatusCalculating
		s.ErrorMessage = ""
		s.Generation = e.Seq
		return s

	case ResolutionSucceeded:
		if s.Dormant() || s.Status != StatusCalculating || e.Seq != s.Generation {
			return s
		}
		linked := *s.Linked
		price := e.Price
		linked.TierIndex = e.TierIndex
		linked.TierLabel = e.TierLabel
		linked.PeriodLabel = e.PeriodLabel
		linked.SelectedNights = e.Nights
		linked.CalculatedPrice = &price
		linked.PriceWasOnRequest = price.IsOnRequest()
		linked.Currency = e.Currency
		s.Linked = &linked
		s.ErrorMessage = ""
		s.Status = StatusSynced

		if amount, ok := price.Amount(); ok {
			s.TotalPrice = amount
			s.HasPrice = true
			s.LastResolved = &amount
		} else {
			// ON_REQUEST: a valid outcome that forces manual entry. The
			// total is never auto-populated from it.
			s.LastResolved = nil
		}
		return s

	case ResolutionFailed:
		if s.Dormant() || s.Status != StatusCalculating || e.Seq != s.Generation {
			return s
		}
		s.Status = StatusError
		s.ErrorMessage = e.Message
		return s

	case ParametersChanged:
		unchanged := e.People == s.People && e.Nights == s.Nights &&
			e.Rooms == s.Rooms && e.Arrival.Equal(s.Arrival)
		s.People = e.People
		s.Nights = e.Nights
		s.Rooms = e.Rooms
		s.Arrival = e.Arrival
		if unchanged {
			// A no-op edit (same values, or a rename that coalesced the
			// current parameters) must not invalidate an existing price.
			return s
		}
		if s.Dormant() {
			return s
		}
		// A manual override is never invalidated by parameter edits; leaving
		// custom requires an explicit recalculate or reset.
		if s.Status == StatusCustom {
			return s
		}
		s.Status = StatusOutOfSync
		return s

	case ManualPriceSet:
		s.TotalPrice = e.Price
		s.HasPrice = true
		if s.Dormant() {
			return s
		}
		if s.Linked.PriceWasOnRequest && s.LastResolved == nil {
			// Manual entry is the expected completion of an ON_REQUEST
			// resolution, not an override.
			return s
		}
		if s.LastResolved == nil || diffCents(e.Price, *s.LastResolved) > ManualPriceToleranceCents {
			s.Status = StatusCustom
		}
		return s

	case Unlinked:
		s.Linked = nil
		s.LastResolved = nil
		s.ErrorMessage = ""
		s.Status = StatusSynced
		return s
	}
	return s
}

func diffCents(a, b catalog.Money) int64 {
	d := a.Cents() - b.Cents()
	if d < 0 {
		d = -d
	}
	return d
}
