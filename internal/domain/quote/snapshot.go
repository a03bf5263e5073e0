package quote

import (
	"github.com/google/uuid"

	"tourdesk/internal/domain/catalog"
)

// LinkedPackageInfo is the immutable record of which package, tier and period
// produced the quote's price at link time. It never follows later edits to
// the underlying package; provenance questions are answered from here.
type LinkedPackageInfo struct {
	PackageID      uuid.UUID
	PackageName    string
	PackageVersion int

	// Selection of the last successful resolution. Zero values until one
	// succeeds (a link can fail and leave the quote linked but unresolved).
	TierIndex         int
	TierLabel         string
	PeriodLabel       string
	SelectedNights    int
	CalculatedPrice   *catalog.Price
	PriceWasOnRequest bool
	Currency          string
}

func (l LinkedPackageInfo) Resolved() bool {
	return l.CalculatedPrice != nil
}
