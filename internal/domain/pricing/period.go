package pricing

import (
	"fmt"
	"time"

	"tourdesk/internal/domain/catalog"
)

// ResolvePeriod maps an arrival date to the pricing period covering it.
// The resolver is a pure function of the date and the period table; validating
// that the date is plausible (e.g. in the future) is the caller's concern.
// Periods are scanned in declaration order and the first cover wins.
func ResolvePeriod(periods []catalog.PeriodEntry, arrival time.Time) (catalog.PeriodEntry, error) {
	for _, period := range periods {
		if period.Covers(arrival) {
			return period, nil
		}
	}
	return catalog.PeriodEntry{}, NewResolutionError(KindNoMatchingPeriod,
		fmt.Sprintf("no pricing period covers %s", arrival.Format("2006-01-02")))
}
