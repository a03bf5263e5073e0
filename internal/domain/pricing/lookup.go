package pricing

import (
	"fmt"

	"tourdesk/internal/domain/catalog"
)

// LookupPrice retrieves the price point for an exact (tier, period, nights)
// triple. Nights must match a declared duration exactly; nothing is
// interpolated or rounded. An ON_REQUEST cell is a successful lookup, not an
// error; callers branch on the price before using it as a number.
func LookupPrice(period catalog.PeriodEntry, tierIndex, nights int) (catalog.Price, error) {
	point, ok := period.PointFor(tierIndex, nights)
	if !ok {
		return catalog.Price{}, NewResolutionError(KindNoPriceForCombination,
			fmt.Sprintf("no price for tier %d, period %q, %d nights", tierIndex, period.Label(), nights))
	}
	return point.Price(), nil
}
