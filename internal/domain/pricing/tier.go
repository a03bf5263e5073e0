package pricing

import (
	"fmt"

	"tourdesk/internal/domain/catalog"
)

// ResolveTier maps a people count to its group-size tier. Tiers are scanned
// in declaration order; if ranges overlap (a configuration defect) the
// earliest declared match wins, deterministically.
func ResolveTier(tiers []catalog.GroupSizeTier, people int) (int, catalog.GroupSizeTier, error) {
	if people < 1 {
		return 0, catalog.GroupSizeTier{}, NewResolutionError(KindNoMatchingTier,
			fmt.Sprintf("people count must be positive, got %d", people))
	}
	for i, tier := range tiers {
		if tier.Contains(people) {
			return i, tier, nil
		}
	}
	return 0, catalog.GroupSizeTier{}, NewResolutionError(KindNoMatchingTier,
		fmt.Sprintf("no tier covers a group of %d", people))
}
