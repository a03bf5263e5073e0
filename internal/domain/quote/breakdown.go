package quote

import "tourdesk/internal/domain/catalog"

// Breakdown derives per-person, per-room and per-night figures from a total.
// Each figure is present only when its divisor is positive; there is no
// breakdown at all without a numeric total (e.g. an unresolved ON_REQUEST).
type Breakdown struct {
	PerPerson *float64
	PerRoom   *float64
	PerNight  *float64
}

// ComputeBreakdown is a pure function of the total and the counts.
func ComputeBreakdown(total catalog.Money, people, rooms, nights int) Breakdown {
	var b Breakdown
	units := total.Units()
	if people > 0 {
		v := units / float64(people)
		b.PerPerson = &v
	}
	if rooms > 0 {
		v := units / float64(rooms)
		b.PerRoom = &v
	}
	if nights > 0 {
		v := units / float64(nights)
		b.PerNight = &v
	}
	return b
}

// BreakdownFor derives the figures for a quote state, or nothing when the
// state has no priced total yet.
func BreakdownFor(s State) *Breakdown {
	if !s.HasPrice {
		return nil
	}
	b := ComputeBreakdown(s.TotalPrice, s.People, s.Rooms, s.Nights)
	return &b
}
