package response

import (
	"time"

	"github.com/google/uuid"

	"tourdesk/internal/usecase/queries"
)

type PackageResponse struct {
	ID        uuid.UUID            `json:"id"`
	Name      string               `json:"name"`
	Version   int                  `json:"version"`
	Currency  string               `json:"currency"`
	Tiers     []queries.TierView   `json:"tiers"`
	Durations []int                `json:"durations"`
	Periods   []queries.PeriodView `json:"periods"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

type PackageListItemResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Version   int       `json:"version"`
	Currency  string    `json:"currency"`
	CreatedAt time.Time `json:"created_at"`
}

func FromPackageView(view *queries.PackageView) *PackageResponse {
	return &PackageResponse{
		ID:        view.ID,
		Name:      view.Name,
		Version:   view.Version,
		Currency:  view.Currency,
		Tiers:     view.Tiers,
		Durations: view.Durations,
		Periods:   view.Periods,
		CreatedAt: view.CreatedAt,
		UpdatedAt: view.UpdatedAt,
	}
}

func FromPackageList(items []*queries.PackageListItem) []*PackageListItemResponse {
	out := make([]*PackageListItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, &PackageListItemResponse{
			ID:        item.ID,
			Name:      item.Name,
			Version:   item.Version,
			Currency:  item.Currency,
			CreatedAt: item.CreatedAt,
		})
	}
	return out
}
