package shared

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type PackageSnapshot struct {
	ID       uuid.UUID
	Name     string
	Version  int
	Currency string
}

type QuoteSnapshot struct {
	ID              uuid.UUID
	CustomerName    string
	SyncStatus      string
	LinkedPackageID *uuid.UUID
	UpdatedAt       time.Time
}
