package quote

// SyncStatus describes the quote price's relationship to its package-derived
// value. It is derived by the state machine, never set directly by callers.
type SyncStatus string

const (
	StatusSynced      SyncStatus = "synced"
	StatusCalculating SyncStatus = "calculating"
	StatusCustom      SyncStatus = "custom"
	StatusError       SyncStatus = "error"
	StatusOutOfSync   SyncStatus = "out-of-sync"
)

func (s SyncStatus) String() string {
	return string(s)
}

func (s SyncStatus) IsValid() bool {
	switch s {
	case StatusSynced, StatusCalculating, StatusCustom, StatusError, StatusOutOfSync:
		return true
	default:
		return false
	}
}
