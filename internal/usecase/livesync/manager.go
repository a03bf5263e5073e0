package livesync

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Manager hands out the single live session per quote. All pricing mutations
// for a quote funnel through its session, which is what makes "no concurrent
// writers" hold across HTTP requests.
type Manager struct {
	resolver ResolutionClient
	writer   StateWriter
	reads    StateReads
	cfg      Config
	logger   *slog.Logger

	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
}

func NewManager(resolver ResolutionClient, writer StateWriter, reads StateReads, cfg Config, logger *slog.Logger) *Manager {
	return &Manager{
		resolver: resolver,
		writer:   writer,
		reads:    reads,
		cfg:      cfg,
		logger:   logger,
		sessions: make(map[uuid.UUID]*Session),
	}
}

// Session returns the live session for a quote, creating it from persisted
// state on first use.
func (m *Manager) Session(ctx context.Context, quoteID uuid.UUID) (*Session, error) {
	m.mu.Lock()
	if s, ok := m.sessions[quoteID]; ok {
		m.mu.Unlock()
		return s, nil
	}
	m.mu.Unlock()

	state, err := m.reads.PricingState(ctx, quoteID)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[quoteID]; ok {
		// Lost the creation race; the earlier session stays authoritative.
		return s, nil
	}
	s := newSession(quoteID, state, m.resolver, m.writer, m.cfg, m.logger)
	m.sessions[quoteID] = s
	return s, nil
}

// Evict drops a quote's session, e.g. after the quote is deleted.
func (m *Manager) Evict(quoteID uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, quoteID)
}
