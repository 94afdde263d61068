package checkout

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jvboschetti/acai-storefront/internal/cart"
	"github.com/jvboschetti/acai-storefront/pkg/config"
	"github.com/jvboschetti/acai-storefront/pkg/enums"
	pkgerrors "github.com/jvboschetti/acai-storefront/pkg/errors"
	"github.com/jvboschetti/acai-storefront/pkg/logger"
	"github.com/jvboschetti/acai-storefront/pkg/metrics"
	"github.com/jvboschetti/acai-storefront/pkg/money"
)

// Snapshot is the read model of a session handed to the API layer.
type Snapshot struct {
	ID                  string              `json:"id"`
	Step                enums.CheckoutStep  `json:"step"`
	Lines               []cart.Line         `json:"lines"`
	ItemCount           int                 `json:"item_count"`
	TotalCents          money.Cents         `json:"total_cents"`
	Total               string              `json:"total"`
	Customer            CustomerInfo        `json:"customer"`
	PaymentMethod       enums.PaymentMethod `json:"payment_method,omitempty"`
	PixRemainingSeconds int                 `json:"pix_remaining_seconds,omitempty"`
}

// Manager owns all live checkout sessions. A single mutex serializes
// session access; a janitor sweeps sessions idle past the TTL.
type Manager struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Session

	idleTTL       time.Duration
	sweepInterval time.Duration

	logg    *logger.Logger
	metrics *metrics.StorefrontMetrics

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

func NewManager(cfg config.CheckoutConfig, logg *logger.Logger, m *metrics.StorefrontMetrics) *Manager {
	return &Manager{
		sessions:      make(map[uuid.UUID]*Session),
		idleTTL:       cfg.SessionIdleTTL,
		sweepInterval: cfg.JanitorInterval,
		logg:          logg,
		metrics:       m,
		stop:          make(chan struct{}),
		done:          make(chan struct{}),
	}
}

// Create registers a fresh session at the cart step.
func (m *Manager) Create() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := newSession(time.Now())
	m.sessions[s.ID] = s
	m.metrics.SetActiveSessions(len(m.sessions))
	return m.snapshot(s)
}

// Get returns the session's current snapshot and refreshes its idle
// clock.
func (m *Manager) Get(id uuid.UUID) (Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, err := m.locked(id)
	if err != nil {
		return Snapshot{}, err
	}
	return m.snapshot(s), nil
}

// Update runs fn against the session under the manager lock and
// returns the resulting snapshot. fn must not block.
func (m *Manager) Update(id uuid.UUID, fn func(s *Session) error) (Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, err := m.locked(id)
	if err != nil {
		return Snapshot{}, err
	}
	if err := fn(s); err != nil {
		return Snapshot{}, err
	}
	return m.snapshot(s), nil
}

// BeginFinalize flips the in-flight flag and returns a finalize draft.
// A second call before CompleteFinalize is rejected, which is what
// dedupes a double-clicked confirm.
func (m *Manager) BeginFinalize(id uuid.UUID) (FinalizeDraft, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, err := m.locked(id)
	if err != nil {
		return FinalizeDraft{}, err
	}
	if s.finalizing {
		return FinalizeDraft{}, pkgerrors.New(pkgerrors.CodeConflict, "confirmation already in progress")
	}
	if err := s.checkConfirmable(time.Now()); err != nil {
		return FinalizeDraft{}, err
	}

	s.finalizing = true
	return FinalizeDraft{
		SessionID:     s.ID,
		Lines:         append([]cart.Line(nil), s.Cart.Lines()...),
		TotalCents:    s.Cart.TotalCents(),
		Customer:      s.Customer,
		PaymentMethod: s.PaymentMethod,
	}, nil
}

// CompleteFinalize clears the in-flight flag. On success the session
// resets to an empty cart; on failure all state stays put so the
// customer can retry.
func (m *Manager) CompleteFinalize(id uuid.UUID, persisted bool) Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return Snapshot{}
	}
	s.finalizing = false
	if persisted {
		s.resetAfterFinalize()
	}
	return m.snapshot(s)
}

// Delete drops a session and releases its countdown.
func (m *Manager) Delete(id uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[id]; ok {
		s.releaseCountdown()
		delete(m.sessions, id)
		m.metrics.SetActiveSessions(len(m.sessions))
	}
}

// Count reports live sessions.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// StartJanitor sweeps idle sessions until Close.
func (m *Manager) StartJanitor(ctx context.Context) {
	go func() {
		defer close(m.done)
		ticker := time.NewTicker(m.sweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-m.stop:
				return
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.sweep(ctx, time.Now())
			}
		}
	}()
}

// Close stops the janitor.
func (m *Manager) Close() {
	m.stopOnce.Do(func() { close(m.stop) })
}

func (m *Manager) sweep(ctx context.Context, now time.Time) {
	m.mu.Lock()
	expired := 0
	for id, s := range m.sessions {
		if s.finalizing {
			continue
		}
		if now.Sub(s.touchedAt) >= m.idleTTL {
			s.releaseCountdown()
			delete(m.sessions, id)
			expired++
		}
	}
	remaining := len(m.sessions)
	m.mu.Unlock()

	if expired > 0 {
		m.metrics.SetActiveSessions(remaining)
		if m.logg != nil {
			m.logg.Info(ctx, "expired idle checkout sessions")
		}
	}
}

func (m *Manager) locked(id uuid.UUID) (*Session, error) {
	s, ok := m.sessions[id]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "checkout session not found")
	}
	s.touchedAt = time.Now()
	return s, nil
}

func (m *Manager) snapshot(s *Session) Snapshot {
	total := s.Cart.TotalCents()
	return Snapshot{
		ID:                  s.ID.String(),
		Step:                s.Step,
		Lines:               append([]cart.Line{}, s.Cart.Lines()...),
		ItemCount:           s.Cart.ItemCount(),
		TotalCents:          total,
		Total:               total.String(),
		Customer:            s.Customer,
		PaymentMethod:       s.PaymentMethod,
		PixRemainingSeconds: s.pixRemaining(time.Now()),
	}
}

// FinalizeDraft is the immutable order input captured at confirm time.
type FinalizeDraft struct {
	SessionID     uuid.UUID
	Lines         []cart.Line
	TotalCents    money.Cents
	Customer      CustomerInfo
	PaymentMethod enums.PaymentMethod
}
