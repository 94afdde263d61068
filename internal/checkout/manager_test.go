package checkout

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jvboschetti/acai-storefront/pkg/config"
	"github.com/jvboschetti/acai-storefront/pkg/logger"
)

func newTestManager(t *testing.T, ttl, sweep time.Duration) *Manager {
	t.Helper()
	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	m := NewManager(config.CheckoutConfig{
		SessionIdleTTL:  ttl,
		JanitorInterval: sweep,
	}, logg, nil)
	t.Cleanup(m.Close)
	return m
}

func TestManagerCreateGetDelete(t *testing.T) {
	m := newTestManager(t, time.Hour, time.Minute)

	snap := m.Create()
	id := uuid.MustParse(snap.ID)
	assert.Equal(t, 1, m.Count())

	got, err := m.Get(id)
	require.NoError(t, err)
	assert.Equal(t, snap.ID, got.ID)

	m.Delete(id)
	assert.Equal(t, 0, m.Count())
	_, err = m.Get(id)
	require.Error(t, err)
}

func TestJanitorExpiresIdleSessions(t *testing.T) {
	m := newTestManager(t, 20*time.Millisecond, 10*time.Millisecond)

	m.Create()
	m.Create()
	require.Equal(t, 2, m.Count())

	m.StartJanitor(context.Background())

	assert.Eventually(t, func() bool {
		return m.Count() == 0
	}, time.Second, 5*time.Millisecond)
}

func TestJanitorKeepsTouchedSessions(t *testing.T) {
	m := newTestManager(t, 60*time.Millisecond, 10*time.Millisecond)
	m.StartJanitor(context.Background())

	snap := m.Create()
	id := uuid.MustParse(snap.ID)

	// Keep touching the session past several sweep rounds.
	for i := 0; i < 5; i++ {
		time.Sleep(20 * time.Millisecond)
		_, err := m.Get(id)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, m.Count())
}
