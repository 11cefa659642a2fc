package session

import (
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bistro/order-svc/internal/domain"
	"bistro/order-svc/internal/engine"
)

func TestRegistry_CreateGetDelete(t *testing.T) {
	reg := NewRegistry(engine.DefaultPricing(), time.Hour)

	s := reg.Create(Identity{UserID: "u1", Email: "jane@example.com"})
	require.NotEmpty(t, s.ID)
	assert.Equal(t, 1, reg.Len())

	got, err := reg.Get(s.ID)
	require.NoError(t, err)
	assert.Same(t, s, got)
	assert.Equal(t, "u1", got.Identity.UserID)

	reg.Delete(s.ID)
	_, err = reg.Get(s.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRegistry_SessionsAreIsolated(t *testing.T) {
	reg := NewRegistry(engine.DefaultPricing(), time.Hour)
	a := reg.Create(Identity{})
	b := reg.Create(Identity{})

	item := domain.MenuItem{ID: "soup", Price: decimal.NewFromInt(5)}
	a.Do(func(e *engine.Engine) {
		e.AddItem(item, 2, nil, "")
	})

	var countA, countB int
	a.Do(func(e *engine.Engine) { countA = e.TotalItemCount() })
	b.Do(func(e *engine.Engine) { countB = e.TotalItemCount() })
	assert.Equal(t, 2, countA)
	assert.Equal(t, 0, countB)
}

func TestSession_DoSerialisesAccess(t *testing.T) {
	reg := NewRegistry(engine.DefaultPricing(), time.Hour)
	s := reg.Create(Identity{})
	item := domain.MenuItem{ID: "tea", Price: decimal.NewFromInt(2)}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Do(func(e *engine.Engine) {
				e.AddItem(item, 1, nil, "")
			})
		}()
	}
	wg.Wait()

	s.Do(func(e *engine.Engine) {
		assert.Equal(t, 50, e.TotalItemCount())
	})
}

func TestRegistry_Prune(t *testing.T) {
	reg := NewRegistry(engine.DefaultPricing(), time.Minute)
	stale := reg.Create(Identity{})
	fresh := reg.Create(Identity{})

	stale.mu.Lock()
	stale.lastSeen = time.Now().Add(-2 * time.Minute)
	stale.mu.Unlock()

	assert.Equal(t, 1, reg.Prune(time.Now()))
	_, err := reg.Get(stale.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = reg.Get(fresh.ID)
	assert.NoError(t, err)
}

func TestSession_BeginCheckoutIsExclusive(t *testing.T) {
	reg := NewRegistry(engine.DefaultPricing(), time.Hour)
	s := reg.Create(Identity{})

	require.True(t, s.BeginCheckout())
	assert.False(t, s.BeginCheckout())

	s.EndCheckout()
	assert.True(t, s.BeginCheckout())
}
