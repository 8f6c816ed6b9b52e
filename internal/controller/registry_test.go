package controller

import (
	"errors"
	"testing"
	"time"

	"docdesk/internal/domains"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryLifecycle(t *testing.T) {
	r := NewRegistry(Options{Catalogue: domains.Catalogue(baseURL)}, time.Minute)

	a := r.Create()
	b := r.Create()
	assert.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, 2, r.Len())

	got, err := r.Get(a.ID())
	require.NoError(t, err)
	assert.Same(t, a, got)

	require.NoError(t, r.Delete(a.ID()))
	_, err = r.Get(a.ID())
	assert.True(t, errors.Is(err, ErrSessionNotFound))
	assert.True(t, errors.Is(r.Delete(a.ID()), ErrSessionNotFound))
}

func TestRegistryExpireIdle(t *testing.T) {
	clk := newClock()
	r := NewRegistry(Options{Catalogue: domains.Catalogue(baseURL), Now: clk.Now}, time.Minute)

	stale := r.Create()
	clk.Advance(45 * time.Second)
	fresh := r.Create()
	clk.Advance(30 * time.Second)

	assert.Equal(t, 1, r.ExpireIdle(clk.Now()))
	_, err := r.Get(stale.ID())
	assert.True(t, errors.Is(err, ErrSessionNotFound))
	_, err = r.Get(fresh.ID())
	assert.NoError(t, err)

	// activity resets the idle clock
	clk.Advance(50 * time.Second)
	fresh.CloseDialog()
	clk.Advance(50 * time.Second)
	assert.Zero(t, r.ExpireIdle(clk.Now()))
}

func TestRegistryWithoutTTL(t *testing.T) {
	clk := newClock()
	r := NewRegistry(Options{Now: clk.Now}, 0)
	r.Create()
	clk.Advance(24 * time.Hour)
	assert.Zero(t, r.ExpireIdle(clk.Now()))
	assert.Equal(t, 1, r.Len())
}
