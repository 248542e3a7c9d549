package metrics

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryPreservesRegistrationOrder(t *testing.T) {
	registry := NewRegistry()
	names := []string{"zeta", "alpha", "mid.range", "alpha.sub"}
	for _, name := range names {
		require.NoError(t, registry.Register(name, NewCounter()))
	}

	entries := registry.Entries()
	require.Len(t, entries, len(names))
	for i, entry := range entries {
		assert.Equal(t, names[i], entry.Name)
	}
}

func TestRegistryDuplicate(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register("app.requests", NewCounter()))

	err := registry.Register("app.requests", NewTimer())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateMetric))
	assert.Equal(t, 1, registry.Len())
}

func TestRegistryGet(t *testing.T) {
	registry := NewRegistry()
	counter := NewCounter()
	require.NoError(t, registry.Register("app.requests", counter))

	got, ok := registry.Get("app.requests")
	require.True(t, ok)
	assert.Same(t, counter, got)

	_, ok = registry.Get("missing")
	assert.False(t, ok)
}

func TestRegistryMustRegisterPanics(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister("app.requests", NewCounter())
	assert.Panics(t, func() { registry.MustRegister("app.requests", NewCounter()) })
}
