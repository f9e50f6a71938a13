package workers

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noopHandler(_ context.Context, _ Input, _ *RunContext) (any, error) {
	return nil, nil
}

func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()

	err := r.Register(Definition{
		Name:         "drafter",
		Capabilities: []string{"draft", "outline"},
		Handler:      noopHandler,
	})
	require.NoError(t, err)

	t.Run("get by name", func(t *testing.T) {
		def := r.Get("drafter")
		require.NotNil(t, def)
		assert.Equal(t, "drafter", def.Name)
	})

	t.Run("find by capability", func(t *testing.T) {
		def := r.FindByCapability("outline")
		require.NotNil(t, def)
		assert.Equal(t, "drafter", def.Name)
	})

	t.Run("duplicate name rejected", func(t *testing.T) {
		err := r.Register(Definition{
			Name:         "drafter",
			Capabilities: []string{"other"},
			Handler:      noopHandler,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDuplicateWorker)
	})

	t.Run("empty capabilities rejected", func(t *testing.T) {
		err := r.Register(Definition{Name: "empty", Handler: noopHandler})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrEmptyCapabilities)
	})
}

func TestRegistryFirstRegisteredWins(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.Register(Definition{
		Name: "first", Capabilities: []string{"review"}, Handler: noopHandler,
	}))
	require.NoError(t, r.Register(Definition{
		Name: "second", Capabilities: []string{"review", "audit"}, Handler: noopHandler,
	}))

	// "review" stays with the first registrant; "audit" goes to the second.
	def := r.FindByCapability("review")
	require.NotNil(t, def)
	assert.Equal(t, "first", def.Name)

	def = r.FindByCapability("audit")
	require.NotNil(t, def)
	assert.Equal(t, "second", def.Name)
}

func TestRegistryListInsertionOrder(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"c", "a", "b"} {
		require.NoError(t, r.Register(Definition{
			Name: name, Capabilities: []string{"cap-" + name}, Handler: noopHandler,
		}))
	}

	list := r.List()
	require.Len(t, list, 3)
	assert.Equal(t, "c", list[0].Name)
	assert.Equal(t, "a", list[1].Name)
	assert.Equal(t, "b", list[2].Name)

	// No duplicate names in list output regardless of registration sequence.
	seen := map[string]bool{}
	for _, def := range list {
		assert.False(t, seen[def.Name])
		seen[def.Name] = true
	}
}

func TestRegistryThreadSafety(_ *testing.T) {
	r := NewRegistry()
	_ = r.Register(Definition{Name: "w", Capabilities: []string{"c"}, Handler: noopHandler})

	const goroutines = 50
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			_ = r.Get("w")
			_ = r.FindByCapability("c")
			_ = r.List()
		}()
	}
	wg.Wait()
}
