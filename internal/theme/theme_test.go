package theme

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedMedia struct {
	dark bool
	ok   bool
}

func (m fixedMedia) PrefersDark() (bool, bool) { return m.dark, m.ok }

type brokenStore struct{}

func (brokenStore) Get(string) (string, bool, error) { return "", false, errors.New("storage disabled") }
func (brokenStore) Set(string, string) error         { return errors.New("storage disabled") }

func TestController_RoundTrip(t *testing.T) {
	for _, want := range []bool{true, false} {
		store := NewMemoryStore()
		New(store, fixedMedia{dark: !want, ok: true}, DefaultPolicy()).Set(want)

		// A fresh controller on the same store simulates a reload.
		reloaded := New(store, fixedMedia{dark: !want, ok: true}, DefaultPolicy())
		assert.Equal(t, want, reloaded.Initial())
		assert.Equal(t, want, reloaded.IsDark())
	}
}

func TestController_ToggleTwiceRestores(t *testing.T) {
	for _, start := range []bool{true, false} {
		c := New(NewMemoryStore(), nil, Policy{Default: start})
		require.Equal(t, start, c.IsDark())

		assert.Equal(t, !start, c.Toggle())
		assert.Equal(t, start, c.Toggle())
		assert.Equal(t, start, c.Root().Has(DarkClass))
	}
}

func TestController_FallsBackToDefault(t *testing.T) {
	tests := []struct {
		name  string
		store Store
		media MediaReader
	}{
		{"nothing injected", nil, nil},
		{"broken store, no media", brokenStore{}, NoMedia{}},
		{"empty store, unreadable media", NewMemoryStore(), fixedMedia{ok: false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, def := range []bool{true, false} {
				c := New(tt.store, tt.media, Policy{FollowSystem: true, Default: def})
				assert.Equal(t, def, c.Initial())
				assert.Equal(t, def, c.Initial(), "must be deterministic")
			}
		})
	}
}

func TestController_Precedence(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Set(Key, "false"))

	c := New(store, fixedMedia{dark: true, ok: true}, Policy{FollowSystem: true, Default: true})
	assert.False(t, c.IsDark(), "stored choice wins over system and default")

	c = New(NewMemoryStore(), fixedMedia{dark: true, ok: true}, Policy{FollowSystem: true, Default: false})
	assert.True(t, c.IsDark(), "system signal wins over default")

	c = New(NewMemoryStore(), fixedMedia{dark: false, ok: true}, Policy{FollowSystem: false, Default: true})
	assert.True(t, c.IsDark(), "system signal ignored when not followed")
}

func TestController_IgnoresGarbageStoredValue(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Set(Key, "{not a bool"))

	c := New(store, fixedMedia{dark: true, ok: true}, DefaultPolicy())
	assert.True(t, c.IsDark())
}

func TestController_SetIsIdempotent(t *testing.T) {
	store := NewMemoryStore()
	c := New(store, nil, DefaultPolicy())

	c.Set(true)
	first := c.Root().String()
	c.Set(true)

	assert.Equal(t, first, c.Root().String())
	assert.Equal(t, "dark", c.Root().String())
	v, ok, err := store.Get(Key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "true", v)
}

func TestController_BrokenStoreDoesNotPanicOnWrite(t *testing.T) {
	c := New(brokenStore{}, nil, DefaultPolicy())
	assert.True(t, c.Toggle())
	assert.True(t, c.Root().Has(DarkClass))
}

func TestController_EndToEnd(t *testing.T) {
	store := NewMemoryStore()
	light := fixedMedia{dark: false, ok: true}

	c := New(store, light, DefaultPolicy())
	assert.False(t, c.Initial())

	c.Toggle()
	v, ok, err := store.Get(Key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "true", v)
	assert.True(t, c.Root().Has(DarkClass))

	reloaded := New(store, light, DefaultPolicy())
	assert.True(t, reloaded.Initial())
}

func TestController_NothingPersistedUntilChange(t *testing.T) {
	store := NewMemoryStore()
	New(store, fixedMedia{dark: true, ok: true}, DefaultPolicy())

	_, ok, err := store.Get(Key)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestController_WithRootKeepsOtherClasses(t *testing.T) {
	root := NewClassList("scroll-smooth")
	c := New(nil, nil, Policy{Default: true}, WithRoot(root))

	assert.Equal(t, "scroll-smooth dark", root.String())
	c.Set(false)
	assert.Equal(t, "scroll-smooth", root.String())
}
