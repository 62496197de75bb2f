package simulation

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleParticles() []Particle {
	return []Particle{
		{Position: NewPoint(1.5, 2), Velocity: NewPoint(-3, 4.25), Tint: NewColor(1, 0.5, 0.25)},
		{Position: NewPoint(0, 600), Velocity: NewPoint(0, 0), Tint: NewColor(0.1, 0.2, 0.3)},
	}
}

func TestStoreRoundTrip(t *testing.T) {
	for _, name := range []string{"snapshot.json", "snapshot.cbor", "nested/dir/snapshot.CBOR"} {
		t.Run(name, func(t *testing.T) {
			store := NewStore(filepath.Join(t.TempDir(), name))
			require.NoError(t, store.Save(sampleParticles()))

			loaded, err := store.Load()
			require.NoError(t, err)
			require.Len(t, loaded, 2)
			for i, want := range sampleParticles() {
				assert.True(t, want.Position.Equal(loaded[i].Position), "position %d", i)
				assert.True(t, want.Velocity.Equal(loaded[i].Velocity), "velocity %d", i)
				assert.True(t, want.Tint.Equal(loaded[i].Tint), "tint %d", i)
			}
		})
	}
}

func TestStoreFormats(t *testing.T) {
	dir := t.TempDir()

	jsonStore := NewStore(filepath.Join(dir, "a.json"))
	require.NoError(t, jsonStore.Save(sampleParticles()))
	data, err := os.ReadFile(jsonStore.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"particles"`)

	cborStore := NewStore(filepath.Join(dir, "a.cbor"))
	require.NoError(t, cborStore.Save(sampleParticles()))
	data, err = os.ReadFile(cborStore.Path())
	require.NoError(t, err)
	assert.NotEqual(t, byte('{'), data[0])
}

func TestStoreLoadMissing(t *testing.T) {
	loaded, err := NewStore(filepath.Join(t.TempDir(), "missing.json")).Load()
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestStoreLoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := NewStore(path).Load()
	assert.Error(t, err)
}

func TestStoreRejectsNonFinite(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "snapshot.json"))

	err := store.Save([]Particle{{Position: NewPoint(math.Inf(1), 0)}})
	assert.ErrorIs(t, err, ErrNonFinite)

	err = store.Save([]Particle{{Tint: NewColor(float32(math.NaN()), 0, 0)}})
	assert.ErrorIs(t, err, ErrNonFinite)

	_, statErr := os.Stat(store.Path())
	assert.True(t, os.IsNotExist(statErr))
}
