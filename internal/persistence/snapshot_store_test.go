package persistence

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jomidar/jomidar-api/internal/models"
)

func newTestSnapshotStore(t *testing.T) *SnapshotStore {
	t.Helper()
	db, err := Connect(filepath.Join(t.TempDir(), "snapshot_test.db"))
	require.NoError(t, err)
	return NewSnapshotStore(db, "test")
}

func TestLoadReturnsNilWhenEmpty(t *testing.T) {
	store := newTestSnapshotStore(t)

	snap, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := newTestSnapshotStore(t)
	ctx := context.Background()

	seed := SeedSnapshot()
	seed.Users = []models.User{{
		ID:                "u1",
		Name:              "Rahim Ahmed",
		Email:             "rahim@example.com",
		EncryptedPassword: "$2a$10$N9qo8uLOickgx2ZMRZoMye",
		CreatedAt:         time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}}
	require.NoError(t, store.Save(ctx, seed))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)

	assert.Equal(t, models.SnapshotVersion, loaded.Version)
	assert.Equal(t, seed.Properties, loaded.Properties)
	assert.Equal(t, seed.Tenants, loaded.Tenants)
	assert.Equal(t, seed.Payments, loaded.Payments)
	assert.Equal(t, seed.Documents, loaded.Documents)
	assert.Equal(t, seed.Users, loaded.Users)

	// Accounts must be able to sign in after a restart, so the password
	// hash has to survive the round trip.
	require.Len(t, loaded.Users, 1)
	assert.Equal(t, "$2a$10$N9qo8uLOickgx2ZMRZoMye", loaded.Users[0].EncryptedPassword)
}

func TestSaveReplacesExistingBlob(t *testing.T) {
	store := newTestSnapshotStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, models.Snapshot{
		Properties: []models.Property{{ID: "p1", Name: "First"}},
	}))
	require.NoError(t, store.Save(ctx, models.Snapshot{
		Properties: []models.Property{{ID: "p1", Name: "Renamed"}},
	}))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	require.Len(t, loaded.Properties, 1)
	assert.Equal(t, "Renamed", loaded.Properties[0].Name)
}

func TestNamespacesAreIsolated(t *testing.T) {
	db, err := Connect(filepath.Join(t.TempDir(), "snapshot_test.db"))
	require.NoError(t, err)
	ctx := context.Background()

	first := NewSnapshotStore(db, "alpha")
	second := NewSnapshotStore(db, "beta")

	require.NoError(t, first.Save(ctx, models.Snapshot{
		Properties: []models.Property{{ID: "p1", Name: "Alpha Tower"}},
	}))

	loaded, err := second.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}
