package persistence

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jomidar/jomidar-api/internal/models"
)

func TestMigrateV1WrapsFlatURL(t *testing.T) {
	v1 := []byte(`{
		"version": 1,
		"properties": [],
		"documents": [
			{"id": "d1", "name": "Lease", "type": "lease", "url": "https://example.com/lease.pdf"}
		]
	}`)

	out, err := Migrate(v1, 1)
	require.NoError(t, err)

	var snap models.Snapshot
	require.NoError(t, json.Unmarshal(out, &snap))

	assert.Equal(t, models.SnapshotVersion, snap.Version)
	require.Len(t, snap.Documents, 1)
	assert.Equal(t, models.SourceKindURL, snap.Documents[0].Source.Kind)
	assert.Equal(t, "https://example.com/lease.pdf", snap.Documents[0].Source.URI)
}

func TestMigrateUnversionedTreatedAsV1(t *testing.T) {
	legacy := []byte(`{
		"documents": [
			{"id": "d1", "name": "Photo", "type": "other", "url": "https://example.com/p.jpg"}
		]
	}`)

	out, err := Migrate(legacy, 0)
	require.NoError(t, err)

	var snap models.Snapshot
	require.NoError(t, json.Unmarshal(out, &snap))
	assert.Equal(t, models.SnapshotVersion, snap.Version)
	require.Len(t, snap.Documents, 1)
	assert.Equal(t, models.SourceKindURL, snap.Documents[0].Source.Kind)
}

func TestMigrateLeavesExistingSourcesAlone(t *testing.T) {
	v1 := []byte(`{
		"version": 1,
		"documents": [
			{"id": "d1", "source": {"kind": "document", "uri": "documents/2026/08/abc.pdf"}}
		]
	}`)

	out, err := Migrate(v1, 1)
	require.NoError(t, err)

	var snap models.Snapshot
	require.NoError(t, json.Unmarshal(out, &snap))
	require.Len(t, snap.Documents, 1)
	assert.Equal(t, models.SourceKindDocument, snap.Documents[0].Source.Kind)
	assert.Equal(t, "documents/2026/08/abc.pdf", snap.Documents[0].Source.URI)
}

func TestMigrateCurrentVersionPassesThrough(t *testing.T) {
	current := []byte(`{"version": 2, "documents": []}`)
	out, err := Migrate(current, models.SnapshotVersion)
	require.NoError(t, err)
	assert.Equal(t, current, out)
}

func TestMigrateRejectsInvalidJSON(t *testing.T) {
	_, err := Migrate([]byte(`{not json`), 1)
	require.Error(t, err)
}

func TestSeedSnapshotIsConsistent(t *testing.T) {
	snap := SeedSnapshot()

	units := map[string]*models.Unit{}
	for i := range snap.Properties {
		p := &snap.Properties[i]
		for j := range p.Units {
			u := &p.Units[j]
			assert.Equal(t, p.ID, u.PropertyID)
			units[u.ID] = u
		}
	}

	// Every tenant must live in an occupied unit that points back at them.
	for _, tenant := range snap.Tenants {
		u, ok := units[tenant.UnitID]
		require.True(t, ok, "tenant %s references unknown unit %s", tenant.ID, tenant.UnitID)
		assert.Equal(t, models.UnitStatusOccupied, u.Status)
		assert.Equal(t, tenant.ID, u.TenantID)
		assert.Equal(t, tenant.PropertyID, u.PropertyID)
	}

	tenants := map[string]bool{}
	for _, tenant := range snap.Tenants {
		tenants[tenant.ID] = true
	}
	for _, payment := range snap.Payments {
		assert.True(t, tenants[payment.TenantID], "payment %s references unknown tenant", payment.ID)
	}
}
