package persistence

import (
	"encoding/json"
	"fmt"

	"github.com/jomidar/jomidar-api/internal/models"
)

// migrationStep upgrades a decoded snapshot document by exactly one schema
// version. Steps are pure: they return the upgraded document and never
// touch anything outside it.
type migrationStep func(map[string]interface{}) map[string]interface{}

// migrations maps a source version to the step that upgrades it one
// version. A snapshot at version N is upgraded by migrations[N], then
// migrations[N+1], and so on until models.SnapshotVersion.
var migrations = map[int]migrationStep{
	1: migrateDocumentSources,
}

// Migrate upgrades a raw snapshot blob from the given schema version to the
// current one. Blobs already at the current version pass through untouched.
func Migrate(data []byte, version int) ([]byte, error) {
	if version == 0 {
		// Snapshots written before versioning carry no version field.
		version = 1
	}
	if version >= models.SnapshotVersion {
		return data, nil
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot for migration: %w", err)
	}

	for v := version; v < models.SnapshotVersion; v++ {
		step, ok := migrations[v]
		if !ok {
			return nil, fmt.Errorf("no migration from snapshot version %d", v)
		}
		doc = step(doc)
	}
	doc["version"] = models.SnapshotVersion

	return json.Marshal(doc)
}

// migrateDocumentSources (v1 → v2) wraps the legacy flat document url field
// into a source descriptor of kind "url". Documents that already carry a
// source are left as they are.
func migrateDocumentSources(doc map[string]interface{}) map[string]interface{} {
	docs, ok := doc["documents"].([]interface{})
	if !ok {
		return doc
	}
	for _, raw := range docs {
		d, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		if _, has := d["source"]; has {
			continue
		}
		uri, _ := d["url"].(string)
		d["source"] = map[string]interface{}{
			"kind": models.SourceKindURL,
			"uri":  uri,
		}
		delete(d, "url")
	}
	return doc
}
