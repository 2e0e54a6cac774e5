package models

// SnapshotVersion is the current persisted snapshot schema version.
// Version 1 stored documents with a flat url field; version 2 wraps it in a
// DocumentSource. Older snapshots are migrated at load time.
const SnapshotVersion = 2

// Snapshot is the full persisted application state, saved as one blob per
// application namespace after every mutation and loaded once at startup.
type Snapshot struct {
	Version    int        `json:"version"`
	Properties []Property `json:"properties"`
	Tenants    []Tenant   `json:"tenants"`
	Payments   []Payment  `json:"payments"`
	Documents  []Document `json:"documents"`
	Users      []User     `json:"users"`
}
