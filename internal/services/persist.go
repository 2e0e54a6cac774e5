package services

import (
	"context"

	"github.com/jomidar/jomidar-api/internal/jobs"
	"github.com/jomidar/jomidar-api/internal/persistence"
	"github.com/jomidar/jomidar-api/internal/store"
	"github.com/jomidar/jomidar-api/pkg/logger"
)

// SnapshotFlusher writes the in-memory state to the snapshot store. Mutating
// services call FlushAsync after every applied change; the write happens on
// the worker pool so request latency never includes persistence. The snapshot
// is taken at write time, so coalesced flushes of back-to-back mutations are
// harmless.
type SnapshotFlusher struct {
	store     *store.Store
	snapshots *persistence.SnapshotStore
	worker    *jobs.Worker
}

// NewSnapshotFlusher creates a flusher bound to the store and snapshot store
func NewSnapshotFlusher(st *store.Store, snapshots *persistence.SnapshotStore, worker *jobs.Worker) *SnapshotFlusher {
	return &SnapshotFlusher{store: st, snapshots: snapshots, worker: worker}
}

// FlushAsync persists the current state in the background.
func (f *SnapshotFlusher) FlushAsync() {
	f.worker.EnqueueAsync(func(ctx context.Context) error {
		if err := f.snapshots.Save(ctx, f.store.Snapshot()); err != nil {
			logger.Error("failed to persist snapshot", "error", err)
			return err
		}
		return nil
	})
}

// Flush persists the current state synchronously. Used on shutdown and by
// the periodic safety-net job.
func (f *SnapshotFlusher) Flush(ctx context.Context) error {
	return f.snapshots.Save(ctx, f.store.Snapshot())
}
