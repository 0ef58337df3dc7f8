package repository

import (
	"context"
	"sync"

	"github.com/lawai/consult-backend/internal/entity"
)

var _ SnapshotRepository = &SnapshotMemory{}

// SnapshotMemory is the in-process snapshot repository used in mock mode and
// tests.
type SnapshotMemory struct {
	mu        sync.RWMutex
	snapshots map[string]*entity.Snapshot
}

func NewSnapshotMemory() *SnapshotMemory {
	return &SnapshotMemory{
		snapshots: make(map[string]*entity.Snapshot),
	}
}

func (r *SnapshotMemory) Upsert(_ context.Context, sessionID string, snapshot *entity.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshots[sessionID] = snapshot
	return nil
}

func (r *SnapshotMemory) Load(_ context.Context, sessionID string) (*entity.Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot, ok := r.snapshots[sessionID]
	if !ok {
		return nil, entity.ErrSessionNotFound
	}
	return snapshot, nil
}

func (r *SnapshotMemory) Delete(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.snapshots, sessionID)
	return nil
}
