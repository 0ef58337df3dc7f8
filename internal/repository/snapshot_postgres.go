package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lawai/consult-backend/internal/entity"
)

// SnapshotRepository persists the per-session snapshot document. Writes are
// last-write-wins; callers treat failures as non-fatal.
type SnapshotRepository interface {
	Upsert(ctx context.Context, sessionID string, snapshot *entity.Snapshot) error
	Load(ctx context.Context, sessionID string) (*entity.Snapshot, error)
	Delete(ctx context.Context, sessionID string) error
}

var _ SnapshotRepository = &SnapshotPostgres{}

// SnapshotPostgres stores snapshots as JSONB documents keyed by session id.
type SnapshotPostgres struct {
	db *pgxpool.Pool
}

func NewSnapshotPostgres(db *pgxpool.Pool) *SnapshotPostgres {
	return &SnapshotPostgres{db: db}
}

func (r *SnapshotPostgres) Upsert(ctx context.Context, sessionID string, snapshot *entity.Snapshot) error {
	id, err := uuid.Parse(sessionID)
	if err != nil {
		return fmt.Errorf("invalid session ID: %w", err)
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO consult_snapshots (session_id, data, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (session_id)
		DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
		id, data,
	)
	if err != nil {
		return fmt.Errorf("upsert snapshot: %w", err)
	}

	return nil
}

func (r *SnapshotPostgres) Load(ctx context.Context, sessionID string) (*entity.Snapshot, error) {
	id, err := uuid.Parse(sessionID)
	if err != nil {
		return nil, fmt.Errorf("invalid session ID: %w", err)
	}

	var data []byte
	err = r.db.QueryRow(ctx,
		`SELECT data FROM consult_snapshots WHERE session_id = $1`, id,
	).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, entity.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	var snapshot entity.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}

	return &snapshot, nil
}

func (r *SnapshotPostgres) Delete(ctx context.Context, sessionID string) error {
	id, err := uuid.Parse(sessionID)
	if err != nil {
		return fmt.Errorf("invalid session ID: %w", err)
	}

	if _, err := r.db.Exec(ctx,
		`DELETE FROM consult_snapshots WHERE session_id = $1`, id,
	); err != nil {
		return fmt.Errorf("delete snapshot: %w", err)
	}

	return nil
}
