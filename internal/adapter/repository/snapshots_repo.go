package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"

	"resume-builder/internal/model"
)

// SnapshotsRepo mirrors every auto-save into Postgres. It is best-effort:
// a nil pool turns every call into a no-op so the builder works without a
// database, matching the file store being the durable copy.
type SnapshotsRepo struct {
	pool *pgxpool.Pool
}

func NewSnapshotsRepo(pool *pgxpool.Pool) *SnapshotsRepo {
	return &SnapshotsRepo{pool: pool}
}

// EnsureSchema creates the snapshots table on startup.
func (r *SnapshotsRepo) EnsureSchema(ctx context.Context) error {
	if r.pool == nil {
		return nil
	}
	_, err := r.pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS resume_snapshots (
		key TEXT PRIMARY KEY,
		payload JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("ensure snapshots schema: %w", err)
	}
	return nil
}

func (r *SnapshotsRepo) save(ctx context.Context, key string, v interface{}) error {
	if r.pool == nil {
		return nil
	}
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO resume_snapshots (key, payload, updated_at)
		VALUES ($1,$2,$3)
		ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at`,
		key, payload, time.Now())
	return err
}

func (r *SnapshotsRepo) SaveData(ctx context.Context, data model.ResumeData) error {
	return r.save(ctx, "resumeData", data)
}

func (r *SnapshotsRepo) SaveSettings(ctx context.Context, settings model.ResumeSettings) error {
	return r.save(ctx, "resumeSettings", settings)
}
