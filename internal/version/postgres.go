package version

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/resume-builder/internal/types"
)

// PostgresStore persists snapshots in PostgreSQL. Schema:
//
//	CREATE TABLE resume_versions (
//	    version_id   TEXT PRIMARY KEY,
//	    owner_id     UUID NOT NULL,
//	    version_name TEXT NOT NULL,
//	    document     JSONB NOT NULL,
//	    created_at   TIMESTAMPTZ NOT NULL
//	);
//	CREATE INDEX resume_versions_owner_idx ON resume_versions (owner_id, created_at DESC);
type PostgresStore struct {
	pool *pgxpool.Pool
}

// ConnectPostgres establishes a connection pool and verifies it
func ConnectPostgres(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

// Close closes the connection pool
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Put inserts an immutable snapshot row. Version IDs are unique, so a
// conflict is a caller bug and surfaces as an error.
func (s *PostgresStore) Put(ctx context.Context, ownerID uuid.UUID, snapshot *types.VersionSnapshot) error {
	body, err := json.Marshal(snapshot.Document)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot document: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO resume_versions (version_id, owner_id, version_name, document, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		snapshot.VersionID, ownerID, snapshot.VersionName, body, snapshot.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to store snapshot %s: %w", snapshot.VersionID, err)
	}
	return nil
}

// Get fetches a full snapshot body, or nil when absent
func (s *PostgresStore) Get(ctx context.Context, ownerID uuid.UUID, versionID string) (*types.VersionSnapshot, error) {
	var (
		snapshot types.VersionSnapshot
		body     []byte
	)
	err := s.pool.QueryRow(ctx,
		`SELECT version_id, version_name, document, created_at
		 FROM resume_versions
		 WHERE owner_id = $1 AND version_id = $2`,
		ownerID, versionID,
	).Scan(&snapshot.VersionID, &snapshot.VersionName, &body, &snapshot.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch snapshot %s: %w", versionID, err)
	}

	if err := json.Unmarshal(body, &snapshot.Document); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot %s: %w", versionID, err)
	}
	return &snapshot, nil
}

// ListByOwner returns summaries newest first, without the document bodies,
// to keep listing cheap.
func (s *PostgresStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]types.VersionSummary, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT version_id, version_name, created_at
		 FROM resume_versions
		 WHERE owner_id = $1
		 ORDER BY created_at DESC`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer rows.Close()

	var summaries []types.VersionSummary
	for rows.Next() {
		var summary types.VersionSummary
		if err := rows.Scan(&summary.VersionID, &summary.VersionName, &summary.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot row: %w", err)
		}
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read snapshot rows: %w", err)
	}
	return summaries, nil
}
