package analyses

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

const maxListLimit = 100

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new analysis.
func (r *PGRepo) Create(ctx context.Context, analysis Analysis) error {
	const query = `
INSERT INTO analyses (id, user_id, document_hash, overall, report, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`
	report, err := json.Marshal(analysis.Report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	_, err = r.DB.ExecContext(ctx, query,
		analysis.ID,
		analysis.UserID,
		analysis.DocumentHash,
		analysis.Overall,
		string(report),
		analysis.CreatedAt,
	)
	return err
}

// GetByID returns an analysis owned by userID.
func (r *PGRepo) GetByID(ctx context.Context, userID, analysisID string) (Analysis, error) {
	const query = `
SELECT id, user_id, document_hash, overall, report, created_at
FROM analyses
WHERE id = $1 AND user_id = $2
LIMIT 1`
	a, err := scanAnalysis(r.DB.QueryRowContext(ctx, query, analysisID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Analysis{}, ErrNotFound
		}
		return Analysis{}, err
	}
	return a, nil
}

// ListByUser lists analyses for a user ordered newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Analysis, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	const query = `
SELECT id, user_id, document_hash, overall, report, created_at
FROM analyses
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Analysis{}
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row rowScanner) (Analysis, error) {
	var a Analysis
	var report []byte
	if err := row.Scan(&a.ID, &a.UserID, &a.DocumentHash, &a.Overall, &report, &a.CreatedAt); err != nil {
		return Analysis{}, err
	}
	if len(report) > 0 {
		if err := json.Unmarshal(report, &a.Report); err != nil {
			return Analysis{}, fmt.Errorf("decode report for analysis %s: %w", a.ID, err)
		}
	}
	return a, nil
}
