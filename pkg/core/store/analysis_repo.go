package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"deal_analyzer/pkg/core/assumption"
	"deal_analyzer/pkg/core/metrics"
)

// SavedAnalysis is one persisted deal: the assumption snapshot it was run
// with plus the evaluated metrics at save time.
type SavedAnalysis struct {
	ID          uuid.UUID                `json:"id"`
	Address     string                   `json:"address"`
	Assumptions assumption.Assumptions   `json:"assumptions"`
	Metrics     []metrics.StrategyMetric `json:"metrics"`
	Best        metrics.StrategyMetric   `json:"best"`
	UpdatedAt   time.Time                `json:"updated_at"`
}

// AnalysisRepo handles saved-analysis storage.
type AnalysisRepo struct{}

// NewAnalysisRepo creates a new repository instance.
func NewAnalysisRepo() *AnalysisRepo {
	return &AnalysisRepo{}
}

// Save upserts the analysis keyed by its id. A zero id gets one assigned;
// the (possibly assigned) id is returned.
//
// Schema assumption (managed outside this package):
//
//	CREATE TABLE IF NOT EXISTS deal_analyses (
//	  id UUID PRIMARY KEY,
//	  address TEXT,
//	  analysis_json JSONB,
//	  updated_at TIMESTAMPTZ
//	);
func (r *AnalysisRepo) Save(ctx context.Context, sa *SavedAnalysis) (uuid.UUID, error) {
	pool := GetPool()
	if pool == nil {
		return uuid.Nil, fmt.Errorf("database pool not initialized")
	}

	if sa.ID == uuid.Nil {
		sa.ID = uuid.New()
	}
	sa.UpdatedAt = time.Now()

	jsonData, err := json.Marshal(sa)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal analysis: %w", err)
	}

	query := `
		INSERT INTO deal_analyses (id, address, analysis_json, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id)
		DO UPDATE SET
			address = EXCLUDED.address,
			analysis_json = EXCLUDED.analysis_json,
			updated_at = EXCLUDED.updated_at;
	`

	if _, err := pool.Exec(ctx, query, sa.ID, sa.Address, jsonData, sa.UpdatedAt); err != nil {
		return uuid.Nil, fmt.Errorf("failed to save analysis: %w", err)
	}
	return sa.ID, nil
}

// Load retrieves one saved analysis by id.
func (r *AnalysisRepo) Load(ctx context.Context, id uuid.UUID) (*SavedAnalysis, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	query := `SELECT analysis_json FROM deal_analyses WHERE id = $1`

	var jsonData []byte
	err := pool.QueryRow(ctx, query, id).Scan(&jsonData)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("no analysis found for id %s", id)
		}
		return nil, fmt.Errorf("failed to load analysis: %w", err)
	}

	var sa SavedAnalysis
	if err := json.Unmarshal(jsonData, &sa); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis: %w", err)
	}
	return &sa, nil
}

// List returns the most recently updated analyses, newest first.
func (r *AnalysisRepo) List(ctx context.Context, limit int) ([]SavedAnalysis, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}
	if limit <= 0 {
		limit = 50
	}

	query := `SELECT analysis_json FROM deal_analyses ORDER BY updated_at DESC LIMIT $1`

	rows, err := pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var out []SavedAnalysis
	for rows.Next() {
		var jsonData []byte
		if err := rows.Scan(&jsonData); err != nil {
			return nil, fmt.Errorf("failed to scan analysis row: %w", err)
		}
		var sa SavedAnalysis
		if err := json.Unmarshal(jsonData, &sa); err != nil {
			return nil, fmt.Errorf("failed to unmarshal analysis: %w", err)
		}
		out = append(out, sa)
	}
	return out, rows.Err()
}
