package footprint

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RepositoryInterface abstracts record storage for testing
type RepositoryInterface interface {
	Create(ctx context.Context, record *EmissionRecord) error
	ListByUser(ctx context.Context, userID string, limit int) ([]*EmissionRecord, error)
	SummaryByUser(ctx context.Context, userID string) (*Summary, error)
	LeaderboardRows(ctx context.Context) ([]leaderboardRow, error)
}

// leaderboardRow is one user's raw aggregate used to compute savings.
type leaderboardRow struct {
	UserID           string
	RecordCount      int
	TotalEmissionsKg float64
}

// Repository handles database operations for emission records
type Repository struct {
	db *pgxpool.Pool
}

var _ RepositoryInterface = (*Repository)(nil)

// NewRepository creates a new footprint repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Create inserts an emission record
func (r *Repository) Create(ctx context.Context, record *EmissionRecord) error {
	query := `
		INSERT INTO emission_records (id, user_id, category, activity, distance_km, emissions_kg, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}

	_, err := r.db.Exec(ctx, query,
		record.ID, record.UserID, record.Category, record.Activity,
		record.DistanceKm, record.EmissionsKg, record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert emission record: %w", err)
	}

	return nil
}

// ListByUser returns a user's records, newest first
func (r *Repository) ListByUser(ctx context.Context, userID string, limit int) ([]*EmissionRecord, error) {
	query := `
		SELECT id, user_id, category, activity, distance_km, emissions_kg, created_at
		FROM emission_records
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list emission records: %w", err)
	}
	defer rows.Close()

	var records []*EmissionRecord
	for rows.Next() {
		record := &EmissionRecord{}
		if err := rows.Scan(
			&record.ID, &record.UserID, &record.Category, &record.Activity,
			&record.DistanceKm, &record.EmissionsKg, &record.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan emission record: %w", err)
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// SummaryByUser aggregates a user's records, including per-category totals.
// Savings against the per-trip baseline are computed by the service.
func (r *Repository) SummaryByUser(ctx context.Context, userID string) (*Summary, error) {
	summary := &Summary{
		UserID:         userID,
		CategoryTotals: make(map[Category]float64),
	}

	query := `
		SELECT COUNT(*), COALESCE(SUM(emissions_kg), 0)
		FROM emission_records
		WHERE user_id = $1
	`
	if err := r.db.QueryRow(ctx, query, userID).Scan(&summary.RecordCount, &summary.TotalEmissionsKg); err != nil {
		return nil, fmt.Errorf("failed to summarize emission records: %w", err)
	}

	categoryQuery := `
		SELECT category, COALESCE(SUM(emissions_kg), 0)
		FROM emission_records
		WHERE user_id = $1
		GROUP BY category
	`
	rows, err := r.db.Query(ctx, categoryQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query category totals: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var category Category
		var total float64
		if err := rows.Scan(&category, &total); err != nil {
			return nil, fmt.Errorf("failed to scan category total: %w", err)
		}
		summary.CategoryTotals[category] = total
	}

	return summary, rows.Err()
}

// LeaderboardRows returns per-user aggregates over transport records.
func (r *Repository) LeaderboardRows(ctx context.Context) ([]leaderboardRow, error) {
	query := `
		SELECT user_id, COUNT(*), COALESCE(SUM(emissions_kg), 0)
		FROM emission_records
		WHERE category = 'transport'
		GROUP BY user_id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard rows: %w", err)
	}
	defer rows.Close()

	var result []leaderboardRow
	for rows.Next() {
		var row leaderboardRow
		if err := rows.Scan(&row.UserID, &row.RecordCount, &row.TotalEmissionsKg); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard row: %w", err)
		}
		result = append(result, row)
	}

	return result, rows.Err()
}
