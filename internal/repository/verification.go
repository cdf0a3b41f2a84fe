package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ekyc-labs/ekyc-api/internal/domain"
)

type VerificationRepository struct {
	pool PgxPool
}

func NewVerificationRepository(pool PgxPool) *VerificationRepository {
	return &VerificationRepository{pool: pool}
}

// Create inserts a new verification record. The generated id and the
// server-side created_at are written back into the record.
func (r *VerificationRepository) Create(ctx context.Context, record *domain.VerificationRecord) error {
	query := `
		INSERT INTO verifications (id, verified, confidence, threshold, id_image_name, selfie_image_name, id_image, selfie_image, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING created_at
	`

	id := uuid.New()

	err := r.pool.QueryRow(ctx, query,
		id,
		record.Verified,
		record.Confidence,
		record.Threshold,
		record.IDImageName,
		record.SelfieImageName,
		record.IDImageBlob,
		record.SelfieImageBlob,
	).Scan(&record.CreatedAt)

	if err != nil {
		return fmt.Errorf("create verification: %w", err)
	}

	record.ID = id.String()
	return nil
}

// List returns a page of verification records ordered newest first, plus the
// total count across all pages. Image blobs are not loaded.
func (r *VerificationRepository) List(ctx context.Context, skip, limit int) ([]domain.VerificationRecord, int64, error) {
	countQuery := `SELECT COUNT(*) FROM verifications`

	var total int64
	if err := r.pool.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count verifications: %w", err)
	}

	query := `
		SELECT id, verified, confidence, threshold, id_image_name, selfie_image_name, created_at
		FROM verifications
		ORDER BY created_at DESC
		OFFSET $1 LIMIT $2
	`

	rows, err := r.pool.Query(ctx, query, skip, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("list verifications: %w", err)
	}
	defer rows.Close()

	records := make([]domain.VerificationRecord, 0, limit)
	for rows.Next() {
		var record domain.VerificationRecord
		var id uuid.UUID
		if err := rows.Scan(
			&id,
			&record.Verified,
			&record.Confidence,
			&record.Threshold,
			&record.IDImageName,
			&record.SelfieImageName,
			&record.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan verification: %w", err)
		}
		record.ID = id.String()
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list verifications: %w", err)
	}

	return records, total, nil
}

func (r *VerificationRepository) CountByVerified(ctx context.Context, verified bool) (int64, error) {
	query := `SELECT COUNT(*) FROM verifications WHERE verified = $1`

	var count int64
	if err := r.pool.QueryRow(ctx, query, verified).Scan(&count); err != nil {
		return 0, fmt.Errorf("count verifications by outcome: %w", err)
	}

	return count, nil
}

// AverageConfidence returns the mean confidence over all records, 0 when the
// table is empty.
func (r *VerificationRepository) AverageConfidence(ctx context.Context) (float64, error) {
	query := `SELECT COALESCE(AVG(confidence), 0) FROM verifications`

	var avg float64
	if err := r.pool.QueryRow(ctx, query).Scan(&avg); err != nil {
		return 0, fmt.Errorf("average confidence: %w", err)
	}

	return avg, nil
}

// Delete removes a record by id. Returns false when no record matched,
// including when the id is not a valid identifier at all.
func (r *VerificationRepository) Delete(ctx context.Context, id string) (bool, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return false, nil
	}

	query := `DELETE FROM verifications WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, parsed)
	if err != nil {
		return false, fmt.Errorf("delete verification: %w", err)
	}

	return result.RowsAffected() > 0, nil
}
