package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ekyc-labs/ekyc-api/internal/domain"
)

// PgxPool is the subset of pgxpool.Pool used by the repositories.
// pgxmock implements it, so tests run against the same query paths.
type PgxPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// VerificationRepositoryInterface defines operations for the verification
// audit trail
type VerificationRepositoryInterface interface {
	Create(ctx context.Context, record *domain.VerificationRecord) error
	List(ctx context.Context, skip, limit int) ([]domain.VerificationRecord, int64, error)
	CountByVerified(ctx context.Context, verified bool) (int64, error)
	AverageConfidence(ctx context.Context) (float64, error)
	Delete(ctx context.Context, id string) (bool, error)
}
