package jobs

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jobdeck/jobdeck/internal/shared"
)

// Repository defines persistence operations for job records. Every operation
// is scoped by owner: a record belonging to another user behaves as absent.
type Repository interface {
	Create(ctx context.Context, job *Job) error
	ListByUser(ctx context.Context, userID string) ([]Job, error)
	Get(ctx context.Context, userID, id string) (*Job, error)
	Update(ctx context.Context, job *Job) error
	Delete(ctx context.Context, userID, id string) error
}

// PGRepository implements Repository using PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

// Create inserts a new job record.
func (r *PGRepository) Create(ctx context.Context, job *Job) error {
	now := time.Now().UTC()
	job.CreatedAt = now
	job.UpdatedAt = now
	_, err := r.pool.Exec(ctx,
		`INSERT INTO jobs (id, company, position, status, created_by, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		job.ID, job.Company, job.Position, job.Status, job.CreatedBy, job.CreatedAt, job.UpdatedAt,
	)
	return err
}

// ListByUser fetches all records owned by userID, newest first.
func (r *PGRepository) ListByUser(ctx context.Context, userID string) ([]Job, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, company, position, status, created_by, created_at, updated_at
		 FROM jobs WHERE created_by = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := []Job{}
	for rows.Next() {
		var job Job
		if err := rows.Scan(&job.ID, &job.Company, &job.Position, &job.Status, &job.CreatedBy, &job.CreatedAt, &job.UpdatedAt); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

// Get fetches one record owned by userID.
func (r *PGRepository) Get(ctx context.Context, userID, id string) (*Job, error) {
	var job Job
	err := r.pool.QueryRow(ctx,
		`SELECT id, company, position, status, created_by, created_at, updated_at
		 FROM jobs WHERE id = $1 AND created_by = $2`,
		id, userID,
	).Scan(&job.ID, &job.Company, &job.Position, &job.Status, &job.CreatedBy, &job.CreatedAt, &job.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

// Update persists changed fields of a record owned by job.CreatedBy.
func (r *PGRepository) Update(ctx context.Context, job *Job) error {
	job.UpdatedAt = time.Now().UTC()
	tag, err := r.pool.Exec(ctx,
		`UPDATE jobs SET company = $1, position = $2, status = $3, updated_at = $4
		 WHERE id = $5 AND created_by = $6`,
		job.Company, job.Position, job.Status, job.UpdatedAt, job.ID, job.CreatedBy,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes a record owned by userID.
func (r *PGRepository) Delete(ctx context.Context, userID, id string) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM jobs WHERE id = $1 AND created_by = $2`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ Repository = (*PGRepository)(nil)
