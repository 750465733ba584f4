package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"euroasia/internal/common"
	"euroasia/internal/domain/job"
)

type JobRepository struct {
	db *sql.DB
}

func NewJobRepository(db *sql.DB) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) Create(ctx context.Context, posting job.Job) (*job.Job, error) {
	posting.ID = common.NewUUID()
	now := time.Now().UTC()
	posting.CreatedAt = now
	posting.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, `INSERT INTO jobs (id, title, location, job_type, salary, category, requirements, deadline, vacancy, preferred_gender, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		posting.ID, posting.Title, posting.Location, posting.Type, posting.Salary, posting.Category, pq.Array(posting.Requirements), posting.Deadline, posting.Vacancy, posting.PreferredGender, posting.CreatedAt, posting.UpdatedAt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create job", err)
	}
	return &posting, nil
}

func (r *JobRepository) Update(ctx context.Context, posting job.Job) (*job.Job, error) {
	posting.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx, `UPDATE jobs SET title = $1, location = $2, job_type = $3, salary = $4, category = $5, requirements = $6, deadline = $7, vacancy = $8, preferred_gender = $9, updated_at = $10
		WHERE id = $11`,
		posting.Title, posting.Location, posting.Type, posting.Salary, posting.Category, pq.Array(posting.Requirements), posting.Deadline, posting.Vacancy, posting.PreferredGender, posting.UpdatedAt, posting.ID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update job", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "job not found", sql.ErrNoRows)
	}
	return &posting, nil
}

func (r *JobRepository) GetByID(ctx context.Context, id common.UUID) (*job.Job, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, title, location, job_type, salary, category, requirements, deadline, vacancy, preferred_gender, created_at, updated_at FROM jobs WHERE id = $1`, id)
	var posting job.Job
	if err := row.Scan(&posting.ID, &posting.Title, &posting.Location, &posting.Type, &posting.Salary, &posting.Category, pq.Array(&posting.Requirements), &posting.Deadline, &posting.Vacancy, &posting.PreferredGender, &posting.CreatedAt, &posting.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "job not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load job", err)
	}
	return &posting, nil
}

func (r *JobRepository) Delete(ctx context.Context, id common.UUID) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = $1`, id); err != nil {
		return common.NewError(common.CodeInternal, "failed to delete job", err)
	}
	return nil
}

func (r *JobRepository) List(ctx context.Context) ([]job.Job, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, title, location, job_type, salary, category, requirements, deadline, vacancy, preferred_gender, created_at, updated_at
		FROM jobs ORDER BY created_at DESC`)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list jobs", err)
	}
	defer rows.Close()
	var items []job.Job
	for rows.Next() {
		var posting job.Job
		if err := rows.Scan(&posting.ID, &posting.Title, &posting.Location, &posting.Type, &posting.Salary, &posting.Category, pq.Array(&posting.Requirements), &posting.Deadline, &posting.Vacancy, &posting.PreferredGender, &posting.CreatedAt, &posting.UpdatedAt); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan job", err)
		}
		items = append(items, posting)
	}
	return items, nil
}
