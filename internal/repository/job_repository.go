package repository

import (
	"context"

	"certtrack/internal/database"
	"certtrack/internal/domain/job"
)

type JobRepository interface {
	GetJobs(ctx context.Context) ([]job.Job, error)
}

type PostgresJobRepository struct {
	db database.Querier
}

func NewPostgresJobRepository(db database.Querier) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) GetJobs(ctx context.Context) ([]job.Job, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, description, seniority, median_salary_usd::float8, growth_outlook
		 FROM jobs
		 ORDER BY position ASC, id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Job, 0)
	for rows.Next() {
		var j job.Job
		if err := rows.Scan(&j.ID, &j.Title, &j.Description, &j.Seniority, &j.MedianSalaryUSD, &j.GrowthOutlook); err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
