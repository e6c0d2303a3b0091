package repository

import (
	"context"

	"certtrack/internal/database"
	"certtrack/internal/domain/job"
)

type JobSkillRepository interface {
	FindByJobID(ctx context.Context, jobID string) ([]job.Requirement, error)
}

type PostgresJobSkillRepository struct {
	db database.Querier
}

func NewPostgresJobSkillRepository(db database.Querier) *PostgresJobSkillRepository {
	return &PostgresJobSkillRepository{db: db}
}

func (r *PostgresJobSkillRepository) FindByJobID(ctx context.Context, jobID string) ([]job.Requirement, error) {
	rows, err := r.db.Query(ctx,
		`SELECT job_id, skill_id, importance, proficiency
		 FROM job_skills
		 WHERE job_id = $1
		 ORDER BY position ASC, skill_id ASC`,
		jobID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Requirement, 0)
	for rows.Next() {
		var (
			it                      job.Requirement
			importance, proficiency string
		)
		if err := rows.Scan(&it.JobID, &it.SkillID, &importance, &proficiency); err != nil {
			return nil, err
		}
		it.Importance = job.Importance(importance)
		it.Proficiency = job.Proficiency(proficiency)
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
