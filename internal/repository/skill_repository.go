package repository

import (
	"context"

	"certtrack/internal/database"
	"certtrack/internal/domain/skill"
)

type SkillRepository interface {
	GetSkills(ctx context.Context) ([]skill.Skill, error)
}

type PostgresSkillRepository struct {
	db database.Querier
}

func NewPostgresSkillRepository(db database.Querier) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

func (r *PostgresSkillRepository) GetSkills(ctx context.Context) ([]skill.Skill, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, category, synonyms FROM skills ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]skill.Skill, 0)
	for rows.Next() {
		var (
			s        skill.Skill
			category string
		)
		if err := rows.Scan(&s.ID, &s.Name, &category, &s.Synonyms); err != nil {
			return nil, err
		}
		s.Category = skill.Category(category)
		if s.Synonyms == nil {
			s.Synonyms = []string{}
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
