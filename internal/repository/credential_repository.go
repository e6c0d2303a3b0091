package repository

import (
	"context"

	"certtrack/internal/database"
	"certtrack/internal/domain/credential"
)

type CredentialRepository interface {
	GetCredentials(ctx context.Context) ([]credential.Credential, error)
	FindSkillLinks(ctx context.Context, credentialID string) ([]credential.SkillLink, error)
}

type PostgresCredentialRepository struct {
	db database.Querier
}

func NewPostgresCredentialRepository(db database.Querier) *PostgresCredentialRepository {
	return &PostgresCredentialRepository{db: db}
}

func (r *PostgresCredentialRepository) GetCredentials(ctx context.Context) ([]credential.Credential, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, provider, type, level, url, description
		 FROM credentials
		 ORDER BY position ASC, id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]credential.Credential, 0)
	for rows.Next() {
		var (
			c          credential.Credential
			typ, level string
		)
		if err := rows.Scan(&c.ID, &c.Name, &c.Provider, &typ, &level, &c.URL, &c.Description); err != nil {
			return nil, err
		}
		c.Type = credential.Type(typ)
		c.Level = credential.Level(level)
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCredentialRepository) FindSkillLinks(ctx context.Context, credentialID string) ([]credential.SkillLink, error) {
	rows, err := r.db.Query(ctx,
		`SELECT credential_id, skill_id FROM credential_skills WHERE credential_id = $1 ORDER BY skill_id ASC`,
		credentialID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]credential.SkillLink, 0)
	for rows.Next() {
		var l credential.SkillLink
		if err := rows.Scan(&l.CredentialID, &l.SkillID); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
